package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"sepsis-screening-server/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type fakeReadingRepo struct {
	mu      sync.Mutex
	calls   int
	cutoffs []time.Time
}

func (f *fakeReadingRepo) Create(ctx context.Context, db *gorm.DB, reading *entity.Reading) error {
	return nil
}

func (f *fakeReadingRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) ([]entity.Reading, error) {
	return make([]entity.Reading, 0), nil
}

func (f *fakeReadingRepo) DeleteOlderThan(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.cutoffs = append(f.cutoffs, cutoff)
	return 3, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestRetentionServicePrunesOnStart(t *testing.T) {
	repo := &fakeReadingRepo{}
	svc := NewReadingRetentionService(nil, quietLogger(), repo, 24*time.Hour)

	svc.Start()
	svc.Stop()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.calls != 1 {
		t.Fatalf("expected one prune on start, got %d", repo.calls)
	}
	wantCutoff := time.Now().Add(-24 * time.Hour)
	if diff := repo.cutoffs[0].Sub(wantCutoff); diff < -time.Minute || diff > time.Minute {
		t.Errorf("cutoff %s not near %s", repo.cutoffs[0], wantCutoff)
	}
}

func TestRetentionServiceDisabledWhenZero(t *testing.T) {
	repo := &fakeReadingRepo{}
	svc := NewReadingRetentionService(nil, quietLogger(), repo, 0)

	svc.Start()
	svc.Stop()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.calls != 0 {
		t.Fatalf("expected no pruning when retention is disabled, got %d calls", repo.calls)
	}
}

func TestRetentionServiceStopIsIdempotent(t *testing.T) {
	svc := NewReadingRetentionService(nil, quietLogger(), &fakeReadingRepo{}, time.Hour)

	svc.Start()
	svc.Stop()
	svc.Stop()
}
