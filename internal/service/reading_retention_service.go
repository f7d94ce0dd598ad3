package service

import (
	"context"
	"time"

	"sepsis-screening-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReadingRetentionService prunes sensor readings older than the configured
// retention window. It runs outside the request path on an hourly tick.
type ReadingRetentionService struct {
	db          *gorm.DB
	log         *logrus.Logger
	readingRepo repository.ReadingRepository
	retention   time.Duration
	stop        chan struct{}
	done        chan struct{}
}

func NewReadingRetentionService(
	db *gorm.DB,
	log *logrus.Logger,
	readingRepo repository.ReadingRepository,
	retention time.Duration,
) *ReadingRetentionService {
	return &ReadingRetentionService{
		db:          db,
		log:         log,
		readingRepo: readingRepo,
		retention:   retention,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start launches the pruning loop. It is a no-op when retention is zero.
func (s *ReadingRetentionService) Start() {
	if s.retention <= 0 {
		close(s.done)
		return
	}

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		s.prune()
		for {
			select {
			case <-ticker.C:
				s.prune()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop ends the loop and waits for the in-flight prune to finish.
func (s *ReadingRetentionService) Stop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	<-s.done
}

func (s *ReadingRetentionService) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-s.retention)
	deleted, err := s.readingRepo.DeleteOlderThan(ctx, s.db, cutoff)
	if err != nil {
		s.log.Warnf("Failed to prune readings: %+v", err)
		return
	}
	if deleted > 0 {
		s.log.Infof("Pruned %d readings older than %s", deleted, cutoff.Format(time.RFC3339))
	}
}
