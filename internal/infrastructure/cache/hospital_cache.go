package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sepsis-screening-server/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

const allowListTTL = 5 * time.Minute

// HospitalCache caches allow-list rows in Redis so repeated hospital
// logins skip the database. The list changes only on reseed, so a short
// TTL is enough.
type HospitalCache struct {
	client *redis.Client
}

func NewHospitalCache(client *redis.Client) *HospitalCache {
	return &HospitalCache{client: client}
}

func allowListKey(hospitalID string) string {
	return fmt.Sprintf("allowed_hospital:%s", hospitalID)
}

func (c *HospitalCache) Get(ctx context.Context, hospitalID string) (*entity.AllowedHospital, error) {
	val, err := c.client.Get(ctx, allowListKey(hospitalID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var hospital entity.AllowedHospital
	if err := json.Unmarshal([]byte(val), &hospital); err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (c *HospitalCache) Set(ctx context.Context, hospital *entity.AllowedHospital) error {
	payload, err := json.Marshal(hospital)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, allowListKey(hospital.HospitalID), payload, allowListTTL).Err()
}
