package repos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/infrastructure"
	"github.com/architeacher/devicedomains/pkg/logger"
)

const (
	deviceDomainCacheVersion = "v1"
	deviceDomainKeyPrefix    = "device_domain:" + deviceDomainCacheVersion + ":"

	// invalidationHold outlives any read that started before the write it
	// follows, so such a read cannot put its stale result back.
	invalidationHold = 5 * time.Second
)

var invalidatedMarker = []byte("invalidated")

type (
	cachedDeviceDomain struct {
		ID               int64     `json:"id"`
		Name             string    `json:"name"`
		Brand            string    `json:"brand"`
		State            string    `json:"state"`
		CreationDateTime time.Time `json:"creation_date_time"`
	}

	// DeviceDomainsCacheRepository keeps single records in KeyDB/Redis.
	DeviceDomainsCacheRepository struct {
		client *infrastructure.KeydbClient
		logger logger.Logger
	}
)

func NewDeviceDomainsCacheRepository(client *infrastructure.KeydbClient, log logger.Logger) *DeviceDomainsCacheRepository {
	return &DeviceDomainsCacheRepository{
		client: client,
		logger: log,
	}
}

func DeviceDomainKey(id model.DeviceDomainID) string {
	return deviceDomainKeyPrefix + id.String()
}

func (r *DeviceDomainsCacheRepository) GetDeviceDomain(ctx context.Context, id model.DeviceDomainID) (*model.DeviceDomain, error) {
	data, err := r.client.Get(ctx, DeviceDomainKey(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting cached device domain: %w", err)
	}

	if bytes.Equal(data, invalidatedMarker) {
		return nil, nil
	}

	var cached cachedDeviceDomain
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("unmarshalling cached device domain: %w", err)
	}

	state, err := model.ParseState(cached.State)
	if err != nil {
		return nil, fmt.Errorf("converting cached device domain: %w", err)
	}

	return &model.DeviceDomain{
		ID:               model.DeviceDomainID(cached.ID),
		Name:             cached.Name,
		Brand:            cached.Brand,
		State:            state,
		CreationDateTime: cached.CreationDateTime.UTC(),
	}, nil
}

// SetDeviceDomain fills an empty slot only. It never replaces a cached record
// or the marker an invalidation leaves behind.
func (r *DeviceDomainsCacheRepository) SetDeviceDomain(ctx context.Context, deviceDomain *model.DeviceDomain, ttl time.Duration) error {
	data, err := json.Marshal(cachedDeviceDomain{
		ID:               int64(deviceDomain.ID),
		Name:             deviceDomain.Name,
		Brand:            deviceDomain.Brand,
		State:            deviceDomain.State.String(),
		CreationDateTime: deviceDomain.CreationDateTime,
	})
	if err != nil {
		return fmt.Errorf("marshalling device domain: %w", err)
	}

	stored, err := r.client.SetNX(ctx, DeviceDomainKey(deviceDomain.ID), data, ttl)
	if err != nil {
		return fmt.Errorf("setting cached device domain: %w", err)
	}

	if !stored {
		r.logger.Debug().
			Stringer("device_domain_id", deviceDomain.ID).
			Msg("cache slot taken, fill skipped")
	}

	return nil
}

// InvalidateDeviceDomain replaces the entry with a short-lived marker that
// reads treat as a miss and fills cannot overwrite.
func (r *DeviceDomainsCacheRepository) InvalidateDeviceDomain(ctx context.Context, id model.DeviceDomainID) error {
	if err := r.client.Set(ctx, DeviceDomainKey(id), invalidatedMarker, invalidationHold); err != nil {
		return fmt.Errorf("invalidating cached device domain: %w", err)
	}

	return nil
}
