package repos

import (
	"context"
	"time"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/internal/usecases/queries"
)

// GetDeviceDomainCacheAdapter adapts DeviceDomainsCache for GetDeviceDomainQuery.
type GetDeviceDomainCacheAdapter struct {
	cache ports.DeviceDomainsCache
}

func NewGetDeviceDomainCacheAdapter(cache ports.DeviceDomainsCache) *GetDeviceDomainCacheAdapter {
	return &GetDeviceDomainCacheAdapter{cache: cache}
}

func (a *GetDeviceDomainCacheAdapter) Get(ctx context.Context, query queries.GetDeviceDomainQuery) (*model.DeviceDomain, bool, error) {
	deviceDomain, err := a.cache.GetDeviceDomain(ctx, query.ID)
	if err != nil {
		return nil, false, err
	}

	return deviceDomain, deviceDomain != nil, nil
}

func (a *GetDeviceDomainCacheAdapter) Set(ctx context.Context, _ queries.GetDeviceDomainQuery, result *model.DeviceDomain, ttl time.Duration) error {
	return a.cache.SetDeviceDomain(ctx, result, ttl)
}
