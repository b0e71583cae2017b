//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/device_domains_service.go . DeviceDomainsService

import (
	"context"

	"github.com/architeacher/devicedomains/internal/domain/model"
)

type DeviceDomainsService interface {
	CreateDeviceDomain(ctx context.Context, input model.CreateDeviceDomainInput) (*model.DeviceDomain, error)
	GetDeviceDomain(ctx context.Context, id model.DeviceDomainID) (*model.DeviceDomain, error)
	ListDeviceDomains(ctx context.Context) ([]*model.DeviceDomain, error)
	// ListDeviceDomainsByBrand matches brand as a case-sensitive substring.
	ListDeviceDomainsByBrand(ctx context.Context, brand string) ([]*model.DeviceDomain, error)
	ListDeviceDomainsByState(ctx context.Context, state model.State) ([]*model.DeviceDomain, error)
	UpdateDeviceDomain(ctx context.Context, id model.DeviceDomainID, input model.UpdateDeviceDomainInput) (*model.DeviceDomain, error)
	DeleteDeviceDomain(ctx context.Context, id model.DeviceDomainID) error
}
