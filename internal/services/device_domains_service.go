package services

import (
	"context"
	"fmt"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/pkg/logger"
)

// DeviceDomainsService holds the business rules. It keeps no state between
// calls; the repository is the only shared resource.
type DeviceDomainsService struct {
	repo      ports.DeviceDomainRepository
	publisher ports.EventPublisher
	cache     ports.DeviceDomainsCache
	logger    logger.Logger
}

// NewDeviceDomainsService accepts nil publisher and cache.
func NewDeviceDomainsService(
	repo ports.DeviceDomainRepository,
	publisher ports.EventPublisher,
	cache ports.DeviceDomainsCache,
	log logger.Logger,
) *DeviceDomainsService {
	return &DeviceDomainsService{
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		logger:    log,
	}
}

func (s *DeviceDomainsService) CreateDeviceDomain(
	ctx context.Context,
	input model.CreateDeviceDomainInput,
) (*model.DeviceDomain, error) {
	state, err := input.Validate()
	if err != nil {
		return nil, err
	}

	deviceDomain := model.NewDeviceDomain(input.Name, input.Brand, state)

	if err := s.repo.Create(ctx, deviceDomain); err != nil {
		return nil, err
	}

	s.publish(ctx, model.EventDeviceDomainCreated, deviceDomain)

	return deviceDomain, nil
}

func (s *DeviceDomainsService) GetDeviceDomain(ctx context.Context, id model.DeviceDomainID) (*model.DeviceDomain, error) {
	return s.repo.FetchByID(ctx, id)
}

func (s *DeviceDomainsService) ListDeviceDomains(ctx context.Context) ([]*model.DeviceDomain, error) {
	return s.repo.Find(ctx, model.All())
}

func (s *DeviceDomainsService) ListDeviceDomainsByBrand(ctx context.Context, brand string) ([]*model.DeviceDomain, error) {
	return s.repo.Find(ctx, model.ByBrand(brand))
}

func (s *DeviceDomainsService) ListDeviceDomainsByState(ctx context.Context, state model.State) ([]*model.DeviceDomain, error) {
	if !state.IsValid() {
		errs := model.NewValidationErrors()
		errs.Add("state", fmt.Sprintf("unknown state %q", state), model.ValidationCodeInvalidEnum)

		return nil, errs
	}

	return s.repo.Find(ctx, model.ByState(state))
}

func (s *DeviceDomainsService) UpdateDeviceDomain(
	ctx context.Context,
	id model.DeviceDomainID,
	input model.UpdateDeviceDomainInput,
) (*model.DeviceDomain, error) {
	deviceDomain, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := deviceDomain.Apply(input); err != nil {
		return nil, err
	}

	if input.IsEmpty() {
		return deviceDomain, nil
	}

	if err := s.repo.Update(ctx, deviceDomain); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.publish(ctx, model.EventDeviceDomainUpdated, deviceDomain)

	return deviceDomain, nil
}

func (s *DeviceDomainsService) DeleteDeviceDomain(ctx context.Context, id model.DeviceDomainID) error {
	deviceDomain, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return err
	}

	if !deviceDomain.CanDelete() {
		return model.ErrCannotDeleteInUseDeviceDomain
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.publish(ctx, model.EventDeviceDomainDeleted, deviceDomain)

	return nil
}

// The change is already committed when these run, so failures are only logged.

func (s *DeviceDomainsService) invalidate(ctx context.Context, id model.DeviceDomainID) {
	if s.cache == nil {
		return
	}

	if err := s.cache.InvalidateDeviceDomain(ctx, id); err != nil {
		log := s.logger.WithContext(ctx)
		log.Warn().
			Err(err).
			Stringer("device_domain_id", id).
			Msg("failed to invalidate cached device domain")
	}
}

func (s *DeviceDomainsService) publish(ctx context.Context, eventType model.EventType, deviceDomain *model.DeviceDomain) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(ctx, model.NewDeviceDomainEvent(eventType, deviceDomain)); err != nil {
		log := s.logger.WithContext(ctx)
		log.Warn().
			Err(err).
			Str("event", string(eventType)).
			Stringer("device_domain_id", deviceDomain.ID).
			Msg("failed to publish device domain event")
	}
}
