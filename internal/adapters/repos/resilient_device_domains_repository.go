package repos

import (
	"context"
	"errors"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/pkg/circuitbreaker"
)

// ResilientRepository runs every store call through a circuit breaker so a
// failing database is rejected fast instead of piling up requests.
type ResilientRepository struct {
	next    ports.DeviceDomainRepository
	breaker *circuitbreaker.Breaker
}

func NewResilientRepository(next ports.DeviceDomainRepository, breaker *circuitbreaker.Breaker) *ResilientRepository {
	return &ResilientRepository{next: next, breaker: breaker}
}

// IsStoreHealthy counts a missing record as a healthy answer.
func IsStoreHealthy(err error) bool {
	return err == nil || errors.Is(err, model.ErrDeviceDomainNotFound)
}

func (r *ResilientRepository) Create(ctx context.Context, deviceDomain *model.DeviceDomain) error {
	_, err := circuitbreaker.Execute(r.breaker, func() (struct{}, error) {
		return struct{}{}, r.next.Create(ctx, deviceDomain)
	})

	return err
}

func (r *ResilientRepository) FetchByID(ctx context.Context, id model.DeviceDomainID) (*model.DeviceDomain, error) {
	return circuitbreaker.Execute(r.breaker, func() (*model.DeviceDomain, error) {
		return r.next.FetchByID(ctx, id)
	})
}

func (r *ResilientRepository) Find(ctx context.Context, criteria model.Criteria) ([]*model.DeviceDomain, error) {
	return circuitbreaker.Execute(r.breaker, func() ([]*model.DeviceDomain, error) {
		return r.next.Find(ctx, criteria)
	})
}

func (r *ResilientRepository) Update(ctx context.Context, deviceDomain *model.DeviceDomain) error {
	_, err := circuitbreaker.Execute(r.breaker, func() (struct{}, error) {
		return struct{}{}, r.next.Update(ctx, deviceDomain)
	})

	return err
}

func (r *ResilientRepository) Delete(ctx context.Context, id model.DeviceDomainID) error {
	_, err := circuitbreaker.Execute(r.breaker, func() (struct{}, error) {
		return struct{}{}, r.next.Delete(ctx, id)
	})

	return err
}

// Ping bypasses the breaker so readiness reflects the store itself.
func (r *ResilientRepository) Ping(ctx context.Context) error {
	return r.next.Ping(ctx)
}
