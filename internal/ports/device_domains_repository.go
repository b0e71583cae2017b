//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/device_domains_repository.go . DeviceDomainRepository

import (
	"context"

	"github.com/architeacher/devicedomains/internal/domain/model"
)

type (
	Saver interface {
		// Create persists a new record and writes the assigned ID back into it.
		Create(ctx context.Context, deviceDomain *model.DeviceDomain) error
	}

	Fetcher interface {
		// FetchByID returns model.ErrDeviceDomainNotFound when no record matches.
		FetchByID(ctx context.Context, id model.DeviceDomainID) (*model.DeviceDomain, error)
	}

	Finder interface {
		// Find returns every record matching criteria, never nil.
		Find(ctx context.Context, criteria model.Criteria) ([]*model.DeviceDomain, error)
	}

	Updater interface {
		// Update overwrites name, brand and state of an existing record.
		Update(ctx context.Context, deviceDomain *model.DeviceDomain) error
	}

	Deleter interface {
		Delete(ctx context.Context, id model.DeviceDomainID) error
	}

	Pinger interface {
		Ping(ctx context.Context) error
	}

	DeviceDomainRepository interface {
		Saver
		Fetcher
		Finder
		Updater
		Deleter
		Pinger
	}
)
