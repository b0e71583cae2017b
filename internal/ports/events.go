//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/event_publisher.go . EventPublisher

import (
	"context"

	"github.com/architeacher/devicedomains/internal/domain/model"
)

// EventPublisher announces committed changes to device domains.
type EventPublisher interface {
	Publish(ctx context.Context, event model.DeviceDomainEvent) error
	Close() error
}
