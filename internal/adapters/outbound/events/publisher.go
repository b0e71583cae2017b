package events

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/pkg/logger"
)

// NewPublisher connects the broker selected by cfg.Driver.
func NewPublisher(cfg config.Events, log logger.Logger) (ports.EventPublisher, error) {
	switch cfg.Driver {
	case config.EventsDriverNATS:
		return NewNATSPublisher(cfg, log)
	case config.EventsDriverMQTT:
		return NewMQTTPublisher(cfg, log)
	case config.EventsDriverNone, "":
		return NoopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unsupported events driver %q", cfg.Driver)
	}
}

func publishTimeout(cfg config.Events) time.Duration {
	if cfg.PublishTimeout <= 0 {
		return defaultPublishTimeout
	}

	return cfg.PublishTimeout
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, model.DeviceDomainEvent) error { return nil }
func (NoopPublisher) Close() error                                           { return nil }
