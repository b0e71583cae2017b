package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/pkg/logger"
)

const (
	natsReconnectWait     = 2 * time.Second
	defaultPublishTimeout = 5 * time.Second
)

// NATSPublisher publishes each event on <prefix>.<type>, e.g.
// device_domains.updated. Publish only buffers the message; the client's
// flusher writes it to the socket, and Close drains what is still pending.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
	logger logger.Logger
}

func NewNATSPublisher(cfg config.Events, log logger.Logger) (*NATSPublisher, error) {
	timeout := publishTimeout(cfg)

	conn, err := nats.Connect(cfg.NATSURL,
		nats.Name(cfg.ClientID),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(natsReconnectWait),
		nats.FlusherTimeout(timeout),
		nats.DrainTimeout(timeout),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Warn().Err(err).Msg("nats async error")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("nats connection lost")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("nats connection restored")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}

	return &NATSPublisher{
		conn:   conn,
		prefix: cfg.SubjectPrefix,
		logger: log,
	}, nil
}

func (p *NATSPublisher) Subject(eventType model.EventType) string {
	return p.prefix + "." + string(eventType)
}

func (p *NATSPublisher) Publish(ctx context.Context, event model.DeviceDomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling %s event: %w", event.Type, err)
	}

	subject := p.Subject(event.Type)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	p.logger.Debug().
		Str("subject", subject).
		Str("device_domain_id", event.ID.String()).
		Msg("event published")

	return nil
}

func (p *NATSPublisher) Name() string {
	return "events"
}

// Ping reports whether the connection is currently established.
func (p *NATSPublisher) Ping(context.Context) error {
	if !p.conn.IsConnected() {
		return fmt.Errorf("nats status %s", p.conn.Status())
	}

	return nil
}

func (p *NATSPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()

		return fmt.Errorf("draining nats connection: %w", err)
	}

	return nil
}
