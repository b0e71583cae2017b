package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/pkg/logger"
)

const (
	mqttConnectTimeout    = 10 * time.Second
	mqttKeepAlive         = 60 * time.Second
	mqttDisconnectQuiesce = 1000 // milliseconds
)

var (
	ErrMQTTNotConnected   = errors.New("mqtt client not connected")
	ErrMQTTPublishTimeout = errors.New("mqtt publish timed out")
)

type mqttClient interface {
	IsConnectionOpen() bool
	Publish(topic string, qos byte, retained bool, payload any) pahomqtt.Token
	Disconnect(quiesce uint)
}

// MQTTPublisher publishes each event on <prefix>/<type>, e.g.
// device_domains/deleted.
type MQTTPublisher struct {
	client  mqttClient
	prefix  string
	qos     byte
	timeout time.Duration
	logger  logger.Logger
}

func NewMQTTPublisher(cfg config.Events, log logger.Logger) (*MQTTPublisher, error) {
	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetConnectTimeout(mqttConnectTimeout).
		SetKeepAlive(mqttKeepAlive).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			log.Warn().Err(err).Msg("mqtt connection lost")
		})

	client := pahomqtt.NewClient(opts)

	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, fmt.Errorf("connecting to mqtt broker %s: timeout after %v", cfg.MQTTBroker, mqttConnectTimeout)
	}

	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connecting to mqtt broker %s: %w", cfg.MQTTBroker, err)
	}

	return newMQTTPublisher(client, cfg, log), nil
}

func newMQTTPublisher(client mqttClient, cfg config.Events, log logger.Logger) *MQTTPublisher {
	return &MQTTPublisher{
		client:  client,
		prefix:  cfg.SubjectPrefix,
		qos:     cfg.MQTTQoS,
		timeout: publishTimeout(cfg),
		logger:  log,
	}
}

func (p *MQTTPublisher) Topic(eventType model.EventType) string {
	return p.prefix + "/" + string(eventType)
}

func (p *MQTTPublisher) Publish(ctx context.Context, event model.DeviceDomainEvent) error {
	if !p.client.IsConnectionOpen() {
		return ErrMQTTNotConnected
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling %s event: %w", event.Type, err)
	}

	topic := p.Topic(event.Type)
	token := p.client.Publish(topic, p.qos, false, payload)

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("publishing to %s: %w", topic, ctx.Err())
	case <-timer.C:
		return fmt.Errorf("publishing to %s: %w", topic, ErrMQTTPublishTimeout)
	case <-token.Done():
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}

	p.logger.Debug().
		Str("topic", topic).
		Str("device_domain_id", event.ID.String()).
		Msg("event published")

	return nil
}

func (p *MQTTPublisher) Name() string {
	return "events"
}

func (p *MQTTPublisher) Ping(context.Context) error {
	if !p.client.IsConnectionOpen() {
		return ErrMQTTNotConnected
	}

	return nil
}

func (p *MQTTPublisher) Close() error {
	p.client.Disconnect(mqttDisconnectQuiesce)

	return nil
}
