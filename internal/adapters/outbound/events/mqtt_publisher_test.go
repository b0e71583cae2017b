package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/pkg/logger"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func completedToken(err error) *fakeToken {
	done := make(chan struct{})
	close(done)

	return &fakeToken{done: done, err: err}
}

func (t *fakeToken) Wait() bool {
	<-t.done

	return true
}

func (t *fakeToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (t *fakeToken) Done() <-chan struct{} { return t.done }
func (t *fakeToken) Error() error          { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeMQTTClient struct {
	connected    bool
	token        pahomqtt.Token
	messages     []published
	disconnected bool
}

func (c *fakeMQTTClient) IsConnectionOpen() bool { return c.connected }

func (c *fakeMQTTClient) Publish(topic string, qos byte, _ bool, payload any) pahomqtt.Token {
	data, _ := payload.([]byte)
	c.messages = append(c.messages, published{topic: topic, qos: qos, payload: data})

	return c.token
}

func (c *fakeMQTTClient) Disconnect(uint) { c.disconnected = true }

func testEventsConfig() config.Events {
	return config.Events{
		SubjectPrefix:  "device_domains",
		MQTTQoS:        1,
		PublishTimeout: 50 * time.Millisecond,
	}
}

func TestMQTTPublisher_Publish(t *testing.T) {
	t.Parallel()

	deviceDomain := &model.DeviceDomain{ID: 3, Name: "Pixel", Brand: "Google", State: model.StateAvailable}
	event := model.NewDeviceDomainEvent(model.EventDeviceDomainDeleted, deviceDomain)

	cases := []struct {
		name      string
		client    *fakeMQTTClient
		ctx       func() context.Context
		expectErr error
		published int
	}{
		{
			name:      "delivered",
			client:    &fakeMQTTClient{connected: true, token: completedToken(nil)},
			published: 1,
		},
		{
			name:      "not connected",
			client:    &fakeMQTTClient{connected: false, token: completedToken(nil)},
			expectErr: ErrMQTTNotConnected,
		},
		{
			name:      "broker rejects",
			client:    &fakeMQTTClient{connected: true, token: completedToken(errors.New("not authorized"))},
			published: 1,
		},
		{
			name:      "no acknowledgement",
			client:    &fakeMQTTClient{connected: true, token: &fakeToken{done: make(chan struct{})}},
			expectErr: ErrMQTTPublishTimeout,
			published: 1,
		},
		{
			name:   "context cancelled",
			client: &fakeMQTTClient{connected: true, token: &fakeToken{done: make(chan struct{})}},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				return ctx
			},
			expectErr: context.Canceled,
			published: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			publisher := newMQTTPublisher(tc.client, testEventsConfig(), logger.NewTestLogger())

			ctx := context.Background()
			if tc.ctx != nil {
				ctx = tc.ctx()
			}

			err := publisher.Publish(ctx, event)

			switch {
			case tc.expectErr != nil:
				require.ErrorIs(t, err, tc.expectErr)
			case tc.name == "broker rejects":
				require.ErrorContains(t, err, "not authorized")
			default:
				require.NoError(t, err)
			}

			require.Len(t, tc.client.messages, tc.published)

			if tc.published == 0 {
				return
			}

			msg := tc.client.messages[0]
			require.Equal(t, "device_domains/deleted", msg.topic)
			require.Equal(t, byte(1), msg.qos)

			var got model.DeviceDomainEvent
			require.NoError(t, json.Unmarshal(msg.payload, &got))
			require.Equal(t, model.DeviceDomainID(3), got.ID)
		})
	}
}

func TestMQTTPublisher_PingAndClose(t *testing.T) {
	t.Parallel()

	client := &fakeMQTTClient{connected: true}
	publisher := newMQTTPublisher(client, testEventsConfig(), logger.NewTestLogger())

	require.NoError(t, publisher.Ping(context.Background()))
	require.NoError(t, publisher.Close())
	require.True(t, client.disconnected)

	client.connected = false
	require.ErrorIs(t, publisher.Ping(context.Background()), ErrMQTTNotConnected)
}

func TestNewPublisher(t *testing.T) {
	t.Parallel()

	publisher, err := NewPublisher(config.Events{Driver: config.EventsDriverNone}, logger.NewTestLogger())
	require.NoError(t, err)
	require.IsType(t, NoopPublisher{}, publisher)
	require.NoError(t, publisher.Publish(context.Background(), model.DeviceDomainEvent{}))
	require.NoError(t, publisher.Close())

	_, err = NewPublisher(config.Events{Driver: "kafka"}, logger.NewTestLogger())
	require.ErrorContains(t, err, "unsupported events driver")

	_, err = NewPublisher(config.Events{Driver: config.EventsDriverNATS, NATSURL: "nats://127.0.0.1:1"}, logger.NewTestLogger())
	require.Error(t, err)
}
