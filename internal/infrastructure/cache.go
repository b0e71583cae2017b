package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/architeacher/devicedomains/internal/config"
	appLogger "github.com/architeacher/devicedomains/pkg/logger"
)

const healthCheckTimeout = 3 * time.Second

var compareAndSwapScript = redis.NewScript(`
	local current = redis.call("GET", KEYS[1])
	if current == false or tonumber(current) ~= tonumber(ARGV[1]) then
		return 0
	end
	redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
	return 1
`)

// KeydbClient talks to KeyDB or Redis and logs each operation at debug.
type KeydbClient struct {
	client *redis.Client
	logger appLogger.Logger
	config config.Cache
}

func NewKeyDBClient(config config.Cache, logger appLogger.Logger) *KeydbClient {
	opts := &redis.Options{
		Addr:         config.Address,
		Password:     config.Password,
		DB:           int(config.DB),
		PoolSize:     int(config.PoolSize),
		MinIdleConns: int(config.MinIdleConns),
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		PoolTimeout:  config.PoolTimeout,
		MaxRetries:   int(config.MaxRetries),
	}

	return &KeydbClient{
		client: redis.NewClient(opts),
		logger: logger,
		config: config,
	}
}

func (c *KeydbClient) Name() string {
	return "cache"
}

func (c *KeydbClient) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *KeydbClient) Close() error {
	return c.client.Close()
}

// Get returns redis.Nil on a miss.
func (c *KeydbClient) Get(ctx context.Context, key string) ([]byte, error) {
	startTime := time.Now()

	result, err := c.client.Get(ctx, key).Bytes()

	c.logger.Debug().
		Str("key", key).
		Int64("duration_ms", time.Since(startTime).Milliseconds()).
		Bool("hit", err == nil).
		Msg("keydb get operation")

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, redis.Nil
		}

		c.logger.Error().
			Err(err).
			Str("key", key).
			Msg("keydb get operation failed")

		return nil, err
	}

	return result, nil
}

// Set falls back to the configured default expiry when ttl is zero.
func (c *KeydbClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.config.DefaultExpiry
	}

	startTime := time.Now()
	err := c.client.Set(ctx, key, value, ttl).Err()

	c.logger.Debug().
		Str("key", key).
		Str("expiry", ttl.String()).
		Int64("duration_ms", time.Since(startTime).Milliseconds()).
		Bool("success", err == nil).
		Msg("keydb set operation")

	return err
}

// SetNX stores value only when key is absent and reports whether it did. A
// zero ttl falls back to the configured default expiry.
func (c *KeydbClient) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if ttl == 0 {
		ttl = c.config.DefaultExpiry
	}

	startTime := time.Now()
	stored, err := c.client.SetNX(ctx, key, value, ttl).Result()

	c.logger.Debug().
		Str("key", key).
		Str("expiry", ttl.String()).
		Int64("duration_ms", time.Since(startTime).Milliseconds()).
		Bool("stored", stored).
		Msg("keydb setnx operation")

	return stored, err
}

// Lock sets key only when absent and reports whether it did.
func (c *KeydbClient) Lock(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	startTime := time.Now()

	acquired, err := c.client.SetNX(ctx, key, value, ttl).Result()

	c.logger.Debug().
		Str("key", key).
		Str("expiry", ttl.String()).
		Int64("duration_ms", time.Since(startTime).Milliseconds()).
		Bool("acquired", acquired).
		Msg("keydb lock operation")

	if err != nil {
		return false, fmt.Errorf("acquiring lock: %w", err)
	}

	return acquired, nil
}

func (c *KeydbClient) Delete(ctx context.Context, key string) error {
	startTime := time.Now()
	err := c.client.Del(ctx, key).Err()

	c.logger.Debug().
		Str("key", key).
		Int64("duration_ms", time.Since(startTime).Milliseconds()).
		Bool("success", err == nil).
		Msg("keydb delete operation")

	return err
}

func (c *KeydbClient) IsHealthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	return c.Ping(ctx) == nil
}

// GetInt64 reports a missing key as -1, the GCRA store convention.
func (c *KeydbClient) GetInt64(ctx context.Context, key string) (int64, time.Time, error) {
	val, err := c.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, time.Now(), nil
		}

		return 0, time.Time{}, err
	}

	return val, time.Now(), nil
}

func (c *KeydbClient) SetInt64NX(ctx context.Context, key string, value int64, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, key, value, ttl).Result()
}

// CompareAndSwapInt64 replaces the value at key with next only while it still
// equals old.
func (c *KeydbClient) CompareAndSwapInt64(ctx context.Context, key string, old, next int64, ttl time.Duration) (bool, error) {
	result, err := compareAndSwapScript.Run(ctx, c.client, []string{key}, old, next, ttl.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}

	return result == 1, nil
}
