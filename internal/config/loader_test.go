package config

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretsRepository struct {
	token   string
	secret  *api.Secret
	failFor int
	calls   int
	login   *api.Secret
}

func (f *fakeSecretsRepository) SetToken(v string) {
	f.token = v
}

func (f *fakeSecretsRepository) GetSecrets(_ context.Context, _ string) (*api.Secret, error) {
	f.calls++
	if f.calls <= f.failFor {
		return nil, errors.New("vault sealed")
	}

	return f.secret, nil
}

func (f *fakeSecretsRepository) WriteWithContext(_ context.Context, _ string, _ map[string]any) (*api.Secret, error) {
	return f.login, nil
}

func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()

	t.Cleanup(func() {
		for _, key := range keys {
			_ = os.Unsetenv(key)
		}
	})
}

func TestInit(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "sandbox")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("EVENTS_DRIVER", "nats")
	t.Setenv("HTTP_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Init()
	require.NoError(t, err)

	assert.Equal(t, "sandbox", cfg.App.Env.Name)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, EventsDriverNATS, cfg.Events.Driver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTPServer.CORSAllowedOrigins)
}

func TestInit_DefaultValues(t *testing.T) {
	cfg, err := Init()
	require.NoError(t, err)

	assert.Equal(t, "svc-device-domains", cfg.App.ServiceName)
	assert.Equal(t, "/api/device-domain", cfg.App.BasePath)
	assert.Equal(t, uint(8080), cfg.HTTPServer.Port)
	assert.Equal(t, uint(9090), cfg.GRPCServer.Port)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, EventsDriverNone, cfg.Events.Driver)
	assert.False(t, cfg.Cache.Enabled)
	assert.False(t, cfg.SecretsStorage.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.DeviceDomainsCache.DeviceDomainTTL)
	assert.Equal(t, byte(1), cfg.Events.MQTTQoS)
}

func TestInit_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte("LOG_FORMAT: console\nHTTP_SERVER_PORT: 18080\nRATE_LIMITING_SKIP_PATHS:\n  - /health\n  - /metrics\nLOG_LEVEL: warn\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	unsetAfter(t, "LOG_FORMAT", "HTTP_SERVER_PORT", "RATE_LIMITING_SKIP_PATHS")

	t.Setenv(ConfigFileEnv, path)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Init()
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, uint(18080), cfg.HTTPServer.Port)
	assert.Equal(t, []string{"/health", "/metrics"}, cfg.RateLimiting.SkipPaths)
	assert.Equal(t, "error", cfg.Logging.Level, "environment wins over the file")
}

func TestInit_MissingConfigFile(t *testing.T) {
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Init()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *ServiceConfig {
		return &ServiceConfig{
			Storage:      Storage{Driver: StorageDriverPostgres},
			Events:       Events{Driver: EventsDriverNone, MQTTQoS: 1},
			Compression:  Compression{Enabled: true, Level: 5},
			RateLimiting: RateLimiting{Enabled: true, RequestsPerSecond: 10},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*ServiceConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*ServiceConfig) {}},
		{name: "unknown storage", mutate: func(c *ServiceConfig) { c.Storage.Driver = "mongo" }, wantErr: "storage driver"},
		{name: "unknown events", mutate: func(c *ServiceConfig) { c.Events.Driver = "kafka" }, wantErr: "events driver"},
		{name: "bad qos", mutate: func(c *ServiceConfig) { c.Events.MQTTQoS = 3 }, wantErr: "qos"},
		{name: "bad compression level", mutate: func(c *ServiceConfig) { c.Compression.Level = 12 }, wantErr: "compression level"},
		{name: "disabled compression ignores level", mutate: func(c *ServiceConfig) {
			c.Compression.Enabled = false
			c.Compression.Level = 0
		}},
		{name: "zero rate", mutate: func(c *ServiceConfig) { c.RateLimiting.RequestsPerSecond = 0 }, wantErr: "requests_per_second"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		env      string
		expected int
	}{
		{env: "production", expected: Production},
		{env: "prod", expected: Production},
		{env: "staging", expected: Staging},
		{env: "stg", expected: Staging},
		{env: "sandbox", expected: Sandbox},
		{env: "sbx", expected: Sandbox},
		{env: "development", expected: Development},
		{env: "unknown", expected: Development},
	}

	for _, tc := range cases {
		t.Run(tc.env, func(t *testing.T) {
			t.Parallel()

			cfg := &ServiceConfig{App: App{Env: Environment{Name: tc.env}}}

			assert.Equal(t, tc.expected, cfg.GetEnvironment())
			assert.Equal(t, tc.expected == Production, cfg.IsProduction())
		})
	}
}

func vaultConfig() *ServiceConfig {
	return &ServiceConfig{
		SecretsStorage: SecretsStorage{
			Enabled:    true,
			Token:      "root",
			AuthMethod: "token",
			MountPath:  "svc-device-domains",
			Timeout:    time.Second,
			MaxRetries: 2,
		},
	}
}

func kvSecret(version int64, data map[string]any) *api.Secret {
	return &api.Secret{
		Data: map[string]any{
			"data":     data,
			"metadata": map[string]any{"version": json.Number(strconv.FormatInt(version, 10))},
		},
	}
}

func TestLoader_Load(t *testing.T) {
	unsetAfter(t, "POSTGRES_PASSWORD", "CACHE_PASSWORD")

	cfg := vaultConfig()
	repo := &fakeSecretsRepository{
		failFor: 1,
		secret: kvSecret(4, map[string]any{
			"POSTGRES_PASSWORD": "s3cret",
			"CACHE_PASSWORD":    "c4che",
			"IGNORED_NUMBER":    42,
		}),
	}

	loader := NewLoader(cfg, repo, 0)
	loader.retryDelay = time.Millisecond

	version, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint(4), version)
	assert.Equal(t, "root", repo.token)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "c4che", cfg.Cache.Password)
	assert.Equal(t, 2, repo.calls)
}

func TestLoader_LoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		cfg := vaultConfig()
		cfg.SecretsStorage.Enabled = false

		_, err := NewLoader(cfg, &fakeSecretsRepository{}, 0).Load(context.Background())
		require.ErrorIs(t, err, ErrSecretsStorageDisabled)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		cfg := vaultConfig()
		cfg.SecretsStorage.Token = ""

		_, err := NewLoader(cfg, &fakeSecretsRepository{}, 0).Load(context.Background())
		require.ErrorContains(t, err, "token is required")
	})

	t.Run("approle without login data", func(t *testing.T) {
		t.Parallel()

		cfg := vaultConfig()
		cfg.SecretsStorage.AuthMethod = "approle"
		cfg.SecretsStorage.RoleID = "role"
		cfg.SecretsStorage.SecretID = "secret"

		_, err := NewLoader(cfg, &fakeSecretsRepository{}, 0).Load(context.Background())
		require.ErrorContains(t, err, "no auth info")
	})

	t.Run("unsupported method", func(t *testing.T) {
		t.Parallel()

		cfg := vaultConfig()
		cfg.SecretsStorage.AuthMethod = "kerberos"

		_, err := NewLoader(cfg, &fakeSecretsRepository{}, 0).Load(context.Background())
		require.ErrorContains(t, err, "unsupported auth method")
	})

	t.Run("vault unavailable", func(t *testing.T) {
		t.Parallel()

		loader := NewLoader(vaultConfig(), &fakeSecretsRepository{failFor: 10}, 0)
		loader.retryDelay = time.Millisecond

		_, err := loader.Load(context.Background())
		require.ErrorContains(t, err, "vault sealed")
	})
}

func TestLoader_ApproleLogin(t *testing.T) {
	t.Parallel()

	cfg := vaultConfig()
	cfg.SecretsStorage.AuthMethod = "approle"
	cfg.SecretsStorage.RoleID = "role"
	cfg.SecretsStorage.SecretID = "secret"

	repo := &fakeSecretsRepository{
		secret: kvSecret(1, map[string]any{}),
		login:  &api.Secret{Auth: &api.SecretAuth{ClientToken: "issued"}},
	}

	_, err := NewLoader(cfg, repo, 0).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued", repo.token)
}
