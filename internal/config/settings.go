package config

import (
	"fmt"
	"time"
)

// Compile time variables are set by -ldflags.
var (
	ServiceVersion string
	CommitSHA      string
)

const (
	Development = 1 << iota
	Sandbox
	Staging
	Production
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"

	EventsDriverNone = "none"
	EventsDriverNATS = "nats"
	EventsDriverMQTT = "mqtt"
)

type (
	ServiceConfig struct {
		App                App                `json:"app"`
		SecretsStorage     SecretsStorage     `json:"secrets_storage"`
		HTTPServer         HTTPServer         `json:"http_server"`
		GRPCServer         GRPCServer         `json:"grpc_server"`
		Storage            Storage            `json:"storage"`
		Database           Database           `json:"database"`
		SQLite             SQLite             `json:"sqlite"`
		Cache              Cache              `json:"cache"`
		DeviceDomainsCache DeviceDomainsCache `json:"device_domains_cache"`
		RateLimiting       RateLimiting       `json:"rate_limiting"`
		Idempotency        Idempotency        `json:"idempotency"`
		Compression        Compression        `json:"compression"`
		Events             Events             `json:"events"`
		CircuitBreaker     CircuitBreaker     `json:"circuit_breaker"`
		Backoff            Backoff            `json:"backoff"`
		Logging            Logging            `json:"logging"`
		Telemetry          Telemetry          `json:"telemetry"`
	}

	App struct {
		ServiceName     string        `envconfig:"APP_SERVICE_NAME" default:"svc-device-domains" json:"service_name"`
		ServiceVersion  string        `envconfig:"APP_SERVICE_VERSION" default:"dev" json:"service_version"`
		CommitSHA       string        `envconfig:"APP_COMMIT_SHA" default:"" json:"commit_sha"`
		BasePath        string        `envconfig:"APP_BASE_PATH" default:"/api/device-domain" json:"base_path"`
		ShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"30s" json:"shutdown_timeout"`
		Env             Environment   `json:"environment"`
	}

	Environment struct {
		Name string `envconfig:"APP_ENVIRONMENT" default:"development" json:"env"`
	}

	SecretsStorage struct {
		Enabled       bool          `envconfig:"VAULT_ENABLED" default:"false" json:"enabled"`
		Address       string        `envconfig:"VAULT_ADDRESS" default:"http://vault:8200" json:"address"`
		Token         string        `envconfig:"VAULT_TOKEN" default:"" json:"-"`
		RoleID        string        `envconfig:"VAULT_ROLE_ID" default:"" json:"-"`
		SecretID      string        `envconfig:"VAULT_SECRET_ID" default:"" json:"-"`
		AuthMethod    string        `envconfig:"VAULT_AUTH_METHOD" default:"token" json:"auth_method"`
		MountPath     string        `envconfig:"VAULT_MOUNT_PATH" default:"svc-device-domains" json:"mount_path"`
		Namespace     string        `envconfig:"VAULT_NAMESPACE" default:"" json:"namespace,omitempty"`
		Timeout       time.Duration `envconfig:"VAULT_TIMEOUT" default:"30s" json:"timeout"`
		MaxRetries    uint          `envconfig:"VAULT_MAX_RETRIES" default:"3" json:"max_retries"`
		TLSSkipVerify bool          `envconfig:"VAULT_TLS_SKIP_VERIFY" default:"false" json:"tls_skip_verify"`
		PollInterval  time.Duration `envconfig:"VAULT_POLL_INTERVAL" default:"24h" json:"poll_interval"`
	}

	HTTPServer struct {
		Host                  string        `envconfig:"HTTP_SERVER_HOST" default:"0.0.0.0" json:"host"`
		Port                  uint          `envconfig:"HTTP_SERVER_PORT" default:"8080" json:"port"`
		ReadTimeout           time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s" json:"read_timeout"`
		WriteTimeout          time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"15s" json:"write_timeout"`
		IdleTimeout           time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s" json:"idle_timeout"`
		RequestTimeout        time.Duration `envconfig:"HTTP_REQUEST_TIMEOUT" default:"10s" json:"request_timeout"`
		RequestValidation     bool          `envconfig:"HTTP_REQUEST_VALIDATION_ENABLED" default:"true" json:"request_validation"`
		CORSAllowedOrigins    []string      `envconfig:"HTTP_CORS_ALLOWED_ORIGINS" default:"*" json:"cors_allowed_origins"`
		MaxRequestBodyBytes   int64         `envconfig:"HTTP_MAX_REQUEST_BODY_BYTES" default:"1048576" json:"max_request_body_bytes"`
		AccessLogHealthChecks bool          `envconfig:"ACCESS_LOG_HEALTH_CHECKS" default:"false" json:"access_log_health_checks"`
		AccessLogQueryParams  bool          `envconfig:"ACCESS_LOG_INCLUDE_QUERY_PARAMS" default:"true" json:"access_log_query_params"`
	}

	GRPCServer struct {
		Enabled bool   `envconfig:"GRPC_SERVER_ENABLED" default:"true" json:"enabled"`
		Host    string `envconfig:"GRPC_SERVER_HOST" default:"0.0.0.0" json:"host"`
		Port    uint   `envconfig:"GRPC_SERVER_PORT" default:"9090" json:"port"`

		HealthProbeInterval time.Duration `envconfig:"GRPC_HEALTH_PROBE_INTERVAL" default:"10s" json:"health_probe_interval"`
	}

	Storage struct {
		Driver string `envconfig:"STORAGE_DRIVER" default:"postgres" json:"driver"`
	}

	Database struct {
		Host            string        `envconfig:"POSTGRES_HOST" default:"postgres" json:"host"`
		Port            uint          `envconfig:"POSTGRES_PORT" default:"5432" json:"port"`
		Database        string        `envconfig:"POSTGRES_DATABASE" default:"device_domains" json:"database"`
		Username        string        `envconfig:"POSTGRES_USERNAME" default:"postgres" json:"username"`
		Password        string        `envconfig:"POSTGRES_PASSWORD" default:"" json:"-"`
		SSLMode         string        `envconfig:"POSTGRES_SSL_MODE" default:"disable" json:"ssl_mode"`
		MaxConnections  int           `envconfig:"POSTGRES_MAX_CONNECTIONS" default:"25" json:"max_connections"`
		MinConnections  int           `envconfig:"POSTGRES_MIN_CONNECTIONS" default:"5" json:"min_connections"`
		ConnectTimeout  time.Duration `envconfig:"POSTGRES_CONNECT_TIMEOUT" default:"10s" json:"connect_timeout"`
		MaxConnLifetime time.Duration `envconfig:"POSTGRES_MAX_CONN_LIFETIME" default:"1h" json:"max_conn_lifetime"`
		MaxConnIdleTime time.Duration `envconfig:"POSTGRES_MAX_CONN_IDLE_TIME" default:"30m" json:"max_conn_idle_time"`
		MigrateOnStart  bool          `envconfig:"POSTGRES_MIGRATE_ON_START" default:"true" json:"migrate_on_start"`
	}

	SQLite struct {
		Path        string `envconfig:"SQLITE_PATH" default:":memory:" json:"path"`
		WALMode     bool   `envconfig:"SQLITE_WAL_MODE" default:"true" json:"wal_mode"`
		BusyTimeout uint   `envconfig:"SQLITE_BUSY_TIMEOUT" default:"5" json:"busy_timeout"`
	}

	Cache struct {
		Enabled       bool          `envconfig:"CACHE_ENABLED" default:"false" json:"enabled"`
		Address       string        `envconfig:"CACHE_ADDRESS" default:"keydb:6379" json:"address"`
		Password      string        `envconfig:"CACHE_PASSWORD" default:"" json:"-"`
		DB            uint          `envconfig:"CACHE_DB" default:"0" json:"db"`
		PoolSize      uint          `envconfig:"CACHE_POOL_SIZE" default:"10" json:"pool_size"`
		MinIdleConns  uint          `envconfig:"CACHE_MIN_IDLE_CONNS" default:"3" json:"min_idle_conns"`
		DialTimeout   time.Duration `envconfig:"CACHE_DIAL_TIMEOUT" default:"5s" json:"dial_timeout"`
		ReadTimeout   time.Duration `envconfig:"CACHE_READ_TIMEOUT" default:"3s" json:"read_timeout"`
		WriteTimeout  time.Duration `envconfig:"CACHE_WRITE_TIMEOUT" default:"3s" json:"write_timeout"`
		PoolTimeout   time.Duration `envconfig:"CACHE_POOL_TIMEOUT" default:"5s" json:"pool_timeout"`
		MaxRetries    uint          `envconfig:"CACHE_MAX_RETRIES" default:"3" json:"max_retries"`
		DefaultExpiry time.Duration `envconfig:"CACHE_DEFAULT_EXPIRY" default:"24h" json:"default_expiry"`
	}

	DeviceDomainsCache struct {
		Enabled         bool          `envconfig:"DEVICE_DOMAINS_CACHE_ENABLED" default:"true" json:"enabled"`
		DeviceDomainTTL time.Duration `envconfig:"DEVICE_DOMAINS_CACHE_TTL" default:"5m" json:"device_domain_ttl"`
	}

	RateLimiting struct {
		Enabled           bool     `envconfig:"RATE_LIMITING_ENABLED" default:"true" json:"enabled"`
		RequestsPerSecond uint     `envconfig:"RATE_LIMITING_REQUESTS_PER_SECOND" default:"50" json:"requests_per_second"`
		BurstSize         uint     `envconfig:"RATE_LIMITING_BURST_SIZE" default:"100" json:"burst_size"`
		MaxKeys           uint     `envconfig:"RATE_LIMITING_MAX_KEYS" default:"10000" json:"max_keys"`
		SkipPaths         []string `envconfig:"RATE_LIMITING_SKIP_PATHS" default:"/health,/health/liveness,/health/readiness" json:"skip_paths"`
		GracefulDegraded  bool     `envconfig:"RATE_LIMITING_GRACEFUL_DEGRADED" default:"true" json:"graceful_degraded"`
	}

	Idempotency struct {
		Enabled          bool          `envconfig:"IDEMPOTENCY_ENABLED" default:"true" json:"enabled"`
		CacheTTL         time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h" json:"cache_ttl"`
		LockTTL          time.Duration `envconfig:"IDEMPOTENCY_LOCK_TTL" default:"30s" json:"lock_ttl"`
		GracefulDegraded bool          `envconfig:"IDEMPOTENCY_GRACEFUL_DEGRADED" default:"true" json:"graceful_degraded"`
	}

	Compression struct {
		Enabled      bool     `envconfig:"COMPRESSION_ENABLED" default:"true" json:"enabled"`
		Level        int      `envconfig:"COMPRESSION_LEVEL" default:"5" json:"level"`
		MinSize      int      `envconfig:"COMPRESSION_MIN_SIZE" default:"1024" json:"min_size"`
		ContentTypes []string `envconfig:"COMPRESSION_CONTENT_TYPES" json:"content_types"`
	}

	Events struct {
		Driver         string        `envconfig:"EVENTS_DRIVER" default:"none" json:"driver"`
		SubjectPrefix  string        `envconfig:"EVENTS_SUBJECT_PREFIX" default:"device_domains" json:"subject_prefix"`
		NATSURL        string        `envconfig:"EVENTS_NATS_URL" default:"nats://nats:4222" json:"nats_url"`
		MQTTBroker     string        `envconfig:"EVENTS_MQTT_BROKER" default:"tcp://mosquitto:1883" json:"mqtt_broker"`
		ClientID       string        `envconfig:"EVENTS_CLIENT_ID" default:"svc-device-domains" json:"client_id"`
		MQTTQoS        byte          `envconfig:"EVENTS_MQTT_QOS" default:"1" json:"mqtt_qos"`
		PublishTimeout time.Duration `envconfig:"EVENTS_PUBLISH_TIMEOUT" default:"5s" json:"publish_timeout"`
	}

	CircuitBreaker struct {
		Enabled          bool          `envconfig:"STORAGE_CB_ENABLED" default:"true" json:"enabled"`
		MaxRequests      uint          `envconfig:"STORAGE_CB_MAX_REQUESTS" default:"5" json:"max_requests"`
		Interval         time.Duration `envconfig:"STORAGE_CB_INTERVAL" default:"60s" json:"interval"`
		Timeout          time.Duration `envconfig:"STORAGE_CB_TIMEOUT" default:"30s" json:"timeout"`
		FailureThreshold uint          `envconfig:"STORAGE_CB_FAILURE_THRESHOLD" default:"5" json:"failure_threshold"`
	}

	Backoff struct {
		InitialInterval time.Duration `envconfig:"BACKOFF_INITIAL_INTERVAL" default:"500ms" json:"initial_interval"`
		Multiplier      float64       `envconfig:"BACKOFF_MULTIPLIER" default:"1.5" json:"multiplier"`
		MaxInterval     time.Duration `envconfig:"BACKOFF_MAX_INTERVAL" default:"10s" json:"max_interval"`
		MaxElapsedTime  time.Duration `envconfig:"BACKOFF_MAX_ELAPSED_TIME" default:"1m" json:"max_elapsed_time"`
	}

	Logging struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info" json:"level"`
		Format string `envconfig:"LOG_FORMAT" default:"json" json:"format"`
	}

	Telemetry struct {
		Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false" json:"enabled"`
		ExporterType string  `envconfig:"OTEL_EXPORTER" default:"grpc" json:"exporter_type"`
		OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"otel-collector:4317" json:"otlp_endpoint"`
		Metrics      Metrics `json:"metrics"`
		Traces       Traces  `json:"traces"`
	}

	Metrics struct {
		Enabled        bool          `envconfig:"METRICS_ENABLED" default:"false" json:"enabled"`
		ExportInterval time.Duration `envconfig:"METRICS_EXPORT_INTERVAL" default:"15s" json:"export_interval"`
	}

	Traces struct {
		Enabled      bool    `envconfig:"TRACES_ENABLED" default:"false" json:"enabled"`
		SamplerRatio float64 `envconfig:"TRACES_SAMPLER_RATIO" default:"1.0" json:"sampler_ratio"`
	}
)

func (c *ServiceConfig) GetEnvironment() int {
	switch c.App.Env.Name {
	case "production", "prod":
		return Production
	case "staging", "stg":
		return Staging
	case "sandbox", "sbx":
		return Sandbox
	default:
		return Development
	}
}

func (c *ServiceConfig) IsProduction() bool {
	return c.GetEnvironment() == Production
}

// Validate rejects combinations the runtime cannot start with.
func (c *ServiceConfig) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverSQLite:
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}

	switch c.Events.Driver {
	case EventsDriverNone, EventsDriverNATS, EventsDriverMQTT:
	default:
		return fmt.Errorf("unsupported events driver %q", c.Events.Driver)
	}

	if c.Events.MQTTQoS > 2 {
		return fmt.Errorf("mqtt qos must be 0, 1 or 2, got %d", c.Events.MQTTQoS)
	}

	if c.Compression.Enabled && (c.Compression.Level < 1 || c.Compression.Level > 9) {
		return fmt.Errorf("compression level must be between 1 and 9, got %d", c.Compression.Level)
	}

	if c.RateLimiting.Enabled && c.RateLimiting.RequestsPerSecond == 0 {
		return fmt.Errorf("rate limiting requests_per_second must be positive")
	}

	return nil
}
