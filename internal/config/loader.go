package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/vault/api"
	"github.com/kelseyhightower/envconfig"

	"github.com/architeacher/devicedomains/internal/ports"
)

var ErrSecretsStorageDisabled = errors.New("secret storage is not enabled")

type Loader struct {
	cfg              *ServiceConfig
	secretsRepo      ports.SecretsRepository
	configSignalChan chan os.Signal
	reloadErrors     chan error
	ticker           *time.Ticker
	lastVersion      uint
	retryDelay       time.Duration
}

func NewLoader(cfg *ServiceConfig, secretsRepo ports.SecretsRepository, initialVersion uint) *Loader {
	return &Loader{
		cfg:              cfg,
		secretsRepo:      secretsRepo,
		configSignalChan: make(chan os.Signal, 1),
		reloadErrors:     make(chan error, 1),
		lastVersion:      initialVersion,
		retryDelay:       time.Second,
	}
}

// Init reads CONFIG_FILE when set, then the environment.
func Init() (*ServiceConfig, error) {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg := &ServiceConfig{}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	if len(ServiceVersion) != 0 {
		cfg.App.ServiceVersion = ServiceVersion
	}

	if len(CommitSHA) != 0 {
		cfg.App.CommitSHA = CommitSHA
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service configuration: %w", err)
	}

	return cfg, nil
}

// WatchConfigSignals reloads secrets on SIGHUP or every poll interval and
// dumps the configuration on SIGUSR1. Reload outcomes are reported on the
// returned channel, which closes when ctx ends.
func (l *Loader) WatchConfigSignals(ctx context.Context) <-chan error {
	signal.Notify(l.configSignalChan, syscall.SIGHUP, syscall.SIGUSR1)

	if l.cfg.SecretsStorage.Enabled && l.cfg.SecretsStorage.PollInterval > 0 {
		l.ticker = time.NewTicker(l.cfg.SecretsStorage.PollInterval)
	}

	go func() {
		defer signal.Stop(l.configSignalChan)
		defer close(l.reloadErrors)

		var reloadTickerChan <-chan time.Time
		if l.ticker != nil {
			defer l.ticker.Stop()

			reloadTickerChan = l.ticker.C
		}

		for {
			select {
			case <-ctx.Done():
				return

			case <-reloadTickerChan:
				l.handleConfigReload(ctx)

			case sig := <-l.configSignalChan:
				switch sig {
				case syscall.SIGHUP:
					l.handleConfigReload(ctx)

				case syscall.SIGUSR1:
					l.DumpConfig()
				}
			}
		}
	}()

	return l.reloadErrors
}

// DumpConfig prints the configuration without credentials.
func (l *Loader) DumpConfig() {
	configJSON, err := json.MarshalIndent(l.cfg, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stdout, "Error marshaling config: %v\n", err)

		return
	}

	fmt.Fprintf(os.Stdout, "\n=== Configuration Dump ===\n%s\n=== End Configuration ===\n\n", string(configJSON))
}

// Load authenticates against Vault, applies the secrets stored under the
// mount path and returns their version.
func (l *Loader) Load(ctx context.Context) (uint, error) {
	if !l.cfg.SecretsStorage.Enabled {
		return 0, ErrSecretsStorageDisabled
	}

	if err := l.authenticateVault(ctx, l.cfg.SecretsStorage); err != nil {
		return 0, fmt.Errorf("failed to authenticate with Vault: %w", err)
	}

	secret, err := l.readSecret(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load secrets from Vault: %w", err)
	}

	data, err := sectionOf(secret, "data", l.cfg.SecretsStorage.MountPath)
	if err != nil {
		return 0, err
	}

	if err := l.applySecretsToConfig(data); err != nil {
		return 0, fmt.Errorf("failed to apply secrets to config: %w", err)
	}

	metadata, err := sectionOf(secret, "metadata", l.cfg.SecretsStorage.MountPath)
	if err != nil {
		return 0, err
	}

	version, err := secretVersion(metadata)
	if err != nil {
		return 0, fmt.Errorf("failed to get secret version: %w", err)
	}

	l.lastVersion = version

	return version, nil
}

func (l *Loader) authenticateVault(ctx context.Context, config SecretsStorage) error {
	switch strings.ToLower(config.AuthMethod) {
	case "token":
		if config.Token == "" {
			return fmt.Errorf("token is required for token auth method")
		}
		l.secretsRepo.SetToken(config.Token)

		return nil

	case "approle":
		if config.RoleID == "" || config.SecretID == "" {
			return fmt.Errorf("role_id and secret_id are required for approle auth method")
		}

		data := map[string]any{
			"role_id":   config.RoleID,
			"secret_id": config.SecretID,
		}

		resp, err := l.secretsRepo.WriteWithContext(ctx, "auth/approle/login", data)
		if err != nil {
			return fmt.Errorf("failed to authenticate via approle: %w", err)
		}

		if resp == nil || resp.Auth == nil {
			return fmt.Errorf("no auth info returned from Vault")
		}

		l.secretsRepo.SetToken(resp.Auth.ClientToken)

		return nil

	default:
		return fmt.Errorf("unsupported auth method: %s", config.AuthMethod)
	}
}

func (l *Loader) handleConfigReload(ctx context.Context) {
	secret, err := l.readSecret(ctx)
	if err != nil {
		l.reportReloadStatus(fmt.Errorf("failed to load secret metadata: %w", err))

		return
	}

	metadata, err := sectionOf(secret, "metadata", l.cfg.SecretsStorage.MountPath)
	if err != nil {
		l.reportReloadStatus(err)

		return
	}

	currentVersion, err := secretVersion(metadata)
	if err != nil {
		l.reportReloadStatus(fmt.Errorf("failed to get secret version: %w", err))

		return
	}

	if currentVersion == l.lastVersion {
		return
	}

	if _, err := l.Load(ctx); err != nil {
		l.reportReloadStatus(err)

		return
	}

	l.reportReloadStatus(nil)
}

func (l *Loader) readSecret(ctx context.Context) (*api.Secret, error) {
	storage := l.cfg.SecretsStorage
	path := fmt.Sprintf("apps/data/%s", storage.MountPath)

	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	var (
		secret *api.Secret
		err    error
	)

	for attempt := uint(0); attempt <= storage.MaxRetries; attempt++ {
		secret, err = l.secretsRepo.GetSecrets(ctx, path)
		if err == nil {
			return secret, nil
		}

		if attempt < storage.MaxRetries {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("reading %s: %w", path, ctx.Err())
			case <-time.After(time.Duration(attempt+1) * l.retryDelay):
			}
		}
	}

	return nil, fmt.Errorf("failed to read from path %s after %d retries: %w", path, storage.MaxRetries, err)
}

// sectionOf picks the "data" or "metadata" map of a KV v2 read.
func sectionOf(secret *api.Secret, section, mountPath string) (map[string]any, error) {
	if secret == nil || secret.Data == nil {
		return nil, nil
	}

	result, ok := secret.Data[section].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid secret format at path apps/data/%s, missing '%s' key", mountPath, section)
	}

	return result, nil
}

func secretVersion(metadata map[string]any) (uint, error) {
	if metadata == nil {
		return 0, nil
	}

	currentVersion, ok := metadata["version"]
	if !ok {
		return 0, nil
	}

	switch v := currentVersion.(type) {
	case float64:
		return uint(v), nil
	case int:
		return uint(v), nil
	case uint:
		return v, nil
	case json.Number:
		version, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("failed to parse version: %w", err)
		}

		return uint(version), nil
	default:
		return 0, fmt.Errorf("unexpected version type: %T", currentVersion)
	}
}

func (l *Loader) applySecretsToConfig(data map[string]any) error {
	for key, value := range data {
		strValue, ok := value.(string)
		if !ok || strValue == "" {
			continue
		}

		if err := os.Setenv(key, strValue); err != nil {
			return fmt.Errorf("failed to set environment variable %s: %w", key, err)
		}

		switch key {
		case "POSTGRES_USERNAME":
			l.cfg.Database.Username = strValue
		case "POSTGRES_PASSWORD":
			l.cfg.Database.Password = strValue
		case "CACHE_PASSWORD":
			l.cfg.Cache.Password = strValue
		case "EVENTS_NATS_URL":
			l.cfg.Events.NATSURL = strValue
		case "EVENTS_MQTT_BROKER":
			l.cfg.Events.MQTTBroker = strValue
		}
	}

	return nil
}

func (l *Loader) reportReloadStatus(err error) {
	select {
	case l.reloadErrors <- err:
	default:
	}
}
