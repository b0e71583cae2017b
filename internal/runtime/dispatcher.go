package runtime

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

const defaultShutdownTimeout = 30 * time.Second

type ServiceCtx struct {
	deps            *dependencies
	shutdownChannel chan os.Signal
	serverCtx       context.Context
	serverStopFunc  context.CancelFunc
	serverReady     chan struct{}
	shutdownTimeout time.Duration
}

func New(opts ...ServiceOption) *ServiceCtx {
	ctx := &ServiceCtx{
		shutdownChannel: make(chan os.Signal, 1),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

func (c *ServiceCtx) Run() {
	if err := c.build(); err != nil {
		log.Fatalf("failed to build service: %v", err)
	}

	c.startService()
	c.shutdownHook()
	c.monitorConfigChanges()

	// Waits for one of the following shutdown conditions to happen.
	select {
	case <-c.serverCtx.Done():
	case <-c.shutdownChannel:
		defer close(c.shutdownChannel)
	}

	c.shutdown()
}

func (c *ServiceCtx) build() error {
	c.serverCtx, c.serverStopFunc = context.WithCancel(context.Background())

	var err error

	c.deps, err = initializeDependencies(c.serverCtx)
	if err != nil {
		c.serverStopFunc()

		return fmt.Errorf("initializing dependencies: %w", err)
	}

	return nil
}

func (c *ServiceCtx) startService() {
	cfg := c.deps.config.HTTPServer
	addr := net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.Port), 10))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}

	c.deps.infra.logger.Info().
		Str("address", addr).
		Msg("starting the http server")

	go func() {
		if err := c.deps.infra.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.deps.infra.logger.Error().Err(err).Msg("http server stopped unexpectedly")
			c.serverStopFunc()
		}
	}()

	c.startGRPCServer()

	if c.serverReady != nil {
		close(c.serverReady)
	}
}

func (c *ServiceCtx) startGRPCServer() {
	if c.deps.infra.grpcServer == nil {
		return
	}

	cfg := c.deps.config.GRPCServer
	addr := net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.Port), 10))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on grpc server %s: %v", addr, err)
	}

	c.deps.infra.logger.Info().
		Str("address", addr).
		Msg("starting the grpc server")

	go c.deps.infra.healthServer.Watch(c.serverCtx)

	go func() {
		if err := c.deps.infra.grpcServer.Serve(listener); err != nil {
			c.deps.infra.logger.Error().Err(err).Msg("grpc server stopped unexpectedly")
			c.serverStopFunc()
		}
	}()
}

func (c *ServiceCtx) monitorConfigChanges() {
	if c.deps.configLoader == nil {
		return
	}

	reloadErrors := c.deps.configLoader.WatchConfigSignals(c.serverCtx)
	go func() {
		for err := range reloadErrors {
			if err != nil {
				c.deps.infra.logger.Error().Err(err).Msg("config reload failed")
			} else {
				c.deps.infra.logger.Info().Msg("config reloaded successfully")
			}
		}
	}()
}

func (c *ServiceCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

func (c *ServiceCtx) shutdown() {
	c.deps.infra.logger.Info().Msg("shutting down service...")

	// Cancel context that underlying processes would start cleanup.
	c.serverStopFunc()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.gracePeriod(c.deps.config.App.ShutdownTimeout))
	defer cancel()

	go func() {
		<-shutdownCtx.Done()

		if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
			c.deps.infra.logger.Error().Msg("graceful shutdown timed out.. forcing exit.")
			os.Exit(1)
		}
	}()

	c.cleanup(shutdownCtx)

	c.deps.infra.logger.Info().Msg("service shutdown complete")
}

func (c *ServiceCtx) gracePeriod(configured time.Duration) time.Duration {
	switch {
	case c.shutdownTimeout > 0:
		return c.shutdownTimeout
	case configured > 0:
		return configured
	default:
		return defaultShutdownTimeout
	}
}

// WaitForServer blocks until the listeners are bound.
// Instantiate the service with WithWaitingForServer to use it.
//
// Example:
//
//	srv := runtime.New(runtime.WithWaitingForServer())
//	go srv.Run()
//
//	srv.WaitForServer()
func (c *ServiceCtx) WaitForServer() {
	if c.serverReady != nil {
		<-c.serverReady
	}
}

func (c *ServiceCtx) cleanup(shutdownCtx context.Context) {
	c.deps.infra.logger.Info().Msg("cleaning up resources...")

	c.deps.cleanup(shutdownCtx)

	c.deps.infra.logger.Info().Msg("cleanup completed")
}
