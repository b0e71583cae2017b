package runtime

import (
	"os"
	"time"
)

// ServiceOption customises a ServiceCtx before Run is called.
type ServiceOption func(*ServiceCtx)

// WithServiceTermination replaces the channel SIGINT and SIGTERM are
// delivered to, so callers can stop the service themselves.
func WithServiceTermination(ch chan os.Signal) ServiceOption {
	return func(s *ServiceCtx) {
		s.shutdownChannel = ch
	}
}

// WithWaitingForServer enables WaitForServer.
func WithWaitingForServer() ServiceOption {
	return func(s *ServiceCtx) {
		s.serverReady = make(chan struct{})
	}
}

// WithShutdownTimeout takes precedence over the configured shutdown timeout.
// Non-positive values are ignored.
func WithShutdownTimeout(timeout time.Duration) ServiceOption {
	return func(s *ServiceCtx) {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
	}
}
