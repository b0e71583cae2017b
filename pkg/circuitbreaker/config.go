package circuitbreaker

import "time"

type Config struct {
	// Name identifies the breaker in logs and metrics.
	Name string

	// Enabled false makes New return nil; Execute then calls through.
	Enabled bool

	// MaxRequests is the number of probes allowed while half-open. Zero means one.
	MaxRequests uint

	// Interval clears the counts while closed. Zero never clears them.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing. Zero means 60s.
	Timeout time.Duration

	// FailureThreshold consecutive failures trip the breaker.
	FailureThreshold uint

	// IsSuccessful classifies errors that must not count as failures, such as
	// a lookup that found nothing. Nil counts every error.
	IsSuccessful func(err error) bool

	// OnStateChange is notified on every transition.
	OnStateChange func(name, from, to string)
}
