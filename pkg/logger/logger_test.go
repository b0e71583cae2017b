package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/architeacher/devicedomains/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: logger.LogLevelDebug, expected: zerolog.DebugLevel},
		{name: "upper case warn", level: "WARN", expected: zerolog.WarnLevel},
		{name: "warning alias", level: logger.LogLevelWarning, expected: zerolog.WarnLevel},
		{name: "error with spaces", level: " error ", expected: zerolog.ErrorLevel},
		{name: "unknown falls back to info", level: "verbose", expected: zerolog.InfoLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, logger.ParseLevel(tc.level))
		})
	}
}

func TestNewWithWriterHonoursLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.LogLevelWarn, logger.JSONLoggingFormat, &buf)

	log.Info().Msg("dropped")
	require.Zero(t, buf.Len())

	log.Warn().Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "kept", entry["message"])
	require.Contains(t, entry, "time")
}

func TestWithService(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.LogLevelInfo, logger.JSONLoggingFormat, &buf).
		WithService("svc-device-domains", "1.2.3")

	log.Info().Msg("started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "svc-device-domains", entry["service"])
	require.Equal(t, "1.2.3", entry["version"])
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                  string
		setupContext          func() context.Context
		expectedRequestID     string
		expectedCorrelationID string
	}{
		{
			name: "adds request ID to logger",
			setupContext: func() context.Context {
				return logger.ContextWithRequestID(context.Background(), "test-request-123")
			},
			expectedRequestID: "test-request-123",
		},
		{
			name: "adds correlation ID to logger",
			setupContext: func() context.Context {
				return context.WithValue(context.Background(), logger.ContextKeyCorrelationID, "corr-1")
			},
			expectedCorrelationID: "corr-1",
		},
		{
			name:         "handles empty context",
			setupContext: context.Background,
		},
		{
			name: "handles empty request ID",
			setupContext: func() context.Context {
				return logger.ContextWithRequestID(context.Background(), "")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.NewWithWriter(logger.LogLevelInfo, logger.JSONLoggingFormat, &buf)

			ctxLogger := log.WithContext(tc.setupContext())
			ctxLogger.Info().Msg("test message")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			if tc.expectedRequestID != "" {
				require.Equal(t, tc.expectedRequestID, entry["request_id"])
			} else {
				require.NotContains(t, entry, "request_id")
			}

			if tc.expectedCorrelationID != "" {
				require.Equal(t, tc.expectedCorrelationID, entry["correlation_id"])
			}
		})
	}
}
