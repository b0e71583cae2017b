package decorator

import (
	"context"
	"fmt"
	"strings"

	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/architeacher/devicedomains/pkg/logger"
	"github.com/architeacher/devicedomains/pkg/metrics"
)

type (
	Command any

	CommandHandler[C Command, R any] interface {
		Handle(context.Context, C) (R, error)
	}

	// CommandHandlerFunc lets a plain function serve as a CommandHandler.
	CommandHandlerFunc[C Command, R any] func(context.Context, C) (R, error)
)

func (f CommandHandlerFunc[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	return f(ctx, cmd)
}

// ApplyCommandDecorators returns handler wrapped, from the outside in, by the
// logging, metrics and tracing layers.
func ApplyCommandDecorators[C Command, R any](
	handler CommandHandler[C, R],
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CommandHandler[C, R] {
	handler = commandTracingDecorator[C, R]{base: handler, tracerProvider: tracerProvider}
	handler = commandMetricsDecorator[C, R]{base: handler, client: metricsClient}

	return commandLoggingDecorator[C, R]{base: handler, logger: log}
}

// generateActionName is the bare type name of v: no package, pointer or
// type arguments.
func generateActionName(v any) string {
	name := fmt.Sprintf("%T", v)

	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}

	return name[strings.LastIndexByte(name, '.')+1:]
}
