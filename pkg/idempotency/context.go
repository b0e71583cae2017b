package idempotency

import "context"

type contextKey struct{}

// FromContext reports the idempotency key attached to ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(contextKey{}).(string)

	return key, ok && key != ""
}

func WithKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, contextKey{}, key)
}
