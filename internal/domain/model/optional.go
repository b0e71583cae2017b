package model

// Optional records whether a field was supplied at all, separately from its
// value. The zero Optional is absent.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}

	return fallback
}
