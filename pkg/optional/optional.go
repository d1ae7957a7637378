// Package optional provides a generic container that holds zero or one value.
package optional

// Optional holds either nothing or exactly one value of type T. Values are
// stored inline, the zero value is an empty Optional.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns an Optional holding v.
func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Empty returns an Optional holding nothing.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// OfPointer returns an Optional holding the pointee, or an empty Optional
// when v is nil.
func OfPointer[T any](v *T) Optional[T] {
	if v == nil {
		return Empty[T]()
	}
	return Of(*v)
}

// OfReceive builds an Optional from the two-value form of a channel receive
// or map lookup: present when ok is true.
func OfReceive[T any](v T, ok bool) Optional[T] {
	if !ok {
		return Empty[T]()
	}
	return Of(v)
}

// Get returns the held value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the held value, panicking when the Optional is empty.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("optional: MustGet called on an empty optional")
	}
	return o.value
}

// GetOrDefault returns the held value, or d when the Optional is empty.
func (o Optional[T]) GetOrDefault(d T) T {
	if !o.present {
		return d
	}
	return o.value
}

// IsPresent reports whether the Optional holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsEmpty reports whether the Optional holds nothing.
func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// IfPresent invokes fn with the held value when one is present.
func (o Optional[T]) IfPresent(fn func(v T)) {
	if o.present {
		fn(o.value)
	}
}
