package observable

import (
	"errors"
	"slices"
	"sync"
)

// Listener is called after an effective write with the value before and
// after the write.
type Listener[T any] func(prev, next T) error

// Field is an observable value.
type Field[T any] struct {
	writeMu sync.Mutex // serialises Set including listener dispatch

	mu        sync.RWMutex
	value     T
	listeners []Listener[T]

	getter func() T
	setter func(T)
	equal  func(a, b T) bool
	sealed bool
}

// Option configures a Field.
type Option[T any] func(*Field[T])

// WithAccessors routes reads through get and writes through set. Either may
// be nil: without a getter reads return the stored value, without a setter
// writes update the stored value.
func WithAccessors[T any](get func() T, set func(T)) Option[T] {
	return func(f *Field[T]) {
		f.getter = get
		f.setter = set
	}
}

// WithEqual overrides the no-op write check. NaN handling is then up to eq.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(f *Field[T]) {
		if eq != nil {
			f.equal = eq
		}
	}
}

// Sealed marks the field as not observable.
func Sealed[T any]() Option[T] {
	return func(f *Field[T]) {
		f.sealed = true
	}
}

// New creates a field holding initial.
func New[T any](initial T, opts ...Option[T]) *Field[T] {
	f := &Field[T]{
		value: initial,
		equal: func(a, b T) bool { return Same(a, b) },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Get returns the current value.
func (f *Field[T]) Get() T {
	if f.getter != nil {
		return f.getter()
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Set writes v and notifies listeners unless the write is a no-op.
func (f *Field[T]) Set(v T) error {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	prev := f.Get()
	if f.equal(prev, v) {
		return nil
	}

	if f.setter != nil {
		f.setter(v)
	} else {
		f.mu.Lock()
		f.value = v
		f.mu.Unlock()
	}

	f.mu.RLock()
	listeners := slices.Clone(f.listeners)
	f.mu.RUnlock()

	next := f.Get()
	var errs []error
	for _, l := range listeners {
		if err := l(prev, next); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OnChange registers listeners. It returns false, registering nothing, when
// the field is sealed.
func (f *Field[T]) OnChange(listeners ...Listener[T]) bool {
	if f.sealed {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range listeners {
		if l != nil {
			f.listeners = append(f.listeners, l)
		}
	}
	return true
}

// Sealed reports whether the field refuses listeners.
func (f *Field[T]) Sealed() bool { return f.sealed }
