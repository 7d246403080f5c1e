package observable

import (
	"fmt"
	"slices"
	"sync"
)

// Entry is a named initial value for NewObject.
type Entry struct {
	Key   string
	Value any
}

// Object is an ordered set of named observable fields.
type Object struct {
	mu     sync.RWMutex
	keys   []string
	fields map[string]*Field[any]
}

// NewObject creates an object from entries in order. A repeated key keeps its
// first position and takes the later value. Entries with an empty key are
// skipped.
func NewObject(entries ...Entry) *Object {
	o := &Object{fields: make(map[string]*Field[any], len(entries))}
	for _, e := range entries {
		if e.Key == "" {
			continue
		}
		if f, ok := o.fields[e.Key]; ok {
			f.value = e.Value
			continue
		}
		o.keys = append(o.keys, e.Key)
		o.fields[e.Key] = New[any](e.Value)
	}
	return o
}

// Define adds a field. It fails for an empty key or an existing one.
func (o *Object) Define(key string, value any, opts ...Option[any]) error {
	if key == "" {
		return ErrEmptyKey
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.fields[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	o.keys = append(o.keys, key)
	o.fields[key] = New(value, opts...)
	return nil
}

// Keys returns field keys in definition order.
func (o *Object) Keys() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Clone(o.keys)
}

// Len returns the number of fields.
func (o *Object) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.keys)
}

// Has reports whether key is defined.
func (o *Object) Has(key string) bool {
	_, ok := o.Field(key)
	return ok
}

// Field returns the field stored under key.
func (o *Object) Field(key string) (*Field[any], bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	f, ok := o.fields[key]
	return f, ok
}

// Get returns the current value of key, or nil when it is not defined.
func (o *Object) Get(key string) any {
	v, _ := o.Lookup(key)
	return v
}

// Lookup returns the current value of key and whether it is defined.
func (o *Object) Lookup(key string) (any, bool) {
	f, ok := o.Field(key)
	if !ok {
		return nil, false
	}
	return f.Get(), true
}

// Set writes value to key, notifying its listeners.
func (o *Object) Set(key string, value any) error {
	f, ok := o.Field(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return f.Set(value)
}

// Snapshot returns the current values keyed by field name.
func (o *Object) Snapshot() map[string]any {
	keys := o.Keys()
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		out[k] = o.Get(k)
	}
	return out
}

// Bind registers listeners on the field stored under key. It returns false
// when the key is missing or the field is sealed.
func Bind(o *Object, key string, listeners ...Listener[any]) bool {
	if o == nil {
		return false
	}
	f, ok := o.Field(key)
	if !ok {
		return false
	}
	return f.OnChange(listeners...)
}
