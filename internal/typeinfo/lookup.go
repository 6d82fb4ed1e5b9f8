package typeinfo

import (
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Lookup indexes values by identical types. Two instantiations of the same
// generic type with identical type arguments share a key.
type Lookup[T any] struct {
	m *typeutil.Map
}

// NewLookup creates a new [Lookup].
func NewLookup[T any]() *Lookup[T] {
	m := new(typeutil.Map)
	m.SetHasher(typeutil.MakeHasher())
	return &Lookup[T]{m}
}

// Put adds a value for the type. If the type already has a value, it keeps the
// old value and returns it with false.
func (l *Lookup[T]) Put(typ types.Type, v T) (T, bool) {
	if old, ok := l.m.At(typ).(T); ok {
		return old, false
	}
	l.m.Set(typ, v)
	return *new(T), true
}

// Get finds the value for the type.
func (l *Lookup[T]) Get(typ types.Type) (T, bool) {
	if l == nil {
		return *new(T), false
	}
	v, ok := l.m.At(typ).(T)
	return v, ok
}

// Len returns the number of indexed types.
func (l *Lookup[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.m.Len()
}

