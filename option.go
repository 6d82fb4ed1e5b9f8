package optargs

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Option is a value which may be absent. A parameter or a struct field of type
// Option is optional in keyword calls. The zero value is absent.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present [Option] of v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent [Option].
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns a present [Option] of *p, or an absent one if p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.ok }

// Value returns the value, or the zero value of T if it is absent.
func (o Option[T]) Value() T { return o.value }

// Or returns the value, or def if it is absent.
func (o Option[T]) Or(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// OrElse returns the value, or the result of fn if it is absent.
func (o Option[T]) OrElse(fn func() T) T {
	if !o.ok {
		return fn()
	}
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil if it is absent.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// String implements [fmt.Stringer]. An absent value is formatted as "None".
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MarshalJSON implements [json.Marshaler]. An absent value is encoded as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON implements [json.Unmarshaler]. null is decoded as an absent
// value.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Set and Unset mark whether a required parameter has been given to a
// generated builder.
type (
	Set   struct{}
	Unset struct{}
)

// Flag is the constraint of type parameters of generated builders. Each type
// parameter is either [Set] or [Unset].
type Flag interface{ Set | Unset }
