package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when the requested entity (or the owner of a
// scoped lookup) does not exist.
var ErrNotFound = errors.New("not found")

// Nullable tracks a JSON field that may be absent, null or set.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Of returns a Nullable holding v.
func Of[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// Null returns a Nullable that was explicitly set to null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON records that the field was present and whether it was null.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns nil unless a value was set.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// Strings copies s, turning nil into an empty slice.
func Strings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
