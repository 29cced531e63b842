package model

import (
	"bytes"
	"encoding/json"
)

// Optional is a nullable update field that distinguishes three states:
// omitted from the payload (Set false), explicitly null (Set true, Valid
// false), and carrying a value (Set true, Valid true). Plain pointers
// cannot tell the first two apart, and a null means "clear the stored value".
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON is only invoked for keys present in the payload, so Set
// records whether the field was supplied at all.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil when the field was set to null.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
