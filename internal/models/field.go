package models

import "encoding/json"

// Field is an optional JSON value that remembers whether its key was sent.
// A key sent as null gives Set=true with a nil Value.
type Field[T any] struct {
	Set   bool
	Value *T
}

// NewField returns a Field that was sent with v.
func NewField[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// NullField returns a Field that was sent as null.
func NullField[T any]() Field[T] {
	return Field[T]{Set: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// column is the value to write for a sent key: the value itself, or nil for SQL NULL.
func (f Field[T]) column() interface{} {
	if f.Value == nil {
		return nil
	}
	return *f.Value
}
