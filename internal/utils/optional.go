package utils

import "encoding/json"

// Optional is a JSON field that knows whether it was present in the payload.
// Set stays false for absent fields, so patch updates can tell "leave alone"
// apart from "set to the zero value" (including an explicit null).
type Optional[T any] struct {
	Set   bool
	Value T
}

func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: value}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}
