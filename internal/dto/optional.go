package dto

import "encoding/json"

// Optional is a patch slot that distinguishes three states of a JSON field:
// absent (Set false), present with null (Set true, Valid false), and present
// with a value (Set true, Valid true). Handlers decode PATCH bodies into
// structs of Optional fields so services can apply omitted-means-untouched,
// null-means-cleared semantics.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON is only invoked for fields present in the body, which is what
// makes Set a reliable provided-marker.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil when the field was null.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
