package model

import (
	"bytes"
	"encoding/json"
)

// OptionalString tracks whether a JSON key was present, so that an explicit
// null can be told apart from an omitted field.
type OptionalString struct {
	Set   bool
	Value *string
}

// Some returns a present, non-null value
func Some(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

// Null returns a present value that clears the field
func Null() OptionalString {
	return OptionalString{Set: true}
}

// OptionalFrom returns a present value that is null when p is nil
func OptionalFrom(p *string) OptionalString {
	return OptionalString{Set: true, Value: p}
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// IsZero reports an absent value; used by the omitzero JSON option.
func (o OptionalString) IsZero() bool {
	return !o.Set
}
