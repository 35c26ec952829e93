package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MissingFieldError reports a required field that is absent or null.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field `%s`", e.Entity, e.Field)
}

// FieldFormatError reports a field whose textual value could not be parsed.
type FieldFormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldFormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldFormatError) Unwrap() error { return e.Err }

var null = []byte("null")

// requireFields checks that data is a JSON object holding a non-null value
// for every name.
func requireFields(entity string, data []byte, names ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%s: %w", entity, err)
	}
	for _, name := range names {
		raw, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), null) {
			return &MissingFieldError{Entity: entity, Field: name}
		}
	}
	return nil
}
