package conv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Canonical renders a document tree (maps, slices and scalars) as indented
// JSON. Map keys are emitted in sorted order so equal trees always render to
// identical text. HTML characters are left unescaped.
func Canonical(tree any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(tree); err != nil {
		return nil, fmt.Errorf("conv.Canonical: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode unmarshals canonical JSON into the value pointed to by outPtr.
// Custom json.Unmarshaler implementations on the target type are honoured,
// which is where field level parsing and required-field checks take place.
func Decode(data []byte, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Decode: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Decode: outPtr must be a non-nil pointer")
	}
	return json.Unmarshal(data, outPtr)
}
