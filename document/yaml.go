package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMultipleDocuments is returned when a YAML stream holds more than one document.
var ErrMultipleDocuments = errors.New("multiple documents in stream")

// YAML parses a single-document YAML stream.
var YAML Parser = ParserFunc(parseYAML)

func parseYAML(data []byte) (any, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var tree any
	if err := decoder.Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml: %w", err)
	}
	var next any
	if err := decoder.Decode(&next); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		return nil, fmt.Errorf("yaml: %w", ErrMultipleDocuments)
	}
	return normalize(tree), nil
}

// normalize rewrites mappings with non-string keys into map[string]any so the
// tree can be rendered as JSON. Floats become json.Number values that keep a
// fraction or exponent, so 2.0 never decodes into an integer field.
func normalize(value any) any {
	switch actual := value.(type) {
	case map[string]any:
		for k, item := range actual {
			actual[k] = normalize(item)
		}
		return actual
	case map[any]any:
		out := make(map[string]any, len(actual))
		for k, item := range actual {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range actual {
			actual[i] = normalize(item)
		}
		return actual
	case float64:
		return floatNumber(actual)
	default:
		return value
	}
}

// floatNumber keeps NaN and infinities as float64; rendering rejects them.
func floatNumber(v float64) any {
	text := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(text, "IN") {
		return v
	}
	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}
	return json.Number(text)
}
