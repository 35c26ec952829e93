package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSON parses a single JSON value. Numbers are kept as json.Number so large
// integers survive re-rendering unchanged.
var JSON Parser = ParserFunc(parseJSON)

func parseJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var tree any
	if err := decoder.Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("json: %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("json: unexpected data after top-level value")
	}
	return tree, nil
}
