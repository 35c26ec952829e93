package document

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// TOML parses a TOML document; the root is always a table.
var TOML Parser = ParserFunc(parseTOML)

func parseTOML(data []byte) (any, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	if len(tree) == 0 {
		return nil, nil
	}
	return normalize(tree), nil
}
