package document

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/viant/ticketconf/internal/syncmap"
)

var (
	// ErrEmptyDocument is returned when the source holds no document at all.
	ErrEmptyDocument = errors.New("empty document")
	// ErrNotMapping is returned when the document root is not a mapping.
	ErrNotMapping = errors.New("document root is not a mapping")
)

// Parser converts source text into a document tree.
type Parser interface {
	Parse(data []byte) (any, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(data []byte) (any, error)

// Parse calls f(data).
func (f ParserFunc) Parse(data []byte) (any, error) {
	return f(data)
}

var registry = syncmap.New[Parser]()

func init() {
	Register(".yaml", YAML)
	Register(".yml", YAML)
	Register(".json", JSON)
	Register(".toml", TOML)
}

// Register associates parser with a resource extension such as ".yaml".
// A nil parser removes the extension, so it falls back to YAML.
func Register(ext string, parser Parser) {
	if parser == nil {
		registry.Delete(normalizeExt(ext))
		return
	}
	registry.Set(normalizeExt(ext), parser)
}

// Lookup returns the parser registered for URL's extension, falling back to YAML.
func Lookup(URL string) Parser {
	if parser, ok := registry.Lookup(normalizeExt(path.Ext(URL))); ok {
		return parser
	}
	return YAML
}

// Parse parses data with the parser registered for URL and checks that the
// result is a non-empty mapping.
func Parse(URL string, data []byte) (map[string]any, error) {
	return ParseWith(Lookup(URL), data)
}

// ParseWith parses data with parser and checks that the result is a
// non-empty mapping.
func ParseWith(parser Parser, data []byte) (map[string]any, error) {
	tree, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, ErrEmptyDocument
	}
	root, ok := tree.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, tree)
	}
	return root, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
