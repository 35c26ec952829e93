package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/viant/ticketconf/document"
	"github.com/viant/ticketconf/internal/conv"
)

// exit terminates the process; tests replace it.
var exit = os.Exit

// Load reads URL and decodes its content into a new T.
//
// It returns (nil, nil) when the content is not a structurally valid
// document; the parse failure is logged. Read failures are returned as
// *FileAccessError and schema mismatches as *SchemaDecodeError.
func Load[T any](ctx context.Context, URL string, opts ...Option) (*T, error) {
	return load[T](ctx, URL, newOptions(opts))
}

// MustLoad behaves like Load, except that a *SchemaDecodeError is logged at
// fatal level and terminates the process with exit code 1.
func MustLoad[T any](ctx context.Context, URL string, opts ...Option) (*T, error) {
	o := newOptions(opts)
	value, err := load[T](ctx, URL, o)
	var decodeErr *SchemaDecodeError
	if errors.As(err, &decodeErr) {
		o.logger.WithField("url", URL).WithLevel(zerolog.FatalLevel).
			Err(decodeErr.Err).
			Str("target", decodeErr.Target).
			Str("canonical", decodeErr.Canonical).
			Msg("failure to decode config")
		exit(1)
	}
	return value, err
}

func load[T any](ctx context.Context, URL string, o *options) (*T, error) {
	data, err := o.fs.DownloadWithURL(ctx, resolve(URL))
	if err != nil {
		return nil, &FileAccessError{URL: URL, Err: err}
	}

	parser := o.parser
	if parser == nil {
		parser = document.Lookup(URL)
	}
	tree, err := document.ParseWith(parser, data)
	if err != nil {
		o.logger.WithField("url", URL).Error().Err(err).Msg("failure to parse config document")
		return nil, nil
	}

	var value T
	target := fmt.Sprintf("%T", value)
	canonical, err := conv.Canonical(tree)
	if err != nil {
		return nil, &SchemaDecodeError{URL: URL, Target: target, Err: err}
	}
	if err := conv.Decode(canonical, &value); err != nil {
		return nil, &SchemaDecodeError{URL: URL, Target: target, Canonical: string(canonical), Err: err}
	}
	return &value, nil
}

// resolve turns a scheme-less relative path into an absolute one so it is
// read relative to the working directory.
func resolve(URL string) string {
	if strings.Contains(URL, "://") {
		return URL
	}
	if abs, err := filepath.Abs(URL); err == nil {
		return abs
	}
	return URL
}
