package loader

import (
	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/ticketconf/document"
	"github.com/viant/ticketconf/internal/logger"
)

type options struct {
	fs     afs.Service
	logger *logger.Logger
	parser document.Parser
}

// Option modifies loader behaviour.
type Option func(*options)

// WithFS sets the storage service used to read resources. Defaults to afs.New().
func WithFS(fs afs.Service) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithLogger sets the logger that records structural parse failures and
// fatal decode failures.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// WithParser forces a document parser regardless of the resource extension.
func WithParser(parser document.Parser) Option {
	return func(o *options) {
		o.parser = parser
	}
}

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = logger.NewLogger("loader")
	}
	return ret
}
