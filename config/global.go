package config

import (
	"context"

	"github.com/viant/ticketconf/loader"
)

// DefaultPath is the conventional configuration location, relative to the
// working directory.
const DefaultPath = "./config/config.yaml"

// LoadGlobal loads the configuration from DefaultPath.
//
// A missing or unreadable file is returned as *loader.FileAccessError. A file
// that is not valid YAML is logged and yields (nil, nil). A document that
// does not match the schema terminates the process.
func LoadGlobal(ctx context.Context, opts ...loader.Option) (*Config, error) {
	return loader.MustLoad[Config](ctx, DefaultPath, opts...)
}
