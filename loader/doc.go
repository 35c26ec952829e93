// Package loader reads a configuration resource and decodes it into an
// arbitrary Go type in two stages: the source text is parsed into a
// schema-neutral document tree, the tree is rendered as canonical JSON, and
// that JSON is decoded into the caller's type.
//
// Failures are split three ways. A resource that cannot be read yields a
// *FileAccessError. A resource that is not a structurally valid document is
// logged and yields no value and no error. A document that does not fit the
// target type yields a *SchemaDecodeError, which MustLoad turns into process
// termination.
package loader
