package loader

import "fmt"

// FileAccessError reports a resource that could not be read.
type FileAccessError struct {
	URL string
	Err error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failure read file %s: %v", e.URL, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// SchemaDecodeError reports a structurally valid document that does not fit
// the target type. Canonical holds the JSON text that failed to decode.
type SchemaDecodeError struct {
	URL       string
	Target    string
	Canonical string
	Err       error
}

func (e *SchemaDecodeError) Error() string {
	return fmt.Sprintf("failure to decode %s into %s: %v\n%s", e.URL, e.Target, e.Err, e.Canonical)
}

func (e *SchemaDecodeError) Unwrap() error { return e.Err }
