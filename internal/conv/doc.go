// Package conv renders a schema-neutral document tree into canonical JSON text
// and decodes that text into typed Go values. Keeping the two steps separate
// lets callers report the exact canonical text that failed to decode.
package conv
