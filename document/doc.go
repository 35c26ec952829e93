// Package document turns raw configuration text into a schema-neutral tree of
// map[string]any, []any and scalar values. Parsers are selected by resource
// extension from a registry, so a new source format only needs a Parser
// registered here; nothing downstream depends on the original text format.
package document
