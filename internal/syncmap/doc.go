// Package syncmap offers a lightweight, generic, concurrency-safe map keyed by
// string and guarded by a sync.RWMutex. It backs the document parser registry.
package syncmap
