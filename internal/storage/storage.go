// Package storage defines the persistence contracts between the service
// layer and the on-disk formats.
//
// Two layers:
//
//   - Provider: a serialization strategy. It knows how to turn a whole
//     list of records into one file and back, and nothing else.
//
//   - Context: one Provider bound to one file path. Services talk only
//     to a Context, so they never see paths or formats.
//
// Concrete providers live in storage/file (binary, XML, JSON, text) and
// storage/sqlite. Format and NewProvider pick one at runtime.
package storage

//go:generate mockgen -source=storage.go -destination=mocks/mocks.go -package=mocks Provider,Context

import "github.com/aanand-mishra/people-registry/internal/types"

// Provider loads and saves a complete collection of T against a file.
//
// Load returns an empty (non-nil) slice when the file does not exist or is
// empty. Save always replaces the whole file.
type Provider[T types.Record] interface {
	Load(path string) ([]T, error)
	Save(path string, data []T) error
}

// Context is the per-record-type, per-file persistence facade used by
// services.
type Context[T types.Record] interface {
	// GetAll returns every record currently stored, in stored order.
	GetAll() ([]T, error)

	// SaveAll replaces the stored collection with data.
	SaveAll(data []T) error

	// Add appends entity to the stored collection.
	Add(entity T) error
}
