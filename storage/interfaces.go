package storage

import (
	"context"

	"github.com/osusume-dev/osusume/core"
)

// CatalogRepository provides operations for the immutable title catalog.
// Implementations must be thread-safe and support concurrent access.
type CatalogRepository interface {
	// AddDocuments appends documents to the catalog in the given order.
	// Each document is validated before storage; the first invalid document
	// aborts the whole batch. Append order is permanent: it defines the
	// iteration order of GetAll and therefore the index position mapping.
	AddDocuments(ctx context.Context, docs ...*core.Document) error

	// GetAll retrieves every document in insertion order. The order is
	// stable across calls and process restarts.
	GetAll(ctx context.Context) ([]*core.Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// AllTitles returns one display title per document that has one,
	// in insertion order. Used for autocomplete in front ends.
	AllTitles(ctx context.Context) ([]string, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
