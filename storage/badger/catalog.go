package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/osusume-dev/osusume/core"
	"github.com/osusume-dev/osusume/storage"
)

// Catalog implements storage.CatalogRepository for BadgerDB.
type Catalog struct {
	backend    *Backend
	ordinalSeq *badger.Sequence
}

var _ storage.CatalogRepository = (*Catalog)(nil)

// NewCatalog creates a new catalog repository on the given backend.
//
// Returns storage.CatalogRepository interface to enforce abstraction.
func NewCatalog(backend *Backend) (storage.CatalogRepository, error) {
	seq, err := backend.GetSequence(catalogOrdinalSeq)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		backend:    backend,
		ordinalSeq: seq,
	}, nil
}

// Close releases the ordinal sequence.
func (c *Catalog) Close() error {
	return c.ordinalSeq.Release()
}

// AddDocuments appends documents to the catalog in the given order.
// Ordinals come from a BadgerDB sequence, so insertion order survives
// restarts and multiple ingest batches.
func (c *Catalog) AddDocuments(ctx context.Context, docs ...*core.Document) error {
	// Validate the whole batch up front so a bad document in the middle
	// can't leave a partial batch behind.
	for _, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			return err
		}
	}

	return c.backend.WithTx(func(tx *badger.Txn) error {
		for _, doc := range docs {
			ordinal, err := c.ordinalSeq.Next()
			if err != nil {
				return err
			}

			key := makeDocumentKey(ordinal)
			if err := tx.Set(key, storage.MarshalDocument(doc)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetAll retrieves every document in insertion order.
func (c *Catalog) GetAll(ctx context.Context) ([]*core.Document, error) {
	var docs []*core.Document

	err := c.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(catalogDocPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				doc, err := storage.UnmarshalDocument(val)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Count returns the number of stored documents without reading values.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	count := 0

	err := c.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(catalogDocPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// AllTitles returns one display title per document that has one, in
// insertion order.
func (c *Catalog) AllTitles(ctx context.Context) ([]string, error) {
	docs, err := c.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(docs))
	for _, doc := range docs {
		if title := doc.Title(); title != "" {
			titles = append(titles, title)
		}
	}
	return titles, nil
}
