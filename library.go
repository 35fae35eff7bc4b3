// Copyright 2025 Osusume Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package osusume recommends anime and manga: it embeds free text or a
// reference title and reranks the nearest catalog entries by genre overlap,
// popularity and rating.
package osusume

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osusume-dev/osusume/ai"
	"github.com/osusume-dev/osusume/ai/openai"
	"github.com/osusume-dev/osusume/core"
	"github.com/osusume-dev/osusume/engine"
	"github.com/osusume-dev/osusume/ingest"
	"github.com/osusume-dev/osusume/storage"
	"github.com/osusume-dev/osusume/storage/badger"
	"github.com/osusume-dev/osusume/vectorindex"
)

// Library bundles the catalog store, the vector index and the embedding
// provider behind one handle.
type Library struct {
	backend  *badger.Backend
	catalog  storage.CatalogRepository
	provider ai.Provider
	logger   *slog.Logger

	// Set by LoadIndex. The docs snapshot and the index are verified
	// against each other, so engines built from them can join by position.
	docs  []*core.Document
	index *vectorindex.Flat
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	aiConfig *ai.Config
	logger   *slog.Logger
}

// WithAIConfig sets the embedding endpoint configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(cfg *ai.Config) LibraryOption {
	return func(o *libraryOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) LibraryOption {
	return func(o *libraryOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Open opens the catalog store at storePath and connects the embedding
// provider. The vector index is loaded separately via LoadIndex; ingest and
// index builds run against a library without one.
func Open(storePath string, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(storePath, false)
	if err != nil {
		return nil, err
	}

	catalog, err := badger.NewCatalog(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		catalog.Close()
		backend.Close()
		return nil, err
	}

	return &Library{
		backend:  backend,
		catalog:  catalog,
		provider: provider,
		logger:   options.logger,
	}, nil
}

// Close releases the provider, the catalog and the backing store.
func (l *Library) Close() error {
	if err := l.provider.Close(); err != nil {
		l.logger.Error("error closing embedding provider", "err", err)
	}

	if err := l.catalog.Close(); err != nil {
		l.logger.Error("error closing catalog", "err", err)
		return err
	}
	if err := l.backend.Close(); err != nil {
		l.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Catalog exposes the document repository for ingest and listing.
func (l *Library) Catalog() storage.CatalogRepository {
	return l.catalog
}

// LoadIndex reads the vector index from path and verifies it against the
// current catalog: the vector count must equal the document count and the
// stamped corpus fingerprint must match. Either mismatch means the index
// was built from different catalog contents and positional joins would lie,
// so loading fails.
func (l *Library) LoadIndex(ctx context.Context, path string) error {
	docs, err := l.catalog.GetAll(ctx)
	if err != nil {
		return err
	}

	index, err := vectorindex.Load(path)
	if err != nil {
		return err
	}

	if len(docs) != index.Len() {
		return fmt.Errorf("%w: %d documents, %d vectors",
			ErrCorpusMismatch, len(docs), index.Len())
	}
	if fp := core.FingerprintDocuments(docs); fp != index.Fingerprint() {
		return fmt.Errorf("%w: catalog %x, index %x",
			ErrFingerprintMismatch, fp, index.Fingerprint())
	}

	l.docs = docs
	l.index = index
	l.logger.Debug("vector index loaded", "path", path,
		"vectors", index.Len(), "dim", index.Dim())
	return nil
}

// NewEngine creates a recommendation engine over the loaded corpus and
// index. LoadIndex must have succeeded first.
func (l *Library) NewEngine(opts ...engine.Option) (*engine.Engine, error) {
	if l.index == nil {
		return nil, ErrIndexNotLoaded
	}
	return engine.NewEngine(l.docs, l.index, l.provider, opts...)
}

// NewBuilder creates an index builder backed by the library's provider.
func (l *Library) NewBuilder(opts ...ingest.Option) (*ingest.Builder, error) {
	return ingest.NewBuilder(l.provider, opts...)
}

// BuildIndex embeds the entire catalog and writes a fresh index to path.
func (l *Library) BuildIndex(ctx context.Context, path string, opts ...ingest.Option) error {
	docs, err := l.catalog.GetAll(ctx)
	if err != nil {
		return err
	}

	builder, err := l.NewBuilder(opts...)
	if err != nil {
		return err
	}
	defer builder.Release()

	return builder.BuildAndSave(ctx, docs, path)
}
