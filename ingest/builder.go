package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/osusume-dev/osusume/ai"
	"github.com/osusume-dev/osusume/core"
	"github.com/osusume-dev/osusume/engine"
	"github.com/osusume-dev/osusume/vectorindex"
	"github.com/panjf2000/ants/v2"
)

const defaultBatchSize = 32

// Builder embeds catalog documents and assembles the flat vector index.
// Batches are embedded concurrently on a worker pool, but every vector is
// written to its document's position, so the finished index preserves
// corpus order no matter how the batches interleave.
type Builder struct {
	embedder  ai.Embedder
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}

		if b.pool != nil {
			b.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithBatchSize sets how many documents are embedded per request.
// Default is 32.
func WithBatchSize(size int) Option {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		b.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates an index builder backed by the provider's embedder.
func NewBuilder(provider ai.Provider, opts ...Option) (*Builder, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		embedder:  provider.Embedder(),
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(b); err != nil {
			b.Release()
			return nil, err
		}
	}

	return b, nil
}

// Build embeds every document and returns a flat index with one vector per
// document, at the document's position, unit normalized, with the corpus
// fingerprint stamped in. Any embedding failure fails the whole build; a
// partially built index would break the positional contract.
func (b *Builder) Build(ctx context.Context, docs []*core.Document) (*vectorindex.Flat, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCatalog
	}

	b.logger.Info("building vector index", "documents", len(docs), "batchSize", b.batchSize)

	vectors := make([][]float32, len(docs))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for start := 0; start < len(docs); start += b.batchSize {
		end := start + b.batchSize
		if end > len(docs) {
			end = len(docs)
		}
		batchStart, batchEnd := start, end

		wg.Add(1)
		task := func() {
			defer wg.Done()

			texts := make([]string, batchEnd-batchStart)
			for i := batchStart; i < batchEnd; i++ {
				texts[i-batchStart] = engine.BuildDocumentText(docs[i])
			}

			embeddings, err := b.embedder.EmbedTexts(ctx, texts)
			if err != nil {
				setErr(fmt.Errorf("embedding batch %d-%d: %w", batchStart, batchEnd, err))
				return
			}
			if len(embeddings) != len(texts) {
				setErr(fmt.Errorf("embedding result mismatch. expected %d, received %d",
					len(texts), len(embeddings)))
				return
			}

			for i, embedding := range embeddings {
				vectors[batchStart+i] = vectorindex.NormalizeVector(embedding)
			}
		}
		if err := b.pool.Submit(task); err != nil {
			wg.Done()
			setErr(err)
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	index, err := vectorindex.NewFlat(len(vectors[0]))
	if err != nil {
		return nil, err
	}
	if err := index.Add(vectors); err != nil {
		return nil, err
	}
	index.SetFingerprint(core.FingerprintDocuments(docs))

	b.logger.Info("vector index built", "vectors", index.Len(), "dim", index.Dim())
	return index, nil
}

// BuildAndSave builds the index and writes it to path.
func (b *Builder) BuildAndSave(ctx context.Context, docs []*core.Document, path string) error {
	index, err := b.Build(ctx, docs)
	if err != nil {
		return err
	}
	return index.Save(path)
}

// Release releases the worker pool.
// The builder should not be used after calling Release.
func (b *Builder) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}
