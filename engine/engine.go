package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/osusume-dev/osusume/ai"
	"github.com/osusume-dev/osusume/core"
	"github.com/osusume-dev/osusume/vectorindex"
)

// Default pipeline parameters. SearchK is the candidate pool handed to the
// ranker, deliberately wider than the result count so reranking has room to
// promote works the raw vector distance underrates.
const (
	DefaultSearchK  = 50
	DefaultResultsN = 10
)

// Engine is the recommendation facade. It owns the retrieve-then-rank
// pipeline and is safe for concurrent use.
type Engine struct {
	docs      []*core.Document
	retriever *Retriever
	ranker    *Ranker
	embedder  ai.Embedder
	searchK   int
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithWeights replaces the default ranking weights.
func WithWeights(weights core.Weights) Option {
	return func(e *Engine) error {
		ranker, err := NewRanker(weights)
		if err != nil {
			return err
		}
		e.ranker = ranker
		return nil
	}
}

// WithSearchK sets the candidate pool size for retrieval.
// Default is DefaultSearchK. Values below 1 are rejected at query time by
// the retriever, so this only guards configuration typos.
func WithSearchK(k int) Option {
	return func(e *Engine) error {
		e.searchK = k
		return nil
	}
}

// NewEngine creates an engine over a loaded corpus, the index built from it
// and an embedding provider. The corpus and index sizes must agree; callers
// are expected to have verified the corpus fingerprint beforehand.
func NewEngine(
	docs []*core.Document,
	index vectorindex.Index,
	provider ai.Provider,
	opts ...Option,
) (*Engine, error) {
	if len(docs) == 0 {
		return nil, ErrCorpusRequired
	}
	if provider == nil {
		return nil, ErrEmbedderRequired
	}

	retriever, err := NewRetriever(index, docs)
	if err != nil {
		return nil, err
	}
	ranker, err := NewRanker(core.DefaultWeights())
	if err != nil {
		return nil, err
	}

	e := &Engine{
		docs:      docs,
		retriever: retriever,
		ranker:    ranker,
		embedder:  provider.Embedder(),
		searchK:   DefaultSearchK,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// ByText recommends up to n documents for a free-text query.
// A blank query returns an empty result without error.
func (e *Engine) ByText(ctx context.Context, query string, n int) ([]core.RankedResult, error) {
	return e.ByTextWithMonitor(ctx, query, n, nil)
}

// ByTextWithMonitor is ByText with per-stage monitoring.
func (e *Engine) ByTextWithMonitor(ctx context.Context, query string, n int, monitor Monitor) ([]core.RankedResult, error) {
	if monitor == nil {
		monitor = noopMonitor{}
	}
	if strings.TrimSpace(query) == "" {
		return []core.RankedResult{}, nil
	}

	// Free-text queries carry no reference work, so the genre component
	// contributes nothing.
	return e.recommend(ctx, query, nil, n, monitor)
}

// ByTitle recommends up to n documents similar to the catalog work whose
// title matches the query (see ResolveTitle). A blank title returns an
// empty result without error; an unresolvable one returns a
// TitleNotFoundError.
func (e *Engine) ByTitle(ctx context.Context, title string, n int) ([]core.RankedResult, error) {
	return e.ByTitleWithMonitor(ctx, title, n, nil)
}

// ByTitleWithMonitor is ByTitle with per-stage monitoring.
func (e *Engine) ByTitleWithMonitor(ctx context.Context, title string, n int, monitor Monitor) ([]core.RankedResult, error) {
	if monitor == nil {
		monitor = noopMonitor{}
	}
	if strings.TrimSpace(title) == "" {
		return []core.RankedResult{}, nil
	}

	reference, err := ResolveTitle(title, e.docs)
	if err != nil {
		e.logger.Debug("title resolution failed", "title", title)
		return nil, err
	}
	e.logger.Debug("resolved reference title",
		"title", title, "id", reference.ID, "resolved", reference.Title())

	// The reference work stays in the candidate pool. It typically ranks
	// first and gives the caller a sanity anchor; dropping it is a
	// presentation decision, not an engine one.
	return e.recommend(ctx, BuildDocumentText(reference), reference.Genres, n, monitor)
}

// recommend runs the shared embed, retrieve, rank, truncate pipeline.
func (e *Engine) recommend(
	ctx context.Context,
	text string,
	referenceGenres []string,
	n int,
	monitor Monitor,
) ([]core.RankedResult, error) {
	monitor.Start(text)

	embedding, err := e.embedder.EmbedText(ctx, text)
	if err != nil {
		e.logger.Error("error generating embedding for query", "err", err)
		return nil, err
	}
	monitor.AfterEmbedding(embedding)

	candidates, err := e.retriever.Retrieve(embedding, e.searchK)
	if err != nil {
		e.logger.Error("error retrieving candidates", "err", err)
		return nil, err
	}
	monitor.AfterRetrieval(candidates)

	ranked := e.ranker.Rank(candidates, referenceGenres)
	monitor.AfterRanking(ranked)

	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	monitor.Finish(ranked)

	return ranked, nil
}
