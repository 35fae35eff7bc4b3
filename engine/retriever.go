package engine

import (
	"slices"

	"github.com/osusume-dev/osusume/core"
	"github.com/osusume-dev/osusume/vectorindex"
)

// Retriever joins vector index hits back to catalog documents.
//
// The join key is the position: vector i in the index belongs to document i
// in the corpus slice. That only holds when the index was built from the
// corpus in iteration order, which the library verifies via the corpus
// fingerprint before an engine is handed out.
type Retriever struct {
	index vectorindex.Index
	docs  []*core.Document
}

// NewRetriever creates a retriever over an index and the corpus it was
// built from. The sizes must match or positional joins would silently pair
// vectors with the wrong documents.
func NewRetriever(index vectorindex.Index, docs []*core.Document) (*Retriever, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}
	if len(docs) != index.Len() {
		return nil, ErrCorpusIndexMismatch
	}
	return &Retriever{index: index, docs: docs}, nil
}

// Retrieve embeds nothing itself: it takes an already-computed query vector,
// normalizes it and returns the k nearest documents as candidates. An empty
// vector or k <= 0 yields an empty candidate list without error. k is
// clamped to the corpus size.
func (r *Retriever) Retrieve(queryVector []float32, k int) ([]core.Candidate, error) {
	if len(queryVector) == 0 || k <= 0 {
		return []core.Candidate{}, nil
	}
	if k > len(r.docs) {
		k = len(r.docs)
	}

	query := vectorindex.NormalizeVector(queryVector)
	hits, err := r.index.Search(query, k)
	if err != nil {
		return nil, err
	}

	candidates := make([]core.Candidate, 0, len(hits))
	for _, hit := range hits {
		if hit.Position < 0 || hit.Position >= len(r.docs) {
			continue
		}
		doc := r.docs[hit.Position]
		candidates = append(candidates, core.Candidate{
			Doc:        doc,
			Semantic:   float64(hit.Score),
			Genres:     slices.Clone(doc.Genres),
			Popularity: doc.Popularity,
			Rating:     doc.AverageScore,
		})
	}
	return candidates, nil
}
