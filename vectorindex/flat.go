package vectorindex

import (
	"fmt"
	"slices"
)

// Flat is an exact inner-product index: Search scans every stored vector.
// Exact search keeps scores deterministic, which the recommendation tests
// depend on; approximate structures can be swapped in behind Index if the
// corpus outgrows a linear scan.
type Flat struct {
	dim         int
	vectors     [][]float32
	fingerprint uint64
}

var _ Index = (*Flat)(nil)

// NewFlat creates an empty flat index for vectors of the given dimension.
func NewFlat(dim int) (*Flat, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	return &Flat{dim: dim}, nil
}

// Add appends vectors in order. Positions are assigned sequentially starting
// at the current Len().
func (f *Flat) Add(vectors [][]float32) error {
	for _, v := range vectors {
		if len(v) != f.dim {
			return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(v), f.dim)
		}
	}
	f.vectors = append(f.vectors, vectors...)
	return nil
}

// Search returns up to k hits ordered by score descending. Ties keep the
// lower position first so results are stable across runs.
func (f *Flat) Search(query []float32, k int) ([]Hit, error) {
	if len(query) != f.dim {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(query), f.dim)
	}
	if k <= 0 || len(f.vectors) == 0 {
		return []Hit{}, nil
	}
	if k > len(f.vectors) {
		k = len(f.vectors)
	}

	hits := make([]Hit, 0, len(f.vectors))
	for i, v := range f.vectors {
		hits = append(hits, Hit{Position: i, Score: dotProduct(query, v)})
	}

	slices.SortFunc(hits, func(a, b Hit) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return a.Position - b.Position
	})

	return hits[:k], nil
}

// Len returns the number of stored vectors.
func (f *Flat) Len() int {
	return len(f.vectors)
}

// Dim returns the configured vector dimension.
func (f *Flat) Dim() int {
	return f.dim
}

// SetFingerprint stamps the corpus fingerprint computed at build time.
func (f *Flat) SetFingerprint(fp uint64) {
	f.fingerprint = fp
}

// Fingerprint returns the corpus fingerprint stamped at build time,
// or 0 if none was set.
func (f *Flat) Fingerprint() uint64 {
	return f.fingerprint
}
