package engine

import (
	"sort"

	"github.com/osusume-dev/osusume/core"
)

// Ranker combines the retriever's raw candidates into hybrid scores.
//
// Popularity and rating are min-max normalized within the candidate set, so
// a score only says how a candidate compares to the other candidates of the
// same query, never across queries.
type Ranker struct {
	weights core.Weights
}

// NewRanker creates a ranker with the given weight profile.
func NewRanker(weights core.Weights) (*Ranker, error) {
	if err := core.ValidateWeights(weights); err != nil {
		return nil, err
	}
	return &Ranker{weights: weights}, nil
}

// Rank scores every candidate and returns them sorted by total score,
// descending. The sort is stable: candidates with equal scores keep their
// retrieval order. referenceGenres may be nil (free-text queries have no
// reference work), in which case the genre component contributes zero.
//
// The result always has exactly one entry per candidate; ranking never
// drops anything.
func (r *Ranker) Rank(candidates []core.Candidate, referenceGenres []string) []core.RankedResult {
	if len(candidates) == 0 {
		return []core.RankedResult{}
	}

	popularity := make([]float64, len(candidates))
	rating := make([]float64, len(candidates))
	for i, c := range candidates {
		popularity[i] = float64(c.Popularity)
		rating[i] = c.Rating
	}
	popNorm := normalizeValues(popularity)
	ratingNorm := normalizeValues(rating)

	results := make([]core.RankedResult, len(candidates))
	for i, c := range candidates {
		overlap := genreOverlap(referenceGenres, c.Genres)
		total := r.weights.Semantic*c.Semantic +
			r.weights.Genre*overlap +
			r.weights.Popularity*popNorm[i] +
			r.weights.Rating*ratingNorm[i]
		results[i] = core.RankedResult{Score: total, Doc: c.Doc}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// normalizeValues min-max scales values into [0, 1]. When every value is
// equal the spread carries no signal and all entries map to 0.0, leaving the
// hybrid score to the remaining components.
func normalizeValues(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return out
	}

	for i, v := range values {
		out[i] = (v - min) / (max - min)
	}
	return out
}

// genreOverlap computes the Jaccard similarity of two genre lists. An empty
// list on either side yields 0.0. Duplicates within a list count once.
func genreOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	setA := make(map[string]struct{}, len(a))
	for _, g := range a {
		setA[g] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, g := range b {
		setB[g] = struct{}{}
	}

	intersection := 0
	for g := range setA {
		if _, ok := setB[g]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}
