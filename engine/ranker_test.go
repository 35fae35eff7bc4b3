package engine

import (
	"math"
	"testing"

	"github.com/osusume-dev/osusume/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValues(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{
			name:   "spread values",
			values: []float64{1, 2, 3, 4, 5},
			want:   []float64{0.0, 0.25, 0.5, 0.75, 1.0},
		},
		{
			name:   "all equal maps to zero",
			values: []float64{5, 5, 5},
			want:   []float64{0.0, 0.0, 0.0},
		},
		{
			name:   "single value maps to zero",
			values: []float64{42},
			want:   []float64{0.0},
		},
		{
			name:   "empty",
			values: []float64{},
			want:   []float64{},
		},
		{
			name:   "negative values",
			values: []float64{-2, 0, 2},
			want:   []float64{0.0, 0.5, 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeValues(tt.values)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-12)
			}
		})
	}
}

func TestGenreOverlap(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{
			name: "partial overlap",
			a:    []string{"Action", "Fantasy"},
			b:    []string{"Fantasy", "Drama"},
			want: 1.0 / 3.0,
		},
		{
			name: "identical",
			a:    []string{"Action", "Fantasy"},
			b:    []string{"Fantasy", "Action"},
			want: 1.0,
		},
		{
			name: "disjoint",
			a:    []string{"Comedy"},
			b:    []string{"Horror"},
			want: 0.0,
		},
		{
			name: "subset",
			a:    []string{"Action"},
			b:    []string{"Action", "Adventure", "Fantasy", "Drama"},
			want: 0.25,
		},
		{
			name: "superset",
			a:    []string{"Action", "Fantasy", "Drama"},
			b:    []string{"Action", "Fantasy"},
			want: 2.0 / 3.0,
		},
		{
			name: "left empty",
			a:    nil,
			b:    []string{"Action"},
			want: 0.0,
		},
		{
			name: "right empty",
			a:    []string{"Action"},
			b:    []string{},
			want: 0.0,
		},
		{
			name: "duplicates count once",
			a:    []string{"Action", "Action"},
			b:    []string{"Action"},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, genreOverlap(tt.a, tt.b), 1e-12)
		})
	}
}

func TestGenreOverlap_HalfJaccard(t *testing.T) {
	// |A ∩ B| = 2, |A ∪ B| = 4.
	a := []string{"Action", "Fantasy", "Drama"}
	b := []string{"Action", "Fantasy", "Romance"}
	assert.InDelta(t, 0.5, genreOverlap(a, b), 1e-12)
}

func TestNewRanker_RejectsInvalidWeights(t *testing.T) {
	_, err := NewRanker(core.Weights{Semantic: -1})
	assert.ErrorIs(t, err, core.ErrInvalidWeights)
}

func rankerCandidate(id string, semantic float64, genres []string, popularity int, rating float64) core.Candidate {
	return core.Candidate{
		Doc:        &core.Document{ID: id, Type: core.MediaTypeAnime, TitleRomaji: id},
		Semantic:   semantic,
		Genres:     genres,
		Popularity: popularity,
		Rating:     rating,
	}
}

func TestRanker_Rank_Empty(t *testing.T) {
	ranker, err := NewRanker(core.DefaultWeights())
	require.NoError(t, err)

	results := ranker.Rank(nil, nil)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestRanker_Rank_KeepsEveryCandidate(t *testing.T) {
	ranker, err := NewRanker(core.DefaultWeights())
	require.NoError(t, err)

	candidates := []core.Candidate{
		rankerCandidate("a", 0.9, []string{"Action"}, 100, 70),
		rankerCandidate("b", 0.5, nil, 200, 80),
		rankerCandidate("c", 0.1, []string{"Drama"}, 300, 90),
	}
	results := ranker.Rank(candidates, nil)
	assert.Len(t, results, len(candidates))
}

func TestRanker_Rank_DescendingAndExactScores(t *testing.T) {
	ranker, err := NewRanker(core.DefaultWeights())
	require.NoError(t, err)

	// popNorm: a=0.0 b=0.5 c=1.0; ratingNorm: a=1.0 b=0.0 c=0.5.
	candidates := []core.Candidate{
		rankerCandidate("a", 1.0, []string{"Action", "Fantasy"}, 100, 90),
		rankerCandidate("b", 0.5, []string{"Action"}, 200, 70),
		rankerCandidate("c", 0.0, []string{"Romance"}, 300, 80),
	}
	reference := []string{"Action", "Fantasy"}

	results := ranker.Rank(candidates, reference)
	require.Len(t, results, 3)

	assert.Equal(t, "a", results[0].Doc.ID)
	assert.Equal(t, "b", results[1].Doc.ID)
	assert.Equal(t, "c", results[2].Doc.ID)

	// a: 0.65*1.0 + 0.20*1.0 + 0.10*0.0 + 0.05*1.0
	assert.InDelta(t, 0.90, results[0].Score, 1e-9)
	// b: 0.65*0.5 + 0.20*0.5 + 0.10*0.5 + 0.05*0.0
	assert.InDelta(t, 0.475, results[1].Score, 1e-9)
	// c: 0.65*0.0 + 0.20*0.0 + 0.10*1.0 + 0.05*0.5
	assert.InDelta(t, 0.125, results[2].Score, 1e-9)
}

func TestRanker_Rank_StableOnTies(t *testing.T) {
	ranker, err := NewRanker(core.DefaultWeights())
	require.NoError(t, err)

	// Identical feature vectors produce identical scores, so retrieval
	// order must be preserved.
	candidates := []core.Candidate{
		rankerCandidate("first", 0.7, nil, 100, 80),
		rankerCandidate("second", 0.7, nil, 100, 80),
		rankerCandidate("third", 0.7, nil, 100, 80),
	}

	results := ranker.Rank(candidates, nil)
	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Doc.ID)
	assert.Equal(t, "second", results[1].Doc.ID)
	assert.Equal(t, "third", results[2].Doc.ID)
	assert.Equal(t, results[0].Score, results[1].Score)
}

func TestRanker_Rank_NoReferenceGenres(t *testing.T) {
	ranker, err := NewRanker(core.DefaultWeights())
	require.NoError(t, err)

	candidates := []core.Candidate{
		rankerCandidate("a", 1.0, []string{"Action"}, 100, 80),
	}

	results := ranker.Rank(candidates, nil)
	require.Len(t, results, 1)
	// Single candidate: popularity and rating normalize to 0, genre term
	// is 0 without a reference, leaving only the semantic component.
	assert.InDelta(t, 0.65, results[0].Score, 1e-9)
	assert.False(t, math.IsNaN(results[0].Score))
}
