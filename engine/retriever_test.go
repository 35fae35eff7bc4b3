package engine

import (
	"fmt"
	"testing"

	"github.com/osusume-dev/osusume/core"
	"github.com/osusume-dev/osusume/vectorindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestIndex builds a flat index over the given already-normalized
// vectors, in order.
func buildTestIndex(t *testing.T, vectors [][]float32) vectorindex.Index {
	t.Helper()
	require.NotEmpty(t, vectors)

	index, err := vectorindex.NewFlat(len(vectors[0]))
	require.NoError(t, err)
	require.NoError(t, index.Add(vectors))
	return index
}

func retrieverCorpus(n int) []*core.Document {
	docs := make([]*core.Document, n)
	for i := range docs {
		docs[i] = &core.Document{
			ID:           fmt.Sprintf("ANILIST_%d", i),
			Type:         core.MediaTypeAnime,
			TitleRomaji:  fmt.Sprintf("Title %d", i),
			Genres:       []string{"Action"},
			Popularity:   (i + 1) * 100,
			AverageScore: 70 + float64(i),
		}
	}
	return docs
}

func TestNewRetriever_Validation(t *testing.T) {
	docs := retrieverCorpus(3)

	_, err := NewRetriever(nil, docs)
	assert.ErrorIs(t, err, ErrIndexRequired)

	index := buildTestIndex(t, [][]float32{{1, 0}, {0, 1}})
	_, err = NewRetriever(index, docs)
	assert.ErrorIs(t, err, ErrCorpusIndexMismatch)
}

func TestRetriever_Retrieve(t *testing.T) {
	index := buildTestIndex(t, [][]float32{
		{1, 0, 0},
		{0.8, 0.6, 0},
		{0, 1, 0},
	})
	docs := retrieverCorpus(3)

	retriever, err := NewRetriever(index, docs)
	require.NoError(t, err)

	candidates, err := retriever.Retrieve([]float32{1, 0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	// Nearest first, and each candidate joined to the right document.
	assert.Equal(t, "ANILIST_0", candidates[0].Doc.ID)
	assert.InDelta(t, 1.0, candidates[0].Semantic, 1e-6)
	assert.Equal(t, "ANILIST_1", candidates[1].Doc.ID)
	assert.InDelta(t, 0.8, candidates[1].Semantic, 1e-6)
	assert.Equal(t, "ANILIST_2", candidates[2].Doc.ID)
	assert.InDelta(t, 0.0, candidates[2].Semantic, 1e-6)

	// Feature fields come from the joined document.
	assert.Equal(t, 100, candidates[0].Popularity)
	assert.InDelta(t, 70.0, candidates[0].Rating, 1e-9)
	assert.Equal(t, []string{"Action"}, candidates[0].Genres)
}

func TestRetriever_Retrieve_NormalizesQuery(t *testing.T) {
	index := buildTestIndex(t, [][]float32{
		{1, 0},
		{0, 1},
	})
	retriever, err := NewRetriever(index, retrieverCorpus(2))
	require.NoError(t, err)

	// A scaled query must produce the same ranking and cosine scores as
	// the unit query.
	candidates, err := retriever.Retrieve([]float32{100, 0}, 2)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "ANILIST_0", candidates[0].Doc.ID)
	assert.InDelta(t, 1.0, candidates[0].Semantic, 1e-6)
}

func TestRetriever_Retrieve_EmptyInputs(t *testing.T) {
	index := buildTestIndex(t, [][]float32{{1, 0}})
	retriever, err := NewRetriever(index, retrieverCorpus(1))
	require.NoError(t, err)

	candidates, err := retriever.Retrieve(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, candidates)

	candidates, err = retriever.Retrieve([]float32{1, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, candidates)

	candidates, err = retriever.Retrieve([]float32{1, 0}, -3)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRetriever_Retrieve_ClampsK(t *testing.T) {
	index := buildTestIndex(t, [][]float32{
		{1, 0},
		{0, 1},
	})
	retriever, err := NewRetriever(index, retrieverCorpus(2))
	require.NoError(t, err)

	candidates, err := retriever.Retrieve([]float32{1, 0}, 50)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestRetriever_Retrieve_DimensionMismatch(t *testing.T) {
	index := buildTestIndex(t, [][]float32{{1, 0, 0}})
	retriever, err := NewRetriever(index, retrieverCorpus(1))
	require.NoError(t, err)

	_, err = retriever.Retrieve([]float32{1, 0}, 1)
	assert.ErrorIs(t, err, vectorindex.ErrDimensionMismatch)
}
