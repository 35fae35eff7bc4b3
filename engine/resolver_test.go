package engine

import (
	"errors"
	"testing"

	"github.com/osusume-dev/osusume/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolverCorpus() []*core.Document {
	return []*core.Document{
		{
			ID:           "ANILIST_1",
			Type:         core.MediaTypeAnime,
			TitleRomaji:  "Sousou no Frieren",
			TitleEnglish: "Frieren: Beyond Journey's End",
		},
		{
			ID:          "ANILIST_2",
			Type:        core.MediaTypeAnime,
			TitleRomaji: "Shingeki no Kyojin",
		},
		{
			ID:           "MANGADEX_3",
			Type:         core.MediaTypeManga,
			TitleEnglish: "Attack on Titan",
		},
	}
}

func TestResolveTitle(t *testing.T) {
	docs := resolverCorpus()

	tests := []struct {
		name   string
		query  string
		wantID string
	}{
		{name: "exact romaji", query: "Sousou no Frieren", wantID: "ANILIST_1"},
		{name: "substring romaji", query: "frieren", wantID: "ANILIST_1"},
		{name: "case insensitive", query: "SHINGEKI", wantID: "ANILIST_2"},
		{name: "english title", query: "attack on titan", wantID: "MANGADEX_3"},
		{name: "english substring", query: "journey's end", wantID: "ANILIST_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ResolveTitle(tt.query, docs)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, doc.ID)
		})
	}
}

func TestResolveTitle_FirstMatchWins(t *testing.T) {
	docs := []*core.Document{
		{ID: "a", Type: core.MediaTypeAnime, TitleRomaji: "Monogatari Series Second Season"},
		{ID: "b", Type: core.MediaTypeAnime, TitleRomaji: "Bakemonogatari"},
	}

	// Both titles contain "monogatari"; corpus order decides.
	doc, err := ResolveTitle("monogatari", docs)
	require.NoError(t, err)
	assert.Equal(t, "a", doc.ID)
}

func TestResolveTitle_RomajiBeforeEnglish(t *testing.T) {
	docs := []*core.Document{
		{ID: "a", Type: core.MediaTypeAnime, TitleEnglish: "Vinland Saga"},
		{ID: "b", Type: core.MediaTypeAnime, TitleRomaji: "Vinland Saga"},
	}

	// Per-document the romaji field is checked first, but corpus order
	// still dominates: the first document matches on its english title.
	doc, err := ResolveTitle("vinland", docs)
	require.NoError(t, err)
	assert.Equal(t, "a", doc.ID)
}

func TestResolveTitle_NotFound(t *testing.T) {
	_, err := ResolveTitle("nonexistent-xyz", resolverCorpus())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTitleNotFound)

	var notFound *TitleNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "nonexistent-xyz", notFound.Title)
	assert.Contains(t, notFound.Error(), "nonexistent-xyz")
}

func TestResolveTitle_EmptyCorpus(t *testing.T) {
	_, err := ResolveTitle("anything", nil)
	assert.ErrorIs(t, err, ErrTitleNotFound)
}
