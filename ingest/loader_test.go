package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osusume-dev/osusume/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `[
  {
    "id": "ANILIST_5114",
    "type": "ANIME",
    "title_romaji": "Hagane no Renkinjutsushi: Fullmetal Alchemist",
    "title_english": "Fullmetal Alchemist: Brotherhood",
    "description": "Two brothers search for the Philosopher's Stone.<br><br>Based on the manga.",
    "genres": ["Action", "Adventure", "Drama", "Fantasy"],
    "tags": ["Alchemy", "Military"],
    "popularity": 800000,
    "average_score": 90,
    "source": "AniList"
  },
  {
    "id": "MANGADEX_berserk",
    "type": "MANGA",
    "title_english": "Berserk",
    "genres": ["Action", "Horror"],
    "popularity": 400000,
    "average_score": 93,
    "source": "MangaDex"
  }
]`

func TestParseCatalog(t *testing.T) {
	docs, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	first := docs[0]
	assert.Equal(t, "ANILIST_5114", first.ID)
	assert.Equal(t, core.MediaTypeAnime, first.Type)
	assert.Equal(t, "Hagane no Renkinjutsushi: Fullmetal Alchemist", first.TitleRomaji)
	assert.Equal(t, "Fullmetal Alchemist: Brotherhood", first.TitleEnglish)
	assert.Equal(t, []string{"Action", "Adventure", "Drama", "Fantasy"}, first.Genres)
	assert.Equal(t, []string{"Alchemy", "Military"}, first.Tags)
	assert.Equal(t, 800000, first.Popularity)
	assert.InDelta(t, 90.0, first.AverageScore, 1e-9)

	// HTML markup is stripped and whitespace collapsed.
	assert.Equal(t,
		"Two brothers search for the Philosopher's Stone. Based on the manga.",
		first.Description)

	second := docs[1]
	assert.Equal(t, core.MediaTypeManga, second.Type)
	assert.Empty(t, second.TitleRomaji)
	assert.Empty(t, second.Tags)
}

func TestParseCatalog_PreservesOrder(t *testing.T) {
	docs, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	assert.Equal(t, "ANILIST_5114", docs[0].ID)
	assert.Equal(t, "MANGADEX_berserk", docs[1].ID)
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "malformed json",
			data: `{not json`,
			want: nil,
		},
		{
			name: "unknown media type",
			data: `[{"id": "x", "type": "NOVEL", "source": "AniList"}]`,
			want: core.ErrInvalidMediaType,
		},
		{
			name: "missing id",
			data: `[{"id": "", "type": "ANIME", "source": "AniList"}]`,
			want: core.ErrEmptyDocumentID,
		},
		{
			name: "negative popularity",
			data: `[{"id": "x", "type": "ANIME", "popularity": -1, "source": "AniList"}]`,
			want: core.ErrNegativePopularity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0644))

	docs, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestLoadCatalogFile_Missing(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "Just a synopsis.", want: "Just a synopsis."},
		{name: "break tags", in: "Line one.<br><br>Line two.", want: "Line one. Line two."},
		{name: "italics", in: "<i>Source: AniList</i>", want: "Source: AniList"},
		{name: "entities", in: "Cats &amp; dogs", want: "Cats & dogs"},
		{name: "whitespace runs", in: "a\n\n   b\tc", want: "a b c"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanDescription(tt.in))
		})
	}
}
