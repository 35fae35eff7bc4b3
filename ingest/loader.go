package ingest

import (
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
	"github.com/osusume-dev/osusume/core"
)

// catalogRecord is the wire shape of one entry in a catalog export file.
type catalogRecord struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	TitleRomaji  string   `json:"title_romaji"`
	TitleEnglish string   `json:"title_english"`
	Description  string   `json:"description"`
	Genres       []string `json:"genres"`
	Tags         []string `json:"tags"`
	Popularity   int      `json:"popularity"`
	AverageScore float64  `json:"average_score"`
	Source       string   `json:"source"`
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// cleanDescription strips the HTML markup catalog APIs embed in synopses
// and collapses runs of whitespace. Embedding models want plain prose.
func cleanDescription(s string) string {
	s = html.UnescapeString(s)
	s = htmlTagPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// LoadCatalogFile reads a JSON catalog export (an array of records) and
// converts it into validated documents, preserving file order. Any invalid
// record fails the whole load; a partial catalog would silently shrink the
// corpus and invalidate existing indexes.
func LoadCatalogFile(path string) ([]*core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog converts raw JSON catalog bytes into documents. See
// LoadCatalogFile.
func ParseCatalog(data []byte) ([]*core.Document, error) {
	var records []catalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	docs := make([]*core.Document, 0, len(records))
	for i, rec := range records {
		doc := &core.Document{
			ID:           rec.ID,
			Type:         core.MediaTypeFromString(rec.Type),
			TitleRomaji:  rec.TitleRomaji,
			TitleEnglish: rec.TitleEnglish,
			Description:  cleanDescription(rec.Description),
			Genres:       rec.Genres,
			Tags:         rec.Tags,
			Popularity:   rec.Popularity,
			AverageScore: rec.AverageScore,
			Source:       rec.Source,
		}
		if err := core.ValidateDocument(doc); err != nil {
			return nil, fmt.Errorf("catalog record %d (%s): %w", i, rec.ID, err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
