package engine

import (
	"strings"

	"github.com/osusume-dev/osusume/core"
)

// BuildDocumentText assembles the text that stands in for a document in
// embedding space: romaji title, english title, genres, tags, then the
// description, joined by single spaces with empty fields left out.
//
// Both the index builder and ByTitle use this, so a document's stored
// vector and its query-time reference text always agree.
func BuildDocumentText(doc *core.Document) string {
	parts := make([]string, 0, 5)

	if doc.TitleRomaji != "" {
		parts = append(parts, doc.TitleRomaji)
	}
	if doc.TitleEnglish != "" {
		parts = append(parts, doc.TitleEnglish)
	}
	if len(doc.Genres) > 0 {
		parts = append(parts, strings.Join(doc.Genres, " "))
	}
	if len(doc.Tags) > 0 {
		parts = append(parts, strings.Join(doc.Tags, " "))
	}
	if doc.Description != "" {
		parts = append(parts, doc.Description)
	}

	return strings.Join(parts, " ")
}
