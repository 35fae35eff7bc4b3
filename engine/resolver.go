package engine

import (
	"strings"

	"github.com/osusume-dev/osusume/core"
)

// ResolveTitle finds the reference document for a user-supplied title. The
// match is a case-insensitive substring test against the romaji title, then
// the english title, of each document in corpus order; the first hit wins.
// Misses return a TitleNotFoundError carrying the query.
//
// Substring matching means "frieren" finds "Sousou no Frieren" without the
// user typing the full title. It also means short queries can land on the
// wrong work; first-in-corpus-order keeps that at least deterministic.
func ResolveTitle(query string, docs []*core.Document) (*core.Document, error) {
	needle := strings.ToLower(query)

	for _, doc := range docs {
		if doc.TitleRomaji != "" && strings.Contains(strings.ToLower(doc.TitleRomaji), needle) {
			return doc, nil
		}
		if doc.TitleEnglish != "" && strings.Contains(strings.ToLower(doc.TitleEnglish), needle) {
			return doc, nil
		}
	}

	return nil, &TitleNotFoundError{Title: query}
}
