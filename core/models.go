package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// MediaType identifies the kind of catalog entry.
type MediaType int

const (
	// MediaTypeAnime represents an animated series or film.
	MediaTypeAnime MediaType = iota + 1
	// MediaTypeManga represents a comic or graphic novel.
	MediaTypeManga
)

// String returns the catalog wire name of the media type.
func (t MediaType) String() string {
	switch t {
	case MediaTypeAnime:
		return "ANIME"
	case MediaTypeManga:
		return "MANGA"
	default:
		return "UNKNOWN"
	}
}

// MediaTypeFromString parses a catalog wire name ("ANIME"/"MANGA").
// Returns 0 for unknown names; callers validate with ValidateMediaType.
func MediaTypeFromString(s string) MediaType {
	switch s {
	case "ANIME":
		return MediaTypeAnime
	case "MANGA":
		return MediaTypeManga
	default:
		return 0
	}
}

// Document is an immutable catalog record for one anime or manga title.
// Optional fields use their zero value when absent: empty titles and
// description, Popularity 0, AverageScore 0. Documents are loaded once at
// engine construction and never mutated while serving.
type Document struct {
	ID           string
	Type         MediaType
	TitleRomaji  string
	TitleEnglish string
	Description  string
	Genres       []string
	Tags         []string
	Popularity   int     // non-negative; 0 means unknown
	AverageScore float64 // 0-100; 0 means unrated
	Source       string  // originating catalog, e.g. "AniList"
}

// Title returns the best display title, preferring romaji.
func (d *Document) Title() string {
	if d.TitleRomaji != "" {
		return d.TitleRomaji
	}
	return d.TitleEnglish
}

// Candidate is a per-query scored document produced by retrieval.
// Genres, Popularity and Rating are copied out of the document at retrieval
// time so ranking math never reaches back into storage.
type Candidate struct {
	Doc        *Document
	Semantic   float64 // inner product of unit vectors, nominally [-1,1]
	Genres     []string
	Popularity int
	Rating     float64
}

// RankedResult pairs a document with its final hybrid score.
// Rankers produce these in descending score order, stable on ties.
type RankedResult struct {
	Score float64
	Doc   *Document
}

// Weights configures the linear combination used by hybrid ranking.
// All four values must be non-negative; they need not sum to 1.
type Weights struct {
	Semantic   float64
	Genre      float64
	Popularity float64
	Rating     float64
}

// DefaultWeights returns the standard ranking weights.
func DefaultWeights() Weights {
	return Weights{
		Semantic:   0.65,
		Genre:      0.20,
		Popularity: 0.10,
		Rating:     0.05,
	}
}

// FingerprintDocuments computes a BLAKE2b digest over document IDs in slice
// order. The same fingerprint is stamped into the vector index at build time
// and checked at load time, so a catalog whose iteration order drifted from
// the index build order is rejected instead of silently returning wrong
// documents.
func FingerprintDocuments(docs []*Document) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	for _, doc := range docs {
		h.Write([]byte(doc.ID))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}
