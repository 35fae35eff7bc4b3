package badger

import "encoding/binary"

// Key prefixes for catalog data
const (
	catalogDocPrefix = "catdoc"
	catalogOrdinalSeq = "catdocseq"
)

// makeDocumentKey generates a key for a document by its insertion ordinal.
// The ordinal is written in BigEndian order so BadgerDB's lexicographic key
// iteration replays documents in exactly the order they were added. This is
// what makes GetAll's ordering contract hold across restarts.
func makeDocumentKey(ordinal uint64) []byte {
	prefix := catalogDocPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], ordinal)
	return buf
}
