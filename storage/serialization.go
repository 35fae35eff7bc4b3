// Copyright 2025 Osusume Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/osusume-dev/osusume/core"
)

// DocumentMUS is the MUS-format serializer for core.Document, written by
// hand against the mus-go primitive serializers. Field order is the wire
// format; append new fields at the end only.
var DocumentMUS = documentSer{}

type documentSer struct{}

// Marshal writes doc into bs and returns the number of bytes written.
// bs must be at least Size(doc) bytes long.
func (documentSer) Marshal(doc core.Document, bs []byte) (n int) {
	n = ord.String.Marshal(doc.ID, bs)
	n += varint.Int.Marshal(int(doc.Type), bs[n:])
	n += ord.String.Marshal(doc.TitleRomaji, bs[n:])
	n += ord.String.Marshal(doc.TitleEnglish, bs[n:])
	n += ord.String.Marshal(doc.Description, bs[n:])
	n += marshalStringSlice(doc.Genres, bs[n:])
	n += marshalStringSlice(doc.Tags, bs[n:])
	n += varint.Int.Marshal(doc.Popularity, bs[n:])
	n += varint.Float64.Marshal(doc.AverageScore, bs[n:])
	n += ord.String.Marshal(doc.Source, bs[n:])
	return n
}

// Unmarshal reads a document from bs, returning it together with the number
// of bytes consumed.
func (documentSer) Unmarshal(bs []byte) (doc core.Document, n int, err error) {
	var n1 int
	if doc.ID, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	var mediaType int
	if mediaType, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	doc.Type = core.MediaType(mediaType)
	n += n1
	if doc.TitleRomaji, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.TitleEnglish, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.Description, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.Genres, n1, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.Tags, n1, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.Popularity, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.AverageScore, n1, err = varint.Float64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.Source, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return doc, n, nil
}

// Size returns the number of bytes Marshal will write for doc.
func (documentSer) Size(doc core.Document) (size int) {
	size = ord.String.Size(doc.ID)
	size += varint.Int.Size(int(doc.Type))
	size += ord.String.Size(doc.TitleRomaji)
	size += ord.String.Size(doc.TitleEnglish)
	size += ord.String.Size(doc.Description)
	size += sizeStringSlice(doc.Genres)
	size += sizeStringSlice(doc.Tags)
	size += varint.Int.Size(doc.Popularity)
	size += varint.Float64.Size(doc.AverageScore)
	size += ord.String.Size(doc.Source)
	return size
}

func marshalStringSlice(values []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(values), bs)
	for _, v := range values {
		n += ord.String.Marshal(v, bs[n:])
	}
	return n
}

func unmarshalStringSlice(bs []byte) (values []string, n int, err error) {
	count, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if count < 0 {
		return nil, n, fmt.Errorf("%w: negative slice length %d", ErrSerializationFailed, count)
	}
	if count == 0 {
		return nil, n, nil
	}
	values = make([]string, 0, count)
	for i := 0; i < count; i++ {
		v, n1, err := ord.String.Unmarshal(bs[n:])
		if err != nil {
			return nil, n, err
		}
		n += n1
		values = append(values, v)
	}
	return values, n, nil
}

func sizeStringSlice(values []string) (size int) {
	size = varint.Int.Size(len(values))
	for _, v := range values {
		size += ord.String.Size(v)
	}
	return size
}

// MarshalDocument serializes a Document to bytes.
func MarshalDocument(doc *core.Document) []byte {
	buf := make([]byte, DocumentMUS.Size(*doc))
	DocumentMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalDocument deserializes a Document from bytes.
func UnmarshalDocument(data []byte) (*core.Document, error) {
	doc, _, err := DocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &doc, nil
}
