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


package engine

import (
	"errors"
	"fmt"
)

// ErrIndexRequired is returned when an engine is constructed without a
// vector index.
var ErrIndexRequired = errors.New("vector index is required")

// ErrEmbedderRequired is returned when an engine is constructed without an
// embedding provider.
var ErrEmbedderRequired = errors.New("embedder is required")

// ErrCorpusRequired is returned when an engine is constructed without any
// catalog documents.
var ErrCorpusRequired = errors.New("catalog documents are required")

// ErrCorpusIndexMismatch is returned when the number of catalog documents
// does not match the number of indexed vectors. Positional joins would be
// meaningless, so construction fails instead.
var ErrCorpusIndexMismatch = errors.New("catalog size does not match index size")

// ErrTitleNotFound is returned when a reference title matches no document.
// Use errors.Is to test for it; the concrete error is a TitleNotFoundError
// carrying the queried title.
var ErrTitleNotFound = errors.New("title not found")

// TitleNotFoundError reports a failed title resolution. It satisfies
// errors.Is(err, ErrTitleNotFound) and keeps the original query so callers
// can echo it back to the user.
type TitleNotFoundError struct {
	Title string
}

func (e *TitleNotFoundError) Error() string {
	return fmt.Sprintf("title %q not found in catalog", e.Title)
}

// Is makes TitleNotFoundError match ErrTitleNotFound under errors.Is.
func (e *TitleNotFoundError) Is(target error) bool {
	return target == ErrTitleNotFound
}
