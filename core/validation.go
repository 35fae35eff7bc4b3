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


package core

import "fmt"

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Type must be a valid MediaType
//   - Popularity must not be negative
//   - AverageScore must be within [0, 100]
//
// NOT validated:
//   - Titles: a document without any title is still stored and retrievable;
//     it just makes a poor recommendation
//   - Genres/Tags/Description (all optional)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocumentID)
	}

	if err := ValidateMediaType(doc.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if doc.Popularity < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrNegativePopularity)
	}

	if doc.AverageScore < 0 || doc.AverageScore > 100 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrScoreOutOfRange)
	}

	return nil
}

// ValidateMediaType validates that a MediaType has a valid value.
func ValidateMediaType(t MediaType) error {
	if t != MediaTypeAnime && t != MediaTypeManga {
		return fmt.Errorf("%w: value %d", ErrInvalidMediaType, t)
	}
	return nil
}

// ValidateWeights validates that all weight components are non-negative.
func ValidateWeights(w Weights) error {
	if w.Semantic < 0 || w.Genre < 0 || w.Popularity < 0 || w.Rating < 0 {
		return ErrInvalidWeights
	}
	return nil
}
