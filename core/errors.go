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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyDocumentID indicates the ID field is empty.
	ErrEmptyDocumentID = errors.New("document id cannot be empty")

	// ErrInvalidMediaType indicates an invalid MediaType value.
	ErrInvalidMediaType = errors.New("invalid media type")

	// ErrNegativePopularity indicates a negative popularity count.
	ErrNegativePopularity = errors.New("popularity cannot be negative")

	// ErrScoreOutOfRange indicates an average score outside [0, 100].
	ErrScoreOutOfRange = errors.New("average score must be between 0 and 100")

	// ErrInvalidWeights indicates a Weights value with a negative component.
	ErrInvalidWeights = errors.New("ranking weights cannot be negative")
)
