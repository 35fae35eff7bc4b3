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


// Package engine implements the anime/manga recommendation pipeline.
//
// A query flows through three stages:
//
//   - Retriever: the query embedding is searched in the vector index and the
//     hits are joined back to catalog documents by position, producing
//     scored Candidates
//   - Ranker: combines semantic similarity with genre overlap, popularity and
//     rating into a single hybrid score and sorts (stable, descending)
//   - Engine: the facade exposing ByText (free-text search) and ByTitle
//     (find-similar by reference title, resolved with ResolveTitle)
//
// The engine holds only immutable state after construction (the loaded
// corpus, the index handle and the embedder), so concurrent calls are safe.
// A failed embedding or index call fails that one request; the engine stays
// usable.
package engine
