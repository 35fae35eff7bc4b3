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


// Package vectorindex provides k-nearest-neighbor search over fixed-dimension
// embedding vectors.
//
// The Index interface models an inner-product index over unit-normalized
// vectors, so returned scores are cosine similarities. Positions are assigned
// in Add order and are the join key back into the document catalog: the
// catalog's iteration order and the index's build order must be identical.
// Flat is the exact brute-force implementation used by default; it persists
// to a single file together with the corpus fingerprint used to verify that
// build/serve contract.
package vectorindex
