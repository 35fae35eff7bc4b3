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


// Package ingest loads catalog exports and builds the vector index.
//
// Loading and building are offline steps: the loader parses a JSON catalog
// export into documents, and the Builder embeds every document and
// assembles a flat index whose vector positions mirror the document order.
// The builder stamps the corpus fingerprint into the index so the serving
// side can refuse an index built from a different corpus.
package ingest
