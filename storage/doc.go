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


// Package storage provides the catalog storage abstraction layer.
//
// This package defines the repository interface that decouples catalog
// storage from the recommendation engine, allowing different backends
// (BadgerDB, in-memory) to be used interchangeably.
//
// # Ordering Contract
//
// The catalog is the left-hand side of the build/serve contract: GetAll must
// return documents in exactly the order they were added, every time, because
// the vector index refers to documents by their position in that sequence.
// Implementations guarantee this with insertion-ordered keys; callers must
// never reorder the returned slice before joining it with index positions.
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage.CatalogRepository interface to
// enforce abstraction:
//
//	catalog, err := badger.NewCatalog(backend)  // returns storage.CatalogRepository
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines. The serving path only reads; writes happen
// during offline ingestion.
package storage
