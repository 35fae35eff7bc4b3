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


// Package ai provides abstractions for the embedding services used by the
// recommendation engine.
//
// The engine and the offline index builder depend only on the Embedder and
// Provider interfaces defined here, never on a concrete client. Two
// implementation sub-packages exist:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//     (OpenAI, Ollama, LocalAI, vLLM) via langchaingo
//   - ai/mock: deterministic test doubles with no network dependency
//
// Public constructors (openai.NewProvider, openai.NewEmbedder) return the
// interface types to keep callers decoupled from the client library. Mock
// constructors return concrete types so tests can inject behavior and assert
// on call counts.
//
// An engine instance assumes one fixed embedding dimension for its lifetime:
// the model configured here must be the one the vector index was built with.
package ai
