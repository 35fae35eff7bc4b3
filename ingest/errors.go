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


package ingest

import "errors"

// ErrProviderRequired is returned when a builder is constructed without an
// embedding provider.
var ErrProviderRequired = errors.New("embedding provider is required")

// ErrEmptyCatalog is returned when an index build is attempted over zero
// documents.
var ErrEmptyCatalog = errors.New("catalog contains no documents")
