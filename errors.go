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


package osusume

import "errors"

// ErrIndexNotLoaded is returned when an engine is requested before
// LoadIndex has run.
var ErrIndexNotLoaded = errors.New("vector index not loaded")

// ErrCorpusMismatch is returned when the catalog document count does not
// match the index vector count. The index was built from a different
// catalog state and must be rebuilt.
var ErrCorpusMismatch = errors.New("catalog document count does not match index")

// ErrFingerprintMismatch is returned when the catalog contents differ from
// the corpus the index was built over, even though the counts agree.
var ErrFingerprintMismatch = errors.New("catalog fingerprint does not match index")
