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

import "github.com/osusume-dev/osusume/core"

// Monitor observes the stages of a single recommendation request. Dashboards
// and tests can watch where candidates come from and how ranking reorders
// them. Implementations must not retain the slices past the callback.
type Monitor interface {
	// Start is called once with the text being embedded.
	Start(query string)

	// AfterEmbedding is called with the query vector before normalization.
	AfterEmbedding(vector []float32)

	// AfterRetrieval is called with the retriever's output in index-score
	// order, before ranking.
	AfterRetrieval(candidates []core.Candidate)

	// AfterRanking is called with the full ranked list, before truncation
	// to the requested result count.
	AfterRanking(results []core.RankedResult)

	// Finish is called with the final, truncated results.
	Finish(results []core.RankedResult)
}

// noopMonitor is used when the caller does not supply a monitor.
type noopMonitor struct{}

func (noopMonitor) Start(string)                     {}
func (noopMonitor) AfterEmbedding([]float32)         {}
func (noopMonitor) AfterRetrieval([]core.Candidate)  {}
func (noopMonitor) AfterRanking([]core.RankedResult) {}
func (noopMonitor) Finish([]core.RankedResult)       {}
