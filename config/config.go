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


// Package config holds the runtime configuration, loaded from defaults, an
// optional YAML file and environment variables, in that order of precedence
// (environment wins).
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/osusume-dev/osusume/core"
)

// Config is the root configuration.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Embedding EmbeddingConfig `koanf:"embedding"`
	Engine    EngineConfig    `koanf:"engine"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig locates the on-disk artifacts.
type DataConfig struct {
	// StorePath is the BadgerDB catalog directory.
	StorePath string `koanf:"store_path"`
	// IndexPath is the serialized vector index file.
	IndexPath string `koanf:"index_path"`
}

// EmbeddingConfig configures the embedding endpoint.
type EmbeddingConfig struct {
	Host  string `koanf:"host"`
	Model string `koanf:"model"`
}

// EngineConfig configures the recommendation pipeline.
type EngineConfig struct {
	SearchK  int           `koanf:"search_k"`
	ResultsN int           `koanf:"results_n"`
	Weights  WeightsConfig `koanf:"weights"`
}

// WeightsConfig mirrors core.Weights for configuration purposes.
type WeightsConfig struct {
	Semantic   float64 `koanf:"semantic"`
	Genre      float64 `koanf:"genre"`
	Popularity float64 `koanf:"popularity"`
	Rating     float64 `koanf:"rating"`
}

// Weights converts to the engine's weight type.
func (w WeightsConfig) Weights() core.Weights {
	return core.Weights{
		Semantic:   w.Semantic,
		Genre:      w.Genre,
		Popularity: w.Popularity,
		Rating:     w.Rating,
	}
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// SlogLevel parses the configured level. Unknown values fall back to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks the configuration for values the engine would reject.
func (c *Config) Validate() error {
	if c.Data.StorePath == "" {
		return fmt.Errorf("data.store_path must not be empty")
	}
	if c.Data.IndexPath == "" {
		return fmt.Errorf("data.index_path must not be empty")
	}
	if c.Embedding.Host == "" {
		return fmt.Errorf("embedding.host must not be empty")
	}
	if c.Embedding.Model == "" {
		return fmt.Errorf("embedding.model must not be empty")
	}
	if c.Engine.SearchK < 1 {
		return fmt.Errorf("engine.search_k must be at least 1, got %d", c.Engine.SearchK)
	}
	if c.Engine.ResultsN < 0 {
		return fmt.Errorf("engine.results_n must not be negative, got %d", c.Engine.ResultsN)
	}
	if err := core.ValidateWeights(c.Engine.Weights.Weights()); err != nil {
		return err
	}
	return nil
}
