package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/osusume-dev/osusume/core"
	"github.com/osusume-dev/osusume/engine"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"osusume.yaml",
	"osusume.yml",
	"/etc/osusume/config.yaml",
	"/etc/osusume/config.yml",
}

// ConfigPathEnvVar overrides the config file search.
const ConfigPathEnvVar = "OSUSUME_CONFIG"

// envPrefix namespaces the environment overrides.
const envPrefix = "OSUSUME_"

// defaultConfig returns the built-in defaults. They are applied first and
// then overridden by the config file and environment variables.
func defaultConfig() *Config {
	weights := core.DefaultWeights()
	return &Config{
		Data: DataConfig{
			StorePath: "data/catalog",
			IndexPath: "data/catalog.idx",
		},
		Embedding: EmbeddingConfig{
			Host:  "http://localhost:11434/v1",
			Model: "all-minilm",
		},
		Engine: EngineConfig{
			SearchK:  engine.DefaultSearchK,
			ResultsN: engine.DefaultResultsN,
			Weights: WeightsConfig{
				Semantic:   weights.Semantic,
				Genre:      weights.Genre,
				Popularity: weights.Popularity,
				Rating:     weights.Rating,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from layered sources:
//  1. Built-in defaults
//  2. Optional YAML config file
//  3. Environment variables (highest priority)
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file that exists, checking the
// OSUSUME_CONFIG override before the default paths. Empty when none exist.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings translates environment variable names (minus the OSUSUME_
// prefix, lowercased) to config paths. Unmapped variables are ignored so
// unrelated OSUSUME_* variables cannot pollute the config.
var envMappings = map[string]string{
	"store_path": "data.store_path",
	"index_path": "data.index_path",

	"embedding_host":  "embedding.host",
	"embedding_model": "embedding.model",

	"search_k":          "engine.search_k",
	"results_n":         "engine.results_n",
	"weight_semantic":   "engine.weights.semantic",
	"weight_genre":      "engine.weights.genre",
	"weight_popularity": "engine.weights.popularity",
	"weight_rating":     "engine.weights.rating",

	"log_level":  "logging.level",
	"log_format": "logging.format",
}

func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
