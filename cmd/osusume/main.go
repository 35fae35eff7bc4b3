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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/osusume-dev/osusume"
	"github.com/osusume-dev/osusume/ai"
	"github.com/osusume-dev/osusume/config"
	"github.com/osusume-dev/osusume/core"
	"github.com/osusume-dev/osusume/engine"
	"github.com/osusume-dev/osusume/ingest"
	"github.com/urfave/cli/v2"
)

var cfg *config.Config

func main() {
	app := &cli.App{
		Name:  "osusume",
		Usage: "Anime and manga recommendations from semantic search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "Path to the BadgerDB catalog directory",
			},
			&cli.StringFlag{
				Name:  "index",
				Usage: "Path to the vector index file",
			},
			&cli.StringFlag{
				Name:  "embedding-host",
				Usage: "Embedding service host URL",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Load a JSON catalog export into the document store",
				ArgsUsage: "<catalog.json>",
				Action:    ingestCommand,
			},
			{
				Name:   "build-index",
				Usage:  "Embed the stored catalog and write the vector index",
				Action: buildIndexCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents to embed per request",
						Value: 32,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent embedding workers",
					},
				},
			},
			{
				Name:      "recommend",
				Usage:     "Recommend works for a free-text query or a reference title",
				ArgsUsage: "<query>",
				Action:    recommendCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "title",
						Aliases: []string{"t"},
						Usage:   "Treat the query as a catalog title instead of free text",
					},
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "Number of recommendations to return",
					},
				},
			},
			{
				Name:   "titles",
				Usage:  "List every stored title in catalog order",
				Action: titlesCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setup loads the layered configuration and applies global flag overrides,
// then configures the default logger.
func setup(c *cli.Context) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	if c.IsSet("store") {
		cfg.Data.StorePath = c.String("store")
	}
	if c.IsSet("index") {
		cfg.Data.IndexPath = c.String("index")
	}
	if c.IsSet("embedding-host") {
		cfg.Embedding.Host = c.String("embedding-host")
	}
	if c.IsSet("embedding-model") {
		cfg.Embedding.Model = c.String("embedding-model")
	}
	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()}
	if strings.EqualFold(cfg.Logging.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	return nil
}

func openLibrary() (*osusume.Library, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(cfg.Embedding.Host),
		ai.WithEmbeddingModel(cfg.Embedding.Model),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid embedding configuration: %w", err)
	}

	return osusume.Open(cfg.Data.StorePath, osusume.WithAIConfig(aiConfig))
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one catalog file argument")
	}
	catalogPath := c.Args().First()

	docs, err := ingest.LoadCatalogFile(catalogPath)
	if err != nil {
		return err
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	ctx := context.Background()
	if err := lib.Catalog().AddDocuments(ctx, docs...); err != nil {
		return fmt.Errorf("storing catalog: %w", err)
	}

	count, err := lib.Catalog().Count(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Ingested %d documents (%d total). Rebuild the index with build-index.\n",
		len(docs), count)
	return nil
}

func buildIndexCommand(c *cli.Context) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	opts := []ingest.Option{ingest.WithBatchSize(c.Int("batch-size"))}
	if c.IsSet("pool-size") {
		opts = append(opts, ingest.WithPoolSize(c.Int("pool-size")))
	}

	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", cfg.Embedding.Host)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", cfg.Embedding.Model)

	if err := lib.BuildIndex(context.Background(), cfg.Data.IndexPath, opts...); err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Index written to %s\n", cfg.Data.IndexPath)
	return nil
}

func recommendCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("expected a query argument")
	}
	query := strings.Join(c.Args().Slice(), " ")

	n := cfg.Engine.ResultsN
	if c.IsSet("count") {
		n = c.Int("count")
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	ctx := context.Background()
	if err := lib.LoadIndex(ctx, cfg.Data.IndexPath); err != nil {
		return err
	}

	eng, err := lib.NewEngine(
		engine.WithWeights(cfg.Engine.Weights.Weights()),
		engine.WithSearchK(cfg.Engine.SearchK),
	)
	if err != nil {
		return err
	}

	var results []core.RankedResult
	if c.Bool("title") {
		results, err = eng.ByTitle(ctx, query, n)
	} else {
		results, err = eng.ByText(ctx, query, n)
	}
	if err != nil {
		return err
	}

	printResults(results)
	return nil
}

func titlesCommand(c *cli.Context) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	titles, err := lib.Catalog().AllTitles(context.Background())
	if err != nil {
		return err
	}
	for _, title := range titles {
		fmt.Println(title)
	}
	return nil
}

func printResults(results []core.RankedResult) {
	if len(results) == 0 {
		fmt.Println("No recommendations found.")
		return
	}

	for i, r := range results {
		fmt.Printf("%2d. [%.3f] %s (%s)\n", i+1, r.Score, r.Doc.Title(), r.Doc.Type)
		if len(r.Doc.Genres) > 0 {
			fmt.Printf("    %s\n", strings.Join(r.Doc.Genres, ", "))
		}
	}
}
