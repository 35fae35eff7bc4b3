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
	"log/slog"
	"os"
	"strings"

	"github.com/osusume-dev/osusume"
	"github.com/osusume-dev/osusume/engine"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	lib, err := osusume.Open("./data/catalog")
	if err != nil {
		panic(err)
	}
	defer lib.Close()

	ctx := context.Background()
	if err := lib.LoadIndex(ctx, "./data/catalog.idx"); err != nil {
		panic(err)
	}

	eng, err := lib.NewEngine()
	if err != nil {
		panic(err)
	}

	title := "frieren"
	if len(os.Args) > 1 {
		title = strings.Join(os.Args[1:], " ")
	}

	results, err := eng.ByTitle(ctx, title, engine.DefaultResultsN)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Found %d recommendations\n", len(results))
	for i, r := range results {
		fmt.Printf("%d: '%s' (%s)[%0.3f]\n", i, r.Doc.Title(), r.Doc.Type, r.Score)
	}
}
