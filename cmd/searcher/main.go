// Copyright 2026 Tavlit Labs
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

	"github.com/tavlit/mekomit"
	"github.com/tavlit/mekomit/search"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	db, err := mekomit.NewDatabase("./places_db")
	if err != nil {
		panic(err)
	}
	defer db.Close()

	engine, err := db.NewEngine(context.Background())
	if err != nil {
		panic(err)
	}

	query := "תל אביב"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	results := engine.Search(query, search.FilterAll)

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: '%s' [%s]\n", i, hit.Name, hit.Location)
	}
}
