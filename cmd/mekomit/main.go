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
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/tavlit/mekomit"
	"github.com/tavlit/mekomit/config"
	"github.com/tavlit/mekomit/search"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "mekomit",
		Usage: "Geography-aware Hebrew place search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "load",
				Usage:     "Load a JSON catalogue into the store",
				ArgsUsage: "<catalog.json>",
				Action:    loadCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the store for places matching a query",
				ArgsUsage: "<query...>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Restrict results to items carrying this type label",
						Value:   search.FilterAll,
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a YAML engine configuration file",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one catalogue file argument")
	}
	catalogPath := c.Args().First()

	file, err := os.Open(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to open catalogue: %w", err)
	}
	defer file.Close()

	db, err := mekomit.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ingest(ctx, file); err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}

	items, err := db.ItemRepository().GetAllItems(ctx)
	if err != nil {
		return err
	}
	regions, err := db.RegionRepository().GetAllRegions(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Loaded %s: %d items, %d regions\n", catalogPath, len(items), len(regions))
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() < 1 {
		return fmt.Errorf("expected a query")
	}
	query := strings.Join(c.Args().Slice(), " ")

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := mekomit.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	engine, err := db.NewEngine(ctx,
		search.WithStopKeywords(cfg.StopKeywords),
		search.WithPrefixWords(cfg.PrefixWords),
	)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	results := engine.Search(query, c.String("type"))

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		if hit.Location != "" {
			fmt.Printf("%d: %s (%s)\n", i+1, hit.Name, hit.Location)
		} else {
			fmt.Printf("%d: %s\n", i+1, hit.Name)
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
