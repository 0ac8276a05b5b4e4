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


package mekomit

import (
	"context"
	"io"
	"log/slog"

	"github.com/tavlit/mekomit/core"
	"github.com/tavlit/mekomit/ingestion"
	"github.com/tavlit/mekomit/search"
	"github.com/tavlit/mekomit/storage"
	"github.com/tavlit/mekomit/storage/badger"
)

// Database wires the storage backend, repositories and engine construction
// into a single entry point.
type Database struct {
	backend    *badger.Backend
	itemRepo   storage.ItemRepository
	regionRepo storage.RegionRepository
	logger     *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory bool
}

// WithInMemory opens the backing store in memory instead of on disk.
// Intended for tests and ephemeral use.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create item repository
	itemRepo, err := badger.NewItemRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create region repository
	regionRepo, err := badger.NewRegionRepository(backend)
	if err != nil {
		itemRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:    backend,
		itemRepo:   itemRepo,
		regionRepo: regionRepo,
		logger:     slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.regionRepo.Close(); err != nil {
		db.logger.Error("error closing region repository", "err", err)
		return err
	}
	if err := db.itemRepo.Close(); err != nil {
		db.logger.Error("error closing item repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ItemRepository() storage.ItemRepository {
	return db.itemRepo
}

func (db *Database) RegionRepository() storage.RegionRepository {
	return db.regionRepo
}

// Ingest parses a catalogue document and stores its items and regions.
func (db *Database) Ingest(ctx context.Context, r io.Reader, opts ...ingestion.Option) error {
	items, regions, err := ingestion.ParseCatalog(r, db.logger)
	if err != nil {
		return err
	}

	pipeline, err := ingestion.NewPipeline(db.itemRepo, db.regionRepo, opts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	return pipeline.Store(ctx, items, regions)
}

// NewEngine builds a search engine over the current contents of the store.
func (db *Database) NewEngine(ctx context.Context, opts ...search.Option) (*search.Engine, error) {
	storedItems, err := db.itemRepo.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}
	storedRegions, err := db.regionRepo.GetAllRegions(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]core.Item, len(storedItems))
	for i, item := range storedItems {
		items[i] = *item
	}
	regions := make([]core.Region, len(storedRegions))
	for i, region := range storedRegions {
		regions[i] = *region
	}

	return search.NewEngine(items, regions, opts...)
}
