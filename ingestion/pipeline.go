package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/tavlit/mekomit/core"
	"github.com/tavlit/mekomit/storage"
)

const defaultBatchSize = 64

// Pipeline writes parsed catalogue records into storage.
// Per-item preparation (content hashing, validation) runs concurrently on a
// worker pool; the writes themselves happen sequentially in catalogue order,
// because the insertion-order index records the order in which items reach
// storage. Regions are few and are written inline.
type Pipeline struct {
	itemRepository   storage.ItemRepository
	regionRepository storage.RegionRepository
	pool             *ants.Pool
	batchSize        int
	logger           *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent item preparation.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets the number of items written per batch.
// Default is 64, with a minimum of 1.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new catalogue ingestion pipeline.
func NewPipeline(
	itemRepository storage.ItemRepository,
	regionRepository storage.RegionRepository,
	opts ...Option,
) (*Pipeline, error) {
	if itemRepository == nil {
		return nil, ErrItemRepositoryRequired
	}
	if regionRepository == nil {
		return nil, ErrRegionRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		itemRepository:   itemRepository,
		regionRepository: regionRepository,
		pool:             pool,
		batchSize:        defaultBatchSize,
		logger:           slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Store writes items and regions to their repositories.
// Item preparation runs on the worker pool; the batched writes that follow
// run sequentially so the insertion-order index reproduces catalogue order.
// The call blocks until all writes complete and returns the first error
// encountered.
func (p *Pipeline) Store(ctx context.Context, items []*core.Item, regions []*core.Region) error {
	if len(regions) > 0 {
		if _, err := p.regionRepository.AddRegions(ctx, regions...); err != nil {
			return err
		}
	}

	if err := p.prepareItems(items); err != nil {
		return err
	}

	for start := 0; start < len(items); start += p.batchSize {
		end := start + p.batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		if _, err := p.itemRepository.AddItems(ctx, batch...); err != nil {
			p.logger.Error("error writing item batch", "size", len(batch), "err", err)
			return err
		}
	}

	p.logger.Debug("catalogue stored", "items", len(items), "regions", len(regions))
	return nil
}

// prepareItems validates the items and assigns content-hash IDs, fanning the
// per-item work out to the worker pool. Preparation is order-independent, so
// batches may complete in any order.
func (p *Pipeline) prepareItems(items []*core.Item) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(items); start += p.batchSize {
		end := start + p.batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			for _, item := range batch {
				if err := core.ValidateItem(item); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				if item.Id == 0 {
					item.Id = core.IDFromContent(item.Fingerprint())
				}
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()
	return firstErr
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
