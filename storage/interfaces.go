package storage

import (
	"context"

	"github.com/tavlit/mekomit/core"
)

// Repository is the common behavior shared by all repositories.
type Repository interface {
	// Close closes the repository and releases resources.
	Close() error
}

// ItemRepository provides operations for managing catalogue items.
type ItemRepository interface {
	Repository

	// AddItems adds one or more items to storage.
	// For items with Id=0, derives a content-based ID from the item's text.
	// Sets InsertedAt/UpdatedAt timestamps. Re-adding an existing item
	// overwrites its record without duplicating it in the dataset order.
	// Returns the items with IDs and timestamps populated.
	AddItems(ctx context.Context, items ...*core.Item) ([]*core.Item, error)

	// UpdateItems updates existing items.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any item doesn't exist.
	UpdateItems(ctx context.Context, items ...*core.Item) ([]*core.Item, error)

	// DeleteItems removes items by their IDs, including their position in
	// the dataset order. Returns ErrNotFound if any item doesn't exist.
	DeleteItems(ctx context.Context, ids ...core.ID) error

	// GetItem retrieves a single item by ID.
	// Returns ErrNotFound if the item doesn't exist.
	GetItem(ctx context.Context, id core.ID) (*core.Item, error)

	// GetItems retrieves multiple items by their IDs.
	// Returns only the items that exist (no error for missing items).
	GetItems(ctx context.Context, ids ...core.ID) ([]*core.Item, error)

	// GetAllItems retrieves every item in insertion order.
	GetAllItems(ctx context.Context) ([]*core.Item, error)
}

// RegionRepository provides operations for managing regions.
type RegionRepository interface {
	Repository

	// AddRegions adds one or more regions to storage.
	// Uses content-based IDs derived from the region name.
	// Sets InsertedAt/UpdatedAt timestamps. Re-adding an existing region
	// overwrites its record without duplicating it in the region order.
	AddRegions(ctx context.Context, regions ...*core.Region) ([]*core.Region, error)

	// DeleteRegions removes regions by their IDs.
	// Returns ErrNotFound if any region doesn't exist.
	DeleteRegions(ctx context.Context, ids ...core.ID) error

	// GetRegion retrieves a single region by ID.
	// Returns ErrNotFound if the region doesn't exist.
	GetRegion(ctx context.Context, id core.ID) (*core.Region, error)

	// GetAllRegions retrieves every region in insertion order.
	GetAllRegions(ctx context.Context) ([]*core.Region, error)
}
