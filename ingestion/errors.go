package ingestion

import "errors"

var (
	// ErrItemRepositoryRequired is returned when an item repository is not provided.
	ErrItemRepositoryRequired = errors.New("item repository required")

	// ErrRegionRepositoryRequired is returned when a region repository is not provided.
	ErrRegionRepositoryRequired = errors.New("region repository required")

	// ErrInvalidCatalog is returned when the catalogue document cannot be decoded.
	ErrInvalidCatalog = errors.New("invalid catalogue document")
)
