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


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/tavlit/mekomit/core"
	"github.com/tavlit/mekomit/storage"
)

// RegionRepository implements storage.RegionRepository for BadgerDB.
type RegionRepository struct {
	backend  *Backend
	orderSeq *badger.Sequence
}

var _ storage.RegionRepository = (*RegionRepository)(nil)

// NewRegionRepository creates a new RegionRepository.
func NewRegionRepository(backend *Backend) (*RegionRepository, error) {
	orderSeq, err := backend.GetSequence(regionOrderSeq)
	if err != nil {
		return nil, err
	}

	return &RegionRepository{
		backend:  backend,
		orderSeq: orderSeq,
	}, nil
}

// Close releases the order sequence.
func (r *RegionRepository) Close() error {
	return r.orderSeq.Release()
}

// AddRegions adds one or more regions to storage.
// Region IDs are derived from the region name, so re-adding a region
// overwrites its record and keeps its position in the insertion order.
func (r *RegionRepository) AddRegions(ctx context.Context, regions ...*core.Region) ([]*core.Region, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, region := range regions {
			if err := core.ValidateRegion(region); err != nil {
				return err
			}

			if region.Id == 0 {
				region.Id = core.IDFromContent(region.Fingerprint())
			}

			key := makeRegionKey(region.Id)
			old, err := r.readRegion(tx, key)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if old != nil {
				region.InsertedAt = old.InsertedAt
				region.UpdatedAt = now
			} else {
				region.InsertedAt = now
				region.UpdatedAt = now

				next, err := r.orderSeq.Next()
				if err != nil {
					return err
				}
				if next == 0 {
					next, err = r.orderSeq.Next()
					if err != nil {
						return err
					}
				}
				orderKey := makeRegionOrderKey(next)
				if err := tx.Set(orderKey, storage.MarshalID(region.Id)); err != nil {
					return err
				}
			}

			if err := tx.Set(key, storage.MarshalRegion(region)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return regions, err
}

// DeleteRegions removes regions by their IDs, including their order index entries.
func (r *RegionRepository) DeleteRegions(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeRegionKey(id)

			region, err := r.readRegion(tx, key)
			if err != nil {
				return err
			}
			if region == nil {
				return storage.ErrNotFound
			}

			if err := deleteOrderEntry(tx, regionOrderPrefix, id); err != nil {
				return err
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetRegion retrieves a single region by ID.
func (r *RegionRepository) GetRegion(ctx context.Context, id core.ID) (*core.Region, error) {
	var result *core.Region
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRegionKey(id)
		var err error
		result, err = r.readRegion(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAllRegions retrieves every region in insertion order.
func (r *RegionRepository) GetAllRegions(ctx context.Context) ([]*core.Region, error) {
	var results []*core.Region
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ids, err := orderedIDs(tx, regionOrderPrefix)
		if err != nil {
			return err
		}
		for _, id := range ids {
			region, err := r.readRegion(tx, makeRegionKey(id))
			if err != nil {
				return err
			}
			if region != nil {
				results = append(results, region)
			}
		}
		return nil
	}, false)
	return results, err
}

// readRegion reads a region from the transaction.
func (r *RegionRepository) readRegion(tx *badger.Txn, key []byte) (*core.Region, error) {
	entry, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var region *core.Region
	err = entry.Value(func(val []byte) error {
		var unmarshalErr error
		region, unmarshalErr = storage.UnmarshalRegion(val)
		return unmarshalErr
	})
	return region, err
}
