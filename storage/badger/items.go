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
	"bytes"
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/tavlit/mekomit/core"
	"github.com/tavlit/mekomit/storage"
)

// ItemRepository implements storage.ItemRepository for BadgerDB.
type ItemRepository struct {
	backend  *Backend
	orderSeq *badger.Sequence
}

var _ storage.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(backend *Backend) (*ItemRepository, error) {
	orderSeq, err := backend.GetSequence(itemOrderSeq)
	if err != nil {
		return nil, err
	}

	return &ItemRepository{
		backend:  backend,
		orderSeq: orderSeq,
	}, nil
}

// Close releases the order sequence.
func (r *ItemRepository) Close() error {
	return r.orderSeq.Release()
}

// AddItems adds one or more items to storage.
// Items with Id=0 get a content-based ID derived from their text fields.
// Re-adding an existing item overwrites its record and keeps its position
// in the insertion order.
func (r *ItemRepository) AddItems(ctx context.Context, items ...*core.Item) ([]*core.Item, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, item := range items {
			if err := core.ValidateItem(item); err != nil {
				return err
			}

			if item.Id == 0 {
				item.Id = core.IDFromContent(item.Fingerprint())
			}

			key := makeItemKey(item.Id)
			old, err := r.readItem(tx, key)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if old != nil {
				// Overwrite keeps the original insertion point
				item.InsertedAt = old.InsertedAt
				item.UpdatedAt = now
			} else {
				item.InsertedAt = now
				item.UpdatedAt = now

				ordinal, err := r.nextOrdinal()
				if err != nil {
					return err
				}
				orderKey := makeItemOrderKey(ordinal)
				if err := tx.Set(orderKey, storage.MarshalID(item.Id)); err != nil {
					return err
				}
			}

			if err := tx.Set(key, storage.MarshalItem(item)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return items, err
}

// UpdateItems updates existing items.
func (r *ItemRepository) UpdateItems(ctx context.Context, items ...*core.Item) ([]*core.Item, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, item := range items {
			key := makeItemKey(item.Id)

			old, err := r.readItem(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			item.InsertedAt = old.InsertedAt
			item.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalItem(item)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return items, err
}

// DeleteItems removes items by their IDs, including their order index entries.
func (r *ItemRepository) DeleteItems(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeItemKey(id)

			item, err := r.readItem(tx, key)
			if err != nil {
				return err
			}
			if item == nil {
				return storage.ErrNotFound
			}

			if err := deleteOrderEntry(tx, itemOrderPrefix, id); err != nil {
				return err
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetItem retrieves a single item by ID.
func (r *ItemRepository) GetItem(ctx context.Context, id core.ID) (*core.Item, error) {
	var result *core.Item
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeItemKey(id)
		var err error
		result, err = r.readItem(tx, key)
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

// GetItems retrieves multiple items by their IDs.
// Missing items are skipped without error.
func (r *ItemRepository) GetItems(ctx context.Context, ids ...core.ID) ([]*core.Item, error) {
	var result []*core.Item
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeItemKey(id)
			item, err := r.readItem(tx, key)
			if err != nil {
				return err
			}
			if item != nil {
				result = append(result, item)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetAllItems retrieves every item in insertion order.
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]*core.Item, error) {
	var results []*core.Item
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ids, err := orderedIDs(tx, itemOrderPrefix)
		if err != nil {
			return err
		}
		for _, id := range ids {
			item, err := r.readItem(tx, makeItemKey(id))
			if err != nil {
				return err
			}
			if item != nil {
				results = append(results, item)
			}
		}
		return nil
	}, false)
	return results, err
}

// nextOrdinal returns the next order sequence value, skipping 0.
func (r *ItemRepository) nextOrdinal() (uint64, error) {
	next, err := r.orderSeq.Next()
	if err != nil {
		return 0, err
	}
	// BadgerDB sequences can return 0 on first call, so we skip it
	if next == 0 {
		next, err = r.orderSeq.Next()
		if err != nil {
			return 0, err
		}
	}
	return next, nil
}

// readItem reads an item from the transaction.
func (r *ItemRepository) readItem(tx *badger.Txn, key []byte) (*core.Item, error) {
	entry, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var item *core.Item
	err = entry.Value(func(val []byte) error {
		var unmarshalErr error
		item, unmarshalErr = storage.UnmarshalItem(val)
		return unmarshalErr
	})
	return item, err
}

// orderedIDs walks an order index and returns the record IDs in sequence.
func orderedIDs(tx *badger.Txn, orderPrefix string) ([]core.ID, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(orderPrefix + ":")
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var ids []core.ID
	for iter.Rewind(); iter.Valid(); iter.Next() {
		var id core.ID
		if err := iter.Item().Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		}); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// deleteOrderEntry removes the order index entry pointing at the given ID.
func deleteOrderEntry(tx *badger.Txn, orderPrefix string, id core.ID) error {
	key, err := findOrderKey(tx, orderPrefix, id)
	if err != nil {
		return err
	}
	if key == nil {
		return nil
	}
	return tx.Delete(key)
}

// findOrderKey scans an order index for the entry pointing at the given ID.
func findOrderKey(tx *badger.Txn, orderPrefix string, id core.ID) ([]byte, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(orderPrefix + ":")
	iter := tx.NewIterator(opts)
	defer iter.Close()

	target := storage.MarshalID(id)
	for iter.Rewind(); iter.Valid(); iter.Next() {
		var key []byte
		if err := iter.Item().Value(func(val []byte) error {
			if bytes.Equal(val, target) {
				key = iter.Item().KeyCopy(nil)
			}
			return nil
		}); err != nil {
			return nil, err
		}
		if key != nil {
			return key, nil
		}
	}
	return nil, nil
}
