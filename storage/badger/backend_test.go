package badger

import (
	"path/filepath"
	"testing"

	badgerdb "github.com/dgraph-io/badger/v4"
)

func TestOpenBackendInMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open in-memory backend: %v", err)
	}

	if backend.IsClosed() {
		t.Fatal("Expected backend to be open")
	}

	if err := backend.Close(); err != nil {
		t.Fatalf("Failed to close backend: %v", err)
	}

	if !backend.IsClosed() {
		t.Fatal("Expected backend to be closed")
	}
}

func TestOpenBackendCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	backend, err := OpenBackend(dir, false)
	if err != nil {
		t.Fatalf("Failed to open backend at %s: %v", dir, err)
	}
	defer backend.Close()

	if backend.IsClosed() {
		t.Fatal("Expected backend to be open")
	}
}

func TestWithTxRoundTrip(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open in-memory backend: %v", err)
	}
	defer backend.Close()

	err = backend.WithTx(func(tx *badgerdb.Txn) error {
		if err := tx.Set([]byte("key"), []byte("value")); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		t.Fatalf("Failed to write: %v", err)
	}

	var got []byte
	err = backend.WithTx(func(tx *badgerdb.Txn) error {
		item, err := tx.Get([]byte("key"))
		if err != nil {
			return err
		}
		got, err = item.ValueCopy(nil)
		return err
	}, false)
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	if string(got) != "value" {
		t.Fatalf("Expected 'value', got '%s'", got)
	}
}
