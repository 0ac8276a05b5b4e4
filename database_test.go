package mekomit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		// Verify components are initialized
		assert.NotNil(t, db.ItemRepository())
		assert.NotNil(t, db.RegionRepository())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a database at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("in-memory database", func(t *testing.T) {
		db, err := NewDatabase("", WithInMemory())
		require.NoError(t, err)
		require.NotNil(t, db)
		assert.NoError(t, db.Close())
	})
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, db)

	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_IngestAndSearch(t *testing.T) {
	db, err := NewDatabase("", WithInMemory())
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	catalog := `{
		"items": [
			{"name": "קפה נחמה", "description": "בית קפה שכונתי", "location": "תל אביב", "type": "בתי קפה"},
			{"name": "מוזיאון ישראל", "description": "מוזיאון לאומנות", "location": "ירושלים", "type": "מוזיאונים"}
		],
		"regions": [
			{"name": "מרכז", "settlements": ["תל אביב", "רמת גן"]}
		]
	}`

	require.NoError(t, db.Ingest(ctx, strings.NewReader(catalog)))

	engine, err := db.NewEngine(ctx)
	require.NoError(t, err)

	results := engine.Search("תל אביב", "all")
	require.Len(t, results, 1)
	assert.Equal(t, "קפה נחמה", results[0].Name)

	results = engine.Search("מוזיאון", "מוזיאונים")
	require.Len(t, results, 1)
	assert.Equal(t, "מוזיאון ישראל", results[0].Name)
}

func TestDatabase_NewEngineEmptyStore(t *testing.T) {
	db, err := NewDatabase("", WithInMemory())
	require.NoError(t, err)
	defer db.Close()

	engine, err := db.NewEngine(context.Background())
	require.NoError(t, err)

	assert.Empty(t, engine.Search("קפה", "all"))
}
