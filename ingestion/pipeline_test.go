package ingestion

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tavlit/mekomit/core"
	"github.com/tavlit/mekomit/storage/badger"
)

func TestNewPipelineRequiresRepositories(t *testing.T) {
	itemRepo, regionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { regionRepo.Close(); itemRepo.Close(); backend.Close() }()

	_, err = NewPipeline(nil, regionRepo)
	assert.ErrorIs(t, err, ErrItemRepositoryRequired)

	_, err = NewPipeline(itemRepo, nil)
	assert.ErrorIs(t, err, ErrRegionRepositoryRequired)

	p, err := NewPipeline(itemRepo, regionRepo)
	require.NoError(t, err)
	p.Release()
}

func TestPipelineStore(t *testing.T) {
	itemRepo, regionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { regionRepo.Close(); itemRepo.Close(); backend.Close() }()

	pipeline, err := NewPipeline(itemRepo, regionRepo, WithBatchSize(2))
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()

	items := []*core.Item{
		{Name: "קפה נחמה", Location: "תל אביב"},
		{Name: "מוזיאון ישראל", Location: "ירושלים"},
		{Name: "חוף הבונים", Location: "חוף כרמל"},
	}
	regions := []*core.Region{
		{Name: "מרכז", Settlements: []string{"תל אביב"}},
	}

	require.NoError(t, pipeline.Store(ctx, items, regions))

	storedItems, err := itemRepo.GetAllItems(ctx)
	require.NoError(t, err)
	assert.Len(t, storedItems, 3)
	for _, item := range storedItems {
		assert.NotZero(t, item.Id)
		assert.False(t, item.InsertedAt.IsZero())
	}

	storedRegions, err := regionRepo.GetAllRegions(ctx)
	require.NoError(t, err)
	require.Len(t, storedRegions, 1)
	assert.Equal(t, "מרכז", storedRegions[0].Name)
}

func TestPipelineStoreManyBatches(t *testing.T) {
	itemRepo, regionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { regionRepo.Close(); itemRepo.Close(); backend.Close() }()

	pipeline, err := NewPipeline(itemRepo, regionRepo, WithPoolSize(4), WithBatchSize(3))
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()

	var items []*core.Item
	for i := 0; i < 20; i++ {
		items = append(items, &core.Item{Name: fmt.Sprintf("מקום %d", i), Location: "חיפה"})
	}

	require.NoError(t, pipeline.Store(ctx, items, nil))

	stored, err := itemRepo.GetAllItems(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 20)
	for i, item := range stored {
		assert.Equal(t, fmt.Sprintf("מקום %d", i), item.Name)
	}
}

// Single-item batches on a wide pool maximize scheduling freedom; the stored
// order must still reproduce the catalogue order exactly.
func TestPipelineStorePreservesCatalogOrder(t *testing.T) {
	itemRepo, regionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { regionRepo.Close(); itemRepo.Close(); backend.Close() }()

	pipeline, err := NewPipeline(itemRepo, regionRepo, WithPoolSize(8), WithBatchSize(1))
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()

	var items []*core.Item
	for i := 0; i < 200; i++ {
		items = append(items, &core.Item{Name: fmt.Sprintf("מקום %d", i), Location: "באר שבע"})
	}

	require.NoError(t, pipeline.Store(ctx, items, nil))

	stored, err := itemRepo.GetAllItems(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 200)
	for i, item := range stored {
		assert.Equal(t, fmt.Sprintf("מקום %d", i), item.Name)
	}
}

func TestPipelineStoreInvalidItem(t *testing.T) {
	itemRepo, regionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { regionRepo.Close(); itemRepo.Close(); backend.Close() }()

	pipeline, err := NewPipeline(itemRepo, regionRepo, WithBatchSize(2))
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()

	items := []*core.Item{
		{Name: "קפה נחמה", Location: "תל אביב"},
		{Name: "מוזיאון ישראל", Location: "ירושלים"},
		{},
	}

	err = pipeline.Store(ctx, items, nil)
	require.ErrorIs(t, err, core.ErrEmptyItem)

	// Preparation fails before any write, so nothing lands in storage.
	stored, err := itemRepo.GetAllItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPipelineStoreEmpty(t *testing.T) {
	itemRepo, regionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { regionRepo.Close(); itemRepo.Close(); backend.Close() }()

	pipeline, err := NewPipeline(itemRepo, regionRepo)
	require.NoError(t, err)
	defer pipeline.Release()

	require.NoError(t, pipeline.Store(context.Background(), nil, nil))
}

func TestParseAndStoreRoundTrip(t *testing.T) {
	itemRepo, regionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { regionRepo.Close(); itemRepo.Close(); backend.Close() }()

	doc := `{
		"items": [
			{"name": "גן החיות התנכי", "location": "ירושלים", "type": "אטרקציות"}
		],
		"regions": [
			{"name": "ירושלים והסביבה", "settlements": ["ירושלים", "מבשרת ציון"]}
		]
	}`

	items, regions, err := ParseCatalog(strings.NewReader(doc), nil)
	require.NoError(t, err)

	pipeline, err := NewPipeline(itemRepo, regionRepo)
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()
	require.NoError(t, pipeline.Store(ctx, items, regions))

	stored, err := itemRepo.GetAllItems(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "גן החיות התנכי", stored[0].Name)
	assert.Equal(t, core.Labels{"אטרקציות"}, stored[0].Types)
}
