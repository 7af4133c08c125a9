package scan

import (
	"Agri-Assist-Backend/domain"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_AppendAndReadBack(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	id, err := repo.AppendToSubcollection(ctx, "farmers", "farmer123", "scans", domain.Document{"cropType": "rice"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	scans := repo.Documents("farmers/farmer123/scans")
	require.Len(t, scans, 1)
	assert.Equal(t, domain.Document{"id": id, "cropType": "rice"}, scans[0])

	farms, err := repo.ListTopLevel(ctx, "farmers")
	require.NoError(t, err)
	assert.Equal(t, []domain.Document{{"id": "farmer123"}}, farms)
}

func TestMemoryRepository_ParentCreatedOnce(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.AppendToSubcollection(ctx, "farmers", "f1", "scans", domain.Document{"n": 1})
	require.NoError(t, err)
	second, err := repo.AppendToSubcollection(ctx, "farmers", "f1", "scans", domain.Document{"n": 2})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, repo.Documents("farmers"), 1)
	assert.Len(t, repo.Documents("farmers/f1/scans"), 2)
}

func TestMemoryRepository_StoredFieldsOverrideID(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Put("farmers", "doc-1", domain.Document{"id": "custom", "village": "Nashik"})

	farms, err := repo.ListTopLevel(context.Background(), "farmers")
	require.NoError(t, err)
	assert.Equal(t, []domain.Document{{"id": "custom", "village": "Nashik"}}, farms)
}

func TestMemoryRepository_PayloadIsCopied(t *testing.T) {
	repo := NewMemoryRepository()
	payload := domain.Document{"cropType": "rice"}

	_, err := repo.AppendToSubcollection(context.Background(), "farmers", "f1", "scans", payload)
	require.NoError(t, err)
	payload["cropType"] = "wheat"

	assert.Equal(t, "rice", repo.Documents("farmers/f1/scans")[0]["cropType"])
}

func TestMemoryRepository_ConcurrentAppends(t *testing.T) {
	repo := NewMemoryRepository()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.AppendToSubcollection(context.Background(), "farmers", "f1", "scans", domain.Document{"i": i})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.Documents("farmers/f1/scans"), 50)
	assert.Len(t, repo.Documents("farmers"), 1)
}
