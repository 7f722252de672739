package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStore(t *testing.T) (*FileStore, string) {
	path := filepath.Join(t.TempDir(), "clients.json")
	return NewFileStore(path, nil), path
}

func TestFileStore_Load_MissingFile(t *testing.T) {
	store, _ := setupFileStore(t)

	clients, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, clients)
	assert.NotNil(t, clients)
}

func TestFileStore_Load_InvalidJSON(t *testing.T) {
	for _, content := range []string{"{not json", "[1, 2, 3]", "null", `"text"`} {
		store, path := setupFileStore(t)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		clients, err := store.Load(context.Background())
		require.NoError(t, err, content)
		assert.Empty(t, clients, content)
	}
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	store, _ := setupFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleClients()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleClients()["Aigerim"], loaded["Aigerim"])
	assert.Equal(t, "77005556677", loaded["Dias"].Contact)
	assert.Empty(t, loaded["Dias"].Cart)
}

func TestFileStore_ReadsLegacyFieldNames(t *testing.T) {
	store, path := setupFileStore(t)
	legacy := `{
    "Айгерим": {
        "id": "1",
        "kontakty": "77001112233",
        "cart": [
            {"tovar_id": "3", "kolichestvo": 2}
        ]
    }
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	clients, err := store.Load(context.Background())
	require.NoError(t, err)

	rec := clients["Айгерим"]
	assert.Equal(t, "1", rec.ID)
	assert.Equal(t, "77001112233", rec.Contact)
	require.Len(t, rec.Cart, 1)
	assert.Equal(t, "3", rec.Cart[0].ItemID)
	assert.Equal(t, 2, rec.Cart[0].Quantity)
}

func TestFileStore_WritesLegacyFieldNames(t *testing.T) {
	store, path := setupFileStore(t)
	require.NoError(t, store.Save(context.Background(), sampleClients()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kontakty": "77001112233"`)
	assert.Contains(t, string(data), `"tovar_id": "2"`)
	assert.Contains(t, string(data), `"kolichestvo": 3`)
}

func TestFileStore_CancelledContext(t *testing.T) {
	store, _ := setupFileStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Save(ctx, Clients{}), context.Canceled)
}

func TestFileStore_EmptyCartWrittenAsArray(t *testing.T) {
	store, path := setupFileStore(t)
	require.NoError(t, store.Save(context.Background(), Clients{"Dias": {ID: "2", Contact: "77005556677"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cart": []`)
}

func TestFileStore_Location(t *testing.T) {
	store, path := setupFileStore(t)
	assert.Equal(t, "file:"+path, store.Location())

	other, _ := setupFileStore(t)
	assert.NotEqual(t, store.Location(), other.Location())

	relative := NewFileStore("", nil)
	abs, err := filepath.Abs(DefaultClientsFile)
	require.NoError(t, err)
	assert.Equal(t, "file:"+abs, relative.Location())
}
