package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Halzat4/Online-shop/internal/console"
	"github.com/Halzat4/Online-shop/internal/publisher"
	"github.com/Halzat4/Online-shop/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenClientStore_File(t *testing.T) {
	cfg := &Config{ClientStore: "file", ClientsFile: filepath.Join(t.TempDir(), "clients.json")}

	repo, err := openClientStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer repo.Close()
	assert.IsType(t, &repository.FileStore{}, repo)
}

func TestOpenClientStore_SQLite(t *testing.T) {
	cfg := &Config{
		ClientStore:          "sqlite",
		SQLitePath:           filepath.Join(t.TempDir(), "clients.db"),
		SQLiteMigrationsPath: "../../internal/repository/migrations",
	}

	repo, err := openClientStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer repo.Close()

	clients, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestOpenClientStore_Unknown(t *testing.T) {
	_, err := openClientStore(context.Background(), &Config{ClientStore: "ftp"}, zap.NewNop())
	assert.ErrorContains(t, err, `unknown client store "ftp"`)
}

func TestOpenClientStore_LocationsDifferPerFile(t *testing.T) {
	dir := t.TempDir()
	open := func(file string) repository.ClientStore {
		repo, err := openClientStore(context.Background(), &Config{
			ClientStore: "file",
			ClientsFile: filepath.Join(dir, file),
		}, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { repo.Close() })
		return repo
	}

	a, b := open("a.json"), open("b.json")
	assert.NotEqual(t, a.Location(), b.Location())
	assert.Equal(t, a.Location(), open("a.json").Location())
}

func TestOrderSink(t *testing.T) {
	assert.Nil(t, orderSink(nil))

	kafka := publisher.NewKafkaPublisher(zap.NewNop(), "localhost:9092")
	defer kafka.Close()
	assert.Equal(t, console.MultiSink{kafka}, orderSink(console.MultiSink{kafka}))
}
