package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Halzat4/Online-shop/internal/domain"
	"go.uber.org/zap"
)

const DefaultClientsFile = "clients.json"

// FileStore keeps the record set in a single JSON document.
type FileStore struct {
	path   string
	logger *zap.Logger
}

func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if path == "" {
		path = DefaultClientsFile
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, logger: logger}
}

// Load treats a missing file, or one that does not hold a JSON object, as an empty set.
func (f *FileStore) Load(ctx context.Context) (Clients, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Clients{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read clients file: %w", err)
	}

	var clients Clients
	if err := json.Unmarshal(data, &clients); err != nil || clients == nil {
		f.logger.Warn("ignoring unreadable clients file", zap.String("path", f.path), zap.Error(err))
		return Clients{}, nil
	}
	return clients, nil
}

// Save writes to a temporary file and renames it over the target.
func (f *FileStore) Save(ctx context.Context, clients Clients) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := clients.Clone()
	for name, rec := range out {
		if rec.Cart == nil {
			rec.Cart = []domain.LineRecord{}
			out[name] = rec
		}
	}

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal clients: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write clients file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close clients file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("failed to replace clients file: %w", err)
	}

	f.logger.Debug("clients saved", zap.String("path", f.path), zap.Int("count", len(clients)))
	return nil
}

func (f *FileStore) Location() string {
	if abs, err := filepath.Abs(f.path); err == nil {
		return "file:" + abs
	}
	return "file:" + f.path
}

func (f *FileStore) Close() error {
	return nil
}
