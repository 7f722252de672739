package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Halzat4/Online-shop/internal/domain"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps client records in a local SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// :memory: databases exist per connection
	db.SetMaxOpenConns(1)
	return &SQLiteStore{db: db, path: dbPath}, nil
}

func (s *SQLiteStore) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (Clients, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, id, contact FROM clients`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := Clients{}
	for rows.Next() {
		var name string
		var rec ClientRecord
		if err := rows.Scan(&name, &rec.ID, &rec.Contact); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients[name] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	lineRows, err := s.db.QueryContext(ctx, `
		SELECT name, item_id, quantity
		FROM client_cart_lines
		ORDER BY name, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var name string
		var line domain.LineRecord
		if err := lineRows.Scan(&name, &line.ItemID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		rec, ok := clients[name]
		if !ok {
			continue
		}
		rec.Cart = append(rec.Cart, line)
		clients[name] = rec
	}
	if err := lineRows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return clients, nil
}

// Save replaces the stored set with clients in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, clients Clients) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM client_cart_lines`); err != nil {
		return fmt.Errorf("failed to clear cart lines: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM clients`); err != nil {
		return fmt.Errorf("failed to clear clients: %w", err)
	}

	for name, rec := range clients {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO clients (name, id, contact) VALUES ($1, $2, $3)`,
			name, rec.ID, rec.Contact); err != nil {
			return fmt.Errorf("failed to insert client %q: %w", name, err)
		}
		for pos, line := range rec.Cart {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO client_cart_lines (name, position, item_id, quantity) VALUES ($1, $2, $3, $4)`,
				name, pos, line.ItemID, line.Quantity); err != nil {
				return fmt.Errorf("failed to insert cart line for %q: %w", name, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clients: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Location() string {
	if s.path == ":memory:" {
		return "sqlite::memory:"
	}
	if abs, err := filepath.Abs(s.path); err == nil {
		return "sqlite:" + abs
	}
	return "sqlite:" + s.path
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
