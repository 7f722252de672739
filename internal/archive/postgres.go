package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Halzat4/Online-shop/internal/domain"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// PostgresArchive keeps a durable copy of every placed order.
type PostgresArchive struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresArchive(cred *Credentials, logger *zap.Logger) (*PostgresArchive, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	psqlconn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cred.Host,
		cred.Port,
		cred.User,
		cred.Password,
		cred.DBName)

	db, err := sql.Open("postgres", psqlconn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if e2 := db.Ping(); e2 != nil {
		return nil, fmt.Errorf("failed to ping database: %w", e2)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	logger.Info("connected to postgres", zap.String("host", cred.Host), zap.String("db", cred.DBName))
	return &PostgresArchive{db: db, logger: logger}, nil
}

func (a *PostgresArchive) RunMigrations(cred *Credentials) error {
	driver, err := postgres.WithInstance(a.db, &postgres.Config{
		MigrationsTable: "shop_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cred.MigrationsDirPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if e2 := m.Up(); e2 != nil && !errors.Is(e2, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", e2)
	}

	return nil
}

// Record archives a freshly placed order.
func (a *PostgresArchive) Record(ctx context.Context, order *domain.Order) error {
	placed := FromOrder(order)
	if err := a.insert(ctx, placed); err != nil {
		return err
	}
	a.logger.Info("order archived",
		zap.String("order_id", placed.OrderNumber),
		zap.String("archive_id", placed.ID.String()))
	return nil
}

func (a *PostgresArchive) insert(ctx context.Context, order *PlacedOrder) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	query := `INSERT INTO placed_orders (id, order_number, customer_id, customer_name, status, total_amount, currency, items, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`

	_, err = a.db.ExecContext(ctx, query,
		order.ID,
		order.OrderNumber,
		order.CustomerID,
		order.CustomerName,
		order.Status,
		order.TotalAmount,
		order.Currency,
		itemsJSON)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (a *PostgresArchive) ListByCustomer(ctx context.Context, customerID string) ([]*PlacedOrder, error) {
	query := `SELECT id, order_number, customer_id, customer_name, status, total_amount, currency, items, created_at
	          FROM placed_orders WHERE customer_id = $1 ORDER BY created_at, order_number`

	rows, err := a.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("query orders by customer id: %w", err)
	}
	defer rows.Close()

	var orders []*PlacedOrder
	for rows.Next() {
		var order PlacedOrder
		var itemsJSON []byte
		if err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.CustomerID,
			&order.CustomerName,
			&order.Status,
			&order.TotalAmount,
			&order.Currency,
			&itemsJSON,
			&order.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return orders, nil
}

func (a *PostgresArchive) Close() error {
	return a.db.Close()
}
