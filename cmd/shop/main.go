package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Halzat4/Online-shop/internal/archive"
	"github.com/Halzat4/Online-shop/internal/cache"
	"github.com/Halzat4/Online-shop/internal/console"
	"github.com/Halzat4/Online-shop/internal/domain"
	"github.com/Halzat4/Online-shop/internal/publisher"
	"github.com/Halzat4/Online-shop/internal/repository"
	"github.com/Halzat4/Online-shop/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := loadConfig()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("shop stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg *Config, logger *zap.Logger) error {
	shop := domain.NewStore()
	if err := domain.Seed(shop); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	repo, err := openClientStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	var clientCache cache.ClientCache = cache.NoopCache{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
		logger.Info("redis ping succeeded", zap.String("addr", cfg.RedisAddr))
		clientCache = cache.NewRedisCache(redisClient, repo.Location())
	}

	var sinks console.MultiSink
	var history console.OrderHistory
	if cfg.PostgresHost != "" {
		creds := &archive.Credentials{
			Host:              cfg.PostgresHost,
			Port:              cfg.PostgresPort,
			User:              cfg.PostgresUser,
			Password:          cfg.PostgresPassword,
			DBName:            cfg.PostgresDB,
			MigrationsDirPath: cfg.OrdersMigrationsPath,
		}
		orderArchive, err := archive.NewPostgresArchive(creds, logger)
		if err != nil {
			return err
		}
		defer orderArchive.Close()
		if err := orderArchive.RunMigrations(creds); err != nil {
			return err
		}
		sinks = append(sinks, orderArchive)
		history = orderArchive
	}
	if len(cfg.KafkaBrokers) > 0 {
		orderPublisher := publisher.NewKafkaPublisher(logger, cfg.KafkaBrokers...)
		defer orderPublisher.Close()
		sinks = append(sinks, orderPublisher)
	}

	clients := service.NewClientService(repo, clientCache, logger)
	shell := console.New(os.Stdin, os.Stdout, shop, clients, orderSink(sinks), logger)
	if history != nil {
		shell.WithHistory(history)
	}
	return shell.Run(ctx)
}

func openClientStore(ctx context.Context, cfg *Config, logger *zap.Logger) (repository.ClientStore, error) {
	switch cfg.ClientStore {
	case "file":
		logger.Info("using client file", zap.String("path", cfg.ClientsFile))
		return repository.NewFileStore(cfg.ClientsFile, logger), nil
	case "sqlite":
		sqliteStore, err := repository.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := sqliteStore.RunMigrations(cfg.SQLiteMigrationsPath); err != nil {
			sqliteStore.Close()
			return nil, err
		}
		logger.Info("using sqlite client store", zap.String("path", cfg.SQLitePath))
		return sqliteStore, nil
	case "mongo":
		db, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to MongoDB", zap.String("db", cfg.MongoDBName))
		return repository.NewMongoStore(db, cfg.MongoURI), nil
	default:
		return nil, fmt.Errorf("unknown client store %q", cfg.ClientStore)
	}
}

// orderSink returns nil when no order backend is configured.
func orderSink(sinks console.MultiSink) console.OrderSink {
	if len(sinks) == 0 {
		return nil
	}
	return sinks
}
