package main

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ClientStore          string
	ClientsFile          string
	SQLitePath           string
	SQLiteMigrationsPath string
	MongoURI             string
	MongoDBName          string
	RedisAddr            string
	RedisPassword        string
	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	OrdersMigrationsPath string
	KafkaBrokers         []string
	LogLevel             string
}

func loadConfig() *Config {
	return &Config{
		ClientStore:          getEnv("CLIENT_STORE", "file"),
		ClientsFile:          getEnv("CLIENTS_FILE", "clients.json"),
		SQLitePath:           getEnv("SQLITE_PATH", "./clients.db"),
		SQLiteMigrationsPath: getEnv("SQLITE_MIGRATIONS_PATH", "./internal/repository/migrations"),
		MongoURI:             getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:          getEnv("MONGO_DB_NAME", "shopdb"),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		PostgresHost:         getEnv("POSTGRES_HOST", ""),
		PostgresPort:         getEnvInt("POSTGRES_PORT", 5432),
		PostgresUser:         getEnv("POSTGRES_USER", "shop"),
		PostgresPassword:     getEnv("POSTGRES_PASSWORD", ""),
		PostgresDB:           getEnv("POSTGRES_DB", "shop"),
		OrdersMigrationsPath: getEnv("ORDERS_MIGRATIONS_PATH", "./internal/archive/migrations"),
		KafkaBrokers:         splitList(getEnv("KAFKA_BROKERS", "")),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
