package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"CLIENT_STORE", "CLIENTS_FILE", "REDIS_ADDR", "POSTGRES_HOST", "POSTGRES_PORT", "KAFKA_BROKERS"} {
		t.Setenv(key, "")
	}

	cfg := loadConfig()
	assert.Equal(t, "file", cfg.ClientStore)
	assert.Equal(t, "clients.json", cfg.ClientsFile)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.PostgresHost)
	assert.Equal(t, 5432, cfg.PostgresPort)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("CLIENT_STORE", "sqlite")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,,")

	cfg := loadConfig()
	assert.Equal(t, "sqlite", cfg.ClientStore)
	assert.Equal(t, 6543, cfg.PostgresPort)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
}

func TestGetEnvInt_Invalid(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-port")
	assert.Equal(t, 5432, getEnvInt("POSTGRES_PORT", 5432))
}
