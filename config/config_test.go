package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_DRIVER", "PUBLIC_BASE_URL", "REDIS_KEY_PREFIX", "KAFKA_BROKER", "KAFKA_TOPIC"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, "menuboard:", cfg.RedisKeyPrefix)
	assert.Equal(t, "catalog-events", cfg.KafkaTopic)
	assert.Nil(t, NewKafkaWriter(cfg))
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", DriverPostgres)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "menus")
	t.Setenv("DB_USER", "owner")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("KAFKA_BROKER", "kafka:9092")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "host=db port=5433 user=owner password=secret dbname=menus sslmode=disable", cfg.PostgresDSN())

	writer := NewKafkaWriter(cfg)
	if assert.NotNil(t, writer) {
		assert.Equal(t, "catalog-events", writer.Topic)
		assert.Equal(t, "kafka:9092", writer.Addr.String())
	}
}
