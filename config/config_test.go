package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.False(t, cfg.Database.UseSSL)
	assert.Empty(t, cfg.MQ.Backend)
	assert.Equal(t, "chamados.eventos", cfg.MQ.Channel)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_USE_SSL", "true")
	t.Setenv("MQ_BACKEND", "rabbitmq")
	t.Setenv("RABBITMQ_PREFETCH_COUNT", "5")

	cfg := LoadConfig()

	assert.Equal(t, 8081, cfg.ServerPort)
	assert.True(t, cfg.Database.UseSSL)
	assert.Equal(t, "rabbitmq", cfg.MQ.Backend)
	assert.Equal(t, 5, cfg.MQ.RabbitMQ.PrefetchCount)
}
