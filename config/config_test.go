package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":8000", cfg.ServerAddr)
	assert.Equal(t, "postgres", cfg.VectorStore)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=documents sslmode=disable",
		cfg.Postgres.ConnString())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9999")
	t.Setenv("VECTOR_STORE", "memory")
	t.Setenv("PG_HOST", "db.internal")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()
	assert.Equal(t, ":9999", cfg.ServerAddr)
	assert.Equal(t, "memory", cfg.VectorStore)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.True(t, cfg.Minio.UseSSL)
}
