// Package config collects the service configuration from the environment.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	ServerAddr  string
	GatewayURL  string
	VectorStore string // "postgres" or "memory"
	Postgres    PostgresConfig
	Ollama      OllamaConfig
	LLM         LLMConfig
	Whisper     WhisperConfig
	Minio       MinioConfig
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func (c PostgresConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName)
}

type OllamaConfig struct {
	URL   string
	Model string
}

type LLMConfig struct {
	URL    string
	APIKey string
	Model  string
}

type WhisperConfig struct {
	URL    string
	APIKey string
	Model  string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load reads the configuration from environment variables, applying
// defaults suited to a local docker-compose setup.
func Load() Config {
	return Config{
		ServerAddr:  getenv("SERVER_ADDR", ":8000"),
		GatewayURL:  getenv("NODE_API_URL", "http://localhost:3001"),
		VectorStore: getenv("VECTOR_STORE", "postgres"),
		Postgres: PostgresConfig{
			Host:     getenv("PG_HOST", "localhost"),
			Port:     getenv("PG_PORT", "5432"),
			User:     getenv("PG_USER", "postgres"),
			Password: getenv("PG_PASS", "postgres"),
			DBName:   getenv("PG_DB_NAME", "documents"),
		},
		Ollama: OllamaConfig{
			URL:   getenv("OLLAMA_EMBEDDING_URL", "http://localhost:11434/api/embed"),
			Model: getenv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
		},
		LLM: LLMConfig{
			URL:    getenv("LLM_URL", "https://api.openai.com/v1/chat/completions"),
			APIKey: os.Getenv("LLM_API_KEY"),
			Model:  getenv("LLM_MODEL", "gpt-4o-mini"),
		},
		Whisper: WhisperConfig{
			URL:    getenv("WHISPER_URL", "https://api.openai.com/v1/audio/transcriptions"),
			APIKey: os.Getenv("WHISPER_API_KEY"),
			Model:  getenv("WHISPER_MODEL", "whisper-1"),
		},
		Minio: MinioConfig{
			Endpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getenv("MINIO_BUCKET", "documents"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
