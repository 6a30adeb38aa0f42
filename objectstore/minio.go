// Package objectstore fetches file bytes from MinIO, with an HTTP fallback
// for presigned URLs when direct bucket access fails.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStore struct {
	client     *minio.Client
	bucket     string
	httpClient *http.Client
	logger     *slog.Logger
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func NewMinioStore(cfg Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinioStore{
		client: client,
		bucket: cfg.Bucket,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: slog.Default(),
	}, nil
}

// Fetch reads the object at key. When the bucket read fails and fallbackURL
// is set, the bytes are fetched over plain HTTP instead.
func (s *MinioStore) Fetch(ctx context.Context, key, fallbackURL string) ([]byte, error) {
	data, err := s.getObject(ctx, key)
	if err == nil {
		return data, nil
	}
	if fallbackURL == "" {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}

	s.logger.Warn("object storage read failed, falling back to URL",
		"key", key, "error", err)
	return s.fetchURL(ctx, fallbackURL)
}

func (s *MinioStore) getObject(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("object %s is empty", key)
	}
	return data, nil
}

func (s *MinioStore) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s returned status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
