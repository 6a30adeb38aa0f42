// Package store provides the per-document vector index. Each document gets a
// named collection holding chunk text and embeddings; collections never mix
// chunks across documents.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

// VectorStorer is the index contract the chat pipeline depends on.
type VectorStorer interface {
	// GetOrCreateCollection is idempotent and returns the collection name
	// for documentID, creating an empty collection if absent.
	GetOrCreateCollection(ctx context.Context, documentID string) (string, error)
	// AddChunks appends entries to a collection. Duplicate chunk IDs within
	// a collection are overwritten (upsert).
	AddChunks(ctx context.Context, collection string, chunks []types.IndexedChunk) error
	// Query returns up to k entries nearest to vector by cosine similarity,
	// best first. An empty collection yields an empty result, never an error.
	Query(ctx context.Context, collection string, vector []float32, k int) ([]types.Scored, error)
}

// CollectionName derives the collection namespace for a document.
func CollectionName(documentID string) string {
	return "doc_" + documentID
}

// PostgresStore keeps collections in Postgres with pgvector embeddings.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connStr string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{
		pool: pool,
	}, nil
}

func (p *PostgresStore) Init(ctx context.Context) error {
	query := `
    CREATE EXTENSION IF NOT EXISTS vector;

	CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

    CREATE TABLE IF NOT EXISTS chunks (
        id UUID PRIMARY KEY,
        collection TEXT NOT NULL REFERENCES collections(name) ON DELETE CASCADE,
        chunk_id TEXT NOT NULL,
        content TEXT NOT NULL,
        embedding vector(768),
		UNIQUE (collection, chunk_id)
    );

	CREATE INDEX IF NOT EXISTS idx_chunks_collection ON chunks(collection);

	CREATE INDEX IF NOT EXISTS idx_chunks_embedding ON chunks USING ivfflat (embedding vector_cosine_ops)
	WITH (lists = 100);
    `
	_, err := p.pool.Exec(ctx, query)
	return err
}

func (p *PostgresStore) GetOrCreateCollection(ctx context.Context, documentID string) (string, error) {
	name := CollectionName(documentID)
	_, err := p.pool.Exec(ctx,
		`INSERT INTO collections (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return "", fmt.Errorf("error creating collection %s: %w", name, err)
	}
	return name, nil
}

func (p *PostgresStore) AddChunks(ctx context.Context, collection string, chunks []types.IndexedChunk) error {
	query := `
    INSERT INTO chunks (id, collection, chunk_id, content, embedding)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (collection, chunk_id) DO UPDATE SET
		content = EXCLUDED.content,
		embedding = EXCLUDED.embedding
    `
	for _, c := range chunks {
		_, err := p.pool.Exec(ctx, query,
			c.ID, collection, c.ChunkID, c.Content, pgvector.NewVector(c.Embedding),
		)
		if err != nil {
			return fmt.Errorf("error saving chunk %s: %w", c.ChunkID, err)
		}
	}
	return nil
}

func (p *PostgresStore) Query(ctx context.Context, collection string, vector []float32, k int) ([]types.Scored, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("empty query vector")
	}

	query := `
		SELECT content, 1-(embedding <=> $1) AS score
		FROM chunks
		WHERE collection = $2 AND embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $3
	`
	rows, err := p.pool.Query(ctx, query, pgvector.NewVector(vector), collection, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []types.Scored
	for rows.Next() {
		var hit types.Scored
		if err := rows.Scan(&hit.Content, &hit.Score); err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}

// Close closes the connection pool.
func (p *PostgresStore) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}
