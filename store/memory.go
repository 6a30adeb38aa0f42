package store

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

// MemoryStore is a map-backed VectorStorer using brute-force cosine search.
// It backs tests and storage-less deployments.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]memoryEntry
}

type memoryEntry struct {
	chunkID   string
	content   string
	embedding []float32
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]memoryEntry),
	}
}

func (m *MemoryStore) GetOrCreateCollection(_ context.Context, documentID string) (string, error) {
	name := CollectionName(documentID)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.collections[name]; !ok {
		m.collections[name] = nil
	}
	return name, nil
}

func (m *MemoryStore) AddChunks(_ context.Context, collection string, chunks []types.IndexedChunk) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.collections[collection]
	for _, c := range chunks {
		embedding := make([]float32, len(c.Embedding))
		copy(embedding, c.Embedding)
		entry := memoryEntry{chunkID: c.ChunkID, content: c.Content, embedding: embedding}

		replaced := false
		for i := range entries {
			if entries[i].chunkID == c.ChunkID {
				entries[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			entries = append(entries, entry)
		}
	}
	m.collections[collection] = entries
	return nil
}

func (m *MemoryStore) Query(_ context.Context, collection string, vector []float32, k int) ([]types.Scored, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := m.collections[collection]
	if len(entries) == 0 || k <= 0 {
		return nil, nil
	}

	hits := make([]types.Scored, 0, len(entries))
	for _, e := range entries {
		hits = append(hits, types.Scored{
			Content: e.content,
			Score:   cosine(vector, e.embedding),
		})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// Len reports the number of entries in a collection.
func (m *MemoryStore) Len(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collections[collection])
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
