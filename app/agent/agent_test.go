package agent

import (
	"context"
	"errors"
	"hash/fnv"
	"math"
	"strings"

	"github.com/yvesmonem/ai-productivity-assistant/store"
	"github.com/yvesmonem/ai-productivity-assistant/types"
)

// fakeGateway serves documents from a map and records writes.
type fakeGateway struct {
	docs       map[string]*types.Document
	failSave   bool
	failUpdate bool

	savedTurns []types.ChatTurn
	updates    []map[string]any
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{docs: make(map[string]*types.Document)}
}

func (g *fakeGateway) GetDocument(_ context.Context, id string) (*types.Document, error) {
	doc, ok := g.docs[id]
	if !ok {
		return nil, types.ErrDocumentNotFound
	}
	return doc, nil
}

func (g *fakeGateway) SaveChatTurn(_ context.Context, turn types.ChatTurn) error {
	if g.failSave {
		return errors.New("gateway unreachable")
	}
	g.savedTurns = append(g.savedTurns, turn)
	return nil
}

func (g *fakeGateway) UpdateDocument(_ context.Context, id string, fields map[string]any) error {
	if g.failUpdate {
		return errors.New("gateway unreachable")
	}
	withID := map[string]any{"id": id}
	for k, v := range fields {
		withID[k] = v
	}
	g.updates = append(g.updates, withID)
	return nil
}

// fakeEmbedder maps each text to a deterministic normalized bag-of-words
// vector, so texts sharing words land close together.
type fakeEmbedder struct {
	err   error
	calls [][]string
}

const fakeDim = 32

func (e *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.calls = append(e.calls, texts)
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, fakeDim)
		for _, w := range strings.Fields(strings.ToLower(text)) {
			w = strings.Trim(w, ".,!?")
			h := fnv.New32a()
			h.Write([]byte(w))
			vec[h.Sum32()%fakeDim]++
		}
		var sum float64
		for _, v := range vec {
			sum += float64(v) * float64(v)
		}
		if norm := math.Sqrt(sum); norm > 0 {
			for j := range vec {
				vec[j] = float32(float64(vec[j]) / norm)
			}
		}
		out[i] = vec
	}
	return out, nil
}

// fakeLLM records prompts and replies with a canned completion.
type fakeLLM struct {
	response string
	err      error

	systems      []string
	users        []string
	temperatures []float32
}

func (l *fakeLLM) Complete(_ context.Context, system, user string, temperature float32) (string, error) {
	if l.err != nil {
		return "", l.err
	}
	l.systems = append(l.systems, system)
	l.users = append(l.users, user)
	l.temperatures = append(l.temperatures, temperature)
	return l.response, nil
}

// spyIndex counts calls through to an inner store so tests can assert which
// paths touched the index.
type spyIndex struct {
	inner      *store.MemoryStore
	getCalls   int
	addCalls   int
	queryCalls int
}

func newSpyIndex() *spyIndex {
	return &spyIndex{inner: store.NewMemoryStore()}
}

func (s *spyIndex) GetOrCreateCollection(ctx context.Context, documentID string) (string, error) {
	s.getCalls++
	return s.inner.GetOrCreateCollection(ctx, documentID)
}

func (s *spyIndex) AddChunks(ctx context.Context, collection string, chunks []types.IndexedChunk) error {
	s.addCalls++
	return s.inner.AddChunks(ctx, collection, chunks)
}

func (s *spyIndex) Query(ctx context.Context, collection string, vector []float32, k int) ([]types.Scored, error) {
	s.queryCalls++
	return s.inner.Query(ctx, collection, vector, k)
}

// fakeFetcher returns fixed bytes for any key.
type fakeFetcher struct {
	data []byte
	err  error
}

func (f *fakeFetcher) Fetch(_ context.Context, _, _ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

// fakeSTT returns a fixed transcript.
type fakeSTT struct {
	transcript string
	err        error
	paths      []string
}

func (s *fakeSTT) Transcribe(_ context.Context, filePath, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.paths = append(s.paths, filePath)
	return s.transcript, nil
}
