package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/yvesmonem/ai-productivity-assistant/chunker"
	"github.com/yvesmonem/ai-productivity-assistant/model"
	"github.com/yvesmonem/ai-productivity-assistant/store"
	"github.com/yvesmonem/ai-productivity-assistant/types"
)

const (
	chatChunkSize    = chunker.DefaultChunkSize
	chatChunkOverlap = chunker.DefaultOverlap
	chatTopK         = 3
	chatTemperature  = 0.7

	chatSystemPrompt = "You are a helpful assistant."
)

// Responder answers user messages, grounding them in a document's indexed
// chunks when a document id is given. It keeps no state of its own beyond
// the vector index.
type Responder struct {
	gateway  DocumentGateway
	embedder model.Embedder
	index    store.VectorStorer
	llm      model.ChatModel
	logger   *slog.Logger
}

func NewResponder(gw DocumentGateway, embedder model.Embedder, index store.VectorStorer, llm model.ChatModel, logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{
		gateway:  gw,
		embedder: embedder,
		index:    index,
		llm:      llm,
		logger:   logger,
	}
}

// InitializeChat indexes a document for retrieval: fetch its text from the
// gateway, chunk it, embed all chunks in one batch and add them to the
// document's collection. Chunk ids are stable, so re-running replaces the
// previous entries.
func (r *Responder) InitializeChat(ctx context.Context, documentID string) error {
	doc, err := r.gateway.GetDocument(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to initialize chat: %w", err)
	}

	// The summary stands in for full document text.
	text := doc.Summary
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("failed to initialize chat: %w", types.ErrNoIndexableText)
	}

	chunks := chunker.Split(text, chatChunkSize, chatChunkOverlap)
	vectors, err := r.embedder.Embed(ctx, chunks)
	if err != nil {
		return fmt.Errorf("failed to initialize chat: %w", err)
	}

	collection, err := r.index.GetOrCreateCollection(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to initialize chat: %w", err)
	}

	indexed := make([]types.IndexedChunk, len(chunks))
	for i := range chunks {
		indexed[i] = types.IndexedChunk{
			ID:        uuid.New(),
			ChunkID:   fmt.Sprintf("%s_chunk_%d", documentID, i),
			Content:   chunks[i],
			Embedding: vectors[i],
		}
	}
	if err := r.index.AddChunks(ctx, collection, indexed); err != nil {
		return fmt.Errorf("failed to initialize chat: %w", err)
	}

	r.logger.Info("chat initialized", "documentId", documentID, "chunks", len(indexed))
	return nil
}

// Chat answers message, grounded in documentID's indexed chunks when given.
// The turn is persisted best-effort: a failed save never fails the call.
func (r *Responder) Chat(ctx context.Context, documentID *string, message, userID string) (*types.ChatResult, error) {
	// A pointer to "" means no document, same as nil; normalize so the
	// persisted turn carries null rather than an empty id.
	if documentID != nil && *documentID == "" {
		documentID = nil
	}

	answer, err := r.respond(ctx, documentID, message)
	if err != nil {
		return nil, fmt.Errorf("chat failed: %w", err)
	}

	turn := types.ChatTurn{
		UserID:     userID,
		DocumentID: documentID,
		Message:    message,
		Response:   answer,
	}
	if err := r.gateway.SaveChatTurn(ctx, turn); err != nil {
		r.logger.Warn("chat turn not persisted", "userId", userID, "error", err)
	}

	return &types.ChatResult{
		Response:   answer,
		DocumentID: documentID,
	}, nil
}

func (r *Responder) respond(ctx context.Context, documentID *string, message string) (string, error) {
	if documentID == nil {
		return r.llm.Complete(ctx, chatSystemPrompt, genericPrompt(message), chatTemperature)
	}

	vectors, err := r.embedder.Embed(ctx, []string{message})
	if err != nil {
		return "", err
	}

	collection, err := r.index.GetOrCreateCollection(ctx, *documentID)
	if err != nil {
		return "", err
	}

	hits, err := r.index.Query(ctx, collection, vectors[0], chatTopK)
	if err != nil {
		return "", err
	}

	texts := make([]string, len(hits))
	for i, h := range hits {
		texts[i] = h.Content
	}
	context := strings.Join(texts, "\n\n")

	return r.llm.Complete(ctx, chatSystemPrompt, groundedPrompt(context, message), chatTemperature)
}

func groundedPrompt(context, message string) string {
	if context == "" {
		// An empty collection is not an error; the model answers
		// ungrounded but is told nothing relevant was found.
		context = "(no relevant document content was found)"
	}
	return fmt.Sprintf(`You are a helpful assistant answering questions about a document.

Document context:
%s

User question: %s

Provide a clear, concise answer based on the document context. If the answer isn't in the context, say so.`, context, message)
}

func genericPrompt(message string) string {
	return fmt.Sprintf(`You are a helpful AI assistant. Answer the user's question.

User question: %s`, message)
}
