// Package agent holds the AI pipelines: retrieval-augmented chat, PDF
// summarization, transcription and report generation. All external
// capabilities arrive as injected dependencies so tests can substitute fakes.
package agent

import (
	"context"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

// DocumentGateway is the slice of the document-management API the pipelines
// use: read document content, write results and chat history back.
type DocumentGateway interface {
	GetDocument(ctx context.Context, id string) (*types.Document, error)
	SaveChatTurn(ctx context.Context, turn types.ChatTurn) error
	UpdateDocument(ctx context.Context, id string, fields map[string]any) error
}

// ObjectFetcher reads raw file bytes from object storage.
type ObjectFetcher interface {
	Fetch(ctx context.Context, key, fallbackURL string) ([]byte, error)
}
