package types

import (
	"github.com/google/uuid"
)

// Document mirrors the gateway's document object. Only the fields this
// service reads are mapped; everything else stays with the gateway.
type Document struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Status   string `json:"status"`
	FileURL  string `json:"fileUrl"`
	FileKey  string `json:"fileKey"`
	MimeType string `json:"mimeType"`
}

// ChatTurn is one question/answer exchange. Turns are persisted through the
// gateway and never retained in process memory.
type ChatTurn struct {
	UserID     string  `json:"userId"`
	DocumentID *string `json:"documentId"`
	Message    string  `json:"message"`
	Response   string  `json:"response"`
}

// IndexedChunk is one entry of a per-document collection: the chunk text,
// its embedding and the stable chunk id within the collection.
type IndexedChunk struct {
	ID        uuid.UUID
	ChunkID   string
	Content   string
	Embedding []float32
}

// Scored is a retrieval hit ordered by similarity to the query vector.
type Scored struct {
	Content string
	Score   float64
}

type ChatResult struct {
	Response   string  `json:"response"`
	DocumentID *string `json:"documentId"`
}

type SummaryResult struct {
	DocumentID  string            `json:"documentId"`
	Summary     string            `json:"summary"`
	KeyPoints   []string          `json:"keyPoints"`
	ActionItems []string          `json:"actionItems"`
	Glossary    map[string]string `json:"glossary"`
	Status      string            `json:"status"`
}

type TranscriptResult struct {
	DocumentID    string   `json:"documentId"`
	Transcript    string   `json:"transcript"`
	Summary       string   `json:"summary"`
	Highlights    []string `json:"highlights"`
	Decisions     []string `json:"decisions"`
	ActionItems   []string `json:"actionItems"`
	FollowUpEmail string   `json:"followUpEmail"`
	Status        string   `json:"status"`
}

type ReportResult struct {
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Sections   map[string]string `json:"sections"`
	References []string          `json:"references"`
}

const (
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)
