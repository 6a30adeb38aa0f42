package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/yvesmonem/ai-productivity-assistant/extract"
	"github.com/yvesmonem/ai-productivity-assistant/model"
	"github.com/yvesmonem/ai-productivity-assistant/types"
)

const (
	// summaryTokenBudget bounds the document text sent to the model,
	// leaving room for the response.
	summaryTokenBudget   = 24000
	summarizeTemperature = 0.3

	summarizeSystemPrompt = "You are a helpful assistant that analyzes documents and extracts key information. Always respond with valid JSON."
)

// TextExtractor turns raw file bytes into plain text.
type TextExtractor func(content []byte) (string, error)

// Summarizer fetches a PDF from object storage, extracts its text and asks
// the model for a structured analysis, reporting the result to the gateway.
type Summarizer struct {
	gateway   DocumentGateway
	files     ObjectFetcher
	llm       model.ChatModel
	extractor TextExtractor
	logger    *slog.Logger
}

type summaryPayload struct {
	Summary     string            `json:"summary"`
	KeyPoints   []string          `json:"keyPoints"`
	ActionItems []string          `json:"actionItems"`
	Glossary    map[string]string `json:"glossary"`
}

func NewSummarizer(gw DocumentGateway, files ObjectFetcher, llm model.ChatModel, extractor TextExtractor, logger *slog.Logger) *Summarizer {
	if extractor == nil {
		extractor = extract.PDFText
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{
		gateway:   gw,
		files:     files,
		llm:       llm,
		extractor: extractor,
		logger:    logger,
	}
}

func (s *Summarizer) SummarizePDF(ctx context.Context, documentID, fileURL, fileKey string) (*types.SummaryResult, error) {
	result, err := s.run(ctx, documentID, fileURL, fileKey)
	if err != nil {
		s.markFailed(ctx, documentID)
		return nil, fmt.Errorf("failed to summarize PDF: %w", err)
	}
	return result, nil
}

func (s *Summarizer) run(ctx context.Context, documentID, fileURL, fileKey string) (*types.SummaryResult, error) {
	data, err := s.files.Fetch(ctx, fileKey, fileURL)
	if err != nil {
		return nil, err
	}

	text, err := s.extractor(data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text extracted from PDF")
	}

	text = truncateTokens(text, summaryTokenBudget)

	raw, err := s.llm.Complete(ctx, summarizeSystemPrompt, summarizePrompt(text), summarizeTemperature)
	if err != nil {
		return nil, err
	}

	var parsed summaryPayload
	if !model.ParseInto(raw, &parsed) {
		// Best-effort structured extraction: fall back to the raw text.
		parsed = summaryPayload{Summary: raw}
	}
	if parsed.KeyPoints == nil {
		parsed.KeyPoints = []string{}
	}
	if parsed.ActionItems == nil {
		parsed.ActionItems = []string{}
	}
	if parsed.Glossary == nil {
		parsed.Glossary = map[string]string{}
	}

	if err := s.gateway.UpdateDocument(ctx, documentID, map[string]any{
		"summary":     parsed.Summary,
		"keyPoints":   parsed.KeyPoints,
		"actionItems": parsed.ActionItems,
		"glossary":    parsed.Glossary,
		"status":      types.StatusCompleted,
	}); err != nil {
		s.logger.Warn("document update not persisted", "documentId", documentID, "error", err)
	}

	return &types.SummaryResult{
		DocumentID:  documentID,
		Summary:     parsed.Summary,
		KeyPoints:   parsed.KeyPoints,
		ActionItems: parsed.ActionItems,
		Glossary:    parsed.Glossary,
		Status:      types.StatusCompleted,
	}, nil
}

func (s *Summarizer) markFailed(ctx context.Context, documentID string) {
	if err := s.gateway.UpdateDocument(ctx, documentID, map[string]any{
		"status": types.StatusFailed,
	}); err != nil {
		s.logger.Warn("failed-status update not persisted", "documentId", documentID, "error", err)
	}
}

func summarizePrompt(text string) string {
	return fmt.Sprintf(`Analyze the following document and provide:

1. A comprehensive summary (2-3 paragraphs)
2. Key points (bullet list, 5-10 items)
3. Action items (if any, bullet list)
4. Glossary of important terms (term: definition format)

Document text:
%s

Format your response as JSON with these keys:
- summary: string
- keyPoints: array of strings
- actionItems: array of strings
- glossary: object with term: definition pairs
`, text)
}

// truncateTokens cuts text down to at most budget tokens, appending a
// truncation marker when anything was dropped.
func truncateTokens(text string, budget int) string {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		// Without an encoder, fall back to a crude character bound.
		if len(text) > budget*4 {
			return text[:budget*4] + "\n\n[Content truncated...]"
		}
		return text
	}
	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= budget {
		return text
	}
	return enc.Decode(tokens[:budget]) + "\n\n[Content truncated...]"
}
