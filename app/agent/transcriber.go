package agent

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/yvesmonem/ai-productivity-assistant/model"
	"github.com/yvesmonem/ai-productivity-assistant/types"
)

const (
	insightsTemperature = 0.3

	transcribeSystemPrompt = "You are a meeting assistant that extracts key information from transcripts. Always respond with valid JSON."
)

// Transcriber fetches an audio/video file, transcribes it and asks the model
// for meeting insights, reporting the result to the gateway.
type Transcriber struct {
	gateway DocumentGateway
	files   ObjectFetcher
	stt     model.SpeechToText
	llm     model.ChatModel
	logger  *slog.Logger
}

type insightsPayload struct {
	Summary       string   `json:"summary"`
	Highlights    []string `json:"highlights"`
	Decisions     []string `json:"decisions"`
	ActionItems   []string `json:"actionItems"`
	FollowUpEmail string   `json:"followUpEmail"`
}

func NewTranscriber(gw DocumentGateway, files ObjectFetcher, stt model.SpeechToText, llm model.ChatModel, logger *slog.Logger) *Transcriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transcriber{
		gateway: gw,
		files:   files,
		stt:     stt,
		llm:     llm,
		logger:  logger,
	}
}

func (t *Transcriber) Transcribe(ctx context.Context, documentID, fileURL, fileKey, mimeType string) (*types.TranscriptResult, error) {
	result, err := t.run(ctx, documentID, fileURL, fileKey, mimeType)
	if err != nil {
		t.markFailed(ctx, documentID)
		return nil, fmt.Errorf("failed to transcribe audio: %w", err)
	}
	return result, nil
}

func (t *Transcriber) run(ctx context.Context, documentID, fileURL, fileKey, mimeType string) (*types.TranscriptResult, error) {
	data, err := t.files.Fetch(ctx, fileKey, fileURL)
	if err != nil {
		return nil, err
	}

	// The transcription endpoint wants a file, so stage the bytes on disk.
	tmp, err := os.CreateTemp("", "transcribe-*"+extForMime(mimeType))
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	transcript, err := t.stt.Transcribe(ctx, tmpPath, "en")
	if err != nil {
		return nil, err
	}

	raw, err := t.llm.Complete(ctx, transcribeSystemPrompt, insightsPrompt(transcript), insightsTemperature)
	if err != nil {
		return nil, err
	}

	var parsed insightsPayload
	if !model.ParseInto(raw, &parsed) {
		parsed = insightsPayload{Summary: raw}
	}
	if parsed.Highlights == nil {
		parsed.Highlights = []string{}
	}
	if parsed.Decisions == nil {
		parsed.Decisions = []string{}
	}
	if parsed.ActionItems == nil {
		parsed.ActionItems = []string{}
	}

	if err := t.gateway.UpdateDocument(ctx, documentID, map[string]any{
		"transcript":    transcript,
		"highlights":    parsed.Highlights,
		"decisions":     parsed.Decisions,
		"actionItems":   parsed.ActionItems,
		"followUpEmail": parsed.FollowUpEmail,
		"status":        types.StatusCompleted,
	}); err != nil {
		t.logger.Warn("document update not persisted", "documentId", documentID, "error", err)
	}

	return &types.TranscriptResult{
		DocumentID:    documentID,
		Transcript:    transcript,
		Summary:       parsed.Summary,
		Highlights:    parsed.Highlights,
		Decisions:     parsed.Decisions,
		ActionItems:   parsed.ActionItems,
		FollowUpEmail: parsed.FollowUpEmail,
		Status:        types.StatusCompleted,
	}, nil
}

func (t *Transcriber) markFailed(ctx context.Context, documentID string) {
	if err := t.gateway.UpdateDocument(ctx, documentID, map[string]any{
		"status": types.StatusFailed,
	}); err != nil {
		t.logger.Warn("failed-status update not persisted", "documentId", documentID, "error", err)
	}
}

func insightsPrompt(transcript string) string {
	return fmt.Sprintf(`Analyze this meeting transcript and provide:

1. A summary (2-3 paragraphs)
2. Key highlights (bullet list, 5-10 items)
3. Decisions made (bullet list)
4. Action items with owners if mentioned (bullet list)
5. A follow-up email draft (optional)

Transcript:
%s

Format your response as JSON with these keys:
- summary: string
- highlights: array of strings
- decisions: array of strings
- actionItems: array of strings
- followUpEmail: string (optional)
`, transcript)
}

func extForMime(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "wav"):
		return ".wav"
	case strings.Contains(mimeType, "ogg"):
		return ".ogg"
	case strings.Contains(mimeType, "mp4"), strings.Contains(mimeType, "video"):
		return ".mp4"
	case strings.Contains(mimeType, "webm"):
		return ".webm"
	default:
		return ".mp3"
	}
}
