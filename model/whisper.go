package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

// SpeechToText turns a local media file into a plain-text transcript.
type SpeechToText interface {
	Transcribe(ctx context.Context, filePath, language string) (string, error)
}

// WhisperClient uploads media to a Whisper-compatible transcription endpoint
// (OpenAI audio API shape) and returns the transcript text.
type WhisperClient struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

type whisperResponse struct {
	Text string `json:"text"`
}

func NewWhisperClient(apiURL, apiKey, model string) *WhisperClient {
	return &WhisperClient{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Long recordings take a while to transcribe.
			Timeout: 300 * time.Second,
		},
	}
}

func (w *WhisperClient) Transcribe(ctx context.Context, filePath, language string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open media file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to copy media file: %w", err)
	}
	_ = writer.WriteField("model", w.model)
	if language != "" {
		_ = writer.WriteField("language", language)
	}
	_ = writer.WriteField("response_format", "json")
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.apiURL, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	if w.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+w.apiKey)
	}

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d, body: %s",
			types.ErrModelUnavailable, resp.StatusCode, string(respBody))
	}

	var whisperResp whisperResponse
	if err := json.Unmarshal(respBody, &whisperResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return whisperResp.Text, nil
}
