// Package gateway is the client for the external document-management API,
// which owns persistent document state and chat history.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// GetDocument fetches a document by id. Any non-success response maps to
// ErrDocumentNotFound.
func (c *Client) GetDocument(ctx context.Context, id string) (*types.Document, error) {
	url := fmt.Sprintf("%s/api/documents/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: gateway returned status %d for document %s",
			types.ErrDocumentNotFound, resp.StatusCode, id)
	}

	var doc types.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	return &doc, nil
}

// SaveChatTurn persists one chat exchange. Callers treat failures as
// best-effort: the error is returned for logging only.
func (c *Client) SaveChatTurn(ctx context.Context, turn types.ChatTurn) error {
	return c.post(ctx, c.baseURL+"/api/chat", turn)
}

// UpdateDocument pushes generated fields and status back to the gateway.
func (c *Client) UpdateDocument(ctx context.Context, id string, fields map[string]any) error {
	url := fmt.Sprintf("%s/api/documents/%s/update", c.baseURL, id)
	return c.post(ctx, url, fields)
}

func (c *Client) post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
