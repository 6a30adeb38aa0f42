package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

func TestGetDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/documents/doc1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(types.Document{
			ID:      "doc1",
			Title:   "Quarterly review",
			Summary: "The cat sat on the mat.",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	doc, err := c.GetDocument(context.Background(), "doc1")
	require.NoError(t, err)
	assert.Equal(t, "doc1", doc.ID)
	assert.Equal(t, "The cat sat on the mat.", doc.Summary)
}

func TestGetDocumentNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, types.ErrDocumentNotFound)
}

func TestSaveChatTurn(t *testing.T) {
	var got types.ChatTurn
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	docID := "doc1"
	c := NewClient(srv.URL)
	err := c.SaveChatTurn(context.Background(), types.ChatTurn{
		UserID:     "u1",
		DocumentID: &docID,
		Message:    "hi",
		Response:   "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	require.NotNil(t, got.DocumentID)
	assert.Equal(t, "doc1", *got.DocumentID)
}

func TestSaveChatTurnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.SaveChatTurn(context.Background(), types.ChatTurn{UserID: "u1"})
	assert.Error(t, err)
}

func TestUpdateDocument(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents/doc1/update", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.UpdateDocument(context.Background(), "doc1", map[string]any{
		"status": types.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, got["status"])
}
