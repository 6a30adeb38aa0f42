package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

func passthroughExtractor(content []byte) (string, error) {
	return string(content), nil
}

func TestSummarizePDF(t *testing.T) {
	gw := newFakeGateway()
	files := &fakeFetcher{data: []byte("An important document about quarterly results.")}
	llm := &fakeLLM{response: `{"summary":"Quarterly results improved.","keyPoints":["revenue up"],"actionItems":[],"glossary":{"ARR":"annual recurring revenue"}}`}
	s := NewSummarizer(gw, files, llm, passthroughExtractor, nil)

	result, err := s.SummarizePDF(context.Background(), "doc1", "http://files/doc1.pdf", "doc1.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Quarterly results improved.", result.Summary)
	assert.Equal(t, []string{"revenue up"}, result.KeyPoints)
	assert.Equal(t, types.StatusCompleted, result.Status)

	require.Len(t, llm.temperatures, 1)
	assert.Equal(t, float32(summarizeTemperature), llm.temperatures[0])

	require.Len(t, gw.updates, 1)
	assert.Equal(t, types.StatusCompleted, gw.updates[0]["status"])
	assert.Equal(t, "Quarterly results improved.", gw.updates[0]["summary"])
}

func TestSummarizePDFFallbackOnUnparsableOutput(t *testing.T) {
	gw := newFakeGateway()
	files := &fakeFetcher{data: []byte("some text")}
	llm := &fakeLLM{response: "Sorry, here is plain prose instead of JSON."}
	s := NewSummarizer(gw, files, llm, passthroughExtractor, nil)

	result, err := s.SummarizePDF(context.Background(), "doc1", "", "doc1.pdf")
	require.NoError(t, err)

	// The raw output becomes the summary; the rest defaults empty.
	assert.Equal(t, llm.response, result.Summary)
	assert.Empty(t, result.KeyPoints)
	assert.Empty(t, result.ActionItems)
	assert.Empty(t, result.Glossary)
}

func TestSummarizePDFMarksFailed(t *testing.T) {
	gw := newFakeGateway()
	files := &fakeFetcher{err: errors.New("bucket unreachable")}
	s := NewSummarizer(gw, files, &fakeLLM{}, passthroughExtractor, nil)

	_, err := s.SummarizePDF(context.Background(), "doc1", "", "doc1.pdf")
	require.Error(t, err)

	require.Len(t, gw.updates, 1)
	assert.Equal(t, types.StatusFailed, gw.updates[0]["status"])
}

func TestSummarizePDFEmptyText(t *testing.T) {
	gw := newFakeGateway()
	files := &fakeFetcher{data: []byte("   \n ")}
	s := NewSummarizer(gw, files, &fakeLLM{}, passthroughExtractor, nil)

	_, err := s.SummarizePDF(context.Background(), "doc1", "", "doc1.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text extracted")
}

func TestSummarizePDFUpdateFailureDoesNotFail(t *testing.T) {
	gw := newFakeGateway()
	gw.failUpdate = true
	files := &fakeFetcher{data: []byte("content")}
	llm := &fakeLLM{response: `{"summary":"s","keyPoints":[],"actionItems":[],"glossary":{}}`}
	s := NewSummarizer(gw, files, llm, passthroughExtractor, nil)

	result, err := s.SummarizePDF(context.Background(), "doc1", "", "doc1.pdf")
	require.NoError(t, err)
	assert.Equal(t, "s", result.Summary)
}

func TestTruncateTokens(t *testing.T) {
	short := "just a few words"
	assert.Equal(t, short, truncateTokens(short, 100))

	long := ""
	for i := 0; i < 2000; i++ {
		long += "word "
	}
	truncated := truncateTokens(long, 50)
	assert.Less(t, len(truncated), len(long))
	assert.Contains(t, truncated, "[Content truncated...]")
}
