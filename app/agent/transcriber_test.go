package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

func TestTranscribe(t *testing.T) {
	gw := newFakeGateway()
	files := &fakeFetcher{data: []byte("fake audio bytes")}
	stt := &fakeSTT{transcript: "We agreed to ship on Friday."}
	llm := &fakeLLM{response: `{"summary":"Shipping meeting.","highlights":["ship Friday"],"decisions":["ship on Friday"],"actionItems":["prepare release"],"followUpEmail":"Hi team"}`}
	tr := NewTranscriber(gw, files, stt, llm, nil)

	result, err := tr.Transcribe(context.Background(), "doc1", "http://files/a.mp3", "a.mp3", "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, "We agreed to ship on Friday.", result.Transcript)
	assert.Equal(t, []string{"ship on Friday"}, result.Decisions)
	assert.Equal(t, types.StatusCompleted, result.Status)

	// The staged temp file was handed to the transcription client.
	require.Len(t, stt.paths, 1)
	assert.Contains(t, stt.paths[0], "transcribe-")

	// The transcript went to the model for insights.
	require.Len(t, llm.users, 1)
	assert.Contains(t, llm.users[0], "We agreed to ship on Friday.")

	require.Len(t, gw.updates, 1)
	assert.Equal(t, types.StatusCompleted, gw.updates[0]["status"])
	assert.Equal(t, "We agreed to ship on Friday.", gw.updates[0]["transcript"])
}

func TestTranscribeFallbackOnUnparsableOutput(t *testing.T) {
	gw := newFakeGateway()
	files := &fakeFetcher{data: []byte("audio")}
	stt := &fakeSTT{transcript: "hello world"}
	llm := &fakeLLM{response: "not json at all"}
	tr := NewTranscriber(gw, files, stt, llm, nil)

	result, err := tr.Transcribe(context.Background(), "doc1", "", "a.mp3", "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, "not json at all", result.Summary)
	assert.Empty(t, result.Highlights)
}

func TestTranscribeMarksFailed(t *testing.T) {
	gw := newFakeGateway()
	files := &fakeFetcher{data: []byte("audio")}
	stt := &fakeSTT{err: errors.New("whisper down")}
	tr := NewTranscriber(gw, files, stt, &fakeLLM{}, nil)

	_, err := tr.Transcribe(context.Background(), "doc1", "", "a.mp3", "audio/mpeg")
	require.Error(t, err)

	require.Len(t, gw.updates, 1)
	assert.Equal(t, types.StatusFailed, gw.updates[0]["status"])
}

func TestExtForMime(t *testing.T) {
	assert.Equal(t, ".wav", extForMime("audio/wav"))
	assert.Equal(t, ".mp4", extForMime("video/mp4"))
	assert.Equal(t, ".mp3", extForMime("audio/mpeg"))
	assert.Equal(t, ".mp3", extForMime(""))
}
