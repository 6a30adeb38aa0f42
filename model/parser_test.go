package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare object",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "surrounded by prose",
			input: "Sure! Here is the JSON:\n```json\n{\"a\":1}\n```\nHope it helps.",
			want:  `{"a":1}`,
		},
		{
			name:    "no object",
			input:   "just text",
			wantErr: true,
		},
		{
			name:    "mismatched braces",
			input:   "} {",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInto(t *testing.T) {
	type payload struct {
		Summary   string   `json:"summary"`
		KeyPoints []string `json:"keyPoints"`
	}

	var p payload
	ok := ParseInto("Here you go: {\"summary\":\"s\",\"keyPoints\":[\"k\"]} done", &p)
	require.True(t, ok)
	assert.Equal(t, "s", p.Summary)
	assert.Equal(t, []string{"k"}, p.KeyPoints)

	var q payload
	assert.False(t, ParseInto("no structure here at all", &q))
	assert.False(t, ParseInto("{broken json]", &q))
}
