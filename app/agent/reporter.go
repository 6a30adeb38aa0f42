package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yvesmonem/ai-productivity-assistant/model"
	"github.com/yvesmonem/ai-productivity-assistant/types"
)

const (
	reportTemperature = 0.7

	reportSystemPrompt = "You are a professional report writer. Always respond with valid JSON."
)

// Reporter generates a structured report on a free-text topic.
type Reporter struct {
	llm    model.ChatModel
	logger *slog.Logger
}

type reportPayload struct {
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Sections   map[string]string `json:"sections"`
	References []string          `json:"references"`
}

func NewReporter(llm model.ChatModel, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		llm:    llm,
		logger: logger,
	}
}

func (r *Reporter) Generate(ctx context.Context, topic string) (*types.ReportResult, error) {
	raw, err := r.llm.Complete(ctx, reportSystemPrompt, reportPrompt(topic), reportTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	var parsed reportPayload
	if !model.ParseInto(raw, &parsed) {
		parsed = reportPayload{
			Title:   fmt.Sprintf("Report on %s", topic),
			Content: raw,
		}
	}
	if parsed.Title == "" {
		parsed.Title = fmt.Sprintf("Report on %s", topic)
	}
	if parsed.Sections == nil {
		parsed.Sections = map[string]string{}
	}
	if parsed.References == nil {
		parsed.References = []string{}
	}

	return &types.ReportResult{
		Title:      parsed.Title,
		Content:    parsed.Content,
		Sections:   parsed.Sections,
		References: parsed.References,
	}, nil
}

func reportPrompt(topic string) string {
	return fmt.Sprintf(`Generate a comprehensive report on the following topic: %s

The report should include:
1. A clear, engaging title
2. An introduction that provides context
3. Multiple well-structured sections with detailed content
4. A conclusion that summarizes key points
5. References (if applicable)

Format your response as JSON with these keys:
- title: string
- content: string (full report text)
- sections: object with section titles as keys and content as values
- references: array of strings (optional)
`, topic)
}
