package model

import (
	"encoding/json"
	"errors"
	"strings"
)

// ExtractJSON returns the outermost JSON object embedded in s. Models often
// wrap their JSON in prose or markdown fences.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")

	if start == -1 || end == -1 || end <= start {
		return s, errors.New("no valid json found")
	}
	return s[start : end+1], nil
}

// ParseInto attempts a strict parse of model output into v and reports
// whether it succeeded. Callers supply their own deterministic fallback
// value when it does not; a parse failure is never an error.
func ParseInto(raw string, v any) bool {
	extracted, err := ExtractJSON(raw)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(extracted), v) == nil
}
