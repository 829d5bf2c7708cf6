package AIService

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CoerceJSON strips markdown fences and any prose around the outermost JSON
// object, then decodes the result into a generic map. The cleaned bytes are
// returned alongside the map so the caller can unmarshal into a typed struct
// without a re-serialization round trip.
func CoerceJSON(raw string) (map[string]any, []byte, error) {
	text := StripCodeFences(raw)
	if clipped, ok := clipToObject(text); ok {
		text = clipped
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	return payload, []byte(text), nil
}

// StripCodeFences removes a leading/trailing markdown code fence. Models
// sometimes wrap output in a fenced block despite the plain-JSON instruction.
func StripCodeFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// clipToObject cuts text down to the span between the first "{" and the
// last "}". Models occasionally prepend a sentence before the JSON body.
func clipToObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
