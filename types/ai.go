package types

import "fmt"

// ResponseMode selects how the model is constrained to emit JSON.
type ResponseMode string

const (
	// ResponseModeJSONSchema uses strict structured output with the schema
	// descriptor attached to the request.
	ResponseModeJSONSchema ResponseMode = "json_schema"
	// ResponseModeJSONObject uses plain JSON mode; the schema travels inside
	// the instructions instead.
	ResponseModeJSONObject ResponseMode = "json_object"
)

func ParseResponseMode(value string) (ResponseMode, error) {
	switch ResponseMode(value) {
	case ResponseModeJSONSchema, ResponseModeJSONObject:
		return ResponseMode(value), nil
	}
	return "", fmt.Errorf("unknown response mode: %q", value)
}

// ModelOptions are the per-call generation settings handed to the AI
// repository together with the prompt and schema descriptor.
type ModelOptions struct {
	Model       string
	Temperature float32
	MaxTokens   int
	Mode        ResponseMode
}
