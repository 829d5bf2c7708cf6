package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKeyword(t *testing.T) {
	tests := []struct {
		name     string
		request  GenerateRequest
		expected string
	}{
		{
			name:     "keyword wins over the other aliases",
			request:  GenerateRequest{Keyword: "coffee", Term: "tea", Prompt: "water"},
			expected: "coffee",
		},
		{
			name:     "term is the second alias",
			request:  GenerateRequest{Term: "tea", Prompt: "water"},
			expected: "tea",
		},
		{
			name:     "prompt is the last alias",
			request:  GenerateRequest{Prompt: "water"},
			expected: "water",
		},
		{
			name:     "whitespace-only aliases are skipped",
			request:  GenerateRequest{Keyword: "   ", Term: "\t", Prompt: " nap "},
			expected: "nap",
		},
		{
			name:     "no keyword at all",
			request:  GenerateRequest{},
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.request.ResolveKeyword())
		})
	}
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	request := GenerateRequest{Keyword: "nap"}
	request.Normalize()

	assert.Equal(t, "ja", request.Lang)
	assert.Equal(t, "standard", request.Tone)
}

func TestNormalizeFoldsCaseAndWhitespace(t *testing.T) {
	request := GenerateRequest{Keyword: "nap", Lang: " EN ", Tone: "\tOVERKILL "}
	request.Normalize()

	assert.Equal(t, "en", request.Lang)
	assert.Equal(t, "overkill", request.Tone)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request GenerateRequest
		wantErr string
	}{
		{
			name:    "valid japanese request",
			request: GenerateRequest{Keyword: "nap", Lang: "ja", Tone: "standard"},
		},
		{
			name:    "valid english overkill request",
			request: GenerateRequest{Term: "nap", Lang: "en", Tone: "overkill"},
		},
		{
			name:    "missing keyword",
			request: GenerateRequest{Lang: "ja", Tone: "standard"},
			wantErr: "keyword is required (accepted fields: keyword, term, prompt)",
		},
		{
			name:    "unknown language",
			request: GenerateRequest{Keyword: "nap", Lang: "fr", Tone: "standard"},
			wantErr: "lang must be one of: ja, en",
		},
		{
			name:    "unknown tone",
			request: GenerateRequest{Keyword: "nap", Lang: "ja", Tone: "mild"},
			wantErr: "tone must be one of: standard, overkill",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.wantErr)
			}
		})
	}
}
