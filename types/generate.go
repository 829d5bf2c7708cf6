package types

import (
	"fmt"
	"strings"
)

// Language is the output language of the generated page.
type Language string

// Tone controls how hard the copy leans into the parody.
type Tone string

const (
	LanguageJapanese Language = "ja"
	LanguageEnglish  Language = "en"

	ToneStandard Tone = "standard"
	ToneOverkill Tone = "overkill"
)

// GenerateRequest is the body of POST /api/generate. Earlier front-ends sent
// the keyword under different names, so all three aliases are accepted.
type GenerateRequest struct {
	Keyword string `json:"keyword"`
	Term    string `json:"term"`
	Prompt  string `json:"prompt"`
	Lang    string `json:"lang"`
	Tone    string `json:"tone"`
}

// ResolveKeyword returns the first non-empty keyword alias, trimmed.
func (r *GenerateRequest) ResolveKeyword() string {
	for _, candidate := range []string{r.Keyword, r.Term, r.Prompt} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// Normalize applies the historical defaults (Japanese, standard tone) and
// canonicalizes casing. Runs before Validate.
func (r *GenerateRequest) Normalize() {
	r.Lang = strings.ToLower(strings.TrimSpace(r.Lang))
	if r.Lang == "" {
		r.Lang = string(LanguageJapanese)
	}
	r.Tone = strings.ToLower(strings.TrimSpace(r.Tone))
	if r.Tone == "" {
		r.Tone = string(ToneStandard)
	}
}

// Validate rejects the request before any upstream call is made.
func (r *GenerateRequest) Validate() error {
	if r.ResolveKeyword() == "" {
		return fmt.Errorf("keyword is required (accepted fields: keyword, term, prompt)")
	}
	switch Language(r.Lang) {
	case LanguageJapanese, LanguageEnglish:
	default:
		return fmt.Errorf("lang must be one of: ja, en")
	}
	switch Tone(r.Tone) {
	case ToneStandard, ToneOverkill:
	default:
		return fmt.Errorf("tone must be one of: standard, overkill")
	}
	return nil
}
