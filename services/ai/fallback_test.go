package AIService

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caprice1026-disc/aws-parody-page/types"
)

func TestOfflineServiceSpecDeterministic(t *testing.T) {
	first := OfflineServiceSpec("nap", types.LanguageJapanese, types.ToneStandard)
	second := OfflineServiceSpec("nap", types.LanguageJapanese, types.ToneStandard)

	assert.Equal(t, first, second)
}

func TestOfflineServiceSpecPassesArtifactValidation(t *testing.T) {
	tests := []struct {
		name string
		lang types.Language
		tone types.Tone
	}{
		{"japanese standard", types.LanguageJapanese, types.ToneStandard},
		{"japanese overkill", types.LanguageJapanese, types.ToneOverkill},
		{"english standard", types.LanguageEnglish, types.ToneStandard},
		{"english overkill", types.LanguageEnglish, types.ToneOverkill},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := OfflineServiceSpec("nap", tc.lang, tc.tone)

			raw, err := json.Marshal(spec)
			assert.NoError(t, err)

			var payload map[string]any
			assert.NoError(t, json.Unmarshal(raw, &payload))
			assert.Empty(t, types.ValidateServiceSpecPayload(payload))
		})
	}
}

func TestOfflineServiceSpecUsesTheKeyword(t *testing.T) {
	spec := OfflineServiceSpec("Coffee Pod", types.LanguageEnglish, types.ToneStandard)

	assert.Equal(t, "AWS Elastic Coffee Pod", spec.ServiceName)
	assert.Contains(t, spec.SampleCLI, "aws elastic-coffee-pod-service create")
	assert.Contains(t, spec.Summary, "Coffee Pod")
}

func TestOfflineServiceSpecToneChangesTheTagline(t *testing.T) {
	standard := OfflineServiceSpec("nap", types.LanguageJapanese, types.ToneStandard)
	overkill := OfflineServiceSpec("nap", types.LanguageJapanese, types.ToneOverkill)

	assert.NotEqual(t, standard.Tagline, overkill.Tagline)
	assert.Contains(t, standard.Tagline, "クラウド級")
	assert.Contains(t, overkill.Tagline, "銀河級")
}

func TestOfflineServiceSpecLanguageVariants(t *testing.T) {
	japanese := OfflineServiceSpec("nap", types.LanguageJapanese, types.ToneStandard)
	english := OfflineServiceSpec("nap", types.LanguageEnglish, types.ToneStandard)

	assert.Contains(t, japanese.Highlights[0], "フルマネージド")
	assert.Contains(t, english.Highlights[0], "Fully managed")
	assert.Contains(t, japanese.SampleCLI, "ap-northeast-1")
	assert.Contains(t, english.SampleCLI, "us-east-1")
}

func TestOfflineServiceSpecKeepsOneNoteNull(t *testing.T) {
	spec := OfflineServiceSpec("nap", types.LanguageJapanese, types.ToneStandard)

	raw, err := json.Marshal(spec)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"notes":null`)
}
