package AIService

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/caprice1026-disc/aws-parody-page/metrics"
	"github.com/caprice1026-disc/aws-parody-page/types"
	"github.com/caprice1026-disc/aws-parody-page/utils"
)

// GenerateServiceSpec runs the full pipeline for one request: prompt, a
// single upstream call, fence stripping, decode, artifact validation. When
// the fallback is enabled, upstream and parse failures degrade to the
// offline generator instead of surfacing.
func (s *AIService) GenerateServiceSpec(ctx context.Context, request *types.GenerateRequest) (*types.ServiceSpec, error) {
	defer utils.TimeTrack(time.Now(), "ai-generate-service-spec")

	keyword := request.ResolveKeyword()
	lang := types.Language(request.Lang)
	tone := types.Tone(request.Tone)

	if s.Config.OpenAIAPIKey == "" {
		if s.Config.FallbackEnabled {
			slog.Info("no API key configured, serving offline spec", "keyword", keyword)
			metrics.IncGeneration("fallback")
			return OfflineServiceSpec(keyword, lang, tone), nil
		}
		return nil, &types.GenerationError{
			Kind:    types.KindMissingCredential,
			Message: "OPENAI_API_KEY is not configured",
		}
	}

	spec, err := s.generateFromModel(ctx, keyword, lang, tone)
	if err != nil {
		genErr := types.AsGenerationError(err)
		if s.Config.FallbackEnabled && fallbackEligible(genErr.Kind) {
			slog.Warn("generation failed, serving offline spec",
				"kind", string(genErr.Kind),
				"error", genErr.Message,
			)
			metrics.IncGeneration("fallback")
			return OfflineServiceSpec(keyword, lang, tone), nil
		}
		metrics.IncGeneration(string(genErr.Kind))
		return nil, genErr
	}

	metrics.IncGeneration("success")
	return spec, nil
}

func (s *AIService) generateFromModel(ctx context.Context, keyword string, lang types.Language, tone types.Tone) (*types.ServiceSpec, error) {
	prompt := BuildPrompt(keyword, lang, tone)

	schema, err := types.ServiceSpecSchema()
	if err != nil {
		return nil, &types.GenerationError{
			Kind:    types.KindUnexpected,
			Message: "failed to build the schema descriptor",
			Err:     err,
		}
	}

	raw, err := s.AIRepo.CreateServiceSpecCompletion(ctx, prompt, schema, s.Config.ModelOptions())
	if err != nil {
		return nil, err
	}

	payload, rawJSON, err := CoerceJSON(raw)
	if err != nil {
		return nil, &types.GenerationError{
			Kind:    types.KindJSONDecode,
			Message: err.Error(),
			Err:     err,
		}
	}

	if details := types.ValidateServiceSpecPayload(payload); len(details) > 0 {
		return nil, &types.GenerationError{
			Kind:    types.KindSchemaValidation,
			Message: "generated output does not match the ServiceSpec shape",
			Details: details,
		}
	}

	var spec types.ServiceSpec
	if err := json.Unmarshal(rawJSON, &spec); err != nil {
		return nil, &types.GenerationError{
			Kind:    types.KindJSONDecode,
			Message: err.Error(),
			Err:     err,
		}
	}
	return &spec, nil
}

// fallbackEligible reports whether a failure may be masked by the offline
// generator. Artifact validation failures and caller mistakes always surface.
func fallbackEligible(kind types.ErrorKind) bool {
	switch kind {
	case types.KindSchemaValidation, types.KindBadRequest, types.KindMissingCredential:
		return false
	}
	return true
}
