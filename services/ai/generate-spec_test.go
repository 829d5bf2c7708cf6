package AIService

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caprice1026-disc/aws-parody-page/configs"
	AIRepository "github.com/caprice1026-disc/aws-parody-page/repositories/ai"
	"github.com/caprice1026-disc/aws-parody-page/types"
)

func testConfig(fallback bool) *configs.Config {
	return &configs.Config{
		OpenAIAPIKey:    "test-key",
		Model:           "gpt-4o-mini",
		Temperature:     0.4,
		MaxTokens:       1100,
		ResponseMode:    types.ResponseModeJSONSchema,
		FallbackEnabled: fallback,
	}
}

func serviceAgainst(srv *httptest.Server, fallback bool) *AIService {
	repo := AIRepository.NewRepositoryWithBaseURL("test-key", srv.URL+"/v1")
	return NewAIService(repo, testConfig(fallback))
}

func completionEnvelope(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     10,
			"completion_tokens": 20,
			"total_tokens":      30,
		},
	}
}

func validContent(t *testing.T) string {
	t.Helper()

	raw, err := json.Marshal(OfflineServiceSpec("nap", types.LanguageJapanese, types.ToneStandard))
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(raw)
}

func napRequest() *types.GenerateRequest {
	return &types.GenerateRequest{Keyword: "nap", Lang: "ja", Tone: "standard"}
}

func TestGenerateServiceSpecSuccess(t *testing.T) {
	var hit int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hit, 1)
		_ = json.NewEncoder(w).Encode(completionEnvelope(validContent(t)))
	}))
	defer srv.Close()

	spec, err := serviceAgainst(srv, false).GenerateServiceSpec(context.Background(), napRequest())

	assert.NoError(t, err)
	assert.Equal(t, "AWS Elastic nap", spec.ServiceName)
	assert.Len(t, spec.Pricing, 3)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hit))
}

func TestGenerateServiceSpecStripsFences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fenced := "```json\n" + validContent(t) + "\n```"
		_ = json.NewEncoder(w).Encode(completionEnvelope(fenced))
	}))
	defer srv.Close()

	spec, err := serviceAgainst(srv, false).GenerateServiceSpec(context.Background(), napRequest())

	assert.NoError(t, err)
	assert.Equal(t, "AWS Elastic nap", spec.ServiceName)
}

func TestGenerateServiceSpecDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(completionEnvelope("the model refused to answer"))
	}))
	defer srv.Close()

	_, err := serviceAgainst(srv, false).GenerateServiceSpec(context.Background(), napRequest())

	var genErr *types.GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, types.KindJSONDecode, genErr.Kind)
}

func TestGenerateServiceSpecValidationFailureIsNeverMasked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.Unmarshal([]byte(validContent(t)), &payload)
		delete(payload, "sample_cli")
		broken, _ := json.Marshal(payload)
		_ = json.NewEncoder(w).Encode(completionEnvelope(string(broken)))
	}))
	defer srv.Close()

	// Fallback is enabled, yet a shape violation must still surface.
	_, err := serviceAgainst(srv, true).GenerateServiceSpec(context.Background(), napRequest())

	var genErr *types.GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, types.KindSchemaValidation, genErr.Kind)
	assert.Contains(t, genErr.Details, "sample_cli: required field is missing")
}

func TestGenerateServiceSpecUpstreamFailureFallsBack(t *testing.T) {
	var hit int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hit, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limit reached", "type": "tokens"}}`))
	}))
	defer srv.Close()

	spec, err := serviceAgainst(srv, true).GenerateServiceSpec(context.Background(), napRequest())

	assert.NoError(t, err)
	assert.Equal(t, OfflineServiceSpec("nap", types.LanguageJapanese, types.ToneStandard), spec)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hit))
}

func TestGenerateServiceSpecUpstreamFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "upstream exploded", "type": "server_error"}}`))
	}))
	defer srv.Close()

	_, err := serviceAgainst(srv, false).GenerateServiceSpec(context.Background(), napRequest())

	var genErr *types.GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, types.KindInternalUpstream, genErr.Kind)
}

func TestGenerateServiceSpecMissingCredential(t *testing.T) {
	t.Run("surfaces when the fallback is off", func(t *testing.T) {
		config := testConfig(false)
		config.OpenAIAPIKey = ""
		service := NewAIService(AIRepository.NewRepository(""), config)

		_, err := service.GenerateServiceSpec(context.Background(), napRequest())

		var genErr *types.GenerationError
		assert.ErrorAs(t, err, &genErr)
		assert.Equal(t, types.KindMissingCredential, genErr.Kind)
	})

	t.Run("serves the offline spec when the fallback is on", func(t *testing.T) {
		config := testConfig(true)
		config.OpenAIAPIKey = ""
		service := NewAIService(AIRepository.NewRepository(""), config)

		spec, err := service.GenerateServiceSpec(context.Background(), napRequest())

		assert.NoError(t, err)
		assert.Equal(t, OfflineServiceSpec("nap", types.LanguageJapanese, types.ToneStandard), spec)
	})
}
