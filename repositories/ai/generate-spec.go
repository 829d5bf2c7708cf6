package AIRepository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/caprice1026-disc/aws-parody-page/metrics"
	"github.com/caprice1026-disc/aws-parody-page/types"
	"github.com/caprice1026-disc/aws-parody-page/utils"
)

const systemPrompt = "You are a helpful assistant."

// CreateServiceSpecCompletion performs the single upstream call for one page
// generation and returns the raw model text. No retries: a failed call
// surfaces immediately with its kind already classified.
func (r *Repository) CreateServiceSpecCompletion(
	ctx context.Context,
	prompt string,
	schema json.RawMessage,
	opts types.ModelOptions,
) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	switch opts.Mode {
	case types.ResponseModeJSONObject:
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	default:
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        "service_spec",
				Description: "Parody service page description",
				Schema:      schema,
				Strict:      true,
			},
		}
	}

	slog.Info("openai request",
		"model", opts.Model,
		"temperature", opts.Temperature,
		"max_tokens", opts.MaxTokens,
		"response_mode", string(opts.Mode),
	)

	start := time.Now()
	resp, err := r.client.CreateChatCompletion(ctx, request)
	elapsed := time.Since(start)
	if err != nil {
		return "", r.mapUpstreamError(err, elapsed)
	}

	raw, strategy := extractRawText(resp)
	finishReason := ""
	if len(resp.Choices) > 0 {
		finishReason = string(resp.Choices[0].FinishReason)
	}

	metrics.ObserveGeneration(elapsed)
	metrics.AddUpstreamTokens(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	cost := utils.CalculateAICost(opts.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	slog.Info("openai response",
		"latency_ms", elapsed.Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", finishReason,
		"extraction", strategy,
		"cost", cost["totalCost"],
	)

	return raw, nil
}

func (r *Repository) mapUpstreamError(err error, elapsed time.Duration) error {
	kind := classifyUpstreamError(err)

	slog.Error("openai call failed",
		"kind", string(kind),
		"latency_ms", elapsed.Milliseconds(),
		"error", err.Error(),
	)

	return &types.GenerationError{
		Kind:    kind,
		Message: err.Error(),
		Err:     err,
	}
}

func classifyUpstreamError(err error) types.ErrorKind {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return types.KindFromUpstreamStatus(apiErr.HTTPStatusCode)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return types.KindFromUpstreamStatus(reqErr.HTTPStatusCode)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return types.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return types.KindTimeout
	}

	return types.KindConnection
}

// Extraction strategies for pulling raw text out of the completion envelope,
// tried in order; the first one that yields text wins.
type extractionStrategy struct {
	name    string
	extract func(resp openai.ChatCompletionResponse) (string, bool)
}

var extractionStrategies = []extractionStrategy{
	{name: "first_choice", extract: firstChoiceContent},
	{name: "joined_choices", extract: joinedChoiceContents},
	{name: "envelope_dump", extract: envelopeDump},
}

func extractRawText(resp openai.ChatCompletionResponse) (string, string) {
	for _, strategy := range extractionStrategies {
		if text, ok := strategy.extract(resp); ok {
			return text, strategy.name
		}
	}
	return "", "none"
}

func firstChoiceContent(resp openai.ChatCompletionResponse) (string, bool) {
	if len(resp.Choices) == 0 {
		return "", false
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	return content, content != ""
}

func joinedChoiceContents(resp openai.ChatCompletionResponse) (string, bool) {
	var fragments []string
	for _, choice := range resp.Choices {
		if content := strings.TrimSpace(choice.Message.Content); content != "" {
			fragments = append(fragments, content)
		}
	}
	if len(fragments) == 0 {
		return "", false
	}
	return strings.Join(fragments, "\n"), true
}

// envelopeDump is the last resort: hand the whole envelope to the decode
// step so a failure downstream reports something inspectable.
func envelopeDump(resp openai.ChatCompletionResponse) (string, bool) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", false
	}
	slog.Debug("no text fragments in completion, dumping envelope")
	return string(raw), true
}
