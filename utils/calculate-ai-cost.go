package utils

import "fmt"

// Published per-million-token prices for the models this service is run
// with. Unknown models fall back to the default model's pricing so the cost
// field stays populated.
var modelPricing = map[string]struct {
	input  float64
	output float64
}{
	"gpt-4o-mini":  {input: 0.15, output: 0.60},
	"gpt-4o":       {input: 2.50, output: 10.00},
	"gpt-4.1":      {input: 2.00, output: 8.00},
	"gpt-4.1-mini": {input: 0.40, output: 1.60},
	"gpt-4.1-nano": {input: 0.10, output: 0.40},
}

// CalculateAICost estimates the dollar cost of one completion for the log
// record attached to every upstream call.
func CalculateAICost(model string, inputTokens, outputTokens int) map[string]any {
	pricing, ok := modelPricing[model]
	if !ok {
		pricing = modelPricing["gpt-4o-mini"]
	}

	inputCost := float64(inputTokens) * pricing.input / 1000000.0
	outputCost := float64(outputTokens) * pricing.output / 1000000.0
	totalCost := inputCost + outputCost

	return map[string]any{
		"inputTokens":  inputTokens,
		"outputTokens": outputTokens,
		"inputCost":    fmt.Sprintf("$%.4f", inputCost),
		"outputCost":   fmt.Sprintf("$%.4f", outputCost),
		"totalCost":    fmt.Sprintf("$%.4f", totalCost),
	}
}
