package types

import (
	"encoding/json"
	"fmt"
)

// ServiceSpecSchema returns the schema descriptor sent alongside the prompt.
// The builders below declare shape and intent only; NormalizeSchema locks
// every object down to its declared keys before marshaling.
func ServiceSpecSchema() (json.RawMessage, error) {
	normalized, ok := NormalizeSchema(serviceSpecSchemaTree()).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema root is not an object")
	}

	schemaBytes, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("Failed to convert schema to JSON: %v", err)
	}

	return schemaBytes, nil
}

func serviceSpecSchemaTree() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"service_name": stringSchema("Plausible AWS-like service name, e.g. \"AWS Elastic Coffee\""),
			"tagline":      stringSchema("One-line marketing tagline"),
			"summary":      stringSchema("Two or three sentences in official documentation tone"),
			"hero":         heroSchema(),
			"highlights": arraySchema(
				stringSchema("Short selling point"),
				"3-5 bullet points",
			),
			"features": arraySchema(
				featureSchema(),
				"3-7 feature entries",
			),
			"integrations": arraySchema(
				stringSchema("Name of a plausible related service"),
				"5-10 service names the product integrates with",
			),
			"getting_started": arraySchema(
				stringSchema("One onboarding step"),
				"4-7 ordered onboarding steps",
			),
			"pricing": arraySchema(
				pricingTierSchema(),
				"3-5 pricing tiers including a free-tier style entry",
			),
			"sample_cli": stringSchema("Plausible CLI invocation using the service name, no backticks"),
			"faqs": arraySchema(
				faqSchema(),
				"3-5 question and answer pairs",
			),
			"disclaimers": arraySchema(
				stringSchema("Short parody disclaimer"),
				"Disclaimers making clear the service is fictional",
			),
		},
	}
}

func heroSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":    stringSchema("Hero title, usually the service name"),
			"subtitle": stringSchema("Supporting hero line"),
			"tagline":  stringSchema("Short hero tagline"),
		},
	}
}

func featureSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":        stringSchema("Feature name"),
			"description": stringSchema("What the feature does"),
			"benefit":     stringSchema("Why the customer cares"),
		},
	}
}

func pricingTierSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tier":           stringSchema("Tier name"),
			"price_per_unit": stringSchema("Price as displayed, currency included"),
			"unit":           stringSchema("Billing unit"),
			"notes":          nullableStringSchema("Optional remark, null when there is none"),
		},
	}
}

func faqSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"q": stringSchema("Question"),
			"a": stringSchema("Answer in the same tone as the page"),
		},
	}
}

func stringSchema(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

func nullableStringSchema(description string) map[string]any {
	return map[string]any{
		"type":        []string{"string", "null"},
		"description": description,
	}
}

func arraySchema(items map[string]any, description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       items,
		"description": description,
	}
}
