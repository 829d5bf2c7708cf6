package types

import (
	"fmt"
)

// ServiceSpec is the generated artifact served by POST /api/generate. Every
// declared field is present in the serialized form; the only optional value,
// pricing[].notes, serializes as an explicit null when unset.
type ServiceSpec struct {
	ServiceName    string        `json:"service_name"`
	Tagline        string        `json:"tagline"`
	Summary        string        `json:"summary"`
	Hero           Hero          `json:"hero"`
	Highlights     []string      `json:"highlights"`
	Features       []Feature     `json:"features"`
	Integrations   []string      `json:"integrations"`
	GettingStarted []string      `json:"getting_started"`
	Pricing        []PricingTier `json:"pricing"`
	SampleCLI      string        `json:"sample_cli"`
	FAQs           []FAQ         `json:"faqs"`
	Disclaimers    []string      `json:"disclaimers"`
}

// Hero is the above-the-fold block of the generated page.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Tagline  string `json:"tagline"`
}

type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Benefit     string `json:"benefit"`
}

type PricingTier struct {
	Tier         string  `json:"tier"`
	PricePerUnit string  `json:"price_per_unit"`
	Unit         string  `json:"unit"`
	Notes        *string `json:"notes"`
}

type FAQ struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// List size bounds enforced on the generated artifact.
const (
	minHighlights, maxHighlights         = 3, 5
	minFeatures, maxFeatures             = 3, 7
	minIntegrations, maxIntegrations     = 5, 10
	minGettingStarted, maxGettingStarted = 4, 7
	minPricing, maxPricing               = 3, 5
	minFAQs, maxFAQs                     = 3, 5
)

// ValidateServiceSpecPayload checks a decoded generation payload field by
// field before it is bound to ServiceSpec. It returns one human-readable
// detail per violation; an empty slice means the payload is valid. Only
// pricing[].notes may be absent or null, every other declared key must be
// present with the right shape.
func ValidateServiceSpecPayload(payload map[string]any) []string {
	details := []string{}

	requireString(payload, "service_name", "service_name", &details)
	requireString(payload, "tagline", "tagline", &details)
	requireString(payload, "summary", "summary", &details)

	if hero, ok := requireObject(payload, "hero", "hero", &details); ok {
		requireString(hero, "title", "hero.title", &details)
		requireString(hero, "subtitle", "hero.subtitle", &details)
		requireString(hero, "tagline", "hero.tagline", &details)
	}

	if items, ok := requireList(payload, "highlights", minHighlights, maxHighlights, &details); ok {
		requireStringItems("highlights", items, &details)
	}

	if items, ok := requireList(payload, "features", minFeatures, maxFeatures, &details); ok {
		for i, raw := range items {
			label := fmt.Sprintf("features[%d]", i)
			obj, ok := raw.(map[string]any)
			if !ok {
				details = append(details, label+": expected an object")
				continue
			}
			requireString(obj, "name", label+".name", &details)
			requireString(obj, "description", label+".description", &details)
			requireString(obj, "benefit", label+".benefit", &details)
		}
	}

	if items, ok := requireList(payload, "integrations", minIntegrations, maxIntegrations, &details); ok {
		requireStringItems("integrations", items, &details)
	}

	if items, ok := requireList(payload, "getting_started", minGettingStarted, maxGettingStarted, &details); ok {
		requireStringItems("getting_started", items, &details)
	}

	if items, ok := requireList(payload, "pricing", minPricing, maxPricing, &details); ok {
		for i, raw := range items {
			label := fmt.Sprintf("pricing[%d]", i)
			obj, ok := raw.(map[string]any)
			if !ok {
				details = append(details, label+": expected an object")
				continue
			}
			requireString(obj, "tier", label+".tier", &details)
			requireString(obj, "price_per_unit", label+".price_per_unit", &details)
			requireString(obj, "unit", label+".unit", &details)
			if notes, present := obj["notes"]; present && notes != nil {
				if _, ok := notes.(string); !ok {
					details = append(details, label+".notes: expected a string or null")
				}
			}
		}
	}

	requireString(payload, "sample_cli", "sample_cli", &details)

	if items, ok := requireList(payload, "faqs", minFAQs, maxFAQs, &details); ok {
		for i, raw := range items {
			label := fmt.Sprintf("faqs[%d]", i)
			obj, ok := raw.(map[string]any)
			if !ok {
				details = append(details, label+": expected an object")
				continue
			}
			requireString(obj, "q", label+".q", &details)
			requireString(obj, "a", label+".a", &details)
		}
	}

	if items, ok := requireList(payload, "disclaimers", 0, 0, &details); ok {
		requireStringItems("disclaimers", items, &details)
	}

	return details
}

func requireString(m map[string]any, key, label string, details *[]string) {
	value, present := m[key]
	if !present {
		*details = append(*details, label+": required field is missing")
		return
	}
	if _, ok := value.(string); !ok {
		*details = append(*details, label+": expected a string")
	}
}

func requireObject(m map[string]any, key, label string, details *[]string) (map[string]any, bool) {
	value, present := m[key]
	if !present {
		*details = append(*details, label+": required field is missing")
		return nil, false
	}
	obj, ok := value.(map[string]any)
	if !ok {
		*details = append(*details, label+": expected an object")
		return nil, false
	}
	return obj, true
}

// requireList checks presence, shape and, when max is positive, size bounds.
func requireList(m map[string]any, key string, min, max int, details *[]string) ([]any, bool) {
	value, present := m[key]
	if !present {
		*details = append(*details, key+": required field is missing")
		return nil, false
	}
	list, ok := value.([]any)
	if !ok {
		*details = append(*details, key+": expected an array")
		return nil, false
	}
	if max > 0 && (len(list) < min || len(list) > max) {
		*details = append(*details, fmt.Sprintf("%s: expected %d to %d items, got %d", key, min, max, len(list)))
	}
	return list, true
}

func requireStringItems(label string, items []any, details *[]string) {
	for i, item := range items {
		if _, ok := item.(string); !ok {
			*details = append(*details, fmt.Sprintf("%s[%d]: expected a string", label, i))
		}
	}
}
