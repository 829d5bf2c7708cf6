package AIService

import (
	"fmt"

	"github.com/caprice1026-disc/aws-parody-page/types"
)

// BuildPrompt assembles the generation instruction for one request.
// Deterministic for a given (keyword, lang, tone) triple.
func BuildPrompt(keyword string, lang types.Language, tone types.Tone) string {
	var langInst, spice string
	switch lang {
	case types.LanguageEnglish:
		langInst = "Output must be in English."
		if tone == types.ToneOverkill {
			spice = "with an aggressively grand tone"
		} else {
			spice = "with a slightly grand tone"
		}
	default:
		langInst = "出力は必ず日本語。"
		if tone == types.ToneOverkill {
			spice = "強めに誇張して"
		} else {
			spice = "やや誇張して"
		}
	}

	return fmt.Sprintf(`You are an expert AWS product marketer and solutions architect.
Write a **parody** AWS-style service page description in strict JSON (no markdown, no commentary, no code fences).

Constraints:
- Style: official AWS documentation tone ("AWS構文"): fully managed, scalable, secure, integrated, high availability, reliability, seamless integration, etc.
- It is a parody for the arbitrary term: "%s" (make it sound like a real AWS service).
- Create a plausible AWS-like name (e.g., "AWS Elastic <Term>" or "Amazon <Term> Service").
- DO NOT include real legal claims; keep it fictional but believable.
- %s
- Return **ONLY** valid JSON per the schema below. No extra keys. No trailing commas. No markdown code fences.

Tone: %s

Schema (JSON keys only):
{
  "service_name": string,
  "tagline": string,
  "summary": string,
  "hero": {"title": string, "subtitle": string, "tagline": string},
  "highlights": [string, ...],
  "features": [{"name": string, "description": string, "benefit": string}, ...],
  "integrations": [string, ...],
  "getting_started": [string, ...],
  "pricing": [{"tier": string, "price_per_unit": string, "unit": string, "notes": string or null}, ...],
  "sample_cli": string,
  "faqs": [{"q": string, "a": string}, ...],
  "disclaimers": [string, ...]
}

Quality bar:
- "hero": a short landing-page headline set consistent with the tagline
- "highlights": 3-5 bullets
- "features": 3-7 items, each with a concrete benefit
- "integrations": 5-10 realistic AWS services (ALB, IAM, VPC, CloudWatch, Lambda, S3, RDS, etc.), or equivalents if language is Japanese
- "getting_started": 4-7 steps
- "pricing": 3-5 tiers with free tier-ish note; "notes" may be null
- "sample_cli": plausible CLI showing create/deploy using the service name; no backticks
- "faqs": 3-5 Q&A items
- "disclaimers": 1-3 short fictional disclaimers

Again, respond with STRICT JSON ONLY.`, keyword, langInst, spice)
}
