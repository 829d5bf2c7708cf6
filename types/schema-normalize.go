package types

import (
	"sort"
)

// Composition and shared-definition slots the normalizer walks through.
// Keys outside this set (descriptions, enums, formats) are copied untouched.
var (
	schemaBranchKeys     = []string{"anyOf", "oneOf", "allOf"}
	schemaDefinitionKeys = []string{"definitions", "$defs"}
)

// NormalizeSchema returns a copy of a JSON-Schema tree in which every object
// node requires exactly its declared properties and forbids any others,
// which is the subset strict structured output accepts. The input tree is
// never mutated, malformed nodes pass through unchanged, and applying the
// transform twice yields the same tree as applying it once.
func NormalizeSchema(node any) any {
	switch n := node.(type) {
	case map[string]any:
		return normalizeSchemaObject(n)
	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			out[i] = NormalizeSchema(item)
		}
		return out
	default:
		return node
	}
}

func normalizeSchemaObject(node map[string]any) map[string]any {
	out := make(map[string]any, len(node)+2)
	for key, value := range node {
		out[key] = value
	}

	properties, hasProperties := node["properties"]
	propsMap, propsIsMap := properties.(map[string]any)

	switch {
	case propsIsMap:
		normalized := make(map[string]any, len(propsMap))
		names := make([]string, 0, len(propsMap))
		for name, prop := range propsMap {
			normalized[name] = NormalizeSchema(prop)
			names = append(names, name)
		}
		sort.Strings(names)
		out["properties"] = normalized
		if isObjectNode(node) {
			out["required"] = names
			out["additionalProperties"] = false
		}
	case !hasProperties && isObjectNode(node):
		// An object schema that declares no properties still gets closed.
		out["required"] = []string{}
		out["additionalProperties"] = false
	}

	if items, ok := node["items"]; ok {
		out["items"] = NormalizeSchema(items)
	}
	for _, key := range schemaBranchKeys {
		if branches, ok := node[key].([]any); ok {
			normalized := make([]any, len(branches))
			for i, branch := range branches {
				normalized[i] = NormalizeSchema(branch)
			}
			out[key] = normalized
		}
	}
	for _, key := range schemaDefinitionKeys {
		if defs, ok := node[key].(map[string]any); ok {
			normalized := make(map[string]any, len(defs))
			for name, def := range defs {
				normalized[name] = NormalizeSchema(def)
			}
			out[key] = normalized
		}
	}

	return out
}

// isObjectNode reports whether the node declares an object type, or implies
// one by carrying a properties map without any type at all.
func isObjectNode(node map[string]any) bool {
	switch t := node["type"].(type) {
	case string:
		return t == "object"
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "object" {
				return true
			}
		}
		return false
	case []string:
		for _, s := range t {
			if s == "object" {
				return true
			}
		}
		return false
	case nil:
		_, hasProperties := node["properties"]
		return hasProperties
	default:
		return false
	}
}
