// Package parser normalizes raw model output into a structured record.
// Model responses arrive as plain text, JSON, or JSON buried in prose or
// markdown code fences; parsing is best-effort and never fails the caller.
package parser

import (
	"encoding/json"
	"strings"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

// ParseModelResponse extracts a ParsedModelResult from raw model output.
// Malformed input yields the fallback variant carrying the original text
// and ParsingError=true; this function never returns an error.
func ParseModelResponse(raw string) models.ParsedModelResult {
	cleaned := StripCodeFences(raw)

	if fields, ok := tryUnmarshal(cleaned); ok {
		return resultFromFields(fields)
	}

	if region, found := firstJSONRegion(cleaned); found {
		if fields, ok := tryUnmarshal(region); ok {
			return resultFromFields(fields)
		}
	}

	return models.ParsedModelResult{
		Text:         raw,
		ParsingError: true,
	}
}

// StripCodeFences removes surrounding triple-backtick fences, optionally
// tagged `json`, and normalizes curly quotes the model sometimes emits.
func StripCodeFences(response string) string {
	response = strings.TrimSpace(response)

	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	response = strings.ReplaceAll(response, "“", `"`)
	response = strings.ReplaceAll(response, "”", `"`)

	return strings.TrimSpace(response)
}

func tryUnmarshal(s string) (map[string]any, bool) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return nil, false
	}
	return fields, true
}

// firstJSONRegion scans for the first balanced brace-delimited substring.
// Best-effort: tolerates one level of nested braces, which matches the
// flat JSON the model is prompted to emit; deeper nesting or braces
// inside string values are not handled.
func firstJSONRegion(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// resultFromFields extracts typed fields with permissive lookups:
// a missing sentiment becomes "Unknown", missing numbers become 0 and
// missing sequences become empty.
func resultFromFields(fields map[string]any) models.ParsedModelResult {
	return models.ParsedModelResult{
		Sentiment:  stringField(fields, "sentiment", "Unknown"),
		Intensity:  numberField(fields, "intensity"),
		Confidence: numberField(fields, "confidence"),
		Emotions:   stringSliceField(fields, "emotions"),
		KeyPhrases: stringSliceField(fields, "key_phrases"),
	}
}

func stringField(fields map[string]any, key, fallback string) string {
	if v, ok := fields[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func numberField(fields map[string]any, key string) float64 {
	if v, ok := fields[key].(float64); ok {
		return v
	}
	return 0
}

func stringSliceField(fields map[string]any, key string) []string {
	raw, ok := fields[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
