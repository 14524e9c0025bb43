package flow

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	codeFenceRe     = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// extractJSONArray finds the last top-level JSON array in the text.
// Agents are told to end their answer with the operations array, but
// models wrap it in prose or fences often enough that we scan instead
// of trusting the tail.
func extractJSONArray(text string) (string, bool) {
	// Prefer fenced blocks: the model was explicit about them.
	for _, m := range codeFenceRe.FindAllStringSubmatch(text, -1) {
		candidate := strings.TrimSpace(m[1])
		if strings.HasPrefix(candidate, "[") {
			return candidate, true
		}
	}

	end := strings.LastIndexByte(text, ']')
	if end < 0 {
		return "", false
	}
	depth := 0
	for i := end; i >= 0; i-- {
		switch text[i] {
		case ']':
			depth++
		case '[':
			depth--
			if depth == 0 {
				return text[i : end+1], true
			}
		}
	}
	return "", false
}

// extractJSONObject finds the last top-level JSON object in the text.
func extractJSONObject(text string) (string, bool) {
	for _, m := range codeFenceRe.FindAllStringSubmatch(text, -1) {
		candidate := strings.TrimSpace(m[1])
		if strings.HasPrefix(candidate, "{") {
			return candidate, true
		}
	}

	end := strings.LastIndexByte(text, '}')
	if end < 0 {
		return "", false
	}
	depth := 0
	for i := end; i >= 0; i-- {
		switch text[i] {
		case '}':
			depth++
		case '{':
			depth--
			if depth == 0 {
				return text[i : end+1], true
			}
		}
	}
	return "", false
}

// repairJSON applies the one permitted repair pass: strip code fences
// and trailing commas. Anything still broken after this is treated as
// unparseable.
func repairJSON(raw string) string {
	repaired := raw
	if m := codeFenceRe.FindStringSubmatch(repaired); m != nil {
		repaired = m[1]
	}
	repaired = trailingCommaRe.ReplaceAllString(repaired, "$1")
	return strings.TrimSpace(repaired)
}

// parseOperationsJSON parses an operations array, repairing once on
// failure. ok=false means both attempts failed.
func parseOperationsJSON(raw string, out any) bool {
	if err := json.Unmarshal([]byte(raw), out); err == nil {
		return true
	}
	if err := json.Unmarshal([]byte(repairJSON(raw)), out); err == nil {
		return true
	}
	return false
}
