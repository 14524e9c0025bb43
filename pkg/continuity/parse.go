package continuity

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	codeFenceRe     = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// ParsePatch decodes an LLM-emitted continuity patch. Parse failures
// get one repair pass (strip code fences, trailing commas); a second
// failure returns an error so the caller can preserve existing state.
// The returned warnings record every enum value the normaliser had to
// repair.
func ParsePatch(raw string, chapter int) (*Patch, []string, error) {
	payload, ok := extractJSONObject(raw)
	if !ok {
		return nil, nil, fmt.Errorf("no JSON object in patch payload")
	}

	var patch Patch
	if err := json.Unmarshal([]byte(payload), &patch); err != nil {
		if rerr := json.Unmarshal([]byte(repairJSON(payload)), &patch); rerr != nil {
			return nil, nil, fmt.Errorf("patch JSON unparseable after repair: %w", rerr)
		}
	}

	if patch.ChapterNumber == 0 {
		patch.ChapterNumber = chapter
	}
	warnings := normalizePatch(&patch)
	return &patch, warnings, nil
}

// normalizePatch canonicalises enum fields and fills required ones.
// Unknown enum values degrade to a default instead of failing the
// whole patch.
func normalizePatch(patch *Patch) []string {
	var warnings []string

	for id, thread := range patch.PlotThreads {
		if thread == nil {
			delete(patch.PlotThreads, id)
			continue
		}
		if thread.Name == "" {
			thread.Name = id
		}
		canonical, ok := canonicalThreadStatus(thread.Status)
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("plot thread %q: unknown status %q, using %q", id, thread.Status, canonical))
		}
		thread.Status = canonical
		if thread.LastMentionedChapter == 0 {
			thread.LastMentionedChapter = patch.ChapterNumber
		}
	}

	for i := range patch.WorldStateChanges {
		change := &patch.WorldStateChanges[i]
		canonical, ok := canonicalChangeType(change.ChangeType)
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("world state change %d: unknown change_type %q, using %q", i, change.ChangeType, canonical))
		}
		change.ChangeType = canonical
		if change.Chapter == 0 {
			change.Chapter = patch.ChapterNumber
		}
	}

	for i := range patch.UnresolvedTensions {
		tension := &patch.UnresolvedTensions[i]
		canonical, ok := canonicalTensionType(tension.TensionType)
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("tension %q: unknown tension_type %q, using %q", tension.ID, tension.TensionType, canonical))
		}
		tension.TensionType = canonical
		if tension.ID == "" {
			tension.ID = slugify(tension.Description)
		}
		if tension.LastEscalatedChapter == 0 {
			tension.LastEscalatedChapter = patch.ChapterNumber
		}
	}

	for i := range patch.Timeline {
		if patch.Timeline[i].Chapter == 0 {
			patch.Timeline[i].Chapter = patch.ChapterNumber
		}
	}

	for name, char := range patch.CharacterStates {
		if char == nil {
			delete(patch.CharacterStates, name)
			continue
		}
		char.UpdatedChapter = patch.ChapterNumber
	}

	return warnings
}

func canonicalThreadStatus(status string) (string, bool) {
	switch normalizeEnum(status) {
	case ThreadActive, "ongoing", "open", "in_progress":
		return ThreadActive, normalizeEnum(status) == ThreadActive
	case ThreadResolved, "closed", "done", "complete", "completed", "finished":
		return ThreadResolved, normalizeEnum(status) == ThreadResolved
	case ThreadAbandoned, "dropped", "discarded":
		return ThreadAbandoned, normalizeEnum(status) == ThreadAbandoned
	case ThreadBackground, "dormant", "minor", "paused":
		return ThreadBackground, normalizeEnum(status) == ThreadBackground
	default:
		return ThreadActive, false
	}
}

func canonicalChangeType(changeType string) (string, bool) {
	switch normalizeEnum(changeType) {
	case ChangePolitical, ChangePhysical, ChangeSocial, ChangeTechnological, ChangeEnvironmental, ChangeOther:
		return normalizeEnum(changeType), true
	case "government", "war", "alliance":
		return ChangePolitical, false
	case "geography", "destruction", "construction":
		return ChangePhysical, false
	case "cultural", "society":
		return ChangeSocial, false
	case "weather", "climate", "nature":
		return ChangeEnvironmental, false
	default:
		return ChangeOther, false
	}
}

func canonicalTensionType(tensionType string) (string, bool) {
	switch normalizeEnum(tensionType) {
	case TensionConflict, TensionMystery, TensionRomantic, TensionBetrayal, TensionDanger, TensionOther:
		return normalizeEnum(tensionType), true
	case "romance", "love":
		return TensionRomantic, false
	case "fight", "rivalry", "dispute":
		return TensionConflict, false
	case "secret", "unknown":
		return TensionMystery, false
	case "threat", "peril":
		return TensionDanger, false
	default:
		return TensionOther, false
	}
}

func normalizeEnum(value string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), " ", "_")
}

func slugify(text string) string {
	slug := normalizeEnum(text)
	if len(slug) > 48 {
		slug = slug[:48]
	}
	if slug == "" {
		slug = "tension"
	}
	return slug
}

// extractJSONObject finds the last top-level JSON object in the text,
// preferring fenced blocks.
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

// repairJSON is the single permitted repair pass.
func repairJSON(raw string) string {
	repaired := raw
	if m := codeFenceRe.FindStringSubmatch(repaired); m != nil {
		repaired = m[1]
	}
	repaired = trailingCommaRe.ReplaceAllString(repaired, "$1")
	return strings.TrimSpace(repaired)
}
