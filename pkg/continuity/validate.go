package continuity

import (
	"fmt"
	"sort"
)

// Validate checks a new chapter's extracted facts against the current
// state without modifying either. It reports contradictions as
// severity-ranked violations and softer observations as warnings.
func Validate(state *State, patch *Patch) *ValidationResult {
	result := &ValidationResult{IsValid: true, Confidence: 1.0}

	if patch.ChapterNumber > 0 && patch.ChapterNumber < state.LastAnalyzedChapter {
		result.Violations = append(result.Violations, Violation{
			Type:        "timeline_regression",
			Severity:    SeverityCritical,
			Description: "chapter number precedes the last analyzed chapter",
			Expected:    fmt.Sprintf("chapter >= %d", state.LastAnalyzedChapter),
			Found:       fmt.Sprintf("chapter %d", patch.ChapterNumber),
			Suggestion:  "re-analyze chapters in order or reset the tracker",
		})
	}

	validateCharacters(state, patch, result)
	validateThreads(state, patch, result)

	for _, violation := range result.Violations {
		switch violation.Severity {
		case SeverityCritical:
			result.Confidence -= 0.3
			result.IsValid = false
		case SeverityHigh:
			result.Confidence -= 0.2
			result.IsValid = false
		case SeverityMedium:
			result.Confidence -= 0.1
		case SeverityLow:
			result.Confidence -= 0.05
		}
	}
	if result.Confidence < 0.1 {
		result.Confidence = 0.1
	}
	return result
}

func validateCharacters(state *State, patch *Patch, result *ValidationResult) {
	names := make([]string, 0, len(patch.CharacterStates))
	for name := range patch.CharacterStates {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		incoming := patch.CharacterStates[name]
		current, known := state.CharacterStates[name]
		if !known {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("new character introduced: %s", name))
			continue
		}

		if incoming.Location != "" && current.Location != "" && incoming.Location != current.Location {
			// A location change inside the same chapter that last
			// updated the character reads as two places at once.
			severity := SeverityLow
			if incoming.UpdatedChapter == current.UpdatedChapter {
				severity = SeverityHigh
			}
			result.Violations = append(result.Violations, Violation{
				Type:              "location_discontinuity",
				Severity:          severity,
				Description:       fmt.Sprintf("%s moved without an on-page transition", name),
				Expected:          current.Location,
				Found:             incoming.Location,
				AffectedCharacter: name,
				Suggestion:        "add a travel beat or timeline marker covering the move",
			})
		}

		for _, item := range incoming.HasItems {
			if wasLost(current, item) {
				result.Violations = append(result.Violations, Violation{
					Type:              "item_conflict",
					Severity:          SeverityMedium,
					Description:       fmt.Sprintf("%s uses an item no longer in their possession", name),
					Expected:          fmt.Sprintf("%s without %q", name, item),
					Found:             fmt.Sprintf("%s with %q", name, item),
					AffectedCharacter: name,
					Suggestion:        "show the character reacquiring the item first",
				})
			}
		}
	}
}

// wasLost reports whether the state records the item as explicitly
// gone. Loss is tracked as a knows_about fact of the form
// "lost: <item>" by the extraction prompt.
func wasLost(current *CharacterState, item string) bool {
	marker := "lost: " + item
	for _, fact := range current.KnowsAbout {
		if fact == marker {
			return true
		}
	}
	return false
}

func validateThreads(state *State, patch *Patch, result *ValidationResult) {
	ids := make([]string, 0, len(patch.PlotThreads))
	for id := range patch.PlotThreads {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		incoming := patch.PlotThreads[id]
		current, known := state.PlotThreads[id]
		if !known {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("new plot thread introduced: %s", id))
			continue
		}

		if current.Status == ThreadResolved && incoming.Status == ThreadActive {
			result.Violations = append(result.Violations, Violation{
				Type:        "resolved_thread_activity",
				Severity:    SeverityHigh,
				Description: fmt.Sprintf("thread %q was resolved but shows new activity", current.Name),
				Expected:    ThreadResolved,
				Found:       ThreadActive,
				Suggestion:  "reopen the thread deliberately or attribute the events to a new thread",
			})
		}
		if current.Status == ThreadAbandoned && incoming.Status == ThreadActive {
			result.Violations = append(result.Violations, Violation{
				Type:        "abandoned_thread_activity",
				Severity:    SeverityMedium,
				Description: fmt.Sprintf("thread %q was abandoned but shows new activity", current.Name),
				Expected:    ThreadAbandoned,
				Found:       ThreadActive,
				Suggestion:  "confirm the thread is meant to return",
			})
		}
	}
}
