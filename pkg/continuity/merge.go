package continuity

import "time"

// Merge folds one chapter's patch into the state and prunes. Scalar
// character fields are overwritten by the newest non-empty value; set
// fields are unioned in arrival order so pruning keeps the most recent
// entries. Overlapping patches are last-writer-wins per field.
func Merge(state *State, patch *Patch) {
	if patch.ChapterNumber > state.LastAnalyzedChapter {
		state.LastAnalyzedChapter = patch.ChapterNumber
	}
	if patch.ChapterSummary != "" {
		state.CurrentChapterSummary = patch.ChapterSummary
	}

	if state.CharacterStates == nil {
		state.CharacterStates = make(map[string]*CharacterState)
	}
	for name, incoming := range patch.CharacterStates {
		current, ok := state.CharacterStates[name]
		if !ok {
			state.CharacterStates[name] = incoming
			continue
		}
		mergeCharacter(current, incoming)
	}

	if state.PlotThreads == nil {
		state.PlotThreads = make(map[string]*PlotThread)
	}
	for id, incoming := range patch.PlotThreads {
		current, ok := state.PlotThreads[id]
		if !ok {
			state.PlotThreads[id] = incoming
			if incoming.Status == ThreadResolved {
				incoming.UnresolvedQuestions = nil
			}
			continue
		}
		mergeThread(current, incoming)
	}

	state.Timeline = append(state.Timeline, patch.Timeline...)
	state.WorldStateChanges = append(state.WorldStateChanges, patch.WorldStateChanges...)
	mergeTensions(state, patch.UnresolvedTensions)

	state.LastUpdated = time.Now().UTC()
	Prune(state)
}

func mergeCharacter(current, incoming *CharacterState) {
	if incoming.Location != "" {
		current.Location = incoming.Location
	}
	if incoming.EmotionalState != "" {
		current.EmotionalState = incoming.EmotionalState
	}
	current.KnowsAbout = unionOrdered(current.KnowsAbout, incoming.KnowsAbout)
	current.HasItems = unionOrdered(current.HasItems, incoming.HasItems)
	current.InjuriesOrConditions = unionOrdered(current.InjuriesOrConditions, incoming.InjuriesOrConditions)
	if len(incoming.Relationships) > 0 {
		if current.Relationships == nil {
			current.Relationships = make(map[string]string, len(incoming.Relationships))
		}
		for other, rel := range incoming.Relationships {
			current.Relationships[other] = rel
		}
	}
	if incoming.UpdatedChapter > current.UpdatedChapter {
		current.UpdatedChapter = incoming.UpdatedChapter
	}
}

func mergeThread(current, incoming *PlotThread) {
	if incoming.Name != "" {
		current.Name = incoming.Name
	}
	if incoming.Status != "" {
		current.Status = incoming.Status
	}
	if incoming.LastMentionedChapter > current.LastMentionedChapter {
		current.LastMentionedChapter = incoming.LastMentionedChapter
	}
	if current.IntroducedChapter == 0 {
		current.IntroducedChapter = incoming.IntroducedChapter
	}
	current.KeyEvents = unionOrdered(current.KeyEvents, incoming.KeyEvents)
	current.UnresolvedQuestions = unionOrdered(current.UnresolvedQuestions, incoming.UnresolvedQuestions)

	// A resolved thread has no open questions left to track.
	if current.Status == ThreadResolved {
		current.UnresolvedQuestions = nil
	}
}

// mergeTensions updates tensions by id; a re-mentioned tension counts
// as escalated.
func mergeTensions(state *State, incoming []Tension) {
	for _, tension := range incoming {
		found := false
		for i := range state.UnresolvedTensions {
			if state.UnresolvedTensions[i].ID != tension.ID {
				continue
			}
			found = true
			if tension.Description != "" {
				state.UnresolvedTensions[i].Description = tension.Description
			}
			if tension.TensionType != "" {
				state.UnresolvedTensions[i].TensionType = tension.TensionType
			}
			if tension.LastEscalatedChapter > state.UnresolvedTensions[i].LastEscalatedChapter {
				state.UnresolvedTensions[i].LastEscalatedChapter = tension.LastEscalatedChapter
			}
			break
		}
		if !found {
			state.UnresolvedTensions = append(state.UnresolvedTensions, tension)
		}
	}
}

// unionOrdered appends the new values that are not already present,
// preserving arrival order. Oldest entries stay at the front, which is
// what pruning relies on.
func unionOrdered(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, v := range existing {
		seen[v] = struct{}{}
	}
	for _, v := range incoming {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		existing = append(existing, v)
	}
	return existing
}
