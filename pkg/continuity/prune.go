package continuity

// Pruning caps. They bound state growth over arbitrarily long
// manuscripts while keeping everything a writing agent actually needs
// for the next few chapters.
const (
	MaxKnowsAbout          = 20
	MaxHasItems            = 15
	MaxInjuries            = 5
	ResolvedThreadGrace    = 5
	MaxKeyEvents           = 12
	MaxUnresolvedQuestions = 8
	MaxTimelineMarkers     = 30
	TimelineWindow         = 25
	TensionStaleAfter      = 10
	WorldChangeWindow      = 20
	MaxWorldChanges        = 50
)

// Prune enforces every size cap against the current chapter. It runs
// after each merge and is idempotent.
func Prune(state *State) {
	current := state.LastAnalyzedChapter

	for _, char := range state.CharacterStates {
		char.KnowsAbout = keepNewest(char.KnowsAbout, MaxKnowsAbout)
		char.HasItems = keepNewest(char.HasItems, MaxHasItems)
		char.InjuriesOrConditions = keepNewest(char.InjuriesOrConditions, MaxInjuries)
	}

	for id, thread := range state.PlotThreads {
		if thread.Status == ThreadResolved && current-thread.LastMentionedChapter > ResolvedThreadGrace {
			delete(state.PlotThreads, id)
			continue
		}
		thread.KeyEvents = keepNewest(thread.KeyEvents, MaxKeyEvents)
		thread.UnresolvedQuestions = keepNewest(thread.UnresolvedQuestions, MaxUnresolvedQuestions)
	}

	// Timeline: drop out-of-window markers first, then cap.
	kept := state.Timeline[:0]
	for _, marker := range state.Timeline {
		if marker.Chapter >= current-TimelineWindow {
			kept = append(kept, marker)
		}
	}
	if len(kept) > MaxTimelineMarkers {
		kept = kept[len(kept)-MaxTimelineMarkers:]
	}
	state.Timeline = kept

	tensions := state.UnresolvedTensions[:0]
	for _, tension := range state.UnresolvedTensions {
		if current-tension.LastEscalatedChapter <= TensionStaleAfter {
			tensions = append(tensions, tension)
		}
	}
	state.UnresolvedTensions = tensions

	state.WorldStateChanges = pruneWorldChanges(state.WorldStateChanges, current)
}

// pruneWorldChanges keeps every permanent change, windows the rest,
// and caps the total. When over the cap, non-permanent changes go
// first, oldest first; if permanent changes alone exceed the cap, the
// oldest permanent ones go too.
func pruneWorldChanges(changes []WorldStateChange, current int) []WorldStateChange {
	kept := changes[:0]
	for _, change := range changes {
		if change.IsPermanent || change.Chapter >= current-WorldChangeWindow {
			kept = append(kept, change)
		}
	}
	if len(kept) <= MaxWorldChanges {
		return kept
	}

	over := len(kept) - MaxWorldChanges
	out := make([]WorldStateChange, 0, MaxWorldChanges)
	for _, change := range kept {
		if over > 0 && !change.IsPermanent {
			over--
			continue
		}
		out = append(out, change)
	}
	if len(out) > MaxWorldChanges {
		out = out[len(out)-MaxWorldChanges:]
	}
	return out
}

// keepNewest drops the oldest entries over the cap. Entries are kept
// in arrival order, so the front is the oldest.
func keepNewest(values []string, max int) []string {
	if len(values) <= max {
		return values
	}
	return values[len(values)-max:]
}
