package continuity

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genPatch builds an arbitrary single-character patch for the given
// chapter. Sizes intentionally overshoot every cap.
func genPatch(name string) gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(1, 100),
		gen.IntRange(0, 40),
		gen.IntRange(0, 40),
		gen.IntRange(0, 40),
	).Map(func(values []interface{}) *Patch {
		chapter := values[0].(int)
		patch := &Patch{
			ChapterNumber:   chapter,
			CharacterStates: map[string]*CharacterState{},
		}
		char := &CharacterState{UpdatedChapter: chapter}
		for i := 0; i < values[1].(int); i++ {
			char.KnowsAbout = append(char.KnowsAbout, fmt.Sprintf("%s-fact-%d-%d", name, chapter, i))
		}
		for i := 0; i < values[2].(int); i++ {
			char.HasItems = append(char.HasItems, fmt.Sprintf("%s-item-%d-%d", name, chapter, i))
		}
		for i := 0; i < values[3].(int); i++ {
			patch.Timeline = append(patch.Timeline, TimelineMarker{Chapter: chapter, Description: fmt.Sprintf("m-%d-%d", chapter, i)})
		}
		patch.CharacterStates[name] = char
		return patch
	})
}

func TestPruneCapsAlwaysHold(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("caps hold after any merge sequence", prop.ForAll(
		func(a, b, c *Patch) bool {
			state := NewState("user-1", "novel.md")
			for _, patch := range []*Patch{a, b, c} {
				Merge(state, patch)
			}

			for _, char := range state.CharacterStates {
				if len(char.KnowsAbout) > MaxKnowsAbout ||
					len(char.HasItems) > MaxHasItems ||
					len(char.InjuriesOrConditions) > MaxInjuries {
					return false
				}
			}
			for _, thread := range state.PlotThreads {
				if len(thread.KeyEvents) > MaxKeyEvents ||
					len(thread.UnresolvedQuestions) > MaxUnresolvedQuestions {
					return false
				}
			}
			return len(state.Timeline) <= MaxTimelineMarkers &&
				len(state.WorldStateChanges) <= MaxWorldChanges
		},
		genPatch("mara"), genPatch("tomas"), genPatch("mara"),
	))

	properties.Property("prune is idempotent", prop.ForAll(
		func(a *Patch) bool {
			state := NewState("user-1", "novel.md")
			Merge(state, a)
			before := fmt.Sprintf("%+v", state)
			Prune(state)
			return fmt.Sprintf("%+v", state) == before
		},
		genPatch("mara"),
	))

	properties.TestingRun(t)
}

// Disjoint patches for the same chapter commute: merging them one at a
// time equals merging their union, character by character.
func TestDisjointPatchesCommute(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("disjoint character patches commute", prop.ForAll(
		func(a, b *Patch) bool {
			chapter := a.ChapterNumber
			if b.ChapterNumber > chapter {
				chapter = b.ChapterNumber
			}
			a.ChapterNumber, b.ChapterNumber = chapter, chapter
			a.CharacterStates["mara"].UpdatedChapter = chapter
			b.CharacterStates["tomas"].UpdatedChapter = chapter
			for i := range a.Timeline {
				a.Timeline[i].Chapter = chapter
			}
			for i := range b.Timeline {
				b.Timeline[i].Chapter = chapter
			}

			ab := NewState("user-1", "novel.md")
			Merge(ab, clonePatch(a))
			Merge(ab, clonePatch(b))

			ba := NewState("user-1", "novel.md")
			Merge(ba, clonePatch(b))
			Merge(ba, clonePatch(a))

			return fmt.Sprintf("%+v", ab.CharacterStates["mara"]) == fmt.Sprintf("%+v", ba.CharacterStates["mara"]) &&
				fmt.Sprintf("%+v", ab.CharacterStates["tomas"]) == fmt.Sprintf("%+v", ba.CharacterStates["tomas"])
		},
		genPatch("mara"), genPatch("tomas"),
	))

	properties.TestingRun(t)
}

func clonePatch(patch *Patch) *Patch {
	out := &Patch{
		ChapterNumber:   patch.ChapterNumber,
		ChapterSummary:  patch.ChapterSummary,
		CharacterStates: map[string]*CharacterState{},
	}
	for name, char := range patch.CharacterStates {
		copied := *char
		copied.KnowsAbout = append([]string(nil), char.KnowsAbout...)
		copied.HasItems = append([]string(nil), char.HasItems...)
		copied.InjuriesOrConditions = append([]string(nil), char.InjuriesOrConditions...)
		out.CharacterStates[name] = &copied
	}
	out.Timeline = append([]TimelineMarker(nil), patch.Timeline...)
	out.WorldStateChanges = append([]WorldStateChange(nil), patch.WorldStateChanges...)
	out.UnresolvedTensions = append([]Tension(nil), patch.UnresolvedTensions...)
	return out
}
