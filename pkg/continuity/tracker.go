package continuity

import (
	"context"
	"log/slog"

	"github.com/scriptor-ai/scriptor/pkg/fault"
)

// StateStore persists continuity state, one row per
// (user, manuscript) pair.
type StateStore interface {
	// Load returns the stored state, or a not_found fault when the
	// pair has never been analyzed.
	Load(ctx context.Context, userID, manuscriptFilename string) (*State, error)
	// Save upserts the state for its (user, manuscript) pair.
	Save(ctx context.Context, state *State) error
}

// Tracker is the continuity façade: parse a chapter's extracted patch,
// merge it into the stored state, prune, and persist.
type Tracker struct {
	store  StateStore
	logger *slog.Logger
}

// NewTracker creates a tracker over the given store.
func NewTracker(store StateStore) *Tracker {
	return &Tracker{
		store:  store,
		logger: slog.With("component", "continuity"),
	}
}

// ApplyPatch parses the raw patch payload and merges it into the
// stored state. An unparseable payload preserves the existing state
// and reports a warning instead of failing.
func (t *Tracker) ApplyPatch(ctx context.Context, userID, manuscriptFilename string, chapter int, rawPatch string) (*State, []string, error) {
	state, err := t.loadOrInit(ctx, userID, manuscriptFilename)
	if err != nil {
		return nil, nil, err
	}

	patch, warnings, perr := ParsePatch(rawPatch, chapter)
	if perr != nil {
		t.logger.Warn("Continuity patch unparseable, preserving state",
			"user_id", userID,
			"manuscript", manuscriptFilename,
			"chapter", chapter,
			"error", perr)
		return state, []string{"continuity patch unparseable, state preserved"}, nil
	}

	Merge(state, patch)
	if err := t.store.Save(ctx, state); err != nil {
		return nil, nil, fault.Wrap(fault.KindTransient, err, "failed to save continuity state")
	}

	t.logger.Info("Continuity patch merged",
		"user_id", userID,
		"manuscript", manuscriptFilename,
		"chapter", patch.ChapterNumber,
		"characters", len(state.CharacterStates),
		"threads", len(state.PlotThreads),
		"warnings", len(warnings))
	return state, warnings, nil
}

// ValidateChapter checks a chapter's extracted facts against the
// stored state. Read-only.
func (t *Tracker) ValidateChapter(ctx context.Context, userID, manuscriptFilename string, chapter int, rawPatch string) (*ValidationResult, error) {
	state, err := t.loadOrInit(ctx, userID, manuscriptFilename)
	if err != nil {
		return nil, err
	}

	patch, warnings, perr := ParsePatch(rawPatch, chapter)
	if perr != nil {
		return nil, fault.Wrap(fault.KindContinuityInvalid, perr, "validation payload unparseable")
	}

	result := Validate(state, patch)
	result.Warnings = append(result.Warnings, warnings...)
	return result, nil
}

// Get returns the stored state for the pair.
func (t *Tracker) Get(ctx context.Context, userID, manuscriptFilename string) (*State, error) {
	return t.store.Load(ctx, userID, manuscriptFilename)
}

func (t *Tracker) loadOrInit(ctx context.Context, userID, manuscriptFilename string) (*State, error) {
	state, err := t.store.Load(ctx, userID, manuscriptFilename)
	if err == nil {
		return state, nil
	}
	if fault.KindOf(err) == fault.KindNotFound {
		return NewState(userID, manuscriptFilename), nil
	}
	return nil, err
}
