package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/ent"
	entcontinuity "github.com/scriptor-ai/scriptor/ent/continuitystate"
	"github.com/scriptor-ai/scriptor/pkg/continuity"
	"github.com/scriptor-ai/scriptor/pkg/fault"
)

// ContinuityService persists continuity tracking state, one row per
// (user, manuscript) pair. Implements continuity.StateStore.
type ContinuityService struct {
	client *ent.Client
}

// NewContinuityService creates a new ContinuityService.
func NewContinuityService(client *ent.Client) *ContinuityService {
	return &ContinuityService{client: client}
}

// Load returns the stored state, or a not_found fault when the pair
// has never been analyzed.
func (s *ContinuityService) Load(ctx context.Context, userID, manuscriptFilename string) (*continuity.State, error) {
	row, err := s.client.ContinuityState.Query().
		Where(
			entcontinuity.UserIDEQ(userID),
			entcontinuity.ManuscriptFilenameEQ(manuscriptFilename),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.KindNotFound, "no continuity state for %s/%s", userID, manuscriptFilename)
		}
		return nil, fault.Wrap(fault.KindTransient, err, "failed to load continuity state")
	}
	return rowToState(row)
}

// Save upserts the state for its (user, manuscript) pair.
func (s *ContinuityService) Save(ctx context.Context, state *continuity.State) error {
	if state.UserID == "" || state.ManuscriptFilename == "" {
		return fault.New(fault.KindBadInput, "continuity state missing user or manuscript")
	}

	characters, err := toJSONMap(state.CharacterStates)
	if err != nil {
		return fault.Wrap(fault.KindBadInput, err, "failed to encode character states")
	}
	threads, err := toJSONMap(state.PlotThreads)
	if err != nil {
		return fault.Wrap(fault.KindBadInput, err, "failed to encode plot threads")
	}
	timeline, err := toJSONSlice(state.Timeline)
	if err != nil {
		return fault.Wrap(fault.KindBadInput, err, "failed to encode timeline")
	}
	worldChanges, err := toJSONSlice(state.WorldStateChanges)
	if err != nil {
		return fault.Wrap(fault.KindBadInput, err, "failed to encode world state changes")
	}
	tensions, err := toJSONSlice(state.UnresolvedTensions)
	if err != nil {
		return fault.Wrap(fault.KindBadInput, err, "failed to encode tensions")
	}

	n, err := s.client.ContinuityState.Update().
		Where(
			entcontinuity.UserIDEQ(state.UserID),
			entcontinuity.ManuscriptFilenameEQ(state.ManuscriptFilename),
		).
		SetLastAnalyzedChapter(state.LastAnalyzedChapter).
		SetCharacterStates(characters).
		SetPlotThreads(threads).
		SetTimeline(timeline).
		SetWorldStateChanges(worldChanges).
		SetUnresolvedTensions(tensions).
		SetCurrentChapterSummary(state.CurrentChapterSummary).
		Save(ctx)
	if err != nil {
		return fault.Wrap(fault.KindTransient, err, "failed to update continuity state")
	}
	if n > 0 {
		return nil
	}

	err = s.client.ContinuityState.Create().
		SetID(uuid.New().String()).
		SetUserID(state.UserID).
		SetManuscriptFilename(state.ManuscriptFilename).
		SetLastAnalyzedChapter(state.LastAnalyzedChapter).
		SetCharacterStates(characters).
		SetPlotThreads(threads).
		SetTimeline(timeline).
		SetWorldStateChanges(worldChanges).
		SetUnresolvedTensions(tensions).
		SetCurrentChapterSummary(state.CurrentChapterSummary).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the insert race; the racing save carried the same
			// merged chapter, retrying would only rewrite it.
			return nil
		}
		return fault.Wrap(fault.KindTransient, err, "failed to create continuity state")
	}
	return nil
}

func rowToState(row *ent.ContinuityState) (*continuity.State, error) {
	state := continuity.NewState(row.UserID, row.ManuscriptFilename)
	state.LastAnalyzedChapter = row.LastAnalyzedChapter
	state.CurrentChapterSummary = row.CurrentChapterSummary
	state.LastUpdated = row.UpdatedAt

	if len(row.CharacterStates) > 0 {
		if err := fromJSONMap(row.CharacterStates, &state.CharacterStates); err != nil {
			return nil, fault.Wrap(fault.KindTransient, err, "failed to decode character states")
		}
	}
	if len(row.PlotThreads) > 0 {
		if err := fromJSONMap(row.PlotThreads, &state.PlotThreads); err != nil {
			return nil, fault.Wrap(fault.KindTransient, err, "failed to decode plot threads")
		}
	}
	if len(row.Timeline) > 0 {
		if err := fromJSONSlice(row.Timeline, &state.Timeline); err != nil {
			return nil, fault.Wrap(fault.KindTransient, err, "failed to decode timeline")
		}
	}
	if len(row.WorldStateChanges) > 0 {
		if err := fromJSONSlice(row.WorldStateChanges, &state.WorldStateChanges); err != nil {
			return nil, fault.Wrap(fault.KindTransient, err, "failed to decode world state changes")
		}
	}
	if len(row.UnresolvedTensions) > 0 {
		if err := fromJSONSlice(row.UnresolvedTensions, &state.UnresolvedTensions); err != nil {
			return nil, fault.Wrap(fault.KindTransient, err, "failed to decode tensions")
		}
	}
	return state, nil
}
