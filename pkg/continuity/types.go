// Package continuity tracks narrative state across chapter analyses:
// character facts, plot threads, timeline markers, and world changes.
// Patches arrive as LLM-emitted JSON, get normalised into tagged
// structs, merged into the per-manuscript state, and pruned so the
// state stays bounded no matter how long the manuscript runs.
package continuity

import "time"

// Plot thread status values. Anything else is repaired to one of these
// during normalisation.
const (
	ThreadActive     = "active"
	ThreadResolved   = "resolved"
	ThreadAbandoned  = "abandoned"
	ThreadBackground = "background"
)

// World state change types.
const (
	ChangePolitical     = "political"
	ChangePhysical      = "physical"
	ChangeSocial        = "social"
	ChangeTechnological = "technological"
	ChangeEnvironmental = "environmental"
	ChangeOther         = "other"
)

// Tension types.
const (
	TensionConflict = "conflict"
	TensionMystery  = "mystery"
	TensionRomantic = "romantic"
	TensionBetrayal = "betrayal"
	TensionDanger   = "danger"
	TensionOther    = "other"
)

// Violation severities, most severe first.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// CharacterState is everything tracked about one character.
type CharacterState struct {
	Location             string            `json:"location,omitempty"`
	EmotionalState       string            `json:"emotional_state,omitempty"`
	KnowsAbout           []string          `json:"knows_about,omitempty"`
	Relationships        map[string]string `json:"relationships,omitempty"`
	InjuriesOrConditions []string          `json:"injuries_or_conditions,omitempty"`
	HasItems             []string          `json:"has_items,omitempty"`
	UpdatedChapter       int               `json:"updated_chapter"`
}

// PlotThread is one tracked storyline.
type PlotThread struct {
	Name                 string   `json:"name"`
	Status               string   `json:"status"`
	IntroducedChapter    int      `json:"introduced_chapter"`
	LastMentionedChapter int      `json:"last_mentioned_chapter"`
	KeyEvents            []string `json:"key_events,omitempty"`
	UnresolvedQuestions  []string `json:"unresolved_questions,omitempty"`
}

// TimelineMarker pins a story-time reference to a chapter.
type TimelineMarker struct {
	Chapter     int    `json:"chapter"`
	Description string `json:"description"`
}

// WorldStateChange records a change to the story world. Permanent
// changes survive pruning indefinitely.
type WorldStateChange struct {
	Chapter     int    `json:"chapter"`
	ChangeType  string `json:"change_type"`
	Description string `json:"description"`
	IsPermanent bool   `json:"is_permanent"`
}

// Tension is an open dramatic question. Tensions that stop escalating
// go stale and get pruned.
type Tension struct {
	ID                   string `json:"id"`
	Description          string `json:"description"`
	TensionType          string `json:"tension_type"`
	IntroducedChapter    int    `json:"introduced_chapter"`
	LastEscalatedChapter int    `json:"last_escalated_chapter"`
}

// State is the full continuity record for one (user, manuscript) pair.
type State struct {
	UserID                string                     `json:"user_id"`
	ManuscriptFilename    string                     `json:"manuscript_filename"`
	LastAnalyzedChapter   int                        `json:"last_analyzed_chapter"`
	CharacterStates       map[string]*CharacterState `json:"character_states,omitempty"`
	PlotThreads           map[string]*PlotThread     `json:"plot_threads,omitempty"`
	Timeline              []TimelineMarker           `json:"timeline,omitempty"`
	WorldStateChanges     []WorldStateChange         `json:"world_state_changes,omitempty"`
	UnresolvedTensions    []Tension                  `json:"unresolved_tensions,omitempty"`
	CurrentChapterSummary string                     `json:"current_chapter_summary,omitempty"`
	LastUpdated           time.Time                  `json:"last_updated"`
}

// NewState returns an empty state for the given pair.
func NewState(userID, manuscriptFilename string) *State {
	return &State{
		UserID:             userID,
		ManuscriptFilename: manuscriptFilename,
		CharacterStates:    make(map[string]*CharacterState),
		PlotThreads:        make(map[string]*PlotThread),
	}
}

// Patch is one chapter's worth of extracted continuity facts. Shapes
// mirror State; merge semantics live in Merge.
type Patch struct {
	ChapterNumber      int                        `json:"chapter_number"`
	ChapterSummary     string                     `json:"chapter_summary,omitempty"`
	CharacterStates    map[string]*CharacterState `json:"character_states,omitempty"`
	PlotThreads        map[string]*PlotThread     `json:"plot_threads,omitempty"`
	Timeline           []TimelineMarker           `json:"timeline,omitempty"`
	WorldStateChanges  []WorldStateChange         `json:"world_state_changes,omitempty"`
	UnresolvedTensions []Tension                  `json:"unresolved_tensions,omitempty"`
}

// Violation is one continuity problem found during validation.
type Violation struct {
	Type              string `json:"type"`
	Severity          string `json:"severity"`
	Description       string `json:"description"`
	Expected          string `json:"expected,omitempty"`
	Found             string `json:"found,omitempty"`
	AffectedCharacter string `json:"affected_character,omitempty"`
	Suggestion        string `json:"suggestion,omitempty"`
}

// ValidationResult is the read-only outcome of checking new content
// against the current state.
type ValidationResult struct {
	IsValid    bool        `json:"is_valid"`
	Violations []Violation `json:"violations,omitempty"`
	Warnings   []string    `json:"warnings,omitempty"`
	Confidence float64     `json:"confidence"`
}
