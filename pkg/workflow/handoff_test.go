package workflow

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/ent"
	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/memory"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

func newHandoffFixture(t *testing.T) (*Engine, *execution, *memory.Store, models.Principal) {
	t.Helper()
	mem := memory.NewStore()
	engine := NewEngine(nil, nil, nil, mem, nil, nil, nil, nil, nil)
	t.Cleanup(engine.Close)

	conversationID := uuid.NewString()
	mem.Register(conversationID, "user-1")
	principal := models.Principal{UserID: "user-1"}

	wf := &ent.Workflow{ID: uuid.NewString(), ConversationID: conversationID, UserID: "user-1"}
	x := &execution{engine: engine, wf: wf, steps: map[string]*stepRun{}}
	for _, row := range []*ent.WorkflowStep{
		{StepID: "root", AgentType: "research"},
		{StepID: "left", AgentType: "research", DependsOn: []string{"root"}},
		{StepID: "right", AgentType: "research", DependsOn: []string{"root"}},
		{StepID: "join", AgentType: "synthesis", DependsOn: []string{"left", "right"}},
	} {
		x.steps[row.StepID] = &stepRun{row: row}
		x.order = append(x.order, row.StepID)
	}
	return engine, x, mem, principal
}

// Two branches of a diamond completing at the same time both append a
// packet for the join step; neither append may overwrite the other.
func TestCreateHandoffs_ConcurrentProducers(t *testing.T) {
	engine, x, mem, principal := newHandoffFixture(t)

	const perBranch = 25
	var wg sync.WaitGroup
	for _, src := range []string{"left", "right"} {
		wg.Add(1)
		go func(src string) {
			defer wg.Done()
			row := x.steps[src].row
			for i := 0; i < perBranch; i++ {
				engine.createHandoffs(principal, x, row, &agent.Result{
					DataOutputs: map[string]any{"branch": src},
				})
			}
		}(src)
	}
	wg.Wait()

	raw, ok, err := mem.Get(principal, x.wf.ConversationID, handoffKey("join"))
	require.NoError(t, err)
	require.True(t, ok)
	list, isList := raw.([]any)
	require.True(t, isList)
	assert.Len(t, list, 2*perBranch, "every handoff packet must survive concurrent producers")
}

func TestConsumeHandoffs_MarksPacketsConsumed(t *testing.T) {
	engine, x, mem, principal := newHandoffFixture(t)

	for _, src := range []string{"left", "right"} {
		engine.createHandoffs(principal, x, x.steps[src].row, &agent.Result{
			DataOutputs: map[string]any{"branch": src},
		})
	}
	engine.consumeHandoffs(principal, x, "join")

	raw, ok, err := mem.Get(principal, x.wf.ConversationID, handoffKey("join"))
	require.NoError(t, err)
	require.True(t, ok)
	list := raw.([]any)
	require.Len(t, list, 2)
	for _, item := range list {
		handoff, isHandoff := item.(models.DataHandoff)
		require.True(t, isHandoff)
		assert.True(t, handoff.Consumed)
		assert.Equal(t, "join", handoff.ToStepID)
		assert.Equal(t, models.HandoffMultiResearchSynthesis, handoff.Type)
	}
}
