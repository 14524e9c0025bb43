package workflow

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/ent"
	entevent "github.com/scriptor-ai/scriptor/ent/event"
	entstep "github.com/scriptor-ai/scriptor/ent/workflowstep"
	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/checkpoint"
	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/editor"
	"github.com/scriptor-ai/scriptor/pkg/events"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/memory"
	"github.com/scriptor-ai/scriptor/pkg/models"
	testdb "github.com/scriptor-ai/scriptor/test/database"
)

// stubLLM satisfies the LLM interface for scripted agents that never
// call it.
type stubLLM struct{}

func (stubLLM) Generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	ch := make(chan agent.Chunk)
	close(ch)
	return ch, nil
}

func (stubLLM) Close() error { return nil }

func stubLLMFactory(*config.LLMProviderConfig) (agent.LLMClient, error) {
	return stubLLM{}, nil
}

// scriptedAgent runs a test-provided function instead of an LLM loop.
type scriptedAgent struct {
	fn func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error)
}

func (a *scriptedAgent) Process(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
	return a.fn(ctx, execCtx)
}

func (a *scriptedAgent) Capabilities() []string { return []string{"scripted"} }

func script(reg *agent.Registry, agentType string, fn func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error)) {
	reg.Register(agentType, func(*config.AgentDefinition) (agent.Agent, error) {
		return &scriptedAgent{fn: fn}, nil
	})
}

func succeed(response string) func(context.Context, *agent.ExecutionContext) (*agent.Result, error) {
	return func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
		return &agent.Result{
			AgentType: execCtx.AgentType,
			Success:   true,
			Response:  response,
		}, nil
	}
}

type testStep struct {
	stepID     string
	agentType  string
	dependsOn  []string
	maxRetries int
}

func newTestEngine(t *testing.T, client *ent.Client) (*Engine, *memory.Store, *agent.Registry) {
	t.Helper()
	cfg := testConfig(t)
	reg := agent.NewRegistry(cfg.Agents)
	mem := memory.NewStore()
	engine := NewEngine(client, cfg, reg, mem, checkpoint.NewStore(client), nil, nil, nil, stubLLMFactory)
	t.Cleanup(engine.Close)
	return engine, mem, reg
}

func seedRunningWorkflow(t *testing.T, client *ent.Client, maxParallel int, steps []testStep) *ent.Workflow {
	t.Helper()
	ctx := context.Background()

	conversationID := uuid.NewString()
	_, err := client.Conversation.Create().
		SetID(conversationID).
		SetUserID("user-1").
		SetTitle("engine test").
		Save(ctx)
	require.NoError(t, err)

	wf, err := client.Workflow.Create().
		SetID(uuid.NewString()).
		SetConversationID(conversationID).
		SetUserID("user-1").
		SetTemplateName(models.DynamicTemplateName).
		SetStatus("running").
		SetMaxParallel(maxParallel).
		SetUserContext(map[string]interface{}{"query": "test query"}).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	for _, step := range steps {
		create := client.WorkflowStep.Create().
			SetID(uuid.NewString()).
			SetWorkflowID(wf.ID).
			SetStepID(step.stepID).
			SetAgentType(step.agentType).
			SetTaskDescription("task for " + step.stepID).
			SetDependsOn(step.dependsOn).
			SetMaxRetries(step.maxRetries)
		_, err := create.Save(ctx)
		require.NoError(t, err)
	}
	return wf
}

func stepRow(t *testing.T, client *ent.Client, workflowID, stepID string) *ent.WorkflowStep {
	t.Helper()
	row, err := client.WorkflowStep.Query().
		Where(entstep.WorkflowIDEQ(workflowID), entstep.StepIDEQ(stepID)).
		Only(context.Background())
	require.NoError(t, err)
	return row
}

func TestEngineExecute_LinearChain(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine, mem, reg := newTestEngine(t, client.Client)

	var analysisSawResearch atomic.Bool
	script(reg, "research", succeed("research findings"))
	script(reg, "analysis", func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
		if ns, ok := execCtx.AncestorOutputs["research_phase"]; ok {
			if resp, _ := ns["response"].(string); resp == "research findings" {
				analysisSawResearch.Store(true)
			}
		}
		return succeed("analysis of findings")(ctx, execCtx)
	})
	script(reg, "synthesis", succeed("the final answer"))

	wf := seedRunningWorkflow(t, client.Client, 4, []testStep{
		{stepID: "research_phase", agentType: "research", maxRetries: 2},
		{stepID: "analysis_phase", agentType: "analysis", dependsOn: []string{"research_phase"}, maxRetries: 2},
		{stepID: "synthesis_phase", agentType: "synthesis", dependsOn: []string{"analysis_phase"}, maxRetries: 2},
	})

	result := engine.Execute(context.Background(), wf)

	require.NotNil(t, result)
	assert.Equal(t, statusCompleted, result.Status)
	assert.Equal(t, 3, result.CompletedSteps)
	assert.Zero(t, result.FailedSteps)
	assert.Equal(t, "the final answer", result.FinalOutput, "only the sink step feeds the final output")
	assert.True(t, analysisSawResearch.Load(), "dependent step must see ancestor outputs")

	for _, stepID := range []string{"research_phase", "analysis_phase", "synthesis_phase"} {
		row := stepRow(t, client.Client, wf.ID, stepID)
		assert.Equal(t, entstep.StatusCompleted, row.Status, stepID)
		require.NotNil(t, row.StartedAt, stepID)
		require.NotNil(t, row.CompletedAt, stepID)
	}

	principal := models.Principal{UserID: "user-1"}
	value, ok, err := mem.Get(principal, wf.ConversationID, "research_phase.response")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "research findings", value)

	// Handoff packet recorded for the dependent and marked consumed.
	raw, ok, err := mem.Get(principal, wf.ConversationID, handoffKey("analysis_phase"))
	require.NoError(t, err)
	require.True(t, ok)
	list, isList := raw.([]any)
	require.True(t, isList)
	require.Len(t, list, 1)

	latest, err := checkpoint.NewStore(client.Client).Latest(context.Background(), wf.ID)
	require.NoError(t, err)
	assert.Equal(t, "workflow_completed", latest.Phase)
}

func TestEngineExecute_ZeroSteps(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine, _, _ := newTestEngine(t, client.Client)

	wf := seedRunningWorkflow(t, client.Client, 4, nil)

	result := engine.Execute(context.Background(), wf)

	assert.Equal(t, statusCompleted, result.Status)
	assert.Zero(t, result.CompletedSteps)
	assert.Zero(t, result.FailedSteps)
}

func TestEngineExecute_DiamondWithFlakyBranch(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine, _, reg := newTestEngine(t, client.Client)

	var flakyAttempts, joined atomic.Int32
	var branchesDone atomic.Int32
	script(reg, "research", succeed("root"))
	script(reg, "analysis", func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
		if execCtx.StepID == "branch_flaky" && flakyAttempts.Add(1) <= 2 {
			return nil, fault.New(fault.KindTransient, "simulated flake")
		}
		branchesDone.Add(1)
		return succeed("branch done")(ctx, execCtx)
	})
	script(reg, "synthesis", func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
		joined.Store(branchesDone.Load())
		return succeed("joined")(ctx, execCtx)
	})

	wf := seedRunningWorkflow(t, client.Client, 4, []testStep{
		{stepID: "root", agentType: "research", maxRetries: 0},
		{stepID: "branch_steady", agentType: "analysis", dependsOn: []string{"root"}, maxRetries: 0},
		{stepID: "branch_flaky", agentType: "analysis", dependsOn: []string{"root"}, maxRetries: 2},
		{stepID: "join", agentType: "synthesis", dependsOn: []string{"branch_steady", "branch_flaky"}, maxRetries: 0},
	})

	result := engine.Execute(context.Background(), wf)

	assert.Equal(t, statusCompleted, result.Status)
	assert.Equal(t, 4, result.CompletedSteps)
	assert.Equal(t, int32(3), flakyAttempts.Load(), "flaky branch retries twice then succeeds")
	assert.Equal(t, int32(2), joined.Load(), "join must observe both branches complete")

	row := stepRow(t, client.Client, wf.ID, "branch_flaky")
	assert.Equal(t, 2, row.RetryCount)
}

// capturingProposer records every filed proposal request.
type capturingProposer struct {
	mu   sync.Mutex
	reqs []models.ProposeEditRequest
}

func (c *capturingProposer) Propose(_ context.Context, principal models.Principal, req models.ProposeEditRequest) (*editor.Proposal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reqs = append(c.reqs, req)
	now := time.Now()
	return &editor.Proposal{
		ProposalID: uuid.NewString(),
		UserID:     principal.UserID,
		DocumentID: req.DocumentID,
		EditType:   req.EditType,
		Operations: req.Operations,
		AgentName:  req.AgentName,
		Summary:    req.Summary,
		CreatedAt:  now,
		ExpiresAt:  now.Add(editor.ProposalTTL),
	}, nil
}

func TestEngineExecute_FilesEditProposal(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine, _, reg := newTestEngine(t, client.Client)

	proposer := &capturingProposer{}
	engine.proposer = proposer
	engine.publisher = events.NewEventPublisher(client.DB())

	const body = "# Notes\n\nThe quick brown fox jumps over the log.\n"
	script(reg, "research", func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
		return &agent.Result{
			AgentType: execCtx.AgentType,
			Success:   true,
			Response:  "Swapped the fox for a wolf",
			Operations: []models.EditorOperation{
				{OpType: models.OpReplaceRange, OriginalText: "quick brown fox", Text: "lazy grey wolf"},
				{OpType: models.OpReplaceRange, OriginalText: "passage that never appears anywhere", Text: "x"},
			},
		}, nil
	})

	wf := seedRunningWorkflow(t, client.Client, 4, []testStep{
		{stepID: "edit_phase", agentType: "research", maxRetries: 0},
	})
	wf, err := client.Workflow.UpdateOneID(wf.ID).
		SetUserContext(map[string]interface{}{
			"query": "rewrite the fox sentence",
			"active_editor": map[string]interface{}{
				"document_id": "doc-42",
				"filename":    "notes.md",
				"content":     body,
			},
		}).
		Save(context.Background())
	require.NoError(t, err)

	result := engine.Execute(context.Background(), wf)
	assert.Equal(t, statusCompleted, result.Status)

	require.Len(t, proposer.reqs, 1, "a step emitting operations must file exactly one proposal")
	req := proposer.reqs[0]
	assert.Equal(t, "doc-42", req.DocumentID)
	assert.Equal(t, models.EditTypeOperations, req.EditType)
	assert.Equal(t, "research", req.AgentName)
	assert.Equal(t, "Swapped the fox for a wolf", req.Summary)

	// The unplaceable operation drops; the quotable one resolves to a
	// concrete splice, and the step still completes.
	require.Len(t, req.Operations, 1)
	start := strings.Index(body, "quick brown fox")
	assert.Equal(t, start, req.Operations[0].Start)
	assert.Equal(t, start+len("quick brown fox"), req.Operations[0].End)
	assert.Equal(t, "lazy grey wolf", req.Operations[0].Text)

	// The announcement lands on the conversation channel.
	rows, err := client.Event.Query().
		Where(entevent.ChannelEQ(events.ConversationChannel(wf.ConversationID))).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].Payload, events.EventTypeEditProposalCreated)
	assert.Contains(t, rows[0].Payload, "doc-42")
}

// TestEngineExecute_NoEditorNoProposal checks a workflow without an
// editor snapshot never files proposals even when an agent emits
// operations.
func TestEngineExecute_NoEditorNoProposal(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine, _, reg := newTestEngine(t, client.Client)

	proposer := &capturingProposer{}
	engine.proposer = proposer

	script(reg, "research", func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
		return &agent.Result{
			AgentType: execCtx.AgentType,
			Success:   true,
			Response:  "nothing to edit",
			Operations: []models.EditorOperation{
				{OpType: models.OpReplaceRange, OriginalText: "anything", Text: "something"},
			},
		}, nil
	})

	wf := seedRunningWorkflow(t, client.Client, 4, []testStep{
		{stepID: "research_phase", agentType: "research", maxRetries: 0},
	})

	result := engine.Execute(context.Background(), wf)

	assert.Equal(t, statusCompleted, result.Status)
	assert.Empty(t, proposer.reqs)
}

func TestEngineExecute_RetryThenSuccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine, _, reg := newTestEngine(t, client.Client)

	var attempts atomic.Int32
	script(reg, "research", func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
		if attempts.Add(1) == 1 {
			return nil, fault.New(fault.KindTransient, "upstream hiccup")
		}
		return succeed("second time lucky")(ctx, execCtx)
	})

	wf := seedRunningWorkflow(t, client.Client, 4, []testStep{
		{stepID: "research_phase", agentType: "research", maxRetries: 2},
	})

	result := engine.Execute(context.Background(), wf)

	assert.Equal(t, statusCompleted, result.Status)
	assert.Equal(t, int32(2), attempts.Load())

	row := stepRow(t, client.Client, wf.ID, "research_phase")
	assert.Equal(t, entstep.StatusCompleted, row.Status)
	assert.Equal(t, 1, row.RetryCount)
}

func TestEngineExecute_FailureCascadesToDependents(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine, _, reg := newTestEngine(t, client.Client)

	script(reg, "research", func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
		return &agent.Result{Success: false, ErrorMessage: "no sources found"}, nil
	})
	script(reg, "analysis", succeed("never runs"))
	script(reg, "synthesis", succeed("never runs"))

	wf := seedRunningWorkflow(t, client.Client, 4, []testStep{
		{stepID: "research_phase", agentType: "research", maxRetries: 0},
		{stepID: "analysis_phase", agentType: "analysis", dependsOn: []string{"research_phase"}, maxRetries: 0},
		{stepID: "synthesis_phase", agentType: "synthesis", dependsOn: []string{"analysis_phase"}, maxRetries: 0},
	})

	result := engine.Execute(context.Background(), wf)

	assert.Equal(t, statusFailed, result.Status)
	assert.Zero(t, result.CompletedSteps)
	assert.Equal(t, 3, result.FailedSteps)
	assert.NotEmpty(t, result.ErrorMessage)

	root := stepRow(t, client.Client, wf.ID, "research_phase")
	assert.Equal(t, entstep.StatusFailed, root.Status)
	require.NotNil(t, root.ErrorMessage)
	assert.Equal(t, "no sources found", *root.ErrorMessage)

	for _, stepID := range []string{"analysis_phase", "synthesis_phase"} {
		row := stepRow(t, client.Client, wf.ID, stepID)
		assert.Equal(t, entstep.StatusFailed, row.Status, stepID)
		require.NotNil(t, row.ErrorMessage, stepID)
		assert.Equal(t, "dependency failed", *row.ErrorMessage, stepID)
		assert.Nil(t, row.StartedAt, "%s must never start", stepID)
	}
}

func TestEngineExecute_FatalConfigSkipsRetry(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine, _, reg := newTestEngine(t, client.Client)

	var attempts atomic.Int32
	script(reg, "research", func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
		attempts.Add(1)
		return nil, fault.New(fault.KindFatalConfig, "provider missing credentials")
	})

	wf := seedRunningWorkflow(t, client.Client, 4, []testStep{
		{stepID: "research_phase", agentType: "research", maxRetries: 2},
	})

	result := engine.Execute(context.Background(), wf)

	assert.Equal(t, statusFailed, result.Status)
	assert.Equal(t, int32(1), attempts.Load(), "config errors must not retry")

	row := stepRow(t, client.Client, wf.ID, "research_phase")
	assert.Equal(t, entstep.StatusFailed, row.Status)
	assert.Zero(t, row.RetryCount)
}

func TestEngineExecute_MaxParallelSerialises(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine, _, reg := newTestEngine(t, client.Client)

	var inFlight, peak atomic.Int32
	script(reg, "research", func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
		now := inFlight.Add(1)
		for {
			old := peak.Load()
			if now <= old || peak.CompareAndSwap(old, now) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		inFlight.Add(-1)
		return succeed("done")(ctx, execCtx)
	})

	wf := seedRunningWorkflow(t, client.Client, 1, []testStep{
		{stepID: "research_a", agentType: "research", maxRetries: 0},
		{stepID: "research_b", agentType: "research", maxRetries: 0},
		{stepID: "research_c", agentType: "research", maxRetries: 0},
	})

	result := engine.Execute(context.Background(), wf)

	assert.Equal(t, statusCompleted, result.Status)
	assert.Equal(t, int32(1), peak.Load(), "max_parallel=1 must serialise independent steps")
}

func TestEngineExecute_Cancellation(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine, _, reg := newTestEngine(t, client.Client)

	stepStarted := make(chan struct{})
	script(reg, "research", func(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
		close(stepStarted)
		<-ctx.Done()
		return nil, ctx.Err()
	})
	script(reg, "analysis", succeed("never runs"))

	wf := seedRunningWorkflow(t, client.Client, 4, []testStep{
		{stepID: "research_phase", agentType: "research", maxRetries: 2},
		{stepID: "analysis_phase", agentType: "analysis", dependsOn: []string{"research_phase"}, maxRetries: 2},
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-stepStarted
		cancel()
	}()
	defer cancel()

	result := engine.Execute(ctx, wf)

	assert.Equal(t, statusCancelled, result.Status)
	assert.Zero(t, result.CompletedSteps)
}
