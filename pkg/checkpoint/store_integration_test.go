package checkpoint

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/scriptor-ai/scriptor/ent"
	testdb "github.com/scriptor-ai/scriptor/test/database"
)

func seedWorkflow(t *testing.T, client *ent.Client) (conversationID, workflowID string) {
	t.Helper()
	ctx := context.Background()

	conversationID = uuid.New().String()
	_, err := client.Conversation.Create().
		SetID(conversationID).
		SetUserID("user-1").
		SetTitle("test conversation").
		Save(ctx)
	require.NoError(t, err)

	workflowID = uuid.New().String()
	_, err = client.Workflow.Create().
		SetID(workflowID).
		SetConversationID(conversationID).
		SetUserID("user-1").
		SetTemplateName("research_analysis_synthesis").
		Save(ctx)
	require.NoError(t, err)
	return conversationID, workflowID
}

func TestStorePut_MonotonicSequence(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := NewStore(client.Client)

	conversationID, workflowID := seedWorkflow(t, client.Client)

	first, err := store.Put(ctx, conversationID, workflowID, "workflow_started", &WorkflowState{WorkflowStatus: "running"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Seq)
	assert.Nil(t, first.ParentSeq)

	second, err := store.Put(ctx, conversationID, workflowID, "step_completed", &WorkflowState{
		WorkflowStatus: "running",
		Steps:          map[string]StepState{"research_phase": {Status: "completed"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Seq)
	require.NotNil(t, second.ParentSeq)
	assert.Equal(t, int64(1), *second.ParentSeq)
}

func TestStorePut_ConcurrentWritersSerialize(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := NewStore(client.Client)

	conversationID, workflowID := seedWorkflow(t, client.Client)

	const writers = 8
	var g errgroup.Group
	for i := 0; i < writers; i++ {
		g.Go(func() error {
			_, err := store.Put(ctx, conversationID, workflowID, "step_completed", &WorkflowState{WorkflowStatus: "running"})
			return err
		})
	}
	require.NoError(t, g.Wait())

	cps, err := store.List(ctx, workflowID)
	require.NoError(t, err)
	require.Len(t, cps, writers)
	for i, cp := range cps {
		assert.Equal(t, int64(i+1), cp.Seq, "sequence must be gapless")
	}
}

func TestStoreLatestAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := NewStore(client.Client)

	conversationID, workflowID := seedWorkflow(t, client.Client)

	_, err := store.Latest(ctx, workflowID)
	require.Error(t, err, "no checkpoints yet")

	cp1, err := store.Put(ctx, conversationID, workflowID, "workflow_started", &WorkflowState{WorkflowStatus: "running"})
	require.NoError(t, err)
	cp2, err := store.Put(ctx, conversationID, workflowID, "workflow_completed", &WorkflowState{WorkflowStatus: "completed"})
	require.NoError(t, err)

	latest, err := store.Latest(ctx, workflowID)
	require.NoError(t, err)
	assert.Equal(t, cp2.ID, latest.ID)

	got, err := store.Get(ctx, cp1.ID)
	require.NoError(t, err)
	state, err := DecodeState(got.State)
	require.NoError(t, err)
	assert.Equal(t, "running", state.WorkflowStatus)
}

func TestStorePut_UnknownWorkflow(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)

	_, err := store.Put(context.Background(), "conv", "missing-workflow", "workflow_started", &WorkflowState{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
