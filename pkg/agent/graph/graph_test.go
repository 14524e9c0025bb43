package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState struct {
	trace   []string
	editing bool
}

func appendNode(name string) NodeFunc[testState] {
	return func(_ context.Context, s *testState) error {
		s.trace = append(s.trace, name)
		return nil
	}
}

func TestRun_Sequential(t *testing.T) {
	g := New[testState]("main").
		AddNode("prepare", appendNode("prepare")).
		AddNode("generate", appendNode("generate")).
		AddNode("format", appendNode("format"))

	state := &testState{}
	require.NoError(t, g.Run(context.Background(), state, RunOptions{}))
	assert.Equal(t, []string{"prepare", "generate", "format"}, state.trace)
}

func TestRun_ConditionalNode(t *testing.T) {
	g := New[testState]("main").
		AddNode("generate", appendNode("generate")).
		AddConditionalNode("resolve_operations",
			func(s *testState) bool { return s.editing },
			appendNode("resolve_operations")).
		AddNode("format", appendNode("format"))

	state := &testState{}
	require.NoError(t, g.Run(context.Background(), state, RunOptions{}))
	assert.Equal(t, []string{"generate", "format"}, state.trace)

	state = &testState{editing: true}
	require.NoError(t, g.Run(context.Background(), state, RunOptions{}))
	assert.Equal(t, []string{"generate", "resolve_operations", "format"}, state.trace)
}

func TestRun_CheckpointsAfterEveryNode(t *testing.T) {
	var checkpoints []string
	opts := RunOptions{
		Checkpoint: func(_ context.Context, namespace, node string) error {
			checkpoints = append(checkpoints, namespace+":"+node)
			return nil
		},
	}

	g := New[testState]("main").
		AddNode("a", appendNode("a")).
		AddConditionalNode("b", func(*testState) bool { return false }, appendNode("b")).
		AddNode("c", appendNode("c"))

	require.NoError(t, g.Run(context.Background(), &testState{}, opts))
	// Skipped nodes still advance the cursor.
	assert.Equal(t, []string{":a", ":b", ":c"}, checkpoints)
}

func TestRun_ResumeSkipsCompletedNodes(t *testing.T) {
	g := New[testState]("main").
		AddNode("a", appendNode("a")).
		AddNode("b", appendNode("b")).
		AddNode("c", appendNode("c"))

	state := &testState{}
	opts := RunOptions{ResumeCursors: map[string]string{"": "b"}}
	require.NoError(t, g.Run(context.Background(), state, opts))
	assert.Equal(t, []string{"c"}, state.trace)
}

func TestRun_SubGraphNamespace(t *testing.T) {
	sub := New[testState]("proofreading").
		AddNode("critique", appendNode("critique")).
		AddNode("revise", appendNode("revise"))

	g := New[testState]("main").
		AddNode("generate", appendNode("generate")).
		AddSubGraph(sub, func(s *testState) bool { return s.editing }).
		AddNode("format", appendNode("format"))

	var checkpoints []string
	opts := RunOptions{
		Checkpoint: func(_ context.Context, namespace, node string) error {
			checkpoints = append(checkpoints, namespace+":"+node)
			return nil
		},
	}

	state := &testState{editing: true}
	require.NoError(t, g.Run(context.Background(), state, opts))
	assert.Equal(t, []string{"generate", "critique", "revise", "format"}, state.trace)
	assert.Equal(t, []string{
		":generate",
		"proofreading:critique",
		"proofreading:revise",
		":proofreading",
		":format",
	}, checkpoints)
}

func TestRun_SubGraphResume(t *testing.T) {
	sub := New[testState]("proofreading").
		AddNode("critique", appendNode("critique")).
		AddNode("revise", appendNode("revise"))

	g := New[testState]("main").
		AddNode("generate", appendNode("generate")).
		AddSubGraph(sub, nil).
		AddNode("format", appendNode("format"))

	state := &testState{}
	opts := RunOptions{ResumeCursors: map[string]string{
		"":             "generate",
		"proofreading": "critique",
	}}
	require.NoError(t, g.Run(context.Background(), state, opts))
	assert.Equal(t, []string{"revise", "format"}, state.trace)
}

func TestRun_NodeErrorStops(t *testing.T) {
	boom := errors.New("boom")
	g := New[testState]("main").
		AddNode("a", appendNode("a")).
		AddNode("b", func(context.Context, *testState) error { return boom }).
		AddNode("c", appendNode("c"))

	state := &testState{}
	err := g.Run(context.Background(), state, RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a"}, state.trace)
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := New[testState]("main").
		AddNode("a", func(_ context.Context, s *testState) error {
			s.trace = append(s.trace, "a")
			cancel()
			return nil
		}).
		AddNode("b", appendNode("b"))

	state := &testState{}
	err := g.Run(ctx, state, RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"a"}, state.trace)
}
