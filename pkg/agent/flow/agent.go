package flow

import (
	"context"

	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/agent/graph"
	"github.com/scriptor-ai/scriptor/pkg/agent/prompt"
	"github.com/scriptor-ai/scriptor/pkg/config"
)

// FlowAgent runs the canonical flow graph for one agent definition.
// All builtin agent types are FlowAgents; what distinguishes them is
// configuration, not code.
type FlowAgent struct {
	def     *config.AgentDefinition
	builder *prompt.Builder
}

// New creates a flow agent for the definition.
func New(def *config.AgentDefinition) *FlowAgent {
	return &FlowAgent{def: def, builder: prompt.NewBuilder()}
}

// Capabilities returns the configured capability list.
func (a *FlowAgent) Capabilities() []string {
	return a.def.Capabilities
}

// Process runs the flow graph and returns the assembled result.
func (a *FlowAgent) Process(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.Result, error) {
	state := &State{ExecCtx: execCtx}

	g := a.buildGraph()

	opts := graph.RunOptions{
		ResumeCursors: execCtx.ResumeCursors,
		Logger:        execCtx.Log(),
	}
	if execCtx.Checkpoint != nil {
		opts.Checkpoint = func(ctx context.Context, namespace, node string) error {
			return execCtx.Checkpoint(ctx, namespace, node)
		}
	}

	if err := g.Run(ctx, state, opts); err != nil {
		return nil, err
	}
	return state.Result, nil
}

func (a *FlowAgent) buildGraph() *graph.Graph[State] {
	editing := func(s *State) bool { return s.Editing }

	g := graph.New[State]("main").
		AddNode("prepare_context", prepareContext(a.builder)).
		AddNode("extract_content", extractContent).
		AddNode("generate", generate)

	if a.def.Proofread {
		g.AddSubGraph(proofreadGraph(), editing)
	}

	return g.
		AddConditionalNode("resolve_operations", editing, resolveOperations).
		AddNode("format_response", formatResponse)
}

// RegisterBuiltins binds every configured agent type to the flow
// factory. Called once at startup, after config validation.
func RegisterBuiltins(reg *agent.Registry, agents *config.AgentRegistry) {
	for _, agentType := range agents.Names() {
		reg.Register(agentType, func(def *config.AgentDefinition) (agent.Agent, error) {
			return New(def), nil
		})
	}
}
