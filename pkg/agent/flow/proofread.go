package flow

import (
	"context"

	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/agent/graph"
	"github.com/scriptor-ai/scriptor/pkg/agent/prompt"
	"github.com/scriptor-ai/scriptor/pkg/fault"
)

const critiquePrompt = `You are a meticulous proofreader. Critique the draft below:
flag factual slips, awkward phrasing, inconsistent tone, and any edit
operation whose original_text does not match the document. Be specific
and brief. If the draft is fine, answer exactly "NO ISSUES".`

const revisePrompt = `Revise your draft to address the critique. Keep the same
output format, including the operations array if one was present.
Return the full revised answer, not a delta.`

// proofreadGraph builds the proofreading sub-graph: critique the draft,
// then revise it. Runs between generate and resolve_operations so
// revised operations are the ones that get resolved.
func proofreadGraph() *graph.Graph[State] {
	return graph.New[State]("proofreading").
		AddNode("critique", critique).
		AddNode("revise", revise)
}

func critique(ctx context.Context, s *State) error {
	execCtx := s.ExecCtx
	msgs := []agent.ConversationMessage{
		{Role: prompt.RoleSystem, Content: critiquePrompt},
		{Role: prompt.RoleUser, Content: s.ResponseText},
	}
	ch, err := execCtx.LLM.Generate(ctx, &agent.GenerateInput{
		WorkflowID:  execCtx.WorkflowID,
		ExecutionID: execCtx.ExecutionID,
		Messages:    msgs,
		Config:      execCtx.Provider,
	})
	if err != nil {
		return fault.Wrap(fault.KindTransient, err, "critique dispatch failed")
	}
	completion, err := agent.Collect(ctx, ch)
	if err != nil {
		return err
	}
	s.critique = completion.Text
	return nil
}

func revise(ctx context.Context, s *State) error {
	if s.critique == "" || s.critique == "NO ISSUES" {
		return nil
	}

	execCtx := s.ExecCtx
	msgs := append([]agent.ConversationMessage{}, s.Messages...)
	msgs = append(msgs,
		agent.ConversationMessage{Role: prompt.RoleAssistant, Content: s.ResponseText},
		agent.ConversationMessage{Role: prompt.RoleUser, Content: "Critique:\n" + s.critique + "\n\n" + revisePrompt},
	)
	ch, err := execCtx.LLM.Generate(ctx, &agent.GenerateInput{
		WorkflowID:  execCtx.WorkflowID,
		ExecutionID: execCtx.ExecutionID,
		Messages:    msgs,
		Config:      execCtx.Provider,
	})
	if err != nil {
		return fault.Wrap(fault.KindTransient, err, "revise dispatch failed")
	}
	completion, err := agent.Collect(ctx, ch)
	if err != nil {
		return err
	}
	if completion.Text != "" {
		s.ResponseText = completion.Text
	}
	return nil
}
