package agent

import (
	"context"
	"strings"

	"github.com/scriptor-ai/scriptor/pkg/fault"
)

// Completion is one fully drained LLM response.
type Completion struct {
	Text      string
	Thinking  string
	ToolCalls []ToolCall
	Usage     UsageChunk
}

// Collect drains a Generate stream into a Completion. An ErrorChunk
// aborts collection: retryable errors map to Transient so the step
// retry policy applies, the rest to AgentFailed.
func Collect(ctx context.Context, ch <-chan Chunk) (*Completion, error) {
	var (
		text     strings.Builder
		thinking strings.Builder
		out      Completion
	)

	for {
		select {
		case <-ctx.Done():
			return nil, fault.Wrap(fault.KindCancelled, ctx.Err(), "llm stream cancelled")
		case chunk, ok := <-ch:
			if !ok {
				out.Text = text.String()
				out.Thinking = thinking.String()
				return &out, nil
			}
			switch c := chunk.(type) {
			case *TextChunk:
				text.WriteString(c.Content)
			case *ThinkingChunk:
				thinking.WriteString(c.Content)
			case *ToolCallChunk:
				out.ToolCalls = append(out.ToolCalls, ToolCall{
					ID:        c.CallID,
					Name:      c.Name,
					Arguments: c.Arguments,
				})
			case *UsageChunk:
				out.Usage = *c
			case *ErrorChunk:
				kind := fault.KindAgentFailed
				if c.Retryable {
					kind = fault.KindTransient
				}
				return nil, fault.New(kind, "llm error: %s", c.Message)
			}
		}
	}
}
