package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/scriptor-ai/scriptor/ent"
	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/editor"
	"github.com/scriptor-ai/scriptor/pkg/events"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// EditProposer files agent-emitted edit operations as user-approvable
// proposals. Implemented by editor.Registry.
type EditProposer interface {
	Propose(ctx context.Context, principal models.Principal, req models.ProposeEditRequest) (*editor.Proposal, error)
}

// maxProposalSummary caps the headline carried on a proposal and its
// announcement event.
const maxProposalSummary = 200

// fileEditProposal turns the operations a completed step emitted into a
// user-approvable proposal and announces it on the conversation
// channel. The symbolic operations are resolved here against the same
// snapshot the agent worked from. Creation failures are logged; the
// step itself already committed.
func (e *Engine) fileEditProposal(ctx context.Context, x *execution, row *ent.WorkflowStep, execCtx *agent.ExecutionContext, result *agent.Result) {
	if e.proposer == nil || len(result.Operations) == 0 {
		return
	}
	snapshot := execCtx.ActiveEditor
	if snapshot == nil || snapshot.DocumentID == "" {
		return
	}

	log := e.logger.With("workflow_id", x.wf.ID, "step_id", row.StepID)
	fmEnd := editor.FrontmatterEnd(snapshot.Content)
	batch := editor.ResolveBatch(log, snapshot.Content, result.Operations, fmEnd, snapshot.CursorOffset)
	if len(batch.Resolved) == 0 {
		log.Warn("No edit operations survived resolution, skipping proposal",
			"emitted", len(result.Operations))
		return
	}

	// The step ctx may already be cancelled; an emitted proposal still
	// gets filed.
	p, err := e.proposer.Propose(context.WithoutCancel(ctx), execCtx.Principal, models.ProposeEditRequest{
		DocumentID: snapshot.DocumentID,
		EditType:   models.EditTypeOperations,
		Operations: batch.Resolved,
		AgentName:  row.AgentType,
		Summary:    proposalSummary(row.TaskDescription, result.Response),
	})
	if err != nil {
		log.Error("Failed to file edit proposal", "document_id", snapshot.DocumentID, "error", err)
		return
	}
	log.Info("Edit proposal filed",
		"proposal_id", p.ProposalID,
		"document_id", p.DocumentID,
		"operations", len(p.Operations),
		"dropped", len(batch.Dropped))

	if e.publisher != nil {
		err := e.publisher.PublishEditProposalCreated(context.WithoutCancel(ctx), x.wf.ConversationID, events.EditProposalCreatedPayload{
			Type:            events.EventTypeEditProposalCreated,
			ConversationID:  x.wf.ConversationID,
			ProposalID:      p.ProposalID,
			DocumentID:      p.DocumentID,
			AgentName:       p.AgentName,
			Summary:         p.Summary,
			RequiresPreview: p.RequiresPreview,
			OperationCount:  len(p.Operations),
			Timestamp:       events.Timestamp(time.Now()),
		})
		if err != nil {
			log.Warn("Failed to publish edit_proposal_created", "proposal_id", p.ProposalID, "error", err)
		}
	}
}

// proposalSummary prefers the agent's own response over the task
// description, clipped to a single headline.
func proposalSummary(task, response string) string {
	s := strings.TrimSpace(response)
	if s == "" {
		s = strings.TrimSpace(task)
	}
	if i := strings.IndexByte(s, '\n'); i != -1 {
		s = strings.TrimSpace(s[:i])
	}
	if len(s) > maxProposalSummary {
		s = s[:maxProposalSummary] + "..."
	}
	return s
}
