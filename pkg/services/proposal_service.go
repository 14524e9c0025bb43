package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/scriptor-ai/scriptor/ent"
	enteditproposal "github.com/scriptor-ai/scriptor/ent/editproposal"
	"github.com/scriptor-ai/scriptor/pkg/editor"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// ProposalService is the durable side of the proposal registry.
// Implements editor.ProposalStore: rows survive restarts so apply-once
// holds across process lifetimes.
type ProposalService struct {
	client *ent.Client
}

// NewProposalService creates a new ProposalService.
func NewProposalService(client *ent.Client) *ProposalService {
	return &ProposalService{client: client}
}

// SaveProposal persists a freshly created proposal.
func (s *ProposalService) SaveProposal(ctx context.Context, p *editor.Proposal) error {
	create := s.client.EditProposal.Create().
		SetID(p.ProposalID).
		SetUserID(p.UserID).
		SetDocumentID(p.DocumentID).
		SetAgentName(p.AgentName).
		SetEditType(enteditproposal.EditType(p.EditType)).
		SetSummary(p.Summary).
		SetCreatedAt(p.CreatedAt).
		SetExpiresAt(p.ExpiresAt)
	if p.Preview != "" {
		create.SetPreview(p.Preview)
	}
	if len(p.Operations) > 0 {
		ops, err := toJSONSlice(p.Operations)
		if err != nil {
			return fault.Wrap(fault.KindBadInput, err, "failed to encode operations")
		}
		create.SetOperations(ops)
	}
	if p.ContentEdit != nil {
		raw, err := json.Marshal(p.ContentEdit)
		if err != nil {
			return fault.Wrap(fault.KindBadInput, err, "failed to encode content edit")
		}
		create.SetContentEdit(string(raw))
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fault.Wrap(fault.KindBadInput, err, "proposal %s already exists", p.ProposalID)
		}
		return fault.Wrap(fault.KindTransient, err, "failed to persist proposal")
	}
	return nil
}

// GetProposal loads a proposal row back into its registry shape.
func (s *ProposalService) GetProposal(ctx context.Context, proposalID string) (*editor.Proposal, error) {
	row, err := s.client.EditProposal.Get(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.KindNotFound, "proposal %s not found", proposalID)
		}
		return nil, fault.Wrap(fault.KindTransient, err, "failed to load proposal")
	}
	return rowToProposal(row)
}

// MarkApplied flips applied false to true and stores the result in one
// statement. When the row was already applied it returns the stored
// result and won=false without writing.
func (s *ProposalService) MarkApplied(ctx context.Context, proposalID string, result models.ApplyResult) (models.ApplyResult, bool, error) {
	resultMap, err := toJSONMap(result)
	if err != nil {
		return models.ApplyResult{}, false, fault.Wrap(fault.KindBadInput, err, "failed to encode apply result")
	}

	n, err := s.client.EditProposal.Update().
		Where(
			enteditproposal.IDEQ(proposalID),
			enteditproposal.AppliedEQ(false),
		).
		SetApplied(true).
		SetAppliedAt(result.AppliedAt).
		SetApplyResult(resultMap).
		Save(ctx)
	if err != nil {
		return models.ApplyResult{}, false, fault.Wrap(fault.KindTransient, err, "failed to mark proposal applied")
	}
	if n > 0 {
		return result, true, nil
	}

	// Lost the CAS: another process applied first. Report its result.
	row, err := s.client.EditProposal.Get(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.ApplyResult{}, false, fault.New(fault.KindNotFound, "proposal %s not found", proposalID)
		}
		return models.ApplyResult{}, false, fault.Wrap(fault.KindTransient, err, "failed to load applied proposal")
	}
	var stored models.ApplyResult
	if err := fromJSONMap(row.ApplyResult, &stored); err != nil {
		return models.ApplyResult{}, false, fault.Wrap(fault.KindTransient, err, "failed to decode stored apply result")
	}
	return stored, false, nil
}

// DeleteExpired removes proposals whose expiry passed before the
// cutoff. Applied rows are kept until the sweep window passes their
// apply time so idempotent re-applies keep answering.
func (s *ProposalService) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.EditProposal.Delete().
		Where(enteditproposal.ExpiresAtLT(before)).
		Exec(ctx)
	if err != nil {
		return 0, fault.Wrap(fault.KindTransient, err, "failed to delete expired proposals")
	}
	return n, nil
}

func rowToProposal(row *ent.EditProposal) (*editor.Proposal, error) {
	p := &editor.Proposal{
		ProposalID: row.ID,
		UserID:     row.UserID,
		DocumentID: row.DocumentID,
		EditType:   models.EditType(row.EditType),
		AgentName:  row.AgentName,
		Summary:    row.Summary,
		Preview:    row.Preview,
		// Previews are only rendered for proposals that require one.
		RequiresPreview: row.Preview != "",
		CreatedAt:       row.CreatedAt,
		ExpiresAt:       row.ExpiresAt,
		Applied:         row.Applied,
		AppliedAt:       row.AppliedAt,
	}
	if len(row.Operations) > 0 {
		if err := fromJSONSlice(row.Operations, &p.Operations); err != nil {
			return nil, fault.Wrap(fault.KindTransient, err, "failed to decode operations")
		}
	}
	if row.ContentEdit != "" {
		var ce models.ContentEdit
		if err := json.Unmarshal([]byte(row.ContentEdit), &ce); err != nil {
			return nil, fault.Wrap(fault.KindTransient, err, "failed to decode content edit")
		}
		p.ContentEdit = &ce
	}
	if len(row.ApplyResult) > 0 {
		var result models.ApplyResult
		if err := fromJSONMap(row.ApplyResult, &result); err != nil {
			return nil, fault.Wrap(fault.KindTransient, err, "failed to decode apply result")
		}
		p.ApplyOutput = &result
	}
	return p, nil
}

// JSON columns are declared as generic maps in the schema; these
// helpers bridge them to the typed shapes the domain packages use.

func toJSONMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromJSONMap(m map[string]interface{}, out any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func toJSONSlice(v any) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromJSONSlice(s []map[string]interface{}, out any) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
