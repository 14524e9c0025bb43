package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/ent"
	entconversation "github.com/scriptor-ai/scriptor/ent/conversation"
	entworkflow "github.com/scriptor-ai/scriptor/ent/workflow"
	entstep "github.com/scriptor-ai/scriptor/ent/workflowstep"
	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// Canceller cancels an in-flight workflow on this pod. Implemented by
// the worker pool.
type Canceller interface {
	CancelWorkflow(workflowID string) bool
}

// Service is the inbound workflow API: start, status, cancel.
// Workflows are persisted pending and picked up by the worker pool, so
// StartWorkflow returns before any step runs.
type Service struct {
	client    *ent.Client
	cfg       *config.Config
	canceller Canceller
	logger    *slog.Logger
}

// NewService creates the workflow service. canceller may be nil (no
// in-process cancellation, rows still flip to cancelled).
func NewService(client *ent.Client, cfg *config.Config, canceller Canceller) *Service {
	return &Service{
		client:    client,
		cfg:       cfg,
		canceller: canceller,
		logger:    slog.With("component", "workflow.service"),
	}
}

// StartWorkflow validates the request, materialises the plan, and
// persists the workflow plus its step rows in one transaction.
func (s *Service) StartWorkflow(ctx context.Context, principal models.Principal, req *models.StartWorkflowRequest) (string, error) {
	if req.ConversationID == "" {
		return "", fault.New(fault.KindBadInput, "conversation_id is required")
	}
	if req.Query == "" {
		return "", fault.New(fault.KindBadInput, "query is required")
	}

	conv, err := s.client.Conversation.Query().
		Where(entconversation.IDEQ(req.ConversationID), entconversation.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fault.New(fault.KindNotFound, "conversation %s not found", req.ConversationID)
		}
		return "", fault.Wrap(fault.KindTransient, err, "failed to load conversation")
	}
	if !principal.CanAccess(conv.UserID) {
		return "", fault.New(fault.KindAccessDenied, "principal may not start workflows in this conversation")
	}

	plan, templateName, err := BuildPlan(s.cfg, req)
	if err != nil {
		return "", err
	}

	userContext := make(map[string]interface{}, len(req.UserContext)+2)
	for k, v := range req.UserContext {
		userContext[k] = v
	}
	userContext["query"] = req.Query
	if req.Persona != "" {
		userContext["persona"] = req.Persona
	}

	workflowID := uuid.NewString()
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fault.Wrap(fault.KindTransient, err, "failed to start transaction")
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Workflow.Create().
		SetID(workflowID).
		SetConversationID(req.ConversationID).
		SetUserID(conv.UserID).
		SetTemplateName(templateName).
		SetStatus(entworkflow.StatusPending).
		SetUserContext(userContext).
		SetMaxParallel(plan.MaxParallel).
		Save(ctx)
	if err != nil {
		return "", fault.Wrap(fault.KindTransient, err, "failed to create workflow")
	}

	bulk := make([]*ent.WorkflowStepCreate, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		maxRetries := step.MaxRetries
		if maxRetries <= 0 {
			maxRetries = DefaultMaxRetries
		}
		bulk = append(bulk, tx.WorkflowStep.Create().
			SetID(uuid.NewString()).
			SetWorkflowID(workflowID).
			SetStepID(step.StepID).
			SetAgentType(step.AgentType).
			SetTaskDescription(step.TaskDescription).
			SetDependsOn(step.DependsOn).
			SetInputRequirements(step.InputRequirements).
			SetOutputSpecifications(step.OutputSpecifications).
			SetMaxRetries(maxRetries))
	}
	if _, err := tx.WorkflowStep.CreateBulk(bulk...).Save(ctx); err != nil {
		return "", fault.Wrap(fault.KindTransient, err, "failed to create workflow steps")
	}

	if err := tx.Commit(); err != nil {
		return "", fault.Wrap(fault.KindTransient, err, "failed to commit workflow")
	}

	s.logger.Info("Workflow enqueued",
		"workflow_id", workflowID,
		"conversation_id", req.ConversationID,
		"template", templateName,
		"steps", len(plan.Steps))
	return workflowID, nil
}

// GetWorkflowStatus returns the workflow's progress summary. The first
// failed step carries a sanitised error message; other failures are
// counted only.
func (s *Service) GetWorkflowStatus(ctx context.Context, principal models.Principal, workflowID string) (*models.WorkflowStatusResponse, error) {
	wf, err := s.loadOwned(ctx, principal, workflowID)
	if err != nil {
		return nil, err
	}

	steps, err := s.client.WorkflowStep.Query().
		Where(entstep.WorkflowIDEQ(workflowID)).
		Order(ent.Asc(entstep.FieldStepID)).
		All(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to load steps")
	}

	resp := &models.WorkflowStatusResponse{
		WorkflowID: workflowID,
		Status:     wf.Status.String(),
		TotalSteps: len(steps),
	}
	if wf.StartedAt != nil {
		end := time.Now()
		if wf.CompletedAt != nil {
			end = *wf.CompletedAt
		}
		resp.ExecutionTime = end.Sub(*wf.StartedAt)
	}

	firstFailureReported := false
	for _, step := range steps {
		summary := models.StepStatusSummary{
			StepID:     step.StepID,
			AgentType:  step.AgentType,
			Status:     step.Status.String(),
			RetryCount: step.RetryCount,
		}
		switch step.Status {
		case entstep.StatusCompleted:
			resp.CompletedSteps++
		case entstep.StatusFailed:
			resp.FailedSteps++
			if !firstFailureReported && step.ErrorMessage != nil {
				summary.ErrorMessage = *step.ErrorMessage
				firstFailureReported = true
			}
		case entstep.StatusRunning:
			if resp.CurrentStep == "" {
				resp.CurrentStep = step.StepID
			}
		}
		resp.Steps = append(resp.Steps, summary)
	}
	return resp, nil
}

// CancelWorkflow flips the workflow to cancelled and signals the
// in-process run if this pod owns it. Cancelling a terminal workflow
// is a no-op reporting Cancelled=false.
func (s *Service) CancelWorkflow(ctx context.Context, principal models.Principal, workflowID string) (*models.CancelWorkflowResponse, error) {
	wf, err := s.loadOwned(ctx, principal, workflowID)
	if err != nil {
		return nil, err
	}

	switch wf.Status {
	case entworkflow.StatusCompleted, entworkflow.StatusFailed, entworkflow.StatusCancelled:
		return &models.CancelWorkflowResponse{Cancelled: false}, nil
	}

	// Pending workflows are cancelled directly; running ones get the
	// in-process signal and the worker writes the terminal row.
	if wf.Status == entworkflow.StatusPending {
		err := s.client.Workflow.UpdateOneID(workflowID).
			SetStatus(entworkflow.StatusCancelled).
			SetCompletedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			return nil, fault.Wrap(fault.KindTransient, err, "failed to cancel pending workflow")
		}
		s.logger.Info("Pending workflow cancelled", "workflow_id", workflowID)
		return &models.CancelWorkflowResponse{Cancelled: true}, nil
	}

	signalled := false
	if s.canceller != nil {
		signalled = s.canceller.CancelWorkflow(workflowID)
	}
	if !signalled {
		// Another pod owns the run; its watchdog or worker observes the
		// row status at the next suspension point.
		err := s.client.Workflow.UpdateOneID(workflowID).
			SetStatus(entworkflow.StatusCancelled).
			Exec(ctx)
		if err != nil {
			return nil, fault.Wrap(fault.KindTransient, err, "failed to mark workflow cancelled")
		}
	}

	s.logger.Info("Workflow cancellation requested",
		"workflow_id", workflowID,
		"signalled_locally", signalled)
	return &models.CancelWorkflowResponse{Cancelled: true}, nil
}

func (s *Service) loadOwned(ctx context.Context, principal models.Principal, workflowID string) (*ent.Workflow, error) {
	wf, err := s.client.Workflow.Get(ctx, workflowID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.KindNotFound, "workflow %s not found", workflowID)
		}
		return nil, fault.Wrap(fault.KindTransient, err, "failed to load workflow")
	}
	if !principal.CanAccess(wf.UserID) {
		return nil, fault.New(fault.KindAccessDenied, "principal may not access this workflow")
	}
	return wf, nil
}
