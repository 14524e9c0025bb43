package editor

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// ProposalTTL is how long an unapplied proposal stays actionable.
const ProposalTTL = 24 * time.Hour

// embedChunkSize is the target chunk length for re-embedding after an
// applied edit. Paragraph boundaries are preferred over hard cuts.
const embedChunkSize = 1500

// Proposal is one agent-proposed edit awaiting user approval. The
// operations are already resolved to concrete offsets at creation
// time; apply only splices and persists.
type Proposal struct {
	ProposalID      string                     `json:"proposal_id"`
	UserID          string                     `json:"user_id"`
	DocumentID      string                     `json:"document_id"`
	EditType        models.EditType            `json:"edit_type"`
	Operations      []models.ResolvedOperation `json:"operations,omitempty"`
	ContentEdit     *models.ContentEdit        `json:"content_edit,omitempty"`
	AgentName       string                     `json:"agent_name"`
	Summary         string                     `json:"summary"`
	Preview         string                     `json:"preview,omitempty"`
	RequiresPreview bool                       `json:"requires_preview"`
	CreatedAt       time.Time                  `json:"created_at"`
	ExpiresAt       time.Time                  `json:"expires_at"`

	Applied     bool                `json:"applied"`
	AppliedAt   *time.Time          `json:"applied_at,omitempty"`
	ApplyOutput *models.ApplyResult `json:"apply_result,omitempty"`
}

// Registry is the in-memory proposal map with an apply-once contract.
// Every proposal also persists through the store, so a registry miss
// (restart) falls back to the durable row and idempotence survives.
type Registry struct {
	logger *slog.Logger
	store  ProposalStore
	docs   DocumentRepository
	vector VectorStore
	graph  KnowledgeGraph

	mu        sync.Mutex
	proposals map[string]*Proposal
	// One in-flight apply per proposal; the winner does the writes,
	// losers wait and return the stored result.
	applying map[string]*sync.Mutex
}

// NewRegistry creates a proposal registry over the given outbound
// collaborators.
func NewRegistry(logger *slog.Logger, store ProposalStore, docs DocumentRepository, vector VectorStore, graph KnowledgeGraph) *Registry {
	return &Registry{
		logger:    logger.With("component", "proposal_registry"),
		store:     store,
		docs:      docs,
		vector:    vector,
		graph:     graph,
		proposals: make(map[string]*Proposal),
		applying:  make(map[string]*sync.Mutex),
	}
}

// Propose registers a new proposal and persists it. The preview diff
// is rendered here when the proposal requires one.
func (r *Registry) Propose(ctx context.Context, principal models.Principal, req models.ProposeEditRequest) (*Proposal, error) {
	if req.DocumentID == "" {
		return nil, fault.New(fault.KindBadInput, "proposal missing document_id")
	}
	switch req.EditType {
	case models.EditTypeOperations:
		if len(req.Operations) == 0 {
			return nil, fault.New(fault.KindBadInput, "operations proposal carries no operations")
		}
	case models.EditTypeContent:
		if req.ContentEdit == nil {
			return nil, fault.New(fault.KindBadInput, "content proposal carries no content_edit")
		}
	default:
		return nil, fault.New(fault.KindBadInput, "unknown edit_type %q", req.EditType)
	}

	now := time.Now()
	p := &Proposal{
		ProposalID:      uuid.New().String(),
		UserID:          principal.UserID,
		DocumentID:      req.DocumentID,
		EditType:        req.EditType,
		Operations:      req.Operations,
		ContentEdit:     req.ContentEdit,
		AgentName:       req.AgentName,
		Summary:         req.Summary,
		RequiresPreview: req.RequiresPreview,
		CreatedAt:       now,
		ExpiresAt:       now.Add(ProposalTTL),
	}

	if req.RequiresPreview {
		if r.docs == nil {
			// A registry without a document repository still files
			// proposals; the preview just cannot be rendered.
			r.logger.Warn("no document repository configured, skipping preview",
				"document_id", req.DocumentID)
		} else {
			body, err := r.docs.ReadBody(ctx, req.DocumentID)
			if err != nil {
				return nil, fault.Wrap(fault.KindTransient, err, "reading document for preview")
			}
			p.Preview = Preview(body, r.projectedBody(body, p, nil))
		}
	}

	if err := r.store.SaveProposal(ctx, p); err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "persisting proposal")
	}

	r.mu.Lock()
	r.proposals[p.ProposalID] = p
	r.mu.Unlock()

	r.logger.Info("edit proposal created",
		"proposal_id", p.ProposalID,
		"document_id", p.DocumentID,
		"agent", p.AgentName,
		"edit_type", p.EditType)
	return p, nil
}

// Get returns a proposal, falling back to the durable row when the
// in-memory entry is gone (restart or expiry sweep).
func (r *Registry) Get(ctx context.Context, principal models.Principal, proposalID string) (*Proposal, error) {
	p, err := r.load(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(p.UserID) {
		return nil, fault.New(fault.KindAccessDenied, "proposal %s belongs to another user", proposalID)
	}
	return p, nil
}

func (r *Registry) load(ctx context.Context, proposalID string) (*Proposal, error) {
	r.mu.Lock()
	p, ok := r.proposals[proposalID]
	r.mu.Unlock()
	if ok {
		return p, nil
	}
	p, err := r.store.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	if cached, ok := r.proposals[proposalID]; ok {
		p = cached
	} else {
		r.proposals[proposalID] = p
	}
	r.mu.Unlock()
	return p, nil
}

// Apply applies a proposal to its document exactly once. A second
// apply returns the first call's result with Idempotent set and
// performs no writes. selectedOpIndices, when non-nil, restricts an
// operations proposal to the chosen subset.
func (r *Registry) Apply(ctx context.Context, principal models.Principal, proposalID string, selectedOpIndices []int) (models.ApplyResult, error) {
	p, err := r.Get(ctx, principal, proposalID)
	if err != nil {
		return models.ApplyResult{}, err
	}
	if time.Now().After(p.ExpiresAt) && !p.Applied {
		return models.ApplyResult{}, fault.New(fault.KindNotFound, "proposal %s expired", proposalID)
	}

	gate := r.applyGate(proposalID)
	gate.Lock()
	defer gate.Unlock()

	// Re-check under the gate: a racing apply may have won.
	if p.Applied && p.ApplyOutput != nil {
		out := *p.ApplyOutput
		out.Idempotent = true
		return out, nil
	}

	result, err := r.applyToDocument(ctx, p, selectedOpIndices)
	if err != nil {
		return models.ApplyResult{}, err
	}

	stored, won, err := r.store.MarkApplied(ctx, proposalID, result)
	if err != nil {
		return models.ApplyResult{}, fault.Wrap(fault.KindTransient, err, "recording proposal apply")
	}
	if !won {
		// Another process applied first; report its result.
		stored.Idempotent = true
		r.recordApplied(p, stored)
		return stored, nil
	}

	r.recordApplied(p, result)
	r.logger.Info("edit proposal applied",
		"proposal_id", proposalID,
		"document_id", p.DocumentID,
		"applied_count", result.AppliedCount)
	return result, nil
}

func (r *Registry) recordApplied(p *Proposal, result models.ApplyResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.Applied = true
	at := result.AppliedAt
	p.AppliedAt = &at
	stored := result
	stored.Idempotent = false
	p.ApplyOutput = &stored
}

func (r *Registry) applyGate(proposalID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.applying[proposalID]; ok {
		return m
	}
	m := &sync.Mutex{}
	r.applying[proposalID] = m
	return m
}

func (r *Registry) applyToDocument(ctx context.Context, p *Proposal, selectedOpIndices []int) (models.ApplyResult, error) {
	if r.docs == nil || r.vector == nil {
		return models.ApplyResult{}, fault.New(fault.KindFatalConfig, "proposal apply requires a document repository and vector store")
	}
	body, err := r.docs.ReadBody(ctx, p.DocumentID)
	if err != nil {
		return models.ApplyResult{}, fault.Wrap(fault.KindTransient, err, "reading document body")
	}

	newBody := r.projectedBody(body, p, selectedOpIndices)
	appliedCount := 1
	if p.EditType == models.EditTypeOperations {
		appliedCount = len(r.selectOps(p, selectedOpIndices))
	}

	if err := r.docs.WriteBody(ctx, p.DocumentID, newBody); err != nil {
		return models.ApplyResult{}, fault.Wrap(fault.KindTransient, err, "writing document body")
	}
	if err := r.docs.UpdateFileSize(ctx, p.DocumentID, len(newBody)); err != nil {
		return models.ApplyResult{}, fault.Wrap(fault.KindTransient, err, "updating file size")
	}

	// Stale chunks out, fresh embeddings in. The embedding store is
	// mandatory; the knowledge graph is best-effort.
	if err := r.vector.DeleteDocumentChunks(ctx, p.DocumentID); err != nil {
		return models.ApplyResult{}, fault.Wrap(fault.KindTransient, err, "deleting stale chunks")
	}
	if err := r.vector.EmbedAndStoreChunks(ctx, chunkBody(newBody), p.DocumentID); err != nil {
		return models.ApplyResult{}, fault.Wrap(fault.KindTransient, err, "re-embedding document")
	}
	if r.graph != nil {
		if err := r.graph.DeleteDocumentEntities(ctx, p.DocumentID); err != nil {
			r.logger.Warn("knowledge graph entity deletion failed",
				"document_id", p.DocumentID,
				"error", err)
		}
	}

	return models.ApplyResult{
		ProposalID:   p.ProposalID,
		DocumentID:   p.DocumentID,
		AppliedCount: appliedCount,
		AppliedAt:    time.Now(),
	}, nil
}

func (r *Registry) selectOps(p *Proposal, selectedOpIndices []int) []models.ResolvedOperation {
	if selectedOpIndices == nil {
		return p.Operations
	}
	var out []models.ResolvedOperation
	for _, i := range selectedOpIndices {
		if i >= 0 && i < len(p.Operations) {
			out = append(out, p.Operations[i])
		}
	}
	return out
}

func (r *Registry) projectedBody(body string, p *Proposal, selectedOpIndices []int) string {
	if p.EditType == models.EditTypeContent && p.ContentEdit != nil {
		return ApplyContentEdit(body, *p.ContentEdit, FrontmatterEnd(body))
	}
	return ApplyOperations(body, r.selectOps(p, selectedOpIndices))
}

// Sweep drops expired proposals from memory and the store. Applied
// proposals expire too: once the TTL passes, idempotent replay is no
// longer promised.
func (r *Registry) Sweep(ctx context.Context) (int, error) {
	now := time.Now()
	r.mu.Lock()
	for id, p := range r.proposals {
		if now.After(p.ExpiresAt) {
			delete(r.proposals, id)
			delete(r.applying, id)
		}
	}
	r.mu.Unlock()

	n, err := r.store.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fault.Wrap(fault.KindTransient, err, "sweeping expired proposals")
	}
	if n > 0 {
		r.logger.Info("expired proposals swept", "count", n)
	}
	return n, nil
}

// chunkBody splits a body into embedding-sized chunks, preferring
// paragraph boundaries.
func chunkBody(body string) []string {
	paragraphs := strings.Split(body, "\n\n")
	var chunks []string
	var current strings.Builder
	for _, para := range paragraphs {
		if current.Len() > 0 && current.Len()+len(para) > embedChunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
		// A single oversized paragraph is hard-cut.
		for current.Len() > 2*embedChunkSize {
			s := current.String()
			chunks = append(chunks, s[:embedChunkSize])
			current.Reset()
			current.WriteString(s[embedChunkSize:])
		}
	}
	if strings.TrimSpace(current.String()) != "" {
		chunks = append(chunks, current.String())
	}
	return chunks
}
