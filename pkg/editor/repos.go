package editor

import (
	"context"
	"time"

	"github.com/scriptor-ai/scriptor/pkg/models"
)

// Document is the metadata slice of a stored document the core needs.
// Ingest, OCR, and chunking live behind the repository; the core only
// reads and writes bodies by id.
type Document struct {
	DocumentID    string
	Filename      string
	CanonicalPath string
	FolderID      string
	UserID        string
	Status        string
	SizeBytes     int
}

// DocumentRepository is the outbound interface to document storage.
type DocumentRepository interface {
	GetDocument(ctx context.Context, documentID string) (*Document, error)
	ReadBody(ctx context.Context, documentID string) (string, error)
	WriteBody(ctx context.Context, documentID, body string) error
	UpdateFileSize(ctx context.Context, documentID string, sizeBytes int) error
	UpdateStatus(ctx context.Context, documentID, status string) error
	DeleteChunks(ctx context.Context, documentID string) error
	FindByPath(ctx context.Context, path, userID string) (*Document, error)
}

// FolderService resolves document file paths within a user's folders.
type FolderService interface {
	GetDocumentFilePath(ctx context.Context, filename, folderID, userID, collectionType string) (string, error)
}

// VectorStore is the outbound interface to the embedding store.
// Embedding after an applied edit is mandatory: a failure here fails
// the apply.
type VectorStore interface {
	EmbedAndStoreChunks(ctx context.Context, chunks []string, documentID string) error
	DeleteDocumentChunks(ctx context.Context, documentID string) error
}

// KnowledgeGraph is the outbound interface to the graph store. Entity
// deletion is best-effort: failures are logged and swallowed.
type KnowledgeGraph interface {
	DeleteDocumentEntities(ctx context.Context, documentID string) error
}

// ProposalStore is the durable side of the proposal registry. Rows
// survive restarts so apply-once holds across process lifetimes.
type ProposalStore interface {
	SaveProposal(ctx context.Context, p *Proposal) error
	GetProposal(ctx context.Context, proposalID string) (*Proposal, error)
	// MarkApplied flips applied false→true and stores the result in one
	// statement. When the row was already applied it returns the stored
	// result and won=false without writing.
	MarkApplied(ctx context.Context, proposalID string, result models.ApplyResult) (stored models.ApplyResult, won bool, err error)
	DeleteExpired(ctx context.Context, before time.Time) (int, error)
}
