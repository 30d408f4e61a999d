package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
	"github.com/bidkiller/dce-analyzer/internal/utils"

	"github.com/bidkiller/dce-analyzer/gen/ent"
	entdocument "github.com/bidkiller/dce-analyzer/gen/ent/document"
)

// CreateDocumentRequest wraps parameters for registering an upload.
type CreateDocumentRequest struct {
	AccountID uuid.UUID
	Filename  string
	Format    string
	SizeBytes int64
}

type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, documentID, accountID uuid.UUID) (*entity.Document, error)
	Delete(ctx context.Context, documentID, accountID uuid.UUID) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	row, err := r.client.Document.Create().
		SetAccountID(req.AccountID).
		SetFilename(req.Filename).
		SetFormat(req.Format).
		SetSizeBytes(req.SizeBytes).
		Save(ctx)
	if err != nil {
		r.logger.Error("document create failed", "account_id", req.AccountID, "error", err)
		return nil, err
	}
	r.logger.Info("document created",
		"document_id", row.ID, "account_id", req.AccountID,
		"filename", req.Filename, "size_bytes", req.SizeBytes)
	return utils.ToDocument(row), nil
}

func (r *documentRepository) GetByID(ctx context.Context, documentID, accountID uuid.UUID) (*entity.Document, error) {
	row, err := r.client.Document.Query().
		Where(entdocument.ID(documentID), entdocument.AccountID(accountID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: document %s", common.ErrNotFound, documentID)
		}
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepository) Delete(ctx context.Context, documentID, accountID uuid.UUID) error {
	n, err := r.client.Document.Delete().
		Where(entdocument.ID(documentID), entdocument.AccountID(accountID)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: document %s", common.ErrNotFound, documentID)
	}
	return nil
}
