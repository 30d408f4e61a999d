package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/gen/ent"
	entaudit "github.com/bidkiller/dce-analyzer/gen/ent/auditlog"
	"github.com/bidkiller/dce-analyzer/internal/entity"
)

// AuditRepository is the append-only event trail of pipeline runs.
// Recording is best-effort: a write failure is logged, never propagated,
// so auditing can never fail the pipeline itself.
type AuditRepository interface {
	Record(ctx context.Context, accountID uuid.UUID, action, resourceType string, resourceID *uuid.UUID, details map[string]any)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.AuditLogEntry, error)
}

type auditRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAuditRepository(client *ent.Client, logger *slog.Logger) AuditRepository {
	return &auditRepository{client: client, logger: logger}
}

func (r *auditRepository) Record(ctx context.Context, accountID uuid.UUID, action, resourceType string, resourceID *uuid.UUID, details map[string]any) {
	create := r.client.AuditLog.Create().
		SetAccountID(accountID).
		SetAction(action).
		SetResourceType(resourceType)
	if resourceID != nil {
		create = create.SetResourceID(*resourceID)
	}
	if len(details) > 0 {
		if raw, err := json.Marshal(details); err == nil {
			create = create.SetDetails(raw)
		}
	}
	if _, err := create.Save(ctx); err != nil {
		r.logger.Error("audit write failed", "account_id", accountID, "action", action, "error", err)
	}
}

func (r *auditRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.AuditLogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := r.client.AuditLog.Query().
		Where(entaudit.AccountID(accountID)).
		Order(ent.Desc(entaudit.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.AuditLogEntry, 0, len(rows))
	for _, row := range rows {
		e := &entity.AuditLogEntry{
			ID:           row.ID,
			AccountID:    row.AccountID,
			Action:       row.Action,
			ResourceType: row.ResourceType,
			ResourceID:   row.ResourceID,
			CreatedAt:    row.CreatedAt,
		}
		if len(row.Details) > 0 {
			_ = json.Unmarshal(row.Details, &e.Details)
		}
		out = append(out, e)
	}
	return out, nil
}
