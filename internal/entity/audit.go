package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded by the pipeline. Append-only; never mutated or
// deleted by normal flows.
const (
	AuditUploadAccepted  = "upload_accepted"
	AuditQuotaReserved   = "quota_reserved"
	AuditAICallAttempt   = "ai_call_attempt"
	AuditAICallSucceeded = "ai_call_succeeded"
	AuditAICallFailed    = "ai_call_failed"
	AuditResultCommitted = "result_committed"
	AuditNeedsReview     = "needs_manual_review"
)

// AuditLogEntry records one key event of a pipeline run.
type AuditLogEntry struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Action       string
	ResourceType string
	ResourceID   *uuid.UUID
	Details      map[string]any
	CreatedAt    time.Time
}
