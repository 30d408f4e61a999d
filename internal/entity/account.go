package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account mirrors the subscription state synced from the billing provider.
// The pipeline only reads tier and allowance; everything else is owned by
// external collaborators.
type Account struct {
	ID                 uuid.UUID
	Email              string
	CompanyName        *string
	SubscriptionTier   string
	SubscriptionStatus string
	AnalysesAllowance  int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
