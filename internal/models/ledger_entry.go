package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
	"gorm.io/gorm"
)

type EntryKind string

const (
	EntryLoad     EntryKind = "LOAD"
	EntryRefund   EntryKind = "REFUND"
	EntryEarmark  EntryKind = "EARMARK"
	EntryDecline  EntryKind = "DECLINE"
	EntryCapture  EntryKind = "CAPTURE"
	EntryReversal EntryKind = "REVERSAL"
)

// LedgerEntry is one line of the audit journal. Amounts are stored in minor units.
type LedgerEntry struct {
	ID              string       `gorm:"primaryKey"`
	CardID          int64        `gorm:"index;not null"`
	AuthorizationID *int64       `gorm:"index"`
	MerchantID      *int64
	Kind            EntryKind    `gorm:"not null"`
	Amount          money.Amount `gorm:"not null"`
	TraceID         string
	CreatedAt       time.Time
}

func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	return
}
