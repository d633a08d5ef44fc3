package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuthorizationStatus string

const (
	AuthorizationStatusApproved AuthorizationStatus = "APPROVED"
	AuthorizationStatusDeclined AuthorizationStatus = "DECLINED"

	AuthorizationDecidedTopic = "authorizations.decided"
	MerchantPayoutTopic       = "merchant.payout.requested"
	PrepaidDLQTopic           = "prepaid.dlq"
)

type AuthorizationDecidedEvent struct {
	AuthorizationID int64               `json:"authorization_id"`
	CardID          int64               `json:"card_id"`
	MerchantID      int64               `json:"merchant_id"`
	Status          AuthorizationStatus `json:"status"`
	Amount          decimal.Decimal     `json:"amount"`
	Currency        string              `json:"currency"`
	Reason          string              `json:"reason,omitempty"`
	TraceID         string              `json:"trace_id"`
	DecidedAt       time.Time           `json:"decided_at"`
}

type MerchantPayoutRequestedEvent struct {
	MerchantID  int64           `json:"merchant_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	TraceID     string          `json:"trace_id"`
	RequestedAt time.Time       `json:"requested_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Error         string    `json:"error,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
