package models

import "github.com/shopspring/decimal"

const (
	RefundReceivedTopic    = "card.refund.received"
	CaptureRequestedTopic  = "authorization.capture.requested"
	ReversalRequestedTopic = "authorization.reversal.requested"
)

type RefundReceivedEvent struct {
	CardID  int64           `json:"card_id"`
	Amount  decimal.Decimal `json:"amount"`
	TraceID string          `json:"trace_id"`
}

type CaptureRequestedEvent struct {
	AuthorizationID int64           `json:"authorization_id"`
	Amount          decimal.Decimal `json:"amount"`
	TraceID         string          `json:"trace_id"`
}

// ReversalRequestedEvent reverses the whole remaining hold when Amount is nil.
type ReversalRequestedEvent struct {
	AuthorizationID int64            `json:"authorization_id"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	TraceID         string           `json:"trace_id"`
}
