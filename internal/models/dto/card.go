package dto

import (
	"time"

	"github.com/jeffleon2/draftea-prepaid-service/internal/ledger"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models"
	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
	"github.com/shopspring/decimal"
)

type CreateCard struct {
	OwnerID int64 `json:"owner_id"`
}

// AmountRequest is the body of load-money, refund and capture calls.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r AmountRequest) ToAmount() (money.Amount, error) {
	return money.FromDecimal(r.Amount)
}

type ReverseRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// ToAmount returns nil when the whole remaining hold should be reversed.
func (r ReverseRequest) ToAmount() (*money.Amount, error) {
	if r.Amount == nil {
		return nil, nil
	}
	amount, err := money.FromDecimal(*r.Amount)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

type CreateAuthorization struct {
	CardID     int64           `json:"card_id" binding:"required"`
	MerchantID int64           `json:"merchant_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
}

type Card struct {
	ID             int64           `json:"id"`
	OwnerID        int64           `json:"owner_id"`
	Active         bool            `json:"active"`
	AmountLoaded   decimal.Decimal `json:"amount_loaded"`
	AmountRefunded decimal.Decimal `json:"amount_refunded"`
	BlockedBalance decimal.Decimal `json:"blocked_balance"`
	Balance        decimal.Decimal `json:"balance"`
	Earmarked      []int64         `json:"earmarked"`
}

func FromCard(s ledger.CardSnapshot) Card {
	earmarked := s.Earmarked
	if earmarked == nil {
		earmarked = []int64{}
	}
	return Card{
		ID:             s.ID,
		OwnerID:        s.OwnerID,
		Active:         s.Active,
		AmountLoaded:   s.AmountLoaded.Decimal(),
		AmountRefunded: s.AmountRefunded.Decimal(),
		BlockedBalance: s.AmountBlocked.Decimal(),
		Balance:        s.AvailableBalance.Decimal(),
		Earmarked:      earmarked,
	}
}

type Balance struct {
	Balance decimal.Decimal `json:"balance"`
}

type BlockedBalance struct {
	BlockedBalance decimal.Decimal `json:"blocked_balance"`
}

type Authorization struct {
	ID               int64           `json:"id"`
	CardID           int64           `json:"card_id"`
	MerchantID       int64           `json:"merchant_id"`
	Approved         bool            `json:"approved"`
	OriginalAmount   decimal.Decimal `json:"original_amount"`
	AmountCaptured   decimal.Decimal `json:"amount_captured"`
	AmountReversed   decimal.Decimal `json:"amount_reversed"`
	AuthorizedAmount decimal.Decimal `json:"authorized_amount"`
}

func FromAuthorization(s ledger.AuthorizationSnapshot) Authorization {
	return Authorization{
		ID:               s.ID,
		CardID:           s.CardID,
		MerchantID:       s.MerchantID,
		Approved:         s.Approved,
		OriginalAmount:   s.OriginalAmount.Decimal(),
		AmountCaptured:   s.AmountCaptured.Decimal(),
		AmountReversed:   s.AmountReversed.Decimal(),
		AuthorizedAmount: s.AuthorizedAmount.Decimal(),
	}
}

type Merchant struct {
	ID      int64           `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

func FromMerchant(s ledger.MerchantSnapshot) Merchant {
	return Merchant{ID: s.ID, Balance: s.Balance.Decimal()}
}

type LedgerEntry struct {
	ID              string           `json:"id"`
	CardID          int64            `json:"card_id"`
	AuthorizationID *int64           `json:"authorization_id,omitempty"`
	MerchantID      *int64           `json:"merchant_id,omitempty"`
	Kind            models.EntryKind `json:"kind"`
	Amount          decimal.Decimal  `json:"amount"`
	TraceID         string           `json:"trace_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

func FromLedgerEntries(entries []models.LedgerEntry) []LedgerEntry {
	out := make([]LedgerEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, LedgerEntry{
			ID:              e.ID,
			CardID:          e.CardID,
			AuthorizationID: e.AuthorizationID,
			MerchantID:      e.MerchantID,
			Kind:            e.Kind,
			Amount:          e.Amount.Decimal(),
			TraceID:         e.TraceID,
			CreatedAt:       e.CreatedAt,
		})
	}
	return out
}
