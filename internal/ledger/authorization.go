package ledger

import (
	"fmt"
	"sync"

	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
)

// AuthorizationRequest is a single merchant hold against a card. It keeps its
// own captured/reversed bookkeeping so that holds on one card compose by
// summing their authorized amounts.
type AuthorizationRequest struct {
	mu             sync.RWMutex
	id             int64
	cardID         int64
	merchantID     int64
	originalAmount money.Amount
	amountCaptured money.Amount
	amountReversed money.Amount
	approved       bool
}

type AuthorizationSnapshot struct {
	ID               int64
	CardID           int64
	MerchantID       int64
	OriginalAmount   money.Amount
	AmountCaptured   money.Amount
	AmountReversed   money.Amount
	AuthorizedAmount money.Amount
	Approved         bool
}

// NewAuthorizationRequest creates an unapproved request for amount.
func NewAuthorizationRequest(id int64, amount money.Amount, cardID, merchantID int64) (*AuthorizationRequest, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("authorization request %d: %w", id, ErrInvalidAmount)
	}
	return &AuthorizationRequest{
		id:             id,
		cardID:         cardID,
		merchantID:     merchantID,
		originalAmount: amount,
	}, nil
}

func (r *AuthorizationRequest) ID() int64 {
	return r.id
}

func (r *AuthorizationRequest) CardID() int64 {
	return r.cardID
}

func (r *AuthorizationRequest) MerchantID() int64 {
	return r.merchantID
}

func (r *AuthorizationRequest) OriginalAmount() money.Amount {
	return r.originalAmount
}

// Approve marks the request as approved. Approval is never revoked.
func (r *AuthorizationRequest) Approve() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.approved = true
}

func (r *AuthorizationRequest) IsApproved() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.approved
}

func (r *AuthorizationRequest) AmountCaptured() money.Amount {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.amountCaptured
}

func (r *AuthorizationRequest) AmountReversed() money.Amount {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.amountReversed
}

// AuthorizedAmount is what is still available to capture or reverse.
func (r *AuthorizationRequest) AuthorizedAmount() money.Amount {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.authorizedAmount()
}

func (r *AuthorizationRequest) authorizedAmount() money.Amount {
	return r.originalAmount - r.amountReversed - r.amountCaptured
}

// Reverse releases part of the hold. It does not touch the card; earmark
// cleanup is the handler's job.
func (r *AuthorizationRequest) Reverse(amount money.Amount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkSettlement(amount); err != nil {
		return fmt.Errorf("reverse %s on authorization request %d: %w", amount, r.id, err)
	}
	r.amountReversed += amount
	return nil
}

// MarkAsCaptured records a capture against the hold.
func (r *AuthorizationRequest) MarkAsCaptured(amount money.Amount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkSettlement(amount); err != nil {
		return fmt.Errorf("capture %s on authorization request %d: %w", amount, r.id, err)
	}
	r.amountCaptured += amount
	return nil
}

func (r *AuthorizationRequest) checkSettlement(amount money.Amount) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !r.approved {
		return ErrNotApproved
	}
	if amount > r.authorizedAmount() {
		return fmt.Errorf("%s authorized: %w", r.authorizedAmount(), ErrExceedsAuthorizedAmount)
	}
	return nil
}

func (r *AuthorizationRequest) Snapshot() AuthorizationSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return AuthorizationSnapshot{
		ID:               r.id,
		CardID:           r.cardID,
		MerchantID:       r.merchantID,
		OriginalAmount:   r.originalAmount,
		AmountCaptured:   r.amountCaptured,
		AmountReversed:   r.amountReversed,
		AuthorizedAmount: r.authorizedAmount(),
		Approved:         r.approved,
	}
}
