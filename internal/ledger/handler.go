package ledger

import (
	"context"
	"fmt"

	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
	"github.com/sirupsen/logrus"
)

// CleanupThreshold is the authorized amount below which a hold counts as
// closed and leaves the card's earmarks.
const CleanupThreshold money.Amount = 1

// Payout is the channel captured funds are sent through. The handler does not
// wait for delivery beyond the call returning, and a failed notification does
// not undo a capture.
type Payout interface {
	Send(ctx context.Context, merchantID int64, amount money.Amount) error
}

// AuthorizationRequestHandler drives one authorization request against one
// card: approval and earmarking, reversal, capture and earmark cleanup.
//
// Every state transition runs under the card lock, so two handlers on the
// same card cannot both spend the same available balance.
type AuthorizationRequestHandler struct {
	request *AuthorizationRequest
	card    *PrepaidCard
	payout  Payout
}

// NewAuthorizationRequestHandler binds request to card. The request must
// target that card.
func NewAuthorizationRequestHandler(request *AuthorizationRequest, card *PrepaidCard, payout Payout) (*AuthorizationRequestHandler, error) {
	if request.CardID() != card.ID() {
		return nil, fmt.Errorf("authorization request %d on card %d: %w", request.ID(), card.ID(), ErrCardMismatch)
	}
	return &AuthorizationRequestHandler{
		request: request,
		card:    card,
		payout:  payout,
	}, nil
}

// ApproveAndEarmark approves the request and earmarks it when the card's
// available balance is strictly greater than the authorized amount. A request
// for exactly the available balance is declined. On decline nothing changes.
// A request that is already earmarked, or approved and closed, is left as is.
func (h *AuthorizationRequestHandler) ApproveAndEarmark() error {
	h.card.mu.Lock()
	defer h.card.mu.Unlock()

	if _, ok := h.card.earmarked[h.request.ID()]; ok {
		return nil
	}
	// approved and already settled or reversed below the threshold
	if h.request.IsApproved() && h.request.AuthorizedAmount() < CleanupThreshold {
		return nil
	}

	available := h.card.availableBalance()
	authorized := h.request.AuthorizedAmount()
	if available <= authorized {
		return fmt.Errorf("authorization request %d for %s against card %d with %s available: %w",
			h.request.ID(), authorized, h.card.ID(), available, ErrInsufficientFunds)
	}

	h.request.Approve()
	h.card.earmark(h.request)
	return nil
}

// Reverse releases amount from the hold.
func (h *AuthorizationRequestHandler) Reverse(amount money.Amount) error {
	h.card.mu.Lock()
	defer h.card.mu.Unlock()

	if err := h.request.Reverse(amount); err != nil {
		return err
	}
	h.cleanup()
	return nil
}

// ReverseRemaining releases whatever is still authorized and returns it.
func (h *AuthorizationRequestHandler) ReverseRemaining() (money.Amount, error) {
	h.card.mu.Lock()
	defer h.card.mu.Unlock()

	if !h.request.IsApproved() {
		return money.Zero, fmt.Errorf("reverse authorization request %d: %w", h.request.ID(), ErrNotApproved)
	}

	remaining := h.request.AuthorizedAmount()
	if remaining.IsPositive() {
		if err := h.request.Reverse(remaining); err != nil {
			return money.Zero, err
		}
	}
	h.cleanup()
	return remaining, nil
}

// Capture converts amount of the hold into a debit on the card and sends it
// to the merchant. Partial captures may repeat until nothing is authorized.
func (h *AuthorizationRequestHandler) Capture(ctx context.Context, amount money.Amount) error {
	if err := h.capture(amount); err != nil {
		return err
	}

	merchantID := h.request.MerchantID()
	logrus.WithFields(logrus.Fields{
		"authorization_id": h.request.ID(),
		"merchant_id":      merchantID,
		"amount":           amount.String(),
	}).Info("Sending captured amount to merchant")

	if h.payout == nil {
		return nil
	}
	if err := h.payout.Send(ctx, merchantID, amount); err != nil {
		logrus.WithError(err).Errorf("Payout of %s to merchant %d failed", amount, merchantID)
	}
	return nil
}

func (h *AuthorizationRequestHandler) capture(amount money.Amount) error {
	h.card.mu.Lock()
	defer h.card.mu.Unlock()

	if err := h.request.MarkAsCaptured(amount); err != nil {
		return err
	}
	h.card.debit(amount)
	h.cleanup()
	return nil
}

// cleanup expects the card lock to be held.
func (h *AuthorizationRequestHandler) cleanup() {
	if h.request.AuthorizedAmount() < CleanupThreshold {
		h.card.removeEarmarked(h.request)
	}
}
