package ledger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
)

// PrepaidCard owns the loaded and refunded totals of a card and the set of
// authorization requests currently earmarked against it. One card has exactly
// one owner.
//
// The card mutex guards every field and is the lock the
// AuthorizationRequestHandler holds across its check-then-act sequences.
type PrepaidCard struct {
	mu             sync.Mutex
	id             int64
	ownerID        int64
	active         bool
	amountLoaded   money.Amount
	amountRefunded money.Amount
	earmarked      map[int64]*AuthorizationRequest
}

type CardSnapshot struct {
	ID               int64
	OwnerID          int64
	Active           bool
	AmountLoaded     money.Amount
	AmountRefunded   money.Amount
	AmountBlocked    money.Amount
	AvailableBalance money.Amount
	Earmarked        []int64
}

// NewPrepaidCard returns an inactive card with nothing loaded.
func NewPrepaidCard(ownerID, cardID int64) *PrepaidCard {
	return &PrepaidCard{
		id:        cardID,
		ownerID:   ownerID,
		earmarked: make(map[int64]*AuthorizationRequest),
	}
}

func (c *PrepaidCard) ID() int64 {
	return c.id
}

func (c *PrepaidCard) OwnerID() int64 {
	return c.ownerID
}

func (c *PrepaidCard) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *PrepaidCard) AmountLoaded() money.Amount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.amountLoaded
}

func (c *PrepaidCard) AmountRefunded() money.Amount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.amountRefunded
}

// AvailableBalance is loaded - blocked - refunded.
func (c *PrepaidCard) AvailableBalance() money.Amount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.availableBalance()
}

// AmountBlocked sums the authorized amount of every earmarked request. It is
// recomputed on each call.
func (c *PrepaidCard) AmountBlocked() money.Amount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.amountBlocked()
}

// LoadMoney adds funds and activates the card.
func (c *PrepaidCard) LoadMoney(amount money.Amount) error {
	if !amount.IsPositive() {
		return fmt.Errorf("load %s onto card %d: %w", amount, c.id, ErrInvalidAmount)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	loaded, err := c.amountLoaded.Add(amount)
	if err != nil {
		return fmt.Errorf("load onto card %d: %w", c.id, err)
	}
	c.amountLoaded = loaded
	c.active = true
	return nil
}

// Earmark blocks the request's authorized amount on the card. Earmarking the
// same request twice keeps a single entry.
func (c *PrepaidCard) Earmark(request *AuthorizationRequest) error {
	if request.CardID() != c.id {
		return fmt.Errorf("earmark authorization request %d on card %d: %w", request.ID(), c.id, ErrCardMismatch)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.earmark(request)
	return nil
}

// RemoveEarmarked drops the request from the earmark set, if present.
func (c *PrepaidCard) RemoveEarmarked(request *AuthorizationRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeEarmarked(request)
}

func (c *PrepaidCard) IsEarmarked(requestID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.earmarked[requestID]
	return ok
}

// Capture debits the loaded total. It is a ledger debit only; whether the
// amount is covered by an earmark is checked by the handler.
func (c *PrepaidCard) Capture(amount money.Amount) error {
	if !amount.IsPositive() {
		return fmt.Errorf("capture %s from card %d: %w", amount, c.id, ErrInvalidAmount)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.amountLoaded -= amount
	return nil
}

// ReceiveRefund records a refund, which reduces the available balance.
func (c *PrepaidCard) ReceiveRefund(amount money.Amount) error {
	if !amount.IsPositive() {
		return fmt.Errorf("refund %s to card %d: %w", amount, c.id, ErrInvalidAmount)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	refunded, err := c.amountRefunded.Add(amount)
	if err != nil {
		return fmt.Errorf("refund to card %d: %w", c.id, err)
	}
	c.amountRefunded = refunded
	return nil
}

func (c *PrepaidCard) Snapshot() CardSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]int64, 0, len(c.earmarked))
	for id := range c.earmarked {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	blocked := c.amountBlocked()
	return CardSnapshot{
		ID:               c.id,
		OwnerID:          c.ownerID,
		Active:           c.active,
		AmountLoaded:     c.amountLoaded,
		AmountRefunded:   c.amountRefunded,
		AmountBlocked:    blocked,
		AvailableBalance: c.available(blocked),
		Earmarked:        ids,
	}
}

// The helpers below expect c.mu to be held.

func (c *PrepaidCard) availableBalance() money.Amount {
	return c.available(c.amountBlocked())
}

// available floors at money.MinAmount when the difference does not fit.
func (c *PrepaidCard) available(blocked money.Amount) money.Amount {
	available, err := c.amountLoaded.Add(-blocked)
	if err == nil {
		available, err = available.Add(-c.amountRefunded)
	}
	if err != nil {
		return money.MinAmount
	}
	return available
}

// amountBlocked saturates at money.MaxAmount, so no further hold fits.
func (c *PrepaidCard) amountBlocked() money.Amount {
	var blocked money.Amount
	for _, request := range c.earmarked {
		sum, err := blocked.Add(request.AuthorizedAmount())
		if err != nil {
			return money.MaxAmount
		}
		blocked = sum
	}
	return blocked
}

func (c *PrepaidCard) earmark(request *AuthorizationRequest) {
	c.earmarked[request.ID()] = request
}

func (c *PrepaidCard) removeEarmarked(request *AuthorizationRequest) {
	delete(c.earmarked, request.ID())
}

func (c *PrepaidCard) debit(amount money.Amount) {
	c.amountLoaded -= amount
}
