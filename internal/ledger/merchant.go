package ledger

import (
	"sync"

	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
)

// Merchant receives the funds captured from authorization requests.
type Merchant struct {
	mu      sync.Mutex
	id      int64
	balance money.Amount
}

type MerchantSnapshot struct {
	ID      int64
	Balance money.Amount
}

func NewMerchant(id int64) *Merchant {
	return &Merchant{id: id}
}

func (m *Merchant) ID() int64 {
	return m.id
}

// Receive credits a captured amount to the merchant.
func (m *Merchant) Receive(amount money.Amount) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balance += amount
	return nil
}

func (m *Merchant) Balance() money.Amount {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balance
}

func (m *Merchant) Snapshot() MerchantSnapshot {
	return MerchantSnapshot{ID: m.id, Balance: m.Balance()}
}
