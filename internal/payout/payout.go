package payout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-prepaid-service/internal/ledger"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models"
	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
)

// MerchantRepo looks merchants up by id.
type MerchantRepo interface {
	GetByID(ctx context.Context, id int64) (*ledger.Merchant, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Notifier sends captured funds to merchants: it credits the in-process
// merchant balance and asks the payout system to move the money.
type Notifier struct {
	Merchants MerchantRepo
	Publisher Publisher
	Currency  string
}

func NewNotifier(merchants MerchantRepo, p Publisher, currency string) *Notifier {
	return &Notifier{
		Merchants: merchants,
		Publisher: p,
		Currency:  currency,
	}
}

func (n *Notifier) Send(ctx context.Context, merchantID int64, amount money.Amount) error {
	merchant, err := n.Merchants.GetByID(ctx, merchantID)
	if err != nil {
		return fmt.Errorf("payout to merchant %d: %w", merchantID, err)
	}
	if err := merchant.Receive(amount); err != nil {
		return fmt.Errorf("payout to merchant %d: %w", merchantID, err)
	}

	event := models.MerchantPayoutRequestedEvent{
		MerchantID:  merchantID,
		Amount:      amount.Decimal(),
		Currency:    n.Currency,
		TraceID:     uuid.New().String(),
		RequestedAt: time.Now().UTC(),
	}
	return n.Publisher.Publish(ctx, models.MerchantPayoutTopic, event)
}
