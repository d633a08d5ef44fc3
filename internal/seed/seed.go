package seed

import (
	"context"

	"github.com/jeffleon2/draftea-prepaid-service/internal/ledger"
	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
	"github.com/sirupsen/logrus"
)

type CardService interface {
	CreateCard(ctx context.Context, ownerID int64) (ledger.CardSnapshot, error)
	LoadMoney(ctx context.Context, cardID int64, amount money.Amount) (ledger.CardSnapshot, error)
	CreateMerchant(ctx context.Context) (ledger.MerchantSnapshot, error)
}

// DemoBalance is loaded onto the seeded card.
var DemoBalance = money.MustParse("100.00")

// SeedLedger registers two merchants and a funded demo card for local runs.
func SeedLedger(ctx context.Context, s CardService) error {
	for i := 0; i < 2; i++ {
		if _, err := s.CreateMerchant(ctx); err != nil {
			return err
		}
	}

	card, err := s.CreateCard(ctx, 0)
	if err != nil {
		return err
	}
	if _, err := s.LoadMoney(ctx, card.ID, DemoBalance); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"card_id": card.ID,
		"balance": DemoBalance.String(),
	}).Info("✅ Ledger seeded successfully")
	return nil
}
