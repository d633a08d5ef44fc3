package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-prepaid-service/internal/ledger"
	"github.com/jeffleon2/draftea-prepaid-service/internal/metrics"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models"
	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
	"github.com/sirupsen/logrus"
)

// CardRepo looks up and stores prepaid cards.
type CardRepo interface {
	Save(ctx context.Context, card *ledger.PrepaidCard) error
	GetByID(ctx context.Context, id int64) (*ledger.PrepaidCard, error)
}

// AuthorizationRepo looks up and stores authorization requests.
type AuthorizationRepo interface {
	Save(ctx context.Context, request *ledger.AuthorizationRequest) error
	GetByID(ctx context.Context, id int64) (*ledger.AuthorizationRequest, error)
}

// MerchantRepo looks up and stores merchants.
type MerchantRepo interface {
	Save(ctx context.Context, merchant *ledger.Merchant) error
	GetByID(ctx context.Context, id int64) (*ledger.Merchant, error)
}

// JournalRepo persists the audit journal of ledger movements.
type JournalRepo interface {
	Create(ctx context.Context, entry *models.LedgerEntry) error
	GetAll(ctx context.Context) (*[]models.LedgerEntry, error)
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.LedgerEntry, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// IDSource hands out identifiers for new cards, owners, merchants and
// authorization requests.
type IDSource interface {
	NextCardID() int64
	NextOwnerID() int64
	NextMerchantID() int64
	NextAuthorizationRequestID() int64
}

type Repositories struct {
	Cards          CardRepo
	Authorizations AuthorizationRepo
	Merchants      MerchantRepo
	Journal        JournalRepo
}

// CardService is the application layer over the prepaid ledger. It resolves
// cards, merchants and authorization requests by id, drives the ledger
// operations and records every movement in the journal.
//
// Ledger state lives in the repositories; the journal and the published
// events are a record of what happened, so a failure to write either one is
// logged and never undoes a movement.
type CardService struct {
	Repos     Repositories
	IDs       IDSource
	Publisher Publisher
	Payout    ledger.Payout
	Currency  string
}

// NewCardService creates a CardService. payout may be nil, in which case
// captures are not forwarded to merchants.
func NewCardService(repos Repositories, ids IDSource, publisher Publisher, payout ledger.Payout, currency string) *CardService {
	var p ledger.Payout
	if payout != nil {
		p = countingPayout{next: payout}
	}
	return &CardService{
		Repos:     repos,
		IDs:       ids,
		Publisher: publisher,
		Payout:    p,
		Currency:  currency,
	}
}

// CreateCard issues a new inactive card. An ownerID of zero asks the service
// to assign a new owner.
func (s *CardService) CreateCard(ctx context.Context, ownerID int64) (ledger.CardSnapshot, error) {
	if ownerID == 0 {
		ownerID = s.IDs.NextOwnerID()
	}
	card := ledger.NewPrepaidCard(ownerID, s.IDs.NextCardID())
	if err := s.Repos.Cards.Save(ctx, card); err != nil {
		return ledger.CardSnapshot{}, err
	}

	logrus.WithFields(logrus.Fields{
		"card_id":  card.ID(),
		"owner_id": ownerID,
	}).Info("Card created")
	return card.Snapshot(), nil
}

func (s *CardService) GetCard(ctx context.Context, cardID int64) (ledger.CardSnapshot, error) {
	card, err := s.Repos.Cards.GetByID(ctx, cardID)
	if err != nil {
		return ledger.CardSnapshot{}, err
	}
	return card.Snapshot(), nil
}

// LoadMoney adds funds to the card and activates it.
func (s *CardService) LoadMoney(ctx context.Context, cardID int64, amount money.Amount) (ledger.CardSnapshot, error) {
	card, err := s.Repos.Cards.GetByID(ctx, cardID)
	if err != nil {
		return ledger.CardSnapshot{}, err
	}
	if err := card.LoadMoney(amount); err != nil {
		return ledger.CardSnapshot{}, err
	}

	metrics.LoadedAmounts.WithLabelValues(s.Currency).Observe(amount.Float64())
	s.record(ctx, &models.LedgerEntry{CardID: cardID, Kind: models.EntryLoad, Amount: amount})
	return card.Snapshot(), nil
}

// ReceiveRefund records a refund against the card. Refunds reduce the
// available balance.
func (s *CardService) ReceiveRefund(ctx context.Context, cardID int64, amount money.Amount) (ledger.CardSnapshot, error) {
	card, err := s.Repos.Cards.GetByID(ctx, cardID)
	if err != nil {
		return ledger.CardSnapshot{}, err
	}
	if err := card.ReceiveRefund(amount); err != nil {
		return ledger.CardSnapshot{}, err
	}

	metrics.RefundsTotal.Inc()
	s.record(ctx, &models.LedgerEntry{CardID: cardID, Kind: models.EntryRefund, Amount: amount})
	return card.Snapshot(), nil
}

func (s *CardService) CreateMerchant(ctx context.Context) (ledger.MerchantSnapshot, error) {
	merchant := ledger.NewMerchant(s.IDs.NextMerchantID())
	if err := s.Repos.Merchants.Save(ctx, merchant); err != nil {
		return ledger.MerchantSnapshot{}, err
	}
	logrus.WithField("merchant_id", merchant.ID()).Info("Merchant registered")
	return merchant.Snapshot(), nil
}

func (s *CardService) GetMerchant(ctx context.Context, merchantID int64) (ledger.MerchantSnapshot, error) {
	merchant, err := s.Repos.Merchants.GetByID(ctx, merchantID)
	if err != nil {
		return ledger.MerchantSnapshot{}, err
	}
	return merchant.Snapshot(), nil
}

// Authorize asks for a hold of amount on the card on behalf of the merchant.
//
// The request is stored whether it is approved or declined, so a declined
// request can still be looked up. A decline returns the stored snapshot
// together with an error wrapping ledger.ErrInsufficientFunds. Either way an
// authorizations.decided event is published.
func (s *CardService) Authorize(ctx context.Context, cardID, merchantID int64, amount money.Amount) (ledger.AuthorizationSnapshot, error) {
	card, err := s.Repos.Cards.GetByID(ctx, cardID)
	if err != nil {
		return ledger.AuthorizationSnapshot{}, err
	}
	if _, err := s.Repos.Merchants.GetByID(ctx, merchantID); err != nil {
		return ledger.AuthorizationSnapshot{}, err
	}

	request, err := ledger.NewAuthorizationRequest(s.IDs.NextAuthorizationRequestID(), amount, cardID, merchantID)
	if err != nil {
		return ledger.AuthorizationSnapshot{}, err
	}
	handler, err := ledger.NewAuthorizationRequestHandler(request, card, s.Payout)
	if err != nil {
		return ledger.AuthorizationSnapshot{}, err
	}

	decision := handler.ApproveAndEarmark()
	if decision != nil && !errors.Is(decision, ledger.ErrInsufficientFunds) {
		return ledger.AuthorizationSnapshot{}, decision
	}
	if err := s.Repos.Authorizations.Save(ctx, request); err != nil {
		return ledger.AuthorizationSnapshot{}, err
	}

	traceID := uuid.New().String()
	status := models.AuthorizationStatusApproved
	kind := models.EntryEarmark
	reason := ""
	if decision != nil {
		status = models.AuthorizationStatusDeclined
		kind = models.EntryDecline
		reason = "insufficient funds"
	}

	metrics.AuthorizationsTotal.WithLabelValues(string(status)).Inc()
	s.record(ctx, &models.LedgerEntry{
		CardID:          cardID,
		AuthorizationID: ptr(request.ID()),
		MerchantID:      ptr(merchantID),
		Kind:            kind,
		Amount:          amount,
		TraceID:         traceID,
	})

	event := models.AuthorizationDecidedEvent{
		AuthorizationID: request.ID(),
		CardID:          cardID,
		MerchantID:      merchantID,
		Status:          status,
		Amount:          amount.Decimal(),
		Currency:        s.Currency,
		Reason:          reason,
		TraceID:         traceID,
		DecidedAt:       time.Now().UTC(),
	}
	if err := s.Publisher.Publish(ctx, models.AuthorizationDecidedTopic, event); err != nil {
		logrus.WithError(err).Errorf("Failed to publish decision for authorization %d", request.ID())
	}

	logrus.WithFields(logrus.Fields{
		"authorization_id": request.ID(),
		"card_id":          cardID,
		"merchant_id":      merchantID,
		"amount":           amount.String(),
		"status":           status,
	}).Info("Authorization decided")

	return request.Snapshot(), decision
}

func (s *CardService) GetAuthorization(ctx context.Context, authorizationID int64) (ledger.AuthorizationSnapshot, error) {
	request, err := s.Repos.Authorizations.GetByID(ctx, authorizationID)
	if err != nil {
		return ledger.AuthorizationSnapshot{}, err
	}
	return request.Snapshot(), nil
}

// Capture settles amount of an approved hold and pays it to the merchant.
func (s *CardService) Capture(ctx context.Context, authorizationID int64, amount money.Amount) (ledger.AuthorizationSnapshot, error) {
	request, handler, err := s.handlerFor(ctx, authorizationID)
	if err != nil {
		return ledger.AuthorizationSnapshot{}, err
	}
	if err := handler.Capture(ctx, amount); err != nil {
		return ledger.AuthorizationSnapshot{}, err
	}

	metrics.CapturedAmounts.WithLabelValues(s.Currency).Observe(amount.Float64())
	s.record(ctx, &models.LedgerEntry{
		CardID:          request.CardID(),
		AuthorizationID: ptr(request.ID()),
		MerchantID:      ptr(request.MerchantID()),
		Kind:            models.EntryCapture,
		Amount:          amount,
	})
	return request.Snapshot(), nil
}

// Reverse releases amount from an approved hold. A nil amount releases
// whatever is still authorized.
func (s *CardService) Reverse(ctx context.Context, authorizationID int64, amount *money.Amount) (ledger.AuthorizationSnapshot, error) {
	request, handler, err := s.handlerFor(ctx, authorizationID)
	if err != nil {
		return ledger.AuthorizationSnapshot{}, err
	}

	var reversed money.Amount
	kind := "partial"
	if amount == nil {
		kind = "remaining"
		if reversed, err = handler.ReverseRemaining(); err != nil {
			return ledger.AuthorizationSnapshot{}, err
		}
	} else {
		if err := handler.Reverse(*amount); err != nil {
			return ledger.AuthorizationSnapshot{}, err
		}
		reversed = *amount
	}

	if reversed.IsPositive() {
		metrics.ReversalsTotal.WithLabelValues(kind).Inc()
		s.record(ctx, &models.LedgerEntry{
			CardID:          request.CardID(),
			AuthorizationID: ptr(request.ID()),
			MerchantID:      ptr(request.MerchantID()),
			Kind:            models.EntryReversal,
			Amount:          reversed,
		})
	}
	return request.Snapshot(), nil
}

// Journal lists the ledger entries recorded for a card.
func (s *CardService) Journal(ctx context.Context, cardID int64) ([]models.LedgerEntry, error) {
	if _, err := s.Repos.Cards.GetByID(ctx, cardID); err != nil {
		return nil, err
	}
	entries, err := s.Repos.Journal.GetBy(ctx, "card_id = ?", cardID)
	if err != nil {
		return nil, fmt.Errorf("journal of card %d: %w", cardID, err)
	}
	if entries == nil {
		return []models.LedgerEntry{}, nil
	}
	return *entries, nil
}

// Entries lists the whole journal across cards, oldest first.
func (s *CardService) Entries(ctx context.Context) ([]models.LedgerEntry, error) {
	entries, err := s.Repos.Journal.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	if entries == nil {
		return []models.LedgerEntry{}, nil
	}
	return *entries, nil
}

func (s *CardService) handlerFor(ctx context.Context, authorizationID int64) (*ledger.AuthorizationRequest, *ledger.AuthorizationRequestHandler, error) {
	request, err := s.Repos.Authorizations.GetByID(ctx, authorizationID)
	if err != nil {
		return nil, nil, err
	}
	card, err := s.Repos.Cards.GetByID(ctx, request.CardID())
	if err != nil {
		return nil, nil, err
	}
	handler, err := ledger.NewAuthorizationRequestHandler(request, card, s.Payout)
	if err != nil {
		return nil, nil, err
	}
	return request, handler, nil
}

func (s *CardService) record(ctx context.Context, entry *models.LedgerEntry) {
	if entry.TraceID == "" {
		entry.TraceID = uuid.New().String()
	}
	if err := s.Repos.Journal.Create(ctx, entry); err != nil {
		metrics.JournalFailuresTotal.Inc()
		logrus.WithError(err).WithFields(logrus.Fields{
			"card_id": entry.CardID,
			"kind":    entry.Kind,
		}).Error("Failed to write ledger entry")
	}
}

// countingPayout counts failed payouts before handing the error back to the
// ledger, which logs it.
type countingPayout struct {
	next ledger.Payout
}

func (p countingPayout) Send(ctx context.Context, merchantID int64, amount money.Amount) error {
	err := p.next.Send(ctx, merchantID, amount)
	if err != nil {
		metrics.PayoutFailuresTotal.Inc()
	}
	return err
}

func ptr(v int64) *int64 {
	return &v
}
