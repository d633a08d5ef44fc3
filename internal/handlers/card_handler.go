package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-prepaid-service/internal/ledger"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models/dto"
	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
	"github.com/sirupsen/logrus"
)

type CardService interface {
	CreateCard(ctx context.Context, ownerID int64) (ledger.CardSnapshot, error)
	GetCard(ctx context.Context, cardID int64) (ledger.CardSnapshot, error)
	LoadMoney(ctx context.Context, cardID int64, amount money.Amount) (ledger.CardSnapshot, error)
	ReceiveRefund(ctx context.Context, cardID int64, amount money.Amount) (ledger.CardSnapshot, error)
	Journal(ctx context.Context, cardID int64) ([]models.LedgerEntry, error)
	Entries(ctx context.Context) ([]models.LedgerEntry, error)
	CreateMerchant(ctx context.Context) (ledger.MerchantSnapshot, error)
	GetMerchant(ctx context.Context, merchantID int64) (ledger.MerchantSnapshot, error)
	Authorize(ctx context.Context, cardID, merchantID int64, amount money.Amount) (ledger.AuthorizationSnapshot, error)
	GetAuthorization(ctx context.Context, authorizationID int64) (ledger.AuthorizationSnapshot, error)
	Capture(ctx context.Context, authorizationID int64, amount money.Amount) (ledger.AuthorizationSnapshot, error)
	Reverse(ctx context.Context, authorizationID int64, amount *money.Amount) (ledger.AuthorizationSnapshot, error)
}

type CardHandler struct {
	Service CardService
}

func NewCardHandler(s CardService) *CardHandler {
	return &CardHandler{Service: s}
}

// POST /cards
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req dto.CreateCard
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	card, err := h.Service.CreateCard(c.Request.Context(), req.OwnerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromCard(card))
}

// GET /cards/:id
func (h *CardHandler) GetCard(c *gin.Context) {
	card, ok := h.card(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.FromCard(card))
}

// GET /cards/:id/balance
func (h *CardHandler) GetBalance(c *gin.Context) {
	card, ok := h.card(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.Balance{Balance: card.AvailableBalance.Decimal()})
}

// GET /cards/:id/blocked-balance
func (h *CardHandler) GetBlockedBalance(c *gin.Context) {
	card, ok := h.card(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.BlockedBalance{BlockedBalance: card.AmountBlocked.Decimal()})
}

// POST /cards/:id/load-money
func (h *CardHandler) LoadMoney(c *gin.Context) {
	h.cardMovement(c, h.Service.LoadMoney)
}

// POST /cards/:id/refunds
func (h *CardHandler) ReceiveRefund(c *gin.Context) {
	h.cardMovement(c, h.Service.ReceiveRefund)
}

// GET /cards/:id/journal
func (h *CardHandler) GetJournal(c *gin.Context) {
	cardID, ok := pathID(c)
	if !ok {
		return
	}
	entries, err := h.Service.Journal(c.Request.Context(), cardID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromLedgerEntries(entries))
}

// GET /journal
func (h *CardHandler) GetEntries(c *gin.Context) {
	entries, err := h.Service.Entries(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromLedgerEntries(entries))
}

// POST /merchants
func (h *CardHandler) CreateMerchant(c *gin.Context) {
	merchant, err := h.Service.CreateMerchant(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromMerchant(merchant))
}

// GET /merchants/:id
func (h *CardHandler) GetMerchant(c *gin.Context) {
	merchantID, ok := pathID(c)
	if !ok {
		return
	}
	merchant, err := h.Service.GetMerchant(c.Request.Context(), merchantID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMerchant(merchant))
}

// POST /authorizations
//
// An approved request answers 201. A declined one answers 402 and still
// carries the stored request, so the caller learns its id.
func (h *CardHandler) Authorize(c *gin.Context) {
	var req dto.CreateAuthorization
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	amount, err := money.FromDecimal(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.Service.Authorize(c.Request.Context(), req.CardID, req.MerchantID, amount)
	if errors.Is(err, ledger.ErrInsufficientFunds) {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":         err.Error(),
			"authorization": dto.FromAuthorization(request),
		})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromAuthorization(request))
}

// GET /authorizations/:id
func (h *CardHandler) GetAuthorization(c *gin.Context) {
	authorizationID, ok := pathID(c)
	if !ok {
		return
	}
	request, err := h.Service.GetAuthorization(c.Request.Context(), authorizationID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAuthorization(request))
}

// POST /authorizations/:id/capture
func (h *CardHandler) Capture(c *gin.Context) {
	authorizationID, ok := pathID(c)
	if !ok {
		return
	}
	amount, ok := bindAmount(c)
	if !ok {
		return
	}
	request, err := h.Service.Capture(c.Request.Context(), authorizationID, amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAuthorization(request))
}

// POST /authorizations/:id/reverse
func (h *CardHandler) Reverse(c *gin.Context) {
	authorizationID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ReverseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}
	amount, err := req.ToAmount()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.Service.Reverse(c.Request.Context(), authorizationID, amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAuthorization(request))
}

// HandleEvents applies card and authorization events consumed from Kafka.
func (h *CardHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.RefundReceivedTopic:
		var event models.RefundReceivedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing refund received event %s", err.Error())
			return fmt.Errorf("error parsing refund received event: %w: %w", ledger.ErrMalformedInput, err)
		}
		amount, err := money.FromDecimal(event.Amount)
		if err != nil {
			return fmt.Errorf("refund for card %d: %w", event.CardID, err)
		}
		if _, err := h.Service.ReceiveRefund(ctx, event.CardID, amount); err != nil {
			return fmt.Errorf("error receiving refund trace_id=%s: %w", event.TraceID, err)
		}
	case models.CaptureRequestedTopic:
		var event models.CaptureRequestedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing capture requested event %s", err.Error())
			return fmt.Errorf("error parsing capture requested event: %w: %w", ledger.ErrMalformedInput, err)
		}
		amount, err := money.FromDecimal(event.Amount)
		if err != nil {
			return fmt.Errorf("capture of authorization %d: %w", event.AuthorizationID, err)
		}
		if _, err := h.Service.Capture(ctx, event.AuthorizationID, amount); err != nil {
			return fmt.Errorf("error capturing trace_id=%s: %w", event.TraceID, err)
		}
	case models.ReversalRequestedTopic:
		var event models.ReversalRequestedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing reversal requested event %s", err.Error())
			return fmt.Errorf("error parsing reversal requested event: %w: %w", ledger.ErrMalformedInput, err)
		}
		amount, err := dto.ReverseRequest{Amount: event.Amount}.ToAmount()
		if err != nil {
			return fmt.Errorf("reversal of authorization %d: %w", event.AuthorizationID, err)
		}
		if _, err := h.Service.Reverse(ctx, event.AuthorizationID, amount); err != nil {
			return fmt.Errorf("error reversing trace_id=%s: %w", event.TraceID, err)
		}
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s: %w", topic, ledger.ErrMalformedInput)
	}
	return nil
}

func (h *CardHandler) card(c *gin.Context) (ledger.CardSnapshot, bool) {
	cardID, ok := pathID(c)
	if !ok {
		return ledger.CardSnapshot{}, false
	}
	card, err := h.Service.GetCard(c.Request.Context(), cardID)
	if err != nil {
		writeError(c, err)
		return ledger.CardSnapshot{}, false
	}
	return card, true
}

func (h *CardHandler) cardMovement(c *gin.Context, apply func(context.Context, int64, money.Amount) (ledger.CardSnapshot, error)) {
	cardID, ok := pathID(c)
	if !ok {
		return
	}
	amount, ok := bindAmount(c)
	if !ok {
		return
	}
	card, err := apply(c.Request.Context(), cardID, amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCard(card))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func bindAmount(c *gin.Context) (money.Amount, bool) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return 0, false
	}
	amount, err := req.ToAmount()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}
	return amount, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case ledger.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("Unexpected error handling request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
