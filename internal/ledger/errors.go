package ledger

import (
	"errors"

	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
)

var (
	ErrNotFound                = errors.New("not found")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrExceedsAuthorizedAmount = errors.New("amount exceeds authorized amount")
	ErrNotApproved             = errors.New("authorization request is not approved")
	ErrCardMismatch            = errors.New("authorization request targets another card")
	ErrMalformedInput          = errors.New("malformed input")
)

// IsValidation reports whether err was caused by a rejected input rather than
// by the state of the ledger.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrExceedsAuthorizedAmount) ||
		errors.Is(err, ErrNotApproved) ||
		errors.Is(err, ErrCardMismatch) ||
		errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, money.ErrPrecision) ||
		errors.Is(err, money.ErrOverflow)
}

// IsPermanent reports whether retrying the same operation can never succeed.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInsufficientFunds) ||
		IsValidation(err)
}
