package domain

import "errors"

var (
	// ErrNotFound is returned when a collectible or purchase request does not exist
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when the caller lacks the required role for an operation
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput is returned when an operation receives invalid input
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotPending is returned when resolving a purchase request that is already terminal
	ErrNotPending = errors.New("request is not pending")

	// ErrInvalidProof is returned when ciphertext proof verification fails
	ErrInvalidProof = errors.New("invalid ciphertext proof")

	// ErrPaymentFailed is returned when an escrow payout cannot be completed
	ErrPaymentFailed = errors.New("payment failed")

	// ErrRefundFailed is returned when an escrow refund cannot be completed
	ErrRefundFailed = errors.New("refund failed")
)

// Input error kinds. All of them match errors.Is(err, ErrInvalidInput).
var (
	// ErrEmptyField is returned when a required descriptive field is empty
	ErrEmptyField = wrap("empty required field", ErrInvalidInput)

	// ErrZeroOffer is returned when a purchase request carries a zero offer amount
	ErrZeroOffer = wrap("zero offer amount", ErrInvalidInput)

	// ErrSelfPurchase is returned when a buyer requests purchase of a collectible they own
	ErrSelfPurchase = wrap("cannot request purchase of own collectible", ErrInvalidInput)

	// ErrInvalidPrincipal is returned when a principal is not a valid hex address
	ErrInvalidPrincipal = wrap("invalid principal address", ErrInvalidInput)

	// ErrInvalidAmount is returned when an amount is not a valid positive integer string
	ErrInvalidAmount = wrap("invalid amount", ErrInvalidInput)
)

// ErrInsufficientFunds matches errors.Is(err, ErrPaymentFailed).
var ErrInsufficientFunds = wrap("insufficient funds", ErrPaymentFailed)

type wrappedError struct {
	msg  string
	base error
}

func (e *wrappedError) Error() string { return e.msg }
func (e *wrappedError) Unwrap() error { return e.base }

func wrap(msg string, base error) error {
	return &wrappedError{msg: msg, base: base}
}
