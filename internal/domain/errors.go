package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the services unwraps to exactly one of them.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidState       = errors.New("invalid state")
	ErrInsufficientTokens = errors.New("insufficient tokens")
	ErrInternal           = errors.New("internal error")

	ErrInvalidTokenAmount = errors.New("invalid token amount")
	ErrLoginTaken         = errors.New("username already taken")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InvalidTokenAmountError is a validation failure on the tokens of a trade.
// Expected is set when the offer carries an explicit token price.
type InvalidTokenAmountError struct {
	Offered  int64
	Expected *int64
}

func (e *InvalidTokenAmountError) Error() string {
	if e.Expected != nil {
		return fmt.Sprintf("invalid token amount %d: offer is priced at %d", e.Offered, *e.Expected)
	}
	return fmt.Sprintf("invalid token amount %d", e.Offered)
}

func (e *InvalidTokenAmountError) Unwrap() []error {
	return []error{ErrInvalidTokenAmount, ErrValidation}
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidStateError means the trade already left the pending state.
type InvalidStateError struct {
	TradeID string
	Status  TradeStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("trade %s is %s", e.TradeID, e.Status)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

type InsufficientTokensError struct {
	UserID   int
	Balance  int64
	Required int64
}

func (e *InsufficientTokensError) Error() string {
	return fmt.Sprintf("user %d has insufficient tokens: %d required", e.UserID, e.Required)
}

func (e *InsufficientTokensError) Unwrap() error { return ErrInsufficientTokens }

// InternalError wraps a storage or backend failure. No state was changed.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() []error {
	return []error{ErrInternal, e.Err}
}

// Internal wraps err into an InternalError unless it already carries a known kind.
func Internal(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrInvalidState, ErrInsufficientTokens, ErrInternal, ErrLoginTaken} {
		if errors.Is(err, kind) {
			return err
		}
	}
	return &InternalError{Op: op, Err: err}
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}
