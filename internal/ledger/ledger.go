// Package ledger holds the token balance rules shared by every store.
//
// Balances never go below zero. A transfer either returns both updated
// accounts or an error, and its inputs are values, so a failed transfer
// cannot leave a half-applied change behind.
package ledger

import (
	"github.com/GlebRadaev/trueqia/internal/domain"
)

type Account struct {
	UserID int
	Tokens int64
}

func Debit(acc Account, amount int64) (Account, error) {
	if amount < 0 {
		return acc, &domain.ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if acc.Tokens < amount {
		return acc, &domain.InsufficientTokensError{UserID: acc.UserID, Balance: acc.Tokens, Required: amount}
	}
	acc.Tokens -= amount
	return acc, nil
}

func Credit(acc Account, amount int64) (Account, error) {
	if amount < 0 {
		return acc, &domain.ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	acc.Tokens += amount
	return acc, nil
}

// Transfer moves amount tokens from one account to another.
func Transfer(from, to Account, amount int64) (Account, Account, error) {
	if from.UserID == to.UserID {
		return from, to, &domain.ValidationError{Field: "to_user_id", Reason: "transfer to the same account"}
	}
	debited, err := Debit(from, amount)
	if err != nil {
		return from, to, err
	}
	credited, err := Credit(to, amount)
	if err != nil {
		return from, to, err
	}
	return debited, credited, nil
}
