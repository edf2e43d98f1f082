package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Inventory errors
	ErrMsgNoItemsRemaining     = "no items remaining"
	ErrMsgUnknownItem          = "unknown item"
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Stat errors
	ErrMsgStatAlreadyMax = "stat already at max"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Database/System errors
	ErrMsgTransactionFailed = "transaction failed"
	ErrMsgTxClosed          = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	ErrNoItemsRemaining     = errors.New(ErrMsgNoItemsRemaining)
	ErrUnknownItem          = errors.New(ErrMsgUnknownItem)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	ErrStatAlreadyMax = errors.New(ErrMsgStatAlreadyMax)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrTransactionFailed = errors.New(ErrMsgTransactionFailed)

	// ErrTxClosed is returned by Commit or Rollback on a finished transaction
	ErrTxClosed = errors.New(ErrMsgTxClosed)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// StatAlreadyMaxError reports which stat was already full.
// errors.Is(err, ErrStatAlreadyMax) holds for every StatAlreadyMaxError.
type StatAlreadyMaxError struct {
	Stat Stat
}

func (e *StatAlreadyMaxError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgStatAlreadyMax, e.Stat)
}

func (e *StatAlreadyMaxError) Is(target error) bool {
	return target == ErrStatAlreadyMax
}

// IsBusinessError reports whether err is a rule rejection rather than a storage fault
func IsBusinessError(err error) bool {
	for _, target := range []error{
		ErrPlayerNotFound,
		ErrNoItemsRemaining,
		ErrUnknownItem,
		ErrInsufficientQuantity,
		ErrStatAlreadyMax,
		ErrInsufficientFunds,
		ErrInvalidInput,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
