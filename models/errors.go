package models

import "errors"

// Business-rule sentinels. Handlers match these with errors.Is to pick the
// right HTTP status; anything else is treated as a persistence fault.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrBelowMinimum        = errors.New("amount below minimum withdrawal")
	ErrAboveMaximum        = errors.New("amount above maximum withdrawal")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrUnknownType         = errors.New("unknown transaction type")
)
