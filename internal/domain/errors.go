package domain

import "errors"

var (
	// ErrLoginFailed indicates that the user ID and PIN combination did not
	// match. Unknown ID and wrong PIN are deliberately collapsed into this
	// single error so the caller cannot tell which part was wrong.
	ErrLoginFailed = errors.New("incorrect user ID or PIN")
	// ErrAccountIndexOutOfRange indicates an account selection outside the user's account list.
	ErrAccountIndexOutOfRange = errors.New("account index out of range")
	// ErrInvalidAmount indicates an amount that could not be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a negative amount.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidOnboarding indicates onboarding input that failed validation.
	ErrInvalidOnboarding = errors.New("invalid onboarding input")
)
