package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrBlocked       = errors.New("number is blocked")
	ErrNotFound      = errors.New("not found")
	ErrInvalidNumber = errors.New("invalid phone number")
	ErrNoContacts    = errors.New("not enough contacts")
)

// InvalidNumberError reports a phone input that failed normalization.
type InvalidNumberError struct {
	Input  string
	Reason error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid phone number %q: %v", e.Input, e.Reason)
}

func (e *InvalidNumberError) Is(target error) bool {
	return target == ErrInvalidNumber
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Reason
}

// BlockedCallError reports a call refused because a participant is blocked.
type BlockedCallError struct {
	Caller string
	Callee string
}

func (e *BlockedCallError) Error() string {
	return fmt.Sprintf("cannot place call %s → %s: blocked number", e.Caller, e.Callee)
}

func (e *BlockedCallError) Is(target error) bool {
	return target == ErrBlocked
}
