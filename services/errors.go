package services

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds shared by the services. Controllers map them to HTTP status
// codes; nothing below this layer touches gin.
var (
	// ErrNotFound covers missing entities and entities owned by someone
	// else: both look identical to the caller.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated means no valid user was supplied.
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError reports the form fields that failed validation. No
// partial state is persisted when one is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// TransactionError wraps a failure inside a multi-row mutation after the
// whole transaction has been rolled back.
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s: transaction rolled back: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }
