package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrInvalidBatch    = errors.New("invalid batch")
	ErrInvalidSignup   = errors.New("invalid signup payload")
	ErrEmptySignupRole = errors.New("signup role is empty")
)

// Context keys for error values
const (
	EntryKey = "entry"
	IndexKey = "index"
)
