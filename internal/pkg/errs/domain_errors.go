package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Lookup errors
	ErrInvalidIdentifier  = errors.New("invalid document identifier")
	ErrPricingUnavailable = errors.New("pricing unavailable")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrDispatchFailed     = errors.New("enrichment dispatch failed")
	ErrRecordNotFound     = errors.New("record not found after enrichment polling")
	ErrLookupInProgress   = errors.New("lookup already in progress")

	// Consultation errors
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrConsultationDenied   = errors.New("consultation belongs to another user")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
