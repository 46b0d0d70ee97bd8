package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgUnknownKillKind    = "unknown kill kind"
	ErrMsgPlayerIDRequired   = "player ID is required"
	ErrMsgInvalidInput       = "invalid input"
	ErrMsgInvalidCatalog     = "invalid achievement catalog"
	ErrMsgDuplicateCatalogID = "duplicate achievement id"

	// Persistence errors
	ErrMsgRecordNotFound = "record not found"
	ErrMsgCorruptRecord  = "corrupt record"
	ErrMsgStorageFailure = "storage failure"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnknownKillKind    = errors.New(ErrMsgUnknownKillKind)
	ErrPlayerIDRequired   = errors.New(ErrMsgPlayerIDRequired)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
	ErrInvalidCatalog     = errors.New(ErrMsgInvalidCatalog)
	ErrDuplicateCatalogID = errors.New(ErrMsgDuplicateCatalogID)

	ErrRecordNotFound = errors.New(ErrMsgRecordNotFound)
	ErrCorruptRecord  = errors.New(ErrMsgCorruptRecord)
	ErrStorageFailure = errors.New(ErrMsgStorageFailure)
)
