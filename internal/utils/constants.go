package utils

import "time"

// Application Constants
const (
	AppName    = "LIVELINK Admin"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency   = "USD"
	DefaultOperatorID = "admin1"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Verification
	DocumentExpiryWarning = 30 * 24 * time.Hour

	// Audit
	AuditChannel    = "livelink:audit"
	AuditCollection = "audit_logs"
	AuditRoom       = "audit"
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFailed  = "failed"
)

// Error Codes
const (
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeUnknownAction   = "UNKNOWN_ACTION"
	ErrCodeInternal        = "INTERNAL_SERVER_ERROR"
	ErrCodeInvalidOperator = "INVALID_OPERATOR"
	ErrCodeUnavailable     = "SERVICE_UNAVAILABLE"
)

// Error Messages
const (
	ErrInvalidInput     = "invalid input"
	ErrInternalServer   = "internal server error"
	ErrNotFound         = "not found"
	ErrValidationFailed = "validation failed"
)

// Event Types
const (
	EventActionApplied = "action_applied"
	EventActionReceipt = "action_receipt"
)
