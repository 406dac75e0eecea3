package domain

import "errors"

var (
	// ErrCampaignNotFound is returned when the contract answers with the
	// zero creator sentinel.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrValidation wraps every client-side validation failure. Such errors
	// are reported before anything is sent to the chain.
	ErrValidation = errors.New("validation error")

	// ErrNotReady is returned when a batched read join is incomplete.
	ErrNotReady = errors.New("not ready")

	ErrWrongNetwork     = errors.New("wrong network")
	ErrWriteInFlight    = errors.New("write already in flight")
	ErrWritesDisabled   = errors.New("writes disabled: no signing key configured")
	ErrApprovalRequired = errors.New("token approval required")

	ErrInvalidTransition = errors.New("invalid transaction state transition")
	ErrAttemptNotFound   = errors.New("transaction attempt not found")

	ErrInvalidImage = errors.New("invalid image")
	ErrUploadFailed = errors.New("upload failed")
)

// ValidationError carries the form-level message for a rejected input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
