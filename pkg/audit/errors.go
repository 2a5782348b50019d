package audit

import "errors"

var (
	// ErrEventValidation indicates the event is missing required fields.
	ErrEventValidation = errors.New("audit: event validation failed")

	// ErrSinkUnavailable indicates the sink backend rejected the write.
	ErrSinkUnavailable = errors.New("audit: sink unavailable")
)
