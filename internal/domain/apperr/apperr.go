package apperr

import (
	"errors"

	"haru-weather/pkg/msg"
)

// Kind classifies a failure into the category the UI layer cares about.
type Kind string

const (
	KindUnknown             Kind = "UNKNOWN"
	KindPermissionDenied    Kind = "PERMISSION_DENIED"
	KindPositionUnavailable Kind = "POSITION_UNAVAILABLE"
	KindLocationTimeout     Kind = "LOCATION_TIMEOUT"
	KindUnsupported         Kind = "GEOLOCATION_UNSUPPORTED"
	KindNetworkUnavailable  Kind = "NETWORK_UNAVAILABLE"
	KindInvalidCredential   Kind = "INVALID_CREDENTIAL"
	KindLocationNotFound    Kind = "LOCATION_NOT_FOUND"
	KindRateLimited         Kind = "RATE_LIMITED"
	KindUpstream            Kind = "UPSTREAM_ERROR"
	KindStorageUnavailable  Kind = "STORAGE_UNAVAILABLE"
)

// Error carries a classification plus the human-readable message shown to the
// user. The message is resolved from the catalog at construction time.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an Error with a message resolved from the catalog key.
func New(kind Kind, messageKey string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: msg.GetMessage(messageKey),
		cause:   cause,
	}
}

// WithMessage builds an Error with an already-resolved message, used when the
// upstream supplies its own text.
func WithMessage(kind Kind, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		cause:   cause,
	}
}

// KindOf returns the classification of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// UserMessage returns the message to surface for err. Foreign errors map to
// the generic unknown-error text so raw internals never reach the user.
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return msg.GetMessage("weather.error.unknown")
}
