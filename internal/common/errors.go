// Package common defines the error taxonomy and shared constants used across
// chapterhub components. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

// Error kinds. Every error surfaced to a caller wraps exactly one of them.
var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrAccessDenied      = errors.New("access denied")
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedInput  = errors.New("unsupported input")
	ErrExternalService   = errors.New("external service failure")
	ErrMalformedResponse = errors.New("malformed response")
	ErrValidation        = errors.New("validation failure")

	ErrInternal = errors.New("internal error")

	// Token errors (invalid or malformed token, expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Error is a user-displayable failure that belongs to one of the kinds above.
// Its message is returned verbatim; errors.Is(err, kind) reports the kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// NewError builds an *Error of the given kind with a formatted message.
func NewError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Named failures.
var (
	ErrAuthenticationRequired = &Error{Kind: ErrNotAuthenticated, Msg: "Unauthorized: Authentication required"}
	ErrUserIDNotFound         = &Error{Kind: ErrNotAuthenticated, Msg: "Unauthorized: User ID not found"}
	ErrUserNotFound           = &Error{Kind: ErrNotFound, Msg: "User not found"}
	ErrAdminAccessRequired    = &Error{Kind: ErrAccessDenied, Msg: "Admin access required"}

	ErrCourseNotFound     = &Error{Kind: ErrNotFound, Msg: "Course not found"}
	ErrCourseAccessDenied = &Error{Kind: ErrAccessDenied, Msg: "Access denied"}
	ErrNoSyllabusAttached = &Error{Kind: ErrNotFound, Msg: "No syllabus attached to this course"}
	ErrFileNotFound       = &Error{Kind: ErrNotFound, Msg: "File not found"}
	ErrFileInUse          = &Error{Kind: ErrAccessDenied, Msg: "File is attached to another user's course"}

	ErrAssignmentNotFound = &Error{Kind: ErrNotFound, Msg: "Assignment not found or access denied"}

	ErrNoResponse = &Error{Kind: ErrExternalService, Msg: "No response from OpenAI"}
)

// KindOf returns the taxonomy kind err belongs to, or ErrInternal.
func KindOf(err error) error {
	for _, k := range []error{
		ErrNotAuthenticated, ErrAccessDenied, ErrNotFound, ErrUnsupportedInput,
		ErrExternalService, ErrMalformedResponse, ErrValidation,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrInternal
}
