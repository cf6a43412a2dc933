package validation

import (
	"fmt"
	"strings"
)

// Kind groups error codes into the categories the API maps to HTTP statuses.
type Kind string

const (
	KindFieldConstraint Kind = "field_constraint"
	KindCrossField      Kind = "cross_field_invariant"
	KindNotFound        Kind = "not_found"
	KindDuplicate       Kind = "duplicate_conflict"
	KindForbidden       Kind = "forbidden"
)

// Error codes surfaced to API clients.
const (
	CodeInvalidField       = "InvalidField"
	CodeInvalidDateRange   = "InvalidDateRange"
	CodePastCheckIn        = "PastCheckIn"
	CodeCapacityExceeded   = "CapacityExceeded"
	CodeSelfReview         = "SelfReview"
	CodeBookingMismatch    = "BookingMismatch"
	CodeIncompleteBooking  = "IncompleteBooking"
	CodeDuplicateReview    = "DuplicateReview"
	CodeListingNotFound    = "ListingNotFound"
	CodeBookingNotFound    = "BookingNotFound"
	CodeReviewNotFound     = "ReviewNotFound"
	CodeUserNotFound       = "UserNotFound"
	CodeListingUnavailable = "ListingUnavailable"
	CodeForbidden          = "Forbidden"
)

// Error is a single structured validation failure. Field is empty for
// failures that are not tied to one input field.
type Error struct {
	Kind    Kind   `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errors is the result of rule evaluation: every violated rule, not just the
// first. A nil or empty slice means the input passed.
type Errors []*Error

func (es Errors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// ErrOrNil converts an empty slice to a nil error so callers can return the
// result directly.
func (es Errors) ErrOrNil() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

// FieldErr builds a single-field constraint violation.
func FieldErr(field, message string) *Error {
	return &Error{Kind: KindFieldConstraint, Code: CodeInvalidField, Field: field, Message: message}
}

// CrossFieldErr builds a cross-field or cross-entity invariant violation.
func CrossFieldErr(code, field, message string) *Error {
	return &Error{Kind: KindCrossField, Code: code, Field: field, Message: message}
}

// NotFoundErr builds an unresolved-reference error.
func NotFoundErr(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// DuplicateErr builds a unique-constraint conflict error.
func DuplicateErr(code, field, message string) *Error {
	return &Error{Kind: KindDuplicate, Code: code, Field: field, Message: message}
}

// ForbiddenErr builds an authorization failure.
func ForbiddenErr(message string) *Error {
	return &Error{Kind: KindForbidden, Code: CodeForbidden, Message: message}
}
