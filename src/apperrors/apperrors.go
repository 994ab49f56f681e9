// Package apperrors carries the error kinds the services raise and the
// controllers translate into HTTP statuses. Kinds form a closed set so
// handlers can switch exhaustively instead of comparing error strings.
package apperrors

import "errors"

type Kind int

const (
	KindNotFound Kind = iota
	KindUnauthorized
	KindPaymentRequired
	KindNoVacancies
	KindNoExistingBooking
	KindValidation
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindUnauthorized:
		return "Unauthorized"
	case KindPaymentRequired:
		return "PaymentRequired"
	case KindNoVacancies:
		return "NoVacancies"
	case KindNoExistingBooking:
		return "NoExistingBooking"
	case KindValidation:
		return "Validation"
	case KindForbidden:
		return "Forbidden"
	}
	return "Unknown"
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "no result for this search"}
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "you must be signed in to continue"}
}

func PaymentRequired() *Error {
	return &Error{Kind: KindPaymentRequired, Message: "payment required"}
}

func NoVacancies() *Error {
	return &Error{Kind: KindNoVacancies, Message: "no vacancies available"}
}

// NoExistingBooking marks an update attempt by a user who has no
// booking. It shares the booking routes' fallback status but stays
// distinguishable in code and logs.
func NoExistingBooking() *Error {
	return &Error{Kind: KindNoExistingBooking, Message: "no existing booking for this user"}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "access denied"}
}

// KindOf reports the kind of err when it wraps an *Error. The second
// return is false for plain errors, which handlers fold into their
// route's fallback status.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}
