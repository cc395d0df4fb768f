package apiclient

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindTransport is a network failure or a timeout. No response was read.
	KindTransport Kind = iota + 1
	// KindRejected is a non-2xx response carrying a structured {"error": msg} body.
	KindRejected
	// KindUnexpected is a response whose body is not the JSON the call expects.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRejected:
		return "rejected"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

const MsgUnexpectedResponse = "unexpected server response"

type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("apiclient: %s (%d): %s", e.Kind, e.Status, e.Message)
	}

	return fmt.Sprintf("apiclient: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or 0 when err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

// Message returns the server supplied reason for rejected calls and a generic text otherwise.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}

	if e.Kind == KindUnexpected {
		return MsgUnexpectedResponse
	}

	return e.Message
}

// IsStatus reports whether err is a rejected call with the given HTTP status.
func IsStatus(err error, status int) bool {
	var e *Error

	return errors.As(err, &e) && e.Status == status
}
