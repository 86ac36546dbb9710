// Package errclass classifies repository failures into a small taxonomy that
// drives retry decisions and user-facing messages.
package errclass

import (
	"errors"
	"fmt"
)

// Kind is the class of a failure
type Kind string

const (
	KindAuth               Kind = "AUTH"
	KindNetworkUnreachable Kind = "NETWORK_UNREACHABLE"
	KindTimeout            Kind = "TIMEOUT"
	KindServer             Kind = "SERVER"
	KindValidation         Kind = "VALIDATION"
	KindNotFound           Kind = "NOT_FOUND"
	KindUnknown            Kind = "UNKNOWN"
)

// Error is a classified failure of one repository operation
type Error struct {
	Body       string
	Err        error
	Kind       Kind
	Message    string
	Op         string
	StatusCode int
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	prefix := string(e.Kind)
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}
	if e.StatusCode != 0 {
		prefix = fmt.Sprintf("%s (HTTP %d)", prefix, e.StatusCode)
	}
	if msg == "" {
		return prefix
	}
	return prefix + ": " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so errors.Is(err, errclass.Auth)
// works against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Op == "" && t.StatusCode == 0 && t.Message == "" && t.Err == nil && e.Kind == t.Kind
}

// Sentinels for errors.Is checks
var (
	Auth               = &Error{Kind: KindAuth}
	NetworkUnreachable = &Error{Kind: KindNetworkUnreachable}
	Timeout            = &Error{Kind: KindTimeout}
	Server             = &Error{Kind: KindServer}
	Validation         = &Error{Kind: KindValidation}
	NotFound           = &Error{Kind: KindNotFound}
	Unknown            = &Error{Kind: KindUnknown}
)

// New creates a classified error with an explicit kind
func New(kind Kind, op, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: cause}
}

// FromStatus classifies a non-success HTTP response.
// message is the server's literal message when one could be extracted.
func FromStatus(op string, statusCode int, message, body string) *Error {
	return &Error{
		Body:       body,
		Kind:       ClassifyStatus(statusCode),
		Message:    message,
		Op:         op,
		StatusCode: statusCode,
	}
}

// FromError classifies a transport-level failure
func FromError(op string, err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		if classified.Op == "" {
			copied := *classified
			copied.Op = op
			return &copied
		}
		return classified
	}
	return &Error{Kind: ClassifyError(err), Op: op, Err: err}
}

// KindOf returns the kind of err, classifying it if needed
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return ClassifyError(err)
}

// Retryable reports whether a caller may reasonably retry the operation.
// Only unreachable networks and server-side failures qualify.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindNetworkUnreachable, KindServer:
		return true
	default:
		return false
	}
}
