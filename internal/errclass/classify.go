package errclass

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"strings"
	"syscall"
)

// ClassifyStatus maps an HTTP status code to a kind.
// 422 is reported as VALIDATION here; endpoints that overload it handle it
// before calling this.
func ClassifyStatus(code int) Kind {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return KindAuth
	case code == http.StatusNotFound:
		return KindNotFound
	case code == http.StatusUnprocessableEntity:
		return KindValidation
	case code >= 500 && code <= 599:
		return KindServer
	default:
		return KindUnknown
	}
}

var unreachableMarkers = []string{
	"connection refused",
	"no route to host",
	"no such host",
	"unknown host",
	"network is unreachable",
	"connection reset",
}

var timeoutMarkers = []string{
	"timeout",
	"timed out",
	"deadline exceeded",
	"interrupted",
}

// ClassifyError maps a transport error to a kind
func ClassifyError(err error) Kind {
	if err == nil {
		return ""
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.ECONNRESET) {
		return KindNetworkUnreachable
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && !dnsErr.IsTimeout {
		return KindNetworkUnreachable
	}

	// a canceled caller is not a slow server
	if errors.Is(err, context.Canceled) {
		return KindUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return KindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range unreachableMarkers {
		if strings.Contains(msg, marker) {
			return KindNetworkUnreachable
		}
	}
	for _, marker := range timeoutMarkers {
		if strings.Contains(msg, marker) {
			return KindTimeout
		}
	}

	return KindUnknown
}
