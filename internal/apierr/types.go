// Package apierr maps remote failures to the typed error taxonomy the
// DateReg service documents. A single Error type tagged with a Kind keeps
// broad catches (errors.As) and narrow catches (Is* helpers) both cheap.
package apierr

import (
	"errors"
	"fmt"
)

// Kind tags an Error with the failure class derived from the HTTP status.
type Kind int

const (
	// Generic covers unexpected non-success statuses and malformed
	// successful responses.
	Generic Kind = iota

	// Authentication: 401, the API token is invalid or missing.
	Authentication

	// Payment: 402, the remote account balance is exhausted.
	Payment

	// Forbidden: 403, the token is blocked or the method disallowed.
	Forbidden

	// NotFound: 404, endpoint or resource absent.
	NotFound

	// Server: any 5xx.
	Server
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Generic:
		return "Generic"
	case Authentication:
		return "Authentication"
	case Payment:
		return "Payment"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "NotFound"
	case Server:
		return "Server"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error carries the failure class, the HTTP status that produced it and the
// server-supplied detail string.
type Error struct {
	Kind       Kind
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] HTTP %d: %s", e.Kind, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("[%s] HTTP %d", e.Kind, e.StatusCode)
}

// isKind reports whether err is an *Error of the given kind.
func isKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}

// IsAuthentication reports whether err is the 401 authentication error.
func IsAuthentication(err error) bool { return isKind(err, Authentication) }

// IsPayment reports whether err is the 402 payment error.
func IsPayment(err error) bool { return isKind(err, Payment) }

// IsForbidden reports whether err is the 403 forbidden error.
func IsForbidden(err error) bool { return isKind(err, Forbidden) }

// IsNotFound reports whether err is the 404 not-found error.
func IsNotFound(err error) bool { return isKind(err, NotFound) }

// IsServer reports whether err is a 5xx server error.
func IsServer(err error) bool { return isKind(err, Server) }
