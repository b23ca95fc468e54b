package datereg

import (
	"github.com/goyguru/datereg-go/internal/apierr"
	"github.com/goyguru/datereg-go/internal/types"
)

// APIError is the typed failure returned for any remote error: a Kind tag
// plus the HTTP status and the server-supplied detail. Catch broadly with
// errors.As(&apiErr) or narrowly with the Is* helpers below.
type APIError = apierr.Error

// ErrorKind tags an APIError with its failure class.
type ErrorKind = apierr.Kind

// Failure classes, one per remote status family.
const (
	KindGeneric        = apierr.Generic
	KindAuthentication = apierr.Authentication
	KindPayment        = apierr.Payment
	KindForbidden      = apierr.Forbidden
	KindNotFound       = apierr.NotFound
	KindServer         = apierr.Server
)

// Local validation sentinels, returned before any network I/O. Distinct from
// every remote error; compare with errors.Is.
var (
	ErrInvalidUserID = types.ErrInvalidUserID
	ErrEmptyUsername = types.ErrEmptyUsername
)

// IsAuthentication reports whether err is the 401 authentication error.
func IsAuthentication(err error) bool { return apierr.IsAuthentication(err) }

// IsPayment reports whether err is the 402 payment error.
func IsPayment(err error) bool { return apierr.IsPayment(err) }

// IsForbidden reports whether err is the 403 forbidden error.
func IsForbidden(err error) bool { return apierr.IsForbidden(err) }

// IsNotFound reports whether err is the 404 not-found error.
func IsNotFound(err error) bool { return apierr.IsNotFound(err) }

// IsServer reports whether err is a 5xx server error.
func IsServer(err error) bool { return apierr.IsServer(err) }
