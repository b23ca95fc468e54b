package apierr

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// detailBody is the error envelope the service uses on failure responses.
type detailBody struct {
	Detail string `json:"detail"`
}

// kindFor maps an HTTP status code to the failure class.
func kindFor(statusCode int) Kind {
	switch {
	case statusCode == http.StatusUnauthorized:
		return Authentication
	case statusCode == http.StatusPaymentRequired:
		return Payment
	case statusCode == http.StatusForbidden:
		return Forbidden
	case statusCode == http.StatusNotFound:
		return NotFound
	case statusCode >= 500:
		return Server
	default:
		return Generic
	}
}

// FromResponse builds the typed error for a non-success response. The body
// is drained here; callers must not read it afterwards. The detail comes
// from the service's {"detail": ...} envelope, falling back to the raw body.
func FromResponse(resp *http.Response) *Error {
	detail := ""
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil {
		var db detailBody
		if json.Unmarshal(body, &db) == nil && db.Detail != "" {
			detail = db.Detail
		} else {
			detail = strings.TrimSpace(string(body))
		}
	}
	return &Error{
		Kind:       kindFor(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Detail:     detail,
	}
}

// NewDecodeError reports a successful response whose body could not be
// decoded into the operation's record. Protocol errors stay inside the
// taxonomy as the generic kind so callers never see a bare json error.
func NewDecodeError(statusCode int, cause error) *Error {
	return &Error{
		Kind:       Generic,
		StatusCode: statusCode,
		Detail:     "malformed response body: " + cause.Error(),
	}
}

// NewMissingFieldError reports a successful response that decoded but lacks
// a field the operation's record requires.
func NewMissingFieldError(statusCode int, field string) *Error {
	return &Error{
		Kind:       Generic,
		StatusCode: statusCode,
		Detail:     "response missing required field " + field,
	}
}
