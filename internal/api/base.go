package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/goyguru/datereg-go/internal/apierr"
)

// Endpoint paths are the remote service's contract.
const (
	epCreationDateFast       = "/users/getCreationDateFast"
	epCreationDateSmart      = "/users/getCreationDateSmart"
	epCreationDateByUsername = "/users/getCreationDateByUsername"
	epResolveUsername        = "/users/resolveUsername"
)

// get performs one GET round trip for endpoint with the given query values
// and decodes a 200 body into out. The token travels in the transport layer,
// not here. Non-success statuses come back as *apierr.Error; transport
// failures pass through untouched.
func get(ctx context.Context, httpClient *http.Client, baseURL, endpoint string, query url.Values, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	reqURL := fmt.Sprintf("%s%s?%s", baseURL, endpoint, query.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		requestFailuresTotal.WithLabelValues(endpoint).Inc()
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		return apierr.FromResponse(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierr.NewDecodeError(resp.StatusCode, err)
	}
	return nil
}
