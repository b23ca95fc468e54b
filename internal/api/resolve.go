package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/goyguru/datereg-go/internal/apierr"
	"github.com/goyguru/datereg-go/internal/types"
)

// ResolveUsername turns a username into the full identity record the server
// holds for the account.
func ResolveUsername(ctx context.Context, httpClient *http.Client, baseURL, username string) (*types.Identity, error) {
	username, err := types.NormalizeUsername(username)
	if err != nil {
		return nil, err
	}
	query := url.Values{"username": {username}}
	var id types.Identity
	if err := get(ctx, httpClient, baseURL, epResolveUsername, query, &id); err != nil {
		return nil, err
	}
	if id.ID == 0 {
		return nil, apierr.NewMissingFieldError(http.StatusOK, "id")
	}
	return &id, nil
}
