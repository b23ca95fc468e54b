package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goyguru/datereg-go/internal/apierr"
	"github.com/goyguru/datereg-go/internal/types"
)

// GetCreationDateFast calls the low-cost estimation endpoint.
func GetCreationDateFast(ctx context.Context, httpClient *http.Client, baseURL string, userID int64) (*types.CreationDate, error) {
	return estimateByID(ctx, httpClient, baseURL, epCreationDateFast, userID)
}

// GetCreationDateSmart calls the higher-accuracy estimation endpoint. The
// estimation itself runs server-side; the response shape matches the fast
// variant.
func GetCreationDateSmart(ctx context.Context, httpClient *http.Client, baseURL string, userID int64) (*types.CreationDate, error) {
	return estimateByID(ctx, httpClient, baseURL, epCreationDateSmart, userID)
}

func estimateByID(ctx context.Context, httpClient *http.Client, baseURL, endpoint string, userID int64) (*types.CreationDate, error) {
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}
	query := url.Values{"user_id": {strconv.FormatInt(userID, 10)}}
	var cd types.CreationDate
	if err := get(ctx, httpClient, baseURL, endpoint, query, &cd); err != nil {
		return nil, err
	}
	if cd.UserID == 0 {
		return nil, apierr.NewMissingFieldError(http.StatusOK, "user_id")
	}
	if cd.CreationDate == "" {
		return nil, apierr.NewMissingFieldError(http.StatusOK, "creation_date")
	}
	return &cd, nil
}

// GetCreationDateByUsername resolves a username to an id server-side and
// runs the smart estimation on it.
func GetCreationDateByUsername(ctx context.Context, httpClient *http.Client, baseURL, username string) (*types.CreationDateByUsername, error) {
	username, err := types.NormalizeUsername(username)
	if err != nil {
		return nil, err
	}
	query := url.Values{"username": {username}}
	var cd types.CreationDateByUsername
	if err := get(ctx, httpClient, baseURL, epCreationDateByUsername, query, &cd); err != nil {
		return nil, err
	}
	if cd.UserID == 0 {
		return nil, apierr.NewMissingFieldError(http.StatusOK, "user_id")
	}
	if cd.CreationDate == "" {
		return nil, apierr.NewMissingFieldError(http.StatusOK, "creation_date")
	}
	return &cd, nil
}
