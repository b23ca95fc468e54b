package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goyguru/datereg-go/internal/apierr"
	"github.com/goyguru/datereg-go/internal/types"
)

func TestResolveUsername_Success(t *testing.T) {
	t.Parallel()
	body := `{
		"id": 987654321,
		"first_name": "Pavel",
		"last_name": null,
		"username": "pvxdev",
		"phone": null,
		"premium": true,
		"verified": false,
		"bot": false,
		"access_hash": 111222333,
		"photo": {"photo_id": 5, "dc_id": 2, "has_video": true},
		"usernames": [{"username": "pvxdev", "editable": true, "active": true}]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/resolveUsername" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("username") != "pvxdev" {
			t.Errorf("unexpected username %q", r.URL.Query().Get("username"))
		}
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := ResolveUsername(context.Background(), srv.Client(), srv.URL, "pvxdev")
	if err != nil {
		t.Fatalf("ResolveUsername: %v", err)
	}
	if got.ID != 987654321 || !got.Premium {
		t.Fatalf("unexpected identity: %+v", got)
	}
	if got.FirstName == nil || *got.FirstName != "Pavel" {
		t.Fatalf("first_name = %v", got.FirstName)
	}
	if got.LastName != nil || got.Phone != nil {
		t.Fatalf("expected nil last_name and phone: %+v", got)
	}
	if got.AccessHash == nil || *got.AccessHash != 111222333 {
		t.Fatalf("access_hash = %v", got.AccessHash)
	}
	if got.Photo == nil || got.Photo.PhotoID != 5 || !got.Photo.HasVideo {
		t.Fatalf("photo = %+v", got.Photo)
	}
	if len(got.Usernames) != 1 || !got.Usernames[0].Editable {
		t.Fatalf("usernames = %+v", got.Usernames)
	}
}

func TestResolveUsername_RawKeepsUnknownFields(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 7, "premium": false, "stories_hidden": true}`))
	}))
	defer srv.Close()
	got, err := ResolveUsername(context.Background(), srv.Client(), srv.URL, "someone")
	if err != nil {
		t.Fatalf("ResolveUsername: %v", err)
	}
	if string(got.Raw["stories_hidden"]) != "true" {
		t.Fatalf("Raw passthrough missing: %v", got.Raw)
	}
}

func TestResolveUsername_EmptyUsername_NoNetworkCall(t *testing.T) {
	t.Parallel()
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer srv.Close()
	for _, name := range []string{"", "@"} {
		if _, err := ResolveUsername(context.Background(), srv.Client(), srv.URL, name); !errors.Is(err, types.ErrEmptyUsername) {
			t.Fatalf("ResolveUsername(%q): got %v, want ErrEmptyUsername", name, err)
		}
	}
	if hits != 0 {
		t.Fatalf("server hit %d times during validation failures", hits)
	}
}

func TestResolveUsername_NotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"username not found"}`))
	}))
	defer srv.Close()
	_, err := ResolveUsername(context.Background(), srv.Client(), srv.URL, "ghost")
	if !apierr.IsNotFound(err) {
		t.Fatalf("got %v, want not-found error", err)
	}
}

func TestResolveUsername_MissingID_GenericError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"premium": true}`))
	}))
	defer srv.Close()
	_, err := ResolveUsername(context.Background(), srv.Client(), srv.URL, "whoever")
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Kind != apierr.Generic {
		t.Fatalf("got %v, want generic error for missing id", err)
	}
}
