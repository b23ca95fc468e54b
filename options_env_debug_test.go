package datereg

import (
	"context"
	"net/http"
	"testing"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("DATEREG_DEBUG", "true")
	c := New("test-token")
	tt, ok := c.http.Transport.(*tokenTransport)
	if !ok {
		t.Fatalf("expected tokenTransport on top, got %T", c.http.Transport)
	}
	if _, ok := tt.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when DATEREG_DEBUG=true, got %T", tt.base)
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	// base transport returns error
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c := New("test-token", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}
