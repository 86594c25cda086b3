package geoip

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL}, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestLookupFullLocation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"city":"Chiang Mai","regionName":"Chiang Mai","country":"Thailand"}`)
	})

	got, err := client.Lookup(context.Background())
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != "Chiang Mai, Chiang Mai, Thailand" {
		t.Fatalf("Lookup() = %q", got)
	}
}

func TestLookupElidesEmptyParts(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"city":"","regionName":"","country":"Thailand"}`)
	})

	got, err := client.Lookup(context.Background())
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != "Thailand" {
		t.Fatalf("Lookup() = %q", got)
	}
}

func TestLookupDegradesOnBadStatus(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	got, err := client.Lookup(context.Background())
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != "" {
		t.Fatalf("Lookup() = %q, want empty on bad status", got)
	}
}

func TestLookupDegradesOnMalformedBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	})

	got, err := client.Lookup(context.Background())
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != "" {
		t.Fatalf("Lookup() = %q, want empty on malformed body", got)
	}
}

func TestLookupDegradesOnUnreachableServer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(Config{BaseURL: server.URL}, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	server.Close()

	got, err := client.Lookup(context.Background())
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != "" {
		t.Fatalf("Lookup() = %q, want empty when unreachable", got)
	}
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{BaseURL: ""}); err == nil {
		t.Fatal("expected error for empty base url")
	}
	if _, err := NewClient(Config{BaseURL: "://bad"}); err == nil {
		t.Fatal("expected error for invalid base url")
	}
}
