package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/uspp-raketa/vertexsim/pkg/cache"
)

func TestClientGetText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Write([]byte("hello page"))
	}))
	defer server.Close()

	client := NewClient(cache.NewNullCache(), "test:", time.Hour, nil)
	client.http = server.Client()

	got, err := client.GetText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if got != "hello page" {
		t.Errorf("GetText = %q, want %q", got, "hello page")
	}
}

func TestClientGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "hello"}`))
	}))
	defer server.Close()

	client := NewClient(cache.NewNullCache(), "test:", time.Hour, nil)
	client.http = server.Client()

	var resp struct {
		Message string `json:"message"`
	}
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientHeaders(t *testing.T) {
	var agent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := NewClient(cache.NewNullCache(), "test:", time.Hour, map[string]string{"User-Agent": "vertexsim-test"})
	client.http = server.Client()

	if _, err := client.GetText(context.Background(), server.URL); err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if agent != "vertexsim-test" {
		t.Errorf("User-Agent = %q, want %q", agent, "vertexsim-test")
	}
}

func TestClientStatusErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantErr   error
		retryable bool
	}{
		{name: "NotFound", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "ServerError", status: http.StatusInternalServerError, wantErr: ErrNetwork, retryable: true},
		{name: "ClientError", status: http.StatusForbidden, wantErr: ErrNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(cache.NewNullCache(), "test:", time.Hour, nil)
			client.http = server.Client()

			_, err := client.GetText(context.Background(), server.URL)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if IsRetryable(err) != tt.retryable {
				t.Errorf("IsRetryable = %t, want %t", IsRetryable(err), tt.retryable)
			}
			if calls != 1 {
				t.Errorf("calls = %d, want 1 (GetText does not retry)", calls)
			}
		})
	}
}

func TestClientCached(t *testing.T) {
	ctx := context.Background()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer store.Close()

	client := NewClient(store, "test:", time.Hour, nil)
	client.http = server.Client()

	fetch := func() ([]byte, error) {
		text, err := client.GetText(ctx, server.URL)
		return []byte(text), err
	}

	data, hit, err := client.Cached(ctx, "page", false, fetch)
	if err != nil {
		t.Fatalf("Cached: %v", err)
	}
	if hit || string(data) != "payload" {
		t.Errorf("first Cached = %q, hit=%t, want fetched payload", data, hit)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	data, hit, err = client.Cached(ctx, "page", false, fetch)
	if err != nil {
		t.Fatalf("Cached: %v", err)
	}
	if !hit || string(data) != "payload" {
		t.Errorf("second Cached = %q, hit=%t, want cache hit", data, hit)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 after a cache hit", calls)
	}

	// refresh bypasses the lookup and refetches.
	if _, hit, err = client.Cached(ctx, "page", true, fetch); err != nil || hit {
		t.Errorf("refresh Cached hit=%t err=%v, want refetch", hit, err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2 after refresh", calls)
	}
}

func TestClientCachedError(t *testing.T) {
	ctx := context.Background()
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer store.Close()

	client := NewClient(store, "test:", time.Hour, nil)

	_, _, err = client.Cached(ctx, "page", false, func() ([]byte, error) {
		return nil, ErrNotFound
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Cached err = %v, want ErrNotFound", err)
	}

	// Nothing was stored for the failed fetch.
	if _, hit, _ := client.Cached(ctx, "page", false, func() ([]byte, error) {
		return []byte("fresh"), nil
	}); hit {
		t.Error("failed fetch left a cache entry")
	}
}
