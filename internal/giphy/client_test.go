package giphy

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const wellFormedBody = `{
	"data": [
		{
			"id": "abc",
			"title": "Cat",
			"images": {
				"original": {"url": "http://x/o.gif", "width": "480", "height": "270"},
				"fixed_width": {"url": "http://x/f.gif", "width": "200", "height": "113"}
			}
		}
	],
	"pagination": {"total_count": 1},
	"meta": {"status": 200}
}`

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(&Config{BaseURL: srv.URL}), srv
}

func TestFetchTrending(t *testing.T) {
	var gotPath, gotKey string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(wellFormedBody))
	})
	defer srv.Close()

	resp, err := client.FetchTrending(context.Background(), "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1/gifs/trending" {
		t.Errorf("expected path /v1/gifs/trending, got %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("expected api_key test-key, got %q", gotKey)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Data))
	}
	item := resp.Data[0]
	if item.ID != "abc" || item.Title != "Cat" {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.Images.FixedWidth.Width != "200" {
		t.Errorf("expected fixed_width width 200, got %q", item.Images.FixedWidth.Width)
	}
}

func TestFetchTrendingEmptyFeed(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": []}`))
	})
	defer srv.Close()

	resp, err := client.FetchTrending(context.Background(), "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("expected empty feed, got %d items", len(resp.Data))
	}
}

func TestFetchTrendingAuthError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.FetchTrending(context.Background(), "bad-key")
		srv.Close()

		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("status %d: expected AuthError, got %v", status, err)
		}
		if authErr.StatusCode != status {
			t.Errorf("expected status %d, got %d", status, authErr.StatusCode)
		}
	}
}

func TestFetchTrendingAPIError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := client.FetchTrending(context.Background(), "test-key")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", apiErr.StatusCode)
	}
}

func TestFetchTrendingDecodeError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"data": [`},
		{name: "missing data field", body: `{"meta": {"status": 200}}`},
		{name: "wrong data type", body: `{"data": "nope"}`},
		{name: "item missing id", body: `{"data": [{"title": "Cat", "images": {"original": {"url": "u"}, "fixed_width": {"url": "u"}}}]}`},
		{name: "item missing original url", body: `{"data": [{"id": "abc", "images": {"original": {}, "fixed_width": {"url": "u"}}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			})
			defer srv.Close()

			_, err := client.FetchTrending(context.Background(), "test-key")

			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected DecodeError, got %v", err)
			}
		})
	}
}

func TestFetchTrendingTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(&Config{BaseURL: srv.URL})
	srv.Close() // connection refused from here on

	_, err := client.FetchTrending(context.Background(), "test-key")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestFetchTrendingCancelledContext(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(wellFormedBody))
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchTrending(ctx, "test-key")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError for cancelled context, got %v", err)
	}
}
