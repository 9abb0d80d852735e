package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type staticTokens string

func (s staticTokens) Token(context.Context) (string, error) { return string(s), nil }

func TestGetDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trips/7" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Fatalf("expected request id header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"title":"Sri Lanka"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	var out struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	if err := c.Get(context.Background(), "/trips/7", nil, &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.ID != 7 || out.Title != "Sri Lanka" {
		t.Fatalf("unexpected decode: %+v", out)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer id-token" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop(), WithTokenSource(staticTokens("id-token")))
	if err := c.Delete(context.Background(), "/blog-posts/1", nil, nil); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   Kind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindForbidden},
		{http.StatusNotFound, KindNotFound},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusInternalServerError, KindUnknown},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"error":"boom"}`))
		}))
		c := NewClient(srv.URL, time.Second, zerolog.Nop())
		err := c.Get(context.Background(), "/x", nil, nil)
		srv.Close()
		if err == nil {
			t.Fatalf("status %d: expected error", tc.status)
		}
		if KindOf(err) != tc.kind {
			t.Fatalf("status %d: expected kind %v, got %v", tc.status, tc.kind, KindOf(err))
		}
	}
}

func TestErrorMessageFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"You cannot rate your own blog post"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	err := c.Post(context.Background(), "/blog-ratings/1", nil, nil, nil)
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Message != "You cannot rate your own blog post" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestNetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	err := c.Get(context.Background(), "/trips", url.Values{"page": {"0"}}, nil)
	if KindOf(err) != KindUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if IsNotFound(err) {
		t.Fatalf("network failure must not read as not-found")
	}
}
