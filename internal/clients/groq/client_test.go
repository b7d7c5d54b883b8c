package groq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

func TestGenerateTextSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization got=%q", got)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"תשובה"}}]}`))
	}))
	defer srv.Close()

	c := NewClientWithHTTP(logger.NewNop(), srv.URL, "test-key", "test-model", srv.Client())
	got, err := c.GenerateText(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "תשובה" {
		t.Fatalf("got=%q", got)
	}
}

func TestGenerateTextSurfacesAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"model not found"}}`))
	}))
	defer srv.Close()

	c := NewClientWithHTTP(logger.NewNop(), srv.URL, "test-key", "bad-model", srv.Client())
	if _, err := c.GenerateText(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected error")
	} else if !strings.Contains(err.Error(), "model not found") {
		t.Fatalf("error got=%v", err)
	}
}

func TestGenerateTextRetriesOnRateLimit(t *testing.T) {
	t.Parallel()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"אחרי ניסיון חוזר"}}]}`))
	}))
	defer srv.Close()

	c := &client{
		log:        logger.NewNop(),
		baseURL:    srv.URL,
		apiKey:     "test-key",
		model:      "test-model",
		httpClient: srv.Client(),
		maxRetries: 2,
	}
	got, err := c.GenerateText(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "אחרי ניסיון חוזר" {
		t.Fatalf("got=%q", got)
	}
	if calls != 2 {
		t.Fatalf("calls got=%d want=2", calls)
	}
}

func TestGenerateTextEmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithHTTP(logger.NewNop(), srv.URL, "test-key", "test-model", srv.Client())
	if _, err := c.GenerateText(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
