package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestGoogleBooksClient(baseURL string) *GoogleBooksClient {
	return &GoogleBooksClient{
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		baseURL:     baseURL,
		rateLimiter: newRateLimiter(0), // No rate limiting for tests
	}
}

func TestGoogleBooks_LookupByISBN(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/books/v1/volumes" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if q := r.URL.Query().Get("q"); q != "isbn:9780321765723" {
			t.Errorf("unexpected query %q", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [{
				"volumeInfo": {
					"title": "The Go Programming Language",
					"authors": ["Alan A. A. Donovan", "Brian W. Kernighan"],
					"pageCount": 380,
					"description": "The authoritative resource.",
					"imageLinks": {"thumbnail": "http://books.google.com/thumb.jpg"}
				}
			}]
		}`))
	}))
	defer server.Close()

	client := newTestGoogleBooksClient(server.URL)

	result, err := client.LookupByISBN(context.Background(), "9780321765723")
	if err != nil {
		t.Fatalf("LookupByISBN failed: %v", err)
	}

	if result.Title != "The Go Programming Language" {
		t.Errorf("expected Go book title, got %q", result.Title)
	}
	if result.Author != "Alan A. A. Donovan, Brian W. Kernighan" {
		t.Errorf("expected joined authors, got %q", result.Author)
	}
	if result.Pages != 380 {
		t.Errorf("expected 380 pages, got %d", result.Pages)
	}
	if result.ISBN != "9780321765723" {
		t.Errorf("expected queried ISBN echoed back, got %q", result.ISBN)
	}
	if result.Thumbnail != "http://books.google.com/thumb.jpg" {
		t.Errorf("unexpected thumbnail %q", result.Thumbnail)
	}
}

func TestGoogleBooks_LookupByISBN_NoItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	}))
	defer server.Close()

	client := newTestGoogleBooksClient(server.URL)

	_, err := client.LookupByISBN(context.Background(), "9780306406157")
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("expected ErrNoMatch, got %v", err)
	}
}

func TestGoogleBooks_LookupByISBN_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestGoogleBooksClient(server.URL)

	_, err := client.LookupByISBN(context.Background(), "9780306406157")
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestGoogleBooks_LookupByISBN_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [{`))
	}))
	defer server.Close()

	client := newTestGoogleBooksClient(server.URL)

	_, err := client.LookupByISBN(context.Background(), "9780306406157")
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
}
