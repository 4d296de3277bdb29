package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNilClientReturnsNoResults(t *testing.T) {
	c := New("")
	if c != nil {
		t.Fatal("New(\"\") should return nil")
	}
	results, err := c.Search(context.Background(), "hotels in Lisbon", 5)
	if err != nil {
		t.Fatalf("Search() on nil client error = %v", err)
	}
	if results != nil {
		t.Errorf("Search() on nil client = %v, want nil", results)
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.APIKey != "key" || req.Query != "top attractions Lisbon" || req.MaxResults != 5 {
			t.Errorf("request = %+v", req)
		}
		_ = json.NewEncoder(w).Encode(searchResponse{Results: []Result{
			{Title: "Belem Tower", Content: "A 16th century fort", URL: "https://example.com/belem"},
			{Title: "Alfama", Content: "Historic district", URL: "https://example.com/alfama"},
		}})
	}))
	defer srv.Close()

	c := &Client{base: srv.URL, key: "key", hc: &http.Client{Timeout: time.Second}}
	results, err := c.Search(context.Background(), "top attractions Lisbon", 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 || results[0].Title != "Belem Tower" {
		t.Errorf("Search() = %+v", results)
	}
}

func TestSearchTruncatesToMaxResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(searchResponse{Results: make([]Result, 10)})
	}))
	defer srv.Close()

	c := &Client{base: srv.URL, key: "key", hc: srv.Client()}
	results, err := c.Search(context.Background(), "q", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 3 {
		t.Errorf("len(results) = %d, want 3", len(results))
	}
}

func TestSearchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &Client{base: srv.URL, key: "key", hc: srv.Client()}
	if _, err := c.Search(context.Background(), "q", 5); err == nil {
		t.Error("Search() error = nil, want status error")
	}
}
