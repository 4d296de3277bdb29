package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPlaceholderURL(t *testing.T) {
	got := PlaceholderURL("Belem Tower Lisbon landmark")
	want := "https://source.unsplash.com/800x600/?Belem+Tower+Lisbon+landmark"
	if got != want {
		t.Errorf("PlaceholderURL() = %q, want %q", got, want)
	}
}

func TestSearchWithoutKeyFallsBack(t *testing.T) {
	f := NewFinder("")
	images := f.Search(context.Background(), "hotel lisbon", 1)
	if len(images) != 1 || images[0] != PlaceholderURL("hotel lisbon") {
		t.Errorf("Search() = %v, want placeholder", images)
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "pexels-key" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		if q := r.URL.Query().Get("query"); q != "Belem Tower" {
			t.Errorf("query = %q", q)
		}
		_, _ = w.Write([]byte(`{"photos": [{"src": {"large": "https://images.pexels.com/1.jpg"}}]}`))
	}))
	defer srv.Close()

	f := &Finder{base: srv.URL, key: "pexels-key", hc: srv.Client()}
	images := f.Search(context.Background(), "Belem Tower", 1)
	if len(images) != 1 || images[0] != "https://images.pexels.com/1.jpg" {
		t.Errorf("Search() = %v", images)
	}
}

func TestSearchProviderErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	f := &Finder{base: srv.URL, key: "pexels-key", hc: srv.Client()}
	images := f.Search(context.Background(), "anything", 1)
	if len(images) != 1 || images[0] != PlaceholderURL("anything") {
		t.Errorf("Search() = %v, want placeholder on provider error", images)
	}
}

func TestSearchEmptyPhotosFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"photos": []}`))
	}))
	defer srv.Close()

	f := &Finder{base: srv.URL, key: "pexels-key", hc: srv.Client()}
	images := f.Search(context.Background(), "obscure query", 1)
	if len(images) != 1 || images[0] != PlaceholderURL("obscure query") {
		t.Errorf("Search() = %v, want placeholder for empty photos", images)
	}
}
