package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newFakeTMDB(t *testing.T, handler http.HandlerFunc) *TMDBClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &TMDBClient{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		httpClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestTrendingParsesResults(t *testing.T) {
	client := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending/movie/week" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Error("api key missing from query")
		}
		if r.URL.Query().Get("language") != "pt-BR" {
			t.Errorf("language = %s", r.URL.Query().Get("language"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[{"id":550,"title":"Fight Club","vote_average":8.4}]}`))
	})

	items, err := client.Trending(context.Background(), "movie", "pt-BR")
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(items) != 1 || items[0].ID != 550 || items[0].Title != "Fight Club" {
		t.Errorf("items = %+v", items)
	}
}

func TestSearchSendsQuery(t *testing.T) {
	client := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/multi" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("query") != "the matrix" {
			t.Errorf("query = %s", r.URL.Query().Get("query"))
		}
		w.Write([]byte(`{"page":1,"results":[{"id":603,"title":"The Matrix","media_type":"movie"}]}`))
	})

	items, err := client.Search(context.Background(), "the matrix", "en-US")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 || items[0].MediaType != "movie" {
		t.Errorf("items = %+v", items)
	}
}

func TestGetRejectsNon200(t *testing.T) {
	client := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := client.Details(context.Background(), "movie", 999999, ""); err == nil {
		t.Fatal("expected error for upstream 404")
	}
}

func TestPosterURL(t *testing.T) {
	item := TMDBItem{PosterPath: "/abc.jpg"}
	if got := item.PosterURL(); got != "https://image.tmdb.org/t/p/w500/abc.jpg" {
		t.Errorf("PosterURL = %s", got)
	}
	empty := TMDBItem{}
	if got := empty.PosterURL(); got != "" {
		t.Errorf("PosterURL for empty path = %q", got)
	}
}
