package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	tmdbBaseURL   = "https://api.themoviedb.org/3"
	tmdbImageBase = "https://image.tmdb.org/t/p/w500"
)

// TMDBItem is the subset of catalog fields the app serves for both movies
// and TV shows. Title is populated for movies, Name for shows.
type TMDBItem struct {
	ID           int     `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	MediaType    string  `json:"media_type,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Genres       []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres,omitempty"`
	Runtime          int `json:"runtime,omitempty"`
	NumberOfSeasons  int `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int `json:"number_of_episodes,omitempty"`
}

// PosterURL returns the full w500 poster URL, or "" when the item has none.
func (m *TMDBItem) PosterURL() string {
	if m.PosterPath == "" {
		return ""
	}
	return tmdbImageBase + m.PosterPath
}

// TMDBVideo is a trailer/teaser entry from the videos endpoint.
type TMDBVideo struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"` // "YouTube"
	Type     string `json:"type"` // "Trailer", "Teaser"
	Official bool   `json:"official"`
}

type tmdbPage struct {
	Page    int        `json:"page"`
	Results []TMDBItem `json:"results"`
}

// TMDBClient is a minimal read-only client over the TMDB v3 API.
type TMDBClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewTMDBClient reads TMDB_API_KEY from the environment.
func NewTMDBClient() (*TMDBClient, error) {
	apiKey := os.Getenv("TMDB_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("tmdb: TMDB_API_KEY is not set")
	}
	return &TMDBClient{
		apiKey:  apiKey,
		baseURL: tmdbBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (c *TMDBClient) query(language string) url.Values {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	if language != "" {
		q.Set("language", language)
	}
	return q
}

// Trending fetches the weekly trending list for "movie", "tv" or "all".
func (c *TMDBClient) Trending(ctx context.Context, mediaType, language string) ([]TMDBItem, error) {
	q := c.query(language)
	var page tmdbPage
	if err := c.get(ctx, fmt.Sprintf("/trending/%s/week?%s", mediaType, q.Encode()), &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Search runs a multi search across movies and TV shows.
func (c *TMDBClient) Search(ctx context.Context, queryText, language string) ([]TMDBItem, error) {
	q := c.query(language)
	q.Set("query", queryText)
	var page tmdbPage
	if err := c.get(ctx, "/search/multi?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Details fetches full details for one movie or TV show.
func (c *TMDBClient) Details(ctx context.Context, mediaType string, id int64, language string) (*TMDBItem, error) {
	q := c.query(language)
	var item TMDBItem
	if err := c.get(ctx, fmt.Sprintf("/%s/%d?%s", mediaType, id, q.Encode()), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Recommendations fetches items related to the given movie or show.
func (c *TMDBClient) Recommendations(ctx context.Context, mediaType string, id int64, language string) ([]TMDBItem, error) {
	q := c.query(language)
	var page tmdbPage
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/recommendations?%s", mediaType, id, q.Encode()), &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Videos fetches trailers/teasers for the given movie or show.
func (c *TMDBClient) Videos(ctx context.Context, mediaType string, id int64) ([]TMDBVideo, error) {
	q := c.query("")
	var result struct {
		Results []TMDBVideo `json:"results"`
	}
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/videos?%s", mediaType, id, q.Encode()), &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *TMDBClient) get(ctx context.Context, path string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("tmdb: not found: %s", path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb: unexpected status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("tmdb: decode response: %w", err)
	}
	return nil
}
