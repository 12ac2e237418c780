package services

import (
	"context"
	"fmt"
	"log"

	"cinevault/pkg/utils"
)

// CatalogServiceInterface proxies the third-party metadata provider. All
// upstream failures surface as utils.ErrUpstreamFailure; the client simply
// re-issues the request.
type CatalogServiceInterface interface {
	Trending(ctx context.Context, mediaType, language string) ([]utils.TMDBItem, error)
	Search(ctx context.Context, query, language string) ([]utils.TMDBItem, error)
	Details(ctx context.Context, mediaType string, id int64, language string) (*utils.TMDBItem, error)
	Recommendations(ctx context.Context, mediaType string, id int64, language string) ([]utils.TMDBItem, error)
	Videos(ctx context.Context, mediaType string, id int64) ([]utils.TMDBVideo, error)
}

type CatalogService struct {
	tmdb *utils.TMDBClient
}

func NewCatalogService(tmdb *utils.TMDBClient) CatalogServiceInterface {
	return &CatalogService{tmdb: tmdb}
}

func trendingMediaType(mediaType string) bool {
	return mediaType == "movie" || mediaType == "tv" || mediaType == "all"
}

func detailMediaType(mediaType string) bool {
	return mediaType == "movie" || mediaType == "tv"
}

func (c *CatalogService) Trending(ctx context.Context, mediaType, language string) ([]utils.TMDBItem, error) {
	if !trendingMediaType(mediaType) {
		return nil, utils.ErrInvalidMediaType
	}

	items, err := c.tmdb.Trending(ctx, mediaType, language)
	if err != nil {
		log.Printf("Catalog trending fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	return items, nil
}

func (c *CatalogService) Search(ctx context.Context, query, language string) ([]utils.TMDBItem, error) {
	if query == "" {
		return nil, utils.ErrMissingFields
	}

	items, err := c.tmdb.Search(ctx, query, language)
	if err != nil {
		log.Printf("Catalog search failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	return items, nil
}

func (c *CatalogService) Details(ctx context.Context, mediaType string, id int64, language string) (*utils.TMDBItem, error) {
	if !detailMediaType(mediaType) {
		return nil, utils.ErrInvalidMediaType
	}

	item, err := c.tmdb.Details(ctx, mediaType, id, language)
	if err != nil {
		log.Printf("Catalog details fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	return item, nil
}

func (c *CatalogService) Recommendations(ctx context.Context, mediaType string, id int64, language string) ([]utils.TMDBItem, error) {
	if !detailMediaType(mediaType) {
		return nil, utils.ErrInvalidMediaType
	}

	items, err := c.tmdb.Recommendations(ctx, mediaType, id, language)
	if err != nil {
		log.Printf("Catalog recommendations fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	return items, nil
}

func (c *CatalogService) Videos(ctx context.Context, mediaType string, id int64) ([]utils.TMDBVideo, error) {
	if !detailMediaType(mediaType) {
		return nil, utils.ErrInvalidMediaType
	}

	videos, err := c.tmdb.Videos(ctx, mediaType, id)
	if err != nil {
		log.Printf("Catalog videos fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	return videos, nil
}
