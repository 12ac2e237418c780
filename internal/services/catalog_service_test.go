package services

import (
	"context"
	"errors"
	"testing"

	"cinevault/pkg/utils"
)

// Validation runs before any upstream call, so a nil client is fine here.
func TestCatalogValidation(t *testing.T) {
	svc := NewCatalogService(nil)
	ctx := context.Background()

	if _, err := svc.Trending(ctx, "book", "en-US"); !errors.Is(err, utils.ErrInvalidMediaType) {
		t.Errorf("trending book: err = %v, want ErrInvalidMediaType", err)
	}
	if _, err := svc.Details(ctx, "all", 1, "en-US"); !errors.Is(err, utils.ErrInvalidMediaType) {
		t.Errorf("details all: err = %v, want ErrInvalidMediaType", err)
	}
	if _, err := svc.Videos(ctx, "", 1); !errors.Is(err, utils.ErrInvalidMediaType) {
		t.Errorf("videos empty type: err = %v, want ErrInvalidMediaType", err)
	}
	if _, err := svc.Search(ctx, "", "en-US"); !errors.Is(err, utils.ErrMissingFields) {
		t.Errorf("empty search: err = %v, want ErrMissingFields", err)
	}
}
