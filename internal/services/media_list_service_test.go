package services

import (
	"context"
	"errors"
	"testing"

	"cinevault/internal/models/db_models"
	"cinevault/internal/models/request_models"
	"cinevault/internal/repositories"
	"cinevault/pkg/utils"
)

func TestToggleTwiceRestoresState(t *testing.T) {
	db := openTestDB(t)
	svc := NewMediaListService(repositories.NewMediaListRepository(db), repositories.NewAccountRepository(db))
	ctx := context.Background()

	account := mustCreateAccount(t, db, "lists@example.com", nil)
	req := request_models.ToggleListRequest{
		Type:       "movie",
		ID:         550,
		Title:      "Fight Club",
		PosterPath: "/poster.jpg",
	}

	first, err := svc.Toggle(ctx, account.ID.String(), db_models.ListFavorites, req)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if first.Action != "added" {
		t.Errorf("first action = %q, want added", first.Action)
	}

	var count int64
	db.Model(&db_models.MediaListEntry{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows after add = %d, want 1", count)
	}

	second, err := svc.Toggle(ctx, account.ID.String(), db_models.ListFavorites, req)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Action != "removed" {
		t.Errorf("second action = %q, want removed", second.Action)
	}

	// Hard delete: no row left to collide with a later re-add.
	db.Unscoped().Model(&db_models.MediaListEntry{}).Count(&count)
	if count != 0 {
		t.Fatalf("rows after remove = %d, want 0", count)
	}
}

func TestToggleKindsAreIndependent(t *testing.T) {
	db := openTestDB(t)
	svc := NewMediaListService(repositories.NewMediaListRepository(db), repositories.NewAccountRepository(db))
	ctx := context.Background()

	account := mustCreateAccount(t, db, "kinds@example.com", nil)
	req := request_models.ToggleListRequest{Type: "tv", ID: 1399, Title: "Game of Thrones"}

	for _, kind := range []db_models.ListKind{db_models.ListFavorites, db_models.ListWatchlist, db_models.ListWatchLater} {
		resp, err := svc.Toggle(ctx, account.ID.String(), kind, req)
		if err != nil {
			t.Fatalf("toggle %s: %v", kind, err)
		}
		if resp.Action != "added" {
			t.Errorf("toggle %s action = %q, want added", kind, resp.Action)
		}
	}

	// Removing from one list leaves the other two intact.
	if _, err := svc.Toggle(ctx, account.ID.String(), db_models.ListWatchlist, req); err != nil {
		t.Fatalf("remove from watchlist: %v", err)
	}

	for kind, want := range map[db_models.ListKind]int{
		db_models.ListFavorites:  1,
		db_models.ListWatchlist:  0,
		db_models.ListWatchLater: 1,
	} {
		list, err := svc.List(ctx, account.ID.String(), kind)
		if err != nil {
			t.Fatalf("list %s: %v", kind, err)
		}
		if got := len(list.Movies) + len(list.Series); got != want {
			t.Errorf("%s has %d entries, want %d", kind, got, want)
		}
	}
}

func TestToggleValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewMediaListService(repositories.NewMediaListRepository(db), repositories.NewAccountRepository(db))
	ctx := context.Background()

	account := mustCreateAccount(t, db, "validate@example.com", nil)

	_, err := svc.Toggle(ctx, account.ID.String(), db_models.ListFavorites, request_models.ToggleListRequest{
		Type: "book", ID: 1, Title: "x",
	})
	if !errors.Is(err, utils.ErrInvalidMediaType) {
		t.Errorf("unknown media type: err = %v, want ErrInvalidMediaType", err)
	}

	_, err = svc.Toggle(ctx, account.ID.String(), db_models.ListKind("history"), request_models.ToggleListRequest{
		Type: "movie", ID: 1, Title: "x",
	})
	if !errors.Is(err, utils.ErrInvalidListKind) {
		t.Errorf("unknown list kind: err = %v, want ErrInvalidListKind", err)
	}

	_, err = svc.Toggle(ctx, newUUIDString(), db_models.ListFavorites, request_models.ToggleListRequest{
		Type: "movie", ID: 1, Title: "x",
	})
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Errorf("missing account: err = %v, want ErrAccountNotFound", err)
	}
}

func TestListSplitsMoviesAndSeries(t *testing.T) {
	db := openTestDB(t)
	svc := NewMediaListService(repositories.NewMediaListRepository(db), repositories.NewAccountRepository(db))
	ctx := context.Background()

	account := mustCreateAccount(t, db, "split@example.com", nil)

	entries := []request_models.ToggleListRequest{
		{Type: "movie", ID: 550, Title: "Fight Club"},
		{Type: "movie", ID: 680, Title: "Pulp Fiction"},
		{Type: "tv", ID: 1399, Title: "Game of Thrones"},
	}
	for _, req := range entries {
		if _, err := svc.Toggle(ctx, account.ID.String(), db_models.ListWatchlist, req); err != nil {
			t.Fatalf("toggle %d: %v", req.ID, err)
		}
	}

	list, err := svc.List(ctx, account.ID.String(), db_models.ListWatchlist)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Movies) != 2 {
		t.Errorf("movies = %d, want 2", len(list.Movies))
	}
	if len(list.Series) != 1 {
		t.Errorf("series = %d, want 1", len(list.Series))
	}
	if len(list.Series) == 1 && list.Series[0].MediaID != 1399 {
		t.Errorf("series entry = %d, want 1399", list.Series[0].MediaID)
	}
}
