package services

import (
	"context"
	"errors"
	"testing"

	"cinevault/internal/models/request_models"
	"cinevault/internal/repositories"
	"cinevault/pkg/utils"
)

func newPlaylistFixture(t *testing.T) (PlaylistServiceInterface, context.Context, string, string) {
	t.Helper()
	db := openTestDB(t)
	svc := NewPlaylistService(repositories.NewPlaylistRepository(db), repositories.NewAccountRepository(db))
	owner := mustCreateAccount(t, db, "owner@example.com", nil)
	other := mustCreateAccount(t, db, "other@example.com", nil)
	return svc, context.Background(), owner.ID.String(), other.ID.String()
}

func TestPlaylistCreateRequiresTitle(t *testing.T) {
	svc, ctx, ownerID, _ := newPlaylistFixture(t)

	if _, err := svc.Create(ctx, ownerID, request_models.CreatePlaylistRequest{Title: "   "}); !errors.Is(err, utils.ErrMissingFields) {
		t.Errorf("blank title: err = %v, want ErrMissingFields", err)
	}

	created, err := svc.Create(ctx, ownerID, request_models.CreatePlaylistRequest{Title: "  Horror Nights  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Title != "Horror Nights" {
		t.Errorf("title = %q, want trimmed", created.Title)
	}
	if created.IsPublic {
		t.Error("playlists default to private")
	}
}

func TestNonOwnerCannotMutatePlaylist(t *testing.T) {
	svc, ctx, ownerID, otherID := newPlaylistFixture(t)

	created, err := svc.Create(ctx, ownerID, request_models.CreatePlaylistRequest{Title: "Mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newTitle := "Hijacked"
	if _, err := svc.Update(ctx, created.ID, otherID, request_models.UpdatePlaylistRequest{Title: &newTitle}); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("non-owner update: err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, created.ID, otherID); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("non-owner delete: err = %v, want ErrForbidden", err)
	}

	// The failed mutation left the playlist untouched.
	got, err := svc.Get(ctx, created.ID, ownerID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Mine" {
		t.Errorf("title = %q, want unchanged", got.Title)
	}
}

func TestPlaylistVisibility(t *testing.T) {
	svc, ctx, ownerID, otherID := newPlaylistFixture(t)

	private, err := svc.Create(ctx, ownerID, request_models.CreatePlaylistRequest{Title: "Private"})
	if err != nil {
		t.Fatalf("create private: %v", err)
	}
	public, err := svc.Create(ctx, ownerID, request_models.CreatePlaylistRequest{Title: "Public", IsPublic: true})
	if err != nil {
		t.Fatalf("create public: %v", err)
	}

	if _, err := svc.Get(ctx, private.ID, otherID); !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("stranger reads private: err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Get(ctx, private.ID, ""); !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("anonymous reads private: err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Get(ctx, public.ID, ""); err != nil {
		t.Errorf("anonymous reads public: %v", err)
	}

	mine, err := svc.ListMine(ctx, ownerID)
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("owner sees %d playlists, want 2", len(mine))
	}

	visible, err := svc.ListPublicByOwner(ctx, ownerID)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(visible) != 1 || visible[0].Title != "Public" {
		t.Errorf("public listing = %+v, want only the public playlist", visible)
	}
}

func TestPlaylistItemToggleAndRemove(t *testing.T) {
	svc, ctx, ownerID, otherID := newPlaylistFixture(t)

	created, err := svc.Create(ctx, ownerID, request_models.CreatePlaylistRequest{Title: "Queue"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	item := request_models.PlaylistItemRequest{MediaID: 603, MediaType: "movie", MediaTitle: "The Matrix"}

	resp, err := svc.ToggleItem(ctx, created.ID, ownerID, item)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if resp.Action != "added" || resp.ItemCount != 1 {
		t.Errorf("after add: action=%q count=%d", resp.Action, resp.ItemCount)
	}

	if _, err := svc.ToggleItem(ctx, created.ID, otherID, item); !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("non-owner toggle: err = %v, want ErrForbidden", err)
	}

	resp, err = svc.ToggleItem(ctx, created.ID, ownerID, item)
	if err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if resp.Action != "removed" || resp.ItemCount != 0 {
		t.Errorf("after remove: action=%q count=%d", resp.Action, resp.ItemCount)
	}

	if err := svc.RemoveItem(ctx, created.ID, ownerID, newUUIDString()); !errors.Is(err, utils.ErrPlaylistItemNotFound) {
		t.Errorf("remove missing item: err = %v, want ErrPlaylistItemNotFound", err)
	}

	// Add back, then remove by item id.
	if _, err := svc.ToggleItem(ctx, created.ID, ownerID, item); err != nil {
		t.Fatalf("re-add item: %v", err)
	}
	got, err := svc.Get(ctx, created.ID, ownerID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(got.Items))
	}
	if err := svc.RemoveItem(ctx, created.ID, ownerID, got.Items[0].ID); err != nil {
		t.Fatalf("remove by id: %v", err)
	}
	got, err = svc.Get(ctx, created.ID, ownerID)
	if err != nil {
		t.Fatalf("get after remove: %v", err)
	}
	if len(got.Items) != 0 {
		t.Errorf("items = %d, want 0", len(got.Items))
	}
}

func TestPlaylistDeleteCascadesItems(t *testing.T) {
	svc, ctx, ownerID, _ := newPlaylistFixture(t)

	created, err := svc.Create(ctx, ownerID, request_models.CreatePlaylistRequest{Title: "Doomed"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.ToggleItem(ctx, created.ID, ownerID, request_models.PlaylistItemRequest{
		MediaID: 27205, MediaType: "movie", MediaTitle: "Inception",
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	if err := svc.Delete(ctx, created.ID, ownerID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID, ownerID); !errors.Is(err, utils.ErrPlaylistNotFound) {
		t.Errorf("get after delete: err = %v, want ErrPlaylistNotFound", err)
	}
}
