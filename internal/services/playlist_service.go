package services

import (
	"context"
	"strings"

	"cinevault/internal/models/db_models"
	"cinevault/internal/models/request_models"
	"cinevault/internal/models/response_models"
	"cinevault/internal/repositories"
	"cinevault/pkg/utils"

	"github.com/google/uuid"
)

type PlaylistServiceInterface interface {
	Create(ctx context.Context, accountID string, request request_models.CreatePlaylistRequest) (response_models.PlaylistResponse, error)
	ListMine(ctx context.Context, accountID string) ([]response_models.PlaylistResponse, error)
	ListPublicByOwner(ctx context.Context, ownerID string) ([]response_models.PlaylistResponse, error)

	// Get enforces visibility: public playlists are open to anyone,
	// private ones only to their owner (requesterID may be empty for
	// anonymous requests).
	Get(ctx context.Context, playlistID, requesterID string) (response_models.PlaylistResponse, error)
	Update(ctx context.Context, playlistID, accountID string, request request_models.UpdatePlaylistRequest) (response_models.PlaylistResponse, error)
	Delete(ctx context.Context, playlistID, accountID string) error

	ToggleItem(ctx context.Context, playlistID, accountID string, request request_models.PlaylistItemRequest) (response_models.PlaylistToggleResponse, error)
	RemoveItem(ctx context.Context, playlistID, accountID, itemID string) error
}

type PlaylistService struct {
	playlistRepo repositories.PlaylistRepository
	accountRepo  repositories.AccountRepository
}

func NewPlaylistService(playlistRepo repositories.PlaylistRepository, accountRepo repositories.AccountRepository) PlaylistServiceInterface {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		accountRepo:  accountRepo,
	}
}

func (s *PlaylistService) requireAccount(ctx context.Context, accountID string) (*db_models.Account, error) {
	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

// ownedPlaylist loads a playlist and verifies the caller owns it.
func (s *PlaylistService) ownedPlaylist(ctx context.Context, playlistID, accountID string) (*db_models.Playlist, error) {
	playlist, err := s.playlistRepo.FindById(ctx, playlistID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if playlist == nil {
		return nil, utils.ErrPlaylistNotFound
	}
	if playlist.AccountID.String() != accountID {
		return nil, utils.ErrForbidden
	}
	return playlist, nil
}

func (s *PlaylistService) Create(ctx context.Context, accountID string, request request_models.CreatePlaylistRequest) (response_models.PlaylistResponse, error) {
	account, err := s.requireAccount(ctx, accountID)
	if err != nil {
		return response_models.PlaylistResponse{}, err
	}

	title := strings.TrimSpace(request.Title)
	if title == "" {
		return response_models.PlaylistResponse{}, utils.ErrMissingFields
	}

	playlist := &db_models.Playlist{
		AccountID:   account.ID,
		Title:       title,
		Description: trimmedPtr(request.Description),
		CoverImage:  trimmedPtr(request.CoverImage),
		IsPublic:    request.IsPublic,
	}

	if err := s.playlistRepo.Insert(ctx, playlist); err != nil {
		return response_models.PlaylistResponse{}, utils.ErrDatabaseError
	}

	return playlistOf(playlist, account.Name), nil
}

func (s *PlaylistService) ListMine(ctx context.Context, accountID string) ([]response_models.PlaylistResponse, error) {
	account, err := s.requireAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	playlists, err := s.playlistRepo.FindByOwner(ctx, account.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return playlistsOf(playlists, account.Name), nil
}

func (s *PlaylistService) ListPublicByOwner(ctx context.Context, ownerID string) ([]response_models.PlaylistResponse, error) {
	owner, err := s.requireAccount(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	playlists, err := s.playlistRepo.FindPublicByOwner(ctx, owner.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return playlistsOf(playlists, owner.Name), nil
}

func (s *PlaylistService) Get(ctx context.Context, playlistID, requesterID string) (response_models.PlaylistResponse, error) {
	playlist, err := s.playlistRepo.FindById(ctx, playlistID)
	if err != nil {
		return response_models.PlaylistResponse{}, utils.ErrDatabaseError
	}
	if playlist == nil {
		return response_models.PlaylistResponse{}, utils.ErrPlaylistNotFound
	}

	if !playlist.IsPublic && playlist.AccountID.String() != requesterID {
		return response_models.PlaylistResponse{}, utils.ErrForbidden
	}

	ownerName := ""
	if owner, err := s.accountRepo.FindById(ctx, playlist.AccountID.String()); err == nil && owner != nil {
		ownerName = owner.Name
	}

	return playlistOf(playlist, ownerName), nil
}

func (s *PlaylistService) Update(ctx context.Context, playlistID, accountID string, request request_models.UpdatePlaylistRequest) (response_models.PlaylistResponse, error) {
	playlist, err := s.ownedPlaylist(ctx, playlistID, accountID)
	if err != nil {
		return response_models.PlaylistResponse{}, err
	}

	fields := map[string]interface{}{}
	if request.Title != nil {
		title := strings.TrimSpace(*request.Title)
		if title != "" {
			fields["title"] = title
			playlist.Title = title
		}
	}
	if request.Description != nil {
		desc := strings.TrimSpace(*request.Description)
		fields["description"] = desc
		playlist.Description = &desc
	}
	if request.CoverImage != nil {
		cover := strings.TrimSpace(*request.CoverImage)
		fields["cover_image"] = cover
		playlist.CoverImage = &cover
	}
	if request.IsPublic != nil {
		fields["is_public"] = *request.IsPublic
		playlist.IsPublic = *request.IsPublic
	}

	if len(fields) > 0 {
		if err := s.playlistRepo.UpdateFields(ctx, playlist.ID, fields); err != nil {
			return response_models.PlaylistResponse{}, utils.ErrDatabaseError
		}
	}

	return playlistOf(playlist, ""), nil
}

func (s *PlaylistService) Delete(ctx context.Context, playlistID, accountID string) error {
	playlist, err := s.ownedPlaylist(ctx, playlistID, accountID)
	if err != nil {
		return err
	}

	if err := s.playlistRepo.Delete(ctx, playlist.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PlaylistService) ToggleItem(ctx context.Context, playlistID, accountID string, request request_models.PlaylistItemRequest) (response_models.PlaylistToggleResponse, error) {
	mediaType := db_models.MediaType(request.MediaType)
	if !validMediaType(mediaType) {
		return response_models.PlaylistToggleResponse{}, utils.ErrInvalidMediaType
	}

	playlist, err := s.ownedPlaylist(ctx, playlistID, accountID)
	if err != nil {
		return response_models.PlaylistToggleResponse{}, err
	}

	item := &db_models.PlaylistItem{
		PlaylistID: playlist.ID,
		MediaType:  mediaType,
		MediaID:    request.MediaID,
		MediaTitle: request.MediaTitle,
		PosterPath: request.PosterPath,
	}

	added, err := s.playlistRepo.ToggleItem(ctx, item)
	if err != nil {
		return response_models.PlaylistToggleResponse{}, utils.ErrDatabaseError
	}

	count, err := s.playlistRepo.CountItems(ctx, playlist.ID)
	if err != nil {
		return response_models.PlaylistToggleResponse{}, utils.ErrDatabaseError
	}

	action := "removed"
	if added {
		action = "added"
	}
	return response_models.PlaylistToggleResponse{Action: action, ItemCount: count}, nil
}

func (s *PlaylistService) RemoveItem(ctx context.Context, playlistID, accountID, itemID string) error {
	playlist, err := s.ownedPlaylist(ctx, playlistID, accountID)
	if err != nil {
		return err
	}

	if _, err := uuid.Parse(itemID); err != nil {
		return utils.ErrPlaylistItemNotFound
	}

	affected, err := s.playlistRepo.DeleteItem(ctx, playlist.ID, itemID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrPlaylistItemNotFound
	}
	return nil
}

func trimmedPtr(in *string) *string {
	if in == nil {
		return nil
	}
	out := strings.TrimSpace(*in)
	if out == "" {
		return nil
	}
	return &out
}

func playlistOf(playlist *db_models.Playlist, ownerName string) response_models.PlaylistResponse {
	items := make([]response_models.PlaylistItemResponse, 0, len(playlist.Items))
	for _, item := range playlist.Items {
		items = append(items, response_models.PlaylistItemResponse{
			ID:         item.ID.String(),
			MediaID:    item.MediaID,
			MediaType:  string(item.MediaType),
			MediaTitle: item.MediaTitle,
			PosterPath: item.PosterPath,
			AddedAt:    item.CreatedAt,
		})
	}

	return response_models.PlaylistResponse{
		ID:          playlist.ID.String(),
		Title:       playlist.Title,
		Description: playlist.Description,
		CoverImage:  playlist.CoverImage,
		IsPublic:    playlist.IsPublic,
		OwnerID:     playlist.AccountID.String(),
		OwnerName:   ownerName,
		ItemCount:   int64(len(playlist.Items)),
		Items:       items,
		UpdatedAt:   playlist.UpdatedAt,
	}
}

func playlistsOf(playlists []db_models.Playlist, ownerName string) []response_models.PlaylistResponse {
	out := make([]response_models.PlaylistResponse, 0, len(playlists))
	for i := range playlists {
		out = append(out, playlistOf(&playlists[i], ownerName))
	}
	return out
}
