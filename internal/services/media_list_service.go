package services

import (
	"context"

	"cinevault/internal/models/db_models"
	"cinevault/internal/models/request_models"
	"cinevault/internal/models/response_models"
	"cinevault/internal/repositories"
	"cinevault/pkg/utils"

	"github.com/google/uuid"
)

type MediaListServiceInterface interface {
	Toggle(ctx context.Context, accountID string, kind db_models.ListKind, request request_models.ToggleListRequest) (response_models.ToggleResponse, error)
	List(ctx context.Context, accountID string, kind db_models.ListKind) (response_models.MediaListResponse, error)
}

type MediaListService struct {
	listRepo    repositories.MediaListRepository
	accountRepo repositories.AccountRepository
}

func NewMediaListService(listRepo repositories.MediaListRepository, accountRepo repositories.AccountRepository) MediaListServiceInterface {
	return &MediaListService{
		listRepo:    listRepo,
		accountRepo: accountRepo,
	}
}

func validListKind(kind db_models.ListKind) bool {
	switch kind {
	case db_models.ListFavorites, db_models.ListWatchlist, db_models.ListWatchLater:
		return true
	}
	return false
}

func validMediaType(mt db_models.MediaType) bool {
	return mt == db_models.MediaMovie || mt == db_models.MediaTV
}

// Toggle flips the presence of (account, kind, type, id): removes the entry
// if it exists, inserts it otherwise. Two calls in a row always restore the
// original state.
func (s *MediaListService) Toggle(ctx context.Context, accountID string, kind db_models.ListKind, request request_models.ToggleListRequest) (response_models.ToggleResponse, error) {
	if !validListKind(kind) {
		return response_models.ToggleResponse{}, utils.ErrInvalidListKind
	}
	mediaType := db_models.MediaType(request.Type)
	if !validMediaType(mediaType) {
		return response_models.ToggleResponse{}, utils.ErrInvalidMediaType
	}

	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return response_models.ToggleResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.ToggleResponse{}, utils.ErrAccountNotFound
	}

	entry := &db_models.MediaListEntry{
		AccountID:  account.ID,
		ListKind:   kind,
		MediaType:  mediaType,
		MediaID:    request.ID,
		MediaTitle: request.Title,
		PosterPath: request.PosterPath,
	}

	added, err := s.listRepo.Toggle(ctx, entry)
	if err != nil {
		return response_models.ToggleResponse{}, utils.ErrDatabaseError
	}

	action := "removed"
	if added {
		action = "added"
	}
	return response_models.ToggleResponse{Action: action}, nil
}

func (s *MediaListService) List(ctx context.Context, accountID string, kind db_models.ListKind) (response_models.MediaListResponse, error) {
	if !validListKind(kind) {
		return response_models.MediaListResponse{}, utils.ErrInvalidListKind
	}

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return response_models.MediaListResponse{}, utils.ErrAccountNotFound
	}

	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return response_models.MediaListResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.MediaListResponse{}, utils.ErrAccountNotFound
	}

	entries, err := s.listRepo.ListByKind(ctx, accountUUID, kind)
	if err != nil {
		return response_models.MediaListResponse{}, utils.ErrDatabaseError
	}

	resp := response_models.MediaListResponse{
		Movies: []response_models.ListEntryResponse{},
		Series: []response_models.ListEntryResponse{},
	}
	for _, entry := range entries {
		item := response_models.ListEntryResponse{
			ID:         entry.ID.String(),
			MediaID:    entry.MediaID,
			MediaType:  string(entry.MediaType),
			Title:      entry.MediaTitle,
			PosterPath: entry.PosterPath,
			AddedAt:    entry.CreatedAt,
		}
		if entry.MediaType == db_models.MediaMovie {
			resp.Movies = append(resp.Movies, item)
		} else {
			resp.Series = append(resp.Series, item)
		}
	}

	return resp, nil
}
