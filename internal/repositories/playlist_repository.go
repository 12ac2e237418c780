package repositories

import (
	"context"
	"errors"
	"time"

	"cinevault/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Insert(ctx context.Context, playlist *db_models.Playlist) error
	FindById(ctx context.Context, id string) (*db_models.Playlist, error)
	FindByOwner(ctx context.Context, accountID uuid.UUID) ([]db_models.Playlist, error)
	FindPublicByOwner(ctx context.Context, accountID uuid.UUID) ([]db_models.Playlist, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	CountItems(ctx context.Context, playlistID uuid.UUID) (int64, error)
	ToggleItem(ctx context.Context, item *db_models.PlaylistItem) (bool, error)
	DeleteItem(ctx context.Context, playlistID uuid.UUID, itemID string) (int64, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Insert(ctx context.Context, playlist *db_models.Playlist) error {
	return r.db.WithContext(ctx).Create(playlist).Error
}

func (r *playlistRepository) FindById(ctx context.Context, id string) (*db_models.Playlist, error) {
	var playlist db_models.Playlist
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&playlist, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &playlist, nil
}

func (r *playlistRepository) FindByOwner(ctx context.Context, accountID uuid.UUID) ([]db_models.Playlist, error) {
	var playlists []db_models.Playlist
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("account_id = ?", accountID).
		Order("updated_at DESC").
		Find(&playlists).Error
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *playlistRepository) FindPublicByOwner(ctx context.Context, accountID uuid.UUID) ([]db_models.Playlist, error) {
	var playlists []db_models.Playlist
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("account_id = ? AND is_public = ?", accountID, true).
		Order("updated_at DESC").
		Find(&playlists).Error
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *playlistRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Playlist{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("playlist_id = ?", id).Delete(&db_models.PlaylistItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("id = ?", id).Delete(&db_models.Playlist{}).Error
	})
}

func (r *playlistRepository) CountItems(ctx context.Context, playlistID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PlaylistItem{}).
		Where("playlist_id = ?", playlistID).
		Count(&count).Error
	return count, err
}

func (r *playlistRepository) ToggleItem(ctx context.Context, item *db_models.PlaylistItem) (bool, error) {
	var added bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().
			Where("playlist_id = ? AND media_type = ? AND media_id = ?",
				item.PlaylistID, item.MediaType, item.MediaID).
			Delete(&db_models.PlaylistItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			added = false
		} else {
			if err := tx.Create(item).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					added = true
				} else {
					return err
				}
			} else {
				added = true
			}
		}

		// Item churn counts as an update to the parent list.
		return tx.Model(&db_models.Playlist{}).
			Where("id = ?", item.PlaylistID).
			Update("updated_at", time.Now().Unix()).Error
	})

	return added, err
}

func (r *playlistRepository) DeleteItem(ctx context.Context, playlistID uuid.UUID, itemID string) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND playlist_id = ?", itemID, playlistID).
		Delete(&db_models.PlaylistItem{})
	return res.RowsAffected, res.Error
}
