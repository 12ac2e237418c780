package repositories

import (
	"context"
	"errors"

	"cinevault/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaListRepository interface {
	// Toggle deletes the entry when it exists, otherwise inserts it.
	// Returns true when the call ended with the entry present ("added").
	Toggle(ctx context.Context, entry *db_models.MediaListEntry) (bool, error)
	ListByKind(ctx context.Context, accountID uuid.UUID, kind db_models.ListKind) ([]db_models.MediaListEntry, error)
}

type mediaListRepository struct {
	db *gorm.DB
}

func NewMediaListRepository(db *gorm.DB) MediaListRepository {
	return &mediaListRepository{db: db}
}

func (r *mediaListRepository) Toggle(ctx context.Context, entry *db_models.MediaListEntry) (bool, error) {
	var added bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Removals are permanent, not soft deletes; a soft-deleted row would
		// still occupy the unique index and block re-adding.
		res := tx.Unscoped().
			Where("account_id = ? AND list_kind = ? AND media_type = ? AND media_id = ?",
				entry.AccountID, entry.ListKind, entry.MediaType, entry.MediaID).
			Delete(&db_models.MediaListEntry{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			added = false
			return nil
		}

		if err := tx.Create(entry).Error; err != nil {
			// A concurrent toggle inserted first; the entry is present,
			// which is what this caller asked for.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				added = true
				return nil
			}
			return err
		}
		added = true
		return nil
	})

	return added, err
}

func (r *mediaListRepository) ListByKind(ctx context.Context, accountID uuid.UUID, kind db_models.ListKind) ([]db_models.MediaListEntry, error) {
	var entries []db_models.MediaListEntry
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND list_kind = ?", accountID, kind).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
