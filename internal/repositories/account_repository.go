package repositories

import (
	"context"
	"errors"

	"cinevault/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// ExpireLapsed is the explicit idempotent expiry correction: a single
	// conditional update that flips an active-but-lapsed subscription to
	// expired and clears the VIP flag. Returns the number of rows changed
	// (0 when nothing was lapsed, so repeated calls are harmless).
	ExpireLapsed(ctx context.Context, id uuid.UUID, now int64) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (a *accountRepository) ExpireLapsed(ctx context.Context, id uuid.UUID, now int64) (int64, error) {
	res := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ? AND subscription_status = ? AND subscription_end_date IS NOT NULL AND subscription_end_date < ?",
			id, db_models.SubStatusActive, now).
		Updates(map[string]interface{}{
			"subscription_status": db_models.SubStatusExpired,
			"is_vip":              false,
		})
	return res.RowsAffected, res.Error
}
