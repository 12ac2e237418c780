package services

import (
	"sync"
	"testing"
	"time"

	"cinevault/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A fresh connection to ":memory:" gets a fresh database, so the pool
	// must stay on a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Plan{},
		&db_models.MediaListEntry{},
		&db_models.Playlist{},
		&db_models.PlaylistItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func mustCreateAccount(t *testing.T, db *gorm.DB, email string, mutate func(*db_models.Account)) *db_models.Account {
	t.Helper()

	account := &db_models.Account{
		Name:               "Test User",
		Email:              email,
		PasswordHash:       "x",
		Role:               "user",
		SubscriptionPlan:   db_models.PlanNone,
		SubscriptionStatus: db_models.SubStatusInactive,
	}
	if mutate != nil {
		mutate(account)
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("create account: %v", err)
	}
	return account
}

func unixPtr(ts time.Time) *int64 {
	v := ts.Unix()
	return &v
}

// fakeMailer records outgoing mail instead of talking to an SMTP server.
type fakeMailer struct {
	mu          sync.Mutex
	resetTokens []string
	notices     []string
}

func (f *fakeMailer) SendPasswordReset(to, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetTokens = append(f.resetTokens, token)
	return nil
}

func (f *fakeMailer) SendSubscriptionNotice(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, subject)
	return nil
}

func (f *fakeMailer) lastResetToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.resetTokens) == 0 {
		return ""
	}
	return f.resetTokens[len(f.resetTokens)-1]
}

func newUUIDString() string {
	return uuid.NewString()
}
