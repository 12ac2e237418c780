package db_models

import (
	"github.com/google/uuid"
)

// Playlist is an owner-scoped list container. Deleting a playlist cascades
// to its items.
type Playlist struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"index"`
	Title       string    `gorm:"not null"`
	Description *string
	CoverImage  *string
	IsPublic    bool `gorm:"default:false"`

	Items   []PlaylistItem `gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE"`
	Account Account        `gorm:"foreignKey:AccountID"`
}

// PlaylistItem mirrors MediaListEntry but is keyed by playlist rather than
// account. Same unique-index discipline for the toggle.
type PlaylistItem struct {
	BaseModel
	PlaylistID uuid.UUID `gorm:"index;uniqueIndex:idx_playlist_item_key"`
	MediaType  MediaType `gorm:"uniqueIndex:idx_playlist_item_key"`
	MediaID    int64     `gorm:"uniqueIndex:idx_playlist_item_key"`
	MediaTitle string
	PosterPath string
}
