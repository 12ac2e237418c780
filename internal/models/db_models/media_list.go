package db_models

import (
	"github.com/google/uuid"
)

type ListKind string

const (
	ListFavorites  ListKind = "favorites"
	ListWatchlist  ListKind = "watchlist"
	ListWatchLater ListKind = "watch_later"
)

type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// MediaListEntry is a single generic "tagged association" between an account
// and an external catalog item. ListKind discriminates favorites, watchlist
// and watch-later instead of keeping three near-identical tables. The
// composite unique index makes the toggle race-safe: two concurrent adds
// cannot both insert.
//
// Title and poster are snapshots taken at insertion time; they are not kept
// in sync with the catalog.
type MediaListEntry struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index;uniqueIndex:idx_media_list_key"`
	ListKind   ListKind  `gorm:"uniqueIndex:idx_media_list_key"`
	MediaType  MediaType `gorm:"uniqueIndex:idx_media_list_key"`
	MediaID    int64     `gorm:"uniqueIndex:idx_media_list_key"`
	MediaTitle string
	PosterPath string

	Account Account `gorm:"foreignKey:AccountID"`
}
