package request_models

// ToggleListRequest is the shared body for the favorites, watchlist and
// watch-later toggle endpoints. Type is "movie" or "tv"; ID is the external
// catalog id. Title and poster are snapshotted onto the stored entry.
type ToggleListRequest struct {
	Type       string `json:"type" binding:"required"`
	ID         int64  `json:"id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	PosterPath string `json:"posterPath"`
}
