package request_models

type CreatePlaylistRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	CoverImage  *string `json:"coverImage"`
	IsPublic    bool    `json:"isPublic"`
}

// UpdatePlaylistRequest uses pointers so omitted fields keep their stored
// values.
type UpdatePlaylistRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverImage  *string `json:"coverImage"`
	IsPublic    *bool   `json:"isPublic"`
}

type PlaylistItemRequest struct {
	MediaID    int64  `json:"mediaId" binding:"required"`
	MediaType  string `json:"mediaType" binding:"required"`
	MediaTitle string `json:"mediaTitle" binding:"required"`
	PosterPath string `json:"posterPath"`
}
