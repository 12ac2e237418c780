package response_models

type PlaylistItemResponse struct {
	ID         string `json:"id"`
	MediaID    int64  `json:"mediaId"`
	MediaType  string `json:"mediaType"`
	MediaTitle string `json:"mediaTitle"`
	PosterPath string `json:"posterPath,omitempty"`
	AddedAt    int64  `json:"addedAt"`
}

type PlaylistResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description *string                `json:"description,omitempty"`
	CoverImage  *string                `json:"coverImage,omitempty"`
	IsPublic    bool                   `json:"isPublic"`
	OwnerID     string                 `json:"ownerId"`
	OwnerName   string                 `json:"ownerName,omitempty"`
	ItemCount   int64                  `json:"itemCount"`
	Items       []PlaylistItemResponse `json:"items,omitempty"`
	UpdatedAt   int64                  `json:"updatedAt"`
}

type PlaylistToggleResponse struct {
	Action    string `json:"action"` // "added" | "removed"
	ItemCount int64  `json:"itemCount"`
}
