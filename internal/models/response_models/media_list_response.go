package response_models

type ListEntryResponse struct {
	ID         string `json:"id"`
	MediaID    int64  `json:"mediaId"`
	MediaType  string `json:"mediaType"`
	Title      string `json:"title"`
	PosterPath string `json:"posterPath,omitempty"`
	AddedAt    int64  `json:"addedAt"`
}

// MediaListResponse splits a list into movies and series, newest first,
// matching the shape the web client renders.
type MediaListResponse struct {
	Movies []ListEntryResponse `json:"movies"`
	Series []ListEntryResponse `json:"series"`
}

type ToggleResponse struct {
	Action string `json:"action"` // "added" | "removed"
}
