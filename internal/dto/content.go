package dto

// CreateContentRequest is the body of POST /api/content. Stage defaults to
// "idea" when omitted.
type CreateContentRequest struct {
	Title        string  `json:"title" binding:"required"`
	Stage        string  `json:"stage"`
	Script       *string `json:"script"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Notes        *string `json:"notes"`
}

// ContentPatch is the body of PATCH /api/content/:id.
type ContentPatch struct {
	Title        Optional[string] `json:"title"`
	Stage        Optional[string] `json:"stage"`
	Script       Optional[string] `json:"script"`
	ThumbnailURL Optional[string] `json:"thumbnail_url"`
	Notes        Optional[string] `json:"notes"`
}
