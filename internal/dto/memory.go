package dto

// CreateMemoryRequest is the body of POST /api/memories.
type CreateMemoryRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// MemoryPatch is the body of PATCH /api/memories/:id. A null tags field
// clears the list.
type MemoryPatch struct {
	Title   Optional[string]   `json:"title"`
	Content Optional[string]   `json:"content"`
	Tags    Optional[[]string] `json:"tags"`
}
