package dto

// CreateTaskRequest is the body of POST /api/tasks. Only the title is
// required; status and assignee fall back to the board defaults.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Assignee    string  `json:"assignee"`
	Priority    *string `json:"priority"`
}

// TaskPatch is the body of PATCH /api/tasks/:id. Every field is an Optional
// slot: omitted fields keep their stored value.
type TaskPatch struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Status      Optional[string] `json:"status"`
	Assignee    Optional[string] `json:"assignee"`
	Priority    Optional[string] `json:"priority"`
}
