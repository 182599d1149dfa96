package dto

// CreateMemberRequest is the body of POST /api/team. Status defaults to
// "working" when omitted.
type CreateMemberRequest struct {
	Name        string  `json:"name" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	Status      string  `json:"status"`
	Avatar      *string `json:"avatar"`
	Description *string `json:"description"`
}

// MemberPatch is the body of PATCH /api/team/:id.
type MemberPatch struct {
	Name        Optional[string] `json:"name"`
	Role        Optional[string] `json:"role"`
	Status      Optional[string] `json:"status"`
	Avatar      Optional[string] `json:"avatar"`
	Description Optional[string] `json:"description"`
}
