package dto

// PromptCreateRequest is used by moderators to add a prompt.
type PromptCreateRequest struct {
	Text     string `json:"text" binding:"required"`
	Priority *int   `json:"priority" binding:"omitempty,min=1"`
}

// SubmissionCreateRequest carries the multipart fields of a contributor submission.
// The image itself is read from the "image" form file.
type SubmissionCreateRequest struct {
	PromptID uint `form:"prompt" binding:"required"`
}

// ReviewRequest is a partial update of a submission by a moderator.
type ReviewRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=verified unverified"`
	Notes  *string `json:"notes"`
}

// BulkReviewRequest moves every listed submission to the same status.
type BulkReviewRequest struct {
	IDs    []uint `json:"ids" binding:"required,min=1"`
	Status string `json:"status" binding:"required,oneof=verified unverified"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
