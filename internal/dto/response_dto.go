package dto

import "time"

// PromptResponse is the public view of a prompt handed to contributors.
type PromptResponse struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// PromptSummaryResponse is the moderator view of a prompt.
type PromptSummaryResponse struct {
	ID              uint      `json:"id"`
	Text            string    `json:"text"`
	Priority        int       `json:"priority"`
	SubmissionCount int64     `json:"submission_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// ModeratorSubmissionResponse is how moderators see a submission.
type ModeratorSubmissionResponse struct {
	ID          uint      `json:"id"`
	PromptText  string    `json:"prompt_text"`
	ImageURL    string    `json:"image_url"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes"`
	SubmittedBy string    `json:"submitted_by"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type BulkReviewResponse struct {
	Updated int64 `json:"updated"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
