package model

import "time"

type Prompt struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Priority  int       `json:"priority" gorm:"not null;default:1;index"` // selection weight, >= 1
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PromptWithCount is a Prompt annotated with the number of submissions made against it.
type PromptWithCount struct {
	Prompt
	SubmissionCount int64
}
