package model

import "time"

type SubmissionStatus string

const (
	StatusPending    SubmissionStatus = "pending"
	StatusVerified   SubmissionStatus = "verified"
	StatusUnverified SubmissionStatus = "unverified"
)

// Valid reports whether s is one of the known moderation states.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusUnverified:
		return true
	}
	return false
}

type Submission struct {
	ID           uint             `gorm:"primarykey" json:"id"`
	PromptID     uint             `json:"prompt_id" gorm:"not null;index"`
	Prompt       Prompt           `json:"prompt,omitempty" gorm:"foreignKey:PromptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ImageURL     string           `json:"image_url" gorm:"size:500;not null"`
	PublicID     string           `json:"public_id" gorm:"size:200;not null"`
	Status       SubmissionStatus `json:"status" gorm:"size:10;not null;default:'pending';index"`
	Notes        *string          `json:"notes,omitempty" gorm:"type:text"`
	VerifiedByID *uint            `json:"verified_by_id,omitempty" gorm:"index"`
	VerifiedBy   *Moderator       `json:"verified_by,omitempty" gorm:"foreignKey:VerifiedByID;constraint:OnDelete:SET NULL;"`
	SubmittedAt  time.Time        `json:"submitted_at" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
