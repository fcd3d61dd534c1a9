package model

import "time"

type Moderator struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `json:"username" gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
