package models

import (
	"time"

	"github.com/google/uuid"
)

// User owns logged workouts and weekly plans.
type User struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
