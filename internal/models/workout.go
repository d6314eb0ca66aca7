package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutType is an immutable catalog entry classifying workouts and plan
// days. Name is the stable business key; Color is a display token for the
// frontend.
type WorkoutType struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Color       string    `gorm:"size:20;not null" json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Workout is a single completed session logged by a user.
type Workout struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	WorkoutTypeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"workout_type_id"`
	DurationMin   int       `gorm:"not null;check:duration_min > 0" json:"duration_min"`
	Calories      int       `gorm:"not null;check:calories >= 0" json:"calories"`
	PerformedAt   time.Time `gorm:"not null;index" json:"performed_at"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User        *User        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	WorkoutType *WorkoutType `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}
