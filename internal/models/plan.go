package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan is a weekly training schedule owned by a user. WeekStart anchors the
// plan to the Sunday that begins the week it was created in.
type Plan struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	WeekStart   time.Time `gorm:"not null" json:"week_start"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User     *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PlanDays []PlanDay `gorm:"constraint:OnDelete:CASCADE" json:"plan_days"`
}

// PlanDay is one scheduled target session within a plan's week.
// DayOfWeek runs 0 (Sunday) through 6 (Saturday); a plan carries at most one
// entry per weekday.
type PlanDay struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	PlanID         uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_plan_day,priority:1" json:"plan_id"`
	DayOfWeek      int       `gorm:"not null;uniqueIndex:idx_plan_day,priority:2;check:day_of_week >= 0 AND day_of_week <= 6" json:"day_of_week"`
	WorkoutTypeID  uuid.UUID `gorm:"type:varchar(36);not null;index" json:"workout_type_id"`
	TargetDuration int       `gorm:"not null;check:target_duration > 0" json:"target_duration"`
	TargetCalories int       `gorm:"not null;check:target_calories >= 0" json:"target_calories"`
	Description    string    `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	WorkoutType *WorkoutType `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}
