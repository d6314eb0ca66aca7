// Package seed builds the initial FitTrack dataset: the workout type
// catalog, a demo user, a few logged workouts, and a beginner weekly plan.
//
// The procedure is not idempotent. Running it against an already-seeded
// store fails on the unique constraints for workout type names and the demo
// user's email, possibly after some records were written. Clear the store
// first, or accept the abort.
package seed

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
)

// Demo account created by every seed run.
const (
	DemoEmail    = "demo@fittrack.com"
	DemoName     = "Demo User"
	demoPassword = "demo-password-123"
)

// DefaultTypes is the fixed workout category catalog, in display order.
var DefaultTypes = []TypeSpec{
	{
		Name:        "Cardio",
		Description: "Cardiovascular exercises to improve heart health and endurance",
		Color:       "#10b981", // Emerald
	},
	{
		Name:        "Strength",
		Description: "Resistance training to build muscle strength and mass",
		Color:       "#3b82f6", // Blue
	},
	{
		Name:        "Yoga",
		Description: "Mind-body practice combining physical poses, breathing, and meditation",
		Color:       "#f59e0b", // Amber
	},
	{
		Name:        "Swimming",
		Description: "Full-body workout in water, excellent for joints and cardiovascular health",
		Color:       "#06b6d4", // Cyan
	},
	{
		Name:        "Cycling",
		Description: "Low-impact cardio exercise, great for leg strength and endurance",
		Color:       "#8b5cf6", // Violet
	},
	{
		Name:        "Running",
		Description: "High-impact cardio exercise, builds endurance and burns calories",
		Color:       "#ef4444", // Red
	},
}

// SampleWorkouts returns the three demo sessions, newest first.
func SampleWorkouts(anchors Anchors) []WorkoutSpec {
	return []WorkoutSpec{
		{
			TypeName:    "Cardio",
			DurationMin: 45,
			Calories:    320,
			PerformedAt: anchors.Today,
			Notes:       "Morning run in the park. Felt great today!",
		},
		{
			TypeName:    "Strength",
			DurationMin: 60,
			Calories:    280,
			PerformedAt: anchors.Yesterday,
			Notes:       "Upper body workout - chest, shoulders, triceps",
		},
		{
			TypeName:    "Yoga",
			DurationMin: 30,
			Calories:    150,
			PerformedAt: anchors.TwoDaysAgo,
			Notes:       "Evening relaxation session with deep stretches",
		},
	}
}

// BeginnerPlan returns the demo weekly plan anchored to the week containing
// the given instant.
func BeginnerPlan(now time.Time) PlanSpec {
	return PlanSpec{
		Title:       "Beginner Fitness Plan",
		Description: "A balanced weekly plan for beginners focusing on cardio and strength",
		WeekStart:   WeekStart(now),
		Days: []DaySpec{
			{
				DayOfWeek:      time.Monday,
				TypeName:       "Cardio",
				TargetDuration: 30,
				TargetCalories: 250,
				Description:    "Light cardio to start the week",
			},
			{
				DayOfWeek:      time.Wednesday,
				TypeName:       "Strength",
				TargetDuration: 45,
				TargetCalories: 200,
				Description:    "Upper body strength training",
			},
			{
				DayOfWeek:      time.Friday,
				TypeName:       "Cardio",
				TargetDuration: 40,
				TargetCalories: 300,
				Description:    "End-of-week cardio session",
			},
			{
				DayOfWeek:      time.Sunday,
				TypeName:       "Yoga",
				TargetDuration: 60,
				TargetCalories: 180,
				Description:    "Relaxing yoga session",
			},
		},
	}
}

// Run seeds the full demo dataset using the current time as "today".
func Run(ctx context.Context, db *gorm.DB) error {
	return RunAt(ctx, db, time.Now())
}

// RunAt seeds the full demo dataset with all relative dates derived from the
// given instant. Creation order matters: the catalog must fully exist before
// anything references it, and the user before workouts and the plan. No step
// is retried; the first failure aborts the run.
func RunAt(ctx context.Context, db *gorm.DB, now time.Time) error {
	log.Println("Creating workout types...")
	catalog, err := BuildCatalog(ctx, db, DefaultTypes)
	if err != nil {
		return err
	}
	log.Printf("Created %d workout types", len(catalog.Ordered))

	composer := NewComposer(db)

	log.Println("Creating demo user...")
	user, err := composer.CreateUser(ctx, UserSpec{
		Email:    DemoEmail,
		Name:     DemoName,
		Password: demoPassword,
	})
	if err != nil {
		return err
	}
	log.Printf("Created user: %s", user.Email)

	log.Println("Creating sample workouts...")
	workouts, err := composer.LogWorkouts(ctx, user.ID, catalog, SampleWorkouts(AnchorsFrom(now)))
	if err != nil {
		return err
	}
	log.Printf("Created %d sample workouts", len(workouts))

	log.Println("Creating sample workout plan...")
	plan, err := composer.CreatePlan(ctx, user.ID, catalog, BeginnerPlan(now))
	if err != nil {
		return err
	}
	log.Printf("Created workout plan: %s", plan.Title)

	log.Println("Seed data created successfully!")
	return nil
}
