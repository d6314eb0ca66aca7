package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fittrack/backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	ErrDayOutOfRange      = errors.New("plan day of week out of range")
	ErrDuplicateDay       = errors.New("duplicate plan day of week")
)

// UserSpec describes the demo account to create.
type UserSpec struct {
	Email    string
	Name     string
	Password string
}

// WorkoutSpec describes one sample workout. TypeName is resolved against the
// catalog by name, never by position.
type WorkoutSpec struct {
	TypeName    string
	DurationMin int
	Calories    int
	PerformedAt time.Time
	Notes       string
}

// DaySpec describes one scheduled session within a plan's week.
type DaySpec struct {
	DayOfWeek      time.Weekday
	TypeName       string
	TargetDuration int
	TargetCalories int
	Description    string
}

// PlanSpec describes a weekly plan and its per-day targets.
type PlanSpec struct {
	Title       string
	Description string
	WeekStart   time.Time
	Days        []DaySpec
}

// Composer builds one consistent dataset against a ready catalog. The store
// handle is injected; the composer holds no ambient state.
type Composer struct {
	db *gorm.DB
}

// NewComposer creates a new Composer instance
func NewComposer(db *gorm.DB) *Composer {
	return &Composer{db: db}
}

// CreateUser creates the demo user. Fails if the email already exists.
func (c *Composer) CreateUser(ctx context.Context, spec UserSpec) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(spec.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        spec.Email,
		Name:         spec.Name,
		PasswordHash: string(hash),
	}
	if err := c.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", spec.Email, err)
	}
	return &user, nil
}

// LogWorkouts creates the sample workouts concurrently. The user and the
// catalog must already exist; every spec must name a catalog entry, checked
// up front so no goroutine is launched for a batch that cannot succeed.
func (c *Composer) LogWorkouts(ctx context.Context, userID uuid.UUID, catalog *Catalog, specs []WorkoutSpec) ([]models.Workout, error) {
	typeIDs := make([]uuid.UUID, len(specs))
	for i, spec := range specs {
		typeID, err := catalog.MustGet(spec.TypeName)
		if err != nil {
			return nil, err
		}
		typeIDs[i] = typeID
	}

	results := make([]models.Workout, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		i, spec := i, spec
		typeID := typeIDs[i]
		g.Go(func() error {
			w := models.Workout{
				ID:            uuid.New(),
				UserID:        userID,
				WorkoutTypeID: typeID,
				DurationMin:   spec.DurationMin,
				Calories:      spec.Calories,
				PerformedAt:   spec.PerformedAt,
				Notes:         spec.Notes,
			}
			if err := c.db.WithContext(ctx).Create(&w).Error; err != nil {
				return fmt.Errorf("failed to create workout for %s: %w", spec.TypeName, err)
			}
			results[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CreatePlan creates the plan and all of its day entries as one unit: GORM
// persists the children in the same transaction as the parent, so either
// every day row exists with a valid plan id or none do.
func (c *Composer) CreatePlan(ctx context.Context, userID uuid.UUID, catalog *Catalog, spec PlanSpec) (*models.Plan, error) {
	if err := validateDays(spec.Days); err != nil {
		return nil, err
	}

	plan := models.Plan{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       spec.Title,
		Description: spec.Description,
		WeekStart:   spec.WeekStart,
		PlanDays:    make([]models.PlanDay, 0, len(spec.Days)),
	}
	for _, day := range spec.Days {
		typeID, err := catalog.MustGet(day.TypeName)
		if err != nil {
			return nil, err
		}
		plan.PlanDays = append(plan.PlanDays, models.PlanDay{
			ID:             uuid.New(),
			PlanID:         plan.ID,
			DayOfWeek:      int(day.DayOfWeek),
			WorkoutTypeID:  typeID,
			TargetDuration: day.TargetDuration,
			TargetCalories: day.TargetCalories,
			Description:    day.Description,
		})
	}

	if err := c.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, fmt.Errorf("failed to create plan %q: %w", spec.Title, err)
	}
	return &plan, nil
}

// validateDays rejects out-of-range weekdays and duplicate day assignments
// before anything touches the store.
func validateDays(days []DaySpec) error {
	seen := make(map[time.Weekday]struct{}, len(days))
	for _, day := range days {
		if day.DayOfWeek < time.Sunday || day.DayOfWeek > time.Saturday {
			return fmt.Errorf("%w: %d", ErrDayOutOfRange, day.DayOfWeek)
		}
		if _, dup := seen[day.DayOfWeek]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateDay, day.DayOfWeek)
		}
		seen[day.DayOfWeek] = struct{}{}
	}
	return nil
}
