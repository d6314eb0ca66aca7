package seed

import "time"

// Anchors holds the relative timestamps the sample workouts are logged at.
// All three are pure functions of the instant passed to AnchorsFrom.
type Anchors struct {
	Today      time.Time
	Yesterday  time.Time
	TwoDaysAgo time.Time
}

// AnchorsFrom derives the sample-data timestamps from the given instant.
func AnchorsFrom(now time.Time) Anchors {
	return Anchors{
		Today:      now,
		Yesterday:  now.AddDate(0, 0, -1),
		TwoDaysAgo: now.AddDate(0, 0, -2),
	}
}

// WeekStart returns midnight of the most recent Sunday on or before the
// given instant, in its location. Weeks run Sunday through Saturday.
func WeekStart(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -int(now.Weekday()))
}
