package fitness

import (
	"math"
	"time"
)

// WeeklyStats rolls up training volume for the current calendar week.
type WeeklyStats struct {
	Workouts int `json:"workouts"`
	Minutes  int `json:"minutes"`
	Calories int `json:"calories"`
}

// WeeklyOptions controls which sessions count toward the weekly roll-up.
type WeeklyOptions struct {
	// CompletedOnly restricts the workout count to completed sessions.
	// The historical behavior counted every session on or after Monday
	// regardless of status; callers that want consistency with the
	// recovery and strength views set this to true.
	CompletedOnly bool
}

// WeeklyAggregate sums session count, duration, and estimated calories for
// sessions falling on or after the current week's Monday. Duration and
// calories only accumulate for sessions with an end timestamp.
func WeeklyAggregate(
	history []WorkoutSession,
	catalog Catalog,
	bodyweightKg float64,
	now time.Time,
	opts WeeklyOptions,
) WeeklyStats {
	monday := StartOfWeek(now)

	var stats WeeklyStats
	minutes := 0.0
	for _, sess := range history {
		if sess.Date.Before(monday) {
			continue
		}
		if opts.CompletedOnly && sess.Status != StatusCompleted {
			continue
		}
		stats.Workouts++
		if sess.EndedAt == nil {
			continue
		}
		minutes += sess.EndedAt.Sub(sess.StartedAt).Minutes()
		stats.Calories += EstimateCalories(sess, catalog, bodyweightKg)
	}
	stats.Minutes = int(math.Round(minutes))
	return stats
}
