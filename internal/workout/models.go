package workout

import (
	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
)

// FavoriteWorkout is a reusable named selection of exercises the user can
// start a session from.
type FavoriteWorkout struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ExerciseIDs []string `json:"exercise_ids"`
}

// Dashboard aggregates the derived views shown on the home screen. Each
// field is computed independently; a failure in one leaves the others
// intact.
type Dashboard struct {
	Recovery        []fitness.RecoveryEntry `json:"recovery"`
	Advisories      []fitness.Advisory      `json:"advisories"`
	Weekly          fitness.WeeklyStats     `json:"weekly"`
	Recommendations []string                `json:"recommendations"`
}

// SetUpdate carries one logged set for an exercise in the active session.
type SetUpdate struct {
	ExerciseID      string   `json:"exercise_id"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	DurationMinutes *float64 `json:"duration_minutes,omitempty"`
	RPE             *int     `json:"rpe,omitempty"`
	Completed       bool     `json:"completed"`
}
