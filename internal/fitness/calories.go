package fitness

import (
	"math"
)

// metByType holds the metabolic equivalent constant per exercise type.
var metByType = map[ExerciseType]float64{
	TypeWeighted:   6.0,
	TypeBodyweight: 5.0,
	TypeCardio:     7.0,
	TypeDuration:   4.0,
}

// defaultMET applies when no exercise instance in the session resolves
// against the catalog.
const defaultMET = 5.0

// EstimateCalories returns a MET-based energy expenditure estimate for one
// session, rounded to the nearest kcal. Sessions without an end timestamp
// or without a bodyweight yield 0, never an error.
func EstimateCalories(sess WorkoutSession, catalog Catalog, bodyweightKg float64) int {
	if sess.EndedAt == nil || bodyweightKg <= 0 {
		return 0
	}

	durationMinutes := sess.EndedAt.Sub(sess.StartedAt).Minutes()
	if durationMinutes <= 0 {
		return 0
	}

	met := averageMET(sess, catalog)
	return int(math.Round(met * bodyweightKg * durationMinutes / 60))
}

// averageMET averages the MET constants of the session's resolving
// exercise instances, falling back to defaultMET when none resolve.
func averageMET(sess WorkoutSession, catalog Catalog) float64 {
	sum := 0.0
	count := 0
	for _, instance := range sess.Exercises {
		def, ok := catalog.Resolve(instance.ExerciseID)
		if !ok {
			continue
		}
		sum += metByType[def.Type]
		count++
	}
	if count == 0 {
		return defaultMET
	}
	return sum / float64(count)
}
