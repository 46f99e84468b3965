package fitness

import (
	"github.com/barx10/treningsappen-wife-sub000/internal/i18n"
)

// StrengthStandard is the qualitative classification of a lift relative to
// bodyweight. A zero-value Available=false result means no standard exists
// for the exercise; that is a defined answer, not an error.
type StrengthStandard struct {
	Exercise   string  `json:"exercise"`
	Available  bool    `json:"available"`
	Ratio      float64 `json:"ratio,omitempty"`
	Tier       string  `json:"tier,omitempty"`
	Percentile int     `json:"percentile,omitempty"`
}

// liftThresholds holds the ascending bodyweight-ratio thresholds for one
// named lift.
type liftThresholds struct {
	beginner     float64
	intermediate float64
	advanced     float64
}

// strengthStandards is keyed by exact display name. Standards exist only
// for this small fixed set of canonical lifts.
var strengthStandards = map[string]liftThresholds{
	"Knebøy / Goblet Squat": {beginner: 0.75, intermediate: 1.25, advanced: 1.75},
	"Benkpress":             {beginner: 0.5, intermediate: 1.0, advanced: 1.5},
	"Markløft":              {beginner: 1.0, intermediate: 1.5, advanced: 2.0},
	"Skulderpress":          {beginner: 0.35, intermediate: 0.6, advanced: 0.85},
}

// ClassifyStrength maps the heaviest completed weight for a named lift and
// the user's bodyweight onto a strength tier. Threshold boundaries are
// inclusive lower bounds: a ratio exactly equal to a threshold resolves to
// the higher tier. Unknown names and missing weights yield an unavailable
// result.
func ClassifyStrength(exerciseName string, bestWeightKg, bodyweightKg float64) StrengthStandard {
	standard := StrengthStandard{Exercise: exerciseName, Available: false}
	thresholds, known := strengthStandards[exerciseName]
	if !known || bestWeightKg <= 0 || bodyweightKg <= 0 {
		return standard
	}

	ratio := bestWeightKg / bodyweightKg
	standard.Available = true
	standard.Ratio = ratio
	switch {
	case ratio >= thresholds.advanced:
		standard.Tier = i18n.T("strength.tier.advanced")
		standard.Percentile = 85
	case ratio >= thresholds.intermediate:
		standard.Tier = i18n.T("strength.tier.intermediate")
		standard.Percentile = 60
	case ratio >= thresholds.beginner:
		standard.Tier = i18n.T("strength.tier.beginner_plus")
		standard.Percentile = 40
	default:
		standard.Tier = i18n.T("strength.tier.beginner")
		standard.Percentile = 20
	}
	return standard
}

// BestCompletedWeight returns the heaviest weight ever logged in a
// completed set for the exercise with the given display name, or 0 when
// none exists.
func BestCompletedWeight(history []WorkoutSession, catalog Catalog, exerciseName string) float64 {
	def, ok := catalog.ByName(exerciseName)
	if !ok {
		return 0
	}

	best := 0.0
	for _, sess := range completedSessions(history) {
		for _, instance := range sess.Exercises {
			if instance.ExerciseID != def.ID {
				continue
			}
			for _, set := range instance.Sets {
				if set.Completed && set.WeightKg != nil && *set.WeightKg > best {
					best = *set.WeightKg
				}
			}
		}
	}
	return best
}
