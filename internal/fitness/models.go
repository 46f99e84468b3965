// Package fitness derives analytics views from a workout history snapshot:
// per-muscle-group recovery, training advisories, strength standards,
// calorie estimates, weekly aggregates, and rule-based suggestions.
//
// Every function in this package is a pure function of its inputs. The
// caller supplies immutable snapshots of the history, the exercise catalog,
// and the user profile on each invocation; nothing is cached or mutated.
package fitness

import (
	"fmt"
	"slices"
	"time"

	"github.com/barx10/treningsappen-wife-sub000/internal/i18n"
)

// MuscleGroup identifies one of the eight tracked muscle groups.
// The values are stable machine identifiers; display names live in i18n.
type MuscleGroup string

// The closed muscle group enumeration.
const (
	GroupChest     MuscleGroup = "chest"
	GroupBack      MuscleGroup = "back"
	GroupLegs      MuscleGroup = "legs"
	GroupShoulders MuscleGroup = "shoulders"
	GroupArms      MuscleGroup = "arms"
	GroupCore      MuscleGroup = "core"
	GroupCardio    MuscleGroup = "cardio"
	GroupFullBody  MuscleGroup = "full_body"
)

// Groups returns the muscle group enumeration in stable order. Coverage
// calculations depend on this listing being exhaustive.
func Groups() []MuscleGroup {
	return []MuscleGroup{
		GroupChest, GroupBack, GroupLegs, GroupShoulders,
		GroupArms, GroupCore, GroupCardio, GroupFullBody,
	}
}

// DisplayName returns the localized display name for the muscle group.
func (g MuscleGroup) DisplayName() string {
	return i18n.T("muscle." + string(g))
}

// ExerciseType governs which fields of a set are meaningful and which MET
// constant applies when estimating calories.
type ExerciseType string

// The closed exercise type enumeration.
const (
	TypeWeighted   ExerciseType = "weighted"
	TypeBodyweight ExerciseType = "bodyweight"
	TypeDuration   ExerciseType = "duration"
	TypeCardio     ExerciseType = "cardio"
)

// ExerciseDefinition is a catalog entry describing one exercise.
type ExerciseDefinition struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Primary     MuscleGroup   `json:"primary"`
	Secondary   []MuscleGroup `json:"secondary,omitempty"`
	Type        ExerciseType  `json:"type"`
	Description string        `json:"description,omitempty"`
	MediaURL    string        `json:"mediaUrl,omitempty"`
	Custom      bool          `json:"custom"`
}

// Validate reports whether the definition satisfies the catalog invariants.
func (d ExerciseDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("exercise definition missing id")
	}
	if d.Name == "" {
		return fmt.Errorf("exercise %s missing name", d.ID)
	}
	if !slices.Contains(Groups(), d.Primary) {
		return fmt.Errorf("exercise %s has unknown primary muscle group %q", d.ID, d.Primary)
	}
	for _, g := range d.Secondary {
		if g == d.Primary {
			return fmt.Errorf("exercise %s lists primary muscle group %q as secondary", d.ID, g)
		}
		if !slices.Contains(Groups(), g) {
			return fmt.Errorf("exercise %s has unknown secondary muscle group %q", d.ID, g)
		}
	}
	switch d.Type {
	case TypeWeighted, TypeBodyweight, TypeDuration, TypeCardio:
	default:
		return fmt.Errorf("exercise %s has unknown type %q", d.ID, d.Type)
	}
	return nil
}

// Catalog is a snapshot of all known exercise definitions.
type Catalog []ExerciseDefinition

// Resolve looks up a definition by its identifier.
func (c Catalog) Resolve(id string) (ExerciseDefinition, bool) {
	for _, def := range c {
		if def.ID == id {
			return def, true
		}
	}
	return ExerciseDefinition{}, false
}

// ByName looks up a definition by its exact display name.
func (c Catalog) ByName(name string) (ExerciseDefinition, bool) {
	for _, def := range c {
		if def.Name == name {
			return def, true
		}
	}
	return ExerciseDefinition{}, false
}

// ByGroup returns all definitions whose primary muscle group matches g.
func (c Catalog) ByGroup(g MuscleGroup) []ExerciseDefinition {
	var defs []ExerciseDefinition
	for _, def := range c {
		if def.Primary == g {
			defs = append(defs, def)
		}
	}
	return defs
}

// WorkoutSet is one logged set. All measurements are optional; only sets
// with Completed set to true count toward derived statistics.
type WorkoutSet struct {
	WeightKg        *float64 `json:"weightKg,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	DurationMinutes *float64 `json:"durationMinutes,omitempty"`
	RPE             *int     `json:"rpe,omitempty"`
	Completed       bool     `json:"completed"`
}

// WorkoutExercise is one exercise instance within a session. The
// ExerciseID is resolved against the catalog at read time; instances that
// do not resolve are silently excluded from analytics.
type WorkoutExercise struct {
	ExerciseID string       `json:"exerciseId"`
	Sets       []WorkoutSet `json:"sets"`
	Note       string       `json:"note,omitempty"`
}

// hasCompletedSet reports whether at least one set of the instance counts.
func (e WorkoutExercise) hasCompletedSet() bool {
	for _, set := range e.Sets {
		if set.Completed {
			return true
		}
	}
	return false
}

// SessionStatus is the lifecycle state of a workout session.
type SessionStatus string

// Session lifecycle states. Once a session leaves StatusActive it is
// immutable and appended to history.
const (
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)

// WorkoutSession is one workout. Date carries day granularity only;
// StartedAt and EndedAt are full instants.
type WorkoutSession struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Date      Date              `json:"date"`
	StartedAt time.Time         `json:"startedAt"`
	EndedAt   *time.Time        `json:"endedAt,omitempty"`
	Status    SessionStatus     `json:"status"`
	Exercises []WorkoutExercise `json:"exercises"`
}

// Goal is the user's stated training goal.
type Goal string

// The fixed goal set.
const (
	GoalStrength   Goal = "strength"
	GoalMuscle     Goal = "muscle"
	GoalWeightLoss Goal = "weight_loss"
	GoalEndurance  Goal = "endurance"
	GoalGeneral    Goal = "general"
)

// UserProfile holds the user's body data and training goal. It is consumed
// read-only by the strength classifier, the calorie estimator, and the
// recommendation heuristic.
type UserProfile struct {
	Name     string  `json:"name"`
	Age      *int    `json:"age,omitempty"`
	WeightKg float64 `json:"weightKg"`
	HeightCm float64 `json:"heightCm"`
	Gender   string  `json:"gender,omitempty"`
	Goal     Goal    `json:"goal"`
}

// completedSessions filters a history snapshot down to completed sessions.
func completedSessions(history []WorkoutSession) []WorkoutSession {
	var completed []WorkoutSession
	for _, sess := range history {
		if sess.Status == StatusCompleted {
			completed = append(completed, sess)
		}
	}
	return completed
}

// TrainedGroups returns the muscle groups (primary and secondary) touched
// by the session's resolving exercise instances that have at least one
// completed set.
func TrainedGroups(sess WorkoutSession, catalog Catalog) []MuscleGroup {
	var groups []MuscleGroup
	for _, instance := range sess.Exercises {
		def, ok := catalog.Resolve(instance.ExerciseID)
		if !ok || !instance.hasCompletedSet() {
			continue
		}
		for _, g := range append([]MuscleGroup{def.Primary}, def.Secondary...) {
			if !slices.Contains(groups, g) {
				groups = append(groups, g)
			}
		}
	}
	return groups
}
