package fitness

import (
	"time"

	"github.com/barx10/treningsappen-wife-sub000/internal/ptr"
)

// testNow is a Wednesday; the Monday of its week is 2026-03-02.
var testNow = time.Date(2026, time.March, 4, 12, 30, 0, 0, time.Local)

func testCatalog() Catalog {
	return Catalog{
		{ID: "squat", Name: "Knebøy / Goblet Squat", Primary: GroupLegs, Secondary: []MuscleGroup{GroupCore}, Type: TypeWeighted},
		{ID: "bench", Name: "Benkpress", Primary: GroupChest, Secondary: []MuscleGroup{GroupArms, GroupShoulders}, Type: TypeWeighted},
		{ID: "deadlift", Name: "Markløft", Primary: GroupBack, Secondary: []MuscleGroup{GroupLegs}, Type: TypeWeighted},
		{ID: "ohp", Name: "Skulderpress", Primary: GroupShoulders, Secondary: []MuscleGroup{GroupArms}, Type: TypeWeighted},
		{ID: "pushup", Name: "Pushups", Primary: GroupChest, Type: TypeBodyweight},
		{ID: "plank", Name: "Planke", Primary: GroupCore, Type: TypeDuration},
		{ID: "run", Name: "Løping", Primary: GroupCardio, Type: TypeCardio},
		{ID: "row", Name: "Roing", Primary: GroupBack, Secondary: []MuscleGroup{GroupArms}, Type: TypeWeighted},
	}
}

// completedSet returns a completed weighted set.
func completedSet(weightKg float64, reps int) WorkoutSet {
	return WorkoutSet{WeightKg: ptr.Ref(weightKg), Reps: ptr.Ref(reps), Completed: true}
}

// skippedSet returns a set that was logged but never completed.
func skippedSet(weightKg float64, reps int) WorkoutSet {
	return WorkoutSet{WeightKg: ptr.Ref(weightKg), Reps: ptr.Ref(reps), Completed: false}
}

// sessionOn builds a session on the given day with the given status. Each
// exercise instance gets one completed set unless sets are overridden via
// withSets.
func sessionOn(id string, date time.Time, status SessionStatus, exerciseIDs ...string) WorkoutSession {
	exercises := make([]WorkoutExercise, 0, len(exerciseIDs))
	for _, exID := range exerciseIDs {
		exercises = append(exercises, WorkoutExercise{
			ExerciseID: exID,
			Sets:       []WorkoutSet{completedSet(50, 8)},
		})
	}
	sess := WorkoutSession{
		ID:        id,
		Name:      "Økt " + id,
		Date:      NewDate(date),
		StartedAt: date.Add(17 * time.Hour),
		Status:    status,
		Exercises: exercises,
	}
	if status != StatusActive {
		sess.EndedAt = ptr.Ref(sess.StartedAt.Add(45 * time.Minute))
	}
	return sess
}

// withSets replaces the sets of every exercise instance in the session.
func withSets(sess WorkoutSession, sets ...WorkoutSet) WorkoutSession {
	for i := range sess.Exercises {
		sess.Exercises[i].Sets = sets
	}
	return sess
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}
