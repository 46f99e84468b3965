package workout_test

import (
	"errors"
	"testing"
	"time"

	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
	"github.com/barx10/treningsappen-wife-sub000/internal/kvstore"
	"github.com/barx10/treningsappen-wife-sub000/internal/ptr"
	"github.com/barx10/treningsappen-wife-sub000/internal/sqlite"
	"github.com/barx10/treningsappen-wife-sub000/internal/testhelpers"
	"github.com/barx10/treningsappen-wife-sub000/internal/workout"
	"github.com/google/go-cmp/cmp"
)

func newService(t *testing.T) *workout.Service {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})
	return workout.NewService(kvstore.New(db), logger)
}

func TestService_SessionLifecycle(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()

	if _, err := svc.ActiveSession(ctx); !errors.Is(err, workout.ErrNoActiveSession) {
		t.Fatalf("ActiveSession on fresh store: err = %v, want ErrNoActiveSession", err)
	}

	sess, err := svc.StartSession(ctx, "Mandagsøkt", []string{"squat", "bench-press"})
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if sess.Status != fitness.StatusActive || sess.ID == "" {
		t.Fatalf("StartSession returned %+v", sess)
	}
	if len(sess.Exercises) != 2 {
		t.Fatalf("StartSession created %d exercise instances, want 2", len(sess.Exercises))
	}

	// A second concurrent session is refused.
	if _, err = svc.StartSession(ctx, "", []string{"squat"}); !errors.Is(err, workout.ErrActiveSession) {
		t.Fatalf("second StartSession: err = %v, want ErrActiveSession", err)
	}

	sess, err = svc.LogSet(ctx, workout.SetUpdate{
		ExerciseID: "squat",
		WeightKg:   ptr.Ref(100.0),
		Reps:       ptr.Ref(5),
		Completed:  true,
	})
	if err != nil {
		t.Fatalf("LogSet: %v", err)
	}
	if got := len(sess.Exercises[0].Sets); got != 1 {
		t.Fatalf("squat has %d sets, want 1", got)
	}

	// Logging against an exercise not in the session adds it.
	sess, err = svc.LogSet(ctx, workout.SetUpdate{ExerciseID: "pushup", Reps: ptr.Ref(15), Completed: true})
	if err != nil {
		t.Fatalf("LogSet new exercise: %v", err)
	}
	if len(sess.Exercises) != 3 {
		t.Fatalf("session has %d exercise instances, want 3", len(sess.Exercises))
	}

	done, err := svc.CompleteSession(ctx)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if done.Status != fitness.StatusCompleted || done.EndedAt == nil {
		t.Fatalf("CompleteSession returned %+v", done)
	}

	if _, err = svc.ActiveSession(ctx); !errors.Is(err, workout.ErrNoActiveSession) {
		t.Errorf("ActiveSession after complete: err = %v, want ErrNoActiveSession", err)
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history has %d sessions, want 1", len(history))
	}
	if diff := cmp.Diff(done, history[0]); diff != "" {
		t.Errorf("history mismatch (-completed +stored):\n%s", diff)
	}
}

func TestService_CancelSession(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()

	if _, err := svc.StartSession(ctx, "", []string{"running"}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	cancelled, err := svc.CancelSession(ctx)
	if err != nil {
		t.Fatalf("CancelSession: %v", err)
	}
	if cancelled.Status != fitness.StatusCancelled || cancelled.EndedAt == nil {
		t.Fatalf("CancelSession returned %+v", cancelled)
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].Status != fitness.StatusCancelled {
		t.Errorf("history = %+v, want one cancelled session", history)
	}
}

func TestService_StartSessionUnknownExercise(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	_, err := svc.StartSession(t.Context(), "", []string{"finnes-ikke"})
	if !errors.Is(err, workout.ErrNotFound) {
		t.Fatalf("StartSession: err = %v, want ErrNotFound", err)
	}
}

func TestService_CatalogLifecycle(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()

	catalog, err := svc.Exercises(ctx)
	if err != nil {
		t.Fatalf("Exercises: %v", err)
	}
	builtinCount := len(catalog)
	if builtinCount == 0 {
		t.Fatal("expected builtin exercises to be seeded")
	}
	if _, ok := catalog.ByName("Knebøy / Goblet Squat"); !ok {
		t.Error("builtin catalog is missing the squat")
	}

	created, err := svc.CreateExercise(ctx, fitness.ExerciseDefinition{
		Name:    "Bulgarsk utfall",
		Primary: fitness.GroupLegs,
		Type:    fitness.TypeWeighted,
	})
	if err != nil {
		t.Fatalf("CreateExercise: %v", err)
	}
	if !created.Custom || created.ID == "" {
		t.Fatalf("CreateExercise returned %+v", created)
	}

	// Builtins are read-only through the custom CRUD surface.
	if err = svc.UpdateExercise(ctx, fitness.ExerciseDefinition{
		ID:      "squat",
		Name:    "Omdøpt",
		Primary: fitness.GroupLegs,
		Type:    fitness.TypeWeighted,
	}); !errors.Is(err, workout.ErrBuiltinExercise) {
		t.Errorf("UpdateExercise on builtin: err = %v, want ErrBuiltinExercise", err)
	}
	if err = svc.DeleteExercise(ctx, "squat"); !errors.Is(err, workout.ErrBuiltinExercise) {
		t.Errorf("DeleteExercise on builtin: err = %v, want ErrBuiltinExercise", err)
	}

	// Refresh keeps the custom entry alongside the canonical builtins.
	if err = svc.RefreshBuiltinExercises(ctx); err != nil {
		t.Fatalf("RefreshBuiltinExercises: %v", err)
	}
	catalog, err = svc.Exercises(ctx)
	if err != nil {
		t.Fatalf("Exercises after refresh: %v", err)
	}
	if len(catalog) != builtinCount+1 {
		t.Errorf("catalog has %d entries after refresh, want %d", len(catalog), builtinCount+1)
	}
	if _, ok := catalog.Resolve(created.ID); !ok {
		t.Error("custom exercise lost during refresh")
	}

	created.Description = "Bakre fot på benk."
	if err = svc.UpdateExercise(ctx, created); err != nil {
		t.Fatalf("UpdateExercise: %v", err)
	}
	if err = svc.DeleteExercise(ctx, created.ID); err != nil {
		t.Fatalf("DeleteExercise: %v", err)
	}
	catalog, err = svc.Exercises(ctx)
	if err != nil {
		t.Fatalf("Exercises after delete: %v", err)
	}
	if _, ok := catalog.Resolve(created.ID); ok {
		t.Error("custom exercise still present after delete")
	}
}

func TestService_ProfileDefaults(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()

	profile, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Goal != fitness.GoalGeneral {
		t.Errorf("default goal = %q, want %q", profile.Goal, fitness.GoalGeneral)
	}

	want := fitness.UserProfile{
		Name:     "Kari",
		Age:      ptr.Ref(34),
		WeightKg: 80,
		HeightCm: 172,
		Goal:     fitness.GoalStrength,
	}
	if err = svc.SaveProfile(ctx, want); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	got, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestService_Favorites(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()

	added, err := svc.AddFavorite(ctx, workout.FavoriteWorkout{
		Name:        "Helkroppsøkt",
		ExerciseIDs: []string{"squat", "bench-press", "barbell-row"},
	})
	if err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if added.ID == "" {
		t.Fatal("AddFavorite did not assign an id")
	}

	favorites, err := svc.Favorites(ctx)
	if err != nil {
		t.Fatalf("Favorites: %v", err)
	}
	if len(favorites) != 1 || favorites[0].Name != "Helkroppsøkt" {
		t.Errorf("favorites = %+v", favorites)
	}

	if err = svc.RemoveFavorite(ctx, "finnes-ikke"); !errors.Is(err, workout.ErrNotFound) {
		t.Errorf("RemoveFavorite unknown id: err = %v, want ErrNotFound", err)
	}
	if err = svc.RemoveFavorite(ctx, added.ID); err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	if favorites, err = svc.Favorites(ctx); err != nil || len(favorites) != 0 {
		t.Errorf("Favorites after remove = %+v, %v", favorites, err)
	}
}

func TestService_StrengthStandardFromHistory(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()

	if err := svc.SaveProfile(ctx, fitness.UserProfile{Name: "Kari", WeightKg: 80, Goal: fitness.GoalStrength}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if _, err := svc.StartSession(ctx, "", []string{"squat"}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := svc.LogSet(ctx, workout.SetUpdate{
		ExerciseID: "squat",
		WeightKg:   ptr.Ref(100.0),
		Reps:       ptr.Ref(5),
		Completed:  true,
	}); err != nil {
		t.Fatalf("LogSet: %v", err)
	}
	if _, err := svc.CompleteSession(ctx); err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}

	standard, err := svc.StrengthStandard(ctx, "Knebøy / Goblet Squat")
	if err != nil {
		t.Fatalf("StrengthStandard: %v", err)
	}
	if !standard.Available {
		t.Fatal("expected a standard to be available")
	}
	// 100 kg at 80 kg bodyweight sits exactly on the intermediate threshold.
	if standard.Tier != "Middels" || standard.Percentile != 60 {
		t.Errorf("standard = %+v, want tier Middels percentile 60", standard)
	}
}

func TestService_DashboardOnEmptyStore(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	dashboard := svc.Dashboard(t.Context(), time.Now())
	if got := len(dashboard.Recovery); got != len(fitness.Groups()) {
		t.Errorf("dashboard has %d recovery entries, want %d", got, len(fitness.Groups()))
	}
	for _, entry := range dashboard.Recovery {
		if entry.DaysSince != fitness.NeverTrainedDays {
			t.Errorf("group %s: DaysSince = %d, want never-trained sentinel", entry.Group, entry.DaysSince)
		}
	}
	if diff := cmp.Diff(fitness.WeeklyStats{}, dashboard.Weekly); diff != "" {
		t.Errorf("weekly mismatch (-want +got):\n%s", diff)
	}
	if len(dashboard.Recommendations) != 1 {
		t.Errorf("recommendations = %q, want the single starter suggestion", dashboard.Recommendations)
	}
	// Every never-trained group carries a high severity neglect advisory.
	if got := len(dashboard.Advisories); got != len(fitness.Groups()) {
		t.Errorf("dashboard has %d advisories, want %d", got, len(fitness.Groups()))
	}
}
