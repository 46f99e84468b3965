package aiplan

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
	"github.com/barx10/treningsappen-wife-sub000/internal/kvstore"
	"github.com/barx10/treningsappen-wife-sub000/internal/ptr"
	"github.com/barx10/treningsappen-wife-sub000/internal/sqlite"
	"github.com/barx10/treningsappen-wife-sub000/internal/testhelpers"
	"github.com/google/go-cmp/cmp"
)

func testCatalog() fitness.Catalog {
	return fitness.Catalog{
		{ID: "squat", Name: "Knebøy / Goblet Squat", Primary: fitness.GroupLegs, Type: fitness.TypeWeighted},
		{ID: "bench-press", Name: "Benkpress", Primary: fitness.GroupChest, Type: fitness.TypeWeighted},
		{ID: "running", Name: "Løping", Primary: fitness.GroupCardio, Type: fitness.TypeCardio},
	}
}

func TestPlanJSONSchema(t *testing.T) {
	raw, err := json.Marshal(planJSONSchema{exerciseIDs: []string{"squat", "bench-press"}})
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	if !json.Valid(raw) {
		t.Fatalf("schema is not valid JSON:\n%s", raw)
	}

	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}
	if schema["type"] != "object" {
		t.Errorf("schema type = %v, want object", schema["type"])
	}
	// json.Marshal compacts the Marshaler output.
	if !strings.Contains(string(raw), `"enum":["squat","bench-press"]`) {
		t.Errorf("schema does not constrain exercise ids:\n%s", raw)
	}
}

func TestRecommendationJSONSchema(t *testing.T) {
	raw, err := json.Marshal(recommendationJSONSchema{})
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	if !json.Valid(raw) {
		t.Fatalf("schema is not valid JSON:\n%s", raw)
	}
}

func TestRequestDigest(t *testing.T) {
	catalog := testCatalog()
	profile := fitness.UserProfile{Name: "Kari", WeightKg: 80, Goal: fitness.GoalStrength}
	history := []fitness.WorkoutSession{
		{ID: "a", Date: fitness.MustParseDate("2026-03-02"), Status: fitness.StatusCompleted},
	}

	first := requestDigest(profile, history, catalog)
	second := requestDigest(profile, history, catalog)
	if first == "" || first != second {
		t.Errorf("digest not stable: %q vs %q", first, second)
	}

	changed := profile
	changed.Goal = fitness.GoalEndurance
	if requestDigest(changed, history, catalog) == first {
		t.Error("digest did not change with the profile")
	}

	// Only the recent window affects the digest.
	var padded []fitness.WorkoutSession
	for range recentSessionLimit {
		padded = append(padded, fitness.WorkoutSession{ID: "old", Status: fitness.StatusCompleted})
	}
	padded = append(padded, history...)
	withExtra := append([]fitness.WorkoutSession{{ID: "ancient"}}, padded...)
	if requestDigest(profile, padded, catalog) != requestDigest(profile, withExtra, catalog) {
		t.Error("digest depends on sessions outside the recent window")
	}
}

func TestPrompts(t *testing.T) {
	profile := fitness.UserProfile{Name: "Kari", Age: ptr.Ref(34), WeightKg: 80, Goal: fitness.GoalStrength}
	history := []fitness.WorkoutSession{
		{
			ID:     "a",
			Date:   fitness.MustParseDate("2026-03-02"),
			Status: fitness.StatusCompleted,
			Exercises: []fitness.WorkoutExercise{
				{ExerciseID: "squat", Sets: []fitness.WorkoutSet{{Completed: true}}},
			},
		},
	}

	prompt := planPrompt(profile, history, testCatalog())
	for _, want := range []string{"mål=strength", "squat", "Benkpress", "2026-03-02", "legs"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("plan prompt missing %q:\n%s", want, prompt)
		}
	}

	prompt = recommendationPrompt(profile, nil)
	if !strings.Contains(prompt, "Ingen tidligere økter") {
		t.Errorf("recommendation prompt should mention the empty history:\n%s", prompt)
	}
}

func TestValidatePlan(t *testing.T) {
	catalog := testCatalog()
	valid := Plan{
		Name: "Styrkeøkt",
		Items: []PlanItem{
			{ExerciseID: "squat", SetCount: 3, RepRange: "5-8", RestSeconds: 120},
		},
	}
	if err := validatePlan(valid, catalog); err != nil {
		t.Errorf("validatePlan(valid) = %v", err)
	}

	unknown := valid
	unknown.Items = []PlanItem{{ExerciseID: "finnes-ikke", SetCount: 3}}
	if err := validatePlan(unknown, catalog); err == nil {
		t.Error("expected error for unknown exercise reference")
	}

	empty := Plan{Name: "Tom"}
	if err := validatePlan(empty, catalog); err == nil {
		t.Error("expected error for plan without items")
	}
}

func TestGeneratePlan_ServesCachedResponse(t *testing.T) {
	t.Parallel()
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
	store := kvstore.New(db)
	// The API key is bogus; a cache hit must answer before any request.
	svc := NewService("test-key", store, logger)

	catalog := testCatalog()
	profile := fitness.UserProfile{Name: "Kari", WeightKg: 80, Goal: fitness.GoalStrength}
	want := Plan{
		Name: "Styrkeøkt A",
		Items: []PlanItem{
			{ExerciseID: "squat", SetCount: 3, RepRange: "5-8", RestSeconds: 180},
		},
		TotalDurationMinutes: 45,
		FocusAreas:           []string{"legs"},
		Reasoning:            "Bein er uthvilt.",
	}
	if err := svc.storeCached(t.Context(), kvstore.KeyAIPlanCache,
		requestDigest(profile, nil, catalog), want); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	got, err := svc.GeneratePlan(t.Context(), profile, nil, catalog)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}
