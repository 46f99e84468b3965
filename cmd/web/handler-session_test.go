package main

import (
	"testing"

	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
)

func Test_application_sessionLifecycle(t *testing.T) {
	t.Parallel()
	var (
		ctx    = t.Context()
		server = startTestServer(t)
		client = server.Client()
		sess   fitness.WorkoutSession
	)

	// Start a session with two built-in exercises.
	code, err := client.PostJSON(ctx, "/api/sessions", map[string]any{
		"name":         "Mandagsøkt",
		"exercise_ids": []string{"squat", "bench-press"},
	}, &sess)
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}
	if code != 201 {
		t.Fatalf("expected status 201, got %d", code)
	}
	if sess.Status != fitness.StatusActive {
		t.Errorf("expected active session, got %q", sess.Status)
	}
	if len(sess.Exercises) != 2 {
		t.Errorf("expected 2 exercises, got %d", len(sess.Exercises))
	}

	// Starting a second session must conflict.
	if code, err = client.PostJSON(ctx, "/api/sessions", map[string]any{
		"exercise_ids": []string{"squat"},
	}, nil); err != nil {
		t.Fatalf("Failed to post second session: %v", err)
	}
	if code != 409 {
		t.Errorf("expected status 409 for second session, got %d", code)
	}

	// Log a completed set.
	if code, err = client.PostJSON(ctx, "/api/sessions/active/sets", map[string]any{
		"exercise_id": "squat",
		"weight_kg":   100.0,
		"reps":        5,
		"completed":   true,
	}, &sess); err != nil {
		t.Fatalf("Failed to log set: %v", err)
	}
	if code != 200 {
		t.Fatalf("expected status 200, got %d", code)
	}
	if len(sess.Exercises[0].Sets) != 1 {
		t.Fatalf("expected 1 logged set, got %d", len(sess.Exercises[0].Sets))
	}
	got := sess.Exercises[0].Sets[0]
	if got.WeightKg == nil || *got.WeightKg != 100 || got.Reps == nil || *got.Reps != 5 || !got.Completed {
		t.Errorf("logged set = %+v, want 100kg x 5 completed", got)
	}

	// The active session is retrievable.
	if code, err = client.GetJSON(ctx, "/api/sessions/active", &sess); err != nil {
		t.Fatalf("Failed to get active session: %v", err)
	}
	if code != 200 {
		t.Errorf("expected status 200 for active session, got %d", code)
	}

	// Complete it.
	if code, err = client.PostJSON(ctx, "/api/sessions/active/complete", nil, &sess); err != nil {
		t.Fatalf("Failed to complete session: %v", err)
	}
	if code != 200 {
		t.Fatalf("expected status 200, got %d", code)
	}
	if sess.Status != fitness.StatusCompleted {
		t.Errorf("expected completed session, got %q", sess.Status)
	}
	if sess.EndedAt == nil {
		t.Error("expected completed session to carry an end time")
	}

	// No active session remains.
	if code, err = client.GetJSON(ctx, "/api/sessions/active", nil); err != nil {
		t.Fatalf("Failed to get active session: %v", err)
	}
	if code != 404 {
		t.Errorf("expected status 404 after completion, got %d", code)
	}

	// History holds the completed session.
	var history []fitness.WorkoutSession
	if code, err = client.GetJSON(ctx, "/api/history", &history); err != nil {
		t.Fatalf("Failed to get history: %v", err)
	}
	if code != 200 {
		t.Fatalf("expected status 200, got %d", code)
	}
	if len(history) != 1 || history[0].ID != sess.ID {
		t.Errorf("expected history with the completed session, got %+v", history)
	}
}

func Test_application_sessionCancel(t *testing.T) {
	t.Parallel()
	var (
		ctx    = t.Context()
		server = startTestServer(t)
		client = server.Client()
		sess   fitness.WorkoutSession
	)

	if _, err := client.PostJSON(ctx, "/api/sessions", map[string]any{
		"exercise_ids": []string{"running"},
	}, nil); err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	code, err := client.PostJSON(ctx, "/api/sessions/active/cancel", nil, &sess)
	if err != nil {
		t.Fatalf("Failed to cancel session: %v", err)
	}
	if code != 200 {
		t.Fatalf("expected status 200, got %d", code)
	}
	if sess.Status != fitness.StatusCancelled {
		t.Errorf("expected cancelled session, got %q", sess.Status)
	}

	// Cancelling again conflicts.
	if code, err = client.PostJSON(ctx, "/api/sessions/active/cancel", nil, nil); err != nil {
		t.Fatalf("Failed to post cancel: %v", err)
	}
	if code != 409 {
		t.Errorf("expected status 409 without an active session, got %d", code)
	}
}

func Test_application_sessionStartFromFavorite(t *testing.T) {
	t.Parallel()
	var (
		ctx    = t.Context()
		server = startTestServer(t)
		client = server.Client()
	)

	var favorite struct {
		ID string `json:"id"`
	}
	code, err := client.PostJSON(ctx, "/api/favorites", map[string]any{
		"name":         "Beindag",
		"exercise_ids": []string{"squat", "plank"},
	}, &favorite)
	if err != nil {
		t.Fatalf("Failed to create favorite: %v", err)
	}
	if code != 201 {
		t.Fatalf("expected status 201, got %d", code)
	}

	var sess fitness.WorkoutSession
	if code, err = client.PostJSON(ctx, "/api/sessions", map[string]any{
		"favorite_id": favorite.ID,
	}, &sess); err != nil {
		t.Fatalf("Failed to start session from favorite: %v", err)
	}
	if code != 201 {
		t.Fatalf("expected status 201, got %d", code)
	}
	if sess.Name != "Beindag" {
		t.Errorf("expected session named after the favorite, got %q", sess.Name)
	}
	if len(sess.Exercises) != 2 {
		t.Errorf("expected 2 exercises from the favorite, got %d", len(sess.Exercises))
	}
}
