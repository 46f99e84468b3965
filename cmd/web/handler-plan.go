package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/barx10/treningsappen-wife-sub000/internal/errors"
	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
)

type recommendationsResponse struct {
	// Source says whether the advice came from the AI collaborator or the
	// rule-based fallback.
	Source          string   `json:"source"`
	Recommendations []string `json:"recommendations"`
}

// planPOST asks the AI collaborator for a structured workout plan based on
// the profile, the recent history, and the exercise catalog.
func (app *application) planPOST(w http.ResponseWriter, r *http.Request) {
	if app.planService == nil {
		app.clientError(w, r, http.StatusServiceUnavailable, "AI plan generation is not configured")
		return
	}

	ctx := r.Context()
	profile, err := app.workoutService.Profile(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	history, err := app.workoutService.History(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	catalog, err := app.workoutService.Exercises(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	plan, err := app.planService.GeneratePlan(ctx, profile, history, catalog)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "generate workout plan"))
		return
	}
	app.writeJSON(w, r, http.StatusOK, plan)
}

// aiRecommendationsPOST returns AI-written recommendations, falling back to
// the rule-based heuristics when the collaborator is unavailable.
func (app *application) aiRecommendationsPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, err := app.workoutService.Profile(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	history, err := app.workoutService.History(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	catalog, err := app.workoutService.Exercises(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if app.planService != nil {
		recommendations, aiErr := app.planService.Recommendations(ctx, profile, history, catalog)
		if aiErr == nil {
			app.writeJSON(w, r, http.StatusOK, recommendationsResponse{
				Source:          "ai",
				Recommendations: recommendations,
			})
			return
		}
		app.logger.LogAttrs(ctx, slog.LevelWarn, "AI recommendations failed, falling back to rules",
			errors.SlogError(aiErr))
	}

	app.writeJSON(w, r, http.StatusOK, recommendationsResponse{
		Source:          "rules",
		Recommendations: fitness.Recommendations(profile, history, catalog, time.Now(), nil),
	})
}
