package main

import (
	"net/http"
	"time"
)

// dashboardGET returns the derived home screen views: per-muscle-group
// recovery, advisories, the current week's totals, and rule-based
// recommendations.
func (app *application) dashboardGET(w http.ResponseWriter, r *http.Request) {
	dashboard := app.workoutService.Dashboard(r.Context(), time.Now())
	app.writeJSON(w, r, http.StatusOK, dashboard)
}
