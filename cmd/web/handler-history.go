package main

import (
	"net/http"

	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
)

func (app *application) historyGET(w http.ResponseWriter, r *http.Request) {
	history, err := app.workoutService.History(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if history == nil {
		history = []fitness.WorkoutSession{}
	}
	app.writeJSON(w, r, http.StatusOK, history)
}
