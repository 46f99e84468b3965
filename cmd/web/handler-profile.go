package main

import (
	"net/http"

	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
)

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.workoutService.Profile(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, profile)
}

func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var profile fitness.UserProfile
	if err := decodeJSON(r, &profile); err != nil {
		app.clientError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := app.workoutService.SaveProfile(r.Context(), profile); err != nil {
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	app.writeJSON(w, r, http.StatusOK, profile)
}
