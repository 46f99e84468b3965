package main

import (
	"net/http"
)

// strengthGET classifies the user's best completed weight for an exercise
// against the strength standards. The path parameter is the catalog id;
// a display name is accepted too.
func (app *application) strengthGET(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("exercise")
	catalog, err := app.workoutService.Exercises(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if def, ok := catalog.Resolve(name); ok {
		name = def.Name
	}

	standard, err := app.workoutService.StrengthStandard(r.Context(), name)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, standard)
}
