package main

import (
	"bytes"
	"net/http"

	"github.com/barx10/treningsappen-wife-sub000/internal/errors"
	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
	"github.com/barx10/treningsappen-wife-sub000/internal/workout"
	"github.com/yuin/goldmark"
)

// exerciseDetail is an exercise with its Markdown description rendered to
// HTML for the client.
type exerciseDetail struct {
	fitness.ExerciseDefinition
	DescriptionHTML string `json:"description_html,omitempty"`
	GroupDisplay    string `json:"group_display"`
}

func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	catalog, err := app.workoutService.Exercises(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, catalog)
}

func (app *application) exerciseGET(w http.ResponseWriter, r *http.Request) {
	catalog, err := app.workoutService.Exercises(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	def, ok := catalog.Resolve(r.PathValue("id"))
	if !ok {
		app.notFound(w, r)
		return
	}

	detail := exerciseDetail{ExerciseDefinition: def, GroupDisplay: def.Primary.DisplayName()}
	if def.Description != "" {
		var buf bytes.Buffer
		if err = goldmark.Convert([]byte(def.Description), &buf); err != nil {
			app.serverError(w, r, errors.Wrap(err, "render exercise description"))
			return
		}
		detail.DescriptionHTML = buf.String()
	}
	app.writeJSON(w, r, http.StatusOK, detail)
}

func (app *application) exerciseCreatePOST(w http.ResponseWriter, r *http.Request) {
	var def fitness.ExerciseDefinition
	if err := decodeJSON(r, &def); err != nil {
		app.clientError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	created, err := app.workoutService.CreateExercise(r.Context(), def)
	if err != nil {
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	app.writeJSON(w, r, http.StatusCreated, created)
}

func (app *application) exerciseUpdatePUT(w http.ResponseWriter, r *http.Request) {
	var def fitness.ExerciseDefinition
	if err := decodeJSON(r, &def); err != nil {
		app.clientError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	def.ID = r.PathValue("id")

	switch err := app.workoutService.UpdateExercise(r.Context(), def); {
	case errors.Is(err, workout.ErrBuiltinExercise):
		app.clientError(w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, workout.ErrNotFound):
		app.notFound(w, r)
	case err != nil:
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		app.writeJSON(w, r, http.StatusOK, def)
	}
}

func (app *application) exerciseDELETE(w http.ResponseWriter, r *http.Request) {
	switch err := app.workoutService.DeleteExercise(r.Context(), r.PathValue("id")); {
	case errors.Is(err, workout.ErrBuiltinExercise):
		app.clientError(w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, workout.ErrNotFound):
		app.notFound(w, r)
	case err != nil:
		app.serverError(w, r, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
