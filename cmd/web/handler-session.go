package main

import (
	"net/http"

	"github.com/barx10/treningsappen-wife-sub000/internal/errors"
	"github.com/barx10/treningsappen-wife-sub000/internal/workout"
)

type startSessionRequest struct {
	Name        string   `json:"name"`
	ExerciseIDs []string `json:"exercise_ids"`
	FavoriteID  string   `json:"favorite_id"`
}

// sessionStartPOST starts a new workout session from an explicit exercise
// list or from a stored favorite.
func (app *application) sessionStartPOST(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.FavoriteID != "" {
		favorites, err := app.workoutService.Favorites(r.Context())
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		for _, favorite := range favorites {
			if favorite.ID == req.FavoriteID {
				if req.Name == "" {
					req.Name = favorite.Name
				}
				req.ExerciseIDs = favorite.ExerciseIDs
				break
			}
		}
		if len(req.ExerciseIDs) == 0 {
			app.clientError(w, r, http.StatusUnprocessableEntity, "favorite workout not found")
			return
		}
	}

	sess, err := app.workoutService.StartSession(r.Context(), req.Name, req.ExerciseIDs)
	switch {
	case errors.Is(err, workout.ErrActiveSession):
		app.clientError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, workout.ErrNotFound):
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		app.serverError(w, r, err)
	default:
		app.writeJSON(w, r, http.StatusCreated, sess)
	}
}

func (app *application) sessionActiveGET(w http.ResponseWriter, r *http.Request) {
	sess, err := app.workoutService.ActiveSession(r.Context())
	switch {
	case errors.Is(err, workout.ErrNoActiveSession):
		app.notFound(w, r)
	case err != nil:
		app.serverError(w, r, err)
	default:
		app.writeJSON(w, r, http.StatusOK, sess)
	}
}

func (app *application) sessionLogSetPOST(w http.ResponseWriter, r *http.Request) {
	var update workout.SetUpdate
	if err := decodeJSON(r, &update); err != nil {
		app.clientError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := app.workoutService.LogSet(r.Context(), update)
	switch {
	case errors.Is(err, workout.ErrNoActiveSession):
		app.clientError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, workout.ErrNotFound):
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		app.serverError(w, r, err)
	default:
		app.writeJSON(w, r, http.StatusOK, sess)
	}
}

func (app *application) sessionCompletePOST(w http.ResponseWriter, r *http.Request) {
	sess, err := app.workoutService.CompleteSession(r.Context())
	app.finishSessionResponse(w, r, sess, err)
}

func (app *application) sessionCancelPOST(w http.ResponseWriter, r *http.Request) {
	sess, err := app.workoutService.CancelSession(r.Context())
	app.finishSessionResponse(w, r, sess, err)
}

func (app *application) finishSessionResponse(
	w http.ResponseWriter, r *http.Request, sess any, err error,
) {
	switch {
	case errors.Is(err, workout.ErrNoActiveSession):
		app.clientError(w, r, http.StatusConflict, err.Error())
	case err != nil:
		app.serverError(w, r, err)
	default:
		app.writeJSON(w, r, http.StatusOK, sess)
	}
}
