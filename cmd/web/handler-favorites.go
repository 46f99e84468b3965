package main

import (
	"net/http"

	"github.com/barx10/treningsappen-wife-sub000/internal/errors"
	"github.com/barx10/treningsappen-wife-sub000/internal/workout"
)

func (app *application) favoritesGET(w http.ResponseWriter, r *http.Request) {
	favorites, err := app.workoutService.Favorites(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if favorites == nil {
		favorites = []workout.FavoriteWorkout{}
	}
	app.writeJSON(w, r, http.StatusOK, favorites)
}

func (app *application) favoriteCreatePOST(w http.ResponseWriter, r *http.Request) {
	var favorite workout.FavoriteWorkout
	if err := decodeJSON(r, &favorite); err != nil {
		app.clientError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	created, err := app.workoutService.AddFavorite(r.Context(), favorite)
	if err != nil {
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	app.writeJSON(w, r, http.StatusCreated, created)
}

func (app *application) favoriteDELETE(w http.ResponseWriter, r *http.Request) {
	switch err := app.workoutService.RemoveFavorite(r.Context(), r.PathValue("id")); {
	case errors.Is(err, workout.ErrNotFound):
		app.notFound(w, r)
	case err != nil:
		app.serverError(w, r, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
