package main

import (
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	var (
		api = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				noCache(app.sessionManager.LoadAndSave(app.timeout(defaultTimeout, next)))))))
		}
		// AI endpoints wait on an external service and get a longer deadline.
		ai = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				noCache(app.sessionManager.LoadAndSave(app.timeout(aiTimeout, next)))))))
		}
	)

	mux.Handle("GET /api/healthy", api(http.HandlerFunc(app.healthy)))
	mux.Handle("GET /api/dashboard", api(http.HandlerFunc(app.dashboardGET)))

	mux.Handle("GET /api/exercises", api(http.HandlerFunc(app.exercisesGET)))
	mux.Handle("POST /api/exercises", api(http.HandlerFunc(app.exerciseCreatePOST)))
	mux.Handle("GET /api/exercises/{id}", api(http.HandlerFunc(app.exerciseGET)))
	mux.Handle("PUT /api/exercises/{id}", api(http.HandlerFunc(app.exerciseUpdatePUT)))
	mux.Handle("DELETE /api/exercises/{id}", api(http.HandlerFunc(app.exerciseDELETE)))

	mux.Handle("GET /api/history", api(http.HandlerFunc(app.historyGET)))

	mux.Handle("POST /api/sessions", api(http.HandlerFunc(app.sessionStartPOST)))
	mux.Handle("GET /api/sessions/active", api(http.HandlerFunc(app.sessionActiveGET)))
	mux.Handle("POST /api/sessions/active/sets", api(http.HandlerFunc(app.sessionLogSetPOST)))
	mux.Handle("POST /api/sessions/active/complete", api(http.HandlerFunc(app.sessionCompletePOST)))
	mux.Handle("POST /api/sessions/active/cancel", api(http.HandlerFunc(app.sessionCancelPOST)))

	mux.Handle("GET /api/strength/{exercise}", api(http.HandlerFunc(app.strengthGET)))

	mux.Handle("GET /api/profile", api(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", api(http.HandlerFunc(app.profilePUT)))

	mux.Handle("GET /api/favorites", api(http.HandlerFunc(app.favoritesGET)))
	mux.Handle("POST /api/favorites", api(http.HandlerFunc(app.favoriteCreatePOST)))
	mux.Handle("DELETE /api/favorites/{id}", api(http.HandlerFunc(app.favoriteDELETE)))

	mux.Handle("POST /api/plan", ai(http.HandlerFunc(app.planPOST)))
	mux.Handle("POST /api/ai-recommendations", ai(http.HandlerFunc(app.aiRecommendationsPOST)))

	mux.Handle("GET /api/test/timeout", api(http.HandlerFunc(app.testTimeout)))

	mux.Handle("/", api(http.HandlerFunc(app.notFound)))

	return mux
}
