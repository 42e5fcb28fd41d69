package api

import "net/http"

// RegisterRoutes wires every API route onto mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Catalogue
	mux.HandleFunc("GET /levels", h.listLevels)
	mux.HandleFunc("GET /topics", h.listTopics)
	mux.HandleFunc("GET /exercises", h.listExercises)
	mux.HandleFunc("GET /verbs", h.listVerbs)
	mux.HandleFunc("GET /export", h.exportExercises)

	// Favourites
	mux.HandleFunc("GET /users/{userID}/favourites", h.listFavourites)
	mux.HandleFunc("PUT /users/{userID}/favourites", h.replaceFavourites)
	mux.HandleFunc("POST /users/{userID}/favourites", h.addFavourite)
	mux.HandleFunc("DELETE /users/{userID}/favourites/{verb}", h.removeFavourite)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("GET /sessions/{sessionID}/current", h.currentExercise)
	mux.HandleFunc("POST /sessions/{sessionID}/next", h.nextExercise)
	mux.HandleFunc("POST /sessions/{sessionID}/previous", h.previousExercise)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.deleteSession)
}
