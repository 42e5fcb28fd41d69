package api

import (
	"net/http"
	"net/url"

	"github.com/verbdrill/backend/internal/session"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Level           string   `json:"level,omitempty" example:"B1.1"`
	Topic           string   `json:"topic,omitempty" example:"praeposition"`
	Verbs           []string `json:"verbs,omitempty"`
	IncludePrevious bool     `json:"include_previous,omitempty"`

	// UserID loads the user's persisted favourite verbs for the
	// practice mix. FavouriteVerbs overrides them when set.
	UserID         string   `json:"user_id,omitempty" example:"default"`
	FavouriteVerbs []string `json:"favourite_verbs,omitempty"`

	// UseMix defaults to true; the mix only applies when a favourite
	// set is present. Ratio must be in [0, 1]; omitting it means the
	// default favourite share.
	UseMix  *bool    `json:"use_mix,omitempty"`
	Ratio   *float64 `json:"ratio,omitempty" example:"0.75"`
	Shuffle *bool    `json:"shuffle,omitempty"`
}

type SessionResponse struct {
	ID       string   `json:"id"`
	Position int      `json:"position" example:"1"`
	Total    int      `json:"total" example:"20"`
	Complete bool     `json:"complete"`
	Verbs    []string `json:"verbs"`
}

type CurrentExerciseResponse struct {
	Position int               `json:"position" example:"3"`
	Total    int               `json:"total" example:"20"`
	Complete bool              `json:"complete"`
	Exercise *ExerciseResponse `json:"exercise,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

func toSessionResponse(s *session.Session) SessionResponse {
	position, total := s.Progress()
	return SessionResponse{
		ID:       s.ID,
		Position: position,
		Total:    total,
		Complete: s.Complete(),
		Verbs:    s.Verbs(),
	}
}

func toCurrentResponse(s *session.Session) CurrentExerciseResponse {
	position, total := s.Progress()
	resp := CurrentExerciseResponse{
		Position: position,
		Total:    total,
		Complete: s.Complete(),
	}
	if ex, ok := s.Current(); ok {
		exResp := toExerciseResponse(ex)
		resp.Exercise = &exResp
	}
	return resp
}

// createSession starts a practice session over the filtered exercises.
// @Summary      Create a practice session
// @Description  Filters the store, applies the favourite/new-verb practice mix, and returns the session cursor.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session parameters"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Ratio != nil && (*req.Ratio < 0 || *req.Ratio > 1) {
		respondError(w, http.StatusBadRequest, "ratio must be between 0 and 1")
		return
	}

	values := url.Values{}
	values.Set("level", req.Level)
	values.Set("topic", req.Topic)
	if req.IncludePrevious {
		values.Set("include_previous", "true")
	}
	q, err := parseFilterQuery(values)
	if handleFilterError(w, err) {
		return
	}
	q.Verbs = req.Verbs

	filtered := h.store.Filter(q)
	if len(filtered) == 0 {
		respondError(w, http.StatusBadRequest, "no exercises match the given filters")
		return
	}

	favourites := make(map[string]bool)
	if req.UserID != "" && h.favourites != nil {
		favourites, err = h.favourites.VerbSet(req.UserID)
		if h.handleStoreError(w, err, "favourites") {
			return
		}
	}
	if len(req.FavouriteVerbs) > 0 {
		favourites = make(map[string]bool, len(req.FavouriteVerbs))
		for _, v := range req.FavouriteVerbs {
			favourites[v] = true
		}
	}

	opts := session.Options{
		Shuffle:        true,
		UseMix:         true,
		FavouriteVerbs: favourites,
	}
	if req.Shuffle != nil {
		opts.Shuffle = *req.Shuffle
	}
	if req.UseMix != nil {
		opts.UseMix = *req.UseMix
	}
	opts.Ratio = req.Ratio

	s := session.New(filtered, opts)
	h.sessions.Put(s)

	respondJSON(w, http.StatusCreated, toSessionResponse(s))
}

func (h *Handler) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := h.sessions.Get(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return s, true
}

// getSession returns the session's progress and verb list.
// @Summary      Get session progress
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session id"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(s))
}

// currentExercise returns the exercise under the cursor.
// @Summary      Current exercise
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session id"
// @Success      200        {object}  CurrentExerciseResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/current [get]
func (h *Handler) currentExercise(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, toCurrentResponse(s))
}

// nextExercise advances the cursor and returns the new current exercise.
// @Summary      Advance to the next exercise
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session id"
// @Success      200        {object}  CurrentExerciseResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/next [post]
func (h *Handler) nextExercise(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	s.Advance()
	respondJSON(w, http.StatusOK, toCurrentResponse(s))
}

// previousExercise moves the cursor back and returns the new current
// exercise. At the start of the session this is a no-op.
// @Summary      Go back one exercise
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session id"
// @Success      200        {object}  CurrentExerciseResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/previous [post]
func (h *Handler) previousExercise(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	s.Retreat()
	respondJSON(w, http.StatusOK, toCurrentResponse(s))
}

// deleteSession drops a session. Sessions hold no results, so there is
// nothing else to clean up.
// @Summary      Delete a session
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session id"
// @Success      204
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(r.PathValue("sessionID"))
	w.WriteHeader(http.StatusNoContent)
}
