package api

import "net/http"

// ── Request / Response types ────────────────────────────────────────────────

type FavouritesResponse struct {
	UserID string   `json:"user_id" example:"default"`
	Verbs  []string `json:"verbs"`
}

type ReplaceFavouritesRequest struct {
	Verbs []string `json:"verbs"`
}

type AddFavouriteRequest struct {
	Verb string `json:"verb" example:"gehen"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listFavourites returns the user's favourite verbs.
// @Summary      List favourite verbs
// @Tags         Favourites
// @Produce      json
// @Param        userID  path      string  true  "User id"
// @Success      200     {object}  FavouritesResponse
// @Router       /users/{userID}/favourites [get]
func (h *Handler) listFavourites(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	verbs, err := h.favourites.List(userID)
	if h.handleStoreError(w, err, "favourites") {
		return
	}
	if verbs == nil {
		verbs = []string{}
	}
	respondJSON(w, http.StatusOK, FavouritesResponse{UserID: userID, Verbs: verbs})
}

// replaceFavourites swaps the user's whole favourite set.
// @Summary      Replace favourite verbs
// @Tags         Favourites
// @Accept       json
// @Produce      json
// @Param        userID  path      string                    true  "User id"
// @Param        body    body      ReplaceFavouritesRequest  true  "New favourite set"
// @Success      200     {object}  FavouritesResponse
// @Failure      400     {object}  map[string]string
// @Router       /users/{userID}/favourites [put]
func (h *Handler) replaceFavourites(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	var req ReplaceFavouritesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.favourites.Replace(userID, req.Verbs); h.handleStoreError(w, err, "favourites") {
		return
	}
	verbs, err := h.favourites.List(userID)
	if h.handleStoreError(w, err, "favourites") {
		return
	}
	if verbs == nil {
		verbs = []string{}
	}
	respondJSON(w, http.StatusOK, FavouritesResponse{UserID: userID, Verbs: verbs})
}

// addFavourite marks one verb as favourite.
// @Summary      Add a favourite verb
// @Tags         Favourites
// @Accept       json
// @Produce      json
// @Param        userID  path      string               true  "User id"
// @Param        body    body      AddFavouriteRequest  true  "Verb to add"
// @Success      201     {object}  FavouritesResponse
// @Failure      400     {object}  map[string]string
// @Router       /users/{userID}/favourites [post]
func (h *Handler) addFavourite(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	var req AddFavouriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Verb == "" {
		respondError(w, http.StatusBadRequest, "verb is required")
		return
	}
	if err := h.favourites.Add(userID, req.Verb); h.handleStoreError(w, err, "favourites") {
		return
	}
	verbs, err := h.favourites.List(userID)
	if h.handleStoreError(w, err, "favourites") {
		return
	}
	respondJSON(w, http.StatusCreated, FavouritesResponse{UserID: userID, Verbs: verbs})
}

// removeFavourite unmarks a favourite verb.
// @Summary      Remove a favourite verb
// @Tags         Favourites
// @Param        userID  path  string  true  "User id"
// @Param        verb    path  string  true  "Verb to remove"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{userID}/favourites/{verb} [delete]
func (h *Handler) removeFavourite(w http.ResponseWriter, r *http.Request) {
	err := h.favourites.Remove(r.PathValue("userID"), r.PathValue("verb"))
	if h.handleStoreError(w, err, "favourite") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
