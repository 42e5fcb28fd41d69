package api

import (
	"net/http"
	"time"

	"github.com/verbdrill/backend/internal/domain/exercise"
)

// ── Response types ──────────────────────────────────────────────────────────

type ExportData struct {
	Version    string              `json:"version" example:"1"`
	ExportedAt string              `json:"exported_at" example:"2026-08-25T10:00:00Z"`
	Total      int                 `json:"total" example:"42"`
	Exercises  []exercise.Exercise `json:"exercises"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportExercises downloads the filtered catalogue as a JSON document in
// the same shape the loader reads, so an export can be dropped back into
// a data directory.
// @Summary      Export exercises
// @Tags         Catalogue
// @Produce      json
// @Param        level             query  string  false  "Level"
// @Param        topic             query  string  false  "Topic"
// @Param        verbs             query  string  false  "Comma-separated verb list"
// @Param        include_previous  query  bool    false  "Include all levels before the given one"
// @Success      200  {object}  ExportData
// @Failure      400  {object}  map[string]string
// @Router       /export [get]
func (h *Handler) exportExercises(w http.ResponseWriter, r *http.Request) {
	q, err := parseFilterQuery(r.URL.Query())
	if handleFilterError(w, err) {
		return
	}

	filtered := h.store.Filter(q)
	w.Header().Set("Content-Disposition", `attachment; filename="exercises-export.json"`)
	respondJSON(w, http.StatusOK, ExportData{
		Version:    "1",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Total:      len(filtered),
		Exercises:  filtered,
	})
}
