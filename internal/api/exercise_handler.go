package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/verbdrill/backend/internal/domain/exercise"
	"github.com/verbdrill/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

// ExerciseResponse carries everything a front-end needs to display one
// drill. Example solutions are included; the client decides when to
// reveal them. There is no graded result anywhere in the API.
type ExerciseResponse struct {
	ID                string   `json:"id" example:"a2_1_kasus_001"`
	Level             string   `json:"level" example:"A2.1"`
	Verb              string   `json:"verb" example:"helfen"`
	ChecklistItem     string   `json:"checklist_item" example:"kasus"`
	TaskType          string   `json:"task_type" example:"fill_blank"`
	Prompt            string   `json:"prompt" example:"Ich helfe ___ Mann."`
	Choices           []string `json:"choices,omitempty"`
	ConstructionHints []string `json:"construction_hints,omitempty"`
	StructuralHints   []string `json:"structural_hints,omitempty"`
	English           string   `json:"english" example:"I help the man."`
	Hint              string   `json:"hint" example:"helfen takes the dative"`
	ExampleSolutions  []string `json:"example_solutions"`
	Tags              []string `json:"tags,omitempty"`
}

func toExerciseResponse(ex exercise.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:                ex.ID,
		Level:             string(ex.Level),
		Verb:              ex.Verb,
		ChecklistItem:     string(ex.Topic),
		TaskType:          string(ex.TaskKind),
		Prompt:            ex.Prompt,
		Choices:           ex.Choices,
		ConstructionHints: ex.ConstructionHints,
		StructuralHints:   ex.StructuralHints,
		English:           ex.English,
		Hint:              ex.Hint,
		ExampleSolutions:  ex.ExampleSolutions,
		Tags:              ex.Tags,
	}
}

type ListExercisesResponse struct {
	Total     int                `json:"total" example:"42"`
	Exercises []ExerciseResponse `json:"exercises"`
}

type ListVerbsResponse struct {
	Verbs []string `json:"verbs"`
}

// parseFilterQuery builds a store.Query from URL query parameters.
// Unknown level or topic tokens are a caller error.
func parseFilterQuery(values url.Values) (store.Query, error) {
	var q store.Query

	if levelToken := values.Get("level"); levelToken != "" {
		level, err := exercise.ParseLevel(levelToken)
		if err != nil {
			return store.Query{}, err
		}
		q.Level = &level
	}
	if topicToken := values.Get("topic"); topicToken != "" {
		topic, err := exercise.ParseTopic(topicToken)
		if err != nil {
			return store.Query{}, err
		}
		q.Topic = &topic
	}
	if verbs := values.Get("verbs"); verbs != "" {
		for _, v := range strings.Split(verbs, ",") {
			if v = strings.TrimSpace(v); v != "" {
				q.Verbs = append(q.Verbs, v)
			}
		}
	}
	q.IncludePreviousLevels = values.Get("include_previous") == "true"

	return q, nil
}

// handleFilterError writes a 400 for unknown level/topic tokens.
// Returns true if an error was handled.
func handleFilterError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	respondError(w, http.StatusBadRequest, err.Error())
	return true
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listLevels returns the supported levels in ascending order.
// @Summary      List levels
// @Tags         Catalogue
// @Produce      json
// @Success      200  {array}  string
// @Router       /levels [get]
func (h *Handler) listLevels(w http.ResponseWriter, r *http.Request) {
	levels := exercise.Levels()
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = string(l)
	}
	respondJSON(w, http.StatusOK, out)
}

// listTopics returns the grammar topics exercises can drill.
// @Summary      List topics
// @Tags         Catalogue
// @Produce      json
// @Success      200  {array}  string
// @Router       /topics [get]
func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	topics := exercise.Topics()
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = string(t)
	}
	respondJSON(w, http.StatusOK, out)
}

// listExercises returns the exercises matching the given filters.
// @Summary      List exercises
// @Description  Filter by level, topic and verbs. include_previous=true widens a level filter to all earlier levels.
// @Tags         Catalogue
// @Produce      json
// @Param        level             query  string  false  "Level (A2.1, A2.2, B1.1, B1.2)"
// @Param        topic             query  string  false  "Topic (kasus, trennbar, praeposition, reflexiv, partizip_ii)"
// @Param        verbs             query  string  false  "Comma-separated verb list"
// @Param        include_previous  query  bool    false  "Include all levels before the given one"
// @Success      200  {object}  ListExercisesResponse
// @Failure      400  {object}  map[string]string
// @Router       /exercises [get]
func (h *Handler) listExercises(w http.ResponseWriter, r *http.Request) {
	q, err := parseFilterQuery(r.URL.Query())
	if handleFilterError(w, err) {
		return
	}

	filtered := h.store.Filter(q)
	out := make([]ExerciseResponse, len(filtered))
	for i, ex := range filtered {
		out[i] = toExerciseResponse(ex)
	}
	respondJSON(w, http.StatusOK, ListExercisesResponse{Total: len(out), Exercises: out})
}

// listVerbs returns the distinct verbs in the filtered subset.
// @Summary      List verbs
// @Tags         Catalogue
// @Produce      json
// @Param        level             query  string  false  "Level"
// @Param        topic             query  string  false  "Topic"
// @Param        include_previous  query  bool    false  "Include all levels before the given one"
// @Success      200  {object}  ListVerbsResponse
// @Failure      400  {object}  map[string]string
// @Router       /verbs [get]
func (h *Handler) listVerbs(w http.ResponseWriter, r *http.Request) {
	q, err := parseFilterQuery(r.URL.Query())
	if handleFilterError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, ListVerbsResponse{Verbs: exercise.Verbs(h.store.Filter(q))})
}
