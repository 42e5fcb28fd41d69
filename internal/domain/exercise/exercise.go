package exercise

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Topic is the grammar dimension an exercise drills (the checklist item
// in the exercise data files).
type Topic string

const (
	TopicKasus        Topic = "kasus"
	TopicTrennbar     Topic = "trennbar"
	TopicPraeposition Topic = "praeposition"
	TopicReflexiv     Topic = "reflexiv"
	TopicPartizipII   Topic = "partizip_ii"
)

var topicOrder = []Topic{TopicKasus, TopicTrennbar, TopicPraeposition, TopicReflexiv, TopicPartizipII}

// ErrUnknownTopic is returned when a topic token is not recognized.
var ErrUnknownTopic = fmt.Errorf("unknown topic")

// Topics returns all known topics.
func Topics() []Topic {
	out := make([]Topic, len(topicOrder))
	copy(out, topicOrder)
	return out
}

// ParseTopic converts a string token into a Topic.
func ParseTopic(s string) (Topic, error) {
	for _, t := range topicOrder {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTopic, s)
}

// TaskKind is the type of drill an exercise presents.
type TaskKind string

const (
	TaskFillBlank            TaskKind = "fill_blank"
	TaskMultipleChoice       TaskKind = "multiple_choice"
	TaskReorder              TaskKind = "reorder"
	TaskSentenceConstruction TaskKind = "sentence_construction"
)

var taskOrder = []TaskKind{TaskFillBlank, TaskMultipleChoice, TaskReorder, TaskSentenceConstruction}

// TaskKinds returns all known task kinds.
func TaskKinds() []TaskKind {
	out := make([]TaskKind, len(taskOrder))
	copy(out, taskOrder)
	return out
}

// BlankMarker is the placeholder for the missing part in fill-blank prompts.
const BlankMarker = "___"

// Exercise is a single pre-authored grammar drill. Exercises are loaded
// once from the data files and never mutated afterwards. The prompt shows
// the task; example solutions are display material, never graded against.
type Exercise struct {
	ID                string   `json:"id" validate:"required"`
	Level             Level    `json:"level" validate:"required,oneof=A2.1 A2.2 B1.1 B1.2"`
	Verb              string   `json:"verb" validate:"required"`
	Topic             Topic    `json:"checklist_item" validate:"required,oneof=kasus trennbar praeposition reflexiv partizip_ii"`
	TaskKind          TaskKind `json:"task_type" validate:"required,oneof=fill_blank multiple_choice reorder sentence_construction"`
	Prompt            string   `json:"prompt" validate:"required"`
	ExampleSolutions  []string `json:"example_solutions" validate:"required,min=1,dive,required"`
	English           string   `json:"english" validate:"required"`
	Hint              string   `json:"hint"`
	Choices           []string `json:"choices,omitempty"`
	ConstructionHints []string `json:"construction_hints,omitempty"`
	StructuralHints   []string `json:"structural_hints,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}

// ValidationError reports a business-rule violation on a single exercise.
type ValidationError struct {
	ExerciseID string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("exercise %s: %s", e.ExerciseID, e.Reason)
}

// maxLeakLen is the normalized-solution length above which a solution
// appearing inside the prompt counts as leaking the answer.
const maxLeakLen = 15

var punctStripper = strings.NewReplacer(".", "", ",", "", "!", "", "?", "", " ", "")

// Normalize lower-cases s and strips punctuation and spaces, so that
// prompt/solution comparisons ignore surface differences.
func Normalize(s string) string {
	return punctStripper.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Validate checks the business rules that hold for every exercise:
// multiple-choice tasks carry choices, example solutions exist, and the
// prompt does not contain a full solution unless it has a blank marker.
func (e *Exercise) Validate() error {
	if e.TaskKind == TaskMultipleChoice && len(e.Choices) == 0 {
		return &ValidationError{ExerciseID: e.ID, Reason: "multiple_choice task must have choices"}
	}

	if len(e.ExampleSolutions) == 0 {
		return &ValidationError{ExerciseID: e.ID, Reason: "example_solutions must contain at least one example"}
	}

	hasBlank := strings.Contains(e.Prompt, BlankMarker)
	promptClean := Normalize(strings.ReplaceAll(e.Prompt, BlankMarker, ""))

	for _, solution := range e.ExampleSolutions {
		solutionClean := Normalize(solution)
		if hasBlank {
			continue
		}
		if utf8.RuneCountInString(solutionClean) > maxLeakLen && strings.Contains(promptClean, solutionClean) {
			return &ValidationError{
				ExerciseID: e.ID,
				Reason:     fmt.Sprintf("prompt must not contain the full solution %q", solution),
			}
		}
	}

	return nil
}

// Verbs returns the sorted distinct verbs present in the given exercises.
func Verbs(exercises []Exercise) []string {
	seen := make(map[string]bool)
	var verbs []string
	for _, ex := range exercises {
		if !seen[ex.Verb] {
			seen[ex.Verb] = true
			verbs = append(verbs, ex.Verb)
		}
	}
	sort.Strings(verbs)
	return verbs
}
