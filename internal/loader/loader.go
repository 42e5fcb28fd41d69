// Package loader reads pre-authored exercise data from JSON files.
// The data directory holds one JSON array per (level, topic) pair:
//
//	data/exercises/{level_dir}/{topic}.json
//
// Level directories use underscores (a2_1 → A2.1). Loading fails fast on
// the first structural problem; there are no partial loads and no repairs.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/verbdrill/backend/internal/domain/exercise"
)

// Structural load errors. Callers dispatch with errors.Is.
var (
	ErrMissingDir    = errors.New("exercises directory not found")
	ErrMissingFile   = errors.New("exercise file not found")
	ErrMalformedJSON = errors.New("exercise file is not valid JSON")
	ErrNotArray      = errors.New("exercise file must contain a JSON array")
	ErrMissingField  = errors.New("exercise record is missing a required field")
	ErrDuplicateID   = errors.New("duplicate exercise id")
	ErrUnknownLevel  = errors.New("unknown level directory")
	ErrUnknownTopic  = errors.New("unexpected topic file")
	ErrTopicMismatch = errors.New("exercise topic does not match its file")
	ErrLevelMismatch = errors.New("exercise level does not match its directory")
)

// levelDirs maps on-disk directory names to level tokens.
var levelDirs = map[string]exercise.Level{
	"a2_1": exercise.LevelA21,
	"a2_2": exercise.LevelA22,
	"b1_1": exercise.LevelB11,
	"b1_2": exercise.LevelB12,
}

// record is the on-disk shape of one exercise, including the legacy
// field spellings still present in older data files.
type record struct {
	ID                string          `json:"id"`
	Level             string          `json:"level"`
	Verb              string          `json:"verb"`
	ChecklistItem     string          `json:"checklist_item"`
	TaskType          string          `json:"task_type"`
	Prompt            string          `json:"prompt"`
	Sentence          string          `json:"sentence"` // legacy prompt field
	ExampleSolutions  []string        `json:"example_solutions"`
	CorrectAnswers    []string        `json:"correct_answers"` // legacy solutions field
	Solution          json.RawMessage `json:"solution"`        // legacy single solution
	English           string          `json:"english"`
	Hint              string          `json:"hint"`
	Choices           []string        `json:"choices"`
	ConstructionHints []string        `json:"construction_hints"`
	StructuralHints   []string        `json:"structural_hints"`
	Tags              []string        `json:"tags"`
}

// LoadFile loads all exercises from a single JSON file.
func LoadFile(path string) ([]exercise.Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		var raw any
		if json.Unmarshal(data, &raw) != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedJSON, path, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotArray, path)
	}

	exercises := make([]exercise.Exercise, 0, len(records))
	for _, rec := range records {
		ex, err := rec.toExercise()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

func (r record) toExercise() (exercise.Exercise, error) {
	prompt := r.Prompt
	if prompt == "" {
		prompt = r.Sentence
	}
	if prompt == "" {
		return exercise.Exercise{}, fmt.Errorf("%w: exercise %s has no prompt", ErrMissingField, r.idOrUnknown())
	}

	solutions := r.ExampleSolutions
	if solutions == nil {
		solutions = r.CorrectAnswers
	}
	if solutions == nil && len(r.Solution) > 0 {
		var single string
		if err := json.Unmarshal(r.Solution, &single); err == nil {
			solutions = []string{single}
		} else if err := json.Unmarshal(r.Solution, &solutions); err != nil {
			return exercise.Exercise{}, fmt.Errorf("%w: exercise %s has an unreadable solution", ErrMissingField, r.idOrUnknown())
		}
	}
	if len(solutions) == 0 {
		return exercise.Exercise{}, fmt.Errorf("%w: exercise %s has no example solutions", ErrMissingField, r.idOrUnknown())
	}

	return exercise.Exercise{
		ID:                r.ID,
		Level:             exercise.Level(r.Level),
		Verb:              r.Verb,
		Topic:             exercise.Topic(r.ChecklistItem),
		TaskKind:          exercise.TaskKind(r.TaskType),
		Prompt:            prompt,
		ExampleSolutions:  dedupeSolutions(solutions),
		English:           r.English,
		Hint:              r.Hint,
		Choices:           r.Choices,
		ConstructionHints: r.ConstructionHints,
		StructuralHints:   r.StructuralHints,
		Tags:              r.Tags,
	}, nil
}

func (r record) idOrUnknown() string {
	if r.ID == "" {
		return "unknown"
	}
	return r.ID
}

// dedupeSolutions drops case-insensitive duplicates while keeping the
// first spelling for display.
func dedupeSolutions(solutions []string) []string {
	seen := make(map[string]bool)
	unique := make([]string, 0, len(solutions))
	for _, s := range solutions {
		key := strings.ToLower(strings.TrimSpace(s))
		if !seen[key] {
			seen[key] = true
			unique = append(unique, s)
		}
	}
	return unique
}

// Files lists the exercise JSON files under dataDir in deterministic
// order, rejecting level directories and topic files it does not know.
func Files(dataDir string) ([]string, error) {
	exercisesDir := filepath.Join(dataDir, "exercises")
	levelEntries, err := os.ReadDir(exercisesDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingDir, exercisesDir)
	}

	var files []string
	for _, levelEntry := range levelEntries {
		if !levelEntry.IsDir() {
			continue
		}
		if _, ok := levelDirs[strings.ToLower(levelEntry.Name())]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, levelEntry.Name())
		}

		levelDir := filepath.Join(exercisesDir, levelEntry.Name())
		topicEntries, err := os.ReadDir(levelDir)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", levelDir, err)
		}
		for _, topicEntry := range topicEntries {
			if topicEntry.IsDir() || !strings.HasSuffix(topicEntry.Name(), ".json") {
				continue
			}
			topicName := strings.TrimSuffix(topicEntry.Name(), ".json")
			if _, err := exercise.ParseTopic(topicName); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, topicEntry.Name())
			}
			files = append(files, filepath.Join(levelDir, topicEntry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadAll loads every exercise under dataDir. It verifies that ids are
// unique across the whole set and that each record's level and topic
// match the file it was found in. The returned order is deterministic:
// files sorted by path, records in file order.
func LoadAll(dataDir string) ([]exercise.Exercise, error) {
	files, err := Files(dataDir)
	if err != nil {
		return nil, err
	}

	var all []exercise.Exercise
	seenIDs := make(map[string]string) // id → file it came from
	for _, path := range files {
		fileLevel := levelDirs[strings.ToLower(filepath.Base(filepath.Dir(path)))]
		fileTopic := exercise.Topic(strings.TrimSuffix(filepath.Base(path), ".json"))

		exercises, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		for _, ex := range exercises {
			if origin, dup := seenIDs[ex.ID]; dup {
				return nil, fmt.Errorf("%w: %q found in %s and %s", ErrDuplicateID, ex.ID, origin, path)
			}
			seenIDs[ex.ID] = path

			if ex.Topic != fileTopic {
				return nil, fmt.Errorf("%w: exercise %s has topic %q in file %s", ErrTopicMismatch, ex.ID, ex.Topic, path)
			}
			if ex.Level != fileLevel {
				return nil, fmt.Errorf("%w: exercise %s has level %q in directory for %q", ErrLevelMismatch, ex.ID, ex.Level, fileLevel)
			}
			all = append(all, ex)
		}
	}
	return all, nil
}
