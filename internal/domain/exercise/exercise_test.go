package exercise_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/verbdrill/backend/internal/domain/exercise"
)

func validExercise() exercise.Exercise {
	return exercise.Exercise{
		ID:               "b1_1_kasus_helfen_1",
		Level:            exercise.LevelB11,
		Verb:             "helfen",
		Topic:            exercise.TopicKasus,
		TaskKind:         exercise.TaskFillBlank,
		Prompt:           "Ich helfe ___ Mann.",
		ExampleSolutions: []string{"dem"},
		English:          "I help the man.",
	}
}

func TestParseTopic(t *testing.T) {
	topic, err := exercise.ParseTopic("partizip_ii")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topic != exercise.TopicPartizipII {
		t.Errorf("expected %s, got %s", exercise.TopicPartizipII, topic)
	}

	if _, err := exercise.ParseTopic("dativ"); !errors.Is(err, exercise.ErrUnknownTopic) {
		t.Errorf("expected ErrUnknownTopic, got %v", err)
	}
}

func TestTaskKinds(t *testing.T) {
	kinds := exercise.TaskKinds()
	if len(kinds) != 4 {
		t.Fatalf("expected 4 task kinds, got %d", len(kinds))
	}
	if kinds[0] != exercise.TaskFillBlank || kinds[3] != exercise.TaskSentenceConstruction {
		t.Errorf("unexpected task kind order: %v", kinds)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ich habe mich gefreut.", "ichhabemichgefreut"},
		{"  Wo warst du?! ", "wowarstdu"},
		{"Steh auf, bitte", "stehaufbitte"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := exercise.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate_OK(t *testing.T) {
	ex := validExercise()
	if err := ex.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_MultipleChoiceNeedsChoices(t *testing.T) {
	ex := validExercise()
	ex.TaskKind = exercise.TaskMultipleChoice
	ex.Choices = nil

	err := ex.Validate()
	var verr *exercise.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.ExerciseID != ex.ID {
		t.Errorf("expected error for exercise %s, got %s", ex.ID, verr.ExerciseID)
	}

	ex.Choices = []string{"dem", "den", "der"}
	if err := ex.Validate(); err != nil {
		t.Errorf("unexpected error once choices present: %v", err)
	}
}

func TestValidate_EmptySolutions(t *testing.T) {
	ex := validExercise()
	ex.ExampleSolutions = nil

	if err := ex.Validate(); err == nil {
		t.Error("expected error for empty example solutions, got nil")
	}
}

func TestValidate_SolutionLeaksIntoPrompt(t *testing.T) {
	solution := "Ich habe mich auf das Wochenende gefreut."
	ex := validExercise()
	ex.TaskKind = exercise.TaskSentenceConstruction
	ex.Prompt = "Bilde einen Satz: " + solution
	ex.ExampleSolutions = []string{solution}

	err := ex.Validate()
	var verr *exercise.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(verr.Reason, "solution") {
		t.Errorf("unexpected reason %q", verr.Reason)
	}
}

func TestValidate_ShortSolutionInPromptIsFine(t *testing.T) {
	// Short echoes are unavoidable in German; only full long solutions count.
	ex := validExercise()
	ex.Prompt = "Hilfst du dem Mann? Ja, ich helfe dem Mann gern."
	ex.ExampleSolutions = []string{"dem"}

	if err := ex.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_BlankMarkerExemptsLeakCheck(t *testing.T) {
	solution := "Ich habe mich auf das Wochenende gefreut."
	ex := validExercise()
	ex.Prompt = solution + " ___"
	ex.ExampleSolutions = []string{solution}

	if err := ex.Validate(); err != nil {
		t.Errorf("unexpected error with blank marker present: %v", err)
	}
}

func TestValidate_LeakIgnoresCaseAndPunctuation(t *testing.T) {
	ex := validExercise()
	ex.TaskKind = exercise.TaskReorder
	ex.Prompt = "Ordne: ICH HABE MICH AUF DAS WOCHENENDE GEFREUT"
	ex.ExampleSolutions = []string{"Ich habe mich auf das Wochenende gefreut."}

	if err := ex.Validate(); err == nil {
		t.Error("expected leak to be detected despite case and punctuation differences")
	}
}

func TestVerbs(t *testing.T) {
	exercises := []exercise.Exercise{
		{Verb: "helfen"},
		{Verb: "aufstehen"},
		{Verb: "helfen"},
		{Verb: "sich freuen"},
	}

	verbs := exercise.Verbs(exercises)
	want := []string{"aufstehen", "helfen", "sich freuen"}
	if len(verbs) != len(want) {
		t.Fatalf("expected %d verbs, got %d", len(want), len(verbs))
	}
	for i, v := range want {
		if verbs[i] != v {
			t.Errorf("expected verbs[%d] = %s, got %s", i, v, verbs[i])
		}
	}
}

func TestVerbs_Empty(t *testing.T) {
	if verbs := exercise.Verbs(nil); len(verbs) != 0 {
		t.Errorf("expected no verbs, got %v", verbs)
	}
}
