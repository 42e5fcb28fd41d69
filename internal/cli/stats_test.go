package cli

import (
	"testing"

	"github.com/verbdrill/backend/internal/domain/exercise"
)

func TestTallyExercises(t *testing.T) {
	exercises := []exercise.Exercise{
		{Level: exercise.LevelA21, Topic: exercise.TopicKasus, TaskKind: exercise.TaskFillBlank},
		{Level: exercise.LevelA21, Topic: exercise.TopicTrennbar, TaskKind: exercise.TaskFillBlank},
		{Level: exercise.LevelB11, Topic: exercise.TopicKasus, TaskKind: exercise.TaskMultipleChoice},
	}

	got := tallyExercises(exercises)

	if got.byLevel[exercise.LevelA21] != 2 || got.byLevel[exercise.LevelB11] != 1 {
		t.Errorf("unexpected level counts: %v", got.byLevel)
	}
	if got.byTopic[exercise.TopicKasus] != 2 || got.byTopic[exercise.TopicTrennbar] != 1 {
		t.Errorf("unexpected topic counts: %v", got.byTopic)
	}
	if got.byTask[exercise.TaskFillBlank] != 2 || got.byTask[exercise.TaskMultipleChoice] != 1 {
		t.Errorf("unexpected task counts: %v", got.byTask)
	}
	if got.byLevel[exercise.LevelB12] != 0 {
		t.Errorf("expected zero count for an absent level, got %d", got.byLevel[exercise.LevelB12])
	}
}

func TestTallyExercises_Empty(t *testing.T) {
	got := tallyExercises(nil)
	if len(got.byLevel) != 0 || len(got.byTopic) != 0 || len(got.byTask) != 0 {
		t.Errorf("expected empty tallies, got %+v", got)
	}
}
