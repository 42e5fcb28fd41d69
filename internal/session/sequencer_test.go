package session_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/verbdrill/backend/internal/domain/exercise"
	"github.com/verbdrill/backend/internal/session"
)

// drills builds count exercises for a verb, with ids verb-0..verb-n.
func drills(verb string, count int) []exercise.Exercise {
	out := make([]exercise.Exercise, count)
	for i := range out {
		out[i] = exercise.Exercise{
			ID:               fmt.Sprintf("%s-%d", verb, i),
			Level:            exercise.LevelB11,
			Verb:             verb,
			Topic:            exercise.TopicKasus,
			TaskKind:         exercise.TaskFillBlank,
			Prompt:           "Ich ___ heute.",
			ExampleSolutions: []string{"übe"},
			English:          "I practice today.",
		}
	}
	return out
}

func idSet(exercises []exercise.Exercise) map[string]int {
	set := make(map[string]int)
	for _, ex := range exercises {
		set[ex.ID]++
	}
	return set
}

func TestShuffle_IsPermutation(t *testing.T) {
	input := append(drills("helfen", 10), drills("sehen", 10)...)
	rng := rand.New(rand.NewSource(1))

	got := session.Shuffle(input, rng)
	if len(got) != len(input) {
		t.Fatalf("expected %d exercises, got %d", len(input), len(got))
	}

	want := idSet(input)
	for id, n := range idSet(got) {
		if want[id] != n {
			t.Errorf("id %s appears %d times, want %d", id, n, want[id])
		}
	}
}

func TestShuffle_Empty(t *testing.T) {
	if got := session.Shuffle(nil, rand.New(rand.NewSource(1))); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	input := append(drills("helfen", 5), drills("sehen", 5)...)
	session.New(input, session.Options{Shuffle: true, Rand: rand.New(rand.NewSource(1))})

	for i, ex := range input {
		wantVerb := "helfen"
		if i >= 5 {
			wantVerb = "sehen"
		}
		if ex.Verb != wantVerb {
			t.Fatalf("input slice mutated at %d: %s", i, ex.ID)
		}
	}
}

func TestMix_Counts(t *testing.T) {
	// 80 favourite drills and 40 others at ratio 0.75 over 120 total:
	// targets are 90 favourites (clipped to 80) and 30 others.
	input := append(drills("helfen", 80), drills("sehen", 40)...)
	favourites := map[string]bool{"helfen": true}

	got := session.Mix(input, favourites, 0.75, rand.New(rand.NewSource(7)))

	var favCount, otherCount int
	for _, ex := range got {
		if favourites[ex.Verb] {
			favCount++
		} else {
			otherCount++
		}
	}
	if favCount != 80 {
		t.Errorf("expected 80 favourite drills, got %d", favCount)
	}
	if otherCount != 30 {
		t.Errorf("expected 30 other drills, got %d", otherCount)
	}
}

func TestMix_ExactRatio(t *testing.T) {
	// 75 of 100 favourites available: no clipping on either side.
	input := append(drills("helfen", 75), drills("sehen", 25)...)
	favourites := map[string]bool{"helfen": true}

	got := session.Mix(input, favourites, 0.75, rand.New(rand.NewSource(3)))
	if len(got) != 100 {
		t.Fatalf("expected 100 exercises, got %d", len(got))
	}

	var favCount int
	for _, ex := range got {
		if favourites[ex.Verb] {
			favCount++
		}
	}
	if favCount != 75 {
		t.Errorf("expected 75 favourite drills, got %d", favCount)
	}
}

func TestMix_NoDuplicates(t *testing.T) {
	input := append(drills("helfen", 20), drills("sehen", 20)...)
	favourites := map[string]bool{"helfen": true}

	got := session.Mix(input, favourites, 0.75, rand.New(rand.NewSource(11)))
	for id, n := range idSet(got) {
		if n != 1 {
			t.Errorf("id %s selected %d times", id, n)
		}
	}
}

func TestMix_RatioOneExcludesOthers(t *testing.T) {
	input := append(drills("gehen", 2), drills("kommen", 1)...)
	favourites := map[string]bool{"gehen": true}

	got := session.Mix(input, favourites, 1.0, rand.New(rand.NewSource(5)))
	if len(got) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(got))
	}
	for _, ex := range got {
		if ex.Verb != "gehen" {
			t.Errorf("ratio 1.0 must exclude non-favourites, got %s", ex.ID)
		}
	}
}

func TestMix_RatioZeroExcludesFavourites(t *testing.T) {
	input := append(drills("gehen", 2), drills("kommen", 3)...)
	favourites := map[string]bool{"gehen": true}

	got := session.Mix(input, favourites, 0, rand.New(rand.NewSource(5)))
	if len(got) != 3 {
		t.Fatalf("expected 3 exercises, got %d", len(got))
	}
	for _, ex := range got {
		if ex.Verb != "kommen" {
			t.Errorf("ratio 0 must exclude favourites, got %s", ex.ID)
		}
	}
}

func TestMix_NoFavouritesAvailable(t *testing.T) {
	input := drills("sehen", 8)
	favourites := map[string]bool{"helfen": true}

	got := session.Mix(input, favourites, 0.75, rand.New(rand.NewSource(9)))
	// Favourite target clips to zero; only the other share remains.
	if len(got) != 2 {
		t.Errorf("expected 2 exercises (25%% of 8), got %d", len(got))
	}
}

func adjacentEqualVerbPairs(exercises []exercise.Exercise) int {
	pairs := 0
	for i := 1; i < len(exercises); i++ {
		if exercises[i].Verb == exercises[i-1].Verb {
			pairs++
		}
	}
	return pairs
}

func TestShuffle_SpreadsVerbs(t *testing.T) {
	// One verb dominating the set: repeats become unavoidable once the
	// minority verb runs out, but never beyond total minus distinct verbs.
	input := append(drills("helfen", 3), drills("sehen", 1)...)

	for seed := int64(0); seed < 20; seed++ {
		got := session.Shuffle(input, rand.New(rand.NewSource(seed)))
		if pairs := adjacentEqualVerbPairs(got); pairs > len(got)-2 {
			t.Errorf("seed %d: %d adjacent equal-verb pairs, want at most %d", seed, pairs, len(got)-2)
		}
	}
}

func TestMix_RatioAboveOneIsClamped(t *testing.T) {
	input := append(drills("gehen", 2), drills("kommen", 3)...)
	favourites := map[string]bool{"gehen": true}

	got := session.Mix(input, favourites, 2.0, rand.New(rand.NewSource(13)))
	if len(got) != 2 {
		t.Fatalf("expected the 2 favourite exercises, got %d", len(got))
	}
	for _, ex := range got {
		if ex.Verb != "gehen" {
			t.Errorf("clamped ratio must behave like 1.0, got %s", ex.ID)
		}
	}
}

func TestMix_NegativeRatioIsClamped(t *testing.T) {
	input := append(drills("gehen", 2), drills("kommen", 3)...)
	favourites := map[string]bool{"gehen": true}

	got := session.Mix(input, favourites, -0.5, rand.New(rand.NewSource(13)))
	if len(got) != 3 {
		t.Fatalf("expected the 3 non-favourite exercises, got %d", len(got))
	}
	for _, ex := range got {
		if ex.Verb != "kommen" {
			t.Errorf("clamped ratio must behave like 0, got %s", ex.ID)
		}
	}
}

func TestMix_Empty(t *testing.T) {
	if got := session.Mix(nil, map[string]bool{"helfen": true}, 0.75, nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
