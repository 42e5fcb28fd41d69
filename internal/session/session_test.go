package session_test

import (
	"math/rand"
	"testing"

	"github.com/verbdrill/backend/internal/session"
)

func TestNew_NoShuffleKeepsOrder(t *testing.T) {
	input := append(drills("helfen", 2), drills("sehen", 2)...)

	sess := session.New(input, session.Options{})
	if sess.ID == "" {
		t.Error("expected a session id")
	}
	if sess.Len() != 4 {
		t.Fatalf("expected 4 exercises, got %d", sess.Len())
	}

	for _, want := range []string{"helfen-0", "helfen-1", "sehen-0", "sehen-1"} {
		ex, ok := sess.Current()
		if !ok {
			t.Fatal("session ended early")
		}
		if ex.ID != want {
			t.Errorf("expected %s, got %s", want, ex.ID)
		}
		sess.Advance()
	}
}

func TestSession_CursorLifecycle(t *testing.T) {
	sess := session.New(drills("helfen", 3), session.Options{})

	if sess.Complete() {
		t.Fatal("new session must not be complete")
	}
	position, total := sess.Progress()
	if position != 1 || total != 3 {
		t.Errorf("expected progress 1/3, got %d/%d", position, total)
	}

	if !sess.Advance() {
		t.Error("advance to exercise 2 should keep the session active")
	}
	if !sess.Advance() {
		t.Error("advance to exercise 3 should keep the session active")
	}
	if sess.Advance() {
		t.Error("advancing past the end should report completion")
	}
	if !sess.Complete() {
		t.Error("session should be complete after the last advance")
	}
	if _, ok := sess.Current(); ok {
		t.Error("complete session must not return a current exercise")
	}

	position, total = sess.Progress()
	if position != 3 || total != 3 {
		t.Errorf("expected clamped progress 3/3, got %d/%d", position, total)
	}
}

func TestSession_AdvanceIsIdempotentAtEnd(t *testing.T) {
	sess := session.New(drills("helfen", 1), session.Options{})

	sess.Advance()
	sess.Advance()
	sess.Advance()

	if position, total := sess.Progress(); position != 1 || total != 1 {
		t.Errorf("expected progress 1/1, got %d/%d", position, total)
	}
	// One retreat from Complete re-activates the last exercise.
	if !sess.Retreat() {
		t.Fatal("retreat from complete should succeed")
	}
	if _, ok := sess.Current(); !ok {
		t.Error("expected session to be active again")
	}
}

func TestSession_RetreatClampsAtStart(t *testing.T) {
	sess := session.New(drills("helfen", 2), session.Options{})

	if sess.Retreat() {
		t.Error("retreat at the start should be a no-op")
	}

	first, _ := sess.Current()
	sess.Advance()
	if !sess.Retreat() {
		t.Fatal("retreat after advance should succeed")
	}
	again, _ := sess.Current()
	if first.ID != again.ID {
		t.Errorf("expected to be back on %s, got %s", first.ID, again.ID)
	}
}

func TestSession_Empty(t *testing.T) {
	sess := session.New(nil, session.Options{Shuffle: true})

	if !sess.Complete() {
		t.Error("empty session should be complete immediately")
	}
	if sess.Advance() {
		t.Error("advancing an empty session should report completion")
	}
	if sess.Retreat() {
		t.Error("retreating an empty session should be a no-op")
	}
}

func ratioOf(v float64) *float64 {
	return &v
}

func TestSession_MixUsedOnlyWithFavourites(t *testing.T) {
	input := append(drills("gehen", 2), drills("kommen", 1)...)

	// With favourites and ratio 1.0 the mix drops every non-favourite.
	sess := session.New(input, session.Options{
		Shuffle:        true,
		UseMix:         true,
		FavouriteVerbs: map[string]bool{"gehen": true},
		Ratio:          ratioOf(1.0),
		Rand:           rand.New(rand.NewSource(2)),
	})
	if sess.Len() != 2 {
		t.Errorf("expected mix to keep 2 exercises, got %d", sess.Len())
	}

	// Without favourites the mix is skipped and nothing is dropped.
	sess = session.New(input, session.Options{
		Shuffle: true,
		UseMix:  true,
		Ratio:   ratioOf(1.0),
		Rand:    rand.New(rand.NewSource(2)),
	})
	if sess.Len() != 3 {
		t.Errorf("expected plain shuffle to keep all 3 exercises, got %d", sess.Len())
	}
}

func TestSession_ExplicitZeroRatio(t *testing.T) {
	input := append(drills("gehen", 2), drills("kommen", 3)...)

	// An explicit zero is "no favourites", not the default share.
	sess := session.New(input, session.Options{
		Shuffle:        true,
		UseMix:         true,
		FavouriteVerbs: map[string]bool{"gehen": true},
		Ratio:          ratioOf(0),
		Rand:           rand.New(rand.NewSource(4)),
	})
	if sess.Len() != 3 {
		t.Fatalf("expected the 3 non-favourite exercises, got %d", sess.Len())
	}
	for _, verb := range sess.Verbs() {
		if verb != "kommen" {
			t.Errorf("expected only non-favourite verbs, got %s", verb)
		}
	}
}

func TestSession_NilRatioMeansDefault(t *testing.T) {
	// 80 favourites and 40 others: the default 0.75 share of 120 targets
	// 90 favourites (clipped to 80) and 30 others.
	input := append(drills("gehen", 80), drills("kommen", 40)...)

	sess := session.New(input, session.Options{
		Shuffle:        true,
		UseMix:         true,
		FavouriteVerbs: map[string]bool{"gehen": true},
		Rand:           rand.New(rand.NewSource(6)),
	})
	if sess.Len() != 110 {
		t.Errorf("expected 110 exercises under the default ratio, got %d", sess.Len())
	}
}

func TestSession_Verbs(t *testing.T) {
	input := append(drills("sehen", 1), drills("aufstehen", 1)...)
	sess := session.New(input, session.Options{})

	verbs := sess.Verbs()
	if len(verbs) != 2 || verbs[0] != "aufstehen" || verbs[1] != "sehen" {
		t.Errorf("unexpected verbs: %v", verbs)
	}
}

func TestRegistry(t *testing.T) {
	registry := session.NewRegistry()
	sess := session.New(drills("helfen", 1), session.Options{})

	registry.Put(sess)
	got, ok := registry.Get(sess.ID)
	if !ok || got != sess {
		t.Fatalf("expected to find session %s", sess.ID)
	}

	registry.Delete(sess.ID)
	if _, ok := registry.Get(sess.ID); ok {
		t.Error("expected session to be gone after delete")
	}
}
