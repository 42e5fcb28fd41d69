package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/verbdrill/backend/internal/store"
)

func newFavouriteStore(t *testing.T) *store.FavouriteStore {
	t.Helper()
	s, err := store.NewFavouriteStore(filepath.Join(t.TempDir(), "favourites.db"))
	if err != nil {
		t.Fatalf("failed to open favourites store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFavourites_AddAndList(t *testing.T) {
	s := newFavouriteStore(t)

	for _, verb := range []string{"helfen", "aufstehen", "helfen"} {
		if err := s.Add("anna", verb); err != nil {
			t.Fatalf("add %s: %v", verb, err)
		}
	}

	verbs, err := s.List("anna")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// Duplicate add is a no-op; listing is sorted.
	if len(verbs) != 2 || verbs[0] != "aufstehen" || verbs[1] != "helfen" {
		t.Errorf("unexpected favourites: %v", verbs)
	}
}

func TestFavourites_ListEmpty(t *testing.T) {
	s := newFavouriteStore(t)

	verbs, err := s.List("nobody")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(verbs) != 0 {
		t.Errorf("expected no favourites, got %v", verbs)
	}
}

func TestFavourites_UsersAreIsolated(t *testing.T) {
	s := newFavouriteStore(t)

	if err := s.Add("anna", "helfen"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add("ben", "sehen"); err != nil {
		t.Fatalf("add: %v", err)
	}

	verbs, err := s.List("ben")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(verbs) != 1 || verbs[0] != "sehen" {
		t.Errorf("expected only ben's verbs, got %v", verbs)
	}
}

func TestFavourites_Remove(t *testing.T) {
	s := newFavouriteStore(t)

	if err := s.Add("anna", "helfen"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Remove("anna", "helfen"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	verbs, err := s.List("anna")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(verbs) != 0 {
		t.Errorf("expected no favourites after remove, got %v", verbs)
	}
}

func TestFavourites_RemoveMissing(t *testing.T) {
	s := newFavouriteStore(t)

	if err := s.Remove("anna", "helfen"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFavourites_Replace(t *testing.T) {
	s := newFavouriteStore(t)

	if err := s.Add("anna", "helfen"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Replace("anna", []string{"sehen", "aufstehen"}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	verbs, err := s.List("anna")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(verbs) != 2 || verbs[0] != "aufstehen" || verbs[1] != "sehen" {
		t.Errorf("unexpected favourites after replace: %v", verbs)
	}
}

func TestFavourites_VerbSet(t *testing.T) {
	s := newFavouriteStore(t)

	if err := s.Add("anna", "helfen"); err != nil {
		t.Fatalf("add: %v", err)
	}

	set, err := s.VerbSet("anna")
	if err != nil {
		t.Fatalf("verb set: %v", err)
	}
	if !set["helfen"] || set["sehen"] {
		t.Errorf("unexpected verb set: %v", set)
	}
}
