// Package store holds the validated in-memory exercise collection and
// the persistent per-user favourites.
package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/verbdrill/backend/internal/domain/exercise"
	"github.com/verbdrill/backend/internal/validator"
)

var ErrNotFound = errors.New("not found")

// Key identifies one (level, topic) group of exercises, mirroring the
// file the group was loaded from.
type Key struct {
	Level exercise.Level
	Topic exercise.Topic
}

// Store is an immutable, validated collection of exercises. New is the
// only way to build one, and New refuses records that fail validation,
// so every Store a caller can hold is safe to filter and sequence from.
type Store struct {
	ordered []exercise.Exercise
	groups  map[Key][]exercise.Exercise
}

// New builds a Store from records, validating them first. Record order
// is preserved; it becomes the store's iteration order.
func New(records []exercise.Exercise, v *validator.Validator) (*Store, error) {
	if report := v.ValidateAll(records); !report.OK() {
		return nil, report.Err()
	}

	seen := make(map[string]bool, len(records))
	for _, ex := range records {
		if seen[ex.ID] {
			return nil, fmt.Errorf("%w: duplicate exercise id %q", validator.ErrInvalid, ex.ID)
		}
		seen[ex.ID] = true
	}

	s := &Store{
		ordered: make([]exercise.Exercise, len(records)),
		groups:  make(map[Key][]exercise.Exercise),
	}
	copy(s.ordered, records)
	for _, ex := range s.ordered {
		k := Key{Level: ex.Level, Topic: ex.Topic}
		s.groups[k] = append(s.groups[k], ex)
	}
	return s, nil
}

// Len returns the number of exercises in the store.
func (s *Store) Len() int {
	return len(s.ordered)
}

// All returns every exercise in store iteration order.
func (s *Store) All() []exercise.Exercise {
	out := make([]exercise.Exercise, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Keys returns the populated (level, topic) groups, sorted by level then
// topic.
func (s *Store) Keys() []Key {
	keys := make([]Key, 0, len(s.groups))
	for k := range s.groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Level != keys[j].Level {
			return keys[i].Level.Before(keys[j].Level)
		}
		return keys[i].Topic < keys[j].Topic
	})
	return keys
}

// Group returns the exercises under one (level, topic) key.
func (s *Store) Group(k Key) []exercise.Exercise {
	group := s.groups[k]
	out := make([]exercise.Exercise, len(group))
	copy(out, group)
	return out
}

// Verbs returns the sorted distinct verbs across the whole store.
func (s *Store) Verbs() []string {
	return exercise.Verbs(s.ordered)
}

// Query restricts a Filter call. Nil pointer fields mean "no constraint".
// Tokens are parsed before a Query is built, so a Query only ever holds
// known levels and topics.
type Query struct {
	Level                 *exercise.Level
	Topic                 *exercise.Topic
	Verbs                 []string
	IncludePreviousLevels bool
}

// Filter returns the exercises matching every supplied constraint, in
// store iteration order. It is pure: same store, same query, same result.
func (s *Store) Filter(q Query) []exercise.Exercise {
	wantLevels := make(map[exercise.Level]bool)
	if q.Level != nil {
		wantLevels[*q.Level] = true
		if q.IncludePreviousLevels {
			for _, prev := range q.Level.Previous() {
				wantLevels[prev] = true
			}
		}
	}

	wantVerbs := make(map[string]bool, len(q.Verbs))
	for _, v := range q.Verbs {
		wantVerbs[v] = true
	}

	var out []exercise.Exercise
	for _, ex := range s.ordered {
		if q.Level != nil && !wantLevels[ex.Level] {
			continue
		}
		if q.Topic != nil && ex.Topic != *q.Topic {
			continue
		}
		if len(wantVerbs) > 0 && !wantVerbs[ex.Verb] {
			continue
		}
		out = append(out, ex)
	}
	return out
}
