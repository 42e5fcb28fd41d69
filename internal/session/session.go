// Package session turns a filtered exercise list into a practice
// ordering and tracks a cursor over it. Nothing here grades anything;
// a session only decides what to show next.
package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/verbdrill/backend/internal/domain/exercise"
)

// Options configures how a session orders its exercises.
type Options struct {
	// Shuffle randomizes the order. When false the filtered order is
	// kept as is.
	Shuffle bool
	// FavouriteVerbs is the learner's favourite set, used by the
	// practice mix.
	FavouriteVerbs map[string]bool
	// UseMix applies the favourite/new-verb practice mix. It has no
	// effect when the favourite set is empty.
	UseMix bool
	// Ratio is the favourite share of the mix. Nil means
	// DefaultFavouriteRatio; an explicit zero excludes favourites.
	Ratio *float64
	// Rand makes the ordering deterministic in tests. Nil uses a
	// time-seeded source.
	Rand *rand.Rand
}

// Session is a cursor over a fixed practice ordering. It is Active
// while the cursor points at an exercise and Complete once the cursor
// has advanced past the end. A Session is owned by a single caller and
// is not safe for concurrent use.
type Session struct {
	ID        string
	StartedAt time.Time

	exercises []exercise.Exercise
	index     int
}

// New builds a session over the given exercises, ordering them per opts.
func New(exercises []exercise.Exercise, opts Options) *Session {
	ordered := make([]exercise.Exercise, len(exercises))
	copy(ordered, exercises)

	if opts.Shuffle {
		if opts.UseMix && len(opts.FavouriteVerbs) > 0 {
			ratio := DefaultFavouriteRatio
			if opts.Ratio != nil {
				ratio = *opts.Ratio
			}
			ordered = Mix(ordered, opts.FavouriteVerbs, ratio, opts.Rand)
		} else {
			ordered = Shuffle(ordered, opts.Rand)
		}
	}

	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		exercises: ordered,
	}
}

// Len returns the number of exercises in the session.
func (s *Session) Len() int {
	return len(s.exercises)
}

// Complete reports whether the cursor has moved past the last exercise.
func (s *Session) Complete() bool {
	return s.index >= len(s.exercises)
}

// Current returns the exercise under the cursor. The second return is
// false once the session is complete.
func (s *Session) Current() (exercise.Exercise, bool) {
	if s.Complete() {
		return exercise.Exercise{}, false
	}
	return s.exercises[s.index], true
}

// Advance moves the cursor forward. It returns false when the move
// completed the session.
func (s *Session) Advance() bool {
	if s.index < len(s.exercises) {
		s.index++
	}
	return !s.Complete()
}

// Retreat moves the cursor back one exercise. At the start it is a
// no-op and returns false. Retreating from Complete re-activates the
// session on its last exercise.
func (s *Session) Retreat() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

// Progress returns the one-based cursor position and the total count.
// For a complete session the position equals the total.
func (s *Session) Progress() (position, total int) {
	total = len(s.exercises)
	position = s.index + 1
	if position > total {
		position = total
	}
	return position, total
}

// Verbs returns the sorted distinct verbs drilled in this session.
func (s *Session) Verbs() []string {
	return exercise.Verbs(s.exercises)
}
