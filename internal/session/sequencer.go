package session

import (
	"math/rand"
	"time"

	"github.com/verbdrill/backend/internal/domain/exercise"
)

// DefaultFavouriteRatio is the favourite share of the practice mix:
// three favourite-verb drills for every new-verb drill.
const DefaultFavouriteRatio = 0.75

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Shuffle returns the exercises in random order, spread by verb so the
// same verb is not drilled twice in a row when another verb is
// available. Pass a rand.Rand for deterministic tests; nil uses a
// time-seeded source.
func Shuffle(exercises []exercise.Exercise, rng *rand.Rand) []exercise.Exercise {
	if len(exercises) == 0 {
		return nil
	}
	if rng == nil {
		rng = newRand()
	}
	return interleaveByVerb(exercises, rng)
}

// Mix applies the practice mix before ordering: it selects roughly
// ratio favourite-verb exercises and (1-ratio) others, each target
// clipped to what its subset can supply, then orders the selection the
// same way Shuffle does. A short subset is never topped up from the
// other one, so the effective ratio shifts silently when supply runs
// low. Ratios outside [0, 1] are clamped to the nearest bound.
func Mix(exercises []exercise.Exercise, favouriteVerbs map[string]bool, ratio float64, rng *rand.Rand) []exercise.Exercise {
	if len(exercises) == 0 {
		return nil
	}
	if rng == nil {
		rng = newRand()
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	var favourites, others []exercise.Exercise
	for _, ex := range exercises {
		if favouriteVerbs[ex.Verb] {
			favourites = append(favourites, ex)
		} else {
			others = append(others, ex)
		}
	}

	total := len(exercises)
	targetFavourites := int(float64(total) * ratio)
	if targetFavourites > len(favourites) {
		targetFavourites = len(favourites)
	}
	targetOthers := total - int(float64(total)*ratio)
	if targetOthers > len(others) {
		targetOthers = len(others)
	}

	rng.Shuffle(len(favourites), func(i, j int) {
		favourites[i], favourites[j] = favourites[j], favourites[i]
	})
	rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	selected := make([]exercise.Exercise, 0, targetFavourites+targetOthers)
	selected = append(selected, favourites[:targetFavourites]...)
	selected = append(selected, others[:targetOthers]...)
	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	return interleaveByVerb(selected, rng)
}

// interleaveByVerb groups exercises by verb, shuffles within each group,
// deals one exercise per verb per round so repeats of the same verb are
// spread out, then applies a final shuffle pass. The anti-repetition is
// best effort: a verb that dominates the selection can still end up
// adjacent to itself.
func interleaveByVerb(exercises []exercise.Exercise, rng *rand.Rand) []exercise.Exercise {
	byVerb := make(map[string][]exercise.Exercise)
	var verbs []string
	for _, ex := range exercises {
		if _, ok := byVerb[ex.Verb]; !ok {
			verbs = append(verbs, ex.Verb)
		}
		byVerb[ex.Verb] = append(byVerb[ex.Verb], ex)
	}

	for _, verb := range verbs {
		group := byVerb[verb]
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
	}
	rng.Shuffle(len(verbs), func(i, j int) {
		verbs[i], verbs[j] = verbs[j], verbs[i]
	})

	maxCount := 0
	for _, verb := range verbs {
		if len(byVerb[verb]) > maxCount {
			maxCount = len(byVerb[verb])
		}
	}

	ordered := make([]exercise.Exercise, 0, len(exercises))
	for round := 0; round < maxCount; round++ {
		for _, verb := range verbs {
			if round < len(byVerb[verb]) {
				ordered = append(ordered, byVerb[verb][round])
			}
		}
	}

	rng.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	return ordered
}
