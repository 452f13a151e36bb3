// Package seeded provides deterministic stand-ins for randomness. All
// quiz content is selected with these helpers so that the same seed
// always yields the same selection, letting level content be
// regenerated from the level number instead of persisted.
package seeded

// The mixing constants form a small linear-congruential hash. The exact
// formula is an observable contract: progress is keyed by level id, so
// regenerated levels must match what existing installations have seen.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Fraction returns a deterministic value in [0, 1) for a seed and step.
func Fraction(seed, step int) float64 {
	v := (seed*lcgMultiplier + step*lcgIncrement) % lcgModulus
	if v < 0 {
		v += lcgModulus
	}
	return float64(v) / float64(lcgModulus)
}

// Shuffle returns a deterministic permutation of items. The input is
// never modified. Equal seeds always produce the same order.
func Shuffle[T any](items []T, seed int) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := int(Fraction(seed, i) * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Pick returns one item chosen by seed modulo length. Negative seeds
// are normalized into range. Panics on an empty slice; content tables
// are non-empty by construction so an empty pool is a programming
// defect, not a runtime condition.
func Pick[T any](items []T, seed int) T {
	idx := seed % len(items)
	if idx < 0 {
		idx += len(items)
	}
	return items[idx]
}

// UniquePick returns count distinct items chosen deterministically. If
// the pool holds fewer than count items, the result cycles from the
// start of the shuffled pool rather than failing; only in that case can
// duplicates appear.
func UniquePick[T any](items []T, seed, count int) []T {
	shuffled := Shuffle(items, seed)
	out := make([]T, count)
	for i := 0; i < count; i++ {
		out[i] = shuffled[i%len(shuffled)]
	}
	return out
}

// Options builds an answer option list of exactly count entries: the
// correct answer exactly once plus distractors drawn from pool, with
// accidental duplicates of the correct answer excluded. The final order
// is shuffled by seed. Returns the options and the index of correct.
func Options(correct string, pool []string, seed, count int) ([]string, int) {
	candidates := make([]string, 0, len(pool))
	seen := map[string]bool{correct: true}
	for _, p := range pool {
		if seen[p] {
			continue
		}
		seen[p] = true
		candidates = append(candidates, p)
	}

	opts := []string{correct}
	for _, d := range UniquePick(candidates, seed+1, min(count-1, len(candidates))) {
		opts = append(opts, d)
	}

	opts = Shuffle(opts, seed)
	for i, o := range opts {
		if o == correct {
			return opts, i
		}
	}
	// Unreachable: correct is always present.
	return opts, 0
}
