package seeded

import (
	"reflect"
	"sort"
	"testing"
)

func TestShuffleDeterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	first := Shuffle(items, 42)
	second := Shuffle(items, 42)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different orders: %v vs %v", first, second)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	for seed := 0; seed < 50; seed++ {
		shuffled := Shuffle(items, seed)
		if len(shuffled) != len(items) {
			t.Fatalf("seed %d: length %d, want %d", seed, len(shuffled), len(items))
		}

		sorted := make([]string, len(shuffled))
		copy(sorted, shuffled)
		sort.Strings(sorted)

		want := make([]string, len(items))
		copy(want, items)
		sort.Strings(want)

		if !reflect.DeepEqual(sorted, want) {
			t.Errorf("seed %d: not a permutation: %v", seed, shuffled)
		}
	}
}

func TestShuffleDoesNotModifyInput(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	original := []string{"a", "b", "c", "d"}

	Shuffle(items, 7)

	if !reflect.DeepEqual(items, original) {
		t.Errorf("input modified: %v", items)
	}
}

func TestPick(t *testing.T) {
	items := []string{"a", "b", "c"}

	tests := []struct {
		name string
		seed int
		want string
	}{
		{"zero seed", 0, "a"},
		{"seed one", 1, "b"},
		{"wraps around", 4, "b"},
		{"negative seed normalized", -1, "c"},
		{"large negative seed", -7, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pick(items, tt.seed); got != tt.want {
				t.Errorf("Pick(%d) = %v, want %v", tt.seed, got, tt.want)
			}
		})
	}
}

func TestUniquePickNoDuplicates(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f"}

	for seed := 0; seed < 30; seed++ {
		picked := UniquePick(items, seed, 4)
		if len(picked) != 4 {
			t.Fatalf("seed %d: got %d items, want 4", seed, len(picked))
		}
		seen := make(map[string]bool)
		for _, p := range picked {
			if seen[p] {
				t.Errorf("seed %d: duplicate %q in %v", seed, p, picked)
			}
			seen[p] = true
		}
	}
}

func TestUniquePickCyclesSmallPool(t *testing.T) {
	items := []string{"a", "b"}

	picked := UniquePick(items, 3, 5)
	if len(picked) != 5 {
		t.Fatalf("got %d items, want 5", len(picked))
	}
	// With a pool of 2 the result must cycle, repeating the shuffled
	// pool from the start.
	if picked[0] != picked[2] || picked[1] != picked[3] || picked[0] != picked[4] {
		t.Errorf("expected cycling pattern, got %v", picked)
	}
}

func TestOptions(t *testing.T) {
	pool := []string{"dog", "cat", "hen", "cow", "duck", "cat"}

	for seed := 0; seed < 40; seed++ {
		opts, idx := Options("cat", pool, seed, 3)

		if len(opts) != 3 {
			t.Fatalf("seed %d: got %d options, want 3", seed, len(opts))
		}
		if opts[idx] != "cat" {
			t.Errorf("seed %d: correct index %d points at %q", seed, idx, opts[idx])
		}

		seen := make(map[string]int)
		for _, o := range opts {
			seen[o]++
		}
		if seen["cat"] != 1 {
			t.Errorf("seed %d: correct answer appears %d times in %v", seed, seen["cat"], opts)
		}
		for o, n := range seen {
			if n > 1 {
				t.Errorf("seed %d: duplicate option %q in %v", seed, o, opts)
			}
		}
	}
}

func TestOptionsDeterministic(t *testing.T) {
	pool := []string{"one", "two", "three", "four", "five"}

	aOpts, aIdx := Options("three", pool, 99, 4)
	bOpts, bIdx := Options("three", pool, 99, 4)

	if !reflect.DeepEqual(aOpts, bOpts) || aIdx != bIdx {
		t.Errorf("same seed produced different options: %v/%d vs %v/%d", aOpts, aIdx, bOpts, bIdx)
	}
}

func TestFractionRange(t *testing.T) {
	for seed := -100; seed < 100; seed++ {
		for step := 0; step < 10; step++ {
			f := Fraction(seed, step)
			if f < 0 || f >= 1 {
				t.Fatalf("Fraction(%d, %d) = %v out of [0,1)", seed, step, f)
			}
		}
	}
}
