package levels

import (
	"reflect"
	"testing"

	"tinyquest/internal/models"
)

func TestGetLevelOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		levelNum int
	}{
		{"zero", 0},
		{"negative", -5},
		{"just past the end", LevelCount + 1},
		{"far past the end", 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := GetLevel(tt.levelNum); ok {
				t.Errorf("GetLevel(%d) returned a level, want not found", tt.levelNum)
			}
		})
	}
}

func TestGetLevelDeterministic(t *testing.T) {
	for n := 1; n <= LevelCount; n++ {
		first, ok := GetLevel(n)
		if !ok {
			t.Fatalf("GetLevel(%d) not found", n)
		}
		second, _ := GetLevel(n)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("level %d differs between calls", n)
		}
	}
}

func TestGetAllLevelsContiguous(t *testing.T) {
	all := GetAllLevels()

	if len(all) != LevelCount {
		t.Fatalf("got %d levels, want %d", len(all), LevelCount)
	}
	for i, lvl := range all {
		want := i + 1
		if lvl.LevelNum != want {
			t.Errorf("position %d: level num %d, want %d", i, lvl.LevelNum, want)
		}
		if lvl.ID != models.LevelID(want) {
			t.Errorf("level %d: id %q, want %q", want, lvl.ID, models.LevelID(want))
		}
	}
}

func TestAllQuestionsValid(t *testing.T) {
	for _, lvl := range GetAllLevels() {
		if len(lvl.Questions) < 3 || len(lvl.Questions) > 5 {
			t.Errorf("level %d: %d questions, want 3-5", lvl.LevelNum, len(lvl.Questions))
		}
		for _, q := range lvl.Questions {
			if !q.Valid() {
				t.Errorf("level %d question %s invalid: options=%v correct=%d",
					lvl.LevelNum, q.ID, q.Options, q.CorrectIndex)
			}
			if q.Prompt == "" {
				t.Errorf("level %d question %s has empty prompt", lvl.LevelNum, q.ID)
			}
		}
	}
}

func TestGeneratedLevelsHaveThreeQuestions(t *testing.T) {
	for n := FixedLevelCount + 1; n <= LevelCount; n++ {
		lvl, _ := GetLevel(n)
		if len(lvl.Questions) != 3 {
			t.Errorf("level %d: %d questions, want exactly 3", n, len(lvl.Questions))
		}
	}
}

func TestThemeForLevel(t *testing.T) {
	tests := []struct {
		levelNum int
		want     models.Theme
	}{
		{76, models.ThemeAnimals},
		{110, models.ThemeAnimals},
		{111, models.ThemeShapes},
		{145, models.ThemeShapes},
		{146, models.ThemeFestivals},
		{175, models.ThemeFestivals},
		{176, models.ThemeBengal},
		{200, models.ThemeBengal},
	}

	for _, tt := range tests {
		if got := ThemeForLevel(tt.levelNum); got != tt.want {
			t.Errorf("ThemeForLevel(%d) = %v, want %v", tt.levelNum, got, tt.want)
		}
	}
}

func TestAreaCycle(t *testing.T) {
	// Every 6th generated level repeats the same subject.
	for n := FixedLevelCount + 1; n+6 <= LevelCount; n++ {
		a, _ := GetLevel(n)
		b, _ := GetLevel(n + 6)
		if a.Area != b.Area {
			t.Errorf("levels %d and %d: areas %v and %v, want equal", n, n+6, a.Area, b.Area)
		}
	}

	lvl, _ := GetLevel(76) // (76-1) mod 6 == 3 -> math
	if lvl.Area != models.SubjectMath {
		t.Errorf("level 76 area = %v, want math", lvl.Area)
	}
}

func TestRewards(t *testing.T) {
	for n := FixedLevelCount + 1; n <= LevelCount; n++ {
		lvl, _ := GetLevel(n)

		if lvl.Reward.Stars != 1 {
			t.Errorf("level %d: base stars %d, want 1", n, lvl.Reward.Stars)
		}
		if n%5 == 0 && lvl.Reward.Sticker == "" {
			t.Errorf("level %d: missing sticker", n)
		}
		if n%5 != 0 && lvl.Reward.Sticker != "" {
			t.Errorf("level %d: unexpected sticker %q", n, lvl.Reward.Sticker)
		}
	}

	for _, milestone := range []int{110, 145, 175, 200} {
		lvl, _ := GetLevel(milestone)
		if lvl.Reward.Badge == "" {
			t.Errorf("level %d: missing milestone badge", milestone)
		}
	}

	lvl, _ := GetLevel(120)
	if lvl.Reward.Badge != "" {
		t.Errorf("level 120: unexpected badge %q", lvl.Reward.Badge)
	}
}

func TestStarsForOutcome(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"zero correct still earns one star", 0, 3, 1},
		{"all correct earns three", 3, 3, 3},
		{"partial rounds up", 2, 5, 2},
		{"one of three", 1, 3, 1},
		{"two of three", 2, 3, 2},
		{"four of five", 4, 5, 3},
		{"zero total guarded", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StarsForOutcome(tt.correct, tt.total); got != tt.want {
				t.Errorf("StarsForOutcome(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

func TestUnlocked(t *testing.T) {
	empty := &models.WorldProgress{LevelStars: map[string]int{}}

	if !Unlocked(1, empty) {
		t.Error("level 1 should always be unlocked")
	}
	if Unlocked(2, empty) {
		t.Error("level 2 should be locked with empty progress")
	}
	if Unlocked(2, nil) {
		t.Error("level 2 should be locked with nil progress")
	}

	afterOne := &models.WorldProgress{
		CompletedLevelIDs: []string{models.LevelID(1)},
		LevelStars:        map[string]int{models.LevelID(1): 2},
	}
	if !Unlocked(2, afterOne) {
		t.Error("level 2 should unlock after completing level 1")
	}
	if Unlocked(3, afterOne) {
		t.Error("level 3 should remain locked")
	}
}

func TestFixedLevelTable(t *testing.T) {
	if len(fixedLevels) != FixedLevelCount {
		t.Fatalf("fixed table has %d levels, want %d", len(fixedLevels), FixedLevelCount)
	}

	seenSubjects := make(map[models.Subject]bool)
	for _, lvl := range fixedLevels {
		seenSubjects[lvl.Area] = true
	}
	for _, s := range models.AllSubjects {
		if !seenSubjects[s] {
			t.Errorf("no fixed level covers subject %v", s)
		}
	}
}
