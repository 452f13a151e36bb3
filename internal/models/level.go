package models

import "fmt"

// Subject is one of the fixed content categories in the app.
type Subject string

const (
	SubjectLetters   Subject = "letters"
	SubjectReading   Subject = "reading"
	SubjectNumbers   Subject = "numbers"
	SubjectMath      Subject = "math"
	SubjectShapes    Subject = "shapes"
	SubjectMyWorld   Subject = "my-world"
	SubjectStories   Subject = "stories"
	SubjectRhymes    Subject = "rhymes"
	SubjectArt       Subject = "art"
	SubjectSmartKids Subject = "smart-kids"
	SubjectFeelings  Subject = "feelings"
)

// AllSubjects lists every subject in display order. Per-subject stats
// are keyed by exactly these values.
var AllSubjects = []Subject{
	SubjectLetters,
	SubjectReading,
	SubjectNumbers,
	SubjectMath,
	SubjectShapes,
	SubjectMyWorld,
	SubjectStories,
	SubjectRhymes,
	SubjectArt,
	SubjectSmartKids,
	SubjectFeelings,
}

// IsValid reports whether s is one of the fixed subjects.
func (s Subject) IsValid() bool {
	for _, known := range AllSubjects {
		if s == known {
			return true
		}
	}
	return false
}

// Theme groups the procedurally generated levels into story arcs.
type Theme string

const (
	ThemeAnimals   Theme = "animals"
	ThemeShapes    Theme = "shapes"
	ThemeFestivals Theme = "festivals"
	ThemeBengal    Theme = "bengal"
)

// Reward is what a level grants on completion. Sticker and Badge are
// milestone-only; Stars is the base star grant (1-3), separate from the
// per-question star tally the player computes.
type Reward struct {
	Stars   int    `json:"stars"`
	Sticker string `json:"sticker,omitempty"`
	Badge   string `json:"badge,omitempty"`
}

// Level is one unit of the adventure progression. Level records are
// derived, immutable, and regenerated fresh on every load; only level
// ids and star counts are ever persisted.
type Level struct {
	ID        string     `json:"id"`
	LevelNum  int        `json:"level_num"`
	Title     string     `json:"title"`
	Emoji     string     `json:"emoji"`
	Area      Subject    `json:"area"`
	AreaLabel string     `json:"area_label"`
	AreaColor string     `json:"area_color"`
	Questions []Question `json:"questions"`
	Reward    Reward     `json:"reward"`
}

// LevelID returns the canonical id for a level number ("lv42").
func LevelID(levelNum int) string {
	return fmt.Sprintf("lv%d", levelNum)
}
