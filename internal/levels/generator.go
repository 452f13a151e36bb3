// Package levels produces the adventure map level catalog. Levels 1-75
// are a fixed hand-authored table; levels 76-200 are generated
// deterministically from the level number, so the same level always
// carries the same questions across sessions and devices.
package levels

import (
	"tinyquest/internal/models"
	"tinyquest/internal/seeded"
)

const (
	// LevelCount is the total number of adventure levels.
	LevelCount = 200
	// FixedLevelCount is how many levels come from the hand-authored table.
	FixedLevelCount = 75
	// WorldID identifies the candy adventure world in progression
	// documents.
	WorldID = "candy"
)

// areaCycle determines the subject of each generated level. Every 6th
// level repeats the same subject, giving even coverage.
var areaCycle = []models.Subject{
	models.SubjectLetters,
	models.SubjectReading,
	models.SubjectNumbers,
	models.SubjectMath,
	models.SubjectShapes,
	models.SubjectMyWorld,
}

// themeRanges maps closed level ranges to story themes. Ranges are
// ordered, contiguous and cover every generated level.
var themeRanges = []struct {
	maxLevel int
	theme    models.Theme
}{
	{110, models.ThemeAnimals},
	{145, models.ThemeShapes},
	{175, models.ThemeFestivals},
	{200, models.ThemeBengal},
}

// milestoneBadges are awarded by specific generated levels.
var milestoneBadges = map[int]string{
	110: "Animal Friend",
	145: "Shape Master",
	175: "Festival Star",
	200: "Adventure Champion",
}

var stickers = []string{
	"🌟 Gold Star", "🍭 Lollipop", "🦄 Unicorn", "🚀 Rocket",
	"🏅 Medal", "🎈 Balloon", "🧸 Teddy", "🍩 Donut",
}

type areaInfo struct {
	label string
	color string
	emoji string
}

var areaInfos = map[models.Subject]areaInfo{
	models.SubjectLetters:   {"ABC Land", "#f59e0b", "🔤"},
	models.SubjectReading:   {"Story Trail", "#8b5cf6", "📖"},
	models.SubjectNumbers:   {"Number Grove", "#10b981", "🔢"},
	models.SubjectMath:      {"Math Meadow", "#3b82f6", "➕"},
	models.SubjectShapes:    {"Shape Shore", "#ef4444", "🔷"},
	models.SubjectMyWorld:   {"My World", "#14b8a6", "🌍"},
	models.SubjectStories:   {"Tale Town", "#a855f7", "🏰"},
	models.SubjectRhymes:    {"Rhyme Hill", "#ec4899", "🎵"},
	models.SubjectArt:       {"Color Cove", "#f97316", "🎨"},
	models.SubjectSmartKids: {"Puzzle Peak", "#6366f1", "🧠"},
	models.SubjectFeelings:  {"Heart Garden", "#f43f5e", "💛"},
}

var themeTitles = map[models.Theme]struct {
	title string
	emoji string
}{
	models.ThemeAnimals:   {"Animal", "🐾"},
	models.ThemeShapes:    {"Shape", "🔶"},
	models.ThemeFestivals: {"Festival", "🎆"},
	models.ThemeBengal:    {"Bengal", "🐯"},
}

// ThemeForLevel returns the story theme for a generated level number.
func ThemeForLevel(levelNum int) models.Theme {
	for _, r := range themeRanges {
		if levelNum <= r.maxLevel {
			return r.theme
		}
	}
	return models.ThemeBengal
}

// AreaForLevel returns the subject a level belongs to.
func AreaForLevel(levelNum int) models.Subject {
	if levelNum <= FixedLevelCount {
		lvl, _ := GetLevel(levelNum)
		return lvl.Area
	}
	return areaCycle[(levelNum-1)%len(areaCycle)]
}

// GetLevel returns the level for levelNum, or false when levelNum is
// outside [1, LevelCount]. Callers must handle the missing case rather
// than expect a fabricated level.
func GetLevel(levelNum int) (models.Level, bool) {
	if levelNum < 1 || levelNum > LevelCount {
		return models.Level{}, false
	}
	if levelNum <= FixedLevelCount {
		return fixedLevels[levelNum-1], true
	}
	return generateLevel(levelNum), true
}

// GetAllLevels returns all levels ordered by level number, 1..LevelCount
// with no gaps.
func GetAllLevels() []models.Level {
	all := make([]models.Level, 0, LevelCount)
	for n := 1; n <= LevelCount; n++ {
		lvl, _ := GetLevel(n)
		all = append(all, lvl)
	}
	return all
}

// generateLevel builds a procedural level. Generated levels always
// grant 1 base star; the per-question star tally is the player's
// concern (see StarsForOutcome).
func generateLevel(levelNum int) models.Level {
	theme := ThemeForLevel(levelNum)
	area := areaCycle[(levelNum-1)%len(areaCycle)]
	info := areaInfos[area]
	tt := themeTitles[theme]

	lvl := models.Level{
		ID:        models.LevelID(levelNum),
		LevelNum:  levelNum,
		Title:     tt.title + " " + info.label,
		Emoji:     tt.emoji,
		Area:      area,
		AreaLabel: info.label,
		AreaColor: info.color,
		Questions: questionsFor(area, levelNum, theme),
		Reward:    models.Reward{Stars: 1},
	}

	if levelNum%5 == 0 {
		lvl.Reward.Sticker = seeded.Pick(stickers, levelNum)
	}
	if badge, ok := milestoneBadges[levelNum]; ok {
		lvl.Reward.Badge = badge
	}

	return lvl
}

// questionsFor dispatches to the per-area question builder. Each
// builder returns exactly 3 questions seeded by the level number.
func questionsFor(area models.Subject, levelNum int, theme models.Theme) []models.Question {
	switch area {
	case models.SubjectLetters:
		return letterQuestions(levelNum, theme)
	case models.SubjectReading:
		return readingQuestions(levelNum, theme)
	case models.SubjectNumbers:
		return numberQuestions(levelNum, theme)
	case models.SubjectMath:
		return mathQuestions(levelNum, theme)
	case models.SubjectShapes:
		return shapeQuestions(levelNum, theme)
	case models.SubjectMyWorld:
		return myWorldQuestions(levelNum, theme)
	default:
		// Generated levels only use the six cycle areas.
		return myWorldQuestions(levelNum, theme)
	}
}
