package handlers

import (
	"tinyquest/internal/levels"
	"tinyquest/internal/models"
)

// LevelSummaryView is one node on the adventure map.
type LevelSummaryView struct {
	Number    int    `json:"number"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Emoji     string `json:"emoji"`
	Area      string `json:"area"`
	AreaLabel string `json:"area_label"`
	AreaColor string `json:"area_color"`
	Unlocked  bool   `json:"unlocked"`
	Completed bool   `json:"completed"`
	Stars     int    `json:"stars"`
	Sticker   string `json:"sticker,omitempty"`
	Badge     string `json:"badge,omitempty"`
}

// LevelDetailView is a playable level with its questions.
type LevelDetailView struct {
	Number    int               `json:"number"`
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Emoji     string            `json:"emoji"`
	Area      string            `json:"area"`
	Questions []models.Question `json:"questions"`
	Reward    models.Reward     `json:"reward"`
}

// MapView is the whole adventure map for one profile.
type MapView struct {
	WorldID    string             `json:"world_id"`
	Levels     []LevelSummaryView `json:"levels"`
	TotalStars int                `json:"total_stars"`
	Streak     int                `json:"streak"`
}

// newLevelSummaryView builds a map node from a level and the profile's
// world progress.
func newLevelSummaryView(level models.Level, world *models.WorldProgress) LevelSummaryView {
	view := LevelSummaryView{
		Number:    level.LevelNum,
		ID:        level.ID,
		Title:     level.Title,
		Emoji:     level.Emoji,
		Area:      string(level.Area),
		AreaLabel: level.AreaLabel,
		AreaColor: level.AreaColor,
		Unlocked:  levels.Unlocked(level.LevelNum, world),
		Completed: world.Completed(level.ID),
		Sticker:   level.Reward.Sticker,
		Badge:     level.Reward.Badge,
	}
	if world != nil {
		view.Stars = world.LevelStars[level.ID]
	}
	return view
}

// newLevelDetailView builds the playable view of a level.
func newLevelDetailView(level models.Level) LevelDetailView {
	return LevelDetailView{
		Number:    level.LevelNum,
		ID:        level.ID,
		Title:     level.Title,
		Emoji:     level.Emoji,
		Area:      string(level.Area),
		Questions: level.Questions,
		Reward:    level.Reward,
	}
}
