package levels

import "tinyquest/internal/models"

// StarsForOutcome maps a play-through result to awarded stars:
// ceil(correct * 3 / total) clamped to [1, 3]. Completing a level
// always earns at least one star, never zero.
func StarsForOutcome(correctAnswers, totalQuestions int) int {
	if totalQuestions <= 0 {
		return 1
	}
	stars := (correctAnswers*3 + totalQuestions - 1) / totalQuestions
	if stars < 1 {
		return 1
	}
	if stars > 3 {
		return 3
	}
	return stars
}

// Unlocked reports whether a level can be played: level 1 is always
// open, every other level requires the previous level to be completed.
// The unlock chain is strictly sequential with no branching paths.
func Unlocked(levelNum int, world *models.WorldProgress) bool {
	if levelNum == 1 {
		return true
	}
	return world.Completed(models.LevelID(levelNum - 1))
}
