package levels

import (
	"fmt"
	"strconv"
	"strings"

	"tinyquest/internal/content"
	"tinyquest/internal/models"
	"tinyquest/internal/seeded"
)

// Each builder produces exactly 3 questions for one generated level.
// Seeds mix the level number with small per-question multipliers and
// offsets so the three picks in a level are not correlated.

func qid(levelNum, i int) string {
	return fmt.Sprintf("lv%d-q%d", levelNum, i)
}

// pickIndex normalizes a seed into [0, length).
func pickIndex(seed, length int) int {
	idx := seed % length
	if idx < 0 {
		idx += length
	}
	return idx
}

func yesNo(correct bool) ([]string, int) {
	if correct {
		return []string{"Yes", "No"}, 0
	}
	return []string{"Yes", "No"}, 1
}

func numberPool(lo, hi int) []string {
	pool := make([]string, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		pool = append(pool, strconv.Itoa(v))
	}
	return pool
}

func letterQuestions(levelNum int, theme models.Theme) []models.Question {
	letterPool := make([]string, len(content.Letters))
	wordPool := make([]string, len(content.Letters))
	for i, lf := range content.Letters {
		letterPool[i] = lf.Letter
		wordPool[i] = lf.Word
	}

	f1 := seeded.Pick(content.Letters, levelNum*7+1)
	opts1, idx1 := seeded.Options(f1.Letter, letterPool, levelNum*3+1, 3)

	f2 := seeded.Pick(content.Letters, levelNum*11+3)
	opts2, idx2 := seeded.Options(f2.Word, wordPool, levelNum*5+2, 3)

	f3 := seeded.Pick(content.Letters, levelNum*13+5)
	other := seeded.Pick(content.Letters, levelNum*17+7)
	shown := f3.Word
	if levelNum%2 == 1 {
		shown = other.Word
	}
	opts3, idx3 := yesNo(strings.HasPrefix(shown, f3.Letter))

	return []models.Question{
		{
			ID:           qid(levelNum, 1),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("Which letter does %s start with?", f1.Word),
			Options:      opts1,
			CorrectIndex: idx1,
			Explanation:  fmt.Sprintf("%s %s starts with %s!", f1.Emoji, f1.Word, f1.Letter),
			Emoji:        f1.Emoji,
		},
		{
			ID:           qid(levelNum, 2),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("Which word starts with the letter %s?", f2.Letter),
			Options:      opts2,
			CorrectIndex: idx2,
			Explanation:  fmt.Sprintf("%s starts with %s %s", f2.Word, f2.Letter, f2.Emoji),
			Emoji:        f2.Emoji,
		},
		{
			ID:           qid(levelNum, 3),
			Kind:         models.KindTrueFalse,
			Prompt:       fmt.Sprintf("Does '%s' start with the letter %s?", shown, f3.Letter),
			Options:      opts3,
			CorrectIndex: idx3,
			Explanation:  fmt.Sprintf("'%s' starts with the letter %s.", shown, shown[:1]),
			Emoji:        f3.Emoji,
		},
	}
}

func readingQuestions(levelNum int, theme models.Theme) []models.Question {
	emojiPool := make([]string, len(content.SightWords))
	wordPool := make([]string, len(content.SightWords))
	for i, sw := range content.SightWords {
		emojiPool[i] = sw.Emoji
		wordPool[i] = sw.Word
	}

	w1 := seeded.Pick(content.SightWords, levelNum*7+2)
	opts1, idx1 := seeded.Options(w1.Emoji, emojiPool, levelNum*3+4, 3)

	w2 := seeded.Pick(content.SightWords, levelNum*11+6)
	opts2, idx2 := seeded.Options(w2.Word, wordPool, levelNum*5+4, 3)

	w3 := seeded.Pick(content.SightWords, levelNum*13+8)
	other := seeded.Pick(content.SightWords, levelNum*17+9)
	shownEmoji := w3.Emoji
	if levelNum%2 == 0 {
		shownEmoji = other.Emoji
	}
	opts3, idx3 := yesNo(shownEmoji == w3.Emoji)

	return []models.Question{
		{
			ID:           qid(levelNum, 1),
			Kind:         models.KindPickEmoji,
			Prompt:       fmt.Sprintf("Which picture shows '%s'?", w1.Word),
			Options:      opts1,
			CorrectIndex: idx1,
			Explanation:  fmt.Sprintf("%s is the picture for '%s'!", w1.Emoji, w1.Word),
			Emoji:        w1.Emoji,
		},
		{
			ID:           qid(levelNum, 2),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("%s. Which word is it?", w2.Hint),
			Options:      opts2,
			CorrectIndex: idx2,
			Explanation:  fmt.Sprintf("It is '%s' %s", w2.Word, w2.Emoji),
			Emoji:        w2.Emoji,
		},
		{
			ID:           qid(levelNum, 3),
			Kind:         models.KindTrueFalse,
			Prompt:       fmt.Sprintf("Is %s the picture for '%s'?", shownEmoji, w3.Word),
			Options:      opts3,
			CorrectIndex: idx3,
			Explanation:  fmt.Sprintf("The picture for '%s' is %s.", w3.Word, w3.Emoji),
			Emoji:        w3.Emoji,
		},
	}
}

func numberQuestions(levelNum int, theme models.Theme) []models.Question {
	count := 2 + pickIndex(levelNum*7+3, 8) // 2..9
	emoji := seeded.Pick(content.CountEmojis, levelNum*11+2)
	opts1, idx1 := seeded.Options(strconv.Itoa(count), numberPool(1, 12), levelNum*3+5, 3)

	nameIdx := pickIndex(levelNum*11+4, len(content.NumberWords))
	word := content.NumberWords[nameIdx]
	digit := nameIdx + 1
	opts2, idx2 := seeded.Options(strconv.Itoa(digit), numberPool(1, 20), levelNum*5+6, 3)

	base := 1 + pickIndex(levelNum*13+9, 18) // 1..18
	opts3, idx3 := seeded.Options(strconv.Itoa(base+1), numberPool(1, 20), levelNum*5+8, 3)

	return []models.Question{
		{
			ID:           qid(levelNum, 1),
			Kind:         models.KindPickEmoji,
			Prompt:       fmt.Sprintf("How many do you see? %s", strings.Repeat(emoji, count)),
			Options:      opts1,
			CorrectIndex: idx1,
			Explanation:  fmt.Sprintf("There are %d %s!", count, emoji),
			Emoji:        emoji,
		},
		{
			ID:           qid(levelNum, 2),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("Which number is '%s'?", word),
			Options:      opts2,
			CorrectIndex: idx2,
			Explanation:  fmt.Sprintf("'%s' is the number %d.", word, digit),
			Emoji:        "🔢",
		},
		{
			ID:           qid(levelNum, 3),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("What comes just after %d?", base),
			Options:      opts3,
			CorrectIndex: idx3,
			Explanation:  fmt.Sprintf("%d comes right after %d.", base+1, base),
			Emoji:        "➡️",
		},
	}
}

func mathQuestions(levelNum int, theme models.Theme) []models.Question {
	a := 1 + pickIndex(levelNum*7+5, 9) // 1..9
	b := 1 + pickIndex(levelNum*11+7, 9)
	sum := a + b
	lo := sum - 3
	if lo < 1 {
		lo = 1
	}
	opts1, idx1 := seeded.Options(strconv.Itoa(sum), numberPool(lo, sum+3), levelNum*3+7, 3)

	hi, loSide := a, b
	if hi < loSide {
		hi, loSide = loSide, hi
	}
	diff := hi - loSide
	opts2, idx2 := seeded.Options(strconv.Itoa(diff), numberPool(0, hi), levelNum*5+9, 3)

	c := 1 + pickIndex(levelNum*13+11, 20)
	d := 1 + pickIndex(levelNum*17+13, 20)
	if c == d {
		d = d%20 + 1
	}
	bigger := c
	if d > c {
		bigger = d
	}
	compareOpts := []string{strconv.Itoa(c), strconv.Itoa(d)}
	compareIdx := 0
	if bigger == d {
		compareIdx = 1
	}

	return []models.Question{
		{
			ID:           qid(levelNum, 1),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("%d + %d = ?", a, b),
			Options:      opts1,
			CorrectIndex: idx1,
			Explanation:  fmt.Sprintf("%d plus %d makes %d!", a, b, sum),
			Emoji:        "➕",
		},
		{
			ID:           qid(levelNum, 2),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("%d - %d = ?", hi, loSide),
			Options:      opts2,
			CorrectIndex: idx2,
			Explanation:  fmt.Sprintf("%d take away %d leaves %d.", hi, loSide, diff),
			Emoji:        "➖",
		},
		{
			ID:           qid(levelNum, 3),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("Which number is bigger: %d or %d?", c, d),
			Options:      compareOpts,
			CorrectIndex: compareIdx,
			Explanation:  fmt.Sprintf("%d is bigger!", bigger),
			Emoji:        "⚖️",
		},
	}
}

func shapeQuestions(levelNum int, theme models.Theme) []models.Question {
	namePool := make([]string, len(content.Shapes))
	for i, sf := range content.Shapes {
		namePool[i] = sf.Name
	}

	s1 := seeded.Pick(content.Shapes, levelNum*7+4)
	opts1, idx1 := seeded.Options(s1.Name, namePool, levelNum*3+8, 3)

	s2 := seeded.Pick(content.Shapes, levelNum*11+8)
	opts2, idx2 := seeded.Options(s2.Name, namePool, levelNum*5+10, 3)

	var sided []content.ShapeFact
	for _, sf := range content.Shapes {
		if sf.Sides > 0 {
			sided = append(sided, sf)
		}
	}
	s3 := seeded.Pick(sided, levelNum*13+10)
	claimed := s3.Sides
	if levelNum%2 == 1 {
		claimed++
	}
	opts3, idx3 := yesNo(claimed == s3.Sides)

	return []models.Question{
		{
			ID:           qid(levelNum, 1),
			Kind:         models.KindPickEmoji,
			Prompt:       fmt.Sprintf("Which shape is this? %s", s1.Emoji),
			Options:      opts1,
			CorrectIndex: idx1,
			Explanation:  fmt.Sprintf("%s is a %s!", s1.Emoji, s1.Name),
			Emoji:        s1.Emoji,
		},
		{
			ID:           qid(levelNum, 2),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("%s. Which shape is it?", s2.Clue),
			Options:      opts2,
			CorrectIndex: idx2,
			Explanation:  fmt.Sprintf("It is the %s %s", s2.Name, s2.Emoji),
			Emoji:        s2.Emoji,
		},
		{
			ID:           qid(levelNum, 3),
			Kind:         models.KindTrueFalse,
			Prompt:       fmt.Sprintf("Does a %s have %d sides?", s3.Name, claimed),
			Options:      opts3,
			CorrectIndex: idx3,
			Explanation:  fmt.Sprintf("A %s has %d sides.", s3.Name, s3.Sides),
			Emoji:        s3.Emoji,
		},
	}
}

func myWorldQuestions(levelNum int, theme models.Theme) []models.Question {
	switch theme {
	case models.ThemeAnimals:
		return animalQuestions(levelNum)
	case models.ThemeShapes:
		return colorQuestions(levelNum)
	case models.ThemeFestivals:
		return festivalQuestions(levelNum)
	default:
		return bengalQuestions(levelNum)
	}
}

func animalQuestions(levelNum int) []models.Question {
	namePool := make([]string, len(content.Animals))
	homePool := make([]string, len(content.Animals))
	for i, af := range content.Animals {
		namePool[i] = af.Name
		homePool[i] = af.Home
	}

	a1 := seeded.Pick(content.Animals, levelNum*7+6)
	opts1, idx1 := seeded.Options(a1.Name, namePool, levelNum*3+9, 3)

	a2 := seeded.Pick(content.Animals, levelNum*11+9)
	opts2, idx2 := seeded.Options(a2.Home, homePool, levelNum*5+11, 3)

	a3 := seeded.Pick(content.Animals, levelNum*13+12)
	other := seeded.Pick(content.Animals, levelNum*17+14)
	claimedBaby := a3.Baby
	if levelNum%2 == 0 && other.Baby != a3.Baby {
		claimedBaby = other.Baby
	}
	opts3, idx3 := yesNo(claimedBaby == a3.Baby)

	return []models.Question{
		{
			ID:           qid(levelNum, 1),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("Which animal says '%s'?", a1.Sound),
			Options:      opts1,
			CorrectIndex: idx1,
			Explanation:  fmt.Sprintf("The %s says %s! %s", a1.Name, a1.Sound, a1.Emoji),
			Emoji:        a1.Emoji,
		},
		{
			ID:           qid(levelNum, 2),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("Where does a %s live?", a2.Name),
			Options:      opts2,
			CorrectIndex: idx2,
			Explanation:  fmt.Sprintf("A %s lives in a %s.", a2.Name, a2.Home),
			Emoji:        a2.Emoji,
		},
		{
			ID:           qid(levelNum, 3),
			Kind:         models.KindTrueFalse,
			Prompt:       fmt.Sprintf("Is a baby %s called a %s?", a3.Name, claimedBaby),
			Options:      opts3,
			CorrectIndex: idx3,
			Explanation:  fmt.Sprintf("A baby %s is called a %s.", a3.Name, a3.Baby),
			Emoji:        a3.Emoji,
		},
	}
}

func colorQuestions(levelNum int) []models.Question {
	namePool := make([]string, len(content.Colors))
	emojiPool := make([]string, len(content.Colors))
	for i, cf := range content.Colors {
		namePool[i] = cf.Name
		emojiPool[i] = cf.Emoji
	}

	c1 := seeded.Pick(content.Colors, levelNum*7+8)
	opts1, idx1 := seeded.Options(c1.Name, namePool, levelNum*3+10, 3)

	c2 := seeded.Pick(content.Colors, levelNum*11+10)
	opts2, idx2 := seeded.Options(c2.Emoji, emojiPool, levelNum*5+12, 3)

	c3 := seeded.Pick(content.Colors, levelNum*13+14)
	other := seeded.Pick(content.Colors, levelNum*17+16)
	claimed := c3.Name
	if levelNum%2 == 1 && other.Name != c3.Name {
		claimed = other.Name
	}
	opts3, idx3 := yesNo(claimed == c3.Name)

	return []models.Question{
		{
			ID:           qid(levelNum, 1),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("What color is a %s %s?", c1.Thing, c1.Emoji),
			Options:      opts1,
			CorrectIndex: idx1,
			Explanation:  fmt.Sprintf("A %s is %s!", c1.Thing, c1.Name),
			Emoji:        c1.Emoji,
		},
		{
			ID:           qid(levelNum, 2),
			Kind:         models.KindPickEmoji,
			Prompt:       fmt.Sprintf("Which one is %s?", c2.Name),
			Options:      opts2,
			CorrectIndex: idx2,
			Explanation:  fmt.Sprintf("The %s is %s %s", c2.Thing, c2.Name, c2.Emoji),
			Emoji:        c2.Emoji,
		},
		{
			ID:           qid(levelNum, 3),
			Kind:         models.KindTrueFalse,
			Prompt:       fmt.Sprintf("Is a %s %s in color?", c3.Thing, claimed),
			Options:      opts3,
			CorrectIndex: idx3,
			Explanation:  fmt.Sprintf("A %s is %s.", c3.Thing, c3.Name),
			Emoji:        c3.Emoji,
		},
	}
}

func festivalQuestions(levelNum int) []models.Question {
	namePool := make([]string, len(content.Festivals))
	for i, ff := range content.Festivals {
		namePool[i] = ff.Name
	}

	f1 := seeded.Pick(content.Festivals, levelNum*7+10)
	opts1, idx1 := seeded.Options(f1.Name, namePool, levelNum*3+11, 3)

	f2 := seeded.Pick(content.Festivals, levelNum*11+12)
	opts2, idx2 := seeded.Options(f2.Name, namePool, levelNum*5+13, 3)

	f3 := seeded.Pick(content.Festivals, levelNum*13+15)
	other := seeded.Pick(content.Festivals, levelNum*17+18)
	claimed := f3.Name
	if levelNum%2 == 0 && other.Name != f3.Name {
		claimed = other.Name
	}
	opts3, idx3 := yesNo(claimed == f3.Name)

	return []models.Question{
		{
			ID:           qid(levelNum, 1),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("Which festival is %s?", f1.Clue),
			Options:      opts1,
			CorrectIndex: idx1,
			Explanation:  fmt.Sprintf("%s is %s! %s", f1.Name, f1.Clue, f1.Emoji),
			Emoji:        f1.Emoji,
		},
		{
			ID:           qid(levelNum, 2),
			Kind:         models.KindPickEmoji,
			Prompt:       fmt.Sprintf("Which festival does %s remind you of?", f2.Emoji),
			Options:      opts2,
			CorrectIndex: idx2,
			Explanation:  fmt.Sprintf("%s makes us think of %s!", f2.Emoji, f2.Name),
			Emoji:        f2.Emoji,
		},
		{
			ID:           qid(levelNum, 3),
			Kind:         models.KindTrueFalse,
			Prompt:       fmt.Sprintf("Is %s %s?", claimed, f3.Clue),
			Options:      opts3,
			CorrectIndex: idx3,
			Explanation:  fmt.Sprintf("%s is %s.", f3.Name, f3.Clue),
			Emoji:        f3.Emoji,
		},
	}
}

func bengalQuestions(levelNum int) []models.Question {
	namePool := make([]string, len(content.BengalFacts))
	for i, bf := range content.BengalFacts {
		namePool[i] = bf.Name
	}

	b1 := seeded.Pick(content.BengalFacts, levelNum*7+12)
	opts1, idx1 := seeded.Options(b1.Name, namePool, levelNum*3+13, 3)

	b2 := seeded.Pick(content.BengalFacts, levelNum*11+14)
	opts2, idx2 := seeded.Options(b2.Name, namePool, levelNum*5+15, 3)

	b3 := seeded.Pick(content.BengalFacts, levelNum*13+16)
	other := seeded.Pick(content.BengalFacts, levelNum*17+20)
	claimed := b3.Name
	if levelNum%2 == 1 && other.Name != b3.Name {
		claimed = other.Name
	}
	opts3, idx3 := yesNo(claimed == b3.Name)

	return []models.Question{
		{
			ID:           qid(levelNum, 1),
			Kind:         models.KindPickOne,
			Prompt:       fmt.Sprintf("What is %s?", b1.Clue),
			Options:      opts1,
			CorrectIndex: idx1,
			Explanation:  fmt.Sprintf("It is the %s! %s", b1.Name, b1.Emoji),
			Emoji:        b1.Emoji,
		},
		{
			ID:           qid(levelNum, 2),
			Kind:         models.KindPickEmoji,
			Prompt:       fmt.Sprintf("What does %s show?", b2.Emoji),
			Options:      opts2,
			CorrectIndex: idx2,
			Explanation:  fmt.Sprintf("%s shows the %s.", b2.Emoji, b2.Name),
			Emoji:        b2.Emoji,
		},
		{
			ID:           qid(levelNum, 3),
			Kind:         models.KindTrueFalse,
			Prompt:       fmt.Sprintf("Is the %s %s?", claimed, b3.Clue),
			Options:      opts3,
			CorrectIndex: idx3,
			Explanation:  fmt.Sprintf("The %s is %s.", b3.Name, b3.Clue),
			Emoji:        b3.Emoji,
		},
	}
}
