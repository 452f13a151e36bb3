// Package content holds the static reference data the level generator
// draws from: letters, words, numbers, shapes, colors and topical fact
// lists. Pure data, no logic. Every table is non-empty by construction;
// the seeded selectors rely on that.
package content

// LetterFact pairs a letter with an example word and emoji.
type LetterFact struct {
	Letter string
	Word   string
	Emoji  string
}

// Letters covers A-Z with a kid-friendly example word each.
var Letters = []LetterFact{
	{"A", "Apple", "🍎"},
	{"B", "Ball", "⚽"},
	{"C", "Cat", "🐱"},
	{"D", "Dog", "🐶"},
	{"E", "Elephant", "🐘"},
	{"F", "Fish", "🐟"},
	{"G", "Grapes", "🍇"},
	{"H", "Hat", "🎩"},
	{"I", "Ice cream", "🍦"},
	{"J", "Jug", "🏺"},
	{"K", "Kite", "🪁"},
	{"L", "Lion", "🦁"},
	{"M", "Mango", "🥭"},
	{"N", "Nest", "🪺"},
	{"O", "Orange", "🍊"},
	{"P", "Parrot", "🦜"},
	{"Q", "Queen", "👑"},
	{"R", "Rainbow", "🌈"},
	{"S", "Sun", "☀️"},
	{"T", "Tiger", "🐯"},
	{"U", "Umbrella", "☂️"},
	{"V", "Violin", "🎻"},
	{"W", "Whale", "🐳"},
	{"X", "Xylophone", "🎵"},
	{"Y", "Yak", "🐂"},
	{"Z", "Zebra", "🦓"},
}

// NumberWords spells out 1-20 for counting and number-name questions.
var NumberWords = []string{
	"one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

// CountEmojis are single emojis repeated to build counting prompts.
var CountEmojis = []string{"🍎", "⭐", "🎈", "🐥", "🌸", "🍓", "🐠", "🦋", "🍪", "⚽"}

// ShapeFact describes a basic shape.
type ShapeFact struct {
	Name  string
	Emoji string
	Sides int
	Clue  string
}

// Shapes covers the basic shapes taught in the shapes games.
var Shapes = []ShapeFact{
	{"circle", "⭕", 0, "It is round like a wheel"},
	{"square", "🟥", 4, "All four sides are the same"},
	{"triangle", "🔺", 3, "It has three pointy corners"},
	{"rectangle", "🟦", 4, "Like a square but stretched"},
	{"star", "⭐", 5, "It twinkles in the night sky"},
	{"heart", "❤️", 0, "It means love"},
	{"oval", "🥚", 0, "It is shaped like an egg"},
	{"diamond", "🔷", 4, "It sparkles like a gem"},
}

// Colors are used for color questions and as distractor pools.
type ColorFact struct {
	Name  string
	Emoji string
	Thing string
}

var Colors = []ColorFact{
	{"red", "🍎", "apple"},
	{"yellow", "🌞", "sun"},
	{"green", "🌿", "leaf"},
	{"blue", "🌊", "sea"},
	{"orange", "🥕", "carrot"},
	{"purple", "🍆", "brinjal"},
	{"pink", "🌸", "flower"},
	{"white", "🐑", "sheep"},
	{"black", "🐦‍⬛", "crow"},
	{"brown", "🐻", "bear"},
}

// SightWords are simple first words for the reading games, grouped so
// rhyming distractors stay plausible.
type SightWord struct {
	Word  string
	Emoji string
	Hint  string
}

var SightWords = []SightWord{
	{"cat", "🐱", "It says meow"},
	{"dog", "🐶", "It says woof"},
	{"sun", "☀️", "It shines in the day"},
	{"hat", "🎩", "You wear it on your head"},
	{"cup", "🥤", "You drink from it"},
	{"bed", "🛏️", "You sleep on it"},
	{"bus", "🚌", "It takes you to school"},
	{"fan", "🪭", "It keeps you cool"},
	{"pen", "🖊️", "You write with it"},
	{"box", "📦", "You keep toys in it"},
	{"egg", "🥚", "A hen lays it"},
	{"jam", "🍓", "Sweet on your bread"},
	{"van", "🚐", "A big car"},
	{"log", "🪵", "A piece of wood"},
	{"map", "🗺️", "It shows the way"},
	{"net", "🥅", "It catches the ball"},
}

// AnimalFact backs the "animals" theme questions.
type AnimalFact struct {
	Name  string
	Emoji string
	Sound string
	Home  string
	Baby  string
}

var Animals = []AnimalFact{
	{"lion", "🦁", "roar", "den", "cub"},
	{"cow", "🐄", "moo", "shed", "calf"},
	{"dog", "🐶", "woof", "kennel", "puppy"},
	{"cat", "🐱", "meow", "house", "kitten"},
	{"duck", "🦆", "quack", "pond", "duckling"},
	{"hen", "🐔", "cluck", "coop", "chick"},
	{"frog", "🐸", "croak", "pond", "tadpole"},
	{"horse", "🐴", "neigh", "stable", "foal"},
	{"sheep", "🐑", "baa", "pen", "lamb"},
	{"elephant", "🐘", "trumpet", "jungle", "calf"},
	{"monkey", "🐵", "chatter", "tree", "infant"},
	{"bee", "🐝", "buzz", "hive", "larva"},
}

// FestivalFact backs the "festivals" theme questions.
type FestivalFact struct {
	Name  string
	Emoji string
	Clue  string
}

var Festivals = []FestivalFact{
	{"Diwali", "🪔", "the festival of lights"},
	{"Holi", "🎨", "the festival of colors"},
	{"Eid", "🌙", "celebrated after a month of fasting"},
	{"Christmas", "🎄", "Santa brings gifts"},
	{"Durga Puja", "🥁", "the biggest festival of Bengal"},
	{"Pongal", "🍚", "the harvest festival of the south"},
	{"Raksha Bandhan", "🧵", "sisters tie a thread to brothers"},
	{"New Year", "🎉", "we welcome a brand new year"},
}

// BengalFact backs the "bengal" theme questions.
type BengalFact struct {
	Name  string
	Emoji string
	Clue  string
}

var BengalFacts = []BengalFact{
	{"Royal Bengal Tiger", "🐯", "the famous striped animal of the Sundarbans"},
	{"Howrah Bridge", "🌉", "the great bridge over the Hooghly river"},
	{"Rosogolla", "🍡", "the sweet white syrupy ball"},
	{"Hilsa fish", "🐟", "the most loved fish of Bengal"},
	{"Shiuli flower", "🌼", "the little flower of autumn"},
	{"Rabindranath Tagore", "📖", "the poet who wrote our anthem"},
	{"Tram", "🚋", "the slow city rail of Kolkata"},
	{"Mango", "🥭", "the sweet golden summer fruit"},
}

// FeelingFact backs the feelings mini-games and fixed levels.
type FeelingFact struct {
	Name  string
	Emoji string
	Clue  string
}

var Feelings = []FeelingFact{
	{"happy", "😊", "You smile when you feel this"},
	{"sad", "😢", "Tears come when you feel this"},
	{"angry", "😠", "Your face goes red and hot"},
	{"scared", "😨", "A loud noise can make you feel this"},
	{"sleepy", "🥱", "You yawn when you feel this"},
	{"excited", "🤩", "Before a birthday party you feel this"},
	{"surprised", "😲", "A sudden gift makes you feel this"},
	{"proud", "😌", "Finishing a puzzle makes you feel this"},
}

// ThemeWordPool returns the distractor name pool for a theme.
func ThemeWordPool(theme string) []string {
	switch theme {
	case "animals":
		return names(len(Animals), func(i int) string { return Animals[i].Name })
	case "shapes":
		return names(len(Shapes), func(i int) string { return Shapes[i].Name })
	case "festivals":
		return names(len(Festivals), func(i int) string { return Festivals[i].Name })
	default:
		return names(len(BengalFacts), func(i int) string { return BengalFacts[i].Name })
	}
}

func names(n int, get func(int) string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = get(i)
	}
	return out
}
