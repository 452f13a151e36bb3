package levels

import (
	"tinyquest/internal/models"
	"tinyquest/internal/seeded"
)

// The first 75 levels are hand-authored. They are plain data: GetLevel
// does a verbatim table lookup for this range.

var fixedBadges = map[int]string{
	25: "Candy Explorer",
	50: "Candy Hero",
	75: "Candy Champion",
}

func p1(prompt string, options []string, correct int, explanation, emoji string) models.Question {
	return models.Question{Kind: models.KindPickOne, Prompt: prompt, Options: options, CorrectIndex: correct, Explanation: explanation, Emoji: emoji}
}

func pe(prompt string, options []string, correct int, explanation, emoji string) models.Question {
	return models.Question{Kind: models.KindPickEmoji, Prompt: prompt, Options: options, CorrectIndex: correct, Explanation: explanation, Emoji: emoji}
}

func tf(prompt string, yes bool, explanation, emoji string) models.Question {
	idx := 1
	if yes {
		idx = 0
	}
	return models.Question{Kind: models.KindTrueFalse, Prompt: prompt, Options: []string{"Yes", "No"}, CorrectIndex: idx, Explanation: explanation, Emoji: emoji}
}

func o(items ...string) []string { return items }

func lvl(num int, title, emoji string, area models.Subject, qs ...models.Question) models.Level {
	info := areaInfos[area]
	for i := range qs {
		qs[i].ID = qid(num, i+1)
	}
	reward := models.Reward{Stars: 1}
	if num%5 == 0 {
		reward.Sticker = seeded.Pick(stickers, num)
	}
	if badge, ok := fixedBadges[num]; ok {
		reward.Badge = badge
		reward.Stars = 2
	}
	return models.Level{
		ID:        models.LevelID(num),
		LevelNum:  num,
		Title:     title,
		Emoji:     emoji,
		Area:      area,
		AreaLabel: info.label,
		AreaColor: info.color,
		Questions: qs,
		Reward:    reward,
	}
}

var fixedLevels = []models.Level{
	lvl(1, "First Steps", "🐣", models.SubjectLetters,
		p1("Which letter does Apple start with?", o("A", "B", "C"), 0, "🍎 Apple starts with A!", "🍎"),
		p1("Which letter does Ball start with?", o("D", "B", "T"), 1, "⚽ Ball starts with B!", "⚽"),
		tf("Does 'Cat' start with the letter C?", true, "'Cat' starts with C.", "🐱")),
	lvl(2, "Count With Me", "🐥", models.SubjectNumbers,
		pe("How many do you see? 🍎🍎", o("1", "2", "3"), 1, "There are 2 apples!", "🍎"),
		p1("Which number is 'one'?", o("3", "2", "1"), 2, "'one' is the number 1.", "🔢"),
		tf("Does 1 come before 2?", true, "1 comes first when we count.", "➡️")),
	lvl(3, "Round and Round", "⭕", models.SubjectShapes,
		pe("Which shape is this? ⭕", o("circle", "square", "star"), 0, "⭕ is a circle!", "⭕"),
		p1("It is round like a wheel. Which shape is it?", o("triangle", "circle", "square"), 1, "It is the circle ⭕", "⭕"),
		tf("Is a ball round like a circle?", true, "A ball is round!", "⚽")),
	lvl(4, "My First Word", "📖", models.SubjectReading,
		pe("Which picture shows 'cat'?", o("🐱", "🐶", "🐟"), 0, "🐱 is the picture for 'cat'!", "🐱"),
		p1("It says woof. Which word is it?", o("cat", "dog", "sun"), 1, "It is 'dog' 🐶", "🐶"),
		tf("Is ☀️ the picture for 'sun'?", true, "The sun shines in the day!", "☀️")),
	lvl(5, "Rainbow Colors", "🌈", models.SubjectArt,
		p1("What color is an apple 🍎?", o("red", "blue", "green"), 0, "An apple is red!", "🍎"),
		pe("Which one is yellow?", o("🌊", "🌞", "🌿"), 1, "The sun is yellow 🌞", "🌞"),
		tf("Is the sea blue?", true, "The sea is big and blue!", "🌊")),
	lvl(6, "Animal Sounds", "🐄", models.SubjectMyWorld,
		p1("Which animal says 'moo'?", o("cow", "cat", "dog"), 0, "The cow says moo! 🐄", "🐄"),
		p1("Which animal says 'meow'?", o("hen", "duck", "cat"), 2, "The cat says meow! 🐱", "🐱"),
		tf("Does a dog say 'woof'?", true, "Dogs say woof woof!", "🐶")),
	lvl(7, "Add One More", "➕", models.SubjectMath,
		p1("1 + 1 = ?", o("2", "3", "1"), 0, "1 plus 1 makes 2!", "➕"),
		p1("2 + 1 = ?", o("4", "3", "2"), 1, "2 plus 1 makes 3!", "➕"),
		tf("Is 1 + 2 the same as 3?", true, "1 and 2 together make 3.", "➕")),
	lvl(8, "The Thirsty Crow", "🐦", models.SubjectStories,
		p1("The thirsty crow dropped what into the pot?", o("pebbles", "leaves", "sticks"), 0, "Pebbles made the water rise!", "🐦"),
		p1("What did the crow want to drink?", o("milk", "juice", "water"), 2, "The crow wanted water.", "💧"),
		tf("Was the crow clever?", true, "The crow solved its problem!", "🐦")),
	lvl(9, "Twinkle Twinkle", "⭐", models.SubjectRhymes,
		p1("Twinkle twinkle little ___?", o("star", "car", "moon"), 0, "Twinkle twinkle little star!", "⭐"),
		p1("How I wonder what you ___?", o("see", "are", "do"), 1, "How I wonder what you are!", "⭐"),
		tf("Is the star up above the world so high?", true, "Like a diamond in the sky!", "💎")),
	lvl(10, "Odd One Out", "🧠", models.SubjectSmartKids,
		pe("Which one is not an animal?", o("🐱", "🐶", "🚗"), 2, "A car is not an animal!", "🚗"),
		pe("Which one can fly?", o("🐟", "🦜", "🐄"), 1, "The parrot can fly!", "🦜"),
		tf("Can a fish walk on land?", false, "Fish swim in water.", "🐟")),
	lvl(11, "Happy Faces", "😊", models.SubjectFeelings,
		pe("Which face is happy?", o("😊", "😢", "😠"), 0, "😊 is a happy face!", "😊"),
		p1("Tears come when you feel this. What is it?", o("happy", "sad", "sleepy"), 1, "Tears come when we are sad.", "😢"),
		tf("Do you smile when you are happy?", true, "Smiles mean happy!", "😊")),
	lvl(12, "Letter Friends", "🔤", models.SubjectLetters,
		p1("Which letter does Dog start with?", o("B", "D", "G"), 1, "🐶 Dog starts with D!", "🐶"),
		p1("Which word starts with the letter E?", o("Elephant", "Apple", "Fish"), 0, "Elephant starts with E 🐘", "🐘"),
		tf("Does 'Fish' start with the letter G?", false, "'Fish' starts with the letter F.", "🐟")),
	lvl(13, "Three Little Birds", "🐥", models.SubjectNumbers,
		pe("How many do you see? 🐥🐥🐥", o("3", "4", "2"), 0, "There are 3 chicks!", "🐥"),
		p1("Which number is 'four'?", o("4", "5", "3"), 0, "'four' is the number 4.", "🔢"),
		p1("What comes just after 2?", o("4", "1", "3"), 2, "3 comes right after 2.", "➡️")),
	lvl(14, "Pointy Corners", "🔺", models.SubjectShapes,
		pe("Which shape is this? 🔺", o("circle", "triangle", "oval"), 1, "🔺 is a triangle!", "🔺"),
		p1("Which shape has three pointy corners?", o("triangle", "circle", "heart"), 0, "The triangle has 3 corners!", "🔺"),
		tf("Does a triangle have 4 sides?", false, "A triangle has 3 sides.", "🔺")),
	lvl(15, "Word Hunt", "🔎", models.SubjectReading,
		p1("You wear it on your head. Which word is it?", o("cup", "hat", "bed"), 1, "It is 'hat' 🎩", "🎩"),
		pe("Which picture shows 'bus'?", o("🚌", "🛏️", "🥤"), 0, "🚌 is the picture for 'bus'!", "🚌"),
		tf("Is 🥤 the picture for 'cup'?", true, "You drink from a cup!", "🥤")),
	lvl(16, "Paint the Sky", "🎨", models.SubjectArt,
		p1("What color is a leaf 🌿?", o("green", "red", "purple"), 0, "A leaf is green!", "🌿"),
		p1("What color is a carrot 🥕?", o("blue", "pink", "orange"), 2, "A carrot is orange!", "🥕"),
		tf("Is a flamingo pink?", true, "Flamingos are pink birds!", "🦩")),
	lvl(17, "Where We Live", "🏠", models.SubjectMyWorld,
		p1("Where does a lion live?", o("den", "pond", "nest"), 0, "A lion lives in a den.", "🦁"),
		p1("Where does a bird keep its eggs?", o("kennel", "nest", "shed"), 1, "Birds build nests!", "🪺"),
		tf("Does a fish live in water?", true, "Fish live and swim in water.", "🐟")),
	lvl(18, "Take Away", "➖", models.SubjectMath,
		p1("3 - 1 = ?", o("2", "1", "3"), 0, "3 take away 1 leaves 2!", "➖"),
		p1("4 - 2 = ?", o("3", "2", "1"), 1, "4 take away 2 leaves 2!", "➖"),
		tf("Is 5 - 5 equal to 0?", true, "Take all away and nothing is left!", "➖")),
	lvl(19, "The Hare and Tortoise", "🐢", models.SubjectStories,
		p1("Who won the race?", o("the hare", "the tortoise", "the fox"), 1, "Slow and steady wins the race!", "🐢"),
		p1("Why did the hare lose?", o("he slept", "he fell", "he got lost"), 0, "The hare stopped for a nap!", "🐇"),
		tf("Was the tortoise steady?", true, "Slow and steady wins the race.", "🐢")),
	lvl(20, "Rain Rain", "🌧️", models.SubjectRhymes,
		p1("Rain rain go ___?", o("away", "up", "down"), 0, "Rain rain go away!", "🌧️"),
		p1("Come again another ___?", o("year", "night", "day"), 2, "Come again another day!", "🌧️"),
		tf("Does little Johnny want to play?", true, "Little Johnny wants to play!", "⚽")),
	lvl(21, "Big and Small", "🐘", models.SubjectSmartKids,
		pe("Which one is the biggest?", o("🐭", "🐘", "🐱"), 1, "The elephant is the biggest!", "🐘"),
		pe("Which one is the smallest?", o("🐝", "🐄", "🐴"), 0, "The bee is tiny!", "🐝"),
		tf("Is an ant smaller than a dog?", true, "Ants are very small.", "🐜")),
	lvl(22, "Brave Hearts", "💪", models.SubjectFeelings,
		p1("A loud noise can make you feel this. What is it?", o("scared", "proud", "sleepy"), 0, "Loud noises can be scary.", "😨"),
		pe("Which face is angry?", o("😊", "🥱", "😠"), 2, "😠 is an angry face!", "😠"),
		tf("Do you yawn when you are sleepy?", true, "Yawns mean bedtime!", "🥱")),
	lvl(23, "Letter Parade", "🎺", models.SubjectLetters,
		p1("Which letter does Grapes start with?", o("G", "J", "Q"), 0, "🍇 Grapes starts with G!", "🍇"),
		p1("Which word starts with the letter H?", o("Ice cream", "Hat", "Jug"), 1, "Hat starts with H 🎩", "🎩"),
		tf("Does 'Ice cream' start with the letter I?", true, "'Ice cream' starts with I.", "🍦")),
	lvl(24, "Counting Stars", "⭐", models.SubjectNumbers,
		pe("How many do you see? ⭐⭐⭐⭐⭐", o("4", "5", "6"), 1, "There are 5 stars!", "⭐"),
		p1("Which number is 'six'?", o("6", "7", "9"), 0, "'six' is the number 6.", "🔢"),
		p1("What comes just after 4?", o("5", "3", "6"), 0, "5 comes right after 4.", "➡️")),
	lvl(25, "Square Dance", "🟥", models.SubjectShapes,
		pe("Which shape is this? 🟥", o("square", "circle", "triangle"), 0, "🟥 is a square!", "🟥"),
		p1("All four sides are the same. Which shape is it?", o("oval", "square", "star"), 1, "It is the square 🟥", "🟥"),
		tf("Does a square have 4 sides?", true, "A square has 4 equal sides.", "🟥")),
	lvl(26, "Story Words", "📚", models.SubjectReading,
		p1("A hen lays it. Which word is it?", o("egg", "jam", "log"), 0, "It is 'egg' 🥚", "🥚"),
		pe("Which picture shows 'pen'?", o("📦", "🖊️", "🪭"), 1, "🖊️ is the picture for 'pen'!", "🖊️"),
		tf("Is 🗺️ the picture for 'map'?", true, "A map shows the way!", "🗺️")),
	lvl(27, "Color Mix", "🖌️", models.SubjectArt,
		p1("What do red and yellow make?", o("orange", "purple", "green"), 0, "Red and yellow make orange!", "🟠"),
		p1("What do blue and yellow make?", o("pink", "brown", "green"), 2, "Blue and yellow make green!", "🟢"),
		tf("Do red and blue make purple?", true, "Red and blue make purple!", "🟣")),
	lvl(28, "Baby Animals", "🐣", models.SubjectMyWorld,
		p1("What is a baby dog called?", o("puppy", "kitten", "calf"), 0, "A baby dog is a puppy!", "🐶"),
		p1("What is a baby cat called?", o("cub", "chick", "kitten"), 2, "A baby cat is a kitten!", "🐱"),
		tf("Is a baby hen called a chick?", true, "Chicks say cheep cheep!", "🐥")),
	lvl(29, "Number Pairs", "🔟", models.SubjectMath,
		p1("2 + 2 = ?", o("4", "3", "5"), 0, "2 plus 2 makes 4!", "➕"),
		p1("3 + 2 = ?", o("6", "5", "4"), 1, "3 plus 2 makes 5!", "➕"),
		p1("Which number is bigger: 3 or 5?", o("3", "5"), 1, "5 is bigger!", "⚖️")),
	lvl(30, "The Lion and the Mouse", "🦁", models.SubjectStories,
		p1("Who helped the lion out of the net?", o("the mouse", "the fox", "the bear"), 0, "The little mouse chewed the net!", "🐭"),
		p1("How did the mouse help?", o("it roared", "it pulled", "it chewed the net"), 2, "Tiny teeth, big help!", "🐭"),
		tf("Can small friends be big helpers?", true, "Even a mouse can help a lion!", "🦁")),
	lvl(31, "Baa Baa Black Sheep", "🐑", models.SubjectRhymes,
		p1("Baa baa black sheep, have you any ___?", o("wool", "milk", "hay"), 0, "Have you any wool!", "🐑"),
		p1("How many bags full?", o("two", "three", "one"), 1, "Yes sir, yes sir, three bags full!", "🐑"),
		tf("Is one bag for the little boy down the lane?", true, "One for the little boy down the lane!", "👦")),
	lvl(32, "Match Maker", "🧩", models.SubjectSmartKids,
		pe("Which one goes with rain?", o("☂️", "🍦", "🎺"), 0, "You need an umbrella in the rain!", "☂️"),
		pe("Which one goes with night?", o("☀️", "🌙", "🌈"), 1, "The moon comes out at night!", "🌙"),
		tf("Do shoes go on your hands?", false, "Shoes go on your feet!", "👟")),
	lvl(33, "Kind Words", "💝", models.SubjectFeelings,
		p1("Your friend falls down. What do you say?", o("Are you okay?", "Go away!", "Nothing"), 0, "Kind friends check on each other.", "🤗"),
		p1("Someone gives you a gift. What do you say?", o("No", "Thank you!", "Mine!"), 1, "Thank you makes everyone smile!", "🎁"),
		tf("Is sharing kind?", true, "Sharing is caring!", "💝")),
	lvl(34, "Letter Safari", "🦓", models.SubjectLetters,
		p1("Which letter does Kite start with?", o("K", "X", "C"), 0, "🪁 Kite starts with K!", "🪁"),
		p1("Which word starts with the letter L?", o("Mango", "Lion", "Nest"), 1, "Lion starts with L 🦁", "🦁"),
		tf("Does 'Mango' start with the letter N?", false, "'Mango' starts with the letter M.", "🥭")),
	lvl(35, "Balloon Count", "🎈", models.SubjectNumbers,
		pe("How many do you see? 🎈🎈🎈🎈🎈🎈", o("5", "7", "6"), 2, "There are 6 balloons!", "🎈"),
		p1("Which number is 'eight'?", o("8", "6", "9"), 0, "'eight' is the number 8.", "🔢"),
		p1("What comes just after 7?", o("6", "8", "9"), 1, "8 comes right after 7.", "➡️")),
	lvl(36, "Starry Night", "🌟", models.SubjectShapes,
		pe("Which shape is this? ⭐", o("heart", "star", "diamond"), 1, "⭐ is a star!", "⭐"),
		p1("It twinkles in the night sky. Which shape is it?", o("star", "circle", "square"), 0, "It is the star ⭐", "⭐"),
		tf("Does a star shape have 5 points?", true, "A star has 5 points.", "⭐")),
	lvl(37, "Read and Match", "🎯", models.SubjectReading,
		p1("It keeps you cool. Which word is it?", o("fan", "log", "net"), 0, "It is 'fan' 🪭", "🪭"),
		pe("Which picture shows 'van'?", o("🚌", "🚐", "🗺️"), 1, "🚐 is the picture for 'van'!", "🚐"),
		tf("Is 🪵 the picture for 'log'?", true, "A log is a piece of wood!", "🪵")),
	lvl(38, "Animal Colors", "🦚", models.SubjectArt,
		p1("What color is a crow 🐦‍⬛?", o("black", "white", "yellow"), 0, "A crow is black!", "🐦‍⬛"),
		p1("What color is a sheep 🐑?", o("green", "purple", "white"), 2, "A sheep is white and fluffy!", "🐑"),
		tf("Is a bear brown?", true, "Many bears are brown!", "🐻")),
	lvl(39, "Day and Night", "🌗", models.SubjectMyWorld,
		p1("When do we see the sun?", o("day", "night", "never"), 0, "The sun shines in the day!", "☀️"),
		p1("When do we see the stars?", o("morning", "night", "noon"), 1, "Stars come out at night!", "⭐"),
		tf("Do we sleep at night?", true, "Night time is sleep time.", "🛏️")),
	lvl(40, "Sums and Friends", "🤝", models.SubjectMath,
		p1("4 + 3 = ?", o("7", "6", "8"), 0, "4 plus 3 makes 7!", "➕"),
		p1("6 - 2 = ?", o("5", "4", "3"), 1, "6 take away 2 leaves 4!", "➖"),
		p1("Which number is bigger: 8 or 6?", o("8", "6"), 0, "8 is bigger!", "⚖️")),
	lvl(41, "The Ant and the Dove", "🕊️", models.SubjectStories,
		p1("Who saved the drowning ant?", o("the dove", "the bee", "the frog"), 0, "The dove dropped a leaf!", "🕊️"),
		p1("How did the ant thank the dove?", o("it sang", "it bit the hunter", "it flew away"), 1, "The ant bit the hunter's foot!", "🐜"),
		tf("Did the friends help each other?", true, "One good turn deserves another.", "🤝")),
	lvl(42, "Wheels on the Bus", "🚌", models.SubjectRhymes,
		p1("The wheels on the bus go ___?", o("round and round", "up and down", "in and out"), 0, "Round and round!", "🚌"),
		p1("The wipers on the bus go ___?", o("beep beep beep", "swish swish swish", "clap clap clap"), 1, "Swish swish swish!", "🚌"),
		tf("Do the wheels on the bus go round?", true, "Round and round, all through the town!", "🚌")),
	lvl(43, "What Comes Next", "🔮", models.SubjectSmartKids,
		p1("🍎🍌🍎🍌🍎 ... what comes next?", o("🍌", "🍎", "🍇"), 0, "The pattern is apple, banana!", "🍌"),
		p1("⭐⭐🌙⭐⭐🌙 ... what comes next?", o("🌙", "⭐", "☀️"), 1, "Two stars then a moon!", "⭐"),
		tf("Do patterns repeat?", true, "Patterns repeat again and again.", "🧩")),
	lvl(44, "Big Feelings", "💗", models.SubjectFeelings,
		p1("Before a birthday party you feel this. What is it?", o("excited", "angry", "scared"), 0, "Parties are exciting!", "🤩"),
		pe("Which face is surprised?", o("😌", "😲", "😢"), 1, "😲 is a surprised face!", "😲"),
		tf("Is it okay to cry sometimes?", true, "Everyone feels sad sometimes.", "🤗")),
	lvl(45, "Letter Rocket", "🚀", models.SubjectLetters,
		p1("Which letter does Parrot start with?", o("B", "P", "R"), 1, "🦜 Parrot starts with P!", "🦜"),
		p1("Which word starts with the letter Q?", o("Queen", "King", "Rainbow"), 0, "Queen starts with Q 👑", "👑"),
		tf("Does 'Rainbow' start with the letter R?", true, "'Rainbow' starts with R.", "🌈")),
	lvl(46, "Cookie Count", "🍪", models.SubjectNumbers,
		pe("How many do you see? 🍪🍪🍪🍪🍪🍪🍪", o("7", "8", "6"), 0, "There are 7 cookies!", "🍪"),
		p1("Which number is 'ten'?", o("9", "10", "11"), 1, "'ten' is the number 10.", "🔢"),
		p1("What comes just after 9?", o("10", "8", "11"), 0, "10 comes right after 9.", "➡️")),
	lvl(47, "Heart to Heart", "❤️", models.SubjectShapes,
		pe("Which shape is this? ❤️", o("heart", "oval", "circle"), 0, "❤️ is a heart!", "❤️"),
		p1("It means love. Which shape is it?", o("square", "heart", "triangle"), 1, "It is the heart ❤️", "❤️"),
		tf("Is an egg shaped like an oval?", true, "An egg is an oval.", "🥚")),
	lvl(48, "Sound It Out", "🔊", models.SubjectReading,
		p1("It catches the ball. Which word is it?", o("net", "map", "box"), 0, "It is 'net' 🥅", "🥅"),
		pe("Which picture shows 'jam'?", o("🍓", "🥚", "🖊️"), 0, "🍓 is the picture for 'jam'!", "🍓"),
		tf("Is 📦 the picture for 'bed'?", false, "📦 is a box. You sleep on a bed 🛏️.", "📦")),
	lvl(49, "Fruit Palette", "🍉", models.SubjectArt,
		p1("What color is a brinjal 🍆?", o("purple", "orange", "red"), 0, "A brinjal is purple!", "🍆"),
		p1("What color are grapes 🍇?", o("brown", "purple", "white"), 1, "These grapes are purple!", "🍇"),
		tf("Is a watermelon green outside?", true, "Green outside, red inside!", "🍉")),
	lvl(50, "Helpers Around Us", "🧑‍🚒", models.SubjectMyWorld,
		p1("Who puts out fires?", o("firefighter", "doctor", "teacher"), 0, "Firefighters are brave!", "🧑‍🚒"),
		p1("Who helps us when we are sick?", o("pilot", "farmer", "doctor"), 2, "Doctors make us well!", "🧑‍⚕️"),
		tf("Does a teacher help us learn?", true, "Teachers help us learn new things!", "🧑‍🏫")),
	lvl(51, "Double Trouble", "✌️", models.SubjectMath,
		p1("5 + 5 = ?", o("10", "9", "11"), 0, "5 plus 5 makes 10!", "➕"),
		p1("8 - 4 = ?", o("5", "4", "3"), 1, "8 take away 4 leaves 4!", "➖"),
		p1("Which number is bigger: 10 or 7?", o("10", "7"), 0, "10 is bigger!", "⚖️")),
	lvl(52, "The Fox and the Grapes", "🦊", models.SubjectStories,
		p1("What did the fox want?", o("grapes", "cheese", "bread"), 0, "The fox wanted the grapes!", "🍇"),
		p1("Could the fox reach the grapes?", o("yes", "no"), 1, "They were too high up!", "🦊"),
		tf("Did the fox say the grapes were sour?", true, "'They must be sour anyway!'", "🍇")),
	lvl(53, "Old MacDonald", "🚜", models.SubjectRhymes,
		p1("Old MacDonald had a ___?", o("farm", "shop", "boat"), 0, "Old MacDonald had a farm!", "🚜"),
		p1("E-I-E-I-___?", o("A", "O", "U"), 1, "E-I-E-I-O!", "🎵"),
		tf("Did Old MacDonald have a cow on his farm?", true, "With a moo moo here!", "🐄")),
	lvl(54, "Sorting Fun", "🗂️", models.SubjectSmartKids,
		pe("Which one is a fruit?", o("🥕", "🍌", "🌿"), 1, "A banana is a fruit!", "🍌"),
		pe("Which one do you wear?", o("👕", "🍪", "⚽"), 0, "You wear a shirt!", "👕"),
		tf("Is a carrot a vegetable?", true, "Carrots are crunchy vegetables!", "🥕")),
	lvl(55, "Calm and Cozy", "🧘", models.SubjectFeelings,
		p1("Finishing a puzzle makes you feel this. What is it?", o("proud", "scared", "angry"), 0, "Well done makes us proud!", "😌"),
		p1("What can help when you feel angry?", o("shouting", "deep breaths", "stomping"), 1, "Slow breaths calm us down.", "🧘"),
		tf("Does a hug feel nice?", true, "Hugs are warm and cozy!", "🤗")),
	lvl(56, "Letter Ocean", "🌊", models.SubjectLetters,
		p1("Which letter does Sun start with?", o("S", "C", "Z"), 0, "☀️ Sun starts with S!", "☀️"),
		p1("Which word starts with the letter T?", o("Umbrella", "Tiger", "Violin"), 1, "Tiger starts with T 🐯", "🐯"),
		tf("Does 'Umbrella' start with the letter U?", true, "'Umbrella' starts with U.", "☂️")),
	lvl(57, "Flower Count", "🌸", models.SubjectNumbers,
		pe("How many do you see? 🌸🌸🌸🌸🌸🌸🌸🌸", o("7", "9", "8"), 2, "There are 8 flowers!", "🌸"),
		p1("Which number is 'twelve'?", o("12", "11", "20"), 0, "'twelve' is the number 12.", "🔢"),
		p1("What comes just after 11?", o("10", "12", "13"), 1, "12 comes right after 11.", "➡️")),
	lvl(58, "Stretchy Shapes", "🟦", models.SubjectShapes,
		pe("Which shape is this? 🟦", o("rectangle", "circle", "star"), 0, "🟦 is a rectangle!", "🟦"),
		p1("Like a square but stretched. Which shape is it?", o("triangle", "rectangle", "heart"), 1, "It is the rectangle 🟦", "🟦"),
		tf("Does a rectangle have 4 sides?", true, "A rectangle has 4 sides.", "🟦")),
	lvl(59, "Rhyme Time Words", "🎪", models.SubjectReading,
		p1("Which word rhymes with 'cat'?", o("hat", "dog", "cup"), 0, "'cat' and 'hat' rhyme!", "🎩"),
		p1("Which word rhymes with 'log'?", o("pen", "dog", "map"), 1, "'log' and 'dog' rhyme!", "🐶"),
		tf("Do 'sun' and 'fun' rhyme?", true, "'sun' and 'fun' sound alike!", "☀️")),
	lvl(60, "Sky Painting", "🌅", models.SubjectArt,
		p1("What color is the sky on a sunny day?", o("blue", "black", "green"), 0, "The day sky is blue!", "🌤️"),
		p1("What colors are in a rainbow?", o("only red", "many colors", "only blue"), 1, "A rainbow has many colors!", "🌈"),
		tf("Is the night sky dark?", true, "The night sky is dark blue-black.", "🌃")),
	lvl(61, "Growing Things", "🌱", models.SubjectMyWorld,
		p1("What does a seed grow into?", o("a plant", "a rock", "a cloud"), 0, "Seeds grow into plants!", "🌱"),
		p1("What do plants need to grow?", o("candy", "water and sun", "toys"), 1, "Water and sunshine!", "💧"),
		tf("Do trees give us shade?", true, "Trees keep us cool!", "🌳")),
	lvl(62, "Number Ladder", "🪜", models.SubjectMath,
		p1("6 + 3 = ?", o("9", "8", "10"), 0, "6 plus 3 makes 9!", "➕"),
		p1("10 - 5 = ?", o("6", "5", "4"), 1, "10 take away 5 leaves 5!", "➖"),
		p1("Which number is bigger: 12 or 15?", o("12", "15"), 1, "15 is bigger!", "⚖️")),
	lvl(63, "The Boy Who Cried Wolf", "🐺", models.SubjectStories,
		p1("What did the boy shout?", o("Wolf! Wolf!", "Fire! Fire!", "Rain! Rain!"), 0, "He cried wolf as a trick!", "🐺"),
		p1("Why didn't people come the last time?", o("they were busy", "he had tricked them before", "they were asleep"), 1, "Nobody believes a trickster.", "🐺"),
		tf("Is it good to tell the truth?", true, "Always tell the truth!", "💛")),
	lvl(64, "Itsy Bitsy Spider", "🕷️", models.SubjectRhymes,
		p1("The itsy bitsy spider climbed up the ___?", o("water spout", "tall tree", "big hill"), 0, "Up the water spout!", "🕷️"),
		p1("What washed the spider out?", o("the wind", "the rain", "the sun"), 1, "Down came the rain!", "🌧️"),
		tf("Did the spider climb up again?", true, "The spider never gave up!", "🕷️")),
	lvl(65, "Memory Magic", "🎩", models.SubjectSmartKids,
		p1("Which is the odd one out: 🍎 🍌 🚲 🍇?", o("🚲", "🍎", "🍇"), 0, "A bicycle is not a fruit!", "🚲"),
		p1("What do you use to cut paper?", o("spoon", "scissors", "pillow"), 1, "Scissors cut paper!", "✂️"),
		tf("Can you see with your ears?", false, "We see with our eyes!", "👀")),
	lvl(66, "Sharing Sunshine", "🌻", models.SubjectFeelings,
		p1("Your friend has no crayons. What do you do?", o("share yours", "hide them", "laugh"), 0, "Sharing makes friends happy!", "🖍️"),
		pe("Which face is proud?", o("😨", "😌", "😠"), 1, "😌 is a proud, happy face!", "😌"),
		tf("Do kind words make people smile?", true, "Kind words are like sunshine!", "🌻")),
	lvl(67, "Letter Jungle", "🌴", models.SubjectLetters,
		p1("Which letter does Whale start with?", o("V", "W", "M"), 1, "🐳 Whale starts with W!", "🐳"),
		p1("Which word starts with the letter X?", o("Xylophone", "Yak", "Zebra"), 0, "Xylophone starts with X 🎵", "🎵"),
		tf("Does 'Zebra' start with the letter Y?", false, "'Zebra' starts with the letter Z.", "🦓")),
	lvl(68, "Fish Tank Count", "🐠", models.SubjectNumbers,
		pe("How many do you see? 🐠🐠🐠🐠🐠🐠🐠🐠🐠", o("9", "8", "10"), 0, "There are 9 fish!", "🐠"),
		p1("Which number is 'fifteen'?", o("14", "15", "16"), 1, "'fifteen' is the number 15.", "🔢"),
		p1("What comes just after 14?", o("15", "13", "16"), 0, "15 comes right after 14.", "➡️")),
	lvl(69, "Gem Hunt", "💎", models.SubjectShapes,
		pe("Which shape is this? 🔷", o("diamond", "heart", "square"), 0, "🔷 is a diamond!", "🔷"),
		p1("It sparkles like a gem. Which shape is it?", o("oval", "diamond", "circle"), 1, "It is the diamond 🔷", "🔷"),
		tf("Does a diamond shape have 4 sides?", true, "A diamond has 4 sides.", "🔷")),
	lvl(70, "Sentence Builder", "🏗️", models.SubjectReading,
		p1("The cat sat on the ___?", o("mat", "sky", "sun"), 0, "The cat sat on the mat!", "🐱"),
		p1("I ride the ___ to school?", o("egg", "bus", "jam"), 1, "I ride the bus to school!", "🚌"),
		tf("Does 'The dog runs' make sense?", true, "Dogs love to run!", "🐶")),
	lvl(71, "Art Gallery", "🖼️", models.SubjectArt,
		p1("What do you draw with?", o("crayons", "spoons", "shoes"), 0, "Crayons make colorful art!", "🖍️"),
		p1("What color is made lighter by adding white?", o("it stays the same", "any color", "no color"), 1, "White makes colors lighter!", "⚪"),
		tf("Can you mix colors to make new ones?", true, "Mixing makes new colors!", "🎨")),
	lvl(72, "Weather Watch", "⛅", models.SubjectMyWorld,
		p1("What do you use when it rains?", o("umbrella", "sunglasses", "fan"), 0, "An umbrella keeps you dry!", "☂️"),
		p1("What do we see in the sky when it is hot and bright?", o("stars", "the sun", "the moon"), 1, "The sun makes it hot!", "☀️"),
		tf("Does snow feel cold?", true, "Snow is freezing cold!", "❄️")),
	lvl(73, "Math Castle", "🏰", models.SubjectMath,
		p1("7 + 2 = ?", o("9", "8", "10"), 0, "7 plus 2 makes 9!", "➕"),
		p1("9 - 3 = ?", o("7", "6", "5"), 1, "9 take away 3 leaves 6!", "➖"),
		p1("Which number is bigger: 18 or 14?", o("18", "14"), 0, "18 is bigger!", "⚖️")),
	lvl(74, "Goldilocks", "🐻", models.SubjectStories,
		p1("How many bears were in the house?", o("three", "two", "five"), 0, "Papa, Mama and Baby bear!", "🐻"),
		p1("Whose porridge was just right?", o("Papa bear's", "Baby bear's", "Mama bear's"), 1, "Baby bear's was just right!", "🥣"),
		tf("Did Goldilocks sleep in Baby bear's bed?", true, "She fell fast asleep!", "🛏️")),
	lvl(75, "Grand Finale", "🎆", models.SubjectSmartKids,
		p1("🔴🔵🔴🔵🔴 ... what comes next?", o("🔵", "🔴", "🟢"), 0, "Red then blue, again and again!", "🔵"),
		pe("Which one is a shape, not an animal?", o("🐸", "🔺", "🦆"), 1, "The triangle is a shape!", "🔺"),
		tf("Did you finish all the candy levels?", true, "You are a Candy Champion! 🎆", "🏆")),
}
