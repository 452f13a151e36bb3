// Package credentials generates avatar names for new profiles and owns
// the parent gate PIN hashing.
package credentials

import (
	"crypto/rand"
	"math/big"
)

// Word lists for generating kid-friendly avatar names
var adjectives = []string{
	"Happy", "Sunny", "Brave", "Bright", "Cosy", "Swift", "Clever", "Jolly",
	"Mighty", "Super", "Starry", "Wild", "Funny", "Lucky", "Magic", "Bouncy",
	"Cheerful", "Daring", "Eager", "Flying", "Gentle", "Speedy", "Jazzy", "Kindly",
	"Lively", "Merry", "Noble", "Perky", "Quick", "Royal", "Snappy", "Twinkly",
	"Zippy", "Dreamy", "Bold", "Cosmic", "Sparkly", "Epic", "Fantastic", "Groovy",
}

var animals = []string{
	"Fox", "Tiger", "Eagle", "Dolphin", "Panda", "Lion", "Owl", "Bear",
	"Bunny", "Hawk", "Seal", "Peacock", "Unicorn", "Koala", "Otter", "Deer",
	"Penguin", "Parrot", "Kitten", "Puppy", "Squirrel", "Hedgehog", "Lamb", "Duckling",
	"Elephant", "Giraffe", "Zebra", "Monkey", "Turtle", "Butterfly", "Ladybird", "Robin",
	"Whale", "Pony", "Chick", "Mouse", "Raccoon", "Dragonfly", "Crab", "Starfish",
}

// GenerateAvatarName generates a random avatar name like "Sunny Fox"
func GenerateAvatarName() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	animal, err := randomElement(animals)
	if err != nil {
		return "", err
	}

	return adjective + " " + animal, nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}
