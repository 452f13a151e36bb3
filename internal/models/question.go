package models

// QuestionKind describes how a question is rendered by the app shell.
// Grading is the same for every kind: the selected option index must
// equal CorrectIndex.
type QuestionKind string

const (
	KindPickOne   QuestionKind = "pick-one"
	KindPickEmoji QuestionKind = "pick-emoji"
	KindTrueFalse QuestionKind = "true-false"
)

// Question is a single quiz prompt inside a level.
// Options order is meaningful and must never be re-sorted after
// generation: the index identifies the answer.
type Question struct {
	ID           string       `json:"id"`
	Kind         QuestionKind `json:"kind"`
	Prompt       string       `json:"prompt"`
	Options      []string     `json:"options"`
	CorrectIndex int          `json:"correct_index"`
	Explanation  string       `json:"explanation"`
	Emoji        string       `json:"emoji,omitempty"`
}

// Valid reports whether the question satisfies its structural
// invariants: at least two options, no duplicate options, and a
// correct index inside the options range.
func (q Question) Valid() bool {
	if len(q.Options) < 2 {
		return false
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return false
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt] {
			return false
		}
		seen[opt] = true
	}
	return true
}
