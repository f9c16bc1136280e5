package types

// Side identifies which face of the current card is on display
type Side int

const (
	// Question is the front of a card and the side shown after any navigation
	Question Side = iota
	// Answer is the back of a card, reached only by flipping
	Answer
)

func (s Side) String() string {
	if s == Answer {
		return "Answer"
	}
	return "Question"
}

// Toggle returns the opposite side
func (s Side) Toggle() Side {
	if s == Answer {
		return Question
	}
	return Answer
}
