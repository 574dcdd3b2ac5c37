package cards

// Quiz is the state machine driving a session: the current card, the
// typed answer buffer, the reveal flag, and the running score.
//
// A card is Showing until either the typed text matches an accepted
// answer (score increments, next card) or the player submits a wrong
// answer (the answer is Revealed; the next submit advances unscored).
type Quiz struct {
	selector  *Selector
	solutions Solutions

	round    *Round
	card     *Card
	text     string
	revealed bool
	score    int
}

// NewQuiz draws the first subset and positions the quiz on its first card.
func NewQuiz(selector *Selector, solutions Solutions) (*Quiz, error) {
	round, err := selector.Draw()
	if err != nil {
		return nil, err
	}

	q := &Quiz{
		selector:  selector,
		solutions: solutions,
		round:     round,
	}
	q.card, _ = round.Next()
	return q, nil
}

// Card returns the card currently shown.
func (q *Quiz) Card() *Card {
	return q.card
}

// Text returns the typed answer buffer.
func (q *Quiz) Text() string {
	return q.text
}

// Revealed reports whether the correct answer is being shown.
func (q *Quiz) Revealed() bool {
	return q.revealed
}

// Score returns the number of cards answered correctly this round.
func (q *Quiz) Score() int {
	return q.score
}

// SubsetSize returns the size of the current round.
func (q *Quiz) SubsetSize() int {
	return q.round.Size()
}

// TypeChar appends a typed character to the answer buffer. Characters
// outside [A-Za-z0-9 -] are ignored. If the buffer now matches an
// accepted answer the score increments and the quiz advances, skipping
// the reveal state.
func (q *Quiz) TypeChar(r rune) error {
	if !allowedChar(r) {
		return nil
	}
	q.text += string(r)
	if q.correct() {
		q.score++
		return q.advance()
	}
	return nil
}

// Submit handles the confirm key: a matching buffer scores and
// advances; an already revealed card advances unscored; otherwise the
// correct answer is revealed.
func (q *Quiz) Submit() error {
	switch {
	case q.correct():
		q.score++
		return q.advance()
	case q.revealed:
		return q.advance()
	default:
		q.revealed = true
		return nil
	}
}

// Backspace removes the last character of the answer buffer, if any.
func (q *Quiz) Backspace() {
	if len(q.text) > 0 {
		q.text = q.text[:len(q.text)-1]
	}
}

// Clear empties the answer buffer.
func (q *Quiz) Clear() {
	q.text = ""
}

// correct reports whether the current buffer is an accepted answer.
func (q *Quiz) correct() bool {
	return q.solutions.Match(q.card.Name, q.text)
}

// advance clears the buffer and reveal flag and moves to the next
// card. At the end of a round, an imperfect score restarts the same
// subset reshuffled, while a perfect score draws an entirely new subset
// via the selection policy; the score starts over either way.
func (q *Quiz) advance() error {
	q.text = ""
	q.revealed = false

	card, ok := q.round.Next()
	if ok {
		q.card = card
		return nil
	}

	if q.score < q.round.Size() {
		q.round.Reset()
	} else {
		round, err := q.selector.Draw()
		if err != nil {
			return err
		}
		q.round = round
	}
	q.score = 0
	q.card, _ = q.round.Next()
	return nil
}

// allowedChar reports whether r may be typed into the answer buffer.
func allowedChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '-':
		return true
	}
	return false
}
