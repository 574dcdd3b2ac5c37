package cards

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrPoolExhausted is returned by Selector.Draw when the without-replacement
// pool has no images left. It signals normal termination, not a failure.
var ErrPoolExhausted = errors.New("cards: image pool exhausted")

// LoadFunc builds a Card from an image file name. It is injected so the
// selector stays free of decoding and texture concerns.
type LoadFunc func(file string) (*Card, error)

// Round is a single shuffled pass over the cards of one subset.
// It replaces the infinite-generator-with-sentinel round iteration with
// an explicit finite, restartable sequence.
type Round struct {
	cards []*Card
	next  int
	rng   *rand.Rand
}

// Size returns the number of cards in the round.
func (r *Round) Size() int {
	return len(r.cards)
}

// Next returns the next card of the round. The second return value is
// false once the round has been fully traversed.
func (r *Round) Next() (*Card, bool) {
	if r.next >= len(r.cards) {
		return nil, false
	}
	c := r.cards[r.next]
	r.next++
	return c, true
}

// Reset reshuffles the same cards and rewinds the round to the start.
func (r *Round) Reset() {
	r.rng.Shuffle(len(r.cards), func(i, j int) {
		r.cards[i], r.cards[j] = r.cards[j], r.cards[i]
	})
	r.next = 0
}

// Selector draws random subsets of images for each round, in one of two
// policies chosen once at startup: with replacement (the pool never
// shrinks, but a subset never repeats an image) or without replacement
// (images leave the pool as they enter a subset and never return).
type Selector struct {
	files      []string
	subsetSize int
	load       LoadFunc
	noReplace  bool
	rng        *rand.Rand
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithoutReplacement selects the shrinking-pool policy.
func WithoutReplacement() SelectorOption {
	return func(s *Selector) { s.noReplace = true }
}

// WithRand sets the random source. Defaults to a time-seeded source;
// tests inject a deterministic one.
func WithRand(rng *rand.Rand) SelectorOption {
	return func(s *Selector) { s.rng = rng }
}

// NewSelector creates a selector over the given image file names.
// The effective subset size of each draw is min(subsetSize, images left).
func NewSelector(files []string, subsetSize int, load LoadFunc, opts ...SelectorOption) *Selector {
	s := &Selector{
		files:      append([]string(nil), files...),
		subsetSize: subsetSize,
		load:       load,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Remaining returns the number of images still in the pool.
func (s *Selector) Remaining() int {
	return len(s.files)
}

// Draw selects the next subset according to the policy and returns it
// as a freshly shuffled Round. Under the without-replacement policy an
// empty pool yields ErrPoolExhausted.
func (s *Selector) Draw() (*Round, error) {
	var picked []string
	if s.noReplace {
		var err error
		picked, err = s.drawNoReplacement()
		if err != nil {
			return nil, err
		}
	} else {
		picked = s.drawWithReplacement()
	}

	cards := make([]*Card, 0, len(picked))
	for _, file := range picked {
		c, err := s.load(file)
		if err != nil {
			return nil, fmt.Errorf("load card %s: %w", file, err)
		}
		cards = append(cards, c)
	}

	round := &Round{cards: cards, rng: s.rng}
	round.Reset()
	return round, nil
}

// drawNoReplacement pops subsetSize random file names from the pool,
// shrinking the subset size if fewer images remain than requested.
func (s *Selector) drawNoReplacement() ([]string, error) {
	if len(s.files) == 0 {
		return nil, ErrPoolExhausted
	}
	if len(s.files) < s.subsetSize {
		s.subsetSize = len(s.files)
	}

	picked := make([]string, 0, s.subsetSize)
	for i := 0; i < s.subsetSize; i++ {
		j := s.rng.Intn(len(s.files))
		picked = append(picked, s.files[j])
		s.files = append(s.files[:j], s.files[j+1:]...)
	}
	return picked, nil
}

// drawWithReplacement samples subsetSize distinct indices from the full
// pool. The pool itself never shrinks, so repeats across subsets are
// possible while repeats within one subset are not.
func (s *Selector) drawWithReplacement() []string {
	picked := make([]string, 0, s.subsetSize)
	for _, j := range s.rng.Perm(len(s.files))[:s.subsetSize] {
		picked = append(picked, s.files[j])
	}
	return picked
}
