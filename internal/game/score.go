package game

import "github.com/tomz197/arena/internal/event"

// Score accumulates points and announces the target once.
type Score struct {
	value   int
	target  int
	reached bool
	bus     *event.Bus
}

// NewScore creates a score that reports reaching target on bus.
func NewScore(target int, bus *event.Bus) *Score {
	return &Score{target: target, bus: bus}
}

// Add grants points. Non-positive amounts are ignored so the score never
// decreases.
func (s *Score) Add(amount int) {
	if amount <= 0 {
		return
	}
	s.value += amount
	s.bus.Publish(event.ScoreAdded, amount)

	if !s.reached && s.value >= s.target {
		s.reached = true
		s.bus.Publish(event.ScoreTargetReached, s.value)
	}
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

// Target returns the victory threshold.
func (s *Score) Target() int {
	return s.target
}

// Reached reports whether the target has been hit.
func (s *Score) Reached() bool {
	return s.reached
}
