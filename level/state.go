// Package level tracks cumulative failed orders across a session.
package level

import (
	"fmt"

	"github.com/lixenwraith/plug-n-chug/parameter"
)

// Phase is the variant tag of State
type Phase uint8

const (
	NoFailures Phase = iota
	OrdersFailed
	GameOver
)

// State is the failure state of a session
// Count is meaningful only in the OrdersFailed phase and starts at zero on the first failure
type State struct {
	Phase Phase
	Count int
}

// Event drives level transitions
type Event uint8

const (
	FailedOrder Event = iota
)

// Next is the pure transition function, GameOver absorbs every event
func Next(s State, ev Event) State {
	if ev != FailedOrder {
		return s
	}
	switch s.Phase {
	case NoFailures:
		return State{Phase: OrdersFailed, Count: 0}
	case OrdersFailed:
		if s.Count+1 >= parameter.FailedOrderLimit {
			return State{Phase: GameOver}
		}
		return State{Phase: OrdersFailed, Count: s.Count + 1}
	default:
		return s
	}
}

// Next applies ev to the receiver's value
func (s State) Next(ev Event) State {
	return Next(s, ev)
}

// IsGameOver reports the terminal phase
func (s State) IsGameOver() bool {
	return s.Phase == GameOver
}

// Failures returns the number of failed orders recorded so far, capped at the display limit
func (s State) Failures() int {
	switch s.Phase {
	case OrdersFailed:
		return min(s.Count+1, parameter.FailedOrderLimit)
	case GameOver:
		return parameter.FailedOrderLimit
	}
	return 0
}

func (s State) String() string {
	switch s.Phase {
	case NoFailures:
		return "NoFailures"
	case OrdersFailed:
		return fmt.Sprintf("OrdersFailed(%d)", s.Count)
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}
