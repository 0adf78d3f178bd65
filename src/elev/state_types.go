// State types are kept with exported fields so snapshots can be deep copied.
package elev

import "elevsim/src/types"

type FloorState struct {
	Enabled   bool
	Scheduled bool
}

// ElevatorState is the full state of one car. Floors[0] is the bottom floor.
type ElevatorState struct {
	ID     string
	Index  int
	Floor  int
	Dir    types.Direction
	Bottom int
	Top    int
	Floors []FloorState
}

// FloorAt returns the state of a 1-based floor number, or false when out of range.
func (s *ElevatorState) FloorAt(floor int) (*FloorState, bool) {
	if floor < s.Bottom || floor > s.Top {
		return nil, false
	}
	return &s.Floors[floor-s.Bottom], true
}

type notifier struct {
	listeners []types.Listener
}

// OnChange registers a listener. Listeners run in registration order.
func (n *notifier) OnChange(l types.Listener) {
	n.listeners = append(n.listeners, l)
}

func (n *notifier) notify(change types.Change) {
	for _, l := range n.listeners {
		l(change)
	}
}
