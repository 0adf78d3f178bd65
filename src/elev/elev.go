package elev

import (
	"log/slog"

	"elevsim/src/types"
	"elevsim/src/utils"

	"github.com/tiendc/go-deepcopy"
)

// Elevator is one car. It starts idle at the bottom floor with every floor
// enabled and nothing scheduled.
type Elevator struct {
	notifier
	state ElevatorState
}

func NewElevator(id string, index, bottom, top int) *Elevator {
	floors := make([]FloorState, top-bottom+1)
	for i := range floors {
		floors[i] = FloorState{Enabled: true}
	}
	elevator := &Elevator{
		state: ElevatorState{
			ID:     id,
			Index:  index,
			Floor:  bottom,
			Dir:    types.DirIdle,
			Bottom: bottom,
			Top:    top,
			Floors: floors,
		},
	}
	slog.Debug("Elevator initialized", "id", id, "index", index)
	return elevator
}

func (e *Elevator) ID() string                        { return e.state.ID }
func (e *Elevator) Index() int                        { return e.state.Index }
func (e *Elevator) CurrentFloor() int                 { return e.state.Floor }
func (e *Elevator) CurrentDirection() types.Direction { return e.state.Dir }

// ComputeFloorCost returns the cost of sending this car to floor, or
// feasible=false when it cannot serve the floor.
// No assignment policy exists yet, so every floor costs zero.
func (e *Elevator) ComputeFloorCost(floor int) (cost int, feasible bool) {
	return 0, true
}

// ReceiveTrigger handles GoToFloor by scheduling the floor. Other kinds are ignored.
func (e *Elevator) ReceiveTrigger(stimulus types.Stimulus) {
	slog.Debug("Trigger", "device", e.state.ID, "stimulus", stimulus)
	switch stimulus.Kind {
	case types.GoToFloor:
		e.SetFloorScheduled(stimulus.Floor, true)
	default:
	}
}

// SetFloorScheduled notifies listeners only when the flag changes.
func (e *Elevator) SetFloorScheduled(floor int, scheduled bool) {
	fs, ok := e.state.FloorAt(floor)
	if !ok {
		slog.Warn("Floor out of range, ignoring schedule",
			"device", e.state.ID,
			"floor", floor,
			"bottom", e.state.Bottom,
			"top", e.state.Top)
		return
	}
	if fs.Scheduled != scheduled {
		fs.Scheduled = scheduled
		e.notify(types.Change{DeviceID: e.state.ID, Attribute: types.AttrScheduled, Floor: floor, Value: scheduled})
	}
}

// SetFloorEnabled marks whether this car serves floor.
func (e *Elevator) SetFloorEnabled(floor int, enabled bool) {
	fs, ok := e.state.FloorAt(floor)
	if !ok {
		slog.Warn("Floor out of range, ignoring enable", "device", e.state.ID, "floor", floor)
		return
	}
	if fs.Enabled != enabled {
		fs.Enabled = enabled
		e.notify(types.Change{DeviceID: e.state.ID, Attribute: types.AttrEnabled, Floor: floor, Value: enabled})
	}
}

// FloorSchedule lists the scheduled floors in ascending order.
func (e *Elevator) FloorSchedule() []int {
	schedule := []int{}
	utils.ForEachFloor(e.state.Bottom, e.state.Top, func(floor int) {
		if fs, _ := e.state.FloorAt(floor); fs.Scheduled {
			schedule = append(schedule, floor)
		}
	})
	return schedule
}

// Snapshot returns a deep copy of the car state that callers may keep or modify.
func (e *Elevator) Snapshot() ElevatorState {
	snap := new(ElevatorState)
	if err := deepcopy.Copy(snap, e.state); err != nil {
		panic(err)
	}
	return *snap
}
