package dispatcher

import (
	"container/heap"
	"fmt"
	"log/slog"
	"sync"

	"elevsim/src/config"
	"elevsim/src/elev"
	"elevsim/src/types"
)

// ControlSystem owns every device in the building and the queue of pending
// stimuli. Floors run from config.FloorBottom to the floor count.
//
// Enqueue, HasPending and PeekNextTimestamp may be called from several
// producers. Step mutates device state and must not run concurrently with
// itself or with the device accessors.
type ControlSystem struct {
	floorCount int
	elevators  []*elev.Elevator
	buttons    []*elev.FloorCallButton
	devices    map[string]Device
	listeners  []types.Listener

	mu    sync.Mutex
	queue stimulusQueue
}

func New(floorCount int) *ControlSystem {
	return &ControlSystem{
		floorCount: floorCount,
		devices:    make(map[string]Device),
	}
}

func (cs *ControlSystem) FloorBottom() int { return config.FloorBottom }
func (cs *ControlSystem) FloorTop() int    { return cs.floorCount }

// RegisterElevator creates the next car, identified as E-<index>, and makes
// it routable.
func (cs *ControlSystem) RegisterElevator() *elev.Elevator {
	index := len(cs.elevators)
	elevator := elev.NewElevator(fmt.Sprintf("E-%d", index), index, cs.FloorBottom(), cs.FloorTop())
	cs.elevators = append(cs.elevators, elevator)
	cs.addDevice(elevator)
	return elevator
}

// RegisterFloorCallButton creates a call button under the given identity.
// A colliding identity replaces the previous routing entry.
func (cs *ControlSystem) RegisterFloorCallButton(id string, floor int) *elev.FloorCallButton {
	button := elev.NewFloorCallButton(id, floor, cs.FloorBottom(), cs.FloorTop())
	cs.buttons = append(cs.buttons, button)
	cs.addDevice(button)
	return button
}

func (cs *ControlSystem) addDevice(d Device) {
	if _, exists := cs.devices[d.ID()]; exists {
		slog.Warn("Device identity already registered, replacing route", "device", d.ID())
	}
	cs.devices[d.ID()] = d
	d.OnChange(cs.fanOut)
}

// OnChange subscribes to changes from every registered device.
func (cs *ControlSystem) OnChange(l types.Listener) {
	cs.listeners = append(cs.listeners, l)
}

func (cs *ControlSystem) fanOut(change types.Change) {
	slog.Debug("Device changed",
		"device", change.DeviceID,
		"attribute", change.Attribute,
		"floor", change.Floor,
		"value", change.Value)
	for _, l := range cs.listeners {
		l(change)
	}
}

func (cs *ControlSystem) Elevators() []*elev.Elevator               { return cs.elevators }
func (cs *ControlSystem) FloorCallButtons() []*elev.FloorCallButton { return cs.buttons }

func (cs *ControlSystem) Device(id string) (Device, bool) {
	d, ok := cs.devices[id]
	return d, ok
}

func (cs *ControlSystem) Enqueue(stimulus types.Stimulus) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	heap.Push(&cs.queue, stimulus)
}

func (cs *ControlSystem) HasPending() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.queue) > 0
}

// PeekNextTimestamp returns the earliest pending timestamp without removing
// it, or config.NoTimestamp and false when the queue is empty.
func (cs *ControlSystem) PeekNextTimestamp() (int, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if len(cs.queue) == 0 {
		return config.NoTimestamp, false
	}
	return cs.queue[0].Timestamp, true
}

func (cs *ControlSystem) pop() (types.Stimulus, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if len(cs.queue) == 0 {
		return types.Stimulus{}, false
	}
	return heap.Pop(&cs.queue).(types.Stimulus), true
}

// Step removes the earliest stimulus and hands it to its device. Stimuli for
// unknown devices are logged and dropped. Returns false when nothing was pending.
func (cs *ControlSystem) Step() (types.Stimulus, bool) {
	stimulus, ok := cs.pop()
	if !ok {
		return stimulus, false
	}
	device, found := cs.devices[stimulus.DeviceID]
	if !found {
		slog.Warn("Unknown device, dropping stimulus", "stimulus", stimulus)
		return stimulus, true
	}
	device.ReceiveTrigger(stimulus)
	return stimulus, true
}

// Run steps until no stimuli remain, calling onStep after each step.
// onStep may be nil.
func (cs *ControlSystem) Run(onStep func(types.Stimulus)) int {
	steps := 0
	for {
		stimulus, ok := cs.Step()
		if !ok {
			return steps
		}
		steps++
		if onStep != nil {
			onStep(stimulus)
		}
	}
}
