package elev

import (
	"log/slog"

	"elevsim/src/types"
)

// FloorCallButton is the up/down call panel on one floor.
type FloorCallButton struct {
	notifier
	id     string
	floor  int
	bottom int
	top    int
	up     bool
	down   bool
}

func NewFloorCallButton(id string, floor, bottom, top int) *FloorCallButton {
	return &FloorCallButton{id: id, floor: floor, bottom: bottom, top: top}
}

func (b *FloorCallButton) ID() string   { return b.id }
func (b *FloorCallButton) Floor() int   { return b.floor }
func (b *FloorCallButton) IsUp() bool   { return b.up }
func (b *FloorCallButton) IsDown() bool { return b.down }

// ReceiveTrigger responds only to ButtonDown and ButtonUp.
func (b *FloorCallButton) ReceiveTrigger(stimulus types.Stimulus) {
	slog.Debug("Trigger", "device", b.id, "stimulus", stimulus)
	switch stimulus.Kind {
	case types.ButtonDown:
		b.SetDown(true)
	case types.ButtonUp:
		b.SetUp(true)
	}
}

// SetDown sets the down indicator. Down requests on the bottom floor are dropped.
func (b *FloorCallButton) SetDown(down bool) {
	if down && b.floor <= b.bottom {
		return
	}
	if b.down != down {
		b.down = down
		b.notify(types.Change{DeviceID: b.id, Attribute: types.AttrCallDown, Floor: b.floor, Value: down})
	}
}

// SetUp sets the up indicator. Up requests on the top floor are dropped.
func (b *FloorCallButton) SetUp(up bool) {
	if up && b.floor >= b.top {
		return
	}
	if b.up != up {
		b.up = up
		b.notify(types.Change{DeviceID: b.id, Attribute: types.AttrCallUp, Floor: b.floor, Value: up})
	}
}
