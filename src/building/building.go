// Package building wires a control system for a configured building:
// elevators first, then one call button per floor named FCB-<floor>.
package building

import (
	"fmt"
	"log/slog"

	"elevsim/src/config"
	"elevsim/src/dispatcher"
	"elevsim/src/utils"
)

func New(b config.Building) (*dispatcher.ControlSystem, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	cs := dispatcher.New(b.Floors)

	for i := 0; i < b.Elevators; i++ {
		cs.RegisterElevator()
	}
	utils.ForEachFloor(cs.FloorBottom(), cs.FloorTop(), func(floor int) {
		cs.RegisterFloorCallButton(ButtonID(floor), floor)
	})

	slog.Info("Building constructed", "floors", b.Floors, "elevators", b.Elevators)
	return cs, nil
}

func ButtonID(floor int) string {
	return fmt.Sprintf("FCB-%d", floor)
}
