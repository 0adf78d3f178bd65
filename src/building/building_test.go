package building

import (
	"testing"

	"elevsim/src/config"
)

func TestNewDefaultBuilding(t *testing.T) {
	cs, err := New(config.Default())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := len(cs.Elevators()); got != config.DefaultElevatorCount {
		t.Errorf("Expected %d elevators, got %d", config.DefaultElevatorCount, got)
	}
	if got := len(cs.FloorCallButtons()); got != config.DefaultFloorCount {
		t.Errorf("Expected %d buttons, got %d", config.DefaultFloorCount, got)
	}
	for _, id := range []string{"E-0", "E-9", "FCB-1", "FCB-52"} {
		if _, ok := cs.Device(id); !ok {
			t.Errorf("Expected device %s to be registered", id)
		}
	}
	if _, ok := cs.Device("FCB-53"); ok {
		t.Errorf("Expected no button above the top floor")
	}
}

func TestNewButtonsInFloorOrder(t *testing.T) {
	cs, err := New(config.Building{Floors: 4, Elevators: 1})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for i, b := range cs.FloorCallButtons() {
		if b.Floor() != i+1 || b.ID() != ButtonID(i+1) {
			t.Errorf("Button %d: got %s on floor %d", i, b.ID(), b.Floor())
		}
	}
}

func TestNewRejectsInvalidBuilding(t *testing.T) {
	if _, err := New(config.Building{Floors: 1, Elevators: 1}); err == nil {
		t.Errorf("Expected error for a single-floor building")
	}
}
