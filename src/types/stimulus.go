package types

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type StimulusKind int

// Declaration order is the tie-break order for stimuli with equal timestamps.
const (
	ButtonDown StimulusKind = iota
	ButtonUp
	GoToFloor
	Nop
)

var stimulusKindNames = [...]string{
	ButtonDown: "ButtonDown",
	ButtonUp:   "ButtonUp",
	GoToFloor:  "GoToFloor",
	Nop:        "Nop",
}

func (k StimulusKind) String() string {
	if k < ButtonDown || k > Nop {
		return fmt.Sprintf("StimulusKind(%d)", int(k))
	}
	return stimulusKindNames[k]
}

// ParseStimulusKind returns Nop for names it does not know.
func ParseStimulusKind(name string) StimulusKind {
	for kind, kindName := range stimulusKindNames {
		if kindName == name {
			return StimulusKind(kind)
		}
	}
	return Nop
}

// Stimulus is a simulation event addressed to one device. Timestamp is a
// logical counter used only for ordering; Floor matters only for GoToFloor.
type Stimulus struct {
	Timestamp int
	DeviceID  string
	Kind      StimulusKind
	Floor     int
}

var (
	ErrFieldCount      = errors.New("stimulus line must have 4 fields")
	ErrMissingDeviceID = errors.New("stimulus device id missing")
)

// ParseStimulus converts one event-file line of the form
//
//	time  device  kind  floor
//
// Integers that do not decode become 0 and unknown kinds become Nop. Only a
// wrong field count or an empty device id is an error.
func ParseStimulus(line string) (Stimulus, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Stimulus{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}
	if fields[1] == "" {
		return Stimulus{}, ErrMissingDeviceID
	}
	return Stimulus{
		Timestamp: decodeInt(fields[0]),
		DeviceID:  fields[1],
		Kind:      ParseStimulusKind(fields[2]),
		Floor:     decodeInt(fields[3]),
	}, nil
}

// decodeInt accepts Go integer literal prefixes (0x, 0o, 0b, leading 0).
func decodeInt(field string) int {
	n, err := strconv.ParseInt(field, 0, 32)
	if err != nil {
		return 0
	}
	return int(n)
}

// Compare orders by timestamp, then by kind declaration order.
func Compare(a, b Stimulus) int {
	if c := cmp.Compare(a.Timestamp, b.Timestamp); c != 0 {
		return c
	}
	return cmp.Compare(a.Kind, b.Kind)
}

// Equal reports whether s and other share timestamp and kind. Device and
// floor are deliberately not compared.
func (s Stimulus) Equal(other Stimulus) bool {
	return s.Timestamp == other.Timestamp && s.Kind == other.Kind
}

func (s Stimulus) String() string {
	return fmt.Sprintf("t %d, id %s, t %s, f %d", s.Timestamp, s.DeviceID, s.Kind, s.Floor)
}
