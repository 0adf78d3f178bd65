package types

type Direction int

const (
	DirDown Direction = -1
	DirIdle Direction = 0
	DirUp   Direction = 1
)

// Status is the one-letter form used in status reports.
func (d Direction) Status() string {
	switch d {
	case DirDown:
		return "D"
	case DirUp:
		return "U"
	default:
		return "I"
	}
}

func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	default:
		return "idle"
	}
}

type Attribute int

const (
	AttrScheduled Attribute = iota
	AttrEnabled
	AttrCallUp
	AttrCallDown
)

func (a Attribute) String() string {
	return [...]string{"scheduled", "enabled", "up", "down"}[a]
}

// Change is emitted by a device when one of its flags actually flips.
type Change struct {
	DeviceID  string
	Attribute Attribute
	Floor     int
	Value     bool
}

// Listener receives device changes synchronously, in the order they happen.
type Listener func(Change)
