package config

const (
	FloorBottom          = 1
	DefaultFloorCount    = 52
	DefaultElevatorCount = 10
	NoTimestamp          = -1 // returned with ok=false when no stimulus is pending
	CallsPerRow          = 10
	DefaultLogLevel      = "info"
)
