package models

// DeviceState is one of the finite set of states a device can be in.
// The common states live here; a device wires only the subset it uses.
type DeviceState string

const (
	StateOff         DeviceState = "OFF"
	StateOn          DeviceState = "ON"
	StateStandby     DeviceState = "STANDBY"
	StateError       DeviceState = "ERROR"
	StateMaintenance DeviceState = "MAINTENANCE"
	StateLowPower    DeviceState = "LOW_POWER"
	StateStarting    DeviceState = "STARTING"
	StateStopping    DeviceState = "STOPPING"
	StateActive      DeviceState = "ACTIVE"
	StateSuspended   DeviceState = "SUSPENDED"
	StateLocked      DeviceState = "LOCKED"
)
