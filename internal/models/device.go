package models

// Device is the capability set every simulated device implements. Behavior
// is entirely mediated by one owned FSM instance plus variant-specific
// derived fields; variants are independent types, not a hierarchy.
type Device interface {
	ID() string
	Name() string
	Type() DeviceType

	// ProcessEvent delegates to the owned FSM and then recomputes derived
	// fields (on/off flag, energy reading). It reports whether a state
	// change occurred; false means the event was a no-op, not a failure.
	ProcessEvent(event DeviceEvent) bool

	CurrentState() DeviceState
	IsOn() bool

	// EnergyConsumption is the last computed instantaneous reading in kWh.
	// It is 0 whenever the device is off.
	EnergyConsumption() float64

	// StatusReport renders a deterministic multi-line summary of the device.
	StatusReport() string
}
