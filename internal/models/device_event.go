package models

// DeviceEvent is a trigger a device FSM can react to. Events carry no
// payload; parameterized effects (a new target temperature, a brightness
// level) are applied by the caller independently of event dispatch.
type DeviceEvent string

const (
	EventPowerOn             DeviceEvent = "POWER_ON"
	EventPowerOff            DeviceEvent = "POWER_OFF"
	EventEnterStandby        DeviceEvent = "ENTER_STANDBY"
	EventExitStandby         DeviceEvent = "EXIT_STANDBY"
	EventErrorDetected       DeviceEvent = "ERROR_DETECTED"
	EventErrorResolved       DeviceEvent = "ERROR_RESOLVED"
	EventStartMaintenance    DeviceEvent = "START_MAINTENANCE"
	EventEndMaintenance      DeviceEvent = "END_MAINTENANCE"
	EventEnterLowPower       DeviceEvent = "ENTER_LOW_POWER"
	EventExitLowPower        DeviceEvent = "EXIT_LOW_POWER"
	EventActivate            DeviceEvent = "ACTIVATE"
	EventDeactivate          DeviceEvent = "DEACTIVATE"
	EventLock                DeviceEvent = "LOCK"
	EventUnlock              DeviceEvent = "UNLOCK"
	EventUserInteraction     DeviceEvent = "USER_INTERACTION"
	EventScheduled           DeviceEvent = "SCHEDULED_EVENT"
	EventTemperatureChange   DeviceEvent = "TEMPERATURE_CHANGE"
	EventMotionDetected      DeviceEvent = "MOTION_DETECTED"
	EventDoorOpen            DeviceEvent = "DOOR_OPEN"
	EventDoorClose           DeviceEvent = "DOOR_CLOSE"
	EventNetworkConnected    DeviceEvent = "NETWORK_CONNECTED"
	EventNetworkDisconnected DeviceEvent = "NETWORK_DISCONNECTED"
)
