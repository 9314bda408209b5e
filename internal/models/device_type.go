package models

// DeviceType tags a device with its kind. The environment model keys its
// feedback effects off this tag.
type DeviceType string

const (
	TypeThermostat     DeviceType = "THERMOSTAT"
	TypeLight          DeviceType = "LIGHT"
	TypeSecuritySystem DeviceType = "SECURITY_SYSTEM"
	TypeDoor           DeviceType = "DOOR"
	TypeWindow         DeviceType = "WINDOW"
	TypeAirConditioner DeviceType = "AIR_CONDITIONER"
	TypeTelevision     DeviceType = "TELEVISION"
	TypeCoffeeMachine  DeviceType = "COFFEE_MACHINE"
	TypeRefrigerator   DeviceType = "REFRIGERATOR"
	TypeWashingMachine DeviceType = "WASHING_MACHINE"
	TypeSpeaker        DeviceType = "SPEAKER"
)
