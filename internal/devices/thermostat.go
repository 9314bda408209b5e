package devices

import (
	"fmt"
	"math"

	"smarthome_simulator/internal/models"
)

// ThermostatMode is the thermostat's operating mode.
type ThermostatMode string

const (
	ModeHeat    ThermostatMode = "HEAT"
	ModeCool    ThermostatMode = "COOL"
	ModeAuto    ThermostatMode = "AUTO"
	ModeFanOnly ThermostatMode = "FAN_ONLY"
	ModeOff     ThermostatMode = "OFF"
)

const (
	defaultTemperatureC = 22.0
	ambientTemperatureC = 20.0

	// standbyConsumption is the baseline any powered thermostat draws.
	standbyConsumption = 0.1

	// maxTempStepC bounds how far the temperature moves per adjustment.
	maxTempStepC = 0.5
)

// Thermostat controls heating and cooling. Power is driven through SetMode:
// switching to a non-OFF mode while off raises POWER_ON, switching to OFF
// while on raises POWER_OFF. The startup path goes OFF -> STARTING -> ON and
// entering ON through it forces the mode to AUTO.
type Thermostat struct {
	base

	targetTemperature  float64
	currentTemperature float64
	mode               ThermostatMode
}

var _ models.Device = (*Thermostat)(nil)

// NewThermostat creates a thermostat in the OFF state at the default
// temperature.
func NewThermostat(id, name string) *Thermostat {
	t := &Thermostat{
		base:               newBase(id, name, models.TypeThermostat),
		targetTemperature:  defaultTemperatureC,
		currentTemperature: defaultTemperatureC,
		mode:               ModeOff,
	}
	t.wireFSM()
	return t
}

func (t *Thermostat) wireFSM() {
	t.fsm.AddTransition(models.StateOff, models.EventPowerOn, models.StateStarting).
		AddTransition(models.StateStarting, models.EventActivate, models.StateOn).
		AddTransition(models.StateOn, models.EventPowerOff, models.StateStopping).
		AddTransition(models.StateStopping, models.EventDeactivate, models.StateOff).
		AddTransition(models.StateOn, models.EventEnterStandby, models.StateStandby).
		AddTransition(models.StateStandby, models.EventExitStandby, models.StateOn).
		AddTransition(models.StateOn, models.EventErrorDetected, models.StateError).
		AddTransition(models.StateError, models.EventErrorResolved, models.StateOn).
		AddTransition(models.StateOn, models.EventEnterLowPower, models.StateLowPower).
		AddTransition(models.StateLowPower, models.EventExitLowPower, models.StateOn)

	t.fsm.AddStateChangeListener(func(oldState, newState models.DeviceState, event models.DeviceEvent) {
		t.log.Debugw("thermostat state changed",
			"name", t.name, "from", oldState, "to", newState, "event", event)

		if newState == models.StateOff {
			t.SetMode(ModeOff)
		} else if newState == models.StateOn && oldState == models.StateStarting {
			// Normal startup defaults the thermostat to automatic mode.
			t.SetMode(ModeAuto)
		}
	})
}

// ProcessEvent feeds the event to the FSM and recomputes derived fields.
func (t *Thermostat) ProcessEvent(event models.DeviceEvent) bool {
	changed := t.fsm.ProcessEvent(event)
	t.update()
	return changed
}

// update refreshes the on/off flag and energy reading, then simulates one
// step of temperature control while the thermostat is actively running.
func (t *Thermostat) update() {
	t.refreshPower()
	t.energyConsumption = t.CalculateEnergyConsumption()

	if t.isOn && t.mode != ModeOff {
		t.adjustTemperature()
	}
}

// adjustTemperature moves the current temperature according to the mode.
// HEAT and COOL close the gap by at most maxTempStepC; AUTO steps a flat
// maxTempStepC toward the target when the gap exceeds the step, so it can
// overshoot; OFF drifts 10% of the way toward ambient.
func (t *Thermostat) adjustTemperature() {
	diff := t.targetTemperature - t.currentTemperature

	switch t.mode {
	case ModeHeat:
		if diff > 0 {
			t.currentTemperature += math.Min(maxTempStepC, diff)
		}
	case ModeCool:
		if diff < 0 {
			t.currentTemperature += math.Max(-maxTempStepC, diff)
		}
	case ModeAuto:
		if math.Abs(diff) > maxTempStepC {
			t.currentTemperature += math.Copysign(maxTempStepC, diff)
		}
	case ModeFanOnly:
		// Air circulation only.
	case ModeOff:
		t.currentTemperature += (ambientTemperatureC - t.currentTemperature) * 0.1
	}
}

// CalculateEnergyConsumption returns the instantaneous draw in kWh for the
// current state, mode and temperature gap. An off thermostat draws nothing.
func (t *Thermostat) CalculateEnergyConsumption() float64 {
	if !t.isOn {
		return 0
	}

	switch t.mode {
	case ModeHeat:
		return standbyConsumption + math.Max(0, t.targetTemperature-t.currentTemperature)*0.2
	case ModeCool:
		return standbyConsumption + math.Max(0, t.currentTemperature-t.targetTemperature)*0.3
	case ModeAuto:
		diff := math.Abs(t.targetTemperature - t.currentTemperature)
		if diff > maxTempStepC {
			return standbyConsumption + diff*0.25
		}
		return standbyConsumption
	case ModeFanOnly:
		return standbyConsumption + 0.1
	default:
		return 0
	}
}

// SetTargetTemperature stores the new target. When the thermostat is on it
// raises TEMPERATURE_CHANGE as a hook point; no transition is registered for
// it anywhere, so the event is a defined no-op today.
func (t *Thermostat) SetTargetTemperature(temperature float64) {
	t.targetTemperature = temperature

	if t.isOn {
		t.ProcessEvent(models.EventTemperatureChange)
	}
}

// SetMode switches the operating mode. This is the only external path that
// powers the thermostat on or off.
func (t *Thermostat) SetMode(mode ThermostatMode) {
	if t.mode == mode {
		return
	}
	t.mode = mode

	if mode == ModeOff {
		if t.isOn {
			t.ProcessEvent(models.EventPowerOff)
		}
	} else {
		if !t.isOn {
			t.ProcessEvent(models.EventPowerOn)
		}
	}
}

func (t *Thermostat) TargetTemperature() float64 { return t.targetTemperature }

func (t *Thermostat) CurrentTemperature() float64 { return t.currentTemperature }

func (t *Thermostat) Mode() ThermostatMode { return t.mode }

// StatusReport renders the common summary plus the thermostat fields.
func (t *Thermostat) StatusReport() string {
	return fmt.Sprintf(
		"%s\nMode: %s\nCurrent Temperature: %.1f°C\nTarget Temperature: %.1f°C",
		t.statusHeader(), t.mode, t.currentTemperature, t.targetTemperature,
	)
}
