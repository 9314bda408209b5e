package devices

import (
	"errors"
	"fmt"

	"smarthome_simulator/internal/models"
)

// Validation errors returned by the Light setters. The scenario keeps
// running after any of them; no device state is mutated on failure.
var (
	ErrNotDimmable       = errors.New("light is not dimmable")
	ErrBrightnessRange   = errors.New("brightness must be between 0 and 100")
	ErrColorNotSupported = errors.New("light does not support color change")
)

const (
	defaultBrightness = 80

	// maxLightConsumption is the draw in kWh at full brightness.
	maxLightConsumption = 0.06

	// lowPowerBrightnessCap is the brightness ceiling while in LOW_POWER.
	lowPowerBrightnessCap = 30
)

// Light models a lighting fixture with optional dimming and color support.
// Its table is simpler than the thermostat's: power toggles directly between
// OFF and ON with no STARTING/STOPPING phase.
type Light struct {
	base

	brightness      int
	color           models.Color
	dimmable        bool
	colorChangeable bool
}

var _ models.Device = (*Light)(nil)

// NewLight creates a fixed white light: not dimmable, color locked.
func NewLight(id, name string) *Light {
	return NewConfigurableLight(id, name, false, false)
}

// NewConfigurableLight creates a light with the given capability flags.
func NewConfigurableLight(id, name string, dimmable, colorChangeable bool) *Light {
	l := &Light{
		base:            newBase(id, name, models.TypeLight),
		brightness:      defaultBrightness,
		color:           models.ColorWhite,
		dimmable:        dimmable,
		colorChangeable: colorChangeable,
	}
	l.wireFSM()
	return l
}

func (l *Light) wireFSM() {
	l.fsm.AddTransition(models.StateOff, models.EventPowerOn, models.StateOn).
		AddTransition(models.StateOn, models.EventPowerOff, models.StateOff).
		AddTransition(models.StateOn, models.EventEnterLowPower, models.StateLowPower).
		AddTransition(models.StateLowPower, models.EventExitLowPower, models.StateOn).
		AddTransition(models.StateOn, models.EventErrorDetected, models.StateError).
		AddTransition(models.StateError, models.EventErrorResolved, models.StateOn)

	l.fsm.AddStateChangeListener(func(oldState, newState models.DeviceState, event models.DeviceEvent) {
		l.log.Debugw("light state changed",
			"name", l.name, "from", oldState, "to", newState, "event", event)

		if newState == models.StateLowPower {
			// Entering low power caps the brightness.
			capped := l.brightness
			if capped > lowPowerBrightnessCap {
				capped = lowPowerBrightnessCap
			}
			if err := l.SetBrightness(capped); err != nil {
				l.log.Warnw("could not cap brightness in low power mode",
					"name", l.name, "brightness", capped, "err", err)
			}
		}
	})
}

// ProcessEvent feeds the event to the FSM and recomputes derived fields.
func (l *Light) ProcessEvent(event models.DeviceEvent) bool {
	changed := l.fsm.ProcessEvent(event)
	l.update()
	return changed
}

func (l *Light) update() {
	l.refreshPower()
	l.energyConsumption = l.CalculateEnergyConsumption()
}

// CalculateEnergyConsumption scales the maximum draw by brightness, halved
// while in LOW_POWER. An off light draws nothing.
func (l *Light) CalculateEnergyConsumption() float64 {
	if !l.isOn {
		return 0
	}

	ratio := float64(l.brightness) / 100.0
	if l.fsm.CurrentState() == models.StateLowPower {
		return maxLightConsumption * ratio * 0.5
	}
	return maxLightConsumption * ratio
}

// SetBrightness stores the level and raises the matching power event.
// A non-dimmable light only accepts 0 and 100. The side-effect policy is
// evaluated in order and at most one branch fires per call:
// 0 while on powers off; >0 while off powers on; <30 while on enters
// LOW_POWER; >=30 while in LOW_POWER exits it.
func (l *Light) SetBrightness(brightness int) error {
	if !l.dimmable && brightness != 0 && brightness != 100 {
		return ErrNotDimmable
	}
	if brightness < 0 || brightness > 100 {
		return ErrBrightnessRange
	}

	l.brightness = brightness

	switch {
	case brightness == 0 && l.isOn:
		l.ProcessEvent(models.EventPowerOff)
	case brightness > 0 && !l.isOn:
		l.ProcessEvent(models.EventPowerOn)
	case brightness < lowPowerBrightnessCap && l.isOn && l.fsm.CurrentState() != models.StateLowPower:
		l.ProcessEvent(models.EventEnterLowPower)
	case brightness >= lowPowerBrightnessCap && l.fsm.CurrentState() == models.StateLowPower:
		l.ProcessEvent(models.EventExitLowPower)
	}
	return nil
}

// SetColor stores the color. The FSM is not involved.
func (l *Light) SetColor(color models.Color) error {
	if !l.colorChangeable {
		return ErrColorNotSupported
	}
	l.color = color
	return nil
}

// TurnOn powers the light on if it is off.
func (l *Light) TurnOn() {
	if !l.isOn {
		l.ProcessEvent(models.EventPowerOn)
	}
}

// TurnOff powers the light off if it is on.
func (l *Light) TurnOff() {
	if l.isOn {
		l.ProcessEvent(models.EventPowerOff)
	}
}

func (l *Light) Brightness() int { return l.brightness }

func (l *Light) Color() models.Color { return l.color }

func (l *Light) IsDimmable() bool { return l.dimmable }

func (l *Light) IsColorChangeable() bool { return l.colorChangeable }

// StatusReport renders the common summary plus the light fields.
func (l *Light) StatusReport() string {
	features := ""
	if l.dimmable {
		features += "Dimmable "
	}
	if l.colorChangeable {
		features += "ColorChangeable"
	}
	return fmt.Sprintf(
		"%s\nBrightness: %d%%\nColor: %s\nFeatures: %s",
		l.statusHeader(), l.brightness, l.color.Hex(), features,
	)
}
