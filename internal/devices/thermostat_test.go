package devices

import (
	"math"
	"testing"

	"smarthome_simulator/internal/models"
)

func assertFloat(t *testing.T, label string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
}

// poweredThermostat returns a thermostat driven through the normal startup
// path, which lands it in ON with mode AUTO.
func poweredThermostat(t *testing.T) *Thermostat {
	t.Helper()
	th := NewThermostat("T1", "Main Thermostat")
	th.ProcessEvent(models.EventPowerOn)
	th.ProcessEvent(models.EventActivate)
	if th.CurrentState() != models.StateOn {
		t.Fatalf("setup: state = %s, want ON", th.CurrentState())
	}
	return th
}

func TestThermostat_StartupPathDefaultsToAuto(t *testing.T) {
	th := NewThermostat("T1", "Main Thermostat")

	if !th.ProcessEvent(models.EventPowerOn) {
		t.Fatalf("POWER_ON from OFF should transition")
	}
	if th.CurrentState() != models.StateStarting {
		t.Fatalf("state = %s, want STARTING", th.CurrentState())
	}

	if !th.ProcessEvent(models.EventActivate) {
		t.Fatalf("ACTIVATE from STARTING should transition")
	}
	if th.CurrentState() != models.StateOn {
		t.Fatalf("state = %s, want ON", th.CurrentState())
	}
	if th.Mode() != ModeAuto {
		t.Fatalf("mode = %s, want AUTO after STARTING->ON", th.Mode())
	}
	if !th.IsOn() {
		t.Fatalf("thermostat should report on in state ON")
	}
}

func TestThermostat_AutoNotForcedOnOtherEdgesIntoOn(t *testing.T) {
	th := poweredThermostat(t)
	th.SetMode(ModeHeat)

	// ON -> STANDBY -> ON re-enters ON without the startup edge.
	th.ProcessEvent(models.EventEnterStandby)
	th.ProcessEvent(models.EventExitStandby)

	if th.Mode() != ModeHeat {
		t.Fatalf("mode = %s, want HEAT preserved across standby round trip", th.Mode())
	}
}

func TestThermostat_OffConsumesNothing(t *testing.T) {
	th := NewThermostat("T1", "Main Thermostat")
	th.SetTargetTemperature(35) // stored, but no event raised while off

	if th.TargetTemperature() != 35 {
		t.Fatalf("target = %v, want 35", th.TargetTemperature())
	}
	if th.CurrentState() != models.StateOff {
		t.Fatalf("state = %s, want OFF untouched", th.CurrentState())
	}
	assertFloat(t, "energy", th.CalculateEnergyConsumption(), 0)
}

func TestThermostat_AutoWithinHalfDegreeIsBaselineOnly(t *testing.T) {
	th := poweredThermostat(t)

	// Gap of 0.4 is inside the dead band: baseline only, no movement.
	before := th.CurrentTemperature()
	th.SetTargetTemperature(before + 0.4)

	assertFloat(t, "energy", th.EnergyConsumption(), 0.1)
	assertFloat(t, "current temperature", th.CurrentTemperature(), before)
}

func TestThermostat_AutoStepsHalfDegreeWhenGapExceedsDeadBand(t *testing.T) {
	th := poweredThermostat(t)

	before := th.CurrentTemperature()
	th.SetTargetTemperature(before + 0.8)

	// Energy is computed from the gap before the step.
	assertFloat(t, "energy", th.EnergyConsumption(), 0.1+0.8*0.25)
	assertFloat(t, "current temperature", th.CurrentTemperature(), before+0.5)
}

func TestThermostat_HeatClosesGapByAtMostHalfDegree(t *testing.T) {
	th := poweredThermostat(t)
	th.SetMode(ModeHeat)
	th.SetTargetTemperature(25) // current is 22

	assertFloat(t, "energy", th.EnergyConsumption(), 0.1+3*0.2)
	assertFloat(t, "current temperature", th.CurrentTemperature(), 22.5)

	// Any processed event advances the simulation another step.
	th.ProcessEvent(models.EventScheduled)
	assertFloat(t, "current temperature", th.CurrentTemperature(), 23.0)
	assertFloat(t, "energy", th.EnergyConsumption(), 0.1+2.5*0.2)
}

func TestThermostat_CoolDrawsOnPositiveGapOnly(t *testing.T) {
	th := poweredThermostat(t)
	th.SetMode(ModeCool)
	th.SetTargetTemperature(20) // current is 22

	assertFloat(t, "energy", th.EnergyConsumption(), 0.1+2*0.3)
	assertFloat(t, "current temperature", th.CurrentTemperature(), 21.5)
}

func TestThermostat_FanOnlyFlatDraw(t *testing.T) {
	th := poweredThermostat(t)
	th.SetMode(ModeFanOnly)
	before := th.CurrentTemperature()

	th.ProcessEvent(models.EventScheduled) // no-op event, recomputes fields

	assertFloat(t, "energy", th.EnergyConsumption(), 0.2)
	assertFloat(t, "current temperature", th.CurrentTemperature(), before)
}

func TestThermostat_SetModeOffPowersDown(t *testing.T) {
	th := poweredThermostat(t)

	th.SetMode(ModeOff)
	if th.CurrentState() != models.StateStopping {
		t.Fatalf("state = %s, want STOPPING after mode OFF", th.CurrentState())
	}

	th.ProcessEvent(models.EventDeactivate)
	if th.CurrentState() != models.StateOff {
		t.Fatalf("state = %s, want OFF after DEACTIVATE", th.CurrentState())
	}
	if th.IsOn() {
		t.Fatalf("thermostat should report off in state OFF")
	}
	if th.Mode() != ModeOff {
		t.Fatalf("mode = %s, want OFF", th.Mode())
	}
	assertFloat(t, "energy", th.EnergyConsumption(), 0)
}

func TestThermostat_SetModePowersOnFromOff(t *testing.T) {
	th := NewThermostat("T1", "Main Thermostat")

	th.SetMode(ModeHeat)
	if th.CurrentState() != models.StateStarting {
		t.Fatalf("state = %s, want STARTING after switching mode while off", th.CurrentState())
	}

	// Completing startup still forces AUTO, overriding the requested HEAT.
	th.ProcessEvent(models.EventActivate)
	if th.Mode() != ModeAuto {
		t.Fatalf("mode = %s, want AUTO forced by the startup edge", th.Mode())
	}
}

func TestThermostat_TemperatureChangeEventIsNoOpHook(t *testing.T) {
	th := poweredThermostat(t)

	if th.ProcessEvent(models.EventTemperatureChange) {
		t.Fatalf("TEMPERATURE_CHANGE has no registered transition and must not change state")
	}
	if th.CurrentState() != models.StateOn {
		t.Fatalf("state = %s, want ON unchanged", th.CurrentState())
	}
}

func TestThermostat_ErrorRoundTrip(t *testing.T) {
	th := poweredThermostat(t)

	th.ProcessEvent(models.EventErrorDetected)
	if th.CurrentState() != models.StateError {
		t.Fatalf("state = %s, want ERROR", th.CurrentState())
	}
	if !th.IsOn() {
		t.Fatalf("ERROR is not OFF, the thermostat still reports on")
	}

	th.ProcessEvent(models.EventErrorResolved)
	if th.CurrentState() != models.StateOn {
		t.Fatalf("state = %s, want ON after resolution", th.CurrentState())
	}
}
