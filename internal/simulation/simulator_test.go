package simulation

import (
	"context"
	"testing"
	"time"

	"smarthome_simulator/internal/devices"
	"smarthome_simulator/internal/models"
)

// fakeEnvironment is a minimal clock plus call recorder.
type fakeEnvironment struct {
	now         time.Time
	updatedFrom []string
	data        map[string]any
}

func newFakeEnvironment(start time.Time) *fakeEnvironment {
	return &fakeEnvironment{now: start, data: make(map[string]any)}
}

func (f *fakeEnvironment) CurrentTime() time.Time { return f.now }

func (f *fakeEnvironment) AdvanceTime(minutes int) {
	f.now = f.now.Add(time.Duration(minutes) * time.Minute)
}

func (f *fakeEnvironment) UpdateFromDevice(device models.Device) {
	f.updatedFrom = append(f.updatedFrom, device.ID())
}

func (f *fakeEnvironment) SetEnvironmentalData(key string, value any) {
	f.data[key] = value
}

func countType(events []RunEvent, typ string) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func TestSimulator_DispatchesDueEventsInTimeOrder(t *testing.T) {
	light := devices.NewConfigurableLight("L1", "Kitchen Light", true, false)
	thermostat := devices.NewThermostat("T1", "Main Thermostat")

	scenario := NewScenario("morning", "wake up").
		AddDevice(light).
		AddDevice(thermostat).
		ScheduleEvent(At(6, 0), "L1", models.EventPowerOn).
		ScheduleEvent(At(6, 1), "T1", models.EventPowerOn).
		ScheduleEvent(At(6, 2), "T1", models.EventActivate)

	env := newFakeEnvironment(At(5, 59))
	sim := NewSimulator(env, 1, 0)

	runLog, err := sim.Run(context.Background(), scenario, 5)
	if err != nil {
		t.Fatalf("Run err = %v", err)
	}

	if light.CurrentState() != models.StateOn {
		t.Fatalf("light state = %s, want ON", light.CurrentState())
	}
	if thermostat.CurrentState() != models.StateOn {
		t.Fatalf("thermostat state = %s, want ON", thermostat.CurrentState())
	}
	if thermostat.Mode() != devices.ModeAuto {
		t.Fatalf("thermostat mode = %s, want AUTO via startup path", thermostat.Mode())
	}

	events := runLog.Events()
	if got := countType(events, RunEventDispatch); got != 3 {
		t.Fatalf("journal has %d DISPATCH entries, want 3", got)
	}

	// Observables were fed back for every dispatched device.
	if len(env.updatedFrom) != 3 {
		t.Fatalf("environment updated %d times, want 3", len(env.updatedFrom))
	}
	if env.updatedFrom[0] != "L1" {
		t.Fatalf("first environment update from %s, want L1", env.updatedFrom[0])
	}

	// The thermostat's keyed setting was propagated.
	if got, ok := env.data["targetTemperature"].(float64); !ok || got != 22.0 {
		t.Fatalf("targetTemperature = %v, want 22.0", env.data["targetTemperature"])
	}
}

func TestSimulator_UnknownDeviceIsReportedNotFatal(t *testing.T) {
	light := devices.NewConfigurableLight("L1", "Kitchen Light", true, false)

	scenario := NewScenario("ghosts", "").
		AddDevice(light).
		ScheduleEvent(At(6, 0), "ghost", models.EventPowerOn).
		ScheduleEvent(At(6, 1), "L1", models.EventPowerOn)

	env := newFakeEnvironment(At(5, 59))
	sim := NewSimulator(env, 1, 0)

	runLog, err := sim.Run(context.Background(), scenario, 3)
	if err != nil {
		t.Fatalf("Run err = %v", err)
	}

	// The loop continued past the unknown id and reached the light.
	if light.CurrentState() != models.StateOn {
		t.Fatalf("light state = %s, want ON despite earlier unknown device", light.CurrentState())
	}

	events := runLog.Events()
	if got := countType(events, RunEventDeviceMissing); got != 1 {
		t.Fatalf("journal has %d DEVICE_MISSING entries, want 1", got)
	}
	if got := countType(events, RunEventDispatch); got != 1 {
		t.Fatalf("journal has %d DISPATCH entries, want 1", got)
	}
}

func TestSimulator_NoOpEventsJournaledAsNoTransition(t *testing.T) {
	light := devices.NewConfigurableLight("L1", "Kitchen Light", true, false)

	// POWER_OFF while already off has no registered transition.
	scenario := NewScenario("noop", "").
		AddDevice(light).
		ScheduleEvent(At(6, 0), "L1", models.EventPowerOff)

	env := newFakeEnvironment(At(5, 59))
	sim := NewSimulator(env, 1, 0)

	runLog, err := sim.Run(context.Background(), scenario, 2)
	if err != nil {
		t.Fatalf("Run err = %v", err)
	}

	if light.CurrentState() != models.StateOff {
		t.Fatalf("light state = %s, want OFF unchanged", light.CurrentState())
	}
	if got := countType(runLog.Events(), RunEventNoTransition); got != 1 {
		t.Fatalf("journal has %d NO_TRANSITION entries, want 1", got)
	}
}

func TestSimulator_SameMinuteQueriedOncePerRun(t *testing.T) {
	light := devices.NewConfigurableLight("L1", "Kitchen Light", true, false)

	scenario := NewScenario("toggle", "").
		AddDevice(light).
		ScheduleEvent(At(6, 0), "L1", models.EventPowerOn)

	env := newFakeEnvironment(At(5, 59))
	sim := NewSimulator(env, 1, 0)

	runLog, err := sim.Run(context.Background(), scenario, 10)
	if err != nil {
		t.Fatalf("Run err = %v", err)
	}

	// The cursor passes 06:00 exactly once, so the entry dispatches once.
	if got := len(runLog.Events()); got != 1 {
		t.Fatalf("journal has %d entries, want 1", got)
	}
}

func TestSimulator_CancellationStopsBetweenSteps(t *testing.T) {
	light := devices.NewConfigurableLight("L1", "Kitchen Light", true, false)
	scenario := NewScenario("canceled", "").
		AddDevice(light).
		ScheduleEvent(At(6, 0), "L1", models.EventPowerOn)

	env := newFakeEnvironment(At(5, 59))
	sim := NewSimulator(env, 1, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Run(ctx, scenario, 10)
	if err == nil {
		t.Fatalf("expected ctx.Err() from a canceled run")
	}
	if light.CurrentState() != models.StateOff {
		t.Fatalf("light state = %s, want OFF: no step should have run", light.CurrentState())
	}
}
