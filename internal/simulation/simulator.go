package simulation

import (
	"context"
	"fmt"
	"time"

	"smarthome_simulator/internal/logger"
	"smarthome_simulator/internal/models"
)

// Environment is the collaborator the simulator drives time through and
// feeds device observables back into. It has no callback into the core.
type Environment interface {
	CurrentTime() time.Time
	AdvanceTime(minutes int)
	UpdateFromDevice(device models.Device)
	SetEnvironmentalData(key string, value any)
}

// targetTemperatureProvider is satisfied by thermostats; the simulator uses
// it to push the keyed target-temperature setting into the environment.
type targetTemperatureProvider interface {
	TargetTemperature() float64
}

// Simulator replays one scenario against an environment: it advances the
// clock in fixed steps, dispatches due scheduled events to their devices and
// propagates the resulting observables. Single-threaded by construction;
// cancellation is cooperative between steps.
type Simulator struct {
	env   Environment
	log   *logger.Logger
	speed int           // simulated minutes per step
	tick  time.Duration // real-time pacing per step, 0 runs flat out
}

// NewSimulator creates a simulator. Speeds below 1 are treated as 1.
func NewSimulator(env Environment, speed int, tick time.Duration) *Simulator {
	if speed < 1 {
		speed = 1
	}
	return &Simulator{
		env:   env,
		log:   logger.Get(logger.InfoLevel),
		speed: speed,
		tick:  tick,
	}
}

// Run drives the scenario for durationMinutes of simulated time and returns
// the run journal. Unresolvable device ids are reported and skipped; the
// only early exit is context cancellation, returned as ctx.Err().
func (s *Simulator) Run(ctx context.Context, scenario *Scenario, durationMinutes int) (*RunLog, error) {
	runLog := &RunLog{}
	end := s.env.CurrentTime().Add(time.Duration(durationMinutes) * time.Minute)

	s.log.Infow("simulation started",
		"scenario", scenario.Name(), "duration_min", durationMinutes, "speed", s.speed)

	for s.env.CurrentTime().Before(end) {
		select {
		case <-ctx.Done():
			s.log.Infow("simulation canceled", "scenario", scenario.Name())
			return runLog, ctx.Err()
		default:
		}

		s.env.AdvanceTime(s.speed)
		now := s.env.CurrentTime()

		for _, due := range scenario.EventsAt(now) {
			s.dispatch(now, scenario, due, runLog)
		}

		if s.tick > 0 {
			time.Sleep(s.tick)
		}
	}

	s.log.Infow("simulation completed", "scenario", scenario.Name(), "events", len(runLog.Events()))
	return runLog, nil
}

// dispatch resolves the target device, delivers the event and feeds the
// device's new observable state back into the environment.
func (s *Simulator) dispatch(now time.Time, scenario *Scenario, due ScheduledEvent, runLog *RunLog) {
	device, err := scenario.DeviceByID(due.DeviceID)
	if err != nil {
		s.log.Warnw("scheduled event for unknown device",
			"device_id", due.DeviceID, "event", due.Event, "at", now.Format("15:04"))
		runLog.Append(RunEvent{
			OccurredAt:  now,
			Type:        RunEventDeviceMissing,
			DeviceID:    due.DeviceID,
			Description: fmt.Sprintf("no device %s for event %s", due.DeviceID, due.Event),
		})
		return
	}

	changed := device.ProcessEvent(due.Event)

	entryType := RunEventDispatch
	if !changed {
		entryType = RunEventNoTransition
	}
	runLog.Append(RunEvent{
		OccurredAt:  now,
		Type:        entryType,
		DeviceID:    device.ID(),
		Description: fmt.Sprintf("%s processed %s -> %s", device.Name(), due.Event, device.CurrentState()),
	})
	s.log.Infow("event dispatched",
		"at", now.Format("15:04"), "device", device.Name(),
		"event", due.Event, "state", device.CurrentState(), "changed", changed)

	if t, ok := device.(targetTemperatureProvider); ok {
		s.env.SetEnvironmentalData("targetTemperature", t.TargetTemperature())
	}
	s.env.UpdateFromDevice(device)
}
