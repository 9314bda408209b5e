// Package simulation holds the scenario scheduler and the loop that drives
// time-stamped events into devices. A scenario is authored once (devices plus
// scheduled entries) and then replayed by the simulator against an
// environment collaborator.
package simulation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"smarthome_simulator/internal/models"
)

// ErrDeviceNotFound is returned when a scenario has no device with the
// requested id. The driving loop reports it and continues; it is never fatal.
var ErrDeviceNotFound = errors.New("device not found in scenario")

// ScheduledEvent is a (time-of-day, device id, event) triple. Matching uses
// hour and minute only; the seconds of both sides are ignored.
type ScheduledEvent struct {
	Time     time.Time
	DeviceID string
	Event    models.DeviceEvent
}

func (e ScheduledEvent) String() string {
	return fmt.Sprintf("%s - Device %s: %s", e.Time.Format("15:04"), e.DeviceID, e.Event)
}

// At builds a time-of-day for scheduling. The date part is a fixed reference
// day; only hour and minute take part in matching.
func At(hour, minute int) time.Time {
	return time.Date(2000, time.January, 1, hour, minute, 0, 0, time.UTC)
}

// Scenario is a named bundle of devices and scheduled events for one run.
// Devices iterate in insertion order; id uniqueness is the author's job.
type Scenario struct {
	name        string
	description string
	devices     []models.Device
	scheduled   []ScheduledEvent
}

// NewScenario creates an empty scenario.
func NewScenario(name, description string) *Scenario {
	return &Scenario{name: name, description: description}
}

// AddDevice appends a device; returns the scenario for chained authoring.
func (s *Scenario) AddDevice(device models.Device) *Scenario {
	s.devices = append(s.devices, device)
	return s
}

// ScheduleEvent appends a scheduled entry. The device id is not validated
// here; resolution happens lazily at dispatch time.
func (s *Scenario) ScheduleEvent(at time.Time, deviceID string, event models.DeviceEvent) *Scenario {
	s.scheduled = append(s.scheduled, ScheduledEvent{Time: at, DeviceID: deviceID, Event: event})
	return s
}

// EventsAt returns every entry whose hour and minute equal the query time's,
// in insertion order. Seconds on either side never affect the match.
func (s *Scenario) EventsAt(current time.Time) []ScheduledEvent {
	var due []ScheduledEvent
	for _, e := range s.scheduled {
		if e.Time.Hour() == current.Hour() && e.Time.Minute() == current.Minute() {
			due = append(due, e)
		}
	}
	return due
}

// DeviceByID returns the first device whose id matches, or ErrDeviceNotFound.
func (s *Scenario) DeviceByID(deviceID string) (models.Device, error) {
	for _, d := range s.devices {
		if d.ID() == deviceID {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, deviceID)
}

func (s *Scenario) Name() string { return s.name }

func (s *Scenario) Description() string { return s.description }

func (s *Scenario) Devices() []models.Device { return s.devices }

func (s *Scenario) ScheduledEvents() []ScheduledEvent { return s.scheduled }

func (s *Scenario) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario: %s\n", s.name)
	fmt.Fprintf(&b, "Description: %s\n", s.description)
	fmt.Fprintf(&b, "Devices (%d):\n", len(s.devices))
	for _, d := range s.devices {
		fmt.Fprintf(&b, "  - %s (%s): %s\n", d.Name(), d.Type(), d.CurrentState())
	}
	fmt.Fprintf(&b, "Scheduled Events (%d):\n", len(s.scheduled))
	for _, e := range s.scheduled {
		fmt.Fprintf(&b, "  - %s\n", e)
	}
	return b.String()
}
