package main

import (
	"smarthome_simulator/internal/devices"
	"smarthome_simulator/internal/models"
	"smarthome_simulator/internal/simulation"
)

// sampleScenarios builds the three canned demonstration scenarios.
func sampleScenarios() []*simulation.Scenario {
	morning := simulation.NewScenario(
		"Morning Routine",
		"Simulates the smart home behavior during morning hours",
	).
		AddDevice(devices.NewConfigurableLight("L1", "Kitchen Light", true, true)).
		AddDevice(devices.NewConfigurableLight("L2", "Bedroom Light", true, false)).
		AddDevice(devices.NewThermostat("T1", "Main Thermostat")).
		ScheduleEvent(simulation.At(6, 0), "L2", models.EventPowerOn).
		ScheduleEvent(simulation.At(6, 30), "T1", models.EventPowerOn).
		ScheduleEvent(simulation.At(6, 31), "T1", models.EventActivate).
		ScheduleEvent(simulation.At(7, 0), "L1", models.EventPowerOn).
		ScheduleEvent(simulation.At(8, 0), "L2", models.EventPowerOff).
		ScheduleEvent(simulation.At(9, 0), "L1", models.EventPowerOff)

	evening := simulation.NewScenario(
		"Evening Relaxation",
		"Simulates the smart home behavior during evening hours",
	).
		AddDevice(devices.NewConfigurableLight("L3", "Living Room Light", true, true)).
		AddDevice(devices.NewThermostat("T2", "Living Room Thermostat")).
		ScheduleEvent(simulation.At(18, 0), "L3", models.EventPowerOn).
		ScheduleEvent(simulation.At(18, 1), "T2", models.EventPowerOn).
		ScheduleEvent(simulation.At(18, 2), "T2", models.EventActivate).
		ScheduleEvent(simulation.At(22, 0), "L3", models.EventEnterLowPower).
		ScheduleEvent(simulation.At(23, 0), "L3", models.EventPowerOff).
		ScheduleEvent(simulation.At(23, 30), "T2", models.EventEnterLowPower)

	energySaving := simulation.NewScenario(
		"Energy Saving Mode",
		"Demonstrates how devices behave in energy saving mode",
	).
		AddDevice(devices.NewConfigurableLight("L4", "Eco Light 1", true, false)).
		AddDevice(devices.NewConfigurableLight("L5", "Eco Light 2", true, false)).
		AddDevice(devices.NewThermostat("T3", "Eco Thermostat")).
		ScheduleEvent(simulation.At(8, 0), "L4", models.EventPowerOn).
		ScheduleEvent(simulation.At(8, 1), "L5", models.EventPowerOn).
		ScheduleEvent(simulation.At(8, 2), "T3", models.EventPowerOn).
		ScheduleEvent(simulation.At(8, 3), "T3", models.EventActivate).
		ScheduleEvent(simulation.At(9, 0), "L4", models.EventEnterLowPower).
		ScheduleEvent(simulation.At(9, 1), "L5", models.EventEnterLowPower).
		ScheduleEvent(simulation.At(9, 2), "T3", models.EventEnterLowPower).
		ScheduleEvent(simulation.At(17, 0), "L4", models.EventExitLowPower).
		ScheduleEvent(simulation.At(17, 1), "L5", models.EventExitLowPower).
		ScheduleEvent(simulation.At(17, 2), "T3", models.EventExitLowPower).
		ScheduleEvent(simulation.At(22, 0), "L4", models.EventPowerOff).
		ScheduleEvent(simulation.At(22, 1), "L5", models.EventPowerOff).
		ScheduleEvent(simulation.At(22, 2), "T3", models.EventPowerOff)

	return []*simulation.Scenario{morning, evening, energySaving}
}

// pickScenario returns the scenario with the given name, or nil.
func pickScenario(scenarios []*simulation.Scenario, name string) *simulation.Scenario {
	for _, s := range scenarios {
		if s.Name() == name {
			return s
		}
	}
	return nil
}
