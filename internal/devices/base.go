// Package devices contains the device variants built on the generic FSM
// engine. Each variant owns one FSM instance, wires its own transition table
// and change listener at construction time, and derives its on/off flag and
// energy reading from the current state after every processed event.
package devices

import (
	"fmt"

	"smarthome_simulator/internal/fsm"
	"smarthome_simulator/internal/logger"
	"smarthome_simulator/internal/models"
)

// base carries the bookkeeping shared by every device variant: identity,
// the owned FSM and the derived fields recomputed after each event.
type base struct {
	id   string
	name string
	typ  models.DeviceType

	isOn              bool
	energyConsumption float64

	fsm *fsm.FSM[models.DeviceState, models.DeviceEvent]
	log *logger.Logger
}

func newBase(id, name string, typ models.DeviceType) base {
	return base{
		id:   id,
		name: name,
		typ:  typ,
		fsm:  fsm.New[models.DeviceState, models.DeviceEvent](models.StateOff),
		log:  logger.Get(logger.InfoLevel),
	}
}

func (b *base) ID() string { return b.id }

func (b *base) Name() string { return b.name }

func (b *base) SetName(name string) { b.name = name }

func (b *base) Type() models.DeviceType { return b.typ }

func (b *base) IsOn() bool { return b.isOn }

func (b *base) CurrentState() models.DeviceState { return b.fsm.CurrentState() }

func (b *base) EnergyConsumption() float64 { return b.energyConsumption }

// refreshPower recomputes the on/off flag from the current state. Anything
// other than OFF counts as on.
func (b *base) refreshPower() {
	b.isOn = b.fsm.CurrentState() != models.StateOff
}

// statusHeader renders the summary lines common to all variants.
func (b *base) statusHeader() string {
	power := "OFF"
	if b.isOn {
		power = "ON"
	}
	return fmt.Sprintf(
		"Device: %s (ID: %s, Type: %s)\nState: %s\nPower: %s\nEnergy Consumption: %.2f kWh",
		b.name, b.id, b.typ, b.fsm.CurrentState(), power, b.energyConsumption,
	)
}
