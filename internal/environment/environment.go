// Package environment models the home the devices live in: indoor and
// outdoor temperature, humidity, light level, weather and a simulated clock.
// Randomness comes from an injected source so runs stay reproducible.
package environment

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"smarthome_simulator/internal/models"
)

const (
	defaultInsideTempC  = 22.0
	defaultOutsideTempC = 15.0
	defaultHumidity     = 50.0
	defaultLightLevel   = 0.7

	// weatherFlipChance is the per-advance probability the weather toggles.
	weatherFlipChance = 0.01
)

// HomeEnvironment simulates environmental conditions and the passage of
// time. It is a collaborator of the simulation core, never a caller into it.
type HomeEnvironment struct {
	insideTemperature  float64
	outsideTemperature float64
	humidity           float64
	lightLevel         float64 // 0.0 (dark) .. 1.0 (very bright)
	isDaylight         bool
	isRaining          bool
	isOccupied         bool

	currentTime time.Time
	data        map[string]any
	rng         *rand.Rand
}

// New creates an environment starting at the given clock time. A nil rng
// gets a fixed-seed source, keeping default construction deterministic.
func New(start time.Time, rng *rand.Rand) *HomeEnvironment {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &HomeEnvironment{
		insideTemperature:  defaultInsideTempC,
		outsideTemperature: defaultOutsideTempC,
		humidity:           defaultHumidity,
		lightLevel:         defaultLightLevel,
		isDaylight:         true,
		isOccupied:         true,
		currentTime:        start,
		data:               make(map[string]any),
		rng:                rng,
	}
}

// AdvanceTime moves the clock forward and updates ambient conditions:
// daylight and light level follow the hour, weather may flip, and the
// indoor temperature leaks toward the outdoor one.
func (h *HomeEnvironment) AdvanceTime(minutes int) {
	h.currentTime = h.currentTime.Add(time.Duration(minutes) * time.Minute)

	hour := h.currentTime.Hour()
	h.isDaylight = hour >= 6 && hour < 20

	switch {
	case !h.isDaylight:
		h.lightLevel = 0.1
	case hour < 8:
		h.lightLevel = 0.3 + float64(hour-6)*0.1
	case hour < 18:
		h.lightLevel = 0.7 + math.Sin(float64(hour-8)*math.Pi/10)*0.3
	default:
		h.lightLevel = 0.7 - float64(hour-18)*0.2
	}

	if h.rng.Float64() < weatherFlipChance {
		h.isRaining = !h.isRaining
	}
	h.outsideTemperature += (h.rng.Float64() - 0.5) * 0.2
	h.insideTemperature += (h.outsideTemperature - h.insideTemperature) * 0.02
}

// UpdateFromDevice applies a device's observable state to the environment.
// Only the device's type tag, on/off flag and keyed settings are consumed.
func (h *HomeEnvironment) UpdateFromDevice(device models.Device) {
	switch device.Type() {
	case models.TypeThermostat:
		effect := 0.0
		if device.IsOn() {
			effect = 0.1
		}
		target := h.floatData("targetTemperature", defaultInsideTempC)
		h.insideTemperature = h.insideTemperature*(1-effect) + target*effect

	case models.TypeAirConditioner:
		if device.IsOn() {
			target := h.floatData("targetTemperature", defaultInsideTempC)
			h.insideTemperature = h.insideTemperature*0.9 + target*0.1
			h.humidity = h.humidity*0.9 + 45.0*0.1
		}

	case models.TypeLight:
		if device.IsOn() {
			h.lightLevel = math.Min(1.0, h.lightLevel+0.2)
		}
	}
}

// SetEnvironmentalData stores a keyed reading.
func (h *HomeEnvironment) SetEnvironmentalData(key string, value any) {
	h.data[key] = value
}

// EnvironmentalData returns the keyed reading, or nil when absent.
func (h *HomeEnvironment) EnvironmentalData(key string) any {
	return h.data[key]
}

// floatData reads a numeric keyed setting with a fallback.
func (h *HomeEnvironment) floatData(key string, fallback float64) float64 {
	if v, ok := h.data[key].(float64); ok {
		return v
	}
	return fallback
}

func (h *HomeEnvironment) CurrentTime() time.Time { return h.currentTime }

func (h *HomeEnvironment) InsideTemperature() float64 { return h.insideTemperature }

func (h *HomeEnvironment) SetInsideTemperature(v float64) { h.insideTemperature = v }

func (h *HomeEnvironment) OutsideTemperature() float64 { return h.outsideTemperature }

func (h *HomeEnvironment) Humidity() float64 { return h.humidity }

func (h *HomeEnvironment) LightLevel() float64 { return h.lightLevel }

func (h *HomeEnvironment) IsDaylight() bool { return h.isDaylight }

func (h *HomeEnvironment) IsRaining() bool { return h.isRaining }

func (h *HomeEnvironment) IsOccupied() bool { return h.isOccupied }

func (h *HomeEnvironment) SetOccupied(occupied bool) { h.isOccupied = occupied }

// Report renders the current environmental conditions.
func (h *HomeEnvironment) Report() string {
	dayPart := "Night"
	if h.isDaylight {
		dayPart = "Day"
	}
	weather := "Clear"
	if h.isRaining {
		weather = "Raining"
	}
	occupied := "No"
	if h.isOccupied {
		occupied = "Yes"
	}
	return fmt.Sprintf(
		"Environment Status at %s\n"+
			"-------------------------\n"+
			"Indoor Temperature: %.1f°C\n"+
			"Outdoor Temperature: %.1f°C\n"+
			"Humidity: %.1f%%\n"+
			"Light Level: %.2f\n"+
			"Time of Day: %s\n"+
			"Weather: %s\n"+
			"Occupied: %s",
		h.currentTime.Format("2006-01-02 15:04"),
		h.insideTemperature, h.outsideTemperature, h.humidity, h.lightLevel,
		dayPart, weather, occupied,
	)
}
