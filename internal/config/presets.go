package config

import (
	"sort"

	"github.com/san-kum/auxi/internal/thermo"
)

func scenario(length, angle, ts, tf float64) *Config {
	return &Config{
		Fluid:              DefaultFluid,
		Pressure:           thermo.StandardPressure,
		AllowExtrapolation: true,
		Surface:            SurfaceConfig{Length: length, Angle: angle, Area: DefaultArea},
		State:              ThermalConfig{SurfaceTemperature: ts, FluidTemperature: tf},
	}
}

// Presets are named scenarios in air at atmospheric pressure.
var Presets = map[string]*Config{
	// Laminar vertical wall.
	"wall": scenario(0.4, 0, 313, 283),
	// Storey-height wall, turbulent boundary layer.
	"tall-wall": scenario(3, 0, 313, 283),
	// Sun-heated flat roof, plume above.
	"hot-roof": scenario(2, 90, 333, 293),
	// Radiant ceiling panel, stable layer below.
	"hot-ceiling": scenario(0.5, -90, 318, 293),
	// Glazing cooled by outdoor air, seen from the room.
	"cold-window": scenario(1.2, 0, 275, 293),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
