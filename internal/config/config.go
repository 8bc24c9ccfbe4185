package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/auxi/internal/thermo"
)

const (
	DefaultFluid              = "air"
	DefaultLength             = 0.4
	DefaultArea               = 1.0
	DefaultSurfaceTemperature = 313.0
	DefaultFluidTemperature   = 283.0
)

type Config struct {
	Fluid              string        `yaml:"fluid"`
	FluidTable         string        `yaml:"fluid_table,omitempty"`
	Pressure           float64       `yaml:"pressure"`
	AllowExtrapolation bool          `yaml:"allow_extrapolation"`
	ForcedRegion       string        `yaml:"forced_region,omitempty"`
	FilmTemperature    bool          `yaml:"film_temperature"`
	Surface            SurfaceConfig `yaml:"surface"`
	State              ThermalConfig `yaml:"state"`
}

type SurfaceConfig struct {
	Length float64 `yaml:"length"`
	Angle  float64 `yaml:"angle"`
	Area   float64 `yaml:"area"`
}

type ThermalConfig struct {
	SurfaceTemperature float64 `yaml:"surface_temperature"`
	FluidTemperature   float64 `yaml:"fluid_temperature"`
}

func DefaultConfig() *Config {
	return &Config{
		Fluid:              DefaultFluid,
		Pressure:           thermo.StandardPressure,
		AllowExtrapolation: true,
		Surface: SurfaceConfig{
			Length: DefaultLength,
			Area:   DefaultArea,
		},
		State: ThermalConfig{
			SurfaceTemperature: DefaultSurfaceTemperature,
			FluidTemperature:   DefaultFluidTemperature,
		},
	}
}

// Load reads a scenario over the defaults. Files ending in .ini are parsed
// as INI, anything else as YAML.
func Load(path string) (*Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".ini") {
		return loadINI(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// INI layout:
//
//	[fluid]    name, table, pressure
//	[engine]   allow_extrapolation, forced_region, film_temperature
//	[surface]  length, angle, area
//	[state]    surface_temperature, fluid_temperature
func loadINI(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	d := DefaultConfig()
	fl := file.Section("fluid")
	eng := file.Section("engine")
	sf := file.Section("surface")
	st := file.Section("state")
	return &Config{
		Fluid:              fl.Key("name").MustString(d.Fluid),
		FluidTable:         fl.Key("table").String(),
		Pressure:           fl.Key("pressure").MustFloat64(d.Pressure),
		AllowExtrapolation: eng.Key("allow_extrapolation").MustBool(d.AllowExtrapolation),
		ForcedRegion:       eng.Key("forced_region").String(),
		FilmTemperature:    eng.Key("film_temperature").MustBool(d.FilmTemperature),
		Surface: SurfaceConfig{
			Length: sf.Key("length").MustFloat64(d.Surface.Length),
			Angle:  sf.Key("angle").MustFloat64(d.Surface.Angle),
			Area:   sf.Key("area").MustFloat64(d.Surface.Area),
		},
		State: ThermalConfig{
			SurfaceTemperature: st.Key("surface_temperature").MustFloat64(d.State.SurfaceTemperature),
			FluidTemperature:   st.Key("fluid_temperature").MustFloat64(d.State.FluidTemperature),
		},
	}, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects non-physical scenarios. Region names are checked later
// by the engine.
func (c *Config) Validate() error {
	if c.Fluid == "" && c.FluidTable == "" {
		return errors.New("config: fluid or fluid_table is required")
	}
	if err := thermo.RequirePositive("pressure", c.Pressure); err != nil {
		return err
	}
	if err := thermo.RequirePositive("surface.length", c.Surface.Length); err != nil {
		return err
	}
	if err := thermo.RequirePositive("surface.area", c.Surface.Area); err != nil {
		return err
	}
	if !(c.Surface.Angle >= -90 && c.Surface.Angle <= 90) {
		return &thermo.DomainError{Quantity: "surface.angle", Value: c.Surface.Angle, Reason: "must be within [-90, 90] degrees"}
	}
	if err := thermo.RequirePositive("state.surface_temperature", c.State.SurfaceTemperature); err != nil {
		return err
	}
	return thermo.RequirePositive("state.fluid_temperature", c.State.FluidTemperature)
}
