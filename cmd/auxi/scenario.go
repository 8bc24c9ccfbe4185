package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/auxi/internal/config"
	"github.com/san-kum/auxi/internal/convection"
	"github.com/san-kum/auxi/internal/fluid"
	"github.com/san-kum/auxi/internal/thermo"
)

func scenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "scenario file (yaml, or ini by extension)")
	f.StringVar(&preset, "preset", "", "start from a named preset")
	f.StringVar(&fluidName, "fluid", config.DefaultFluid, "registered fluid")
	f.StringVar(&fluidTable, "fluid-table", "", "CSV fluid table (T,rho,cp,mu,k)")
	f.Float64Var(&pressure, "pressure", 101325, "pressure (Pa)")
	f.Float64VarP(&length, "length", "L", config.DefaultLength, "characteristic length (m)")
	f.Float64Var(&angle, "angle", 0, "inclination from vertical (deg, positive faces up)")
	f.Float64Var(&area, "area", config.DefaultArea, "surface area (m²)")
	f.Float64Var(&surfaceTemp, "ts", config.DefaultSurfaceTemperature, "surface temperature (K)")
	f.Float64Var(&fluidTemp, "tf", config.DefaultFluidTemperature, "fluid temperature (K)")
	f.BoolVar(&noExtrap, "no-extrapolation", false, "fail outside all correlation regions")
	f.StringVar(&forcedRegion, "region", "", "force a correlation region")
	f.BoolVar(&film, "film", false, "evaluate properties at the film temperature")
}

// loadScenario resolves preset, then config file, then explicitly set
// flags, later sources overriding earlier ones.
func loadScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("fluid") {
		cfg.Fluid = fluidName
	}
	if flags.Changed("fluid-table") {
		cfg.FluidTable = fluidTable
	}
	if flags.Changed("pressure") {
		cfg.Pressure = pressure
	}
	if flags.Changed("length") {
		cfg.Surface.Length = length
	}
	if flags.Changed("angle") {
		cfg.Surface.Angle = angle
	}
	if flags.Changed("area") {
		cfg.Surface.Area = area
	}
	if flags.Changed("ts") {
		cfg.State.SurfaceTemperature = surfaceTemp
	}
	if flags.Changed("tf") {
		cfg.State.FluidTemperature = fluidTemp
	}
	if flags.Changed("no-extrapolation") {
		cfg.AllowExtrapolation = !noExtrap
	}
	if flags.Changed("region") {
		cfg.ForcedRegion = forcedRegion
	}
	if flags.Changed("film") {
		cfg.FilmTemperature = film
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debugw("scenario", "preset", preset, "config", configFile, "scenario", cfg)
	return cfg, nil
}

func openFluid(cfg *config.Config) (thermo.FluidPropertySource, error) {
	if cfg.FluidTable != "" {
		return fluid.LoadTable(cfg.FluidTable)
	}
	return fluid.NewRegistry().Get(cfg.Fluid, cfg.Pressure)
}

// scenarioOptions maps a scenario onto engine options. The explorer owns
// the extrapolation and film toggles itself.
func scenarioOptions(cfg *config.Config, full bool) []convection.Option {
	opts := []convection.Option{convection.WithLogger(log)}
	if cfg.ForcedRegion != "" {
		opts = append(opts, convection.WithForcedRegion(cfg.ForcedRegion))
	}
	if full {
		opts = append(opts, convection.WithExtrapolation(cfg.AllowExtrapolation))
		if cfg.FilmTemperature {
			opts = append(opts, convection.WithFilmTemperature())
		}
	}
	return opts
}

func newEngine(cfg *config.Config) (*convection.Engine, error) {
	src, err := openFluid(cfg)
	if err != nil {
		return nil, err
	}
	return convection.New(src, scenarioOptions(cfg, true)...)
}
