package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/auxi/internal/analysis"
	"github.com/san-kum/auxi/internal/config"
	"github.com/san-kum/auxi/internal/convection"
	"github.com/san-kum/auxi/internal/export"
	"github.com/san-kum/auxi/internal/fluid"
	"github.com/san-kum/auxi/internal/gas"
	"github.com/san-kum/auxi/internal/species"
	"github.com/san-kum/auxi/internal/thermo"
	"github.com/san-kum/auxi/internal/viz"
)

var (
	// regions
	raMin, raMax float64
	cols, rows   int
	themeName    string
	svgPath      string
	listRegions  bool
	// sweep
	sweepFrom, sweepTo    float64
	sweepPoints           int
	plotWidth, plotHeight int
	csvPath               string
	// density / props
	gasTemp      float64
	gasPressure  float64
	gasMolarMass float64
	gasFormula   string
	gasMixture   map[string]string
)

func runEval(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	eng, err := newEngine(sc)
	if err != nil {
		return err
	}

	l, th := sc.Surface.Length, sc.Surface.Angle
	ts, tf := sc.State.SurfaceTemperature, sc.State.FluidTemperature

	local, err := eng.Evaluate(convection.Local, l, th, ts, tf)
	if err != nil {
		return err
	}
	avg, err := eng.Evaluate(convection.Average, l, th, ts, tf)
	if err != nil {
		return err
	}
	q, err := eng.HeatRate(l, th, ts, tf, sc.Surface.Area)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Gr\t%.4g\n", avg.Gr)
	fmt.Fprintf(w, "Ra\t%.4g\n", avg.Ra)
	fmt.Fprintf(w, "Pr\t%.4g\n", avg.Pr)
	fmt.Fprintf(w, "phi\t%g°\n", avg.Theta)
	fmt.Fprintf(w, "T_prop\t%g K\n", avg.Properties.T)
	fmt.Fprintf(w, "Nu_x\t%.4g\n", local.Nu)
	fmt.Fprintf(w, "Nu_L\t%.4g\n", avg.Nu)
	fmt.Fprintf(w, "h_x\t%.4g W/m²K\n", local.H)
	fmt.Fprintf(w, "h_L\t%.4g W/m²K\n", avg.H)
	fmt.Fprintf(w, "q\t%.4g W\n", q)
	fmt.Fprintf(w, "region\t%s\n", avg.Region())
	fmt.Fprintf(w, "status\t%s\n", avg.Classification.Status)
	if err := w.Flush(); err != nil {
		return err
	}
	if len(avg.Classification.Contributions) > 1 {
		fmt.Println()
		return printContributions(avg.Classification)
	}
	return nil
}

func printContributions(c convection.Classification) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tWEIGHT\tRA RANGE\tPHI RANGE")
	for _, ct := range c.Contributions {
		r := ct.Region
		fmt.Fprintf(w, "%s\t%.3f\t%g – %g\t%g° – %g°\n", r.Name, ct.Weight, r.RaMin, r.RaMax, r.ThetaMin, r.ThetaMax)
	}
	return w.Flush()
}

func runClassify(cmd *cobra.Command, args []string) error {
	ra, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("ra: %w", err)
	}
	phi, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("phi: %w", err)
	}
	if err := thermo.RequireNonNegative("Ra", ra); err != nil {
		return err
	}

	// Classification only reads the table; any fluid will do.
	air, err := fluid.NewAir(thermo.StandardPressure)
	if err != nil {
		return err
	}
	opts := []convection.Option{convection.WithLogger(log)}
	if forcedRegion != "" {
		opts = append(opts, convection.WithForcedRegion(forcedRegion))
	}
	eng, err := convection.New(air, opts...)
	if err != nil {
		return err
	}

	c := eng.Classify(ra, phi)
	fmt.Printf("Ra=%.4g  phi=%g°  status=%s\n", ra, phi, c.Status)
	if c.Status == convection.Extrapolated {
		fmt.Printf("nearest region at normalised distance %.3g\n", c.Distance)
	}
	fmt.Println()
	return printContributions(c)
}

func runRegions(cmd *cobra.Command, args []string) error {
	table := convection.DefaultTable()
	theme := viz.GetTheme(themeName)

	if listRegions {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tRA RANGE\tPHI RANGE\tLIMIT AVG/LOCAL\tSOURCE")
		for _, r := range table {
			fmt.Fprintf(w, "%s\t%g – %g\t%g° – %g°\t%.4g / %.4g\t%s\n",
				r.Name, r.RaMin, r.RaMax, r.ThetaMin, r.ThetaMax,
				r.Correlation.AverageLimit, r.Correlation.LocalLimit, r.Source)
		}
		return w.Flush()
	}

	m, err := analysis.NewRegionMap(table, raMin, raMax, cols, rows)
	if err != nil {
		return err
	}
	fmt.Println(viz.RenderRegionMap(m, theme))

	cov := m.Coverage()
	log.Debugw("region map", "proven", cov[convection.Proven], "blended", cov[convection.Blended], "extrapolated", cov[convection.Extrapolated])

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.RegionMapSVG(m, theme, 10)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	eng, err := newEngine(sc)
	if err != nil {
		return err
	}
	if err := thermo.RequirePositive("from", sweepFrom); err != nil {
		return err
	}
	if !(sweepTo > sweepFrom) || sweepPoints < 2 {
		return fmt.Errorf("sweep needs from < to and at least 2 points")
	}

	pts, err := analysis.SweepLength(eng, analysis.LogSpace(sweepFrom, sweepTo, sweepPoints),
		sc.Surface.Angle, sc.State.SurfaceTemperature, sc.State.FluidTemperature)
	if err != nil {
		return err
	}

	fmt.Println(viz.PlotSweep(pts, plotWidth, plotHeight))
	fmt.Println()

	jump, at := analysis.MaxRelativeJump(analysis.AverageNusselt(pts))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FROM L\tTO L\tREGION\tSTATUS")
	start := 0
	for i := 1; i <= len(pts); i++ {
		if i == len(pts) || pts[i].Region != pts[start].Region || pts[i].Status != pts[start].Status {
			fmt.Fprintf(w, "%.4g\t%.4g\t%s\t%s\n", pts[start].Length, pts[i-1].Length, pts[start].Region, pts[start].Status)
			start = i
		}
	}
	if at >= 0 {
		fmt.Fprintf(w, "\nmax step in Nu_L\t%.3g%% at L=%.4g\n", 100*jump, pts[at].Length)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := analysis.WriteSweepCSV(f, pts); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	if svgPath != "" {
		out := export.SweepSVG(pts, 800, 400, viz.GetTheme(themeName))
		if err := os.WriteFile(svgPath, []byte(out), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func runDensity(cmd *cobra.Command, args []string) error {
	beta, err := gas.BetaT{}.Calculate(gasTemp)
	if err != nil {
		return err
	}

	var (
		rho  float64
		desc string
	)
	switch {
	case len(gasMixture) > 0:
		x := make(map[string]float64, len(gasMixture))
		for name, v := range gasMixture {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("mole fraction of %s: %w", name, err)
			}
			x[name] = f
		}
		rho, err = gas.RhoTPx{Species: species.Default}.Calculate(gasTemp, gasPressure, x)
		desc = formatMixture(x)
	case gasFormula != "":
		var mm float64
		mm, err = species.MolarMass(gasFormula)
		if err == nil {
			rho, err = gas.RhoTP{MolarMass: mm}.Calculate(gasTemp, gasPressure)
		}
		desc = fmt.Sprintf("%s (%.4f kg/kmol)", gasFormula, mm)
	case gasMolarMass > 0:
		var m gas.RhoT
		m, err = gas.NewRhoT(gasMolarMass, gasPressure)
		if err == nil {
			rho, err = m.Calculate(gasTemp)
		}
		desc = fmt.Sprintf("M = %g kg/kmol", gasMolarMass)
	default:
		return fmt.Errorf("one of --mix, --formula or --molar-mass is required")
	}
	if err != nil {
		return err
	}

	meta := gas.RhoTP{}.Meta()
	bmeta := gas.BetaT{}.Meta()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "gas\t%s\n", desc)
	fmt.Fprintf(w, "T\t%g K\n", gasTemp)
	fmt.Fprintf(w, "p\t%g Pa\n", gasPressure)
	fmt.Fprintf(w, "%s\t%.6g %s\n", meta.Symbol, rho, meta.Unit)
	fmt.Fprintf(w, "%s\t%.6g %s\n", bmeta.Symbol, beta, bmeta.Unit)
	return w.Flush()
}

func formatMixture(x map[string]float64) string {
	names := make([]string, 0, len(x))
	for name := range x {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%g", name, x[name])
	}
	return strings.Join(parts, ", ")
}

func runMolarMass(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FORMULA\tM (g/mol)")
	for _, formula := range args {
		mm, err := species.MolarMass(formula)
		if err != nil {
			w.Flush()
			return err
		}
		fmt.Fprintf(w, "%s\t%.4f\n", formula, mm)
	}
	return w.Flush()
}

func runProps(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.Fluid = fluidName
	cfg.FluidTable = fluidTable
	cfg.Pressure = pressure
	src, err := openFluid(cfg)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		p, err := thermo.ParseProperty(args[0])
		if err != nil {
			return err
		}
		v, err := thermo.Lookup(src, p, gasTemp)
		if err != nil {
			return err
		}
		fmt.Printf("%s at %g K: %.6g\n", p, gasTemp, v)
		return nil
	}

	p, err := thermo.Evaluate(src, gasTemp)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "rho\t%.6g kg/m³\n", p.Rho)
	fmt.Fprintf(w, "mu\t%.6g Pa·s\n", p.Mu)
	fmt.Fprintf(w, "k\t%.6g W/(m·K)\n", p.K)
	fmt.Fprintf(w, "cp\t%.6g J/(kg·K)\n", p.Cp)
	fmt.Fprintf(w, "beta\t%.6g 1/K\n", p.Beta)
	fmt.Fprintf(w, "nu\t%.6g m²/s\n", p.KinematicViscosity())
	fmt.Fprintf(w, "alpha\t%.6g m²/s\n", p.ThermalDiffusivity())
	fmt.Fprintf(w, "Pr\t%.4g\n", p.Prandtl())
	return w.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tL (m)\tANGLE\tTS (K)\tTF (K)")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g°\t%g\t%g\n", name, p.Surface.Length, p.Surface.Angle,
			p.State.SurfaceTemperature, p.State.FluidTemperature)
	}
	return w.Flush()
}
