package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/auxi/internal/config"
	"github.com/san-kum/auxi/internal/tui"
)

var (
	debug      bool
	configFile string
	preset     string

	fluidName    string
	fluidTable   string
	pressure     float64
	length       float64
	angle        float64
	area         float64
	surfaceTemp  float64
	fluidTemp    float64
	noExtrap     bool
	forcedRegion string
	film         bool

	log *zap.SugaredLogger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "auxi",
		Short: "natural convection and gas property toolkit",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			log, err = newLogger(debug)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the explorer when no command is given
			return runExplore(cmd, args)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "development logging")
	scenarioFlags(rootCmd)

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate Nusselt numbers and heat transfer for a scenario",
		Args:  cobra.NoArgs,
		RunE:  runEval,
	}
	scenarioFlags(evalCmd)

	classifyCmd := &cobra.Command{
		Use:   "classify [ra] [phi]",
		Short: "classify a Rayleigh number and effective angle",
		Args:  cobra.ExactArgs(2),
		RunE:  runClassify,
	}
	classifyCmd.Flags().StringVar(&forcedRegion, "region", "", "force a correlation region")

	regionsCmd := &cobra.Command{
		Use:   "regions",
		Short: "draw the correlation region map",
		Args:  cobra.NoArgs,
		RunE:  runRegions,
	}
	regionsCmd.Flags().Float64Var(&raMin, "ra-min", 1, "lowest Rayleigh number")
	regionsCmd.Flags().Float64Var(&raMax, "ra-max", 1e14, "highest Rayleigh number")
	regionsCmd.Flags().IntVar(&cols, "cols", 56, "map columns")
	regionsCmd.Flags().IntVar(&rows, "rows", 24, "map rows")
	regionsCmd.Flags().StringVar(&themeName, "theme", "cyberpunk", "colour theme")
	regionsCmd.Flags().StringVar(&svgPath, "svg", "", "also write the map as SVG")
	regionsCmd.Flags().BoolVar(&listRegions, "list", false, "list regions instead of drawing them")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep plate length and plot Nu against Ra",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	scenarioFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.01, "shortest length (m)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 10, "longest length (m)")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 200, "number of lengths")
	sweepCmd.Flags().IntVar(&plotWidth, "width", 72, "plot width")
	sweepCmd.Flags().IntVar(&plotHeight, "height", 16, "plot height")
	sweepCmd.Flags().StringVar(&csvPath, "csv", "", "write the sweep as CSV")
	sweepCmd.Flags().StringVar(&svgPath, "svg", "", "write the curves as SVG")
	sweepCmd.Flags().StringVar(&themeName, "theme", "cyberpunk", "colour theme")

	densityCmd := &cobra.Command{
		Use:   "density",
		Short: "ideal-gas density and expansion coefficient",
		Args:  cobra.NoArgs,
		RunE:  runDensity,
	}
	densityCmd.Flags().Float64VarP(&gasTemp, "temperature", "T", 300, "temperature (K)")
	densityCmd.Flags().Float64VarP(&gasPressure, "pressure", "p", 101325, "pressure (Pa)")
	densityCmd.Flags().Float64Var(&gasMolarMass, "molar-mass", 0, "molar mass (kg/kmol)")
	densityCmd.Flags().StringVar(&gasFormula, "formula", "", "pure species formula")
	densityCmd.Flags().StringToStringVar(&gasMixture, "mix", nil, "mole fractions, e.g. H2=0.5,Ar=0.5")

	molarMassCmd := &cobra.Command{
		Use:   "molar-mass [formula...]",
		Short: "molar mass of chemical formulas",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMolarMass,
	}

	propsCmd := &cobra.Command{
		Use:   "props [property]",
		Short: "fluid properties at a temperature",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runProps,
	}
	propsCmd.Flags().StringVar(&fluidName, "fluid", config.DefaultFluid, "registered fluid")
	propsCmd.Flags().StringVar(&fluidTable, "fluid-table", "", "CSV fluid table (T,rho,cp,mu,k)")
	propsCmd.Flags().Float64Var(&pressure, "pressure", 101325, "pressure (Pa)")
	propsCmd.Flags().Float64VarP(&gasTemp, "temperature", "T", 300, "temperature (K)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		Args:  cobra.NoArgs,
		RunE:  runPresets,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive explorer",
		Args:  cobra.NoArgs,
		RunE:  runExplore,
	}
	scenarioFlags(exploreCmd)

	rootCmd.AddCommand(evalCmd, classifyCmd, regionsCmd, sweepCmd, densityCmd,
		molarMassCmd, propsCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.Sugar(), nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	src, err := openFluid(sc)
	if err != nil {
		return err
	}
	return tui.RunExplorer(src, sc, scenarioOptions(sc, false)...)
}
