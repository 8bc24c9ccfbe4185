// Package gas implements ideal-gas property models.
//
// Molar masses are in kg/kmol (numerically g/mol), matching the species
// package, and are converted to kg/mol before applying ρ = P·M/(R·T).
package gas

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/auxi/internal/thermo"
)

// CompositionTolerance is how far mole fractions may sum from one.
const CompositionTolerance = 1e-6

// Quantity is display metadata for a property model.
type Quantity struct {
	Name   string
	Symbol string
	Unit   string
}

// MolarMassLookup resolves a chemical formula to g/mol.
type MolarMassLookup interface {
	MolarMass(formula string) (float64, error)
}

// BetaT is the ideal-gas thermal expansion coefficient β = 1/T.
type BetaT struct{}

func (BetaT) Meta() Quantity {
	return Quantity{Name: "thermal expansion coefficient", Symbol: "β", Unit: "1/K"}
}

func (BetaT) Calculate(t float64) (float64, error) {
	if err := thermo.RequirePositive("temperature", t); err != nil {
		return 0, err
	}
	return 1.0 / t, nil
}

// RhoT is density as a function of temperature at a fixed pressure and
// molar mass.
type RhoT struct {
	MolarMass float64 // kg/kmol
	Pressure  float64 // Pa
}

// NewRhoT validates the configuration of a RhoT model.
func NewRhoT(molarMass, pressure float64) (RhoT, error) {
	if err := thermo.RequirePositive("molar mass", molarMass); err != nil {
		return RhoT{}, err
	}
	if err := thermo.RequireNonNegative("pressure", pressure); err != nil {
		return RhoT{}, err
	}
	return RhoT{MolarMass: molarMass, Pressure: pressure}, nil
}

func (RhoT) Meta() Quantity {
	return Quantity{Name: "density", Symbol: "ρ", Unit: "kg/m³"}
}

func (m RhoT) Calculate(t float64) (float64, error) {
	return RhoTP{MolarMass: m.MolarMass}.Calculate(t, m.Pressure)
}

// RhoTP is density as a function of temperature and pressure at a fixed
// molar mass.
type RhoTP struct {
	MolarMass float64 // kg/kmol
}

func (RhoTP) Meta() Quantity {
	return Quantity{Name: "density", Symbol: "ρ", Unit: "kg/m³"}
}

func (m RhoTP) Calculate(t, p float64) (float64, error) {
	if err := thermo.RequirePositive("temperature", t); err != nil {
		return 0, err
	}
	if err := thermo.RequireNonNegative("pressure", p); err != nil {
		return 0, err
	}
	return density(t, p, m.MolarMass), nil
}

// RhoTPx is density as a function of temperature, pressure and mole-fraction
// composition.
type RhoTPx struct {
	Species MolarMassLookup
}

func (RhoTPx) Meta() Quantity {
	return Quantity{Name: "density", Symbol: "ρ", Unit: "kg/m³"}
}

func (m RhoTPx) Calculate(t, p float64, x map[string]float64) (float64, error) {
	if err := thermo.RequirePositive("temperature", t); err != nil {
		return 0, err
	}
	if err := thermo.RequireNonNegative("pressure", p); err != nil {
		return 0, err
	}
	mm, err := MixtureMolarMass(m.Species, x)
	if err != nil {
		return 0, err
	}
	return density(t, p, mm), nil
}

// MixtureMolarMass returns Σ xᵢ·Mᵢ in kg/kmol.
func MixtureMolarMass(lookup MolarMassLookup, x map[string]float64) (float64, error) {
	if len(x) == 0 {
		return 0, &thermo.CompositionError{Reason: "empty composition"}
	}

	// Sorted so the floating-point sum does not depend on map order.
	names := make([]string, 0, len(x))
	for name := range x {
		names = append(names, name)
	}
	sort.Strings(names)

	fractions := make([]float64, len(names))
	masses := make([]float64, len(names))
	for i, name := range names {
		f := x[name]
		if f < 0 || math.IsNaN(f) {
			return 0, &thermo.CompositionError{Reason: fmt.Sprintf("mole fraction of %s is %g", name, f)}
		}
		mm, err := lookup.MolarMass(name)
		if err != nil {
			return 0, err
		}
		fractions[i] = f
		masses[i] = mm
	}

	sum := floats.Sum(fractions)
	if math.Abs(sum-1) > CompositionTolerance {
		return 0, &thermo.CompositionError{Sum: sum}
	}
	return floats.Dot(fractions, masses), nil
}

func density(t, p, molarMass float64) float64 {
	return p * molarMass * 1e-3 / (thermo.GasConstant * t)
}
