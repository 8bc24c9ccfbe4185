package thermo

import (
	"fmt"
	"math"
	"strings"
)

// Physical constants.
const (
	// StandardGravity is the standard acceleration of gravity, m/s².
	StandardGravity = 9.80665

	// GasConstant is the molar gas constant, J/(mol·K).
	GasConstant = 8.314462618

	// StandardPressure is one standard atmosphere, Pa.
	StandardPressure = 101325.0
)

// FluidPropertySource provides fluid properties at a temperature in kelvin.
// Pressure and composition are fixed by the implementation.
// Implementations must be deterministic and safe for concurrent use.
type FluidPropertySource interface {
	// Density in kg/m³.
	Density(t float64) (float64, error)
	// Viscosity is the dynamic viscosity in Pa·s.
	Viscosity(t float64) (float64, error)
	// Conductivity is the thermal conductivity in W/(m·K).
	Conductivity(t float64) (float64, error)
	// SpecificHeat is the isobaric specific heat in J/(kg·K).
	SpecificHeat(t float64) (float64, error)
	// ThermalExpansion is the volumetric expansion coefficient in 1/K.
	ThermalExpansion(t float64) (float64, error)
}

// Property names one of the values a FluidPropertySource provides.
type Property uint8

const (
	Density Property = iota
	Viscosity
	Conductivity
	SpecificHeat
	ThermalExpansion
)

var propertyNames = map[Property]string{
	Density:          "density",
	Viscosity:        "viscosity",
	Conductivity:     "conductivity",
	SpecificHeat:     "specific_heat",
	ThermalExpansion: "thermal_expansion",
}

func (p Property) String() string {
	if name, ok := propertyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Property(%d)", p)
}

// ParseProperty maps a property name to its Property value.
func ParseProperty(name string) (Property, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range propertyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown property: %q", name)
}

// Lookup evaluates a single property by name.
func Lookup(src FluidPropertySource, p Property, t float64) (float64, error) {
	switch p {
	case Density:
		return src.Density(t)
	case Viscosity:
		return src.Viscosity(t)
	case Conductivity:
		return src.Conductivity(t)
	case SpecificHeat:
		return src.SpecificHeat(t)
	case ThermalExpansion:
		return src.ThermalExpansion(t)
	}
	return 0, fmt.Errorf("unknown property: %v", p)
}

// Properties is every property of a source at temperature T.
type Properties struct {
	T    float64
	Rho  float64
	Mu   float64
	K    float64
	Cp   float64
	Beta float64
}

// Evaluate collects all five properties of src at t.
func Evaluate(src FluidPropertySource, t float64) (Properties, error) {
	if err := RequirePositive("temperature", t); err != nil {
		return Properties{}, err
	}
	p := Properties{T: t}
	var err error
	if p.Rho, err = src.Density(t); err != nil {
		return Properties{}, fmt.Errorf("density at %g K: %w", t, err)
	}
	if p.Mu, err = src.Viscosity(t); err != nil {
		return Properties{}, fmt.Errorf("viscosity at %g K: %w", t, err)
	}
	if p.K, err = src.Conductivity(t); err != nil {
		return Properties{}, fmt.Errorf("conductivity at %g K: %w", t, err)
	}
	if p.Cp, err = src.SpecificHeat(t); err != nil {
		return Properties{}, fmt.Errorf("specific heat at %g K: %w", t, err)
	}
	if p.Beta, err = src.ThermalExpansion(t); err != nil {
		return Properties{}, fmt.Errorf("thermal expansion at %g K: %w", t, err)
	}
	if !p.IsValid() {
		return Properties{}, &DomainError{Quantity: "fluid properties", Value: t, Reason: "source returned non-positive or non-finite values"}
	}
	return p, nil
}

// IsValid reports whether every transport property is finite and positive.
func (p Properties) IsValid() bool {
	for _, v := range []float64{p.Rho, p.Mu, p.K, p.Cp} {
		if !(v > 0) || isInf(v) {
			return false
		}
	}
	return !math.IsNaN(p.Beta) && !isInf(p.Beta)
}

// KinematicViscosity ν = μ/ρ, m²/s.
func (p Properties) KinematicViscosity() float64 {
	return p.Mu / p.Rho
}

// ThermalDiffusivity α = k/(ρ·cp), m²/s.
func (p Properties) ThermalDiffusivity() float64 {
	return p.K / (p.Rho * p.Cp)
}

// Prandtl number ν/α.
func (p Properties) Prandtl() float64 {
	return p.Mu * p.Cp / p.K
}

func isInf(v float64) bool {
	return math.IsInf(v, 0)
}
