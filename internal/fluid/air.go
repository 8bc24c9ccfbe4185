package fluid

import (
	_ "embed"
	"fmt"

	"github.com/san-kum/auxi/internal/gas"
	"github.com/san-kum/auxi/internal/species"
	"github.com/san-kum/auxi/internal/thermo"
)

// Transport properties of air at 1 atm, Incropera et al., Fundamentals of
// Heat and Mass Transfer, Table A.4.
//
//go:embed air.csv
var airTable []byte

// DryAir is the mole-fraction composition of dry air.
var DryAir = map[string]float64{
	"N2":  0.7808,
	"O2":  0.2095,
	"Ar":  0.0093,
	"CO2": 0.0004,
}

// Air is dry air at a fixed pressure. Viscosity, conductivity and specific
// heat are interpolated from the embedded table; density and thermal
// expansion follow the ideal-gas law so they scale with pressure.
type Air struct {
	table     *Table
	molarMass float64
	rho       gas.RhoT
	beta      gas.BetaT
}

// NewAir builds an air property source at pressure p in Pa.
func NewAir(p float64) (*Air, error) {
	table, err := ParseTable("air", airTable)
	if err != nil {
		return nil, err
	}
	mm, err := gas.MixtureMolarMass(species.Default, DryAir)
	if err != nil {
		return nil, fmt.Errorf("dry air molar mass: %w", err)
	}
	if err := thermo.RequirePositive("pressure", p); err != nil {
		return nil, err
	}
	rho, err := gas.NewRhoT(mm, p)
	if err != nil {
		return nil, err
	}
	return &Air{table: table, molarMass: mm, rho: rho}, nil
}

// MolarMass of the mixture in kg/kmol.
func (a *Air) MolarMass() float64 {
	return a.molarMass
}

// Pressure in Pa.
func (a *Air) Pressure() float64 {
	return a.rho.Pressure
}

// Range returns the temperature interval covered by the transport data.
func (a *Air) Range() (float64, float64) {
	return a.table.Range()
}

func (a *Air) Density(t float64) (float64, error) {
	if err := a.table.check(t); err != nil {
		return 0, err
	}
	return a.rho.Calculate(t)
}

func (a *Air) Viscosity(t float64) (float64, error) {
	return a.table.Viscosity(t)
}

func (a *Air) Conductivity(t float64) (float64, error) {
	return a.table.Conductivity(t)
}

func (a *Air) SpecificHeat(t float64) (float64, error) {
	return a.table.SpecificHeat(t)
}

func (a *Air) ThermalExpansion(t float64) (float64, error) {
	if err := a.table.check(t); err != nil {
		return 0, err
	}
	return a.beta.Calculate(t)
}
