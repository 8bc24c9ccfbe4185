// Package fluid provides concrete fluid property sources.
//
// A [Table] interpolates tabulated properties read from CSV. [Air] combines
// the embedded air table with the ideal-gas model so that density and
// expansion follow the configured pressure. [Registry] maps fluid names to
// constructors for the CLI and config layers.
package fluid

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/interp"

	"github.com/san-kum/auxi/internal/thermo"
)

// ErrTemperatureRange is returned for temperatures outside a table.
var ErrTemperatureRange = errors.New("fluid: temperature outside tabulated range")

// Row is one line of a fluid property table.
type Row struct {
	T   float64 `csv:"T"`   // K
	Rho float64 `csv:"rho"` // kg/m³
	Cp  float64 `csv:"cp"`  // J/(kg·K)
	Mu  float64 `csv:"mu"`  // Pa·s
	K   float64 `csv:"k"`   // W/(m·K)
}

// Table is a fluid whose properties are interpolated from tabulated rows
// with monotone cubic (Fritsch–Butland) splines.
type Table struct {
	name       string
	tMin, tMax float64
	rho        interp.FritschButland
	cp         interp.FritschButland
	mu         interp.FritschButland
	k          interp.FritschButland
}

// LoadTable reads a CSV property table from path.
func LoadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []Row
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("reading fluid table %s: %w", path, err)
	}
	return NewTable(path, rows)
}

// ParseTable builds a table from CSV bytes.
func ParseTable(name string, data []byte) (*Table, error) {
	var rows []Row
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing fluid table %s: %w", name, err)
	}
	return NewTable(name, rows)
}

// NewTable fits interpolants to rows. Rows may be in any order but
// temperatures must be distinct and every value positive.
func NewTable(name string, rows []Row) (*Table, error) {
	if len(rows) < 3 {
		return nil, fmt.Errorf("fluid table %s: need at least 3 rows, got %d", name, len(rows))
	}

	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })

	n := len(sorted)
	ts := make([]float64, n)
	rho := make([]float64, n)
	cp := make([]float64, n)
	mu := make([]float64, n)
	k := make([]float64, n)
	for i, r := range sorted {
		for _, v := range []float64{r.T, r.Rho, r.Cp, r.Mu, r.K} {
			if !(v > 0) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("fluid table %s: row %d: %w", name, i+1, &thermo.DomainError{Quantity: "table value", Value: v, Reason: "must be positive"})
			}
		}
		if i > 0 && r.T == sorted[i-1].T {
			return nil, fmt.Errorf("fluid table %s: duplicate temperature %g K", name, r.T)
		}
		ts[i], rho[i], cp[i], mu[i], k[i] = r.T, r.Rho, r.Cp, r.Mu, r.K
	}

	t := &Table{name: name, tMin: ts[0], tMax: ts[n-1]}
	for _, fit := range []struct {
		col string
		fb  *interp.FritschButland
		ys  []float64
	}{
		{"rho", &t.rho, rho},
		{"cp", &t.cp, cp},
		{"mu", &t.mu, mu},
		{"k", &t.k, k},
	} {
		if err := fit.fb.Fit(ts, fit.ys); err != nil {
			return nil, fmt.Errorf("fluid table %s: fitting %s: %w", name, fit.col, err)
		}
	}
	return t, nil
}

// Name identifies the table, usually its file path.
func (t *Table) Name() string {
	return t.name
}

// Range returns the tabulated temperature interval in K.
func (t *Table) Range() (float64, float64) {
	return t.tMin, t.tMax
}

func (t *Table) Density(temp float64) (float64, error) {
	if err := t.check(temp); err != nil {
		return 0, err
	}
	return t.rho.Predict(temp), nil
}

func (t *Table) Viscosity(temp float64) (float64, error) {
	if err := t.check(temp); err != nil {
		return 0, err
	}
	return t.mu.Predict(temp), nil
}

func (t *Table) Conductivity(temp float64) (float64, error) {
	if err := t.check(temp); err != nil {
		return 0, err
	}
	return t.k.Predict(temp), nil
}

func (t *Table) SpecificHeat(temp float64) (float64, error) {
	if err := t.check(temp); err != nil {
		return 0, err
	}
	return t.cp.Predict(temp), nil
}

// ThermalExpansion is β = −(1/ρ)·dρ/dT from the density interpolant.
func (t *Table) ThermalExpansion(temp float64) (float64, error) {
	if err := t.check(temp); err != nil {
		return 0, err
	}
	return -t.rho.PredictDerivative(temp) / t.rho.Predict(temp), nil
}

func (t *Table) check(temp float64) error {
	if err := thermo.RequirePositive("temperature", temp); err != nil {
		return err
	}
	if temp < t.tMin || temp > t.tMax {
		return fmt.Errorf("%w: %s covers %g–%g K, got %g K", ErrTemperatureRange, t.name, t.tMin, t.tMax, temp)
	}
	return nil
}
