package analysis

import (
	"errors"
	"math"

	"github.com/san-kum/auxi/internal/convection"
	"github.com/san-kum/auxi/internal/thermo"
)

// RegionMap is a grid of classifications over log10 Ra (columns, left to
// right) and effective angle (rows, +90° at the top to -90° at the bottom).
// Cell centres are sampled.
type RegionMap struct {
	RaMin, RaMax float64
	Cols, Rows   int
	Table        convection.Table
	Cells        [][]convection.Classification
}

// NewRegionMap classifies a cols×rows grid spanning [raMin, raMax].
func NewRegionMap(table convection.Table, raMin, raMax float64, cols, rows int) (*RegionMap, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if !(raMin > 0) || !(raMax > raMin) || math.IsInf(raMax, 0) {
		return nil, errors.New("analysis: region map needs 0 < raMin < raMax < ∞")
	}
	if cols < 1 || rows < 1 {
		return nil, errors.New("analysis: region map needs at least one row and column")
	}

	m := &RegionMap{
		RaMin: raMin,
		RaMax: raMax,
		Cols:  cols,
		Rows:  rows,
		Table: table,
		Cells: make([][]convection.Classification, rows),
	}
	thermo.ParallelFor(rows, 4, func(start, end int) {
		for r := start; r < end; r++ {
			row := make([]convection.Classification, cols)
			theta := m.ThetaAt(r)
			for c := range row {
				row[c] = table.Classify(m.RaAt(c), theta)
			}
			m.Cells[r] = row
		}
	})
	return m, nil
}

// RaAt returns the Rayleigh number at the centre of column c.
func (m *RegionMap) RaAt(c int) float64 {
	lo, hi := math.Log10(m.RaMin), math.Log10(m.RaMax)
	return math.Pow(10, lo+(float64(c)+0.5)*(hi-lo)/float64(m.Cols))
}

// ThetaAt returns the effective angle at the centre of row r.
func (m *RegionMap) ThetaAt(r int) float64 {
	step := 2 * convection.MaxTheta / float64(m.Rows)
	return convection.MaxTheta - (float64(r)+0.5)*step
}

// Coverage counts cells by status.
func (m *RegionMap) Coverage() map[convection.Status]int {
	out := make(map[convection.Status]int)
	for _, row := range m.Cells {
		for _, c := range row {
			out[c.Status]++
		}
	}
	return out
}
