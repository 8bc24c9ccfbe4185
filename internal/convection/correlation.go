package convection

import (
	"fmt"
	"math"
)

// Kind selects the local (trailing edge) or surface-averaged Nusselt number.
type Kind uint8

const (
	Local Kind = iota
	Average
)

func (k Kind) String() string {
	switch k {
	case Local:
		return "local"
	case Average:
		return "average"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Formula maps Rayleigh number, Prandtl number and effective angle in
// degrees to a Nusselt number.
type Formula func(ra, pr, theta float64) float64

// Correlation pairs the local and average forms of one empirical
// correlation with their values in the limit Ra → 0.
type Correlation struct {
	Local        Formula
	Average      Formula
	LocalLimit   float64
	AverageLimit float64
}

// Nusselt evaluates the correlation. At Ra = 0 the declared limit is
// returned without evaluating the formula.
func (c Correlation) Nusselt(kind Kind, ra, pr, theta float64) float64 {
	if kind == Local {
		if ra == 0 {
			return c.LocalLimit
		}
		return c.Local(ra, pr, theta)
	}
	if ra == 0 {
		return c.AverageLimit
	}
	return c.Average(ra, pr, theta)
}

// Churchill & Chu (1975) Prandtl-number functions.
func churchillChuLaminar(pr float64) float64 {
	return math.Pow(1+math.Pow(0.492/pr, 9.0/16.0), 4.0/9.0)
}

func churchillChuFull(pr float64) float64 {
	return math.Pow(1+math.Pow(0.492/pr, 9.0/16.0), 8.0/27.0)
}

// Buoyancy component along a plate tilted theta degrees from vertical.
func alongPlate(ra, theta float64) float64 {
	return ra * math.Max(math.Cos(theta*math.Pi/180), 0)
}

// Buoyancy component normal to the plate.
func normalToPlate(ra, theta float64) float64 {
	return ra * math.Abs(math.Sin(theta*math.Pi/180))
}

// Vertical and moderately inclined plates, laminar (Churchill & Chu 1975,
// Incropera eq. 9.27), with g replaced by g·cos θ. The average form keeps
// the 0.68 conduction term; the local form is the ¾ boundary-layer share
// of the Ra^¼ term and vanishes with Ra.
var verticalLaminar = Correlation{
	Local: func(ra, pr, theta float64) float64 {
		return 0.503 * math.Pow(alongPlate(ra, theta), 0.25) / churchillChuLaminar(pr)
	},
	Average: func(ra, pr, theta float64) float64 {
		return 0.68 + 0.670*math.Pow(alongPlate(ra, theta), 0.25)/churchillChuLaminar(pr)
	},
	LocalLimit:   0,
	AverageLimit: 0.68,
}

// Vertical plates over the full range (Churchill & Chu 1975, Incropera
// eq. 9.26). In the turbulent regime h does not vary along the plate, so
// the local value equals the average.
var verticalTurbulent = func() Correlation {
	f := func(ra, pr, theta float64) float64 {
		v := 0.825 + 0.387*math.Pow(alongPlate(ra, theta), 1.0/6.0)/churchillChuFull(pr)
		return v * v
	}
	return Correlation{
		Local:        f,
		Average:      f,
		LocalLimit:   0.825 * 0.825,
		AverageLimit: 0.825 * 0.825,
	}
}()

// Upper surface of a heated (lower of a cooled) near-horizontal plate,
// laminar plume regime (Lloyd & Moran 1974, Incropera eq. 9.30).
var upperLaminar = Correlation{
	Local: func(ra, pr, theta float64) float64 {
		return 0.405 * math.Pow(normalToPlate(ra, theta), 0.25)
	},
	Average: func(ra, pr, theta float64) float64 {
		return 0.54 * math.Pow(normalToPlate(ra, theta), 0.25)
	},
}

// Same orientation, turbulent regime (Lloyd & Moran 1974, Incropera
// eq. 9.31). Ra^⅓ makes h independent of length.
var upperTurbulent = func() Correlation {
	f := func(ra, pr, theta float64) float64 {
		return 0.15 * math.Cbrt(normalToPlate(ra, theta))
	}
	return Correlation{Local: f, Average: f}
}()

// Lower surface of a heated (upper of a cooled) near-horizontal plate,
// stably stratified (Radziemska & Lewandowski 2001, Incropera 7th ed.
// eq. 9.32). For an Ra^⅕ law the local value is 3/5 of the average.
var lowerStable = Correlation{
	Local: func(ra, pr, theta float64) float64 {
		return 0.312 * math.Pow(normalToPlate(ra, theta), 0.2)
	},
	Average: func(ra, pr, theta float64) float64 {
		return 0.52 * math.Pow(normalToPlate(ra, theta), 0.2)
	},
}
