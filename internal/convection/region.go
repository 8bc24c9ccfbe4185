package convection

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Scales of the normalised (log10 Ra, θ) metric used for blending and for
// finding the nearest region: one decade of Ra counts as much as 15° of tilt.
const (
	RaScale    = 1.0
	ThetaScale = 15.0
	MaxTheta   = 90.0
)

// FaceMargin is the blend weight a region keeps on its own faces, in
// normalised units. Outside the region the weight decays exponentially
// with the same length scale, so it never drops to zero abruptly and the
// blend stays continuous across faces and through gaps.
const FaceMargin = 0.05

// Contributions below this share are left out of a classification.
const minShare = 1e-9

// A region carrying at least this share makes a point blended.
const blendShare = 0.02

// Region is one empirical correlation and the box of (Ra, φ) it is valid in.
// RaMin = 0 leaves the region unbounded below; RaMax may be +Inf.
type Region struct {
	Name        string
	Description string
	Source      string
	RaMin       float64
	RaMax       float64
	ThetaMin    float64
	ThetaMax    float64
	Correlation Correlation
}

// Contains reports whether (ra, theta) lies inside the closed bounds.
func (r Region) Contains(ra, theta float64) bool {
	return ra >= r.RaMin && ra <= r.RaMax && theta >= r.ThetaMin && theta <= r.ThetaMax
}

// Distance is the normalised distance from (ra, theta) to the region, zero
// inside it.
func (r Region) Distance(ra, theta float64) float64 {
	x := math.Log10(ra)
	dr := 0.0
	switch {
	case r.RaMin > 0 && ra < r.RaMin:
		dr = (math.Log10(r.RaMin) - x) / RaScale
	case ra > r.RaMax:
		dr = (x - math.Log10(r.RaMax)) / RaScale
	}
	dt := 0.0
	switch {
	case theta < r.ThetaMin:
		dt = (r.ThetaMin - theta) / ThetaScale
	case theta > r.ThetaMax:
		dt = (theta - r.ThetaMax) / ThetaScale
	}
	return math.Hypot(dr, dt)
}

// Depth is the signed normalised distance from (ra, theta) to the region's
// edge: inside, the distance to the nearest interior face capped at 1;
// outside, minus Distance. Interior faces are finite positive Ra bounds and
// angle bounds short of ±90°.
func (r Region) Depth(ra, theta float64) float64 {
	if !r.Contains(ra, theta) {
		return -r.Distance(ra, theta)
	}
	x := math.Log10(ra)
	d := 1.0
	if r.RaMin > 0 {
		d = math.Min(d, (x-math.Log10(r.RaMin))/RaScale)
	}
	if !math.IsInf(r.RaMax, 1) {
		d = math.Min(d, (math.Log10(r.RaMax)-x)/RaScale)
	}
	if r.ThetaMin > -MaxTheta {
		d = math.Min(d, (theta-r.ThetaMin)/ThetaScale)
	}
	if r.ThetaMax < MaxTheta {
		d = math.Min(d, (r.ThetaMax-theta)/ThetaScale)
	}
	return math.Max(d, 0)
}

// Weight is the unnormalised blend weight of the region at (ra, theta).
// Inside it is Depth+FaceMargin capped at 1; outside it is
// FaceMargin·exp(Depth/FaceMargin). Both pieces equal FaceMargin on a
// face, so the weight is positive and continuous everywhere.
func (r Region) Weight(ra, theta float64) float64 {
	return kernel(r.Depth(ra, theta))
}

func kernel(depth float64) float64 {
	if depth >= 0 {
		return math.Min(1, depth+FaceMargin)
	}
	return FaceMargin * math.Exp(depth/FaceMargin)
}

func (r Region) String() string {
	return fmt.Sprintf("%s (Ra %s–%s, θ %g°–%g°)", r.Name, formatRa(r.RaMin), formatRa(r.RaMax), r.ThetaMin, r.ThetaMax)
}

func formatRa(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsInf(v, 1):
		return "∞"
	}
	return fmt.Sprintf("%.0e", v)
}

// Table is an ordered list of regions. Order breaks ties when choosing the
// nearest region for extrapolation.
type Table []Region

// DefaultTable returns the built-in correlations for an isothermal flat
// surface. Adjacent regions overlap by one decade of Ra or 15° of tilt.
func DefaultTable() Table {
	return Table{
		{
			Name:        "vertical-laminar",
			Description: "vertical or inclined plate, laminar boundary layer",
			Source:      "Churchill & Chu (1975); Incropera eq. 9.27 with g·cos θ",
			RaMin:       0,
			RaMax:       3e9,
			ThetaMin:    -60,
			ThetaMax:    60,
			Correlation: verticalLaminar,
		},
		{
			Name:        "vertical-turbulent",
			Description: "vertical or inclined plate, transitional and turbulent",
			Source:      "Churchill & Chu (1975); Incropera eq. 9.26 with g·cos θ",
			RaMin:       3e8,
			RaMax:       1e13,
			ThetaMin:    -60,
			ThetaMax:    60,
			Correlation: verticalTurbulent,
		},
		{
			Name:        "upper-laminar",
			Description: "near-horizontal, buoyant side (hot facing up, cold facing down), laminar",
			Source:      "Lloyd & Moran (1974); Incropera eq. 9.30",
			RaMin:       1e4,
			RaMax:       2e7,
			ThetaMin:    45,
			ThetaMax:    90,
			Correlation: upperLaminar,
		},
		{
			Name:        "upper-turbulent",
			Description: "near-horizontal, buoyant side, turbulent",
			Source:      "Lloyd & Moran (1974); Incropera eq. 9.31",
			RaMin:       1e6,
			RaMax:       1e11,
			ThetaMin:    45,
			ThetaMax:    90,
			Correlation: upperTurbulent,
		},
		{
			Name:        "lower-stable",
			Description: "near-horizontal, stable side (hot facing down, cold facing up)",
			Source:      "Radziemska & Lewandowski (2001); Incropera 7th ed. eq. 9.32",
			RaMin:       1e4,
			RaMax:       1e9,
			ThetaMin:    -90,
			ThetaMax:    -45,
			Correlation: lowerStable,
		},
	}
}

// Lookup finds a region by name.
func (t Table) Lookup(name string) (Region, bool) {
	for _, r := range t {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// Names lists region names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, r := range t {
		names[i] = r.Name
	}
	return names
}

// Validate checks that the table can classify points.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errors.New("convection: empty region table")
	}
	seen := make(map[string]bool, len(t))
	for _, r := range t {
		switch {
		case r.Name == "":
			return errors.New("convection: region without a name")
		case seen[r.Name]:
			return fmt.Errorf("convection: duplicate region %q", r.Name)
		case !(r.RaMin >= 0) || !(r.RaMax > r.RaMin):
			return fmt.Errorf("convection: region %q: bad Ra bounds [%g, %g]", r.Name, r.RaMin, r.RaMax)
		case r.ThetaMin < -MaxTheta || r.ThetaMax > MaxTheta || !(r.ThetaMax > r.ThetaMin):
			return fmt.Errorf("convection: region %q: bad angle bounds [%g, %g]", r.Name, r.ThetaMin, r.ThetaMax)
		case r.Correlation.Local == nil || r.Correlation.Average == nil:
			return fmt.Errorf("convection: region %q: missing correlation", r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}

// Status describes how a classification was reached.
type Status uint8

const (
	// Proven: the point is inside a region and no other region carries
	// a noticeable share.
	Proven Status = iota
	// Blended: the point lies where regions overlap or meet.
	Blended
	// Extrapolated: no region contains the point. Regions contribute by
	// distance, so the nearest dominates; where two are about equally far
	// the value changes steeply, over a few FaceMargin, but without a step.
	Extrapolated
	// Forced: classification was bypassed by configuration.
	Forced
)

func (s Status) String() string {
	switch s {
	case Proven:
		return "proven"
	case Blended:
		return "blended"
	case Extrapolated:
		return "extrapolated"
	case Forced:
		return "forced"
	}
	return fmt.Sprintf("Status(%d)", s)
}

// Contribution is a region and its share of a blended prediction.
type Contribution struct {
	Region Region
	Weight float64
}

// Classification is the result of placing (Ra, φ) in a region table.
// Contribution weights sum to one.
type Classification struct {
	Ra            float64
	Theta         float64
	Status        Status
	Contributions []Contribution
	// Distance to the nearest region when extrapolated, in normalised units.
	Distance float64
}

// Dominant returns the contribution with the largest weight.
func (c Classification) Dominant() Region {
	best := -1.0
	var r Region
	for _, ct := range c.Contributions {
		if ct.Weight > best {
			best, r = ct.Weight, ct.Region
		}
	}
	return r
}

// Nusselt combines the contributing correlations.
func (c Classification) Nusselt(kind Kind, pr float64) float64 {
	nu := 0.0
	for _, ct := range c.Contributions {
		nu += ct.Weight * ct.Region.Correlation.Nusselt(kind, c.Ra, pr, c.Theta)
	}
	return nu
}

// Classify places (ra, theta) in the table. theta is the effective angle in
// degrees. Every region contributes by its Weight, normalised over the
// table, so a one-decade Ra overlap interpolates linearly in log10 Ra and
// regions fade out beyond their faces instead of switching off. Shares
// below 1e-9 are dropped.
//
// The result has at least one contribution for a non-empty table, except
// for a negative, infinite or NaN ra or a NaN theta, which yields an
// Extrapolated classification with none and an infinite Distance.
func (t Table) Classify(ra, theta float64) Classification {
	c := Classification{Ra: ra, Theta: theta}
	if !(ra >= 0) || math.IsInf(ra, 1) || math.IsNaN(theta) {
		c.Status = Extrapolated
		c.Distance = math.Inf(1)
		return c
	}

	depths := make([]float64, len(t))
	contained := 0
	deepest := math.Inf(-1)
	for i, r := range t {
		depths[i] = r.Depth(ra, theta)
		if r.Contains(ra, theta) {
			contained++
		}
		deepest = math.Max(deepest, depths[i])
	}
	// In a gap only depth differences matter; shifting keeps the nearest
	// region's weight from underflowing far from the table.
	shift := 0.0
	if deepest < 0 && !math.IsInf(deepest, -1) {
		shift = deepest
	}

	weights := make([]float64, len(t))
	total := 0.0
	for i, d := range depths {
		weights[i] = kernel(d - shift)
		total += weights[i]
	}
	if !(total > 0) {
		return t.nearest(c)
	}

	kept := 0.0
	for i, r := range t {
		if w := weights[i] / total; w >= minShare {
			c.Contributions = append(c.Contributions, Contribution{Region: r, Weight: w})
			kept += w
		}
	}
	significant := 0
	for i := range c.Contributions {
		c.Contributions[i].Weight /= kept
		if c.Contributions[i].Weight >= blendShare {
			significant++
		}
	}
	sort.SliceStable(c.Contributions, func(i, j int) bool {
		return c.Contributions[i].Weight > c.Contributions[j].Weight
	})

	switch {
	case contained == 0:
		c.Status = Extrapolated
		c.Distance = t.nearestDistance(ra, theta)
	case significant > 1:
		c.Status = Blended
	default:
		c.Status = Proven
	}
	return c
}

func (t Table) nearestDistance(ra, theta float64) float64 {
	best := math.Inf(1)
	for _, r := range t {
		best = math.Min(best, r.Distance(ra, theta))
	}
	return best
}

func (t Table) nearest(c Classification) Classification {
	c.Status = Extrapolated
	best := math.Inf(1)
	idx := -1
	for i, r := range t {
		if d := r.Distance(c.Ra, c.Theta); idx < 0 || d < best {
			best, idx = d, i
		}
	}
	if idx >= 0 {
		c.Contributions = []Contribution{{Region: t[idx], Weight: 1}}
		c.Distance = best
	}
	return c
}
