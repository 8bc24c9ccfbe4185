package convection

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/san-kum/auxi/internal/thermo"
)

// Option configures an Engine.
type Option func(*Engine)

// WithExtrapolation controls what happens in gaps between regions. When
// disabled, evaluations there fail with an OutOfRangeError. Enabled by default.
func WithExtrapolation(allow bool) Option {
	return func(e *Engine) {
		e.allowExtrapolation = allow
	}
}

// WithForcedRegion bypasses classification and always uses the named region.
func WithForcedRegion(name string) Option {
	return func(e *Engine) {
		e.forced = name
	}
}

// WithFilmTemperature evaluates fluid properties at (Ts+Tf)/2 instead of Tf.
func WithFilmTemperature() Option {
	return func(e *Engine) {
		e.film = true
	}
}

// WithRegions replaces the default region table.
func WithRegions(t Table) Option {
	return func(e *Engine) {
		e.regions = append(Table(nil), t...)
	}
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Engine evaluates natural-convection correlations for one fluid.
type Engine struct {
	fluid              thermo.FluidPropertySource
	regions            Table
	allowExtrapolation bool
	forced             string
	forcedRegion       Region
	film               bool
	log                *zap.SugaredLogger
}

// New builds an engine for fluid. It fails on a nil fluid, an invalid
// region table or an unknown forced region.
func New(fluid thermo.FluidPropertySource, opts ...Option) (*Engine, error) {
	if fluid == nil {
		return nil, errors.New("convection: nil fluid property source")
	}
	e := &Engine{
		fluid:              fluid,
		regions:            DefaultTable(),
		allowExtrapolation: true,
		log:                zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.regions.Validate(); err != nil {
		return nil, err
	}
	if e.forced != "" {
		r, ok := e.regions.Lookup(e.forced)
		if !ok {
			return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownRegion, e.forced, e.regions.Names())
		}
		e.forcedRegion = r
	}
	return e, nil
}

// Regions returns a copy of the engine's region table.
func (e *Engine) Regions() Table {
	return append(Table(nil), e.regions...)
}

// AllowsExtrapolation reports whether gaps are evaluated or rejected.
func (e *Engine) AllowsExtrapolation() bool {
	return e.allowExtrapolation
}

// ForcedRegion returns the forced region name, or "" when classifying.
func (e *Engine) ForcedRegion() string {
	return e.forced
}

// Result is a full evaluation of one operating point.
type Result struct {
	Kind           Kind
	Nu             float64
	H              float64
	Gr             float64
	Ra             float64
	Pr             float64
	Theta          float64 // effective angle, degrees
	Properties     thermo.Properties
	Classification Classification
	Forced         bool
}

// Extrapolated reports whether any correlation was used outside its range.
func (r Result) Extrapolated() bool {
	return r.Classification.Status == Extrapolated
}

// Region names the dominant correlation region.
func (r Result) Region() string {
	return r.Classification.Dominant().Name
}

// EffectiveAngle folds the heating direction into the inclination so that
// positive angles always denote the buoyancy-unstable side.
func EffectiveAngle(theta, ts, tf float64) float64 {
	if ts < tf {
		return -theta
	}
	return theta
}

func validate(length, theta, ts, tf float64) error {
	if err := thermo.RequirePositive("length", length); err != nil {
		return err
	}
	if math.IsNaN(theta) || theta < -MaxTheta || theta > MaxTheta {
		return &thermo.DomainError{Quantity: "inclination", Value: theta, Reason: "must be within [-90, 90] degrees"}
	}
	if err := thermo.RequirePositive("surface temperature", ts); err != nil {
		return err
	}
	return thermo.RequirePositive("fluid temperature", tf)
}

func (e *Engine) propertyTemperature(ts, tf float64) float64 {
	if e.film {
		return (ts + tf) / 2
	}
	return tf
}

func (e *Engine) dimensionless(length, ts, tf float64) (float64, thermo.Properties, error) {
	p, err := thermo.Evaluate(e.fluid, e.propertyTemperature(ts, tf))
	if err != nil {
		return 0, thermo.Properties{}, fmt.Errorf("convection: fluid properties: %w", err)
	}
	return p.Rayleigh(length, ts-tf), p, nil
}

// Dimensionless returns the Rayleigh and Prandtl numbers for a surface of
// characteristic length L at ts in a fluid at tf.
func (e *Engine) Dimensionless(length, ts, tf float64) (ra, pr float64, err error) {
	if err := validate(length, 0, ts, tf); err != nil {
		return 0, 0, err
	}
	ra, p, err := e.dimensionless(length, ts, tf)
	if err != nil {
		return 0, 0, err
	}
	return ra, p.Prandtl(), nil
}

// Classify places (ra, phi) in the engine's table, honouring the forced
// region. It never fails; gaps are reported with status Extrapolated.
func (e *Engine) Classify(ra, phi float64) Classification {
	if e.forced != "" {
		return Classification{
			Ra:            ra,
			Theta:         phi,
			Status:        Forced,
			Contributions: []Contribution{{Region: e.forcedRegion, Weight: 1}},
		}
	}
	return e.regions.Classify(ra, phi)
}

// Evaluate computes the requested Nusselt number and heat-transfer
// coefficient for a surface of length L inclined theta degrees from
// vertical at ts in a fluid at tf.
func (e *Engine) Evaluate(kind Kind, length, theta, ts, tf float64) (Result, error) {
	if err := validate(length, theta, ts, tf); err != nil {
		return Result{}, err
	}
	ra, p, err := e.dimensionless(length, ts, tf)
	if err != nil {
		return Result{}, err
	}
	phi := EffectiveAngle(theta, ts, tf)
	c := e.Classify(ra, phi)

	switch c.Status {
	case Blended:
		e.log.Debugw("blending correlations", "ra", ra, "phi", phi, "regions", len(c.Contributions), "dominant", c.Dominant().Name)
	case Extrapolated:
		// A surface at fluid temperature has no buoyancy and every
		// correlation reduces to its conduction limit.
		if !e.allowExtrapolation && ra > 0 {
			return Result{}, &OutOfRangeError{Ra: ra, Theta: phi, Nearest: c.Dominant()}
		}
		e.log.Debugw("extrapolating correlation", "ra", ra, "phi", phi, "region", c.Dominant().Name, "distance", c.Distance)
	}

	nu := c.Nusselt(kind, p.Prandtl())
	return Result{
		Kind:           kind,
		Nu:             nu,
		H:              nu * p.K / length,
		Gr:             p.Grashof(length, ts-tf),
		Ra:             ra,
		Pr:             p.Prandtl(),
		Theta:          phi,
		Properties:     p,
		Classification: c,
		Forced:         c.Status == Forced,
	}, nil
}

// NusseltLocal returns Nu_x at the trailing edge x = L.
func (e *Engine) NusseltLocal(length, theta, ts, tf float64) (float64, error) {
	r, err := e.Evaluate(Local, length, theta, ts, tf)
	return r.Nu, err
}

// NusseltAverage returns Nu_L averaged over the surface.
func (e *Engine) NusseltAverage(length, theta, ts, tf float64) (float64, error) {
	r, err := e.Evaluate(Average, length, theta, ts, tf)
	return r.Nu, err
}

// CoefficientLocal returns h_x = Nu_x·k/L in W/(m²·K).
func (e *Engine) CoefficientLocal(length, theta, ts, tf float64) (float64, error) {
	r, err := e.Evaluate(Local, length, theta, ts, tf)
	return r.H, err
}

// CoefficientAverage returns h_L = Nu_L·k/L in W/(m²·K).
func (e *Engine) CoefficientAverage(length, theta, ts, tf float64) (float64, error) {
	r, err := e.Evaluate(Average, length, theta, ts, tf)
	return r.H, err
}

// HeatRate returns q = h_L·A·(Ts − Tf) in watts. Positive values flow
// from the surface into the fluid.
func (e *Engine) HeatRate(length, theta, ts, tf, area float64) (float64, error) {
	if err := thermo.RequirePositive("area", area); err != nil {
		return 0, err
	}
	r, err := e.Evaluate(Average, length, theta, ts, tf)
	if err != nil {
		return 0, err
	}
	return r.H * area * (ts - tf), nil
}
