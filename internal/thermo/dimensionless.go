package thermo

import "math"

// Dimensionless groups of heat and mass transfer. Inputs are in SI units;
// lengths are characteristic lengths in m.

// Grashof number g·β·ΔT·L³/ν², the ratio of buoyancy to viscous forces.
// The sign follows β·ΔT.
func Grashof(length, beta, deltaT, nu float64) float64 {
	return StandardGravity * beta * deltaT * length * length * length / (nu * nu)
}

// PrandtlNumber cp·μ/k, the ratio of momentum to thermal diffusivity.
func PrandtlNumber(cp, mu, k float64) float64 {
	return cp * mu / k
}

// Reynolds number ρ·v·L/μ for a flow at velocity v.
func Reynolds(rho, velocity, length, mu float64) float64 {
	return rho * velocity * length / mu
}

// Rayleigh number Gr·Pr.
func Rayleigh(gr, pr float64) float64 {
	return gr * pr
}

// Nusselt number h·L/k for a heat-transfer coefficient h.
func Nusselt(h, length, k float64) float64 {
	return h * length / k
}

// Sherwood number k_m·L/D for a mass-transfer coefficient k_m in m/s and
// a diffusivity D in m²/s.
func Sherwood(km, length, diffusivity float64) float64 {
	return km * length / diffusivity
}

// Grashof evaluates Gr for a surface of characteristic length L at a
// temperature difference deltaT from the fluid.
func (p Properties) Grashof(length, deltaT float64) float64 {
	return Grashof(length, p.Beta, deltaT, p.KinematicViscosity())
}

// Rayleigh evaluates the magnitude of Ra = Gr·Pr. Buoyancy direction is
// carried separately by the effective angle.
func (p Properties) Rayleigh(length, deltaT float64) float64 {
	return math.Abs(Rayleigh(p.Grashof(length, deltaT), p.Prandtl()))
}
