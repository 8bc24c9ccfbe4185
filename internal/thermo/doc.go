// Package thermo provides the shared vocabulary for property and heat-transfer
// calculations.
//
// The package defines the types every calculation package depends on:
//
//   - [FluidPropertySource]: capability interface for temperature-dependent
//     fluid properties
//   - [Property]: enumeration of the five properties a source provides
//   - [Properties]: a snapshot of all properties at one temperature
//   - Physical constants ([StandardGravity], [GasConstant], [StandardPressure])
//   - The error taxonomy ([ErrDomain], [ErrComposition], [ErrUnknownSpecies],
//     [ErrOutOfRange])
//
// # Example
//
//	air, _ := fluid.NewAir(thermo.StandardPressure)
//	props, _ := thermo.Evaluate(air, 300)
//	fmt.Println(props.Prandtl())
//
// # Thread Safety
//
// Nothing in this package holds mutable state. A FluidPropertySource is
// expected to be reentrant; all sources in this module are.
package thermo
