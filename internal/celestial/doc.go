// Package celestial defines the bodies and physical constants of the
// simulation.
//
// All internal state is SI (meters, kilograms, seconds). The package
// provides:
//
//   - [Vec3]: 3-vector arithmetic for positions, velocities, accelerations
//   - [Body]: a point mass with identity and state
//   - [Catalog] constructors: reference configurations at a fixed epoch
//
// Unit constants (G, AU, Day, Year) are exported so callers can convert
// between display units and the SI representation.
package celestial
