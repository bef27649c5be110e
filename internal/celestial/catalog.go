package celestial

import "math"

// Catalog is an ordered body configuration at the reference epoch. Index 0
// is always the most massive body; the order defines the indexing used by
// every query API.
type Catalog []*Body

// Masses from the JPL Horizons database [kg].
const (
	sunMass     = 1.98892e30
	mercuryMass = 3.30114e23
	venusMass   = 4.86747e24
	earthMass   = 5.97237e24
	moonMass    = 7.342e22
	marsMass    = 6.41712e23
	jupiterMass = 1.89819e27
	saturnMass  = 5.6834e26
	uranusMass  = 8.6810e25
	neptuneMass = 1.02413e26
	plutoMass   = 1.303e22
)

// perihelion returns the heliocentric distance and vis-viva speed for an
// orbit of semi-major axis a and eccentricity e at its closest approach.
func perihelion(central, a, e float64) (r, v float64) {
	r = a * (1 - e)
	v = math.Sqrt(G * central * (2/r - 1/a))
	return r, v
}

// circular returns the circular orbital speed at distance r from a body of
// mass m.
func circular(m, r float64) float64 {
	return math.Sqrt(G * m / r)
}

func body(name string, mass, radius float64, pos, vel Vec3, trailCap int) *Body {
	return &Body{
		Name:     name,
		Mass:     mass,
		Radius:   radius,
		Position: pos,
		Velocity: vel,
		TrailCap: trailCap,
	}
}

// planet places a planet at perihelion on the +X axis, moving along +Y.
func planet(name string, mass, radius, a, e float64, trailCap int) *Body {
	r, v := perihelion(sunMass, a, e)
	return body(name, mass, radius, Vec3{X: r}, Vec3{Y: v}, trailCap)
}

// moonOf places a moon at distance d from its parent in direction dir
// (unit vector in the orbital plane), on a circular parent-relative orbit.
// sign -1 makes the orbit retrograde.
func moonOf(parent *Body, name string, mass, radius, d, sign float64, dir Vec3) *Body {
	v := circular(parent.Mass, d) * sign
	// velocity perpendicular to dir, counter-clockwise for sign > 0
	perp := Vec3{X: -dir.Y, Y: dir.X}
	return body(name, mass, radius,
		parent.Position.Add(dir.Scale(d)),
		parent.Velocity.Add(perp.Scale(v)),
		100)
}

// SolarSystem builds the full reference configuration: the Sun, the eight
// planets, Pluto, and the major moons. Planets start at perihelion with
// vis-viva speeds; moons on circular parent-relative orbits; Pluto carries
// its 17.16 degree inclination.
func SolarSystem() Catalog {
	sun := body("Sun", sunMass, 6.96340e8, Vec3{}, Vec3{}, 10)

	mercury := planet("Mercury", mercuryMass, 2.4397e6, 0.387098*AU, 0.205630, 500)
	venus := planet("Venus", venusMass, 6.0518e6, 0.723332*AU, 0.006772, 800)
	earth := planet("Earth", earthMass, 6.371e6, 1.000001018*AU, 0.0167086, 1000)
	moon := moonOf(earth, "Moon", moonMass, 1.7371e6, 3.84399e8*(1-0.0549), 1, Vec3{X: 1})
	moon.TrailCap = 200
	mars := planet("Mars", marsMass, 3.3895e6, 1.523679*AU, 0.0934, 1500)

	jupiter := planet("Jupiter", jupiterMass, 6.9911e7, 5.2044*AU, 0.0489, 2000)
	io := moonOf(jupiter, "Io", 8.9319e22, 1.8216e6, 4.217e8, 1, Vec3{X: 1})
	europa := moonOf(jupiter, "Europa", 4.7998e22, 1.5608e6, 6.711e8, 1, Vec3{X: -1})
	ganymede := moonOf(jupiter, "Ganymede", 1.4819e23, 2.6341e6, 1.0704e9, 1, Vec3{Y: 1})
	callisto := moonOf(jupiter, "Callisto", 1.0759e23, 2.4103e6, 1.8827e9, 1, Vec3{Y: -1})

	saturn := planet("Saturn", saturnMass, 5.8232e7, 9.5826*AU, 0.0565, 2000)
	titan := moonOf(saturn, "Titan", 1.3452e23, 2.5747e6, 1.22187e9, 1, Vec3{X: 1})

	uranus := planet("Uranus", uranusMass, 2.5362e7, 19.19126*AU, 0.04717, 2000)
	neptune := planet("Neptune", neptuneMass, 2.4622e7, 30.07*AU, 0.008678, 2000)
	// Triton's orbit is retrograde.
	triton := moonOf(neptune, "Triton", 2.139e22, 1.3534e6, 3.5476e8, -1, Vec3{X: 1})

	pluto := inclinedPluto()

	return Catalog{
		sun,
		mercury, venus, earth, moon, mars,
		jupiter, io, europa, ganymede, callisto,
		saturn, titan,
		uranus, neptune, triton,
		pluto,
	}
}

// inclinedPluto places Pluto at perihelion, phased 45 degrees around its
// inclined orbital plane so the inclination is visible.
func inclinedPluto() *Body {
	const (
		a   = 39.482 * AU
		e   = 0.2488
		inc = 17.16 * math.Pi / 180
	)
	r, v := perihelion(sunMass, a, e)
	phase := 45.0 * math.Pi / 180
	sinP, cosP := math.Sincos(phase)
	sinI, cosI := math.Sincos(inc)
	pos := Vec3{
		X: r * cosP,
		Y: r * sinP * cosI,
		Z: r * sinP * sinI,
	}
	vel := Vec3{
		X: -v * sinP,
		Y: v * cosP * cosI,
		Z: v * cosP * sinI,
	}
	return body("Pluto", plutoMass, 1.1883e6, pos, vel, 2000)
}

// InnerSystem builds the Sun and the four inner planets. Moon-free, so it
// stays well resolved at day-scale timesteps; the default configuration for
// long diagnostic runs.
func InnerSystem() Catalog {
	return Catalog{
		body("Sun", sunMass, 6.96340e8, Vec3{}, Vec3{}, 10),
		planet("Mercury", mercuryMass, 2.4397e6, 0.387098*AU, 0.205630, 500),
		planet("Venus", venusMass, 6.0518e6, 0.723332*AU, 0.006772, 800),
		planet("Earth", earthMass, 6.371e6, 1.000001018*AU, 0.0167086, 1000),
		planet("Mars", marsMass, 3.3895e6, 1.523679*AU, 0.0934, 1500),
	}
}

// TwoBody builds a Sun-Earth pair with Earth on a circular 1 AU orbit. The
// minimal configuration with a known analytic solution.
func TwoBody() Catalog {
	r := 1.0 * AU
	v := circular(sunMass, r)
	return Catalog{
		body("Sun", sunMass, 6.96340e8, Vec3{}, Vec3{}, 10),
		body("Earth", earthMass, 6.371e6, Vec3{X: r}, Vec3{Y: v}, 1000),
	}
}

// ByName returns the named catalog constructor, or nil for an unknown name.
func ByName(name string) Catalog {
	switch name {
	case "solar":
		return SolarSystem()
	case "inner":
		return InnerSystem()
	case "twobody":
		return TwoBody()
	default:
		return nil
	}
}

// CatalogNames lists the available catalog names.
func CatalogNames() []string {
	return []string{"solar", "inner", "twobody"}
}
