package celestial

// Physical constants (CODATA 2018), SI units.
const (
	// G is the gravitational constant [m^3/(kg*s^2)].
	G = 6.67430e-11

	// AU is the astronomical unit [m].
	AU = 1.495978707e11

	// Day is one day [s].
	Day = 86400.0

	// Year is one Julian year [s].
	Year = 365.25 * Day
)
