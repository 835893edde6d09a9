// Package sun implements the low-accuracy apparent solar position model:
// geocentric right ascension and declination good to roughly 0.01 degrees,
// which is what daylength and sun-angle estimation need.
package sun

import (
	"math"
	"time"

	"github.com/TheClimateCorporation/astro-algo/internal/deltat"
	"github.com/TheClimateCorporation/astro-algo/internal/nutation"
	"github.com/TheClimateCorporation/astro-algo/internal/timeutil"
)

// StandardAltitude is the geometric altitude (degrees) of the Sun's center
// at apparent rise/set: -50 arcminutes, covering the solar radius plus
// standard refraction at the horizon.
const StandardAltitude = -5.0 / 6.0

// Equatorial holds apparent geocentric equatorial coordinates in radians.
// RA is the raw atan2 result in (-π, π]; it is deliberately not wrapped
// to [0, 2π).
type Equatorial struct {
	RA  float64 // right ascension, radians
	Dec float64 // declination, radians
}

// ApparentEquatorial returns the Sun's apparent RA/Dec at the given civil
// instant. The instant is converted to Dynamical Time internally before
// the orbital polynomials are evaluated.
func ApparentEquatorial(t time.Time) Equatorial {
	tc := timeutil.JulianCenturies(deltat.UTToTD(t))

	// Mean geometric longitude and mean anomaly, degrees.
	l0 := timeutil.Normalize360(280.46646 + 36000.76983*tc + 0.0003032*tc*tc)
	m := timeutil.Normalize360(357.52911 + 35999.05029*tc - 0.0001537*tc*tc)

	// Equation of center, degrees.
	c := (1.914602-0.004817*tc-0.000014*tc*tc)*timeutil.SinD(m) +
		(0.019993-0.000101*tc)*timeutil.SinD(2*m) +
		0.000289*timeutil.SinD(3*m)

	// True longitude, then apparent longitude: aberration plus nutation.
	trueLon := l0 + c
	lambda := trueLon - 0.00569 + nutation.InLongitude(tc)

	eps := timeutil.Deg2Rad(nutation.TrueObliquity(tc))
	lam := timeutil.Deg2Rad(lambda)

	ra := math.Atan2(math.Cos(eps)*math.Sin(lam), math.Cos(lam))
	dec := math.Asin(math.Sin(eps) * math.Sin(lam))

	return Equatorial{RA: ra, Dec: dec}
}
