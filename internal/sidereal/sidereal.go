// Package sidereal computes the Greenwich sidereal angle, mean and
// apparent, in degrees normalized to [0, 360).
//
// The polynomials accept the civil instant directly; callers that need the
// angle for a Dynamical Time equivalent shift the instant themselves.
package sidereal

import (
	"time"

	"github.com/TheClimateCorporation/astro-algo/internal/nutation"
	"github.com/TheClimateCorporation/astro-algo/internal/timeutil"
)

// MeanGreenwich returns Greenwich mean sidereal time at t as an angle in
// degrees, [0, 360).
func MeanGreenwich(t time.Time) float64 {
	jd := timeutil.JulianDay(t)
	tc := (jd - timeutil.J2000) / 36525.0
	theta := 280.46061837 +
		360.98564736629*(jd-timeutil.J2000) +
		0.000387933*tc*tc -
		tc*tc*tc/38710000.0
	return timeutil.Normalize360(theta)
}

// ApparentGreenwich returns Greenwich apparent sidereal time at t in
// degrees, [0, 360): mean sidereal time plus the nutation-in-longitude
// correction projected onto the equator.
func ApparentGreenwich(t time.Time) float64 {
	tc := timeutil.JulianCenturies(t)
	corr := nutation.InLongitude(tc) * timeutil.CosD(nutation.TrueObliquity(tc))
	return timeutil.Normalize360(MeanGreenwich(t) + corr)
}
