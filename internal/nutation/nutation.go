// Package nutation models the short-period wobble of Earth's rotation axis
// and the obliquity of the ecliptic, to the single largest periodic term.
// That is plenty for the ~0.01 degree solar work this module targets.
//
// All functions take t in Julian centuries since J2000.0 (negative before
// 2000) and return degrees unless noted otherwise.
package nutation

import (
	"math"

	"github.com/TheClimateCorporation/astro-algo/internal/timeutil"
)

// ascendingNode returns the longitude of the Moon's ascending node in
// radians. This is the argument of the dominant nutation term.
func ascendingNode(t float64) float64 {
	omega := 125.04452 - 1934.136261*t + 0.0020708*t*t + t*t*t/450000.0
	return timeutil.Deg2Rad(omega)
}

// InLongitude returns the nutation in longitude (Δψ) in degrees.
// Single-term approximation, amplitude about 0.00478 degrees (17.2").
func InLongitude(t float64) float64 {
	return -0.00478 * math.Sin(ascendingNode(t))
}

// InObliquity returns the nutation in obliquity (Δε) in degrees.
// Single-term approximation, amplitude about 0.00256 degrees (9.2").
func InObliquity(t float64) float64 {
	return 0.00256 * math.Cos(ascendingNode(t))
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees,
// from the cubic polynomial anchored at 23°26'21.448".
func MeanObliquity(t float64) float64 {
	return timeutil.SexagesimalToDegrees(23, 26, 21.448) -
		(46.8150*t+0.00059*t*t-0.001813*t*t*t)/3600.0
}

// TrueObliquity returns the mean obliquity corrected for nutation, degrees.
func TrueObliquity(t float64) float64 {
	return MeanObliquity(t) + InObliquity(t)
}
