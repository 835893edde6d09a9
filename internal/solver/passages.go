// Package solver finds the rising, meridian transit, and setting instants
// of a celestial body on a calendar date.
//
// The method is the classical three-day interpolation one: tabulate the
// body's apparent RA/Dec at 0h Dynamical Time on the date and its two
// neighbors, estimate the event fractions of the day from the sidereal
// angle and the hour angle at the altitude threshold, then run a
// fixed-point refinement until the corrections fall below the requested
// precision.
package solver

import (
	"errors"
	"math"
	"time"

	"github.com/TheClimateCorporation/astro-algo/internal/deltat"
	"github.com/TheClimateCorporation/astro-algo/internal/sidereal"
	"github.com/TheClimateCorporation/astro-algo/internal/timeutil"
)

// EquatorialFunc supplies a body's apparent right ascension and
// declination (radians) at a civil instant.
type EquatorialFunc func(t time.Time) (raRad, decRad float64)

// Config holds the observer location and solver tuning.
type Config struct {
	Lon       float64 // degrees east
	Lat       float64 // degrees north
	Threshold float64 // event altitude, degrees
	Precision float64 // convergence precision, degrees, > 0
}

// Result holds the three UTC event instants for one calendar date.
//
// When the body never crosses the threshold on that date (circumpolar or
// never-rising), Rising and Setting are degenerate estimates: coincident
// with Transit, or a half day on either side of it. No error is returned
// for that case.
type Result struct {
	Rising  time.Time
	Transit time.Time
	Setting time.Time
}

// ErrNoConvergence is returned when the refinement loop fails to reach the
// requested precision within the iteration ceiling.
var ErrNoConvergence = errors.New("passage refinement did not converge")

// maxIterations bounds the refinement loop. The loop normally converges in
// two or three rounds; the ceiling guards against pathological precision
// values.
const maxIterations = 100

// siderealRate is the advance of the Greenwich sidereal angle per UT day,
// in degrees.
const siderealRate = 360.985647

// Passages computes rising, transit, and setting (UTC) for the calendar
// day containing date (taken in UTC at 0h).
func Passages(eq EquatorialFunc, date time.Time, cfg Config) (Result, error) {
	year, month, day := date.UTC().Date()
	anchor := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	theta0 := sidereal.ApparentGreenwich(anchor)
	dtDays := deltat.ForTime(anchor).Seconds() / 86400.0

	// Apparent RA/Dec at 0h Dynamical Time of the previous, anchor, and
	// following days, in degrees.
	var ra, dec [3]float64
	for i := -1; i <= 1; i++ {
		r, d := eq(deltat.TDToUT(anchor.AddDate(0, 0, i)))
		ra[i+1] = timeutil.Rad2Deg(r)
		dec[i+1] = timeutil.Rad2Deg(d)
	}

	// Make the RA samples monotonic across the 0/360 discontinuity so the
	// quadratic interpolation below sees a smooth sequence.
	if ra[0] > ra[1] {
		ra[0] -= 360
	}
	if ra[2] < ra[1] {
		ra[2] += 360
	}

	// Hour angle at the event altitude. A ratio outside [-1, 1] means the
	// body never crosses the threshold that day; clamp instead of failing
	// and let the refinement produce degenerate estimates.
	cosH0 := (timeutil.SinD(cfg.Threshold) - timeutil.SinD(cfg.Lat)*timeutil.SinD(dec[1])) /
		(timeutil.CosD(cfg.Lat) * timeutil.CosD(dec[1]))

	var h0 float64
	degenerate := false
	switch {
	case cosH0 > 1:
		h0 = 0
		degenerate = true
	case cosH0 < -1:
		h0 = 180
		degenerate = true
	default:
		h0 = timeutil.Rad2Deg(math.Acos(cosH0))
	}

	// Initial day fractions. The transit estimate keeps the truncated
	// remainder of the raw value, so the usual negative fraction refines
	// on its own branch and is folded into the anchor day only on output.
	// Rise and set start from the folded estimate and carry the integer
	// day they spill into, so a set after midnight stays on the next date.
	rawTransit := (ra[1] - cfg.Lon - theta0) / 360.0
	mTransit := math.Mod(rawTransit, 1.0)
	riseOffset, mRise := splitDay(frac(rawTransit) - h0/360.0)
	setOffset, mSet := splitDay(frac(rawTransit) + h0/360.0)

	// hourAngle returns the local hour angle (degrees, reduced to
	// (-180, 180]) and interpolated declination at day fraction m.
	hourAngle := func(m float64) (h, decI float64) {
		n := m + dtDays
		raI := interpolate(ra, n)
		decI = interpolate(dec, n)
		theta := theta0 + siderealRate*m
		h = wrapSigned(theta + cfg.Lon - raI)
		return h, decI
	}

	transitCorrection := func(m float64) float64 {
		h, _ := hourAngle(m)
		return -h / 360.0
	}

	riseSetCorrection := func(m float64) float64 {
		h, decI := hourAngle(m)
		alt := timeutil.Rad2Deg(math.Asin(
			timeutil.SinD(cfg.Lat)*timeutil.SinD(decI) +
				timeutil.CosD(cfg.Lat)*timeutil.CosD(decI)*timeutil.CosD(h)))
		return (alt - cfg.Threshold) /
			(360.0 * timeutil.CosD(decI) * timeutil.CosD(cfg.Lat) * timeutil.SinD(h))
	}

	converged := false
	for iter := 0; iter < maxIterations; iter++ {
		dTransit := transitCorrection(mTransit)
		mTransit += dTransit
		maxCorr := math.Abs(dTransit)

		// In the degenerate case the rise/set hour angle is pinned at the
		// clamped value; the altitude correction has no root to find and
		// its denominator vanishes, so only the transit is refined and the
		// estimates are re-derived from it below.
		if !degenerate {
			dRise := riseSetCorrection(mRise)
			dSet := riseSetCorrection(mSet)
			mRise += dRise
			mSet += dSet
			maxCorr = math.Max(maxCorr, math.Max(math.Abs(dRise), math.Abs(dSet)))
		}

		if maxCorr*360.0 < cfg.Precision {
			converged = true
			break
		}
	}
	if !converged {
		return Result{}, ErrNoConvergence
	}

	if degenerate {
		riseOffset, mRise = splitDay(frac(mTransit) - h0/360.0)
		setOffset, mSet = splitDay(frac(mTransit) + h0/360.0)
	}

	return Result{
		Rising:  instantAt(anchor, mRise, riseOffset),
		Transit: instantAt(anchor, frac(mTransit), 0),
		Setting: instantAt(anchor, mSet, setOffset),
	}, nil
}

// interpolate evaluates the quadratic through three equally spaced samples
// at fractional position n from the middle sample (in units of the sample
// spacing).
func interpolate(y [3]float64, n float64) float64 {
	a := y[1] - y[0]
	b := y[2] - y[1]
	c := b - a
	return y[1] + n/2.0*(a+b+n*c)
}

// frac returns x reduced to [0, 1).
func frac(x float64) float64 {
	return x - math.Floor(x)
}

// splitDay reduces a day fraction to [0, 1) and returns the whole days
// removed, so day-boundary crossings are preserved.
func splitDay(m float64) (offset int, fraction float64) {
	f := math.Floor(m)
	return int(f), m - f
}

// wrapSigned reduces a degree angle to (-180, 180].
func wrapSigned(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}

// instantAt converts a converged day fraction plus carried day offset back
// to a UTC instant, at millisecond resolution.
func instantAt(anchor time.Time, m float64, offset int) time.Time {
	ms := math.Round((m + float64(offset)) * 86400.0 * 1000.0)
	return anchor.Add(time.Duration(ms) * time.Millisecond)
}
