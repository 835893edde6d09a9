// Package timeutil holds the calendar and angle plumbing shared by the
// astronomical models: Julian day arithmetic, degree/radian conversions,
// and sexagesimal helpers. Every function documents its units; nothing
// here guesses them from the value.
package timeutil

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00:00).
const J2000 = 2451545.0

// JulianDay returns the Julian Day for t (UTC), fractional part encoding
// the time of day. Standard Gregorian/Julian calendar algorithm.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	y := year
	m := int(month)

	if m <= 2 {
		y -= 1
		m += 12
	}

	// The Gregorian correction applies from 1582-10-15; earlier civil
	// dates are Julian-calendar dates.
	B := 0
	if year > 1582 || (year == 1582 && (month > time.October || (month == time.October && day >= 15))) {
		A := y / 100
		B = 2 - A + A/4
	}

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(B) - 1524.5 +
		hour/24.0

	return jd
}

// JulianCenturies returns centuries since J2000.0 (negative before 2000).
func JulianCenturies(t time.Time) float64 {
	return (JulianDay(t) - J2000) / 36525.0
}

// -----------------------------
// Basic degree/radian helpers and trig with degree inputs.
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

func TanD(deg float64) float64 {
	return math.Tan(Deg2Rad(deg))
}

// Normalize360 reduces a degree angle to [0, 360).
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// -----------------------------
// Sexagesimal conversions.
// -----------------------------

// SexagesimalToDegrees converts an arc angle given as degrees, arcminutes
// and arcseconds into decimal degrees. The sign of deg carries the sign of
// the whole angle; min and sec are magnitudes.
func SexagesimalToDegrees(deg, min, sec float64) float64 {
	frac := min/60.0 + sec/3600.0
	if math.Signbit(deg) {
		return deg - frac
	}
	return deg + frac
}

// HoursToDegrees converts a time angle given as hours, minutes and seconds
// into decimal degrees (1 hour = 15 degrees).
func HoursToDegrees(h, min, sec float64) float64 {
	return SexagesimalToDegrees(h, min, sec) * 15.0
}
