// Package astroalgo computes low-accuracy (~0.01 degree geometric)
// positions of celestial bodies and the UTC instants of their rising,
// meridian transit, and setting as seen from a point on Earth.
//
// The public API is a small set of pure functions over a Body abstraction:
//   - EquatorialCoordinates / LocalCoordinates for instantaneous sky
//     position,
//   - Passages / PassagesWithOptions for rise, transit, and set on a
//     calendar date, with optional twilight thresholds,
//   - DaylightHours as a convenience on top of Passages.
//
// The Sun is the one concrete Body; other bodies are additional
// implementations of the same interface, not planned variants of Sun.
package astroalgo

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/TheClimateCorporation/astro-algo/internal/deltat"
	"github.com/TheClimateCorporation/astro-algo/internal/sidereal"
	"github.com/TheClimateCorporation/astro-algo/internal/solver"
	"github.com/TheClimateCorporation/astro-algo/internal/sun"
	"github.com/TheClimateCorporation/astro-algo/internal/timeutil"
)

// Equatorial holds apparent equatorial coordinates in radians. RA is the
// raw atan2 result in (-π, π]; |Dec| ≤ π/2.
type Equatorial struct {
	RA  float64 // right ascension, radians
	Dec float64 // declination, radians
}

// Horizontal holds local horizon coordinates in radians. Azimuth is
// measured westward from south; Altitude may be negative.
type Horizontal struct {
	Azimuth  float64
	Altitude float64
}

// Body is a celestial body the solvers can work with: something that has
// apparent equatorial coordinates at any instant and a standard altitude
// at apparent rise/set.
type Body interface {
	// EquatorialAt returns apparent RA/Dec (radians) at a civil instant.
	EquatorialAt(t time.Time) Equatorial

	// StandardAltitude returns the geometric altitude (degrees) of the
	// body's center at apparent rise/set.
	StandardAltitude() float64
}

// Sun is the Body implementation for the Sun. It holds no state; the zero
// value is ready to use.
type Sun struct{}

func (Sun) EquatorialAt(t time.Time) Equatorial {
	eq := sun.ApparentEquatorial(t)
	return Equatorial{RA: eq.RA, Dec: eq.Dec}
}

func (Sun) StandardAltitude() float64 {
	return sun.StandardAltitude
}

// Coordinates represent an observer's location.
type Coordinates struct {
	Lat float64 // degrees, north positive
	Lon float64 // degrees, east positive (west negative, e.g. -105 for 105°W)
}

// TwilightKind selects the altitude threshold used for rise/set events.
type TwilightKind int

const (
	// TwilightNone uses the body's own standard altitude (actual rise/set).
	TwilightNone TwilightKind = iota

	// TwilightCivil corresponds to the Sun's center at -6 degrees altitude.
	TwilightCivil

	// TwilightNautical corresponds to the Sun's center at -12 degrees altitude.
	TwilightNautical

	// TwilightAstronomical corresponds to the Sun's center at -18 degrees altitude.
	TwilightAstronomical
)

// Passage holds the rising, transit, and setting instants (UTC) of a body
// for one calendar date and one location.
type Passage struct {
	Rising  time.Time
	Transit time.Time
	Setting time.Time
}

// DefaultPrecision is the convergence precision (degrees) used when
// PassageOptions.Precision is left zero.
const DefaultPrecision = 0.1

// PassageOptions tunes a passage computation. The zero value means actual
// rise/set at the default precision.
type PassageOptions struct {
	Twilight  TwilightKind
	Precision float64 // degrees; 0 means DefaultPrecision, negative is an error
}

var (
	// ErrNoConvergence is returned when the passage refinement loop fails
	// to reach the requested precision within its iteration ceiling.
	ErrNoConvergence = solver.ErrNoConvergence

	// ErrInvalidPrecision is returned for a negative convergence precision.
	ErrInvalidPrecision = errors.New("precision must be positive")

	// ErrPolarLatitude is returned for latitudes at or beyond ±90 degrees,
	// where the hour-angle formulas degenerate.
	ErrPolarLatitude = errors.New("latitude must be strictly between -90 and 90 degrees")
)

// SetLogger installs the logger used for diagnostics (currently only the
// delta-T extrapolation warning). By default diagnostics are discarded.
func SetLogger(l *zap.SugaredLogger) {
	deltat.SetLogger(l)
}

// EquatorialCoordinates returns a body's apparent RA/Dec at an instant.
// Thin alias over the Body itself, for symmetry with LocalCoordinates.
func EquatorialCoordinates(body Body, t time.Time) Equatorial {
	return body.EquatorialAt(t)
}

// StandardAltitude returns a body's standard altitude in degrees.
func StandardAltitude(body Body) float64 {
	return body.StandardAltitude()
}

// LocalCoordinates projects a body's position onto an observer's horizon
// at the given instant. Azimuth is measured westward from south, altitude
// above the horizon, both in radians.
func LocalCoordinates(body Body, t time.Time, loc Coordinates) (Horizontal, error) {
	if err := checkLatitude(loc.Lat); err != nil {
		return Horizontal{}, err
	}

	eq := body.EquatorialAt(t)

	// Apparent sidereal angle for the Dynamical Time equivalent of the
	// instant, then the local hour angle in degrees.
	theta := sidereal.ApparentGreenwich(deltat.UTToTD(t))
	hourAngle := theta + loc.Lon - timeutil.Rad2Deg(eq.RA)
	dec := timeutil.Rad2Deg(eq.Dec)

	az := math.Atan2(timeutil.SinD(hourAngle),
		timeutil.CosD(hourAngle)*timeutil.SinD(loc.Lat)-timeutil.TanD(dec)*timeutil.CosD(loc.Lat))
	alt := math.Asin(timeutil.SinD(loc.Lat)*timeutil.SinD(dec) +
		timeutil.CosD(loc.Lat)*timeutil.CosD(dec)*timeutil.CosD(hourAngle))

	return Horizontal{Azimuth: az, Altitude: alt}, nil
}

// Passages computes the rising, transit, and setting of a body on the
// given calendar date (the date's own year/month/day, anchored at 0h UT)
// using the body's standard altitude and the default precision.
//
// For circumpolar or never-rising geometry the returned Rising and
// Setting are degenerate estimates rather than an error: coincident with
// Transit when the body stays below the threshold, half a day on either
// side of it when the body never goes below. Callers that care should
// compare the three instants.
func Passages(body Body, loc Coordinates, date time.Time) (Passage, error) {
	return PassagesWithOptions(body, loc, date, PassageOptions{})
}

// PassagesWithOptions is Passages with a twilight selector and an explicit
// convergence precision.
func PassagesWithOptions(body Body, loc Coordinates, date time.Time, opts PassageOptions) (Passage, error) {
	if err := checkLatitude(loc.Lat); err != nil {
		return Passage{}, err
	}

	precision := opts.Precision
	if precision == 0 {
		precision = DefaultPrecision
	}
	if precision < 0 {
		return Passage{}, fmt.Errorf("%w: %v", ErrInvalidPrecision, opts.Precision)
	}

	threshold, err := thresholdFor(body, opts.Twilight)
	if err != nil {
		return Passage{}, err
	}

	eqFunc := func(t time.Time) (float64, float64) {
		eq := body.EquatorialAt(t)
		return eq.RA, eq.Dec
	}

	res, err := solver.Passages(eqFunc, anchorDate(date), solver.Config{
		Lon:       loc.Lon,
		Lat:       loc.Lat,
		Threshold: threshold,
		Precision: precision,
	})
	if err != nil {
		return Passage{}, err
	}

	return Passage{
		Rising:  res.Rising,
		Transit: res.Transit,
		Setting: res.Setting,
	}, nil
}

// DaylightHours returns the duration between sunrise and sunset on the
// given date at the given location, in hours.
func DaylightHours(loc Coordinates, date time.Time) (float64, error) {
	p, err := Passages(Sun{}, loc, date)
	if err != nil {
		return 0, err
	}
	return p.Setting.Sub(p.Rising).Hours(), nil
}

func thresholdFor(body Body, kind TwilightKind) (float64, error) {
	switch kind {
	case TwilightNone:
		return body.StandardAltitude(), nil
	case TwilightCivil:
		return -6.0, nil
	case TwilightNautical:
		return -12.0, nil
	case TwilightAstronomical:
		return -18.0, nil
	default:
		return 0, fmt.Errorf("unknown TwilightKind: %d", kind)
	}
}

func checkLatitude(lat float64) error {
	if math.IsNaN(lat) || math.Abs(lat) >= 90 {
		return fmt.Errorf("%w: %v", ErrPolarLatitude, lat)
	}
	return nil
}

// anchorDate takes the calendar date from the value's own location and
// pins it to 0h UT, which is the time scale the solver anchors on.
func anchorDate(date time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
