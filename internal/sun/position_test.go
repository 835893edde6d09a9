package sun

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TheClimateCorporation/astro-algo/internal/deltat"
	"github.com/TheClimateCorporation/astro-algo/internal/nutation"
	"github.com/TheClimateCorporation/astro-algo/internal/timeutil"
)

func TestApparentEquatorial_Reference(t *testing.T) {
	// 1989-10-18T00:04:00Z, from the reference implementation. RA comes
	// out negative because it is the raw atan2 result, not wrapped to
	// [0, 360).
	at := time.Date(1989, time.October, 18, 0, 4, 0, 0, time.UTC)

	eq := ApparentEquatorial(at)

	assert.InDelta(t, -157.218219592112, timeutil.Rad2Deg(eq.RA), 0.002)
	assert.InDelta(t, -9.531532085193, timeutil.Rad2Deg(eq.Dec), 0.002)
}

func TestApparentEquatorial_Deterministic(t *testing.T) {
	at := time.Date(2003, time.July, 7, 6, 30, 0, 0, time.UTC)

	a := ApparentEquatorial(at)
	b := ApparentEquatorial(at)

	assert.Equal(t, a, b)
}

func TestDeclinationBoundedByObliquity(t *testing.T) {
	// The Sun rides the ecliptic, so |declination| can never exceed the
	// true obliquity for that date.
	start := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 365; day++ {
		at := start.AddDate(0, 0, day)

		eq := ApparentEquatorial(at)
		tc := timeutil.JulianCenturies(deltat.UTToTD(at))
		maxDec := timeutil.Deg2Rad(nutation.TrueObliquity(tc))

		assert.LessOrEqual(t, math.Abs(eq.Dec), maxDec+1e-9,
			"declination exceeds obliquity on %s", at.Format("2006-01-02"))
	}
}

func TestDeclinationRange(t *testing.T) {
	// |dec| <= π/2 is an invariant of the asin projection.
	start := time.Date(1975, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		eq := ApparentEquatorial(start.Add(time.Duration(i) * 50 * time.Hour))
		assert.LessOrEqual(t, math.Abs(eq.Dec), math.Pi/2)
	}
}

func TestStandardAltitude(t *testing.T) {
	assert.InDelta(t, -0.833333, StandardAltitude, 1e-5)
}
