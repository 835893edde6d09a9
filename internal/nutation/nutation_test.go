package nutation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TheClimateCorporation/astro-algo/internal/timeutil"
)

// t1987 is centuries-since-J2000 for 1987-04-10, the classic worked example.
func t1987() float64 {
	return timeutil.JulianCenturies(time.Date(1987, time.April, 10, 0, 0, 0, 0, time.UTC))
}

func TestInLongitude(t *testing.T) {
	// Reference value -3.778 arcsec; the single-term model agrees with it
	// to three decimal places of the degree value.
	assert.InDelta(t, -3.778/3600.0, InLongitude(t1987()), 0.0005)
}

func TestInObliquity(t *testing.T) {
	// Reference value +9.443 arcsec, same tolerance rationale.
	assert.InDelta(t, 9.443/3600.0, InObliquity(t1987()), 0.0005)
}

func TestMeanObliquity(t *testing.T) {
	tc := t1987()
	assert.InDelta(t, 23.4409, MeanObliquity(tc), 0.001)

	// At the epoch the polynomial reduces to its base value.
	assert.InDelta(t, 23.43929111, MeanObliquity(0), 1e-8)
}

func TestTrueObliquity(t *testing.T) {
	assert.InDelta(t, 23.4436, TrueObliquity(t1987()), 0.001)
}

func TestAmplitudesBound(t *testing.T) {
	// Nutation corrections never exceed their term amplitudes, across a
	// few centuries around the epoch.
	for tc := -2.0; tc <= 2.0; tc += 0.01 {
		assert.LessOrEqual(t, absf(InLongitude(tc)), 0.00478+1e-12)
		assert.LessOrEqual(t, absf(InObliquity(tc)), 0.00256+1e-12)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
