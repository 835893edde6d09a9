package deltat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSeconds_TableValues(t *testing.T) {
	tests := []struct {
		year int
		want float64
	}{
		{1620, 121},  // first entry
		{1700, 7},    // flat stretch
		{1880, -5.5}, // negative stretch
		{1990, 56.9},
		{2010, 66.1}, // last entry
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Seconds(tt.year), 1e-9, "Seconds(%d)", tt.year)
	}
}

func TestSeconds_OddYearInterpolation(t *testing.T) {
	// 1989 sits between the 1988 (55.8s) and 1990 (56.9s) entries.
	assert.InDelta(t, 56.35, Seconds(1989), 1e-9)
}

func TestSeconds_BeforeTable(t *testing.T) {
	assert.Zero(t, Seconds(1619))
	assert.Zero(t, Seconds(1000))
}

func TestSeconds_AfterTableClampsAndWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core).Sugar())
	defer SetLogger(zap.NewNop().Sugar())

	got := Seconds(2050)

	assert.InDelta(t, 66.1, got, 1e-9, "should clamp to the last table entry")
	require.Equal(t, 1, logs.Len(), "expected exactly one warning")
	entry := logs.All()[0]
	assert.Contains(t, entry.Message, "delta-T")
	assert.Equal(t, int64(2050), entry.ContextMap()["year"])
}

func TestUTTDConversions(t *testing.T) {
	ut := time.Date(1989, time.October, 17, 0, 0, 0, 0, time.UTC)

	td := UTToTD(ut)
	assert.InDelta(t, 56.35, td.Sub(ut).Seconds(), 1e-6)

	// TDToUT uses the same year's offset, so the round trip is exact here.
	assert.True(t, TDToUT(td).Equal(ut))
}
