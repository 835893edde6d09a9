// Package deltat provides the TD−UT (delta-T) correction used to convert
// between civil Universal Time and the uniform Dynamical Time scale the
// orbital formulas run on.
//
// The table below is the standard historical record, tabulated every two
// years; years between entries are interpolated linearly. Years before the
// table start are treated as zero offset. Years past the table end are
// clamped to the last entry and a warning is logged, since the real offset
// keeps drifting and results there degrade.
package deltat

import (
	"math"
	"time"

	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// SetLogger installs the logger used for extrapolation warnings.
// The default logger discards everything.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}

const (
	minYear = 1620
	maxYear = 2010
	// table entries are tableStep years apart
	tableStep = 2
)

// table holds TD−UT in seconds at two-year intervals from minYear to
// maxYear. Historical values (1620–1998) follow the standard record used
// in low-accuracy ephemeris work; 2000–2010 are measured modern values.
var table = []float64{
	121, 112, 103, 95, 88, // 1620–1628
	82, 77, 72, 68, 63, // 1630–1638
	60, 56, 53, 51, 48, // 1640–1648
	46, 44, 42, 40, 38, // 1650–1658
	35, 33, 31, 29, 26, // 1660–1668
	24, 22, 20, 18, 16, // 1670–1678
	14, 12, 11, 10, 9, // 1680–1688
	8, 7, 7, 7, 7, // 1690–1698
	7, 7, 8, 8, 9, // 1700–1708
	9, 9, 9, 9, 10, // 1710–1718
	10, 10, 10, 10, 10, // 1720–1728
	10, 10, 11, 11, 11, // 1730–1738
	11, 11, 12, 12, 12, // 1740–1748
	12, 13, 13, 13, 14, // 1750–1758
	14, 14, 14, 15, 15, // 1760–1768
	15, 15, 15, 16, 16, // 1770–1778
	16, 16, 16, 16, 16, // 1780–1788
	16, 15, 15, 14, 13, // 1790–1798
	13.1, 12.5, 12.2, 12.0, 12.0, // 1800–1808
	12.0, 12.0, 12.0, 12.0, 11.9, // 1810–1818
	11.6, 11.0, 10.2, 9.2, 8.2, // 1820–1828
	7.1, 6.2, 5.6, 5.4, 5.3, // 1830–1838
	5.4, 5.6, 5.9, 6.2, 6.5, // 1840–1848
	6.8, 7.1, 7.3, 7.5, 7.6, // 1850–1858
	7.7, 7.3, 6.2, 5.2, 2.7, // 1860–1868
	1.4, -1.2, -2.8, -3.8, -4.8, // 1870–1878
	-5.5, -5.3, -5.6, -5.7, -5.9, // 1880–1888
	-6.0, -6.3, -6.5, -6.2, -4.7, // 1890–1898
	-2.8, -0.1, 2.6, 5.3, 7.7, // 1900–1908
	10.4, 13.3, 16.0, 18.2, 20.2, // 1910–1918
	21.1, 22.4, 23.5, 23.8, 24.3, // 1920–1928
	24.0, 23.9, 23.9, 23.7, 24.0, // 1930–1938
	24.3, 25.3, 26.2, 27.3, 28.2, // 1940–1948
	29.1, 30.0, 30.7, 31.4, 32.2, // 1950–1958
	33.1, 34.0, 35.0, 36.5, 38.3, // 1960–1968
	40.2, 42.2, 44.5, 46.5, 48.5, // 1970–1978
	50.5, 52.2, 53.8, 54.9, 55.8, // 1980–1988
	56.9, 58.3, 60.0, 61.6, 63.0, // 1990–1998
	63.8, 64.3, 64.6, 64.8, 65.5, // 2000–2008
	66.1, // 2010
}

// Seconds returns TD−UT in seconds for the given calendar year.
//
// Years before the table start return 0. Years past the table end return
// the last tabulated value and log a warning.
func Seconds(year int) float64 {
	if year < minYear {
		return 0
	}
	if year > maxYear {
		logger.Warnw("delta-T requested beyond table range, clamping to last entry",
			"year", year,
			"table_max_year", maxYear,
			"seconds", table[len(table)-1])
		return table[len(table)-1]
	}

	i := (year - minYear) / tableStep
	if (year-minYear)%tableStep == 0 {
		return table[i]
	}
	// Odd year: linear interpolation between the surrounding entries.
	return (table[i] + table[i+1]) / 2
}

// ForTime returns the TD−UT offset for the instant's calendar year (UTC).
func ForTime(t time.Time) time.Duration {
	sec := Seconds(t.UTC().Year())
	return time.Duration(math.Round(sec*1e9)) * time.Nanosecond
}

// UTToTD converts a Universal Time instant to its Dynamical Time
// equivalent by adding delta-T.
func UTToTD(t time.Time) time.Time {
	return t.Add(ForTime(t))
}

// TDToUT converts a Dynamical Time instant back to Universal Time by
// subtracting delta-T.
func TDToUT(t time.Time) time.Time {
	return t.Add(-ForTime(t))
}
