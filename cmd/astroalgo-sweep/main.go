// astroalgo-sweep runs the passage solver across a range of dates for one
// location and writes the events as CSV, with a daylight summary at the
// end. Handy for eyeballing seasonal behavior and for spotting degenerate
// high-latitude output.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"go.uber.org/zap"

	astroalgo "github.com/TheClimateCorporation/astro-algo"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) mean() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

func main() {
	lat := flag.Float64("lat", 37.77, "latitude in degrees (north positive)")
	lon := flag.Float64("lon", -122.42, "longitude in degrees (east positive)")
	start := flag.String("start", "", "first date, YYYY-MM-DD (defaults to Jan 1 of this year)")
	days := flag.Int("days", 365, "number of days to sweep")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't initialize logger: %v\n", err)
		os.Exit(1)
	}
	sugar := logger.Sugar()
	defer sugar.Sync()
	astroalgo.SetLogger(sugar)

	first := time.Date(time.Now().UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	if *start != "" {
		first, err = time.Parse("2006-01-02", *start)
		if err != nil {
			sugar.Fatalf("invalid -start %q: %v", *start, err)
		}
	}

	loc := astroalgo.Coordinates{Lat: *lat, Lon: *lon}

	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"date", "rising", "transit", "setting", "daylight_hours"}); err != nil {
		sugar.Fatalf("write header: %v", err)
	}

	var daylight stats
	failures := 0

	for i := 0; i < *days; i++ {
		date := first.AddDate(0, 0, i)

		p, err := astroalgo.Passages(astroalgo.Sun{}, loc, date)
		if err != nil {
			failures++
			sugar.Warnw("passages failed", "date", date.Format("2006-01-02"), "error", err)
			continue
		}

		hours := p.Setting.Sub(p.Rising).Hours()
		daylight.add(hours)

		rec := []string{
			date.Format("2006-01-02"),
			p.Rising.Format(time.RFC3339),
			p.Transit.Format(time.RFC3339),
			p.Setting.Format(time.RFC3339),
			fmt.Sprintf("%.4f", hours),
		}
		if err := w.Write(rec); err != nil {
			sugar.Fatalf("write record: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		sugar.Fatalf("flush CSV: %v", err)
	}

	fmt.Fprintf(os.Stderr, "\n%d days, %d failures\n", *days, failures)
	fmt.Fprintf(os.Stderr, "daylight hours: min=%.2f mean=%.2f max=%.2f\n",
		daylight.min, daylight.mean(), daylight.max)
}
