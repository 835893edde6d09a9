package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	astroalgo "github.com/TheClimateCorporation/astro-algo"
)

// timestampMillis is RFC3339 with millisecond precision, matching the
// resolution of the passage solver.
const timestampMillis = "2006-01-02T15:04:05.000Z07:00"

func main() {
	// Defaults can come from the environment (ASTROALGO_LAT, ASTROALGO_LON,
	// ASTROALGO_PRECISION) so repeated runs for one site don't need flags.
	v := viper.New()
	v.SetEnvPrefix("astroalgo")
	v.AutomaticEnv()
	v.SetDefault("lat", 0.0)
	v.SetDefault("lon", 0.0)
	v.SetDefault("precision", astroalgo.DefaultPrecision)

	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runPassages(v, os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "position":
		runPosition(v, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `astroalgo - solar passages and sky positions

Usage:
  astroalgo [flags]            # rise/transit/set for a date (default mode)
  astroalgo position [flags]   # azimuth/altitude at an instant

Default mode flags:
  -lat float
        latitude in degrees (north positive)
  -lon float
        longitude in degrees (east positive, west negative)
  -date string
        date in YYYY-MM-DD (optional, defaults to today UTC)
  -twilight string
        threshold: none, civil, nautical, or astronomical (default "none")
  -precision float
        convergence precision in degrees (default %v)
  -json
        output result as JSON
  -debug
        verbose logging

For position mode:
  astroalgo position -h
`, astroalgo.DefaultPrecision)
}

func newLogger(debug bool) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't initialize logger: %v\n", err)
		os.Exit(1)
	}
	return logger.Sugar()
}

// ---------------------
// Passages (default) mode
// ---------------------

func runPassages(v *viper.Viper, args []string) {
	fs := flag.NewFlagSet("astroalgo", flag.ExitOnError)

	lat := fs.Float64("lat", v.GetFloat64("lat"), "latitude in degrees (north positive)")
	lon := fs.Float64("lon", v.GetFloat64("lon"), "longitude in degrees (east positive, west negative)")
	dateS := fs.String("date", "", "date in YYYY-MM-DD (optional, defaults to today UTC)")
	twilight := fs.String("twilight", "none", "threshold: none, civil, nautical, or astronomical")
	precision := fs.Float64("precision", v.GetFloat64("precision"), "convergence precision in degrees")
	jsonOut := fs.Bool("json", false, "output result as JSON")
	debug := fs.Bool("debug", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(*debug)
	defer logger.Sync()
	astroalgo.SetLogger(logger)

	if *lat == 0 && *lon == 0 {
		logger.Warn("lat=0 lon=0 (Gulf of Guinea); use -lat and -lon to set a real location")
	}

	date, err := parseDate(*dateS)
	if err != nil {
		logger.Fatalf("invalid -date %q: %v", *dateS, err)
	}

	kind, err := parseTwilight(*twilight)
	if err != nil {
		logger.Fatal(err)
	}

	loc := astroalgo.Coordinates{Lat: *lat, Lon: *lon}
	p, err := astroalgo.PassagesWithOptions(astroalgo.Sun{}, loc, date, astroalgo.PassageOptions{
		Twilight:  kind,
		Precision: *precision,
	})
	if err != nil {
		logger.Fatalf("error computing passages: %v", err)
	}

	if *jsonOut {
		printPassagesJSON(loc, date, *twilight, p)
		return
	}

	fmt.Printf("Sun passages for lat=%.6f lon=%.6f\n", loc.Lat, loc.Lon)
	fmt.Printf("Date: %s UTC, threshold: %s\n\n", date.Format("2006-01-02"), *twilight)
	fmt.Printf("Rising:  %s\n", p.Rising.Format(timestampMillis))
	fmt.Printf("Transit: %s\n", p.Transit.Format(timestampMillis))
	fmt.Printf("Setting: %s\n", p.Setting.Format(timestampMillis))
}

type passagesJSON struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Twilight  string    `json:"twilight"`
	Rising    time.Time `json:"rising"`
	Transit   time.Time `json:"transit"`
	Setting   time.Time `json:"setting"`
}

func printPassagesJSON(loc astroalgo.Coordinates, date time.Time, twilight string, p astroalgo.Passage) {
	out := passagesJSON{
		Latitude:  loc.Lat,
		Longitude: loc.Lon,
		Date:      date.Format("2006-01-02"),
		Twilight:  twilight,
		Rising:    p.Rising,
		Transit:   p.Transit,
		Setting:   p.Setting,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode JSON: %v\n", err)
		os.Exit(1)
	}
}

// ---------------------
// Position subcommand
// ---------------------

func runPosition(v *viper.Viper, args []string) {
	fs := flag.NewFlagSet("position", flag.ExitOnError)

	lat := fs.Float64("lat", v.GetFloat64("lat"), "latitude in degrees (north positive)")
	lon := fs.Float64("lon", v.GetFloat64("lon"), "longitude in degrees (east positive, west negative)")
	timeS := fs.String("time", "", "instant in RFC3339 (optional, defaults to now)")
	debug := fs.Bool("debug", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(*debug)
	defer logger.Sync()
	astroalgo.SetLogger(logger)

	at := time.Now().UTC()
	if *timeS != "" {
		var err error
		at, err = time.Parse(time.RFC3339, *timeS)
		if err != nil {
			logger.Fatalf("invalid -time %q: %v", *timeS, err)
		}
	}

	loc := astroalgo.Coordinates{Lat: *lat, Lon: *lon}
	hz, err := astroalgo.LocalCoordinates(astroalgo.Sun{}, at, loc)
	if err != nil {
		logger.Fatalf("error computing local coordinates: %v", err)
	}

	eq := astroalgo.EquatorialCoordinates(astroalgo.Sun{}, at)

	fmt.Printf("Sun position at %s for lat=%.6f lon=%.6f\n\n", at.Format(timestampMillis), loc.Lat, loc.Lon)
	fmt.Printf("Azimuth (west of south): %9.4f°\n", deg(hz.Azimuth))
	fmt.Printf("Altitude:                %9.4f°\n", deg(hz.Altitude))
	fmt.Printf("Right ascension:         %9.4f°\n", deg(eq.RA))
	fmt.Printf("Declination:             %9.4f°\n", deg(eq.Dec))
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ---------------------
// Shared helpers
// ---------------------

func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}

func parseTwilight(s string) (astroalgo.TwilightKind, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return astroalgo.TwilightNone, nil
	case "civil":
		return astroalgo.TwilightCivil, nil
	case "nautical":
		return astroalgo.TwilightNautical, nil
	case "astronomical":
		return astroalgo.TwilightAstronomical, nil
	default:
		return 0, fmt.Errorf("unsupported twilight %q (use none, civil, nautical, or astronomical)", s)
	}
}
