package astroalgo_test

import (
	"fmt"
	"time"

	astroalgo "github.com/TheClimateCorporation/astro-algo"
)

// ExamplePassages demonstrates computing sunrise, transit, and sunset for
// a location and date.
func ExamplePassages() {
	loc := astroalgo.Coordinates{
		Lat: 40.7128,  // New York City latitude
		Lon: -74.0060, // New York City longitude
	}

	date := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)

	p, err := astroalgo.Passages(astroalgo.Sun{}, loc, date)
	if err != nil {
		panic(err)
	}

	fmt.Println("Rising: ", p.Rising.Format(time.RFC3339))
	fmt.Println("Transit:", p.Transit.Format(time.RFC3339))
	fmt.Println("Setting:", p.Setting.Format(time.RFC3339))
}

// ExamplePassagesWithOptions demonstrates civil twilight with a tighter
// convergence precision.
func ExamplePassagesWithOptions() {
	loc := astroalgo.Coordinates{
		Lat: 33.4484,   // Phoenix, AZ
		Lon: -112.0740, // Phoenix longitude
	}

	date := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)

	p, err := astroalgo.PassagesWithOptions(astroalgo.Sun{}, loc, date, astroalgo.PassageOptions{
		Twilight:  astroalgo.TwilightCivil,
		Precision: 0.01,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println("Civil dawn:", p.Rising.Format(time.RFC3339))
	fmt.Println("Civil dusk:", p.Setting.Format(time.RFC3339))
}

// ExampleLocalCoordinates demonstrates projecting the Sun onto an
// observer's horizon.
func ExampleLocalCoordinates() {
	loc := astroalgo.Coordinates{
		Lat: 37.77,   // San Francisco
		Lon: -122.42, // San Francisco longitude
	}

	at := time.Date(2025, time.June, 21, 20, 0, 0, 0, time.UTC)

	hz, err := astroalgo.LocalCoordinates(astroalgo.Sun{}, at, loc)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Azimuth (west of south): %.2f rad\n", hz.Azimuth)
	fmt.Printf("Altitude: %.2f rad\n", hz.Altitude)
}

// ExampleDaylightHours demonstrates calculating daylight duration.
func ExampleDaylightHours() {
	loc := astroalgo.Coordinates{
		Lat: 33.4484,
		Lon: -112.0740,
	}

	summer := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	summerHours, _ := astroalgo.DaylightHours(loc, summer)
	fmt.Printf("Summer solstice daylight: %.2f hours\n", summerHours)

	winter := time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC)
	winterHours, _ := astroalgo.DaylightHours(loc, winter)
	fmt.Printf("Winter solstice daylight: %.2f hours\n", winterHours)
}
