// Package locale owns everything direction-specific: the known locations,
// their default rates, and the orientation of exchange rate and
// cost-of-living factor for a requested direction. The engine itself never
// branches on direction.
package locale

import "strings"

// CodeUnknownLocation reports a source location outside the known pair.
const CodeUnknownLocation = "UNKNOWN_LOCATION"

type Location struct {
	Name           string
	Currency       string
	DefaultTaxRate float64
}

var (
	// Seattle's default is a blended effective rate, not a bracket schedule.
	Seattle = Location{Name: "Seattle", Currency: "USD", DefaultTaxRate: 0.30}

	// Madrid's default assumes the Beckham Law flat rate.
	Madrid = Location{Name: "Madrid", Currency: "EUR", DefaultTaxRate: 0.24}
)

// Market-level defaults. DefaultMarketRate is quoted as USD per EUR;
// DefaultCoLFactor is Madrid's cost of living relative to Seattle's.
const (
	DefaultMarketRate = 1.09
	DefaultCoLFactor  = 0.60
)

// Lookup resolves a location by name, case-insensitively.
func Lookup(name string) (Location, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "seattle":
		return Seattle, true
	case "madrid":
		return Madrid, true
	}
	return Location{}, false
}

// Other returns the opposite end of the Seattle<->Madrid pair.
func Other(loc Location) Location {
	if loc.Name == Seattle.Name {
		return Madrid
	}
	return Seattle
}

// orient turns the direction-free market quotes into engine parameters for a
// conversion out of source. The market rate is USD per EUR and the CoL factor
// Madrid-relative-to-Seattle, so converting out of Seattle takes the
// reciprocal rate and converting out of Madrid the reciprocal CoL factor.
func orient(source Location, marketRate, colFactor float64) (exchangeRate, col float64) {
	if source.Name == Seattle.Name {
		return 1 / marketRate, colFactor
	}
	return marketRate, 1 / colFactor
}
