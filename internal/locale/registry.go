package locale

import (
	"io"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"comp-engine/internal/engine"
	"comp-engine/internal/model"
)

// Registry resolves the full parameter set for a conversion direction:
// effective tax rates (remote registry, when configured, with per-location
// caching and static fallback), exchange rate and CoL factor oriented for the
// direction, with caller overrides taking precedence over everything.
type Registry struct {
	url    string
	client *http.Client
	cache  sync.Map
}

// NewRegistry creates a Registry. An empty url disables remote lookups; the
// static per-location defaults are used instead.
func NewRegistry(url string) *Registry {
	r := &Registry{url: url}
	if url != "" {
		r.client = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return r
}

type rateResponse struct {
	Location         string  `json:"location"`
	EffectiveTaxRate float64 `json:"effective_tax_rate"`
}

// EffectiveTaxRate returns the effective tax rate for loc. Remote results are
// cached for the process lifetime; any fetch or decode error falls back to
// the location's static default.
func (r *Registry) EffectiveTaxRate(loc Location) float64 {
	if r.url == "" {
		return loc.DefaultTaxRate
	}
	if rate, ok := r.cache.Load(loc.Name); ok {
		return rate.(float64)
	}
	rate := r.fetchRate(loc)
	r.cache.Store(loc.Name, rate)
	return rate
}

func (r *Registry) fetchRate(loc Location) float64 {
	resp, err := r.client.Get(r.url + "/locations/" + loc.Name)
	if err != nil {
		return loc.DefaultTaxRate
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return loc.DefaultTaxRate
	}

	var rr rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return loc.DefaultTaxRate
	}
	return rr.EffectiveTaxRate
}

// Resolve builds the oriented ConversionParameters for a conversion out of
// sourceName, applying overrides where present. Overridden market rate and
// CoL factor are validated here because orientation takes reciprocals; the
// engine re-checks the oriented values at its own boundary.
func (r *Registry) Resolve(sourceName string, ov *model.RateOverrides) (model.ConversionParameters, Location, Location, error) {
	source, ok := Lookup(sourceName)
	if !ok {
		return model.ConversionParameters{}, Location{}, Location{}, &engine.ValidationError{
			Field:      "source_location",
			Constraint: "must be Seattle or Madrid",
			Code:       CodeUnknownLocation,
		}
	}
	target := Other(source)

	marketRate := DefaultMarketRate
	colFactor := DefaultCoLFactor
	if ov != nil && ov.MarketRate != nil {
		marketRate = *ov.MarketRate
	}
	if ov != nil && ov.CoLFactor != nil {
		colFactor = *ov.CoLFactor
	}
	if marketRate <= 0 {
		return model.ConversionParameters{}, Location{}, Location{}, &engine.ValidationError{
			Field:      "market_rate",
			Constraint: "must be positive",
			Code:       engine.CodeInvalidRate,
		}
	}
	if colFactor <= 0 {
		return model.ConversionParameters{}, Location{}, Location{}, &engine.ValidationError{
			Field:      "col_factor",
			Constraint: "must be positive",
			Code:       engine.CodeInvalidRate,
		}
	}

	params := model.ConversionParameters{
		SourceTaxRate: r.EffectiveTaxRate(source),
		TargetTaxRate: r.EffectiveTaxRate(target),
	}
	if ov != nil && ov.SourceTaxRate != nil {
		params.SourceTaxRate = *ov.SourceTaxRate
	}
	if ov != nil && ov.TargetTaxRate != nil {
		params.TargetTaxRate = *ov.TargetTaxRate
	}

	params.ExchangeRate, params.CoLFactor = orient(source, marketRate, colFactor)

	if err := engine.ValidateParameters(params); err != nil {
		return model.ConversionParameters{}, Location{}, Location{}, err
	}

	return params, source, target, nil
}
