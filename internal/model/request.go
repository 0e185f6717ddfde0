package model

// RateOverrides carries optional caller-supplied rates. Nil fields fall back
// to the registry (remote rates if configured, otherwise built-in defaults).
// MarketRate is always quoted as USD per EUR and CoLFactor as Madrid relative
// to Seattle, regardless of direction; the locale layer orients both.
type RateOverrides struct {
	SourceTaxRate *float64 `json:"source_tax_rate,omitempty"`
	TargetTaxRate *float64 `json:"target_tax_rate,omitempty"`
	MarketRate    *float64 `json:"market_rate,omitempty"`
	CoLFactor     *float64 `json:"col_factor,omitempty"`
}

type ConvertRequest struct {
	SourceLocation string              `json:"source_location"`
	Package        CompensationPackage `json:"package"`
	Overrides      *RateOverrides      `json:"overrides,omitempty"`
}

type ProjectRequest struct {
	ConvertRequest
	Growth GrowthAssumptions `json:"growth"`
	Years  int               `json:"years"`
}

type SaveScenarioRequest struct {
	ConvertRequest
	Label string `json:"label,omitempty"`
}
