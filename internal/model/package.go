package model

// CompensationPackage is one year of compensation, denominated in a single
// currency. All fields are non-negative.
type CompensationPackage struct {
	BaseSalary float64 `json:"base_salary"`
	Bonus      float64 `json:"bonus"`
	RSUValue   float64 `json:"rsu_value"`
}

// Total returns the pre-tax sum of all components.
func (p CompensationPackage) Total() float64 {
	return p.BaseSalary + p.Bonus + p.RSUValue
}

// ConversionParameters is a fully oriented parameter set for a single
// conversion. ExchangeRate is expressed as target currency per source
// currency unit and CoLFactor as the target cost-of-living level relative to
// the source; orientation for the requested direction happens in the locale
// layer, never inside the engine.
type ConversionParameters struct {
	SourceTaxRate float64 `json:"source_tax_rate"`
	TargetTaxRate float64 `json:"target_tax_rate"`
	ExchangeRate  float64 `json:"exchange_rate"`
	CoLFactor     float64 `json:"col_factor"`
}

// GrowthAssumptions are annual compounding rates applied year over year
// during a projection. Trend fields default to zero.
type GrowthAssumptions struct {
	BaseSalaryGrowth  float64 `json:"base_salary_growth"`
	BonusGrowth       float64 `json:"bonus_growth"`
	RSUGrowth         float64 `json:"rsu_growth"`
	ExchangeRateTrend float64 `json:"exchange_rate_trend,omitempty"`
	CoLTrend          float64 `json:"col_trend,omitempty"`
}

// TraceStep is one named intermediate value of a conversion.
type TraceStep struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ConversionTrace lists the intermediates of a conversion in computation
// order, for display alongside the result.
type ConversionTrace []TraceStep

// ProjectionRecord is one projected year. Package fields are snapshots, not
// references to the projection's working state.
type ProjectionRecord struct {
	Year             int                 `json:"year"`
	SourcePackage    CompensationPackage `json:"source_package"`
	TargetPackage    CompensationPackage `json:"target_package"`
	SourceTotal      float64             `json:"source_total"`
	TargetTotal      float64             `json:"target_total"`
	CumulativeSource float64             `json:"cumulative_source"`
	CumulativeTarget float64             `json:"cumulative_target"`
}

// MonthlyBreakdown is a per-month view of an annual package, gross and net of
// a single effective tax rate. RSUs carry no additional tax treatment here.
type MonthlyBreakdown struct {
	GrossBase  float64 `json:"gross_base"`
	GrossBonus float64 `json:"gross_bonus"`
	GrossRSU   float64 `json:"gross_rsu"`
	GrossTotal float64 `json:"gross_total"`
	NetBase    float64 `json:"net_base"`
	NetBonus   float64 `json:"net_bonus"`
	NetRSU     float64 `json:"net_rsu"`
	NetTotal   float64 `json:"net_total"`
}
