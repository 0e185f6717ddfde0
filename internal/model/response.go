package model

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type ConvertResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   ConvertResult       `json:"calculation_result"`
}

type ConvertResult struct {
	Messages           []CalculationMessage  `json:"messages"`
	SourceLocation     string                `json:"source_location,omitempty"`
	TargetLocation     string                `json:"target_location,omitempty"`
	SourceCurrency     string                `json:"source_currency,omitempty"`
	TargetCurrency     string                `json:"target_currency,omitempty"`
	Parameters         *ConversionParameters `json:"parameters,omitempty"`
	SourcePackage      *CompensationPackage  `json:"source_package,omitempty"`
	TargetPackage      *CompensationPackage  `json:"target_package,omitempty"`
	SourceTotal        float64               `json:"source_total,omitempty"`
	TargetTotal        float64               `json:"target_total,omitempty"`
	SourceTotalDisplay string                `json:"source_total_display,omitempty"`
	TargetTotalDisplay string                `json:"target_total_display,omitempty"`
	Trace              ConversionTrace       `json:"trace,omitempty"`
	SourceMonthly      *MonthlyBreakdown     `json:"source_monthly,omitempty"`
	TargetMonthly      *MonthlyBreakdown     `json:"target_monthly,omitempty"`
}

type ProjectResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   ProjectResult       `json:"calculation_result"`
}

type ProjectResult struct {
	Messages       []CalculationMessage  `json:"messages"`
	SourceLocation string                `json:"source_location,omitempty"`
	TargetLocation string                `json:"target_location,omitempty"`
	SourceCurrency string                `json:"source_currency,omitempty"`
	TargetCurrency string                `json:"target_currency,omitempty"`
	Parameters     *ConversionParameters `json:"parameters,omitempty"`
	Records        []ProjectionRecord    `json:"records,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
