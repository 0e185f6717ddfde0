// Package engine implements the compensation-equivalence calculations: a
// single-year conversion between locations and a multi-year projection built
// on top of it. All functions are pure; parameters arrive already oriented
// for the requested direction (see internal/locale).
package engine

import (
	"comp-engine/internal/model"
)

// Trace step names, in computation order.
const (
	StepNetSource       = "net_source_income"
	StepNetConverted    = "net_converted"
	StepNetCoLAdjusted  = "net_col_adjusted"
	StepTargetBaseBonus = "target_base_bonus_gross"
	StepTargetRSU       = "target_rsu"
	StepTargetTotal     = "target_total"
)

// Convert computes the package in the target location that preserves the
// after-tax, cost-of-living-adjusted purchasing power of pkg:
//
//  1. net base+bonus in the source location,
//  2. currency conversion at params.ExchangeRate (target per source unit),
//  3. cost-of-living adjustment by params.CoLFactor,
//  4. gross-up at the target tax rate,
//  5. RSUs converted at the exchange rate only,
//
// returning the target package and the trace of intermediates. The grossed-up
// base+bonus is re-split in the source package's base:bonus ratio; when
// base+bonus is zero the whole amount goes to base.
func Convert(pkg model.CompensationPackage, params model.ConversionParameters) (model.CompensationPackage, model.ConversionTrace, error) {
	if err := ValidatePackage(pkg); err != nil {
		return model.CompensationPackage{}, nil, err
	}
	if err := ValidateParameters(params); err != nil {
		return model.CompensationPackage{}, nil, err
	}

	netSource := (pkg.BaseSalary + pkg.Bonus) * (1 - params.SourceTaxRate)
	netConverted := netSource * params.ExchangeRate
	netAdjusted := netConverted * params.CoLFactor
	targetBaseBonus := netAdjusted / (1 - params.TargetTaxRate)
	targetRSU := pkg.RSUValue * params.ExchangeRate
	targetTotal := targetBaseBonus + targetRSU

	base, bonus := splitBaseBonus(targetBaseBonus, pkg.BaseSalary, pkg.Bonus)

	trace := model.ConversionTrace{
		{Name: StepNetSource, Value: netSource},
		{Name: StepNetConverted, Value: netConverted},
		{Name: StepNetCoLAdjusted, Value: netAdjusted},
		{Name: StepTargetBaseBonus, Value: targetBaseBonus},
		{Name: StepTargetRSU, Value: targetRSU},
		{Name: StepTargetTotal, Value: targetTotal},
	}

	return model.CompensationPackage{BaseSalary: base, Bonus: bonus, RSUValue: targetRSU}, trace, nil
}

// splitBaseBonus distributes the grossed-up base+bonus amount in the source
// base:bonus ratio. A zero base+bonus puts everything in base.
func splitBaseBonus(total, srcBase, srcBonus float64) (base, bonus float64) {
	sum := srcBase + srcBonus
	if sum == 0 {
		return total, 0
	}
	base = total * (srcBase / sum)
	return base, total - base
}

// ValidatePackage rejects negative monetary fields.
func ValidatePackage(pkg model.CompensationPackage) error {
	if pkg.BaseSalary < 0 {
		return invalidAmount("base_salary")
	}
	if pkg.Bonus < 0 {
		return invalidAmount("bonus")
	}
	if pkg.RSUValue < 0 {
		return invalidAmount("rsu_value")
	}
	return nil
}

// ValidateParameters rejects tax rates outside [0, 1) and non-positive
// exchange rate or cost-of-living factor. A target tax rate of exactly 1
// would make the gross-up divide by zero, so it is rejected here rather than
// surfacing as a float failure.
func ValidateParameters(params model.ConversionParameters) error {
	if params.SourceTaxRate < 0 || params.SourceTaxRate >= 1 {
		return invalidRate("source_tax_rate", "must be in [0, 1)")
	}
	if params.TargetTaxRate < 0 || params.TargetTaxRate >= 1 {
		return invalidRate("target_tax_rate", "must be in [0, 1)")
	}
	if params.ExchangeRate <= 0 {
		return invalidRate("exchange_rate", "must be positive")
	}
	if params.CoLFactor <= 0 {
		return invalidRate("col_factor", "must be positive")
	}
	return nil
}
