package engine

import (
	"comp-engine/internal/model"
)

// MaxProjectionYears bounds the output size of a projection.
const MaxProjectionYears = 50

// Project runs Convert once per year over a working copy of pkg and params,
// compounding the growth assumptions between years. Growth is applied after
// each year's record is captured, so year 1 always reflects the caller's
// exact initial inputs. Records carry running cumulative totals for both
// locations. The returned slice is fully materialized, length == years.
func Project(pkg model.CompensationPackage, params model.ConversionParameters, growth model.GrowthAssumptions, years int) ([]model.ProjectionRecord, error) {
	if years <= 0 || years > MaxProjectionYears {
		return nil, &ValidationError{
			Field:      "years",
			Constraint: "must be a positive integer no greater than 50",
			Code:       CodeInvalidProjectionHorizon,
		}
	}
	if err := ValidatePackage(pkg); err != nil {
		return nil, err
	}
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}

	working := pkg
	wparams := params
	records := make([]model.ProjectionRecord, 0, years)
	var cumSource, cumTarget float64

	for year := 1; year <= years; year++ {
		target, trace, err := Convert(working, wparams)
		if err != nil {
			// A trend can drive the working rates out of range in a later
			// year; the whole projection is rejected, never a prefix.
			return nil, err
		}

		sourceTotal := working.Total()
		targetTotal := trace[len(trace)-1].Value
		cumSource += sourceTotal
		cumTarget += targetTotal

		records = append(records, model.ProjectionRecord{
			Year:             year,
			SourcePackage:    working,
			TargetPackage:    target,
			SourceTotal:      sourceTotal,
			TargetTotal:      targetTotal,
			CumulativeSource: cumSource,
			CumulativeTarget: cumTarget,
		})

		working.BaseSalary *= 1 + growth.BaseSalaryGrowth
		working.Bonus *= 1 + growth.BonusGrowth
		working.RSUValue *= 1 + growth.RSUGrowth
		wparams.ExchangeRate *= 1 + growth.ExchangeRateTrend
		wparams.CoLFactor *= 1 + growth.CoLTrend
	}

	return records, nil
}
