package engine

import (
	"errors"
	"testing"

	"comp-engine/internal/model"
)

var projectPkg = model.CompensationPackage{BaseSalary: 120000, Bonus: 20000, RSUValue: 30000}

var projectParams = model.ConversionParameters{
	SourceTaxRate: 0.35,
	TargetTaxRate: 0.24,
	ExchangeRate:  0.92,
	CoLFactor:     0.6,
}

func TestProjectZeroGrowth(t *testing.T) {
	records, err := Project(projectPkg, projectParams, model.GrowthAssumptions{}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	first := records[0]
	for i, rec := range records {
		if rec.Year != i+1 {
			t.Fatalf("record %d: expected year %d, got %d", i, i+1, rec.Year)
		}
		if rec.SourcePackage != first.SourcePackage {
			t.Fatalf("record %d: source package drifted under zero growth", i)
		}
		if rec.TargetPackage != first.TargetPackage {
			t.Fatalf("record %d: target package drifted under zero growth", i)
		}
		if rec.SourceTotal != first.SourceTotal || rec.TargetTotal != first.TargetTotal {
			t.Fatalf("record %d: totals drifted under zero growth", i)
		}
		wantCumSource := first.SourceTotal * float64(i+1)
		if !relEqual(rec.CumulativeSource, wantCumSource, 1e-12) {
			t.Fatalf("record %d: expected cumulative source %v, got %v", i, wantCumSource, rec.CumulativeSource)
		}
	}
}

func TestProjectYearOneFidelity(t *testing.T) {
	growth := model.GrowthAssumptions{
		BaseSalaryGrowth:  0.03,
		BonusGrowth:       0.03,
		RSUGrowth:         0.05,
		ExchangeRateTrend: 0.01,
		CoLTrend:          -0.005,
	}

	records, err := Project(projectPkg, projectParams, growth, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	direct, _, err := Convert(projectPkg, projectParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Growth is applied after each record, so year 1 must equal the direct
	// conversion of the initial inputs exactly.
	if records[0].SourcePackage != projectPkg {
		t.Fatalf("year 1 source package differs from initial inputs: %+v", records[0].SourcePackage)
	}
	if records[0].TargetPackage != direct {
		t.Fatalf("year 1 target package differs from direct conversion: %+v vs %+v", records[0].TargetPackage, direct)
	}
}

func TestProjectGrowthCompounding(t *testing.T) {
	growth := model.GrowthAssumptions{
		BaseSalaryGrowth: 0.10,
		BonusGrowth:      0.05,
		RSUGrowth:        0.20,
	}

	records, err := Project(projectPkg, projectParams, growth, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	year3 := records[2].SourcePackage
	if !relEqual(year3.BaseSalary, 120000*1.10*1.10, 1e-12) {
		t.Fatalf("expected year 3 base %v, got %v", 120000*1.10*1.10, year3.BaseSalary)
	}
	if !relEqual(year3.Bonus, 20000*1.05*1.05, 1e-12) {
		t.Fatalf("expected year 3 bonus %v, got %v", 20000*1.05*1.05, year3.Bonus)
	}
	if !relEqual(year3.RSUValue, 30000*1.20*1.20, 1e-12) {
		t.Fatalf("expected year 3 RSU %v, got %v", 30000*1.20*1.20, year3.RSUValue)
	}
}

func TestProjectTrendsReachConversion(t *testing.T) {
	growth := model.GrowthAssumptions{ExchangeRateTrend: 0.10}

	records, err := Project(projectPkg, projectParams, growth, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Year 2 converts at a 10% stronger exchange rate while the source
	// package is unchanged, so the whole target package scales by 1.1.
	if !relEqual(records[1].TargetTotal, records[0].TargetTotal*1.1, 1e-12) {
		t.Fatalf("expected year 2 target total %v, got %v", records[0].TargetTotal*1.1, records[1].TargetTotal)
	}
}

func TestProjectCumulativeTotals(t *testing.T) {
	growth := model.GrowthAssumptions{
		BaseSalaryGrowth: 0.03,
		BonusGrowth:      0.04,
		RSUGrowth:        0.05,
		CoLTrend:         0.01,
	}

	records, err := Project(projectPkg, projectParams, growth, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sumSource, sumTarget float64
	for i, rec := range records {
		sumSource += rec.SourceTotal
		sumTarget += rec.TargetTotal
		if !relEqual(rec.CumulativeSource, sumSource, 1e-12) {
			t.Fatalf("record %d: expected cumulative source %v, got %v", i, sumSource, rec.CumulativeSource)
		}
		if !relEqual(rec.CumulativeTarget, sumTarget, 1e-12) {
			t.Fatalf("record %d: expected cumulative target %v, got %v", i, sumTarget, rec.CumulativeTarget)
		}
	}
}

func TestProjectRejectsInvalidHorizon(t *testing.T) {
	for _, years := range []int{0, -3, MaxProjectionYears + 1} {
		records, err := Project(projectPkg, projectParams, model.GrowthAssumptions{}, years)
		if records != nil {
			t.Fatalf("years=%d: expected no records", years)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("years=%d: expected ValidationError, got %v", years, err)
		}
		if ve.Code != CodeInvalidProjectionHorizon {
			t.Fatalf("years=%d: expected code %s, got %s", years, CodeInvalidProjectionHorizon, ve.Code)
		}
	}
}

func TestProjectRejectsInvalidParameters(t *testing.T) {
	params := projectParams
	params.TargetTaxRate = 1.0

	records, err := Project(projectPkg, params, model.GrowthAssumptions{}, 3)
	if records != nil {
		t.Fatal("expected no records")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Code != CodeInvalidRate {
		t.Fatalf("expected code %s, got %s", CodeInvalidRate, ve.Code)
	}
}

func TestProjectRejectsTrendDrivenInvalidRate(t *testing.T) {
	// A -100% CoL trend zeroes the working factor in year 2; the projection
	// must fail as a whole rather than return a one-year prefix.
	growth := model.GrowthAssumptions{CoLTrend: -1}

	records, err := Project(projectPkg, projectParams, growth, 3)
	if records != nil {
		t.Fatal("expected no records")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "col_factor" {
		t.Fatalf("expected field col_factor, got %s", ve.Field)
	}
}
