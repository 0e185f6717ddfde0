package engine

import (
	"comp-engine/internal/model"
)

// Monthly derives the per-month view of an annual package under a single
// effective tax rate. Base and bonus are taxed at the rate; RSUs are passed
// through untaxed, matching the simplified treatment in Convert.
func Monthly(pkg model.CompensationPackage, taxRate float64) (model.MonthlyBreakdown, error) {
	if err := ValidatePackage(pkg); err != nil {
		return model.MonthlyBreakdown{}, err
	}
	if taxRate < 0 || taxRate >= 1 {
		return model.MonthlyBreakdown{}, invalidRate("tax_rate", "must be in [0, 1)")
	}

	netBase := pkg.BaseSalary * (1 - taxRate) / 12
	netBonus := pkg.Bonus * (1 - taxRate) / 12
	netRSU := pkg.RSUValue / 12

	return model.MonthlyBreakdown{
		GrossBase:  pkg.BaseSalary / 12,
		GrossBonus: pkg.Bonus / 12,
		GrossRSU:   pkg.RSUValue / 12,
		GrossTotal: pkg.Total() / 12,
		NetBase:    netBase,
		NetBonus:   netBonus,
		NetRSU:     netRSU,
		NetTotal:   netBase + netBonus + netRSU,
	}, nil
}
