package comparison

import "github.com/pe-tools/impact-atlas/pkg/models/domain"

const countryUK = "uk"

func budgetaryImpact(baseline, reform *domain.Economy) domain.BudgetaryImpact {
	taxRevenueImpact := reform.TotalTax - baseline.TotalTax
	stateTaxRevenueImpact := reform.TotalStateTax - baseline.TotalStateTax
	benefitSpendingImpact := reform.TotalBenefits - baseline.TotalBenefits

	var households float64
	for _, w := range baseline.HouseholdWeight {
		households += w
	}

	return domain.BudgetaryImpact{
		BudgetaryImpact:       taxRevenueImpact - benefitSpendingImpact,
		TaxRevenueImpact:      taxRevenueImpact,
		StateTaxRevenueImpact: stateTaxRevenueImpact,
		BenefitSpendingImpact: benefitSpendingImpact,
		Households:            households,
		BaselineNetIncome:     baseline.TotalNetIncome,
	}
}

// detailedBudgetaryImpact itemises the budget per program. Only the uk
// context carries itemised programs; other countries get an empty map.
func detailedBudgetaryImpact(baseline, reform *domain.Economy, country string) map[string]domain.ProgramImpact {
	result := make(map[string]domain.ProgramImpact)
	if country != countryUK {
		return result
	}
	for program, baselineTotal := range baseline.Programs {
		reformTotal := reform.Programs[program]
		result[program] = domain.ProgramImpact{
			Baseline:   baselineTotal,
			Reform:     reformTotal,
			Difference: reformTotal - baselineTotal,
		}
	}
	return result
}
