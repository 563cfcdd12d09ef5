package comparison

import (
	"fmt"

	"github.com/pe-tools/impact-atlas/pkg/microdata"
	"github.com/pe-tools/impact-atlas/pkg/models/domain"
)

// inequalityImpact reports the weighted Gini coefficient and top income
// shares of household net income under both scenarios.
func inequalityImpact(baseline, reform *domain.Economy) (domain.InequalityImpact, error) {
	baselineIncome, err := microdata.New(baseline.HouseholdNetIncome, baseline.HouseholdWeight)
	if err != nil {
		return domain.InequalityImpact{}, fmt.Errorf("baseline income series: %w", err)
	}
	reformIncome, err := microdata.New(reform.HouseholdNetIncome, baselineIncome.Weights())
	if err != nil {
		return domain.InequalityImpact{}, fmt.Errorf("reform income series: %w", err)
	}

	return domain.InequalityImpact{
		Gini: domain.BaselineReform{
			Baseline: baselineIncome.Gini(),
			Reform:   reformIncome.Gini(),
		},
		Top10PctShare: domain.BaselineReform{
			Baseline: baselineIncome.TopShare(0.1),
			Reform:   reformIncome.TopShare(0.1),
		},
		Top1PctShare: domain.BaselineReform{
			Baseline: baselineIncome.TopShare(0.01),
			Reform:   reformIncome.TopShare(0.01),
		},
	}, nil
}
