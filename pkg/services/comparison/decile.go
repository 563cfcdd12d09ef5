package comparison

import (
	"fmt"

	"github.com/pe-tools/impact-atlas/pkg/microdata"
	"github.com/pe-tools/impact-atlas/pkg/models/domain"
)

// decileImpact reports relative and average household net income change per
// income decile.
func decileImpact(baseline, reform *domain.Economy) (domain.DecileImpact, error) {
	return decileChange(baseline, reform, baseline.HouseholdIncomeDecile)
}

// wealthDecileImpact is the same algorithm keyed on wealth decile. Only the
// uk context ranks households by wealth.
func wealthDecileImpact(baseline, reform *domain.Economy, country string) (*domain.DecileImpact, error) {
	if country != countryUK {
		return nil, nil
	}
	impact, err := decileChange(baseline, reform, baseline.HouseholdWealthDecile)
	if err != nil {
		return nil, err
	}
	return &impact, nil
}

// decileChange computes, per decile rank, the weighted relative and average
// net income change. Negative ranks mark units outside the ranked population
// and are excluded. A decile with zero weighted baseline income (or zero
// weight) yields the 0.0 sentinel, never NaN.
func decileChange(baseline, reform *domain.Economy, ranks []int) (domain.DecileImpact, error) {
	baselineIncome, err := microdata.New(baseline.HouseholdNetIncome, baseline.HouseholdWeight)
	if err != nil {
		return domain.DecileImpact{}, fmt.Errorf("baseline income series: %w", err)
	}
	reformIncome, err := microdata.New(reform.HouseholdNetIncome, baselineIncome.Weights())
	if err != nil {
		return domain.DecileImpact{}, fmt.Errorf("reform income series: %w", err)
	}
	if len(ranks) != baselineIncome.Len() {
		return domain.DecileImpact{}, fmt.Errorf("decile ranks: %d ranks over %d households: %w",
			len(ranks), baselineIncome.Len(), microdata.ErrLengthMismatch)
	}

	valid := make([]bool, len(ranks))
	validRanks := make([]int, 0, len(ranks))
	for i, r := range ranks {
		valid[i] = r >= 0
		if r >= 0 {
			validRanks = append(validRanks, r)
		}
	}
	baselineFiltered, err := baselineIncome.Filter(valid)
	if err != nil {
		return domain.DecileImpact{}, err
	}
	reformFiltered, err := reformIncome.Filter(valid)
	if err != nil {
		return domain.DecileImpact{}, err
	}

	incomeChange, err := reformFiltered.Sub(baselineFiltered)
	if err != nil {
		return domain.DecileImpact{}, err
	}

	changeByDecile, err := incomeChange.GroupSum(validRanks)
	if err != nil {
		return domain.DecileImpact{}, err
	}
	baselineByDecile, err := baselineFiltered.GroupSum(validRanks)
	if err != nil {
		return domain.DecileImpact{}, err
	}
	countByDecile, err := baselineFiltered.GroupCount(validRanks)
	if err != nil {
		return domain.DecileImpact{}, err
	}

	relative := make(map[int]float64, len(changeByDecile))
	average := make(map[int]float64, len(changeByDecile))
	for decile, change := range changeByDecile {
		if baselineByDecile[decile] == 0 {
			relative[decile] = 0
		} else {
			relative[decile] = change / baselineByDecile[decile]
		}
		if countByDecile[decile] == 0 {
			average[decile] = 0
		} else {
			average[decile] = change / countByDecile[decile]
		}
	}

	return domain.DecileImpact{Relative: relative, Average: average}, nil
}
