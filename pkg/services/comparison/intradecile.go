package comparison

import (
	"fmt"
	"math"

	"github.com/pe-tools/impact-atlas/pkg/microdata"
	"github.com/pe-tools/impact-atlas/pkg/models/domain"
)

// Bucket boundaries over proportional income change. Intervals are half-open
// with the upper bound inclusive: change <= upper puts a unit in the bucket.
var outcomeBounds = []float64{math.Inf(-1), -0.05, -1e-3, 1e-3, 0.05, math.Inf(1)}

// intraDecileImpact classifies every household into a gain/loss bucket
// relative to its own baseline income and reports, per income decile, the
// weighted share of people in each bucket.
func intraDecileImpact(baseline, reform *domain.Economy) (domain.IntraDecileImpact, error) {
	return intraDecileChange(baseline, reform, baseline.HouseholdIncomeDecile)
}

// intraWealthDecileImpact is the same algorithm keyed on wealth decile,
// uk-only.
func intraWealthDecileImpact(baseline, reform *domain.Economy, country string) (*domain.IntraDecileImpact, error) {
	if country != countryUK {
		return nil, nil
	}
	impact, err := intraDecileChange(baseline, reform, baseline.HouseholdWealthDecile)
	if err != nil {
		return nil, err
	}
	return &impact, nil
}

func intraDecileChange(baseline, reform *domain.Economy, ranks []int) (domain.IntraDecileImpact, error) {
	baselineIncome, err := microdata.New(baseline.HouseholdNetIncome, baseline.HouseholdWeight)
	if err != nil {
		return domain.IntraDecileImpact{}, fmt.Errorf("baseline income series: %w", err)
	}
	reformIncome, err := microdata.New(reform.HouseholdNetIncome, baselineIncome.Weights())
	if err != nil {
		return domain.IntraDecileImpact{}, fmt.Errorf("reform income series: %w", err)
	}
	people, err := microdata.New(baseline.HouseholdCountPeople, baselineIncome.Weights())
	if err != nil {
		return domain.IntraDecileImpact{}, fmt.Errorf("people series: %w", err)
	}
	if len(ranks) != baselineIncome.Len() {
		return domain.IntraDecileImpact{}, fmt.Errorf("decile ranks: %d ranks over %d households: %w",
			len(ranks), baselineIncome.Len(), microdata.ErrLengthMismatch)
	}

	// Proportional income change with both sides clamped to a floor of one
	// currency unit, while the raw absolute change is carried through so
	// genuine small-income movements keep their sign and magnitude.
	incomeChange := make([]float64, baselineIncome.Len())
	for i, base := range baselineIncome.Values() {
		ref := reformIncome.Values()[i]
		cappedBase := math.Max(base, 1)
		cappedRef := math.Max(ref, 1) + (ref - base)
		incomeChange[i] = (cappedRef - cappedBase) / cappedBase
	}

	deciles := make(map[string][]float64, len(domain.OutcomeLabels))
	all := make(map[string]float64, len(domain.OutcomeLabels))
	for b, label := range domain.OutcomeLabels {
		lower, upper := outcomeBounds[b], outcomeBounds[b+1]
		shares := make([]float64, 0, 10)
		for decile := 1; decile <= 10; decile++ {
			var peopleInBoth, peopleInDecile float64
			for i, rank := range ranks {
				if rank != decile {
					continue
				}
				w := people.Values()[i] * people.Weights()[i]
				peopleInDecile += w
				if incomeChange[i] > lower && incomeChange[i] <= upper {
					peopleInBoth += w
				}
			}
			// An empty decile reports a zero share, not NaN.
			var share float64
			if peopleInDecile != 0 {
				share = peopleInBoth / peopleInDecile
			}
			shares = append(shares, share)
		}
		deciles[label] = shares

		var total float64
		for _, share := range shares {
			total += share
		}
		all[label] = total / 10
	}

	return domain.IntraDecileImpact{Deciles: deciles, All: all}, nil
}
