package comparison

import (
	"context"
	"fmt"
	"strings"

	"github.com/pe-tools/impact-atlas/pkg/microdata"
	"github.com/pe-tools/impact-atlas/pkg/models/domain"
	"github.com/pe-tools/impact-atlas/pkg/store/geo"
)

// constituencyBreakdown re-weights the national sample against each
// constituency's local weight column and summarises the income change per
// constituency and per region. uk-only; other countries get nil.
func constituencyBreakdown(
	ctx context.Context,
	baseline, reform *domain.Economy,
	country string,
	year int,
	store geo.Store,
) (*domain.ConstituencyBreakdown, error) {
	if country != countryUK {
		return nil, nil
	}
	if store == nil {
		return nil, fmt.Errorf("geographic store unavailable")
	}

	constituencies, err := store.Constituencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("load constituencies: %w", err)
	}
	weights, err := store.Weights(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("load constituency weights for %d: %w", year, err)
	}
	if len(weights) != len(constituencies) {
		return nil, fmt.Errorf("weight matrix has %d rows for %d constituencies", len(weights), len(constituencies))
	}

	breakdown := &domain.ConstituencyBreakdown{
		ByConstituency:   make(map[string]domain.ConstituencyImpact, len(constituencies)),
		OutcomesByRegion: make(map[string]map[string]int, len(domain.Regions)),
	}
	for _, region := range domain.Regions {
		tally := make(map[string]int, len(domain.OutcomeLabels))
		for _, label := range domain.OutcomeLabels {
			tally[label] = 0
		}
		breakdown.OutcomesByRegion[region] = tally
	}

	for i, constituency := range constituencies {
		baselineIncome, err := microdata.New(baseline.HouseholdNetIncome, weights[i])
		if err != nil {
			return nil, fmt.Errorf("constituency %s: %w", constituency.Code, err)
		}
		reformIncome, err := microdata.New(reform.HouseholdNetIncome, weights[i])
		if err != nil {
			return nil, fmt.Errorf("constituency %s: %w", constituency.Code, err)
		}

		var averageChange, relativeChange float64
		if count := baselineIncome.Count(); count != 0 {
			averageChange = (reformIncome.Sum() - baselineIncome.Sum()) / count
		}
		if sum := baselineIncome.Sum(); sum != 0 {
			relativeChange = reformIncome.Sum()/sum - 1
		}

		breakdown.ByConstituency[constituency.Name] = domain.ConstituencyImpact{
			AverageHouseholdIncomeChange:  averageChange,
			RelativeHouseholdIncomeChange: relativeChange,
			X:                             constituency.X,
			Y:                             constituency.Y,
		}

		bucket := outcomeBucket(relativeChange)
		for _, region := range constituencyRegions(constituency.Code) {
			breakdown.OutcomesByRegion[region][bucket]++
		}
	}

	return breakdown, nil
}

// outcomeBucket classifies a constituency-level relative change with the
// same 5% / 0.1% thresholds used for per-unit classification.
func outcomeBucket(relativeChange float64) string {
	switch {
	case relativeChange > 0.05:
		return domain.OutcomeGainMore
	case relativeChange > 1e-3:
		return domain.OutcomeGainLess
	case relativeChange > -1e-3:
		return domain.OutcomeNoChange
	case relativeChange > -0.05:
		return domain.OutcomeLoseLess
	default:
		return domain.OutcomeLoseMore
	}
}

// constituencyRegions maps an area code to its regions: "uk" always, plus
// the first matching country letter in E/S/W/N order.
func constituencyRegions(code string) []string {
	regions := []string{"uk"}
	switch {
	case strings.Contains(code, "E"):
		regions = append(regions, "england")
	case strings.Contains(code, "S"):
		regions = append(regions, "scotland")
	case strings.Contains(code, "W"):
		regions = append(regions, "wales")
	case strings.Contains(code, "N"):
		regions = append(regions, "northern_ireland")
	}
	return regions
}
