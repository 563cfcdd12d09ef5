package comparison

import (
	"fmt"

	"github.com/pe-tools/impact-atlas/pkg/microdata"
	"github.com/pe-tools/impact-atlas/pkg/models/domain"
)

// laborSupplyResponse reports behavioural earnings responses: scalar
// substitution/income deltas, decile splits relative to pre-response
// earnings, and weekly hours effects.
func laborSupplyResponse(baseline, reform *domain.Economy) (domain.LaborSupplyResponse, error) {
	substitutionLSR := reform.SubstitutionLSR - baseline.SubstitutionLSR
	incomeLSR := reform.IncomeLSR - baseline.IncomeLSR
	revenueChange := reform.BudgetaryImpactLSR - baseline.BudgetaryImpactLSR

	n := len(baseline.HouseholdWeight)
	for name, arr := range map[string][]float64{
		"baseline substitution_lsr_hh": baseline.SubstitutionLSRHH,
		"reform substitution_lsr_hh":   reform.SubstitutionLSRHH,
		"baseline income_lsr_hh":       baseline.IncomeLSRHH,
		"reform income_lsr_hh":         reform.IncomeLSRHH,
		"employment_income_hh":         baseline.EmploymentIncomeHH,
		"self_employment_income_hh":    baseline.SelfEmploymentIncomeHH,
	} {
		if len(arr) != n {
			return domain.LaborSupplyResponse{}, fmt.Errorf("%s: %d values over %d households: %w",
				name, len(arr), n, microdata.ErrLengthMismatch)
		}
	}
	substitutionHH := make([]float64, n)
	incomeHH := make([]float64, n)
	totalHH := make([]float64, n)
	for i := 0; i < n; i++ {
		substitutionHH[i] = reform.SubstitutionLSRHH[i] - baseline.SubstitutionLSRHH[i]
		incomeHH[i] = reform.IncomeLSRHH[i] - baseline.IncomeLSRHH[i]
		totalHH[i] = substitutionHH[i] + incomeHH[i]
	}

	weights := baseline.HouseholdWeight
	empIncome, err := microdata.New(baseline.EmploymentIncomeHH, weights)
	if err != nil {
		return domain.LaborSupplyResponse{}, fmt.Errorf("employment income series: %w", err)
	}
	selfEmpIncome, err := microdata.New(baseline.SelfEmploymentIncomeHH, weights)
	if err != nil {
		return domain.LaborSupplyResponse{}, fmt.Errorf("self-employment income series: %w", err)
	}
	totalChangeSeries, err := microdata.New(totalHH, weights)
	if err != nil {
		return domain.LaborSupplyResponse{}, err
	}
	earnings, err := empIncome.Add(selfEmpIncome)
	if err != nil {
		return domain.LaborSupplyResponse{}, err
	}
	// Earnings before the behavioural response.
	originalEarnings, err := earnings.Sub(totalChangeSeries)
	if err != nil {
		return domain.LaborSupplyResponse{}, err
	}

	substitutionSeries, err := microdata.New(substitutionHH, weights)
	if err != nil {
		return domain.LaborSupplyResponse{}, err
	}
	incomeSeries, err := microdata.New(incomeHH, weights)
	if err != nil {
		return domain.LaborSupplyResponse{}, err
	}

	deciles := baseline.HouseholdIncomeDecile
	average := make(map[string]map[int]float64, 2)
	relative := make(map[string]map[int]float64, 2)
	for component, series := range map[string]*microdata.Series{
		"income":       incomeSeries,
		"substitution": substitutionSeries,
	} {
		means, err := series.GroupMean(deciles)
		if err != nil {
			return domain.LaborSupplyResponse{}, err
		}
		average[component] = means

		sums, err := series.GroupSum(deciles)
		if err != nil {
			return domain.LaborSupplyResponse{}, err
		}
		earningsSums, err := originalEarnings.GroupSum(deciles)
		if err != nil {
			return domain.LaborSupplyResponse{}, err
		}
		// Relative splits drop non-positive decile keys (units outside the
		// ranked population).
		rel := make(map[int]float64, len(sums))
		for decile, sum := range sums {
			if decile <= 0 {
				continue
			}
			if earningsSums[decile] == 0 {
				rel[decile] = 0
				continue
			}
			rel[decile] = sum / earningsSums[decile]
		}
		relative[component] = rel
	}

	relativeLSR := map[string]float64{"income": 0, "substitution": 0}
	if total := originalEarnings.Sum(); total != 0 {
		relativeLSR["income"] = incomeSeries.Sum() / total
		relativeLSR["substitution"] = substitutionSeries.Sum() / total
	}

	return domain.LaborSupplyResponse{
		SubstitutionLSR: substitutionLSR,
		IncomeLSR:       incomeLSR,
		RelativeLSR:     relativeLSR,
		TotalChange:     substitutionLSR + incomeLSR,
		RevenueChange:   revenueChange,
		Decile: domain.LaborSupplyDecile{
			Average:  average,
			Relative: relative,
		},
		Hours: domain.HoursResponse{
			Baseline:           baseline.WeeklyHours,
			Reform:             reform.WeeklyHours,
			Change:             reform.WeeklyHours - baseline.WeeklyHours,
			IncomeEffect:       reform.WeeklyHoursIncomeEffect - baseline.WeeklyHoursIncomeEffect,
			SubstitutionEffect: reform.WeeklyHoursSubstitutionEffect - baseline.WeeklyHoursSubstitutionEffect,
		},
	}, nil
}
