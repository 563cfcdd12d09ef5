package comparison

import (
	"context"
	"testing"

	"github.com/pe-tools/impact-atlas/pkg/models/domain"
	"github.com/pe-tools/impact-atlas/pkg/services/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRegistry struct{ mock.Mock }

func (m *mockRegistry) GetProfiles(ctx context.Context) ([]config.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]config.Profile), args.Error(1)
}

func (m *mockRegistry) GetProfile(ctx context.Context, country string) (*config.Profile, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Profile), args.Error(1)
}

// generalEconomy builds the 10-household reference population: weights 1,
// baseline net incomes 10..100, one person per household, deciles 1..10.
func generalEconomy() *domain.Economy {
	incomes := make([]float64, 10)
	weights := make([]float64, 10)
	people := make([]float64, 10)
	deciles := make([]int, 10)
	wealthDeciles := make([]int, 10)
	zeros := make([]float64, 10)
	for i := 0; i < 10; i++ {
		incomes[i] = float64((i + 1) * 10)
		weights[i] = 1
		people[i] = 1
		deciles[i] = i + 1
		wealthDeciles[i] = 10 - i
	}

	ages := []float64{5, 12, 25, 30, 40, 50, 60, 64, 70, 80}
	isMale := []bool{true, false, true, false, true, false, true, false, true, false}
	race := []string{"WHITE", "BLACK", "HISPANIC", "OTHER", "WHITE", "BLACK", "HISPANIC", "OTHER", "WHITE", "BLACK"}
	inPoverty := []bool{true, true, false, false, false, false, false, false, false, false}
	inDeepPoverty := []bool{true, false, false, false, false, false, false, false, false, false}
	personWeights := make([]float64, 10)
	for i := range personWeights {
		personWeights[i] = 1
	}

	return &domain.Economy{
		Type:                   domain.EconomyTypeGeneral,
		TotalTax:               1000,
		TotalStateTax:          200,
		TotalBenefits:          400,
		TotalNetIncome:         550,
		Programs:               map[string]float64{"child_benefit": 100, "income_tax": -900},
		HouseholdNetIncome:     incomes,
		HouseholdWeight:        weights,
		HouseholdCountPeople:   people,
		HouseholdIncomeDecile:  deciles,
		HouseholdWealthDecile:  wealthDeciles,
		PersonWeight:           personWeights,
		PersonInPoverty:        inPoverty,
		PersonInDeepPoverty:    inDeepPoverty,
		Age:                    ages,
		IsMale:                 isMale,
		Race:                   race,
		SubstitutionLSRHH:      append([]float64(nil), zeros...),
		IncomeLSRHH:            append([]float64(nil), zeros...),
		EmploymentIncomeHH:     append([]float64(nil), incomes...),
		SelfEmploymentIncomeHH: append([]float64(nil), zeros...),
		WeeklyHours:            370,
	}
}

func copyEconomy(e *domain.Economy) *domain.Economy {
	clone := *e
	clone.HouseholdNetIncome = append([]float64(nil), e.HouseholdNetIncome...)
	clone.SubstitutionLSRHH = append([]float64(nil), e.SubstitutionLSRHH...)
	clone.IncomeLSRHH = append([]float64(nil), e.IncomeLSRHH...)
	clone.PersonInPoverty = append([]bool(nil), e.PersonInPoverty...)
	clone.PersonInDeepPoverty = append([]bool(nil), e.PersonInDeepPoverty...)
	return &clone
}

// reformEconomy adds 50 to the decile-10 household only.
func reformEconomy(baseline *domain.Economy) *domain.Economy {
	reform := copyEconomy(baseline)
	reform.HouseholdNetIncome[9] += 50
	reform.TotalNetIncome += 50
	reform.TotalTax -= 20
	return reform
}

func ukRegistry(t *testing.T) *mockRegistry {
	t.Helper()
	registry := new(mockRegistry)
	registry.On("GetProfile", mock.Anything, "uk").
		Return(&config.Profile{Name: "uk", Version: "2.31.0", WeightsYear: 2025}, nil)
	return registry
}

func TestCompare_RejectsNonComparison(t *testing.T) {
	svc := NewService(nil, nil)
	_, err := svc.Compare(context.Background(), domain.ComparisonRequest{
		IsComparison: false,
		Baseline:     generalEconomy(),
		Reform:       generalEconomy(),
	})
	assert.ErrorIs(t, err, ErrNotComparison)
}

func TestCompare_RequiresBothEconomies(t *testing.T) {
	svc := NewService(nil, nil)
	_, err := svc.Compare(context.Background(), domain.ComparisonRequest{
		IsComparison: true,
		Baseline:     generalEconomy(),
	})
	assert.Error(t, err)
}

func TestCompare_CliffBranch(t *testing.T) {
	svc := NewService(nil, nil)
	baseline := &domain.Economy{Type: domain.EconomyTypeCliff, CliffGap: 120, CliffShare: 0.04}
	reform := &domain.Economy{Type: domain.EconomyTypeCliff, CliffGap: 90, CliffShare: 0.03}

	result, err := svc.Compare(context.Background(), domain.ComparisonRequest{
		IsComparison: true,
		Country:      "us",
		Baseline:     baseline,
		Reform:       reform,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ResultKindCliff, result.Kind)
	assert.Nil(t, result.General)
	require.NotNil(t, result.Cliff)
	assert.Equal(t, 120.0, result.Cliff.Baseline.CliffGap)
	assert.Equal(t, 0.03, result.Cliff.Reform.CliffShare)
}

func TestCompare_GeneralReport(t *testing.T) {
	registry := ukRegistry(t)
	svc := NewService(registry, nil)

	baseline := generalEconomy()
	reform := reformEconomy(baseline)

	result, err := svc.Compare(context.Background(), domain.ComparisonRequest{
		IsComparison: true,
		Country:      "uk",
		Baseline:     baseline,
		Reform:       reform,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ResultKindGeneral, result.Kind)
	require.NotNil(t, result.General)
	report := result.General

	assert.Equal(t, "2.31.0", report.CountryPackageVersion)
	assert.InDelta(t, -20, report.Budget.TaxRevenueImpact, 1e-12)
	assert.InDelta(t, 10, report.Budget.Households, 1e-12)

	// uk context: wealth and detailed budget sub-reports are present.
	assert.NotNil(t, report.WealthDecile)
	assert.NotNil(t, report.IntraWealthDecile)
	assert.NotEmpty(t, report.DetailedBudget)
	// No geographic store was provided, so the constituency field is
	// omitted while the rest of the report succeeds.
	assert.Nil(t, report.Constituency)

	assert.InDelta(t, 0.5, report.Decile.Relative[10], 1e-12)
	for decile := 1; decile <= 9; decile++ {
		assert.InDelta(t, 0, report.Decile.Relative[decile], 1e-12)
	}
	registry.AssertExpectations(t)
}

func TestCompare_NonUKOmitsConditionalReports(t *testing.T) {
	registry := new(mockRegistry)
	registry.On("GetProfile", mock.Anything, "us").
		Return(&config.Profile{Name: "us", Version: "1.110.0"}, nil)
	svc := NewService(registry, nil)

	baseline := generalEconomy()
	result, err := svc.Compare(context.Background(), domain.ComparisonRequest{
		IsComparison: true,
		Country:      "us",
		Baseline:     baseline,
		Reform:       copyEconomy(baseline),
	})
	require.NoError(t, err)
	report := result.General

	assert.Nil(t, report.WealthDecile)
	assert.Nil(t, report.IntraWealthDecile)
	assert.Nil(t, report.Constituency)
	assert.Empty(t, report.DetailedBudget)
}

func TestCompare_ZeroChangeScenario(t *testing.T) {
	registry := ukRegistry(t)
	svc := NewService(registry, nil)

	baseline := generalEconomy()
	result, err := svc.Compare(context.Background(), domain.ComparisonRequest{
		IsComparison: true,
		Country:      "uk",
		Baseline:     baseline,
		Reform:       copyEconomy(baseline),
	})
	require.NoError(t, err)
	report := result.General

	assert.Equal(t, 0.0, report.Budget.BudgetaryImpact)
	assert.Equal(t, 0.0, report.Budget.TaxRevenueImpact)
	for decile := 1; decile <= 10; decile++ {
		assert.Equal(t, 0.0, report.Decile.Relative[decile])
		assert.Equal(t, 0.0, report.Decile.Average[decile])
	}
	for decile := 0; decile < 10; decile++ {
		assert.Equal(t, 1.0, report.IntraDecile.Deciles[domain.OutcomeNoChange][decile])
	}
	assert.Equal(t, 1.0, report.IntraDecile.All[domain.OutcomeNoChange])
	assert.Equal(t, report.Inequality.Gini.Baseline, report.Inequality.Gini.Reform)
	assert.Equal(t, report.Poverty.Poverty.All.Baseline, report.Poverty.Poverty.All.Reform)
}

func TestCompare_Idempotent(t *testing.T) {
	registry := ukRegistry(t)
	svc := NewService(registry, nil)

	baseline := generalEconomy()
	reform := reformEconomy(baseline)
	req := domain.ComparisonRequest{
		IsComparison: true,
		Country:      "uk",
		Baseline:     baseline,
		Reform:       reform,
	}

	first, err := svc.Compare(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Compare(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompare_SwapNegatesDeltas(t *testing.T) {
	registry := ukRegistry(t)
	svc := NewService(registry, nil)

	baseline := generalEconomy()
	reform := reformEconomy(baseline)
	// Keep decile assignments identical so the two directions group the
	// same households.
	reform.HouseholdIncomeDecile = baseline.HouseholdIncomeDecile

	forward, err := svc.Compare(context.Background(), domain.ComparisonRequest{
		IsComparison: true, Country: "uk", Baseline: baseline, Reform: reform,
	})
	require.NoError(t, err)
	backward, err := svc.Compare(context.Background(), domain.ComparisonRequest{
		IsComparison: true, Country: "uk", Baseline: reform, Reform: baseline,
	})
	require.NoError(t, err)

	assert.InDelta(t, -forward.General.Budget.TaxRevenueImpact, backward.General.Budget.TaxRevenueImpact, 1e-12)
	assert.InDelta(t, -forward.General.Budget.BudgetaryImpact, backward.General.Budget.BudgetaryImpact, 1e-12)
	for decile := 1; decile <= 10; decile++ {
		assert.InDelta(t, -forward.General.Decile.Average[decile], backward.General.Decile.Average[decile], 1e-12)
	}
}

func TestCompare_TypeMismatch(t *testing.T) {
	svc := NewService(nil, nil)
	baseline := generalEconomy()
	reform := copyEconomy(baseline)
	reform.Type = domain.EconomyTypeCliff

	_, err := svc.Compare(context.Background(), domain.ComparisonRequest{
		IsComparison: true, Country: "uk", Baseline: baseline, Reform: reform,
	})
	assert.Error(t, err)
}
