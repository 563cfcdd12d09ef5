package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetaryImpact(t *testing.T) {
	baseline := generalEconomy()
	reform := copyEconomy(baseline)
	reform.TotalTax = 1100
	reform.TotalStateTax = 190
	reform.TotalBenefits = 430

	impact := budgetaryImpact(baseline, reform)

	assert.InDelta(t, 100, impact.TaxRevenueImpact, 1e-12)
	assert.InDelta(t, -10, impact.StateTaxRevenueImpact, 1e-12)
	assert.InDelta(t, 30, impact.BenefitSpendingImpact, 1e-12)
	// Net budgetary impact is revenue gain minus extra spending.
	assert.InDelta(t, 70, impact.BudgetaryImpact, 1e-12)
	assert.InDelta(t, 10, impact.Households, 1e-12)
	assert.InDelta(t, 550, impact.BaselineNetIncome, 1e-12)
}

func TestDetailedBudgetaryImpact_UK(t *testing.T) {
	baseline := generalEconomy()
	reform := copyEconomy(baseline)
	reform.Programs = map[string]float64{"child_benefit": 150, "income_tax": -900}

	detailed := detailedBudgetaryImpact(baseline, reform, "uk")
	require.Len(t, detailed, 2)

	childBenefit := detailed["child_benefit"]
	assert.InDelta(t, 100, childBenefit.Baseline, 1e-12)
	assert.InDelta(t, 150, childBenefit.Reform, 1e-12)
	assert.InDelta(t, 50, childBenefit.Difference, 1e-12)

	incomeTax := detailed["income_tax"]
	assert.InDelta(t, 0, incomeTax.Difference, 1e-12)
}

func TestDetailedBudgetaryImpact_NonUKEmpty(t *testing.T) {
	baseline := generalEconomy()
	reform := copyEconomy(baseline)

	detailed := detailedBudgetaryImpact(baseline, reform, "us")
	assert.Empty(t, detailed)
}
