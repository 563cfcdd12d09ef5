package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInequalityImpact(t *testing.T) {
	baseline := generalEconomy()
	reform := reformEconomy(baseline)

	impact, err := inequalityImpact(baseline, reform)
	require.NoError(t, err)

	// Gini of incomes 10..100 under equal weights is 0.3; the reform
	// concentrates 50 more on the richest household.
	assert.InDelta(t, 0.3, impact.Gini.Baseline, 1e-12)
	assert.InDelta(t, 0.35, impact.Gini.Reform, 1e-12)

	assert.InDelta(t, 100.0/550, impact.Top10PctShare.Baseline, 1e-12)
	assert.InDelta(t, 150.0/600, impact.Top10PctShare.Reform, 1e-12)

	// The top 1% covers a tenth of the richest unit, taken pro-rata.
	assert.InDelta(t, 10.0/550, impact.Top1PctShare.Baseline, 1e-12)
	assert.InDelta(t, 15.0/600, impact.Top1PctShare.Reform, 1e-12)
}

func TestInequalityImpact_WeightMismatch(t *testing.T) {
	baseline := generalEconomy()
	reform := reformEconomy(baseline)
	reform.HouseholdNetIncome = reform.HouseholdNetIncome[:5]

	_, err := inequalityImpact(baseline, reform)
	assert.Error(t, err)
}
