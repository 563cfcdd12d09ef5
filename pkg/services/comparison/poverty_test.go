package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPovertyImpact_AgeBands(t *testing.T) {
	baseline := generalEconomy()
	reform := copyEconomy(baseline)
	// The reform lifts the second child out of poverty.
	reform.PersonInPoverty[1] = false

	impact, err := povertyImpact(baseline, reform)
	require.NoError(t, err)

	// Both people in poverty are children (ages 5 and 12).
	assert.InDelta(t, 1.0, impact.Poverty.Child.Baseline, 1e-12)
	assert.InDelta(t, 0.5, impact.Poverty.Child.Reform, 1e-12)
	assert.InDelta(t, 0.0, impact.Poverty.Adult.Baseline, 1e-12)
	assert.InDelta(t, 0.0, impact.Poverty.Senior.Baseline, 1e-12)
	assert.InDelta(t, 0.2, impact.Poverty.All.Baseline, 1e-12)
	assert.InDelta(t, 0.1, impact.Poverty.All.Reform, 1e-12)

	// Only the first child is in deep poverty, unchanged by the reform.
	assert.InDelta(t, 0.5, impact.DeepPoverty.Child.Baseline, 1e-12)
	assert.InDelta(t, 0.5, impact.DeepPoverty.Child.Reform, 1e-12)
	assert.InDelta(t, 0.1, impact.DeepPoverty.All.Baseline, 1e-12)
}

func TestPovertyImpact_WeightedRates(t *testing.T) {
	baseline := generalEconomy()
	baseline.PersonWeight = []float64{3, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	reform := copyEconomy(baseline)

	impact, err := povertyImpact(baseline, reform)
	require.NoError(t, err)

	// The weight-3 child triples its contribution: 4 of 12 people are poor.
	assert.InDelta(t, 4.0/12, impact.Poverty.All.Baseline, 1e-12)
	assert.InDelta(t, 4.0/4, impact.Poverty.Child.Baseline, 1e-12)
}

func TestPovertyGenderBreakdown(t *testing.T) {
	baseline := generalEconomy()
	reform := copyEconomy(baseline)
	reform.PersonInPoverty[1] = false

	breakdown, err := povertyGenderBreakdown(baseline, reform)
	require.NoError(t, err)
	require.NotNil(t, breakdown)

	// One of five males (age 5) and one of five females (age 12) are poor.
	assert.InDelta(t, 0.2, breakdown.Poverty.Male.Baseline, 1e-12)
	assert.InDelta(t, 0.2, breakdown.Poverty.Female.Baseline, 1e-12)
	assert.InDelta(t, 0.2, breakdown.Poverty.Male.Reform, 1e-12)
	assert.InDelta(t, 0.0, breakdown.Poverty.Female.Reform, 1e-12)
	assert.InDelta(t, 0.2, breakdown.DeepPoverty.Male.Baseline, 1e-12)
	assert.InDelta(t, 0.0, breakdown.DeepPoverty.Female.Baseline, 1e-12)
}

func TestPovertyGenderBreakdown_NilWithoutSexFlag(t *testing.T) {
	baseline := generalEconomy()
	baseline.IsMale = nil
	reform := copyEconomy(baseline)

	breakdown, err := povertyGenderBreakdown(baseline, reform)
	require.NoError(t, err)
	assert.Nil(t, breakdown)
}

func TestPovertyRaceBreakdown(t *testing.T) {
	baseline := generalEconomy()
	reform := copyEconomy(baseline)

	breakdown, err := povertyRaceBreakdown(baseline, reform)
	require.NoError(t, err)
	require.NotNil(t, breakdown)

	// The two poor children are WHITE and BLACK, one of three people each.
	assert.InDelta(t, 1.0/3, breakdown.Poverty.White.Baseline, 1e-12)
	assert.InDelta(t, 1.0/3, breakdown.Poverty.Black.Baseline, 1e-12)
	assert.InDelta(t, 0.0, breakdown.Poverty.Hispanic.Baseline, 1e-12)
	assert.InDelta(t, 0.0, breakdown.Poverty.Other.Baseline, 1e-12)
}

func TestPovertyRaceBreakdown_NilWithoutRaceAttribute(t *testing.T) {
	baseline := generalEconomy()
	baseline.Race = nil
	reform := copyEconomy(baseline)

	breakdown, err := povertyRaceBreakdown(baseline, reform)
	require.NoError(t, err)
	assert.Nil(t, breakdown)
}
