package comparison

import (
	"fmt"

	"github.com/pe-tools/impact-atlas/pkg/microdata"
	"github.com/pe-tools/impact-atlas/pkg/models/domain"
)

type povertySeries struct {
	baseline     *microdata.Series
	reform       *microdata.Series
	baselineDeep *microdata.Series
	reformDeep   *microdata.Series
}

func newPovertySeries(baseline, reform *domain.Economy) (*povertySeries, error) {
	base, err := microdata.FromBools(baseline.PersonInPoverty, baseline.PersonWeight)
	if err != nil {
		return nil, fmt.Errorf("baseline poverty series: %w", err)
	}
	ref, err := microdata.FromBools(reform.PersonInPoverty, base.Weights())
	if err != nil {
		return nil, fmt.Errorf("reform poverty series: %w", err)
	}
	baseDeep, err := microdata.FromBools(baseline.PersonInDeepPoverty, base.Weights())
	if err != nil {
		return nil, fmt.Errorf("baseline deep poverty series: %w", err)
	}
	refDeep, err := microdata.FromBools(reform.PersonInDeepPoverty, base.Weights())
	if err != nil {
		return nil, fmt.Errorf("reform deep poverty series: %w", err)
	}
	return &povertySeries{baseline: base, reform: ref, baselineDeep: baseDeep, reformDeep: refDeep}, nil
}

// rates returns the baseline/reform weighted mean of an indicator pair over
// the sub-population selected by mask.
func rates(baseline, reform *microdata.Series, mask []bool) (domain.BaselineReform, error) {
	baseSub, err := baseline.Filter(mask)
	if err != nil {
		return domain.BaselineReform{}, err
	}
	refSub, err := reform.Filter(mask)
	if err != nil {
		return domain.BaselineReform{}, err
	}
	return domain.BaselineReform{Baseline: baseSub.Mean(), Reform: refSub.Mean()}, nil
}

// povertyImpact reports poverty and deep-poverty rates for the full
// population and per age band.
func povertyImpact(baseline, reform *domain.Economy) (domain.PovertyImpact, error) {
	series, err := newPovertySeries(baseline, reform)
	if err != nil {
		return domain.PovertyImpact{}, err
	}

	n := len(baseline.Age)
	child := make([]bool, n)
	adult := make([]bool, n)
	senior := make([]bool, n)
	all := make([]bool, n)
	for i, age := range baseline.Age {
		child[i] = age < 18
		adult[i] = age >= 18 && age < 65
		senior[i] = age >= 65
		all[i] = true
	}

	var impact domain.PovertyImpact
	for _, band := range []struct {
		mask     []bool
		standard *domain.BaselineReform
		deep     *domain.BaselineReform
	}{
		{child, &impact.Poverty.Child, &impact.DeepPoverty.Child},
		{adult, &impact.Poverty.Adult, &impact.DeepPoverty.Adult},
		{senior, &impact.Poverty.Senior, &impact.DeepPoverty.Senior},
		{all, &impact.Poverty.All, &impact.DeepPoverty.All},
	} {
		if *band.standard, err = rates(series.baseline, series.reform, band.mask); err != nil {
			return domain.PovertyImpact{}, err
		}
		if *band.deep, err = rates(series.baselineDeep, series.reformDeep, band.mask); err != nil {
			return domain.PovertyImpact{}, err
		}
	}
	return impact, nil
}

// povertyGenderBreakdown reports poverty rates by gender. A population
// without a sex flag yields nil, not an error.
func povertyGenderBreakdown(baseline, reform *domain.Economy) (*domain.PovertyGenderBreakdown, error) {
	if baseline.IsMale == nil {
		return nil, nil
	}
	series, err := newPovertySeries(baseline, reform)
	if err != nil {
		return nil, err
	}

	male := baseline.IsMale
	female := make([]bool, len(male))
	for i, m := range male {
		female[i] = !m
	}

	var breakdown domain.PovertyGenderBreakdown
	if breakdown.Poverty.Male, err = rates(series.baseline, series.reform, male); err != nil {
		return nil, err
	}
	if breakdown.Poverty.Female, err = rates(series.baseline, series.reform, female); err != nil {
		return nil, err
	}
	if breakdown.DeepPoverty.Male, err = rates(series.baselineDeep, series.reformDeep, male); err != nil {
		return nil, err
	}
	if breakdown.DeepPoverty.Female, err = rates(series.baselineDeep, series.reformDeep, female); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

// povertyRaceBreakdown reports poverty rates by race category. A population
// without a race attribute yields nil, not an error. Deep poverty is not
// split by race.
func povertyRaceBreakdown(baseline, reform *domain.Economy) (*domain.PovertyRaceBreakdown, error) {
	if baseline.Race == nil {
		return nil, nil
	}
	series, err := newPovertySeries(baseline, reform)
	if err != nil {
		return nil, err
	}

	categoryMask := func(category string) []bool {
		mask := make([]bool, len(baseline.Race))
		for i, r := range baseline.Race {
			mask[i] = r == category
		}
		return mask
	}

	var breakdown domain.PovertyRaceBreakdown
	for _, group := range []struct {
		category string
		target   *domain.BaselineReform
	}{
		{"WHITE", &breakdown.Poverty.White},
		{"BLACK", &breakdown.Poverty.Black},
		{"HISPANIC", &breakdown.Poverty.Hispanic},
		{"OTHER", &breakdown.Poverty.Other},
	} {
		if *group.target, err = rates(series.baseline, series.reform, categoryMask(group.category)); err != nil {
			return nil, err
		}
	}
	return &breakdown, nil
}
