package adapters

import (
	"github.com/pe-tools/impact-atlas/pkg/models/api"
	"github.com/pe-tools/impact-atlas/pkg/models/domain"
)

func MapEconomyApiToDomain(e *api.Economy) *domain.Economy {
	if e == nil {
		return nil
	}
	return &domain.Economy{
		Type:                          domain.EconomyType(e.Type),
		TotalTax:                      e.TotalTax,
		TotalStateTax:                 e.TotalStateTax,
		TotalBenefits:                 e.TotalBenefits,
		TotalNetIncome:                e.TotalNetIncome,
		Programs:                      e.Programs,
		HouseholdNetIncome:            e.HouseholdNetIncome,
		HouseholdWeight:               e.HouseholdWeight,
		HouseholdCountPeople:          e.HouseholdCountPeople,
		HouseholdIncomeDecile:         e.HouseholdIncomeDecile,
		HouseholdWealthDecile:         e.HouseholdWealthDecile,
		PersonWeight:                  e.PersonWeight,
		PersonInPoverty:               e.PersonInPoverty,
		PersonInDeepPoverty:           e.PersonInDeepPoverty,
		Age:                           e.Age,
		IsMale:                        e.IsMale,
		Race:                          e.Race,
		SubstitutionLSR:               e.SubstitutionLSR,
		IncomeLSR:                     e.IncomeLSR,
		BudgetaryImpactLSR:            e.BudgetaryImpactLSR,
		SubstitutionLSRHH:             e.SubstitutionLSRHH,
		IncomeLSRHH:                   e.IncomeLSRHH,
		EmploymentIncomeHH:            e.EmploymentIncomeHH,
		SelfEmploymentIncomeHH:        e.SelfEmploymentIncomeHH,
		WeeklyHours:                   e.WeeklyHours,
		WeeklyHoursIncomeEffect:       e.WeeklyHoursIncomeEffect,
		WeeklyHoursSubstitutionEffect: e.WeeklyHoursSubstitutionEffect,
		CliffGap:                      e.CliffGap,
		CliffShare:                    e.CliffShare,
	}
}

func MapComparisonRequestApiToDomain(req api.ComparisonRequest) domain.ComparisonRequest {
	return domain.ComparisonRequest{
		IsComparison: req.IsComparison,
		Country:      req.Country,
		Baseline:     MapEconomyApiToDomain(req.Baseline),
		Reform:       MapEconomyApiToDomain(req.Reform),
	}
}

func MapComparisonResultDomainToApi(result *domain.ComparisonResult) api.ComparisonResult {
	out := api.ComparisonResult{Kind: string(result.Kind)}
	if result.General != nil {
		out.General = mapEconomyComparisonDomainToApi(result.General)
	}
	if result.Cliff != nil {
		out.Cliff = &api.CliffComparison{
			Baseline: api.CliffMetrics(result.Cliff.Baseline),
			Reform:   api.CliffMetrics(result.Cliff.Reform),
		}
	}
	return out
}

func mapEconomyComparisonDomainToApi(report *domain.EconomyComparison) *api.EconomyComparison {
	detailed := make(map[string]api.ProgramImpact, len(report.DetailedBudget))
	for program, impact := range report.DetailedBudget {
		detailed[program] = api.ProgramImpact(impact)
	}

	out := &api.EconomyComparison{
		CountryPackageVersion: report.CountryPackageVersion,
		Budget:                api.BudgetaryImpact(report.Budget),
		DetailedBudget:        detailed,
		Decile:                mapDecileImpact(report.Decile),
		Inequality: api.InequalityImpact{
			Gini:          api.BaselineReform(report.Inequality.Gini),
			Top10PctShare: api.BaselineReform(report.Inequality.Top10PctShare),
			Top1PctShare:  api.BaselineReform(report.Inequality.Top1PctShare),
		},
		Poverty: api.PovertyImpact{
			Poverty:     mapAgeGroupRates(report.Poverty.Poverty),
			DeepPoverty: mapAgeGroupRates(report.Poverty.DeepPoverty),
		},
		IntraDecile: mapIntraDecileImpact(report.IntraDecile),
		LaborSupply: api.LaborSupplyResponse{
			SubstitutionLSR: report.LaborSupply.SubstitutionLSR,
			IncomeLSR:       report.LaborSupply.IncomeLSR,
			RelativeLSR:     report.LaborSupply.RelativeLSR,
			TotalChange:     report.LaborSupply.TotalChange,
			RevenueChange:   report.LaborSupply.RevenueChange,
			Decile: api.LaborSupplyDecile{
				Average:  report.LaborSupply.Decile.Average,
				Relative: report.LaborSupply.Decile.Relative,
			},
			Hours: api.HoursResponse(report.LaborSupply.Hours),
		},
	}

	if report.PovertyByGender != nil {
		out.PovertyByGender = &api.PovertyGenderBreakdown{
			Poverty: api.GenderRates{
				Male:   api.BaselineReform(report.PovertyByGender.Poverty.Male),
				Female: api.BaselineReform(report.PovertyByGender.Poverty.Female),
			},
			DeepPoverty: api.GenderRates{
				Male:   api.BaselineReform(report.PovertyByGender.DeepPoverty.Male),
				Female: api.BaselineReform(report.PovertyByGender.DeepPoverty.Female),
			},
		}
	}
	if report.PovertyByRace != nil {
		out.PovertyByRace = &api.PovertyRaceBreakdown{
			Poverty: api.RaceRates{
				White:    api.BaselineReform(report.PovertyByRace.Poverty.White),
				Black:    api.BaselineReform(report.PovertyByRace.Poverty.Black),
				Hispanic: api.BaselineReform(report.PovertyByRace.Poverty.Hispanic),
				Other:    api.BaselineReform(report.PovertyByRace.Poverty.Other),
			},
		}
	}
	if report.WealthDecile != nil {
		mapped := mapDecileImpact(*report.WealthDecile)
		out.WealthDecile = &mapped
	}
	if report.IntraWealthDecile != nil {
		mapped := mapIntraDecileImpact(*report.IntraWealthDecile)
		out.IntraWealthDecile = &mapped
	}
	if report.Constituency != nil {
		byConstituency := make(map[string]api.ConstituencyImpact, len(report.Constituency.ByConstituency))
		for name, impact := range report.Constituency.ByConstituency {
			byConstituency[name] = api.ConstituencyImpact(impact)
		}
		out.Constituency = &api.ConstituencyBreakdown{
			ByConstituency:   byConstituency,
			OutcomesByRegion: report.Constituency.OutcomesByRegion,
		}
	}
	return out
}

func mapDecileImpact(impact domain.DecileImpact) api.DecileImpact {
	return api.DecileImpact{Relative: impact.Relative, Average: impact.Average}
}

func mapIntraDecileImpact(impact domain.IntraDecileImpact) api.IntraDecileImpact {
	return api.IntraDecileImpact{Deciles: impact.Deciles, All: impact.All}
}

func mapAgeGroupRates(rates domain.AgeGroupRates) api.AgeGroupRates {
	return api.AgeGroupRates{
		Child:  api.BaselineReform(rates.Child),
		Adult:  api.BaselineReform(rates.Adult),
		Senior: api.BaselineReform(rates.Senior),
		All:    api.BaselineReform(rates.All),
	}
}
