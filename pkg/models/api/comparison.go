package api

type BaselineReform struct {
	Baseline float64 `json:"baseline"`
	Reform   float64 `json:"reform"`
}

type BudgetaryImpact struct {
	BudgetaryImpact       float64 `json:"budgetary_impact"`
	TaxRevenueImpact      float64 `json:"tax_revenue_impact"`
	StateTaxRevenueImpact float64 `json:"state_tax_revenue_impact"`
	BenefitSpendingImpact float64 `json:"benefit_spending_impact"`
	Households            float64 `json:"households"`
	BaselineNetIncome     float64 `json:"baseline_net_income"`
}

type ProgramImpact struct {
	Baseline   float64 `json:"baseline"`
	Reform     float64 `json:"reform"`
	Difference float64 `json:"difference"`
}

type DecileImpact struct {
	Relative map[int]float64 `json:"relative"`
	Average  map[int]float64 `json:"average"`
}

type InequalityImpact struct {
	Gini          BaselineReform `json:"gini"`
	Top10PctShare BaselineReform `json:"top_10_pct_share"`
	Top1PctShare  BaselineReform `json:"top_1_pct_share"`
}

type AgeGroupRates struct {
	Child  BaselineReform `json:"child"`
	Adult  BaselineReform `json:"adult"`
	Senior BaselineReform `json:"senior"`
	All    BaselineReform `json:"all"`
}

type PovertyImpact struct {
	Poverty     AgeGroupRates `json:"poverty"`
	DeepPoverty AgeGroupRates `json:"deep_poverty"`
}

type GenderRates struct {
	Male   BaselineReform `json:"male"`
	Female BaselineReform `json:"female"`
}

type PovertyGenderBreakdown struct {
	Poverty     GenderRates `json:"poverty"`
	DeepPoverty GenderRates `json:"deep_poverty"`
}

type RaceRates struct {
	White    BaselineReform `json:"white"`
	Black    BaselineReform `json:"black"`
	Hispanic BaselineReform `json:"hispanic"`
	Other    BaselineReform `json:"other"`
}

type PovertyRaceBreakdown struct {
	Poverty RaceRates `json:"poverty"`
}

type IntraDecileImpact struct {
	Deciles map[string][]float64 `json:"deciles"`
	All     map[string]float64   `json:"all"`
}

type HoursResponse struct {
	Baseline           float64 `json:"baseline"`
	Reform             float64 `json:"reform"`
	Change             float64 `json:"change"`
	IncomeEffect       float64 `json:"income_effect"`
	SubstitutionEffect float64 `json:"substitution_effect"`
}

type LaborSupplyDecile struct {
	Average  map[string]map[int]float64 `json:"average"`
	Relative map[string]map[int]float64 `json:"relative"`
}

type LaborSupplyResponse struct {
	SubstitutionLSR float64            `json:"substitution_lsr"`
	IncomeLSR       float64            `json:"income_lsr"`
	RelativeLSR     map[string]float64 `json:"relative_lsr"`
	TotalChange     float64            `json:"total_change"`
	RevenueChange   float64            `json:"revenue_change"`
	Decile          LaborSupplyDecile  `json:"decile"`
	Hours           HoursResponse      `json:"hours"`
}

type ConstituencyImpact struct {
	AverageHouseholdIncomeChange  float64 `json:"average_household_income_change"`
	RelativeHouseholdIncomeChange float64 `json:"relative_household_income_change"`
	X                             int     `json:"x"`
	Y                             int     `json:"y"`
}

type ConstituencyBreakdown struct {
	ByConstituency   map[string]ConstituencyImpact `json:"by_constituency"`
	OutcomesByRegion map[string]map[string]int     `json:"outcomes_by_region"`
}

type EconomyComparison struct {
	CountryPackageVersion string                   `json:"country_package_version"`
	Budget                BudgetaryImpact          `json:"budget"`
	DetailedBudget        map[string]ProgramImpact `json:"detailed_budget"`
	Decile                DecileImpact             `json:"decile"`
	Inequality            InequalityImpact         `json:"inequality"`
	Poverty               PovertyImpact            `json:"poverty"`
	PovertyByGender       *PovertyGenderBreakdown  `json:"poverty_by_gender"`
	PovertyByRace         *PovertyRaceBreakdown    `json:"poverty_by_race"`
	IntraDecile           IntraDecileImpact        `json:"intra_decile"`
	WealthDecile          *DecileImpact            `json:"wealth_decile"`
	IntraWealthDecile     *IntraDecileImpact       `json:"intra_wealth_decile"`
	LaborSupply           LaborSupplyResponse      `json:"labor_supply_response"`
	Constituency          *ConstituencyBreakdown   `json:"constituency_impact"`
}

type CliffMetrics struct {
	CliffGap   float64 `json:"cliff_gap"`
	CliffShare float64 `json:"cliff_share"`
}

type CliffComparison struct {
	Baseline CliffMetrics `json:"baseline"`
	Reform   CliffMetrics `json:"reform"`
}

// ComparisonResult is the tagged wire form: exactly one of General or Cliff
// is present, per Kind.
type ComparisonResult struct {
	Kind    string             `json:"kind"`
	General *EconomyComparison `json:"general,omitempty"`
	Cliff   *CliffComparison   `json:"cliff,omitempty"`
}
