package api

// Economy is the wire form of a per-scenario snapshot.
type Economy struct {
	Type string `json:"type"`

	TotalTax       float64 `json:"total_tax"`
	TotalStateTax  float64 `json:"total_state_tax"`
	TotalBenefits  float64 `json:"total_benefits"`
	TotalNetIncome float64 `json:"total_net_income"`

	Programs map[string]float64 `json:"programs,omitempty"`

	HouseholdNetIncome    []float64 `json:"household_net_income"`
	HouseholdWeight       []float64 `json:"household_weight"`
	HouseholdCountPeople  []float64 `json:"household_count_people"`
	HouseholdIncomeDecile []int     `json:"household_income_decile"`
	HouseholdWealthDecile []int     `json:"household_wealth_decile,omitempty"`

	PersonWeight        []float64 `json:"person_weight"`
	PersonInPoverty     []bool    `json:"person_in_poverty"`
	PersonInDeepPoverty []bool    `json:"person_in_deep_poverty"`
	Age                 []float64 `json:"age"`
	IsMale              []bool    `json:"is_male,omitempty"`
	Race                []string  `json:"race,omitempty"`

	SubstitutionLSR               float64   `json:"substitution_lsr"`
	IncomeLSR                     float64   `json:"income_lsr"`
	BudgetaryImpactLSR            float64   `json:"budgetary_impact_lsr"`
	SubstitutionLSRHH             []float64 `json:"substitution_lsr_hh"`
	IncomeLSRHH                   []float64 `json:"income_lsr_hh"`
	EmploymentIncomeHH            []float64 `json:"employment_income_hh"`
	SelfEmploymentIncomeHH        []float64 `json:"self_employment_income_hh"`
	WeeklyHours                   float64   `json:"weekly_hours"`
	WeeklyHoursIncomeEffect       float64   `json:"weekly_hours_income_effect"`
	WeeklyHoursSubstitutionEffect float64   `json:"weekly_hours_substitution_effect"`

	CliffGap   float64 `json:"cliff_gap"`
	CliffShare float64 `json:"cliff_share"`
}

// ComparisonRequest is the wire form of a comparison invocation.
type ComparisonRequest struct {
	IsComparison bool     `json:"is_comparison"`
	Country      string   `json:"country"`
	Baseline     *Economy `json:"baseline"`
	Reform       *Economy `json:"reform"`
}
