package domain

// Outcome bucket labels for per-unit and per-constituency income change.
const (
	OutcomeLoseMore = "Lose more than 5%"
	OutcomeLoseLess = "Lose less than 5%"
	OutcomeNoChange = "No change"
	OutcomeGainLess = "Gain less than 5%"
	OutcomeGainMore = "Gain more than 5%"
)

// OutcomeLabels lists the five buckets in ascending income-change order.
var OutcomeLabels = []string{
	OutcomeLoseMore,
	OutcomeLoseLess,
	OutcomeNoChange,
	OutcomeGainLess,
	OutcomeGainMore,
}

// Regions lists the geographic regions tallied by the constituency
// breakdown. "uk" covers every constituency.
var Regions = []string{"uk", "england", "scotland", "wales", "northern_ireland"}

// BaselineReform holds a statistic under both scenarios.
type BaselineReform struct {
	Baseline float64
	Reform   float64
}

// BudgetaryImpact totals the fiscal deltas between the two scenarios.
type BudgetaryImpact struct {
	BudgetaryImpact       float64
	TaxRevenueImpact      float64
	StateTaxRevenueImpact float64
	BenefitSpendingImpact float64
	Households            float64
	BaselineNetIncome     float64
}

// ProgramImpact reports one named benefit-or-tax program under both scenarios.
type ProgramImpact struct {
	Baseline   float64
	Reform     float64
	Difference float64
}

// DecileImpact maps decile rank (1-10) to the relative and average net
// income change within that decile.
type DecileImpact struct {
	Relative map[int]float64
	Average  map[int]float64
}

// InequalityImpact reports inequality indices under both scenarios.
type InequalityImpact struct {
	Gini          BaselineReform
	Top10PctShare BaselineReform
	Top1PctShare  BaselineReform
}

// AgeGroupRates holds poverty rates per age band.
type AgeGroupRates struct {
	Child  BaselineReform
	Adult  BaselineReform
	Senior BaselineReform
	All    BaselineReform
}

// PovertyImpact reports poverty and deep-poverty rates by age band.
type PovertyImpact struct {
	Poverty     AgeGroupRates
	DeepPoverty AgeGroupRates
}

// GenderRates holds poverty rates split by the sex flag.
type GenderRates struct {
	Male   BaselineReform
	Female BaselineReform
}

// PovertyGenderBreakdown reports poverty and deep-poverty rates by gender.
type PovertyGenderBreakdown struct {
	Poverty     GenderRates
	DeepPoverty GenderRates
}

// RaceRates holds poverty rates per race category.
type RaceRates struct {
	White    BaselineReform
	Black    BaselineReform
	Hispanic BaselineReform
	Other    BaselineReform
}

// PovertyRaceBreakdown reports poverty rates by race category.
type PovertyRaceBreakdown struct {
	Poverty RaceRates
}

// IntraDecileImpact reports, per outcome bucket, the weighted population
// share in each decile (index 0 = decile 1) plus an all-deciles average.
type IntraDecileImpact struct {
	Deciles map[string][]float64
	All     map[string]float64
}

// HoursResponse reports weekly hours worked under both scenarios.
type HoursResponse struct {
	Baseline           float64
	Reform             float64
	Change             float64
	IncomeEffect       float64
	SubstitutionEffect float64
}

// LaborSupplyDecile splits labor supply responses by income decile. The
// outer key is the response component ("income" or "substitution").
type LaborSupplyDecile struct {
	Average  map[string]map[int]float64
	Relative map[string]map[int]float64
}

// LaborSupplyResponse reports behavioural earnings responses to the reform.
type LaborSupplyResponse struct {
	SubstitutionLSR float64
	IncomeLSR       float64
	RelativeLSR     map[string]float64
	TotalChange     float64
	RevenueChange   float64
	Decile          LaborSupplyDecile
	Hours           HoursResponse
}

// ConstituencyImpact summarises one constituency under local re-weighting.
// X and Y are display coordinates passed through from the lookup table.
type ConstituencyImpact struct {
	AverageHouseholdIncomeChange  float64
	RelativeHouseholdIncomeChange float64
	X                             int
	Y                             int
}

// ConstituencyBreakdown reports per-constituency summaries and per-region
// outcome bucket tallies.
type ConstituencyBreakdown struct {
	ByConstituency   map[string]ConstituencyImpact
	OutcomesByRegion map[string]map[string]int
}

// EconomyComparison is the full report for a general comparison. Pointer
// fields are nil when the country context or source population does not
// support the breakdown.
type EconomyComparison struct {
	CountryPackageVersion string
	Budget                BudgetaryImpact
	DetailedBudget        map[string]ProgramImpact
	Decile                DecileImpact
	Inequality            InequalityImpact
	Poverty               PovertyImpact
	PovertyByGender       *PovertyGenderBreakdown
	PovertyByRace         *PovertyRaceBreakdown
	IntraDecile           IntraDecileImpact
	WealthDecile          *DecileImpact
	IntraWealthDecile     *IntraDecileImpact
	LaborSupply           LaborSupplyResponse
	Constituency          *ConstituencyBreakdown
}

// CliffMetrics quantifies marginal-rate discontinuities in one scenario.
type CliffMetrics struct {
	CliffGap   float64
	CliffShare float64
}

// CliffComparison is the report shape for cliff-type comparisons.
type CliffComparison struct {
	Baseline CliffMetrics
	Reform   CliffMetrics
}

// ResultKind discriminates the two comparison report shapes.
type ResultKind string

const (
	ResultKindGeneral ResultKind = "general"
	ResultKindCliff   ResultKind = "cliff"
)

// ComparisonResult is a tagged variant: exactly one of General or Cliff is
// set, according to Kind.
type ComparisonResult struct {
	Kind    ResultKind
	General *EconomyComparison
	Cliff   *CliffComparison
}

// GeneralResult wraps a full report in a tagged result.
func GeneralResult(report *EconomyComparison) *ComparisonResult {
	return &ComparisonResult{Kind: ResultKindGeneral, General: report}
}

// CliffResult wraps a cliff report in a tagged result.
func CliffResult(report *CliffComparison) *ComparisonResult {
	return &ComparisonResult{Kind: ResultKindCliff, Cliff: report}
}
