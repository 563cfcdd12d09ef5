package domain

// EconomyType tags the shape of a simulated economy snapshot.
type EconomyType string

const (
	EconomyTypeGeneral EconomyType = "general"
	EconomyTypeCliff   EconomyType = "cliff"
)

// Economy is a per-scenario snapshot produced by the microsimulation engine.
// Baseline and reform snapshots cover the same unit population with the same
// weights and row ordering; only outcome values differ. Household arrays are
// parallel to each other, as are person arrays.
type Economy struct {
	Type EconomyType

	// Population-level monetary aggregates.
	TotalTax       float64
	TotalStateTax  float64
	TotalBenefits  float64
	TotalNetIncome float64

	// Per-program budget totals. Only itemised for country contexts that
	// support them; empty otherwise.
	Programs map[string]float64

	// Household-level arrays.
	HouseholdNetIncome    []float64
	HouseholdWeight       []float64
	HouseholdCountPeople  []float64
	HouseholdIncomeDecile []int
	// HouseholdWealthDecile is nil for countries without a wealth ranking.
	HouseholdWealthDecile []int

	// Person-level arrays.
	PersonWeight        []float64
	PersonInPoverty     []bool
	PersonInDeepPoverty []bool
	Age                 []float64
	// IsMale is nil when the source population carries no sex flag.
	IsMale []bool
	// Race is nil when the source population carries no race attribute.
	// Values are WHITE, BLACK, HISPANIC or OTHER.
	Race []string

	// Labor supply responses.
	SubstitutionLSR               float64
	IncomeLSR                     float64
	BudgetaryImpactLSR            float64
	SubstitutionLSRHH             []float64
	IncomeLSRHH                   []float64
	EmploymentIncomeHH            []float64
	SelfEmploymentIncomeHH        []float64
	WeeklyHours                   float64
	WeeklyHoursIncomeEffect       float64
	WeeklyHoursSubstitutionEffect float64

	// Cliff metrics, populated only for EconomyTypeCliff snapshots.
	CliffGap   float64
	CliffShare float64
}

// ComparisonRequest carries the two pre-computed economies plus the country
// context they were simulated under.
type ComparisonRequest struct {
	// IsComparison marks the source simulation as a baseline/reform pair.
	// Requests without it are rejected.
	IsComparison bool
	Country      string
	Baseline     *Economy
	Reform       *Economy
}
