package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"

	"github.com/pe-tools/impact-atlas/pkg/models/api"
	"github.com/pe-tools/impact-atlas/pkg/services/config"
)

type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// HandleJSON writes the raw comparison result as indented JSON.
func (r *Reporter) HandleJSON(result api.ComparisonResult) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// Handle renders a human-readable summary of the comparison result.
func (r *Reporter) Handle(result api.ComparisonResult) error {
	if result.Kind == "cliff" && result.Cliff != nil {
		return r.handleCliff(result.Cliff)
	}
	if result.General == nil {
		return fmt.Errorf("result has no report payload")
	}
	return r.handleGeneral(result.General)
}

func (r *Reporter) handleCliff(report *api.CliffComparison) error {
	tmpl := `
Cliff comparison

               {{printf "%12s %12s" "baseline" "reform"}}
  cliff gap    {{printf "%12.2f %12.2f" .Baseline.CliffGap .Reform.CliffGap}}
  cliff share  {{printf "%11.2f%% %11.2f%%" (pct .Baseline.CliffShare) (pct .Reform.CliffShare)}}
`
	t, err := template.New("cliff").Funcs(reportFuncs()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, report)
}

func (r *Reporter) handleGeneral(report *api.EconomyComparison) error {
	tmpl := `
Economy comparison (country package {{.CountryPackageVersion}})

=== Budget ===
Budgetary impact:        {{printf "%.2f" .Budget.BudgetaryImpact}}
Tax revenue impact:      {{printf "%.2f" .Budget.TaxRevenueImpact}}
Benefit spending impact: {{printf "%.2f" .Budget.BenefitSpendingImpact}}
Households:              {{printf "%.0f" .Budget.Households}}

=== Inequality ===
Gini:           {{printf "%.4f -> %.4f" .Inequality.Gini.Baseline .Inequality.Gini.Reform}}
Top 10% share: {{printf "%.4f -> %.4f" .Inequality.Top10PctShare.Baseline .Inequality.Top10PctShare.Reform}}
Top 1% share:  {{printf "%.4f -> %.4f" .Inequality.Top1PctShare.Baseline .Inequality.Top1PctShare.Reform}}

=== Poverty (all people) ===
Poverty rate:      {{printf "%.2f%% -> %.2f%%" (pct .Poverty.Poverty.All.Baseline) (pct .Poverty.Poverty.All.Reform)}}
Deep poverty rate: {{printf "%.2f%% -> %.2f%%" (pct .Poverty.DeepPoverty.All.Baseline) (pct .Poverty.DeepPoverty.All.Reform)}}

=== Net income change by decile ===
{{range deciles .Decile.Relative}}  decile {{printf "%2d" .Key}}: {{printf "%+.2f%%" (pct .Value)}}
{{end}}
=== Population by outcome ===
{{range outcomes .IntraDecile.All}}  {{printf "%-20s %6.2f%%" .Key (pct .Value)}}
{{end}}`
	t, err := template.New("report").Funcs(reportFuncs()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, report)
}

// HandleProfiles renders the known country profiles.
func (r *Reporter) HandleProfiles(profiles []config.Profile) error {
	for _, p := range profiles {
		if _, err := fmt.Fprintf(r.writer, "%-8s version %s\n", p.Name, p.Version); err != nil {
			return err
		}
	}
	return nil
}

type intEntry struct {
	Key   int
	Value float64
}

type stringEntry struct {
	Key   string
	Value float64
}

func reportFuncs() template.FuncMap {
	return template.FuncMap{
		"pct": func(v float64) float64 { return v * 100 },
		"deciles": func(m map[int]float64) []intEntry {
			entries := make([]intEntry, 0, len(m))
			for k, v := range m {
				entries = append(entries, intEntry{Key: k, Value: v})
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
			return entries
		},
		"outcomes": func(m map[string]float64) []stringEntry {
			entries := make([]stringEntry, 0, len(m))
			for k, v := range m {
				entries = append(entries, stringEntry{Key: k, Value: v})
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
			return entries
		},
	}
}
