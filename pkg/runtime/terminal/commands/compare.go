package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pe-tools/impact-atlas/pkg/adapters"
	"github.com/pe-tools/impact-atlas/pkg/models/api"
	"github.com/pe-tools/impact-atlas/pkg/models/domain"
	"github.com/pe-tools/impact-atlas/pkg/runtime/terminal/export"
	"github.com/pe-tools/impact-atlas/pkg/services/comparison"
	"github.com/pe-tools/impact-atlas/pkg/services/config"
	"github.com/pe-tools/impact-atlas/pkg/store/duckdb"
	duckdbgeo "github.com/pe-tools/impact-atlas/pkg/store/duckdb/geo"
	"github.com/pe-tools/impact-atlas/pkg/store/geo"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type CompareCmd struct {
	baselinePath string
	reformPath   string
	country      string
	profilesPath string
	geoDBPath    string
	format       string
	reporter     *export.Reporter
}

func NewCompareCmd(reporter *export.Reporter) *cobra.Command {
	cc := &CompareCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two simulated economy snapshots",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.baselinePath, "baseline", "", "Path to the baseline economy JSON file")
	cmd.Flags().StringVar(&cc.reformPath, "reform", "", "Path to the reform economy JSON file")
	cmd.Flags().StringVar(&cc.country, "country", "", "Country context id (e.g. uk, us)")
	cmd.Flags().StringVar(&cc.profilesPath, "profiles", "", "Path to the country profiles ini file")
	cmd.Flags().StringVar(&cc.geoDBPath, "geo-db", "", "Path to the constituency weights database (optional)")
	cmd.Flags().StringVar(&cc.format, "format", "table", "Output format: table or json")

	_ = cmd.MarkFlagRequired("baseline")
	_ = cmd.MarkFlagRequired("reform")
	_ = cmd.MarkFlagRequired("country")
	_ = cmd.MarkFlagRequired("profiles")

	return cmd
}

func (cc *CompareCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 120*time.Second)
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	baseline, err := readEconomy(cc.baselinePath)
	if err != nil {
		return fmt.Errorf("failed to read baseline economy: %w", err)
	}
	reform, err := readEconomy(cc.reformPath)
	if err != nil {
		return fmt.Errorf("failed to read reform economy: %w", err)
	}

	registry, err := config.NewRegistry(cc.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load country profiles: %w", err)
	}

	var geoStore geo.Store
	if cc.geoDBPath != "" {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: cc.geoDBPath})
		if err != nil {
			return fmt.Errorf("failed to open geo database: %w", err)
		}
		defer db.Close()
		geoStore, err = duckdbgeo.NewStore(db)
		if err != nil {
			return err
		}
	}

	service := comparison.NewService(registry, geoStore)
	result, err := service.Compare(ctx, domain.ComparisonRequest{
		IsComparison: true,
		Country:      cc.country,
		Baseline:     adapters.MapEconomyApiToDomain(baseline),
		Reform:       adapters.MapEconomyApiToDomain(reform),
	})
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	response := adapters.MapComparisonResultDomainToApi(result)
	if cc.format == "json" {
		return cc.reporter.HandleJSON(response)
	}
	return cc.reporter.Handle(response)
}

func readEconomy(path string) (*api.Economy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var economy api.Economy
	if err := json.Unmarshal(data, &economy); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &economy, nil
}
