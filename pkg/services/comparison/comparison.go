package comparison

import (
	"context"
	"errors"
	"fmt"

	"github.com/pe-tools/impact-atlas/pkg/models/domain"
	"github.com/pe-tools/impact-atlas/pkg/services/config"
	"github.com/pe-tools/impact-atlas/pkg/store/geo"
	"github.com/rs/zerolog"
)

// ErrNotComparison is returned when a comparison is requested on a
// simulation that is not marked as a baseline/reform pair.
var ErrNotComparison = errors.New("simulation must be a comparison simulation")

// Service computes a distributional impact report from two pre-computed
// economy snapshots.
type Service interface {
	Compare(ctx context.Context, req domain.ComparisonRequest) (*domain.ComparisonResult, error)
}

type service struct {
	registry config.Registry
	geoStore geo.Store
}

// NewService creates the comparison service. The geographic store may be nil
// when constituency data is unavailable; the constituency sub-report is then
// omitted with a logged diagnostic instead of failing the comparison.
func NewService(registry config.Registry, geoStore geo.Store) Service {
	return &service{registry: registry, geoStore: geoStore}
}

func (s *service) Compare(ctx context.Context, req domain.ComparisonRequest) (*domain.ComparisonResult, error) {
	if !req.IsComparison {
		return nil, ErrNotComparison
	}
	if req.Baseline == nil || req.Reform == nil {
		return nil, fmt.Errorf("comparison requires both baseline and reform economies")
	}
	if req.Baseline.Type != req.Reform.Type {
		return nil, fmt.Errorf("economy type mismatch: baseline %q vs reform %q", req.Baseline.Type, req.Reform.Type)
	}

	switch req.Baseline.Type {
	case domain.EconomyTypeCliff:
		return domain.CliffResult(&domain.CliffComparison{
			Baseline: domain.CliffMetrics{CliffGap: req.Baseline.CliffGap, CliffShare: req.Baseline.CliffShare},
			Reform:   domain.CliffMetrics{CliffGap: req.Reform.CliffGap, CliffShare: req.Reform.CliffShare},
		}), nil
	case domain.EconomyTypeGeneral:
		report, err := s.generalComparison(ctx, req)
		if err != nil {
			return nil, err
		}
		return domain.GeneralResult(report), nil
	default:
		return nil, fmt.Errorf("unknown economy type %q", req.Baseline.Type)
	}
}

func (s *service) generalComparison(ctx context.Context, req domain.ComparisonRequest) (*domain.EconomyComparison, error) {
	logger := zerolog.Ctx(ctx)
	baseline, reform := req.Baseline, req.Reform
	country := req.Country

	var version string
	var weightsYear int
	if s.registry != nil {
		profile, err := s.registry.GetProfile(ctx, country)
		if err != nil {
			return nil, fmt.Errorf("resolve country profile: %w", err)
		}
		version = profile.Version
		weightsYear = profile.WeightsYear
	}

	decile, err := decileImpact(baseline, reform)
	if err != nil {
		return nil, fmt.Errorf("decile impact: %w", err)
	}
	inequality, err := inequalityImpact(baseline, reform)
	if err != nil {
		return nil, fmt.Errorf("inequality impact: %w", err)
	}
	poverty, err := povertyImpact(baseline, reform)
	if err != nil {
		return nil, fmt.Errorf("poverty impact: %w", err)
	}
	povertyByGender, err := povertyGenderBreakdown(baseline, reform)
	if err != nil {
		return nil, fmt.Errorf("poverty by gender: %w", err)
	}
	povertyByRace, err := povertyRaceBreakdown(baseline, reform)
	if err != nil {
		return nil, fmt.Errorf("poverty by race: %w", err)
	}
	intraDecile, err := intraDecileImpact(baseline, reform)
	if err != nil {
		return nil, fmt.Errorf("intra-decile impact: %w", err)
	}
	wealthDecile, err := wealthDecileImpact(baseline, reform, country)
	if err != nil {
		return nil, fmt.Errorf("wealth decile impact: %w", err)
	}
	intraWealthDecile, err := intraWealthDecileImpact(baseline, reform, country)
	if err != nil {
		return nil, fmt.Errorf("intra-wealth-decile impact: %w", err)
	}
	laborSupply, err := laborSupplyResponse(baseline, reform)
	if err != nil {
		return nil, fmt.Errorf("labor supply response: %w", err)
	}

	// The geographic read is the one aggregator with external I/O. Its
	// failure is isolated: the field stays nil and the rest of the report
	// still succeeds.
	constituency, err := constituencyBreakdown(ctx, baseline, reform, country, weightsYear, s.geoStore)
	if err != nil {
		logger.Warn().Err(err).Msg("constituency breakdown unavailable, omitting from report")
		constituency = nil
	}

	return &domain.EconomyComparison{
		CountryPackageVersion: version,
		Budget:                budgetaryImpact(baseline, reform),
		DetailedBudget:        detailedBudgetaryImpact(baseline, reform, country),
		Decile:                decile,
		Inequality:            inequality,
		Poverty:               poverty,
		PovertyByGender:       povertyByGender,
		PovertyByRace:         povertyByRace,
		IntraDecile:           intraDecile,
		WealthDecile:          wealthDecile,
		IntraWealthDecile:     intraWealthDecile,
		LaborSupply:           laborSupply,
		Constituency:          constituency,
	}, nil
}
