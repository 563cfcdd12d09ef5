package geo

import (
	"context"

	"github.com/pe-tools/impact-atlas/pkg/models/domain"
)

// Store supplies the constituency re-weighting data consumed by the
// geographic aggregator. Implementations must return immutable data for the
// duration of one comparison; reads are blocking and cacheable.
type Store interface {
	// Constituencies returns the small-area metadata table in matrix row
	// order: the i-th constituency owns row i of the weight matrix.
	Constituencies(ctx context.Context) ([]domain.Constituency, error)
	// Weights returns the K x N weight matrix for a year: cell (i, j) is
	// the weight of population row j under constituency i's local
	// re-weighting.
	Weights(ctx context.Context, year int) ([][]float64, error)
}
