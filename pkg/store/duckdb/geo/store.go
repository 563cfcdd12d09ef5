package geo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pe-tools/impact-atlas/pkg/models/domain"
	storegeo "github.com/pe-tools/impact-atlas/pkg/store/geo"
)

type store struct {
	db *sql.DB
}

// NewStore creates a geographic store over a DuckDB handle holding the
// constituencies and constituency_weights tables.
func NewStore(db *sql.DB) (storegeo.Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db handle is required")
	}
	return &store{db: db}, nil
}

func (s *store) Constituencies(ctx context.Context) ([]domain.Constituency, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT code, name, x, y FROM constituencies ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("query constituencies: %w", err)
	}
	defer rows.Close()

	var constituencies []domain.Constituency
	for rows.Next() {
		var c domain.Constituency
		if err := rows.Scan(&c.Code, &c.Name, &c.X, &c.Y); err != nil {
			return nil, fmt.Errorf("scan constituency: %w", err)
		}
		constituencies = append(constituencies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return constituencies, nil
}

func (s *store) Weights(ctx context.Context, year int) ([][]float64, error) {
	var areas, households int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT constituency_idx), COUNT(DISTINCT household_idx)
		 FROM constituency_weights WHERE year = ?`, year).Scan(&areas, &households)
	if err != nil {
		return nil, fmt.Errorf("query weight matrix shape: %w", err)
	}
	if areas == 0 {
		return nil, fmt.Errorf("no constituency weights for year %d", year)
	}

	matrix := make([][]float64, areas)
	for i := range matrix {
		matrix[i] = make([]float64, households)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT constituency_idx, household_idx, weight
		 FROM constituency_weights WHERE year = ?
		 ORDER BY constituency_idx, household_idx`, year)
	if err != nil {
		return nil, fmt.Errorf("query constituency weights: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var area, household int
		var weight float64
		if err := rows.Scan(&area, &household, &weight); err != nil {
			return nil, fmt.Errorf("scan constituency weight: %w", err)
		}
		if area < 0 || area >= areas || household < 0 || household >= households {
			return nil, fmt.Errorf("weight cell (%d, %d) outside %dx%d matrix", area, household, areas, households)
		}
		matrix[area][household] = weight
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matrix, nil
}
