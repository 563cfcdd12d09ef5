package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ConstituencySchema = `
	CREATE TABLE IF NOT EXISTS constituencies (
		idx INTEGER NOT NULL,
		code VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		PRIMARY KEY (idx)
	);
`

const ConstituencyWeightsSchema = `
	CREATE TABLE IF NOT EXISTS constituency_weights (
		year INTEGER NOT NULL,
		constituency_idx INTEGER NOT NULL,
		household_idx INTEGER NOT NULL,
		weight DOUBLE NOT NULL,
		PRIMARY KEY (year, constituency_idx, household_idx)
	);
`

var bootQueries = []string{
	ConstituencySchema,
	ConstituencyWeightsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
