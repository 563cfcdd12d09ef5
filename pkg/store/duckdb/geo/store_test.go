package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_RequiresDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestStore_Constituencies(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT code, name, x, y FROM constituencies").
		WillReturnRows(sqlmock.NewRows([]string{"code", "name", "x", "y"}).
			AddRow("E14001000", "Aldershot", 1, 2).
			AddRow("S14000001", "Aberdeen North", 3, 4))

	store, err := NewStore(db)
	require.NoError(t, err)

	constituencies, err := store.Constituencies(context.Background())
	require.NoError(t, err)
	require.Len(t, constituencies, 2)
	assert.Equal(t, "E14001000", constituencies[0].Code)
	assert.Equal(t, "Aldershot", constituencies[0].Name)
	assert.Equal(t, 3, constituencies[1].X)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ConstituenciesQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT code, name, x, y FROM constituencies").
		WillReturnError(errors.New("no such table"))

	store, err := NewStore(db)
	require.NoError(t, err)

	_, err = store.Constituencies(context.Background())
	assert.Error(t, err)
}

func TestStore_Weights(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT constituency_idx\), COUNT\(DISTINCT household_idx\)`).
		WithArgs(2025).
		WillReturnRows(sqlmock.NewRows([]string{"areas", "households"}).AddRow(2, 3))
	mock.ExpectQuery("SELECT constituency_idx, household_idx, weight").
		WithArgs(2025).
		WillReturnRows(sqlmock.NewRows([]string{"constituency_idx", "household_idx", "weight"}).
			AddRow(0, 0, 1.5).
			AddRow(0, 2, 0.5).
			AddRow(1, 1, 2.0))

	store, err := NewStore(db)
	require.NoError(t, err)

	matrix, err := store.Weights(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, matrix, 2)
	assert.Equal(t, []float64{1.5, 0, 0.5}, matrix[0])
	assert.Equal(t, []float64{0, 2.0, 0}, matrix[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WeightsMissingYear(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT constituency_idx\), COUNT\(DISTINCT household_idx\)`).
		WithArgs(2031).
		WillReturnRows(sqlmock.NewRows([]string{"areas", "households"}).AddRow(0, 0))

	store, err := NewStore(db)
	require.NoError(t, err)

	_, err = store.Weights(context.Background(), 2031)
	assert.ErrorContains(t, err, "no constituency weights")
}

func TestStore_WeightsCellOutOfBounds(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT constituency_idx\), COUNT\(DISTINCT household_idx\)`).
		WithArgs(2025).
		WillReturnRows(sqlmock.NewRows([]string{"areas", "households"}).AddRow(1, 2))
	mock.ExpectQuery("SELECT constituency_idx, household_idx, weight").
		WithArgs(2025).
		WillReturnRows(sqlmock.NewRows([]string{"constituency_idx", "household_idx", "weight"}).
			AddRow(4, 0, 1.0))

	store, err := NewStore(db)
	require.NoError(t, err)

	_, err = store.Weights(context.Background(), 2025)
	assert.ErrorContains(t, err, "outside")
}
