package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsReadRepository_CountTournaments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsReadRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tournaments`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	count, err := repo.CountTournaments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsReadRepository_CountOpenTournaments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsReadRepository(db)

	mock.ExpectQuery(`WHERE status IN \(\$1, \$2\)`).
		WithArgs("registration", "active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountOpenTournaments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsReadRepository_ListPrizes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsReadRepository(db)

	t.Run("non empty prizes", func(t *testing.T) {
		mock.ExpectQuery(`SELECT prize FROM tournaments WHERE prize <> ''`).
			WillReturnRows(sqlmock.NewRows([]string{"prize"}).
				AddRow("$1,000").
				AddRow("Bragging rights"))

		prizes, err := repo.ListPrizes(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"$1,000", "Bragging rights"}, prizes)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT prize FROM tournaments`).
			WillReturnError(errors.New("db down"))

		_, err := repo.ListPrizes(context.Background())
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
