package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourneyhub/tourneyhub/internal/models"
)

var tournamentRows = []string{
	"tournament_id", "name", "game", "description", "rules",
	"organizer_id", "organizer_name", "participants", "max_participants", "status",
	"start_date", "end_date", "registration_deadline", "prize", "judges",
	"created_at", "updated_at",
}

func tournamentRow(id uuid.UUID, name string, participants string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id.String(), name, "Chess", "An open tournament.", "Standard rules.",
		uuid.NewString(), "alice", []byte(participants), 16, models.StatusRegistration,
		now, now.Add(24 * time.Hour), now.Add(-24 * time.Hour), "$1,000", []byte(`[]`),
		now, now,
	}
}

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    TournamentFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    TournamentFilter{},
			wantQuery: `SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY created_at DESC LIMIT 100`,
			wantArgs:  nil,
		},
		{
			name:      "sentinel all ignored",
			filter:    TournamentFilter{Game: "all", Status: "all"},
			wantQuery: `SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY created_at DESC LIMIT 100`,
			wantArgs:  nil,
		},
		{
			name:      "game only",
			filter:    TournamentFilter{Game: "Chess"},
			wantQuery: `SELECT ` + tournamentColumns + ` FROM tournaments WHERE game = $1 ORDER BY created_at DESC LIMIT 100`,
			wantArgs:  []any{"Chess"},
		},
		{
			name:   "game and status",
			filter: TournamentFilter{Game: "Chess", Status: models.StatusActive},
			wantQuery: `SELECT ` + tournamentColumns +
				` FROM tournaments WHERE game = $1 AND status = $2 ORDER BY created_at DESC LIMIT 100`,
			wantArgs: []any{"Chess", "active"},
		},
		{
			name:   "search",
			filter: TournamentFilter{Search: "cup"},
			wantQuery: `SELECT ` + tournamentColumns +
				` FROM tournaments WHERE (name ILIKE $1 OR game ILIKE $1 OR organizer_name ILIKE $1) ORDER BY created_at DESC LIMIT 100`,
			wantArgs: []any{"%cup%"},
		},
		{
			name:   "search escapes like metacharacters",
			filter: TournamentFilter{Search: "100%_fun"},
			wantQuery: `SELECT ` + tournamentColumns +
				` FROM tournaments WHERE (name ILIKE $1 OR game ILIKE $1 OR organizer_name ILIKE $1) ORDER BY created_at DESC LIMIT 100`,
			wantArgs: []any{`%100\%\_fun%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListQuery(tt.filter)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestTournamentReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTournamentReadRepository(db)

	tournamentID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`FROM tournaments\s+WHERE tournament_id = \$1`).
			WithArgs(tournamentID).
			WillReturnRows(sqlmock.NewRows(tournamentRows).
				AddRow(tournamentRow(tournamentID, "Summer Cup", `["u1","u2"]`)...))

		tournament, err := repo.GetByID(context.Background(), tournamentID)
		require.NoError(t, err)
		require.NotNil(t, tournament)
		assert.Equal(t, tournamentID, tournament.TournamentID)
		assert.Equal(t, models.StringList{"u1", "u2"}, tournament.Participants)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM tournaments\s+WHERE tournament_id = \$1`).
			WithArgs(tournamentID).
			WillReturnRows(sqlmock.NewRows(tournamentRows))

		tournament, err := repo.GetByID(context.Background(), tournamentID)
		require.NoError(t, err)
		assert.Nil(t, tournament)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTournamentReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTournamentReadRepository(db)

	t.Run("filtered", func(t *testing.T) {
		mock.ExpectQuery(`WHERE game = \$1 AND status = \$2 ORDER BY created_at DESC LIMIT 100`).
			WithArgs("Chess", "registration").
			WillReturnRows(sqlmock.NewRows(tournamentRows).
				AddRow(tournamentRow(uuid.New(), "Summer Cup", `[]`)...))

		tournaments, err := repo.List(context.Background(), TournamentFilter{Game: "Chess", Status: "registration"})
		require.NoError(t, err)
		require.Len(t, tournaments, 1)
		assert.Equal(t, "Summer Cup", tournaments[0].Name)
	})

	t.Run("empty result", func(t *testing.T) {
		mock.ExpectQuery(`FROM tournaments ORDER BY created_at DESC LIMIT 100`).
			WillReturnRows(sqlmock.NewRows(tournamentRows))

		tournaments, err := repo.List(context.Background(), TournamentFilter{})
		require.NoError(t, err)
		assert.Empty(t, tournaments)
		assert.NotNil(t, tournaments)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTournamentReadRepository_ListByOrganizer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTournamentReadRepository(db)

	organizerID := uuid.New()

	mock.ExpectQuery(`WHERE organizer_id = \$1`).
		WithArgs(organizerID).
		WillReturnRows(sqlmock.NewRows(tournamentRows).
			AddRow(tournamentRow(uuid.New(), "Summer Cup", `[]`)...))

	tournaments, err := repo.ListByOrganizer(context.Background(), organizerID)
	require.NoError(t, err)
	assert.Len(t, tournaments, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTournamentReadRepository_CountByParticipant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTournamentReadRepository(db)

	userID := uuid.New()

	mock.ExpectQuery(`WHERE participants @> to_jsonb\(\$1::text\)`).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByParticipant(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTournamentWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTournamentWriteRepository(db)

	now := time.Now()
	tournament := &models.TournamentDB{
		TournamentID:         uuid.New(),
		Name:                 "Summer Cup",
		Game:                 "Chess",
		Description:          "An open tournament.",
		Rules:                "Standard rules.",
		OrganizerID:          uuid.New(),
		OrganizerName:        "alice",
		Participants:         models.StringList{},
		MaxParticipants:      16,
		Status:               models.StatusRegistration,
		StartDate:            now,
		EndDate:              now.Add(24 * time.Hour),
		RegistrationDeadline: now.Add(-24 * time.Hour),
		Prize:                "$1,000",
		Judges:               models.StringList{"judge1"},
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	mock.ExpectExec(`INSERT INTO tournaments`).
		WithArgs(
			tournament.TournamentID, "Summer Cup", "Chess", "An open tournament.", "Standard rules.",
			tournament.OrganizerID, "alice", []byte(`[]`), 16, models.StatusRegistration,
			now, now.Add(24*time.Hour), now.Add(-24*time.Hour), "$1,000", []byte(`["judge1"]`),
			now, now,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), tournament)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTournamentWriteRepository_AddParticipant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTournamentWriteRepository(db)

	tournamentID := uuid.New()
	userID := uuid.New()

	t.Run("joined", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE tournaments\s+SET participants = participants \|\| to_jsonb\(\$2::text\)`).
			WithArgs(tournamentID, userID.String()).
			WillReturnRows(sqlmock.NewRows(tournamentRows).
				AddRow(tournamentRow(tournamentID, "Summer Cup", `["`+userID.String()+`"]`)...))

		tournament, err := repo.AddParticipant(context.Background(), tournamentID, userID)
		require.NoError(t, err)
		require.NotNil(t, tournament)
		assert.True(t, tournament.Participants.Contains(userID.String()))
	})

	t.Run("guard rejected", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE tournaments`).
			WithArgs(tournamentID, userID.String()).
			WillReturnRows(sqlmock.NewRows(tournamentRows))

		_, err := repo.AddParticipant(context.Background(), tournamentID, userID)
		assert.ErrorIs(t, err, ErrJoinConditionFailed)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE tournaments`).
			WithArgs(tournamentID, userID.String()).
			WillReturnError(errors.New("db down"))

		_, err := repo.AddParticipant(context.Background(), tournamentID, userID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrJoinConditionFailed)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTournamentWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTournamentWriteRepository(db)

	tournamentID := uuid.New()
	name := "Autumn Cup"

	t.Run("patched", func(t *testing.T) {
		mock.ExpectQuery(`SET name = COALESCE\(\$2, name\)`).
			WithArgs(tournamentID, &name, nil, nil, nil).
			WillReturnRows(sqlmock.NewRows(tournamentRows).
				AddRow(tournamentRow(tournamentID, name, `[]`)...))

		tournament, err := repo.Update(context.Background(), tournamentID, &name, nil, nil, nil)
		require.NoError(t, err)
		require.NotNil(t, tournament)
		assert.Equal(t, name, tournament.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SET name = COALESCE\(\$2, name\)`).
			WithArgs(tournamentID, &name, nil, nil, nil).
			WillReturnRows(sqlmock.NewRows(tournamentRows))

		tournament, err := repo.Update(context.Background(), tournamentID, &name, nil, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, tournament)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
