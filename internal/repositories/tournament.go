package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/models"
)

const tournamentColumns = `tournament_id, name, game, description, rules, organizer_id, organizer_name, participants, max_participants, status, start_date, end_date, registration_deadline, prize, judges, created_at, updated_at`

// listLimit caps listing queries. This is pagination-less truncation:
// callers see at most the newest listLimit matches.
const listLimit = 100

// TournamentFilter narrows a tournament listing. Empty fields and the
// sentinel "all" leave the corresponding dimension unconstrained.
type TournamentFilter struct {
	Game   string
	Status string
	Search string
}

// buildListQuery translates a filter into a SQL query plus bind args.
// Search matches name, game, or organizer name as a case-insensitive
// substring; all present filters are combined with AND. Results are newest
// first.
func buildListQuery(f TournamentFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.Game != "" && f.Game != "all" {
		args = append(args, f.Game)
		conds = append(conds, fmt.Sprintf("game = $%d", len(args)))
	}
	if f.Status != "" && f.Status != "all" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR game ILIKE $%d OR organizer_name ILIKE $%d)", n, n, n))
	}

	query := `SELECT ` + tournamentColumns + ` FROM tournaments`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, listLimit)

	return query, args
}

// escapeLike neutralizes LIKE metacharacters in a user-supplied search term.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// TournamentReadRepository reads tournament records.
type TournamentReadRepository struct {
	db *sqlx.DB
}

func NewTournamentReadRepository(db *sqlx.DB) *TournamentReadRepository {
	return &TournamentReadRepository{db: db}
}

// GetByID returns the tournament with the given id, or (nil, nil) if absent.
func (r *TournamentReadRepository) GetByID(ctx context.Context, tournamentID uuid.UUID) (*models.TournamentDB, error) {
	const query = `
		SELECT ` + tournamentColumns + `
		FROM tournaments
		WHERE tournament_id = $1
	`

	var t models.TournamentDB
	err := r.db.GetContext(ctx, &t, query, tournamentID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tournamentID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns tournaments matching the filter, newest first.
func (r *TournamentReadRepository) List(ctx context.Context, filter TournamentFilter) ([]models.TournamentDB, error) {
	query, args := buildListQuery(filter)

	tournaments := []models.TournamentDB{}
	err := r.db.SelectContext(ctx, &tournaments, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(tournaments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return tournaments, nil
}

// ListByOrganizer returns tournaments the given user organized, newest first.
func (r *TournamentReadRepository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]models.TournamentDB, error) {
	query := fmt.Sprintf(`
		SELECT `+tournamentColumns+`
		FROM tournaments
		WHERE organizer_id = $1
		ORDER BY created_at DESC
		LIMIT %d
	`, listLimit)

	tournaments := []models.TournamentDB{}
	err := r.db.SelectContext(ctx, &tournaments, query, organizerID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{organizerID},
		"result", len(tournaments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return tournaments, nil
}

// CountByParticipant returns how many tournaments list the user as a participant.
func (r *TournamentReadRepository) CountByParticipant(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM tournaments
		WHERE participants @> to_jsonb($1::text)
	`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID.String())

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	return count, err
}

// TournamentWriteRepository writes tournament records.
type TournamentWriteRepository struct {
	db *sqlx.DB
}

func NewTournamentWriteRepository(db *sqlx.DB) *TournamentWriteRepository {
	return &TournamentWriteRepository{db: db}
}

// Save inserts a new tournament.
func (r *TournamentWriteRepository) Save(ctx context.Context, t *models.TournamentDB) error {
	const query = `
		INSERT INTO tournaments (` + tournamentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	args := []any{
		t.TournamentID, t.Name, t.Game, t.Description, t.Rules,
		t.OrganizerID, t.OrganizerName, t.Participants, t.MaxParticipants, t.Status,
		t.StartDate, t.EndDate, t.RegistrationDeadline, t.Prize, t.Judges,
		t.CreatedAt, t.UpdatedAt,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{t.TournamentID, t.Name, t.Game, t.OrganizerID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ErrJoinConditionFailed is returned by AddParticipant when the guarded
// update matched no row: the tournament is missing, closed, full, or the
// user is already in it. The caller distinguishes the cases with a follow-up
// read of current state.
var ErrJoinConditionFailed = errors.New("join condition failed")

// AddParticipant appends the user to the participants array in a single
// conditional update. The row-level lock serializes concurrent joins and the
// WHERE clause is re-evaluated against the committed row, so capacity can
// never overshoot and a user can never appear twice.
func (r *TournamentWriteRepository) AddParticipant(ctx context.Context, tournamentID, userID uuid.UUID) (*models.TournamentDB, error) {
	const query = `
		UPDATE tournaments
		SET participants = participants || to_jsonb($2::text),
		    updated_at = NOW()
		WHERE tournament_id = $1
		  AND status = 'registration'
		  AND NOT (participants @> to_jsonb($2::text))
		  AND jsonb_array_length(participants) < max_participants
		RETURNING ` + tournamentColumns + `
	`

	var t models.TournamentDB
	err := r.db.GetContext(ctx, &t, query, tournamentID, userID.String())

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tournamentID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJoinConditionFailed
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update applies a partial patch to name, description, rules, and status.
// Nil fields keep their current value. Returns (nil, nil) if no row matched.
func (r *TournamentWriteRepository) Update(ctx context.Context, tournamentID uuid.UUID, name, description, rules, status *string) (*models.TournamentDB, error) {
	const query = `
		UPDATE tournaments
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    rules = COALESCE($4, rules),
		    status = COALESCE($5, status),
		    updated_at = NOW()
		WHERE tournament_id = $1
		RETURNING ` + tournamentColumns + `
	`

	var t models.TournamentDB
	err := r.db.GetContext(ctx, &t, query, tournamentID, name, description, rules, status)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tournamentID, name, description, rules, status},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
