package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tourneyhub/tourneyhub/internal/logger"
)

// schema creates the tables, unique constraints, and secondary indexes the
// repositories rely on. Participants and judges are JSONB arrays so a join
// is a single conditional update on one row.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	avatar_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS tournaments (
	tournament_id UUID PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	game TEXT NOT NULL,
	description TEXT NOT NULL,
	rules TEXT NOT NULL DEFAULT '',
	organizer_id UUID NOT NULL REFERENCES users (user_id),
	organizer_name VARCHAR(50) NOT NULL,
	participants JSONB NOT NULL DEFAULT '[]'::jsonb,
	max_participants INT NOT NULL,
	status TEXT NOT NULL DEFAULT 'registration',
	start_date TIMESTAMPTZ NOT NULL,
	end_date TIMESTAMPTZ NOT NULL,
	registration_deadline TIMESTAMPTZ NOT NULL,
	prize TEXT NOT NULL DEFAULT '',
	judges JSONB NOT NULL DEFAULT '[]'::jsonb,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_tournaments_status ON tournaments (status);
CREATE INDEX IF NOT EXISTS idx_tournaments_game ON tournaments (game);
CREATE INDEX IF NOT EXISTS idx_tournaments_organizer ON tournaments (organizer_id);
CREATE INDEX IF NOT EXISTS idx_tournaments_created_at ON tournaments (created_at);
`

// Bootstrap applies the schema on startup.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("schema bootstrap failed", "error", err)
		return err
	}
	logger.Log.Infow("schema bootstrap complete")
	return nil
}
