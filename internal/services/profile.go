package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/models"
)

// OrganizerReader lists tournaments a user organized and counts the ones
// they play in.
type OrganizerReader interface {
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]models.TournamentDB, error)
	CountByParticipant(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Profile bundles a user with their activity summary.
type Profile struct {
	User        *models.UserDB
	Stats       models.ProfileStats
	Tournaments []models.TournamentDB
}

// ProfileService composes a user's created/joined tournament view.
type ProfileService struct {
	users       UserReader
	tournaments OrganizerReader
}

func NewProfileService(users UserReader, tournaments OrganizerReader) *ProfileService {
	return &ProfileService{
		users:       users,
		tournaments: tournaments,
	}
}

// GetProfile returns the user's profile with tournament statistics.
// TournamentsWon is a mock ~25% win rate capped at 3 until a match-result
// system exists; it is not authoritative.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	created, err := s.tournaments.ListByOrganizer(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list organized tournaments", "userID", userID, "err", err)
		return nil, err
	}

	participated, err := s.tournaments.CountByParticipant(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count participations", "userID", userID, "err", err)
		return nil, err
	}

	won := participated / 4
	if won > 3 {
		won = 3
	}

	return &Profile{
		User: user,
		Stats: models.ProfileStats{
			TournamentsCreated:      len(created),
			TournamentsParticipated: participated,
			TournamentsWon:          won,
		},
		Tournaments: created,
	}, nil
}
