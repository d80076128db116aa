package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/models"
	"github.com/tourneyhub/tourneyhub/internal/repositories"
)

// Error variables
var (
	ErrInvalidTournamentID    = errors.New("invalid tournament id")
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTournamentNotOpen      = errors.New("tournament is not open for registration")
	ErrAlreadyJoined          = errors.New("you are already registered for this tournament")
	ErrTournamentFull         = errors.New("tournament is full")
	ErrDeadlineNotBeforeStart = errors.New("registration deadline must be before tournament start date")
	ErrEndNotAfterStart       = errors.New("end date must be after start date")
	ErrInvalidStatus          = errors.New("invalid tournament status")
	ErrStatusMovesBackward    = errors.New("tournament status cannot move backward")
)

// Event types published to the tournament event stream.
const (
	EventTournamentCreated = "tournament_created"
	EventParticipantJoined = "participant_joined"
)

// TournamentInput carries the caller-supplied fields for a new tournament.
type TournamentInput struct {
	Name                 string
	Game                 string
	Description          string
	Rules                string
	MaxParticipants      int
	Prize                string
	StartDate            time.Time
	EndDate              time.Time
	RegistrationDeadline time.Time
	Judges               []string
}

// TournamentPatch carries a partial update. Nil fields are left untouched.
type TournamentPatch struct {
	Name        *string
	Description *string
	Rules       *string
	Status      *string
}

// TournamentReader defines read operations for tournaments.
type TournamentReader interface {
	GetByID(ctx context.Context, tournamentID uuid.UUID) (*models.TournamentDB, error)
	List(ctx context.Context, filter repositories.TournamentFilter) ([]models.TournamentDB, error)
}

// TournamentWriter defines write operations for tournaments.
type TournamentWriter interface {
	Save(ctx context.Context, t *models.TournamentDB) error
	AddParticipant(ctx context.Context, tournamentID, userID uuid.UUID) (*models.TournamentDB, error)
	Update(ctx context.Context, tournamentID uuid.UUID, name, description, rules, status *string) (*models.TournamentDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TournamentEvent is the JSON payload published for tournament activity.
type TournamentEvent struct {
	EventID      string `json:"event_id"`
	Type         string `json:"type"`
	TournamentID string `json:"tournament_id"`
	UserID       string `json:"user_id,omitempty"`
	At           int64  `json:"at"`
}

// TournamentService enforces tournament creation, listing, join eligibility,
// and status-aware mutation.
type TournamentService struct {
	reader      TournamentReader
	writer      TournamentWriter
	users       UserReader
	kafkaWriter KafkaWriter
}

// NewTournamentService creates a new TournamentService. kafkaWriter may be
// nil, in which case event publishing is skipped.
func NewTournamentService(reader TournamentReader, writer TournamentWriter, users UserReader, kafkaWriter KafkaWriter) *TournamentService {
	return &TournamentService{
		reader:      reader,
		writer:      writer,
		users:       users,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a tournament event to Kafka, best effort.
func (s *TournamentService) publishEvent(ctx context.Context, eventType string, tournamentID uuid.UUID, userID string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType, "tournament_id", tournamentID)
		return
	}

	event := TournamentEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		TournamentID: tournamentID.String(),
		UserID:       userID,
		At:           time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal tournament event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish tournament event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("tournament event published", "event_id", event.EventID, "type", eventType)
	}
}

// Create validates the input and persists a new tournament owned by the
// organizer. The stored record always starts in registration status with no
// participants.
func (s *TournamentService) Create(ctx context.Context, in TournamentInput, organizerID uuid.UUID) (*models.TournamentDB, error) {
	if err := validateTournamentInput(in); err != nil {
		return nil, err
	}
	if !in.RegistrationDeadline.Before(in.StartDate) {
		return nil, ErrDeadlineNotBeforeStart
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, ErrEndNotAfterStart
	}

	organizer, err := s.users.GetByID(ctx, organizerID)
	if err != nil {
		logger.Log.Errorw("failed to get organizer", "organizerID", organizerID, "err", err)
		return nil, err
	}
	if organizer == nil {
		return nil, ErrUserNotFound
	}

	judges := in.Judges
	if judges == nil {
		judges = []string{}
	}

	now := time.Now().UTC()
	t := &models.TournamentDB{
		TournamentID:         uuid.New(),
		Name:                 in.Name,
		Game:                 in.Game,
		Description:          in.Description,
		Rules:                in.Rules,
		OrganizerID:          organizer.UserID,
		OrganizerName:        organizer.Username,
		Participants:         models.StringList{},
		MaxParticipants:      in.MaxParticipants,
		Status:               models.StatusRegistration,
		StartDate:            in.StartDate,
		EndDate:              in.EndDate,
		RegistrationDeadline: in.RegistrationDeadline,
		Prize:                in.Prize,
		Judges:               models.StringList(judges),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.writer.Save(ctx, t); err != nil {
		logger.Log.Errorw("failed to save tournament", "err", err)
		return nil, err
	}

	s.publishEvent(ctx, EventTournamentCreated, t.TournamentID, organizer.UserID.String())

	return t, nil
}

// Get returns a tournament by its string id.
func (s *TournamentService) Get(ctx context.Context, id string) (*models.TournamentDB, error) {
	tournamentID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidTournamentID
	}

	t, err := s.reader.GetByID(ctx, tournamentID)
	if err != nil {
		logger.Log.Errorw("failed to get tournament", "id", id, "err", err)
		return nil, err
	}
	if t == nil {
		return nil, ErrTournamentNotFound
	}
	return t, nil
}

// List returns tournaments matching the filter, newest first.
func (s *TournamentService) List(ctx context.Context, game, status, search string) ([]models.TournamentDB, error) {
	tournaments, err := s.reader.List(ctx, repositories.TournamentFilter{
		Game:   game,
		Status: status,
		Search: search,
	})
	if err != nil {
		logger.Log.Errorw("failed to list tournaments", "err", err)
		return nil, err
	}
	return tournaments, nil
}

// Join registers the user as a participant. The store applies the
// state/duplicate/capacity guard and the append as one conditional update;
// when that update matches nothing, the current state tells us which guard
// failed.
func (s *TournamentService) Join(ctx context.Context, id string, userID uuid.UUID) (*models.TournamentDB, error) {
	tournamentID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidTournamentID
	}

	t, err := s.writer.AddParticipant(ctx, tournamentID, userID)
	if err == nil {
		s.publishEvent(ctx, EventParticipantJoined, tournamentID, userID.String())
		return t, nil
	}
	if !errors.Is(err, repositories.ErrJoinConditionFailed) {
		logger.Log.Errorw("failed to join tournament", "id", id, "userID", userID, "err", err)
		return nil, err
	}

	current, err := s.reader.GetByID(ctx, tournamentID)
	if err != nil {
		logger.Log.Errorw("failed to diagnose join failure", "id", id, "err", err)
		return nil, err
	}
	switch {
	case current == nil:
		return nil, ErrTournamentNotFound
	case current.Status != models.StatusRegistration:
		return nil, ErrTournamentNotOpen
	case current.Participants.Contains(userID.String()):
		return nil, ErrAlreadyJoined
	default:
		return nil, ErrTournamentFull
	}
}

// Update applies a partial patch to name, description, rules, and status.
// Status may only move forward. No ownership check is performed: any
// authenticated caller may edit, matching the trusted-judges assumption.
func (s *TournamentService) Update(ctx context.Context, id string, patch TournamentPatch) (*models.TournamentDB, error) {
	tournamentID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidTournamentID
	}

	if patch.Name != nil {
		if err := validateTournamentName(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Description != nil {
		if err := validateTournamentDescription(*patch.Description); err != nil {
			return nil, err
		}
	}

	if patch.Status != nil {
		if !models.ValidStatus(*patch.Status) {
			return nil, ErrInvalidStatus
		}
		current, err := s.reader.GetByID(ctx, tournamentID)
		if err != nil {
			logger.Log.Errorw("failed to get tournament", "id", id, "err", err)
			return nil, err
		}
		if current == nil {
			return nil, ErrTournamentNotFound
		}
		if !models.StatusMovesForward(current.Status, *patch.Status) {
			return nil, ErrStatusMovesBackward
		}
	}

	t, err := s.writer.Update(ctx, tournamentID, patch.Name, patch.Description, patch.Rules, patch.Status)
	if err != nil {
		logger.Log.Errorw("failed to update tournament", "id", id, "err", err)
		return nil, err
	}
	if t == nil {
		return nil, ErrTournamentNotFound
	}
	return t, nil
}
