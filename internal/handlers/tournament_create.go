package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/middlewares"
	"github.com/tourneyhub/tourneyhub/internal/models"
	"github.com/tourneyhub/tourneyhub/internal/services"
)

// TournamentCreator defines the interface that the service must implement.
type TournamentCreator interface {
	Create(ctx context.Context, in services.TournamentInput, organizerID uuid.UUID) (*models.TournamentDB, error)
}

// CreateTournamentRequest represents the JSON body for creating a tournament
// swagger:model CreateTournamentRequest
type CreateTournamentRequest struct {
	// Tournament name
	// required: true
	// default: Summer Championship
	Name string `json:"name"`

	// Game title
	// required: true
	// default: Chess
	Game string `json:"game"`

	// Description
	// required: true
	Description string `json:"description"`

	// Rules, free text
	Rules string `json:"rules"`

	// Maximum number of participants
	// required: true
	// default: 16
	MaxParticipants int `json:"maxParticipants"`

	// Prize, free text
	// default: $1,000
	Prize string `json:"prize"`

	// Start date, RFC 3339
	// required: true
	StartDate time.Time `json:"startDate"`

	// End date, RFC 3339
	// required: true
	EndDate time.Time `json:"endDate"`

	// Registration deadline, RFC 3339
	// required: true
	RegistrationDeadline time.Time `json:"registrationDeadline"`

	// Judge names
	Judges []string `json:"judges"`
}

// TournamentResponse wraps a single tournament
// swagger:model TournamentResponse
type TournamentResponse struct {
	Tournament *models.TournamentDB `json:"tournament"`
}

// NewCreateTournamentHandler returns an HTTP handler for creating tournaments.
// @Summary Create a tournament
// @Description Creates a new tournament owned by the authenticated user. It starts in registration status with no participants.
// @Tags tournaments
// @Accept json
// @Produce json
// @Param createTournamentRequest body handlers.CreateTournamentRequest true "Tournament creation request"
// @Success 201 {object} handlers.TournamentResponse "Tournament created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /tournaments [post]
// @Security BearerAuth
func NewCreateTournamentHandler(svc TournamentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateTournamentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		tournament, err := svc.Create(r.Context(), services.TournamentInput{
			Name:                 req.Name,
			Game:                 req.Game,
			Description:          req.Description,
			Rules:                req.Rules,
			MaxParticipants:      req.MaxParticipants,
			Prize:                req.Prize,
			StartDate:            req.StartDate,
			EndDate:              req.EndDate,
			RegistrationDeadline: req.RegistrationDeadline,
			Judges:               req.Judges,
		}, userID)
		if err != nil {
			var vErr *services.ValidationError
			switch {
			case errors.As(err, &vErr):
				writeError(w, http.StatusBadRequest, vErr.Error())
			case errors.Is(err, services.ErrDeadlineNotBeforeStart),
				errors.Is(err, services.ErrEndNotAfterStart):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, TournamentResponse{Tournament: tournament})
	}
}
