package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tournament status values. Transitions only move forward:
// registration -> active -> completed.
const (
	StatusRegistration = "registration"
	StatusActive       = "active"
	StatusCompleted    = "completed"
)

var statusOrder = map[string]int{
	StatusRegistration: 0,
	StatusActive:       1,
	StatusCompleted:    2,
}

// ValidStatus reports whether s is a known tournament status.
func ValidStatus(s string) bool {
	_, ok := statusOrder[s]
	return ok
}

// StatusMovesForward reports whether a transition from current to next
// keeps the status monotonic. Staying on the same status is allowed.
func StatusMovesForward(current, next string) bool {
	return statusOrder[next] >= statusOrder[current]
}

// StringList is a JSONB-backed ordered list of strings, used for the
// participants and judges columns.
type StringList []string

// Value serializes the list as a JSON array. A nil list is stored as [].
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan deserializes a JSONB array value.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// Contains reports whether id is present in the list.
func (l StringList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// TournamentDB represents a tournament record in the database
type TournamentDB struct {
	TournamentID         uuid.UUID  `json:"id" db:"tournament_id"`
	Name                 string     `json:"name" db:"name"`
	Game                 string     `json:"game" db:"game"`
	Description          string     `json:"description" db:"description"`
	Rules                string     `json:"rules" db:"rules"`
	OrganizerID          uuid.UUID  `json:"organizer" db:"organizer_id"`
	OrganizerName        string     `json:"organizerName" db:"organizer_name"` // Denormalized from users
	Participants         StringList `json:"participants" db:"participants"`    // Ordered user ids, no duplicates
	MaxParticipants      int        `json:"maxParticipants" db:"max_participants"`
	Status               string     `json:"status" db:"status"`
	StartDate            time.Time  `json:"startDate" db:"start_date"`
	EndDate              time.Time  `json:"endDate" db:"end_date"`
	RegistrationDeadline time.Time  `json:"registrationDeadline" db:"registration_deadline"`
	Prize                string     `json:"prize" db:"prize"` // Free text, may embed dollar amounts
	Judges               StringList `json:"judges" db:"judges"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}
