package services

import (
	"fmt"
	"regexp"
)

// ValidationError reports a field-level input failure. Handlers surface it
// as a 400 with the field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateRegistration(username, email, password string) error {
	if len(username) < 3 || len(username) > 50 {
		return &ValidationError{Field: "username", Message: "must be between 3 and 50 characters"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	if len(password) < 6 {
		return &ValidationError{Field: "password", Message: "must be at least 6 characters"}
	}
	return nil
}

func validateTournamentName(name string) error {
	if len(name) < 3 || len(name) > 100 {
		return &ValidationError{Field: "name", Message: "must be between 3 and 100 characters"}
	}
	return nil
}

func validateTournamentDescription(description string) error {
	if len(description) < 10 {
		return &ValidationError{Field: "description", Message: "must be at least 10 characters"}
	}
	return nil
}

func validateTournamentInput(in TournamentInput) error {
	if err := validateTournamentName(in.Name); err != nil {
		return err
	}
	if in.Game == "" {
		return &ValidationError{Field: "game", Message: "must not be empty"}
	}
	if err := validateTournamentDescription(in.Description); err != nil {
		return err
	}
	if in.MaxParticipants < 2 || in.MaxParticipants > 128 {
		return &ValidationError{Field: "maxParticipants", Message: "must be between 2 and 128"}
	}
	return nil
}
