package domain

import (
	"context"
	"time"
)

// Registration represents a named claim of attendance against one event.
// swagger:model Registration
type Registration struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRegistration creates a Registration. ID is set by the repository on create.
func NewRegistration(eventID, name, email string, timestamp time.Time) *Registration {
	return &Registration{
		EventID:   eventID,
		Name:      name,
		Email:     email,
		Timestamp: timestamp,
	}
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	// ListByEventID returns registrations for the event ordered by descending
	// timestamp. Unknown event ids yield an empty slice, not an error.
	ListByEventID(ctx context.Context, eventID string) ([]*Registration, error)
	// DeleteAll removes every registration. Used only by bulk reseeding.
	DeleteAll(ctx context.Context) error
}

// RegistrationService defines attendee-facing registration operations.
type RegistrationService interface {
	// Register records an attendee for the event. The event must exist;
	// duplicate registrations with the same email are allowed.
	Register(ctx context.Context, eventID, name, email string) (*Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Registration, error)
}
