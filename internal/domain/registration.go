package domain

import (
	"context"
	"time"
)

// EventRegistration links a user to an event they attend. CreatedAt is
// assigned by the server at creation and never updated.
// swagger:model EventRegistration
type EventRegistration struct {
	ID      string `json:"id"`
	EventID string `json:"-"`
	UserID  string `json:"-"`
	// UserFullName and EventTitle are resolved for the response payload;
	// only the IDs are persisted.
	UserFullName string    `json:"user"`
	EventTitle   string    `json:"event"`
	CreatedAt    time.Time `json:"created_at"`
}

// EventRegistrationRepository defines storage operations for event
// registrations. The (user, event) pair is unique at the storage level.
type EventRegistrationRepository interface {
	// Create inserts the registration. Returns ErrAlreadyRegistered when
	// the (user, event) pair already exists.
	Create(ctx context.Context, reg *EventRegistration) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*EventRegistration, error)
}

// RegistrationService registers the current user for an event.
type RegistrationService interface {
	// Register creates a registration for (eventID, userID) and triggers a
	// confirmation email. Returns ErrNotFound if the event is absent and
	// ErrAlreadyRegistered on a duplicate. Email failures never surface.
	Register(ctx context.Context, eventID, userID string) (*EventRegistration, error)
}
