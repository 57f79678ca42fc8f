package domain

import (
	"context"
	"time"
)

// Event represents an event owned by exactly one organizer.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	OrganizerID string    `json:"-"`
	// OrganizerName is the organizer's full name, resolved from the users
	// table on read. It is never accepted from a client.
	OrganizerName string    `json:"organizer"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the
// repository on create.
func NewEvent(title, description string, date time.Time, location, organizerID string) *Event {
	now := time.Now()
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		Location:    location,
		OrganizerID: organizerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EventFilter narrows an event listing. Zero-valued fields are no-ops.
// DateFrom and DateTo bound the event date inclusively by calendar day,
// regardless of the time-of-day component.
type EventFilter struct {
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
	Location string
}

// EventUpdate carries a partial update. Nil fields are left untouched.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the catalog operations over events.
type EventService interface {
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	// Create stores the event with organizerID as its owner.
	Create(ctx context.Context, event *Event) error
	// Update applies a partial update if callerID is the organizer.
	// Returns ErrNotFound if the event is absent and ErrForbidden if the
	// caller is not the organizer.
	Update(ctx context.Context, eventID, callerID string, upd EventUpdate) (*Event, error)
	// Delete removes the event and, by cascade, its registrations. Same
	// authorization rule as Update.
	Delete(ctx context.Context, eventID, callerID string) error
}
