package domain

import (
	"context"
	"time"
)

// DefaultCategory is assigned to events created without a category.
const DefaultCategory = "General"

// Event represents a campus event.
// swagger:model Event
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Location    string     `json:"location"`
	Category    string     `json:"category"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title, description string, date *time.Time, location, category string) *Event {
	if category == "" {
		category = DefaultCategory
	}
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		Location:    location,
		Category:    category,
	}
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	// Update overwrites title, description, date, and location of the event
	// identified by id and returns the stored row. Category is not touched.
	Update(ctx context.Context, id, title, description string, date *time.Time, location string) (*Event, error)
	Delete(ctx context.Context, id string) error
	// DeleteAll removes every event. Used only by bulk reseeding.
	DeleteAll(ctx context.Context) error
}

// EventService defines event operations exposed over the API.
type EventService interface {
	// List returns all events ordered by ascending date.
	List(ctx context.Context) ([]*Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, title, description, date, location, category string) (*Event, error)
	// Update overwrites all mutable fields; fields absent from the request
	// become empty. It does not merge.
	Update(ctx context.Context, id, title, description, date, location string) (*Event, error)
	Delete(ctx context.Context, id string) error
}
