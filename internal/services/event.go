package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"campusevents/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	// A malformed id can never resolve to a stored event, so it reads as not found.
	if !isValidID(id) {
		return nil, domain.ErrNotFound
	}
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) Create(ctx context.Context, title, description, date, location, category string) (*domain.Event, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	parsed, err := parseEventDate(date)
	if err != nil {
		return nil, err
	}
	event := domain.NewEvent(title, description, parsed, location, category)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id, title, description, date, location string) (*domain.Event, error) {
	if !isValidID(id) {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	parsed, err := parseEventDate(date)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.Update(ctx, id, title, description, parsed, location)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if !isValidID(id) {
		return domain.ErrNotFound
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// parseEventDate accepts an empty string (no date), a calendar date, or a
// full RFC 3339 timestamp. Anything else is a validation error.
func parseEventDate(date string) (*time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, date); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: date must be YYYY-MM-DD or RFC 3339", domain.ErrValidation)
}

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
