package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"campusevents/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewRegistrationService creates a RegistrationService with the given repositories.
// emailService may be nil, in which case no confirmation emails are sent.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		emailService:     emailService,
		logger:           logger,
	}
}

func (s *registrationService) Register(ctx context.Context, eventID, name, email string) (*domain.Registration, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: email is not a valid address", domain.ErrValidation)
	}
	if !isValidID(eventID) {
		return nil, domain.ErrNotFound
	}

	// Ensure the event exists. Same email may register multiple times.
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	reg := domain.NewRegistration(eventID, name, email, time.Now().UTC())
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	// Confirmation email is best effort; a mail failure must not fail the registration.
	if s.emailService != nil {
		data := &domain.RegistrationEmailData{
			Name:       name,
			Email:      email,
			EventTitle: event.Title,
			Location:   event.Location,
		}
		if event.Date != nil {
			data.EventDate = event.Date.Format("January 2, 2006")
		}
		if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "confirmation email failed", "event_id", eventID, "err", err)
		}
	}

	return reg, nil
}

func (s *registrationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	// A malformed id matches nothing; return an empty list like any unknown event.
	if !isValidID(eventID) {
		return []*domain.Registration{}, nil
	}
	regs, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
