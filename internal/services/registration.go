package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventmanagement/internal/domain"
)

// eventDateLayout is the display format used in confirmation emails.
const eventDateLayout = "January 02, 2006"

type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.EventRegistrationRepository
	userRepo         domain.UserRepository
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewRegistrationService creates a RegistrationService with the given
// repositories and email service.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.EventRegistrationRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		logger:           logger,
	}
}

func (s *registrationService) Register(ctx context.Context, eventID, userID string) (*domain.EventRegistration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	// Pre-check for an existing registration so the common duplicate case
	// never reaches the insert. The unique constraint still backstops the
	// concurrent race.
	if _, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, userID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check event registration: %w", err)
	}

	reg := &domain.EventRegistration{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("create event registration: %w", err)
	}
	reg.EventTitle = event.Title
	reg.UserFullName = user.FullName

	// Fire-and-forget: the registration is committed; a failed email is
	// logged and never reflected in the response.
	emailData := &domain.RegistrationConfirmationEmailData{
		Email:      user.Email,
		FullName:   user.FullName,
		EventTitle: event.Title,
		EventDate:  event.Date.Format(eventDateLayout),
		Location:   event.Location,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, emailData); err != nil {
		s.logger.ErrorContext(ctx, "registration confirmation email failed",
			"event_id", eventID, "user_id", userID, "err", err)
	}

	return reg, nil
}
