package impl

import (
	"context"
	"log/slog"
	"strings"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type contactService struct {
	contactRepo repository.ContactRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewContactService creates a new contact service instance
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (s *contactService) AddContact(ctx context.Context, caller entity.Caller, email, note string) (*entity.Contact, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.ID == caller.UserID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cannot add yourself as a contact")
	}

	contact := &entity.Contact{
		UserID:        caller.UserID,
		ContactUserID: user.ID,
		ContactUser:   user,
		Note:          strings.TrimSpace(note),
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrDuplicateContact) {
			return nil, domainerrors.ErrContactAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create contact")
	}

	s.logger.Info("Contact added",
		slog.String("user_id", caller.UserID.String()),
		slog.String("contact_user_id", user.ID.String()),
	)

	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context, caller entity.Caller) ([]*entity.Contact, error) {
	contacts, err := s.contactRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find contacts")
	}

	return contacts, nil
}

func (s *contactService) RemoveContact(ctx context.Context, caller entity.Caller, contactID uuid.UUID) error {
	if err := s.contactRepo.Delete(ctx, caller.UserID, contactID); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return domainerrors.ErrContactNotFound
		}

		return errors.Wrap(err, "failed to delete contact")
	}

	return nil
}
