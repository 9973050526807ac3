package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/domain/service"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxListNameLength = 255

type listService struct {
	listRepo      repository.ShoppingListRepository
	itemRepo      repository.ShoppingItemRepository
	contactRepo   repository.ContactRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// ListServiceParams holds dependencies for ListService, injected by Fx.
type ListServiceParams struct {
	fx.In

	ListRepo      repository.ShoppingListRepository
	ItemRepo      repository.ShoppingItemRepository
	ContactRepo   repository.ContactRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewListService creates a new shopping list service instance
func NewListService(params ListServiceParams) usecase.ListUsecase {
	return &listService{
		listRepo:      params.ListRepo,
		itemRepo:      params.ItemRepo,
		contactRepo:   params.ContactRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (s *listService) CreateList(ctx context.Context, caller entity.Caller, name string) (*entity.ShoppingList, error) {
	name, err := normalizeListName(name)
	if err != nil {
		return nil, err
	}

	list := &entity.ShoppingList{
		Name:       name,
		OwnerID:    caller.UserID,
		PublicID:   uuid.New(),
		SharedWith: []uuid.UUID{},
	}

	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to create shopping list")
	}

	s.logger.Info("Shopping list created",
		slog.String("list_id", list.ID.String()),
		slog.String("owner_id", caller.UserID.String()),
	)

	return list, nil
}

func (s *listService) GetList(ctx context.Context, caller entity.Caller, listID uuid.UUID) (*entity.ShoppingList, error) {
	list, err := visibleList(ctx, s.listRepo, caller, listID)
	if err != nil {
		return nil, err
	}

	return s.withItems(ctx, list)
}

func (s *listService) ListOwned(ctx context.Context, caller entity.Caller) ([]*entity.ShoppingList, error) {
	lists, err := s.listRepo.FindByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find owned shopping lists")
	}

	return lists, nil
}

func (s *listService) ListSharedWithMe(ctx context.Context, caller entity.Caller) ([]*entity.ShoppingList, error) {
	lists, err := s.listRepo.FindSharedWith(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shared shopping lists")
	}

	return lists, nil
}

func (s *listService) RenameList(ctx context.Context, caller entity.Caller, listID uuid.UUID, name string) (*entity.ShoppingList, error) {
	name, err := normalizeListName(name)
	if err != nil {
		return nil, err
	}

	list, err := ownedList(ctx, s.listRepo, caller, listID)
	if err != nil {
		return nil, err
	}

	list.Name = name
	if err := s.update(ctx, list); err != nil {
		return nil, err
	}

	return list, nil
}

func (s *listService) DeleteList(ctx context.Context, caller entity.Caller, listID uuid.UUID) error {
	if _, err := ownedList(ctx, s.listRepo, caller, listID); err != nil {
		return err
	}

	if err := s.listRepo.Delete(ctx, listID); err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return domainerrors.ErrListNotFound
		}

		return errors.Wrap(err, "failed to delete shopping list")
	}

	return nil
}

func (s *listService) SetPublic(ctx context.Context, caller entity.Caller, listID uuid.UUID, isShared bool) (*entity.ShoppingList, error) {
	list, err := ownedList(ctx, s.listRepo, caller, listID)
	if err != nil {
		return nil, err
	}

	if list.IsShared == isShared {
		return list, nil
	}

	list.IsShared = isShared
	if err := s.update(ctx, list); err != nil {
		return nil, err
	}

	return list, nil
}

// ShareList grants read access to one of the owner's contacts.
func (s *listService) ShareList(ctx context.Context, caller entity.Caller, listID, contactUserID uuid.UUID) (*entity.ShoppingList, error) {
	if contactUserID == uuid.Nil || contactUserID == caller.UserID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a contact other than yourself is required")
	}

	list, err := ownedList(ctx, s.listRepo, caller, listID)
	if err != nil {
		return nil, err
	}

	isContact, err := s.contactRepo.Exists(ctx, caller.UserID, contactUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check contact")
	}
	if !isContact {
		return nil, domainerrors.ErrNotContact
	}

	if slices.Contains(list.SharedWith, contactUserID) {
		return list, nil
	}

	if err := s.listRepo.AddShare(ctx, listID, contactUserID); err != nil {
		return nil, errors.Wrap(err, "failed to share shopping list")
	}
	list.SharedWith = append(list.SharedWith, contactUserID)

	return list, nil
}

// GetPublicList serves the read-only view behind a share link.
func (s *listService) GetPublicList(ctx context.Context, publicID uuid.UUID) (*entity.ShoppingList, error) {
	list, err := s.listRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, domainerrors.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopping list by public id")
	}

	if !list.IsShared {
		return nil, domainerrors.ErrListNotFound
	}

	list, err = s.withItems(ctx, list)
	if err != nil {
		return nil, err
	}
	list.SharedWith = nil

	return list, nil
}

func (s *listService) ShareQRCode(ctx context.Context, caller entity.Caller, listID uuid.UUID) ([]byte, error) {
	list, err := ownedList(ctx, s.listRepo, caller, listID)
	if err != nil {
		return nil, err
	}

	if !list.IsShared {
		return nil, domainerrors.ErrValidationFailed.WithDetails("enable the public view before sharing a link")
	}

	png, err := s.qrcodeService.GenerateShareQR(list.PublicID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

func (s *listService) withItems(ctx context.Context, list *entity.ShoppingList) (*entity.ShoppingList, error) {
	items, err := s.itemRepo.FindByList(ctx, list.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shopping items")
	}
	list.Items = items

	return list, nil
}

func (s *listService) update(ctx context.Context, list *entity.ShoppingList) error {
	if err := s.listRepo.Update(ctx, list); err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return domainerrors.ErrListNotFound
		}

		return errors.Wrap(err, "failed to update shopping list")
	}

	return nil
}

func normalizeListName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxListNameLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("list name must be 1 to 255 characters")
	}

	return name, nil
}
