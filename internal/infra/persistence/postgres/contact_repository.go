package postgres

import (
	"context"

	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/repository"
	"ecocart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := &model.ContactModel{
		ID:            contact.ID,
		UserID:        contact.UserID,
		ContactUserID: contact.ContactUserID,
		Note:          contact.Note,
	}

	if err := repo.db.WithContext(ctx).Omit("ContactUser").Create(contactM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateContact
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt

	return nil
}

// FindByUser returns the user's contacts with the contact user loaded.
func (repo *contactRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	var contactModels []*model.ContactModel

	if err := repo.db.WithContext(ctx).
		Preload("ContactUser").
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, &entity.Contact{
			ID:            contactM.ID,
			UserID:        contactM.UserID,
			ContactUserID: contactM.ContactUserID,
			ContactUser:   toUserDomain(contactM.ContactUser),
			Note:          contactM.Note,
			CreatedAt:     contactM.CreatedAt,
		})
	}

	return contacts, nil
}

func (repo *contactRepository) Exists(ctx context.Context, userID, contactUserID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("user_id = ? AND contact_user_id = ?", userID, contactUserID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check contact")
	}

	return count > 0, nil
}

// Delete removes a contact of userID. Another user's contact id is reported as not found.
func (repo *contactRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ContactModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}
