package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of the user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user by primary key.
func (repo *userRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	if id <= 0 {
		return nil, repository.ErrInvalidID
	}

	var userModel model.UserModel
	if err := repo.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return userModel.ToEntity(), nil
}

// FindByEmail retrieves a user by unique email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return userModel.ToEntity(), nil
}

// Create persists a new user. A unique-constraint violation on the email
// column is reported as the account-level conflict error.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return repository.ErrInvalidEntity
	}

	userModel := model.UserFromEntity(user)
	if err := repo.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("failed to create user")
		}

		return translateWriteError(err, "failed to create user")
	}

	user.SetEntityID(userModel.RecordID())

	return nil
}

// Update replaces the stored user record.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	if user == nil {
		return repository.ErrInvalidEntity
	}

	if user.EntityID() <= 0 {
		return repository.ErrInvalidID
	}

	userModel := model.UserFromEntity(user)
	if err := repo.db.WithContext(ctx).Save(&userModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("failed to update user")
		}

		return translateWriteError(err, "failed to update user")
	}

	return nil
}
