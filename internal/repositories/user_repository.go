package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/Shubhamagrahari9191/Todolist/internal/errors"
	model "github.com/Shubhamagrahari9191/Todolist/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user. A unique-index rejection from the store is
// translated to the matching conflict error, so the pre-checks in the auth
// service stay a fast path rather than the correctness guarantee.
func (r *UserRepository) CreateUser(ctx context.Context, username, password string, email, phone *string) (*model.User, error) {
	user := &model.User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  password,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translateUniqueViolation(err)
	}

	return user, nil
}

func translateUniqueViolation(err error) error {
	msg := err.Error()
	if !errors.Is(err, gorm.ErrDuplicatedKey) && !strings.Contains(msg, "UNIQUE constraint failed") {
		return err
	}

	switch {
	case strings.Contains(msg, "users.username"):
		return apperrors.ErrUsernameTaken
	case strings.Contains(msg, "users.email"):
		return apperrors.ErrEmailTaken
	case strings.Contains(msg, "users.phone"):
		return apperrors.ErrPhoneTaken
	default:
		return apperrors.ErrUserExists
	}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByCredentials does an exact-match lookup on the username/password
// pair. Passwords are stored and compared as-is.
func (r *UserRepository) FindByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "username = ? AND password = ?", username, password).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier resolves a user by email or phone.
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ? OR phone = ?", identifier, identifier).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, password string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("password", password).Error
}

func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}
