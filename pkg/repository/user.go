package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"luppolo.dev/Luppolo/pkg/model"
)

var ErrUserNotFound = errors.New("user not found")

func (r *Repository) GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("uuid = ?", uuid).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, username string, email string, role model.Role) (*model.User, error) {
	user := model.User{
		UUID:     uuid.New(),
		Username: username,
		Email:    email,
		Role:     role,
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

// SetUserRole is an admin operation. Roles are the only authorization
// principal; there are no hardcoded superuser identities.
func (r *Repository) SetUserRole(ctx context.Context, actor model.User, userID uint, role model.Role) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: user %d", ErrNotAuthorized, actor.ID)
	}

	result := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
	}

	return nil
}

func (r *Repository) ListUsers(ctx context.Context, actor model.User) ([]*model.User, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: user %d", ErrNotAuthorized, actor.ID)
	}

	var users []*model.User

	if result := r.DB.WithContext(ctx).Order("username asc").Find(&users); result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}
