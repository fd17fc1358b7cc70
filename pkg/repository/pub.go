package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"luppolo.dev/Luppolo/pkg/model"
)

var (
	ErrPubNotFound  = errors.New("pub not found")
	ErrEditCooldown = errors.New("pub profile is in its edit cooldown")
)

var updatablePubColumns = map[string]bool{
	"name":        true,
	"description": true,
	"image_url":   true,
	"website_url": true,
}

type PubRepository interface {
	AddPub(ctx context.Context, owner model.User, pub model.Pub) (*model.Pub, error)
	GetPubByID(ctx context.Context, pubID uint) (*model.Pub, error)
	FindPubs(ctx context.Context, query string) ([]*model.Pub, error)
	GetPubsForOwner(ctx context.Context, owner model.User) ([]*model.Pub, error)
	UpdatePubProfile(ctx context.Context, actor model.User, pubID uint, fields map[string]interface{}, cooldown time.Duration) error
	DeletePub(ctx context.Context, actor model.User, pubID uint) error
}

func (r *Repository) authorizePub(ctx context.Context, actor model.User, pubID uint) (*model.Pub, error) {
	var pub model.Pub

	result := r.DB.WithContext(ctx).First(&pub, pubID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrPubNotFound, pubID)
		}

		return nil, result.Error
	}

	if !actor.IsAdmin() && pub.OwnerID != actor.ID {
		return nil, fmt.Errorf("%w: pub %d", ErrNotAuthorized, pubID)
	}

	return &pub, nil
}

func (r *Repository) AddPub(ctx context.Context, owner model.User, pub model.Pub) (*model.Pub, error) {
	pub.OwnerID = owner.ID

	if result := r.DB.WithContext(ctx).Create(&pub); result.Error != nil {
		return nil, result.Error
	}

	return &pub, nil
}

func (r *Repository) GetPubByID(ctx context.Context, pubID uint) (*model.Pub, error) {
	var pub model.Pub

	result := r.DB.WithContext(ctx).
		Joins("Owner").
		Preload("Address").
		First(&pub, pubID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrPubNotFound, pubID)
		}

		return nil, result.Error
	}

	return &pub, nil
}

func (r *Repository) FindPubs(ctx context.Context, query string) ([]*model.Pub, error) {
	var pubs []*model.Pub

	tx := r.DB.WithContext(ctx).Preload("Address").Order("pubs.name asc")
	if query != "" {
		tx = tx.Where("pubs.name ILIKE ?", "%"+query+"%")
	}

	if result := tx.Find(&pubs); result.Error != nil {
		return nil, result.Error
	}

	return pubs, nil
}

func (r *Repository) GetPubsForOwner(ctx context.Context, owner model.User) ([]*model.Pub, error) {
	var pubs []*model.Pub

	result := r.DB.WithContext(ctx).
		Preload("Address").
		Where("owner_id = ?", owner.ID).
		Find(&pubs)
	if result.Error != nil {
		r.Logger.Error("error getting pubs for owner", zap.Uint("owner_id", owner.ID), zap.Error(result.Error))

		return nil, result.Error
	}

	return pubs, nil
}

// UpdatePubProfile applies a partial profile update. Owners are throttled:
// once edited, the profile stays locked for the cooldown window. Admin
// edits bypass the throttle and do not restart it.
func (r *Repository) UpdatePubProfile(ctx context.Context, actor model.User, pubID uint, fields map[string]interface{}, cooldown time.Duration) error {
	for column := range fields {
		if !updatablePubColumns[column] {
			return fmt.Errorf("%w: %s", ErrInvalidField, column)
		}
	}

	pub, err := r.authorizePub(ctx, actor, pubID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() {
		if cooldown > 0 && pub.ProfileEditedAt != nil && time.Since(*pub.ProfileEditedAt) < cooldown {
			return fmt.Errorf("%w: editable again %s", ErrEditCooldown, pub.ProfileEditedAt.Add(cooldown).Format(time.RFC3339))
		}

		fields["profile_edited_at"] = time.Now().UTC()
	}

	result := r.DB.WithContext(ctx).Model(&model.Pub{}).
		Where("id = ?", pubID).
		Updates(fields)

	return result.Error
}

func (r *Repository) DeletePub(ctx context.Context, actor model.User, pubID uint) error {
	if _, err := r.authorizePub(ctx, actor, pubID); err != nil {
		return err
	}

	result := r.DB.WithContext(ctx).Delete(&model.Pub{}, pubID)

	return result.Error
}
