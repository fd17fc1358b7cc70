package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"luppolo.dev/Luppolo/pkg/model"
)

var (
	ErrOfferingNotFound = errors.New("offering not found")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrInvalidField     = errors.New("field cannot be updated")
)

// Columns UpdateOfferingFields will touch. Prices only move through
// ReplacePrices and the legacy price columns are read-only here.
var updatableOfferingColumns = map[string]bool{
	"is_visible":   true,
	"is_available": true,
	"notes":        true,
	"tap_number":   true,
	"position":     true,
}

type OfferingRepository interface {
	AddOffering(ctx context.Context, actor model.User, offering model.Offering) (*model.Offering, error)
	GetOfferings(ctx context.Context, pubID uint, kind model.OfferingKind) ([]*model.Offering, error)
	GetVisibleOfferings(ctx context.Context, pubID uint, kind model.OfferingKind) ([]*model.Offering, error)
	GetOfferingByID(ctx context.Context, offeringID uint, kind model.OfferingKind) (*model.Offering, error)
	ReplacePrices(ctx context.Context, actor model.User, offeringID uint, kind model.OfferingKind, entries []model.PriceEntry) error
	UpdateOfferingFields(ctx context.Context, actor model.User, offeringID uint, kind model.OfferingKind, fields map[string]interface{}) error
	DeleteOffering(ctx context.Context, actor model.User, offeringID uint, kind model.OfferingKind) error
	ReorderOfferings(ctx context.Context, actor model.User, pubID uint, kind model.OfferingKind, orderedIDs []uint) error
}

// authorizeOffering loads the offering with its pub and verifies the actor
// may mutate it: the owning pub's owner, or an admin.
func (r *Repository) authorizeOffering(ctx context.Context, actor model.User, offeringID uint, kind model.OfferingKind) (*model.Offering, error) {
	var offering model.Offering

	result := r.DB.WithContext(ctx).
		Joins("Pub").
		Where("offerings.kind = ?", kind).
		First(&offering, offeringID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrOfferingNotFound, offeringID)
		}

		return nil, result.Error
	}

	if !actor.IsAdmin() && offering.Pub.OwnerID != actor.ID {
		return nil, fmt.Errorf("%w: offering %d", ErrNotAuthorized, offeringID)
	}

	return &offering, nil
}

func (r *Repository) AddOffering(ctx context.Context, actor model.User, offering model.Offering) (*model.Offering, error) {
	if _, err := r.authorizePub(ctx, actor, offering.PubID); err != nil {
		return nil, err
	}

	var count int64
	if result := r.DB.WithContext(ctx).Model(&model.Offering{}).
		Where("pub_id = ? AND kind = ?", offering.PubID, offering.Kind).
		Count(&count); result.Error != nil {
		return nil, result.Error
	}

	offering.Position = int(count)

	if result := r.DB.WithContext(ctx).Create(&offering); result.Error != nil {
		return nil, result.Error
	}

	return &offering, nil
}

func (r *Repository) GetOfferings(ctx context.Context, pubID uint, kind model.OfferingKind) ([]*model.Offering, error) {
	var offerings []*model.Offering

	result := r.DB.WithContext(ctx).
		Preload("Beer").
		Preload("Beer.Brewery").
		Preload("Beer.Style").
		Where("offerings.pub_id = ? AND offerings.kind = ?", pubID, kind).
		Order("offerings.position, offerings.id").
		Find(&offerings)
	if result.Error != nil {
		return nil, result.Error
	}

	return offerings, nil
}

// GetVisibleOfferings is the public read path: hidden offerings are
// excluded, unavailable ones are not (they render greyed out, not absent).
func (r *Repository) GetVisibleOfferings(ctx context.Context, pubID uint, kind model.OfferingKind) ([]*model.Offering, error) {
	var offerings []*model.Offering

	result := r.DB.WithContext(ctx).
		Preload("Beer").
		Preload("Beer.Brewery").
		Preload("Beer.Style").
		Where("offerings.pub_id = ? AND offerings.kind = ? AND offerings.is_visible = ?", pubID, kind, true).
		Order("offerings.position, offerings.id").
		Find(&offerings)
	if result.Error != nil {
		return nil, result.Error
	}

	return offerings, nil
}

func (r *Repository) GetOfferingByID(ctx context.Context, offeringID uint, kind model.OfferingKind) (*model.Offering, error) {
	var offering model.Offering

	result := r.DB.WithContext(ctx).
		Preload("Beer").
		Preload("Beer.Brewery").
		Where("offerings.kind = ?", kind).
		First(&offering, offeringID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrOfferingNotFound, offeringID)
		}

		return nil, result.Error
	}

	return &offering, nil
}

// ReplacePrices swaps the whole flexible price list in one UPDATE, so a
// concurrent reader sees either the old list or the new one, never a mix.
// The legacy price columns are left as they are.
func (r *Repository) ReplacePrices(ctx context.Context, actor model.User, offeringID uint, kind model.OfferingKind, entries []model.PriceEntry) error {
	if _, err := r.authorizeOffering(ctx, actor, offeringID, kind); err != nil {
		return err
	}

	result := r.DB.WithContext(ctx).Model(&model.Offering{}).
		Where("id = ? AND kind = ?", offeringID, kind).
		Update("prices", datatypes.NewJSONSlice(entries))

	return result.Error
}

func (r *Repository) UpdateOfferingFields(ctx context.Context, actor model.User, offeringID uint, kind model.OfferingKind, fields map[string]interface{}) error {
	for column := range fields {
		if !updatableOfferingColumns[column] {
			return fmt.Errorf("%w: %s", ErrInvalidField, column)
		}
	}

	if _, err := r.authorizeOffering(ctx, actor, offeringID, kind); err != nil {
		return err
	}

	result := r.DB.WithContext(ctx).Model(&model.Offering{}).
		Where("id = ? AND kind = ?", offeringID, kind).
		Updates(fields)

	return result.Error
}

// DeleteOffering removes the row for good. Offerings are not recoverable
// once taken off a list.
func (r *Repository) DeleteOffering(ctx context.Context, actor model.User, offeringID uint, kind model.OfferingKind) error {
	if _, err := r.authorizeOffering(ctx, actor, offeringID, kind); err != nil {
		return err
	}

	result := r.DB.WithContext(ctx).Unscoped().
		Where("kind = ?", kind).
		Delete(&model.Offering{}, offeringID)

	return result.Error
}

func (r *Repository) ReorderOfferings(ctx context.Context, actor model.User, pubID uint, kind model.OfferingKind, orderedIDs []uint) error {
	if _, err := r.authorizePub(ctx, actor, pubID); err != nil {
		return err
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, offeringID := range orderedIDs {
			result := tx.Model(&model.Offering{}).
				Where("id = ? AND pub_id = ? AND kind = ?", offeringID, pubID, kind).
				Update("position", position)
			if result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}
