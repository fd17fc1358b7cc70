package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"luppolo.dev/Luppolo/pkg/model"
)

func (r *Repository) AddFavorite(ctx context.Context, user model.User, beerID uint) (*model.Favorite, error) {
	favorite := model.Favorite{UserID: user.ID, BeerID: beerID}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite)
	if result.Error != nil {
		return nil, result.Error
	}

	return &favorite, nil
}

func (r *Repository) RemoveFavorite(ctx context.Context, user model.User, beerID uint) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND beer_id = ?", user.ID, beerID).
		Delete(&model.Favorite{})

	return result.Error
}

func (r *Repository) GetFavoritesForUser(ctx context.Context, user model.User) ([]*model.Favorite, error) {
	var favorites []*model.Favorite

	result := r.DB.WithContext(ctx).
		Preload("Beer").
		Preload("Beer.Brewery").
		Preload("Beer.Style").
		Where("user_id = ?", user.ID).
		Find(&favorites)
	if result.Error != nil {
		return nil, result.Error
	}

	return favorites, nil
}

func (r *Repository) SaveTastingNote(ctx context.Context, note model.TastingNote) (*model.TastingNote, error) {
	if result := r.DB.WithContext(ctx).Save(&note); result.Error != nil {
		return nil, result.Error
	}

	return &note, nil
}

func (r *Repository) GetTastingNotesForUser(ctx context.Context, user model.User) ([]*model.TastingNote, error) {
	var notes []*model.TastingNote

	result := r.DB.WithContext(ctx).
		Preload("Beer").
		Preload("Beer.Brewery").
		Where("user_id = ?", user.ID).
		Order("tasting_notes.created_at desc").
		Find(&notes)
	if result.Error != nil {
		return nil, result.Error
	}

	return notes, nil
}

func (r *Repository) DeleteTastingNote(ctx context.Context, user model.User, noteID uint) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Delete(&model.TastingNote{}, noteID)

	return result.Error
}
