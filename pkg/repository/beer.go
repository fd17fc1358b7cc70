package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"luppolo.dev/Luppolo/pkg/model"
)

var (
	ErrBeerNotFound    = errors.New("beer not found")
	ErrBreweryNotFound = errors.New("brewery not found")
)

func (r *Repository) AddBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "brewery_id"}},
		UpdateAll: true,
	}).Create(&beer)

	if result.Error != nil {
		return nil, result.Error
	}

	return &beer, nil
}

func (r *Repository) GetBeerByID(ctx context.Context, beerID uint) (*model.Beer, error) {
	var beer model.Beer

	result := r.DB.WithContext(ctx).
		Joins("Brewery").
		Joins("Style").
		Preload("Brewery.Address").
		First(&beer, beerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBeerNotFound, beerID)
		}

		return nil, result.Error
	}

	return &beer, nil
}

func (r *Repository) SearchBeers(ctx context.Context, query string) ([]*model.Beer, error) {
	var beers []*model.Beer

	result := r.DB.WithContext(ctx).
		Joins("Brewery").
		Joins("Style").
		Where("beers.name ILIKE ?", "%"+query+"%").
		Order("beers.name asc").
		Find(&beers)
	if result.Error != nil {
		return nil, result.Error
	}

	return beers, nil
}

func (r *Repository) AddBrewery(ctx context.Context, brewery model.Brewery) (*model.Brewery, error) {
	if result := r.DB.WithContext(ctx).Create(&brewery); result.Error != nil {
		return nil, result.Error
	}

	return &brewery, nil
}

func (r *Repository) GetBreweryByID(ctx context.Context, breweryID uint) (*model.Brewery, error) {
	var brewery model.Brewery

	result := r.DB.WithContext(ctx).
		Preload("Address").
		First(&brewery, breweryID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBreweryNotFound, breweryID)
		}

		return nil, result.Error
	}

	return &brewery, nil
}

func (r *Repository) FindBreweries(ctx context.Context, query string) ([]*model.Brewery, error) {
	var breweries []*model.Brewery

	tx := r.DB.WithContext(ctx).Preload("Address").Order("breweries.name asc")
	if query != "" {
		tx = tx.Where("breweries.name ILIKE ?", "%"+query+"%")
	}

	if result := tx.Find(&breweries); result.Error != nil {
		return nil, result.Error
	}

	return breweries, nil
}

func (r *Repository) FindBreweryByExternalSource(ctx context.Context, externalID uint64, externalSource string) (*model.Brewery, error) {
	brewery := &model.Brewery{}
	result := r.DB.WithContext(ctx).Model(&brewery).
		Where(`external_id = ? AND external_source = ?`, externalID, externalSource).
		First(&brewery)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBreweryNotFound
		}

		return nil, result.Error
	}

	return brewery, nil
}

func (r *Repository) AddBeerStyle(ctx context.Context, style string) (*model.BeerStyle, error) {
	beerStyle := model.BeerStyle{Name: style}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&beerStyle); result.Error != nil {
		return nil, result.Error
	}

	if beerStyle.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", style).First(&beerStyle); result.Error != nil {
			return nil, result.Error
		}
	}

	return &beerStyle, nil
}
