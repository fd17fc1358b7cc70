package model

import "gorm.io/gorm"

type Favorite struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_favorite_unique"`
	BeerID uint `gorm:"uniqueIndex:idx_favorite_unique"`

	Beer Beer `gorm:"foreignKey:BeerID"`
}

type TastingNote struct {
	gorm.Model
	UserID uint `gorm:"index"`
	BeerID uint
	Rating *float64
	Notes  string

	Beer Beer `gorm:"foreignKey:BeerID"`
}
