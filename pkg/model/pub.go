package model

import (
	"time"

	"gorm.io/gorm"
)

type Pub struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex:idx_pub_unique"`
	Description string
	AddressID   int
	Address     Address
	ImageURL    string
	WebsiteURL  string
	OwnerID     uint `gorm:"uniqueIndex:idx_pub_unique"`
	// ProfileEditedAt drives the server side edit cooldown; nil means the
	// profile has never been edited since creation.
	ProfileEditedAt *time.Time

	Owner User `gorm:"foreignKey:OwnerID"`
}

type PlatformStats struct {
	UserCount     uint64
	PubCount      uint64
	BreweryCount  uint64
	BeerCount     uint64
	OfferingCount uint64
	TapCount      uint64
	BottleCount   uint64
	MenuItemCount uint64
}
