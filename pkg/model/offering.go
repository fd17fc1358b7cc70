package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OfferingKind string

const (
	KindTap      OfferingKind = "tap"
	KindBottle   OfferingKind = "bottle"
	KindMenuItem OfferingKind = "menu-item"
)

func (k OfferingKind) Valid() bool {
	return k == KindTap || k == KindBottle || k == KindMenuItem
}

// PriceEntry is one size/format variant of an offering's price. Price is
// kept as text and re-parsed as a decimal on validation so currency values
// never round-trip through floats.
type PriceEntry struct {
	Size   string `json:"size"`
	Price  string `json:"price"`
	Format string `json:"format,omitempty"`
}

// Offering is one sellable item attached to a pub: a beer on tap, a bottled
// beer, or a food item carrying its own name and description. The legacy
// small/medium/large columns and the flexible Prices list coexist on the
// same row; reads must go through pricing.Normalize.
type Offering struct {
	gorm.Model
	PubID       uint         `gorm:"index:idx_offering_pub_kind"`
	Kind        OfferingKind `gorm:"type:varchar(16);index:idx_offering_pub_kind"`
	BeerID      *uint
	Name        string
	Description string
	PriceSmall  *string
	PriceMedium *string
	PriceLarge  *string
	Prices      datatypes.JSONSlice[PriceEntry]
	IsVisible   bool `gorm:"default:true"`
	IsAvailable bool `gorm:"default:true"`
	Notes       *string
	TapNumber   *uint
	Position    int

	Pub  Pub   `gorm:"foreignKey:PubID"`
	Beer *Beer `gorm:"foreignKey:BeerID"`
}
