package server

import (
	"luppolo.dev/Luppolo/pkg/model"
	"luppolo.dev/Luppolo/pkg/pricing"
)

type BreweryView struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	WebsiteURL  string   `json:"websiteUrl,omitempty"`
	Locality    string   `json:"locality,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

type BeerView struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Style       string   `json:"style,omitempty"`
	ABV         *float64 `json:"abv,omitempty"`
	IBU         *uint64  `json:"ibu,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`

	Brewery *BreweryView `json:"brewery,omitempty"`
}

// OfferingView is the wire shape of one offering. Prices always carries the
// normalized list; the legacy columns never leave the server.
type OfferingView struct {
	ID          uint               `json:"id"`
	PubID       uint               `json:"pubId"`
	Kind        model.OfferingKind `json:"kind"`
	Name        string             `json:"name,omitempty"`
	Description string             `json:"description,omitempty"`
	Prices      []model.PriceEntry `json:"prices"`
	IsVisible   bool               `json:"isVisible"`
	IsAvailable bool               `json:"isAvailable"`
	Notes       *string            `json:"notes,omitempty"`
	TapNumber   *uint              `json:"tapNumber,omitempty"`
	Position    int                `json:"position"`

	Beer *BeerView `json:"beer,omitempty"`
}

type PubView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	WebsiteURL  string `json:"websiteUrl,omitempty"`
	Locality    string `json:"locality,omitempty"`
	OwnerName   string `json:"ownerName,omitempty"`
}

type UserView struct {
	UUID     string     `json:"uuid"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
}

type TastingNoteView struct {
	ID     uint     `json:"id"`
	Rating *float64 `json:"rating,omitempty"`
	Notes  string   `json:"notes,omitempty"`

	Beer *BeerView `json:"beer,omitempty"`
}

func BreweryFromModel(brewery model.Brewery) *BreweryView {
	return &BreweryView{
		ID:          brewery.ID,
		Name:        brewery.Name,
		Description: brewery.Description,
		ImageURL:    brewery.ImageURL,
		WebsiteURL:  brewery.WebsiteURL,
		Locality:    brewery.Address.Locality,
		Rating:      brewery.ExternalRating,
	}
}

func BeerFromModel(beer model.Beer) *BeerView {
	view := &BeerView{
		ID:          beer.ID,
		Name:        beer.Name,
		Description: beer.Description,
		ImageURL:    beer.ImageURL,
		Style:       beer.Style.Name,
		ABV:         beer.ABV,
		IBU:         beer.IBU,
		Rating:      beer.ExternalRating,
	}

	if beer.Brewery.ID != 0 || beer.Brewery.Name != "" {
		view.Brewery = BreweryFromModel(beer.Brewery)
	}

	return view
}

func BeersFromModel(beers []*model.Beer) []*BeerView {
	views := make([]*BeerView, 0, len(beers))

	for _, beer := range beers {
		views = append(views, BeerFromModel(*beer))
	}

	return views
}

func OfferingFromModel(offering model.Offering) *OfferingView {
	view := &OfferingView{
		ID:          offering.ID,
		PubID:       offering.PubID,
		Kind:        offering.Kind,
		Name:        offering.Name,
		Description: offering.Description,
		Prices:      pricing.Normalize(offering),
		IsVisible:   offering.IsVisible,
		IsAvailable: offering.IsAvailable,
		Notes:       offering.Notes,
		TapNumber:   offering.TapNumber,
		Position:    offering.Position,
	}

	if offering.Beer != nil {
		view.Beer = BeerFromModel(*offering.Beer)
	}

	return view
}

func OfferingsFromModel(offerings []*model.Offering) []*OfferingView {
	views := make([]*OfferingView, 0, len(offerings))

	for _, offering := range offerings {
		views = append(views, OfferingFromModel(*offering))
	}

	return views
}

func PubFromModel(pub model.Pub) *PubView {
	return &PubView{
		ID:          pub.ID,
		Name:        pub.Name,
		Description: pub.Description,
		ImageURL:    pub.ImageURL,
		WebsiteURL:  pub.WebsiteURL,
		Locality:    pub.Address.Locality,
		OwnerName:   pub.Owner.Username,
	}
}

func UserFromModel(user model.User) *UserView {
	return &UserView{
		UUID:     user.UUID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

func TastingNoteFromModel(note model.TastingNote) *TastingNoteView {
	view := &TastingNoteView{
		ID:     note.ID,
		Rating: note.Rating,
		Notes:  note.Notes,
	}

	if note.Beer.ID != 0 {
		view.Beer = BeerFromModel(note.Beer)
	}

	return view
}

func PubsFromModel(pubs []*model.Pub) []*PubView {
	views := make([]*PubView, 0, len(pubs))

	for _, pub := range pubs {
		views = append(views, PubFromModel(*pub))
	}

	return views
}
