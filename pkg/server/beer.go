package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"luppolo.dev/Luppolo/configs"
	"luppolo.dev/Luppolo/pkg/integrations"
	"luppolo.dev/Luppolo/pkg/model"
	"luppolo.dev/Luppolo/pkg/repository"
)

// beerRepository is the slice of the repository the beer server needs.
type beerRepository interface {
	SearchBeers(ctx context.Context, query string) ([]*model.Beer, error)
	GetBeerByID(ctx context.Context, beerID uint) (*model.Beer, error)
	AddBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
	AddBrewery(ctx context.Context, brewery model.Brewery) (*model.Brewery, error)
	GetBreweryByID(ctx context.Context, breweryID uint) (*model.Brewery, error)
	FindBreweries(ctx context.Context, query string) ([]*model.Brewery, error)
	FindBreweryByExternalSource(ctx context.Context, externalID uint64, externalSource string) (*model.Brewery, error)
	AddBeerStyle(ctx context.Context, style string) (*model.BeerStyle, error)
}

type BeerServer struct {
	repository beerRepository
	logger     *zap.Logger
	config     *configs.Config
}

func NewBeerServer(repository beerRepository, logger *zap.Logger, config *configs.Config) *BeerServer {
	return &BeerServer{repository: repository, logger: logger, config: config}
}

// SearchBeers serves the search-as-you-type box on the "add a beer" flow.
// Local catalog matches come first; external integrations fill in beers the
// catalog has never seen.
func (b *BeerServer) SearchBeers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})

		return
	}

	beers, err := b.repository.SearchBeers(c.Request.Context(), query)
	if err != nil {
		respondError(c, b.logger, err)

		return
	}

	views := BeersFromModel(beers)

	if c.Query("catalog") != "only" {
		for _, name := range b.config.Integrations.Beer {
			integration := integrations.GetIntegration(name, b.logger)
			if integration == nil {
				continue
			}

			found, err := integration.FindBeer(query)
			if err != nil {
				b.logger.Error("failed beer search", zap.String("integration", name), zap.Error(err))

				continue
			}

			for index := range found {
				views = append(views, BeerFromModel(found[index]))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"beers": views})
}

func (b *BeerServer) GetBeer(c *gin.Context) {
	beerID, ok := idParam(c, "id")
	if !ok {
		return
	}

	beer, err := b.repository.GetBeerByID(c.Request.Context(), beerID)
	if err != nil {
		respondError(c, b.logger, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"beer": BeerFromModel(*beer)})
}

type addBeerInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Style       string   `json:"style"`
	ABV         *float64 `json:"abv"`
	IBU         *uint64  `json:"ibu"`
	BreweryID   *uint    `json:"breweryId"`
	BreweryName string   `json:"breweryName"`

	ExternalID        *uint64  `json:"externalId"`
	ExternalSource    *string  `json:"externalSource"`
	ExternalRating    *float64 `json:"externalRating"`
	BreweryExternalID *uint64  `json:"breweryExternalId"`
}

// AddBeer lands a beer in the catalog, either typed in by hand or imported
// from an integration search result.
func (b *BeerServer) AddBeer(c *gin.Context) {
	var input addBeerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	beer := model.Beer{
		Name:           input.Name,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		ABV:            input.ABV,
		IBU:            input.IBU,
		ExternalID:     input.ExternalID,
		ExternalSource: input.ExternalSource,
		ExternalRating: input.ExternalRating,
	}

	ctx := c.Request.Context()

	if input.BreweryID != nil {
		beer.BreweryID = *input.BreweryID
	} else {
		brewery, err := b.resolveBrewery(ctx, input)
		if err != nil {
			respondError(c, b.logger, err)

			return
		}

		if brewery != nil {
			beer.BreweryID = brewery.ID
		}
	}

	if input.Style != "" {
		style, err := b.repository.AddBeerStyle(ctx, input.Style)
		if err != nil {
			respondError(c, b.logger, err)

			return
		}

		beer.StyleID = style.ID
	}

	created, err := b.repository.AddBeer(ctx, beer)
	if err != nil {
		respondError(c, b.logger, err)

		return
	}

	c.JSON(http.StatusCreated, gin.H{"beer": BeerFromModel(*created)})
}

// resolveBrewery finds or creates the brewery for an added beer. Imported
// beers carry the source's brewery id, so importing a second beer from the
// same brewery reuses the existing row instead of duplicating it by name.
func (b *BeerServer) resolveBrewery(ctx context.Context, input addBeerInput) (*model.Brewery, error) {
	if input.BreweryExternalID != nil && input.ExternalSource != nil {
		brewery, err := b.repository.FindBreweryByExternalSource(ctx, *input.BreweryExternalID, *input.ExternalSource)
		if err == nil {
			return brewery, nil
		}

		if !errors.Is(err, repository.ErrBreweryNotFound) {
			return nil, err
		}
	}

	if input.BreweryName == "" {
		return nil, nil
	}

	return b.repository.AddBrewery(ctx, model.Brewery{
		Name:           input.BreweryName,
		ExternalID:     input.BreweryExternalID,
		ExternalSource: input.ExternalSource,
	})
}

func (b *BeerServer) ListBreweries(c *gin.Context) {
	breweries, err := b.repository.FindBreweries(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, b.logger, err)

		return
	}

	views := make([]*BreweryView, 0, len(breweries))
	for _, brewery := range breweries {
		views = append(views, BreweryFromModel(*brewery))
	}

	c.JSON(http.StatusOK, gin.H{"breweries": views})
}

func (b *BeerServer) GetBrewery(c *gin.Context) {
	breweryID, ok := idParam(c, "id")
	if !ok {
		return
	}

	brewery, err := b.repository.GetBreweryByID(c.Request.Context(), breweryID)
	if err != nil {
		respondError(c, b.logger, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"brewery": BreweryFromModel(*brewery)})
}
