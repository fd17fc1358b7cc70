package untappdweb

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"luppolo.dev/Luppolo/pkg/model"
)

// beerSearchRow is one result card on the search page.
type beerSearchRow struct {
	DetailLink  string `attr:"href"          selector:"a.label"`
	Name        string `selector:".name > a"`
	BreweryLink string `attr:"href"          selector:".brewery > a"`
	Style       string `selector:".style"`
	ABV         string `selector:".abv"`
	IBU         string `selector:".ibu"`
}

// beerPageJSON is the ld+json block on a beer detail page.
type beerPageJSON struct {
	Description string `json:"description"`
	Brand       struct {
		Name string `json:"name"`
	} `json:"brand"`
	Image struct {
		ContentURL string `json:"contentUrl"`
	} `json:"image"`
	Sku             uint64 `json:"sku"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
	} `json:"aggregateRating"`
}

// beerPageContent covers older pages that lack the ld+json block.
type beerPageContent struct {
	Description string `selector:".beer-descrption-read-more"`
	ImageURL    string `attr:"src"                            selector:"a.label > img"`
	Rating      string `selector:".details .num"`
}

func (i *Integration) FindBeer(name string) ([]model.Beer, error) {
	collector := i.newCollector()

	var (
		errs error
		rows []beerSearchRow
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		row := beerSearchRow{}

		err := element.Unmarshal(&row)
		if multierr.AppendInto(&errs, err) {
			i.logger.Error("failed to unmarshal beer search result", zap.Error(err))

			return
		}

		rows = append(rows, row)
	})

	collector.OnError(func(response *colly.Response, err error) {
		i.logger.Error("error scraping beer search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	i.logger.Info("scraping beer search results", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit(i.baseURL+"/search?q="+name))

	breweries := make(map[string]model.Brewery)
	results := make([]model.Beer, 0, len(rows))

	for _, row := range rows {
		if _, cached := breweries[row.BreweryLink]; !cached {
			brewery, err := i.fetchBrewery(row.BreweryLink, collector.Clone())
			if multierr.AppendInto(&errs, err) {
				continue
			}

			breweries[row.BreweryLink] = brewery
		}

		beer, err := i.fetchBeer(row, breweries[row.BreweryLink], collector.Clone())
		if multierr.AppendInto(&errs, err) {
			continue
		}

		results = append(results, beer)
	}

	return results, errs
}

func (i *Integration) fetchBeer(row beerSearchRow, brewery model.Brewery, detailCollector *colly.Collector) (model.Beer, error) {
	beer := model.Beer{
		Name:           row.Name,
		ExternalSource: pointy.String(IntegrationName),
		Brewery:        brewery,
		Style:          model.BeerStyle{Name: strings.TrimSpace(row.Style)},
		ABV:            parseABV(row.ABV),
		IBU:            parseIBU(row.IBU),
	}

	detailCollector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var page beerPageJSON
		_ = json.Unmarshal([]byte(element.Text), &page)

		beer.Description = page.Description
		beer.ImageURL = page.Image.ContentURL
		beer.ExternalID = pointy.Uint64(page.Sku)
		beer.ExternalRating = pointy.Float64(page.AggregateRating.RatingValue)
	})

	detailCollector.OnHTML(".content", func(element *colly.HTMLElement) {
		content := beerPageContent{}
		if err := element.Unmarshal(&content); err != nil {
			return
		}

		if beer.Description == "" {
			beer.Description = content.Description
		}

		if beer.ImageURL == "" {
			beer.ImageURL = content.ImageURL
		}

		if beer.ExternalRating == nil {
			if rating, err := strconv.ParseFloat(content.Rating, 64); err == nil {
				beer.ExternalRating = pointy.Float64(rating)
			}
		}
	})

	beerID := lastPathSegment(row.DetailLink)
	i.logger.Info("scraping beer page", zap.String("id", beerID))

	err := detailCollector.Visit(i.baseURL + "/beer/" + beerID)
	if err == nil && beer.ExternalID == nil {
		if externalID, parseErr := strconv.ParseUint(beerID, 10, 64); parseErr == nil {
			beer.ExternalID = pointy.Uint64(externalID)
		}
	}

	return beer, err
}

func parseABV(text string) *float64 {
	if index := strings.Index(text, "%"); index > 0 {
		abv, _ := strconv.ParseFloat(strings.TrimSpace(text[:index]), 64)

		return &abv
	}

	return nil
}

func parseIBU(text string) *uint64 {
	if text == "" || strings.HasPrefix(text, "N/A") {
		return nil
	}

	ibu, _ := strconv.ParseUint(strings.Split(text, " ")[0], 0, 64)

	return pointy.Uint64(ibu)
}
