package untappdweb

import (
	"encoding/json"
	"strconv"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"luppolo.dev/Luppolo/pkg/model"
)

// breweryPageJSON is the ld+json block on a brewery page.
type breweryPageJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       struct {
		ContentURL string `json:"contentUrl"`
		URL        string `json:"url"`
	} `json:"image"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
	} `json:"aggregateRating"`
	Address struct {
		StreetAddress   string `json:"streetAddress"`
		AddressLocality string `json:"addressLocality"`
		AddressRegion   string `json:"addressRegion"`
		AddressCountry  string `json:"addressCountry"`
	} `json:"address"`
}

func (i *Integration) FindBrewery(name string) ([]model.Brewery, error) {
	collector := i.newCollector()

	var (
		errs    error
		results []model.Brewery
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		breweryLink := element.ChildAttr(".name > a", "href")

		brewery, err := i.fetchBrewery(breweryLink, collector.Clone())
		if multierr.AppendInto(&errs, err) {
			return
		}

		results = append(results, brewery)
	})

	multierr.AppendInto(&errs, collector.Visit(i.baseURL+"/search?q="+name+"&type=brewery"))

	return results, errs
}

// fetchBrewery scrapes one brewery page. The numeric id is only present in
// the RSS link, so that is where the external id comes from.
func (i *Integration) fetchBrewery(link string, collector *colly.Collector) (model.Brewery, error) {
	var (
		errs      error
		brewery   model.Brewery
		breweryID uint64
	)

	collector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var page breweryPageJSON
		_ = json.Unmarshal([]byte(element.Text), &page)

		brewery = model.Brewery{
			Name:        page.Name,
			Description: page.Description,
			Address: model.Address{
				Country:       page.Address.AddressCountry,
				Locality:      page.Address.AddressLocality,
				Region:        optionalString(page.Address.AddressRegion),
				StreetAddress: optionalString(page.Address.StreetAddress),
			},
			ImageURL:       page.Image.ContentURL,
			ExternalSource: pointy.String(IntegrationName),
			ExternalRating: pointy.Float64(page.AggregateRating.RatingValue),
		}
	})

	collector.OnHTML("p.rss a", func(element *colly.HTMLElement) {
		idString := lastPathSegment(element.Attr("href"))

		id, err := strconv.ParseUint(idString, 10, 64)
		if err != nil {
			i.logger.Error("failed to parse brewery id", zap.String("link", element.Attr("href")), zap.Error(err))
		} else {
			breweryID = id
		}
	})

	multierr.AppendInto(&errs, collector.Visit(i.baseURL+link))

	if breweryID != 0 {
		brewery.ExternalID = pointy.Uint64(breweryID)
	}

	return brewery, errs
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
