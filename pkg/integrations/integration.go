package integrations

import (
	"go.uber.org/zap"

	untappdweb "luppolo.dev/Luppolo/pkg/integrations/untappd-web"
	"luppolo.dev/Luppolo/pkg/model"
)

// Integration is an external beer catalog the search flow can consult when
// the local catalog has no match.
type Integration interface {
	FindBeer(name string) ([]model.Beer, error)
	FindBrewery(name string) ([]model.Brewery, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == untappdweb.IntegrationName {
		return untappdweb.New(logger)
	}

	return nil
}
