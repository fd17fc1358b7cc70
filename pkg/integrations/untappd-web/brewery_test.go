package untappdweb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	. "luppolo.dev/Luppolo/pkg/integrations/untappd-web"
)

func TestFindBrewery(t *testing.T) {
	server := fixtureServer(t)
	untappd := New(zaptest.NewLogger(t), WithBaseURL(server.URL))

	results, err := untappd.FindBrewery("birrificio")

	require.NoError(t, err)
	require.Len(t, results, 1)

	brewery := results[0]
	assert.Equal(t, "Birrificio Italiano", brewery.Name)
	assert.Equal(t, "Brewing in Limido Comasco since 1996.", brewery.Description)
	assert.Equal(t, "https://assets.untappd.test/photos/birrificio-italiano.jpeg", brewery.ImageURL)
	assert.Equal(t, "Limido Comasco", brewery.Address.Locality)
	require.NotNil(t, brewery.Address.Region)
	assert.Equal(t, "CO", *brewery.Address.Region)
	require.NotNil(t, brewery.Address.StreetAddress)
	assert.Equal(t, "Via Castello 51", *brewery.Address.StreetAddress)
	assert.Equal(t, "Italia", brewery.Address.Country)
	require.NotNil(t, brewery.ExternalID)
	assert.Equal(t, uint64(2098), *brewery.ExternalID)
	require.NotNil(t, brewery.ExternalSource)
	assert.Equal(t, IntegrationName, *brewery.ExternalSource)
	require.NotNil(t, brewery.ExternalRating)
	assert.InDelta(t, 4.1, *brewery.ExternalRating, 0.001)
}
