package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"luppolo.dev/Luppolo/pkg/model"
	"luppolo.dev/Luppolo/pkg/pricing"
)

type NormalizeTestSuite struct {
	suite.Suite
}

func TestNormalizeTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizeTestSuite))
}

func (suite *NormalizeTestSuite) TestNormalize_FlexibleListWinsOverLegacyColumns() {
	offering := model.Offering{
		Prices:      []model.PriceEntry{{Size: "Pinta", Price: "5.00"}},
		PriceSmall:  pointy.String("3.00"),
		PriceMedium: pointy.String("4.00"),
		PriceLarge:  pointy.String("5.50"),
	}

	entries := pricing.Normalize(offering)

	suite.Equal([]model.PriceEntry{{Size: "Pinta", Price: "5.00"}}, entries)
}

func (suite *NormalizeTestSuite) TestNormalize_PreservesFlexibleListOrder() {
	offering := model.Offering{
		Prices: []model.PriceEntry{
			{Size: "50cl", Price: "7.00"},
			{Size: "20cl", Price: "3.50", Format: "Calice"},
			{Size: "20cl", Price: "4.00"},
		},
	}

	entries := pricing.Normalize(offering)

	suite.Len(entries, 3)
	suite.Equal("50cl", entries[0].Size)
	suite.Equal("Calice", entries[1].Format)
	suite.Equal("4.00", entries[2].Price)
}

func (suite *NormalizeTestSuite) TestNormalize_SynthesizesLegacyColumnsInOrder() {
	offering := model.Offering{
		PriceSmall:  pointy.String("3.00"),
		PriceMedium: pointy.String("7.00"),
		PriceLarge:  pointy.String("9.00"),
	}

	entries := pricing.Normalize(offering)

	suite.Equal([]model.PriceEntry{
		{Size: "20cl", Price: "3.00"},
		{Size: "40cl", Price: "7.00"},
		{Size: "50cl", Price: "9.00"},
	}, entries)
}

func (suite *NormalizeTestSuite) TestNormalize_SkipsUnsetLegacyColumns() {
	offering := model.Offering{
		PriceMedium: pointy.String("7.00"),
		PriceLarge:  pointy.String("9.00"),
	}

	entries := pricing.Normalize(offering)

	suite.Equal([]model.PriceEntry{
		{Size: "40cl", Price: "7.00"},
		{Size: "50cl", Price: "9.00"},
	}, entries)
}

func (suite *NormalizeTestSuite) TestNormalize_TreatsEmptyLegacyStringsAsUnset() {
	offering := model.Offering{
		PriceSmall: pointy.String(""),
		PriceLarge: pointy.String("9.00"),
	}

	entries := pricing.Normalize(offering)

	suite.Equal([]model.PriceEntry{{Size: "50cl", Price: "9.00"}}, entries)
}

func (suite *NormalizeTestSuite) TestNormalize_NothingSetReturnsEmptyList() {
	entries := pricing.Normalize(model.Offering{})

	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *NormalizeTestSuite) TestNormalize_EmptyFlexibleListFallsBackToLegacy() {
	offering := model.Offering{
		Prices:     []model.PriceEntry{},
		PriceSmall: pointy.String("2.50"),
	}

	entries := pricing.Normalize(offering)

	suite.Equal([]model.PriceEntry{{Size: "20cl", Price: "2.50"}}, entries)
}

func (suite *NormalizeTestSuite) TestValidateEntries_AcceptsWellFormedPrices() {
	err := pricing.ValidateEntries([]model.PriceEntry{
		{Size: "20cl", Price: "0"},
		{Size: "Pinta", Price: "5.50"},
		{Size: "Magnum", Price: "120.00", Format: "Bottiglia"},
	})

	suite.NoError(err)
}

func (suite *NormalizeTestSuite) TestValidateEntries_ReportsEveryBadPrice() {
	err := pricing.ValidateEntries([]model.PriceEntry{
		{Size: "20cl", Price: "abc"},
		{Size: "40cl", Price: "4.00"},
		{Size: "50cl", Price: "-1.00"},
	})

	suite.Require().ErrorIs(err, pricing.ErrInvalidPrice)
	suite.ErrorContains(err, "entry 0")
	suite.ErrorContains(err, "entry 2")
	suite.NotContains(err.Error(), "entry 1")
}

func (suite *NormalizeTestSuite) TestValidateEntries_ToleratesDuplicateSizes() {
	err := pricing.ValidateEntries([]model.PriceEntry{
		{Size: "33cl", Price: "4.00"},
		{Size: "33cl", Price: "4.50"},
	})

	suite.NoError(err)
}
