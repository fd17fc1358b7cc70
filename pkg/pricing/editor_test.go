package pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"luppolo.dev/Luppolo/pkg/model"
	"luppolo.dev/Luppolo/pkg/pricing"
)

type replacerMock struct {
	mock.Mock
}

func (m *replacerMock) ReplacePrices(ctx context.Context, offeringID uint, kind model.OfferingKind, entries []model.PriceEntry) error {
	args := m.Called(ctx, offeringID, kind, entries)

	return args.Error(0)
}

type EditorTestSuite struct {
	suite.Suite
	replacer *replacerMock
}

func TestEditorTestSuite(t *testing.T) {
	suite.Run(t, new(EditorTestSuite))
}

func (suite *EditorTestSuite) SetupTest() {
	suite.replacer = &replacerMock{}
}

func (suite *EditorTestSuite) TearDownTest() {
	suite.replacer.AssertExpectations(suite.T())
}

func (suite *EditorTestSuite) newEditor(offering model.Offering) *pricing.Editor {
	return pricing.NewEditor(offering, suite.replacer)
}

func (suite *EditorTestSuite) TestNewEditor_SeedsFromNormalizedList() {
	offering := model.Offering{
		Model: gorm.Model{ID: 7},
		Kind:  model.KindTap,
		Prices: []model.PriceEntry{
			{Size: "Pinta", Price: "6.00"},
		},
	}

	editor := suite.newEditor(offering)

	suite.Equal([]model.PriceEntry{{Size: "Pinta", Price: "6.00"}}, editor.Entries())
}

func (suite *EditorTestSuite) TestAddEntry_AppendsWithoutValidation() {
	editor := suite.newEditor(model.Offering{Kind: model.KindBottle})

	editor.AddEntry(model.PriceEntry{})
	editor.AddEntry(model.PriceEntry{Size: "75cl", Price: "14.00"})

	suite.Len(editor.Entries(), 2)
	suite.Equal("", editor.Entries()[0].Size)
	suite.Equal("75cl", editor.Entries()[1].Size)
}

func (suite *EditorTestSuite) TestUpdateEntry_MutatesSingleField() {
	editor := suite.newEditor(model.Offering{Kind: model.KindTap})
	editor.AddEntry(model.PriceEntry{Size: "20cl", Price: "3.00"})

	editor.UpdateEntry(0, pricing.FieldPrice, "3.50")
	editor.UpdateEntry(0, pricing.FieldFormat, "Calice")

	suite.Equal(model.PriceEntry{Size: "20cl", Price: "3.50", Format: "Calice"}, editor.Entries()[0])
}

func (suite *EditorTestSuite) TestRemoveEntry_ShiftsRemainderDown() {
	editor := suite.newEditor(model.Offering{Kind: model.KindTap})
	editor.AddEntry(model.PriceEntry{Size: "20cl", Price: "3.00"})
	editor.AddEntry(model.PriceEntry{Size: "40cl", Price: "5.00"})
	editor.AddEntry(model.PriceEntry{Size: "50cl", Price: "6.00"})

	editor.RemoveEntry(1)

	suite.Equal([]model.PriceEntry{
		{Size: "20cl", Price: "3.00"},
		{Size: "50cl", Price: "6.00"},
	}, editor.Entries())
}

func (suite *EditorTestSuite) TestSubmit_SendsOnlyCompleteRowsInOrder() {
	editor := suite.newEditor(model.Offering{Model: gorm.Model{ID: 42}, Kind: model.KindTap})
	editor.AddEntry(model.PriceEntry{Size: "20cl", Price: "4.50"})
	editor.AddEntry(model.PriceEntry{Size: "", Price: "3.00"})
	editor.AddEntry(model.PriceEntry{Size: "40cl", Price: ""})
	editor.AddEntry(model.PriceEntry{Size: "Pinta", Price: "6.00"})

	expected := []model.PriceEntry{
		{Size: "20cl", Price: "4.50"},
		{Size: "Pinta", Price: "6.00"},
	}
	suite.replacer.On("ReplacePrices", mock.Anything, uint(42), model.KindTap, expected).Return(nil)

	sent, err := editor.Submit(context.Background())

	suite.Require().NoError(err)
	suite.Equal(expected, sent)
}

func (suite *EditorTestSuite) TestSubmit_AllRowsBlankSendsEmptyList() {
	editor := suite.newEditor(model.Offering{Model: gorm.Model{ID: 9}, Kind: model.KindMenuItem})
	editor.AddEntry(model.PriceEntry{Size: "Porzione"})

	suite.replacer.On("ReplacePrices", mock.Anything, uint(9), model.KindMenuItem, []model.PriceEntry{}).Return(nil)

	sent, err := editor.Submit(context.Background())

	suite.Require().NoError(err)
	suite.Empty(sent)
}

func (suite *EditorTestSuite) TestSubmit_FailurePreservesWorkingList() {
	editor := suite.newEditor(model.Offering{Model: gorm.Model{ID: 5}, Kind: model.KindBottle})
	editor.AddEntry(model.PriceEntry{Size: "33cl", Price: "5.00"})
	editor.AddEntry(model.PriceEntry{Size: "", Price: "1.00"})

	before := editor.Entries()

	suite.replacer.On("ReplacePrices", mock.Anything, uint(5), model.KindBottle, mock.Anything).Return(gorm.ErrInvalidData)

	sent, err := editor.Submit(context.Background())

	suite.Require().Error(err)
	suite.Nil(sent)
	suite.Equal(before, editor.Entries())
}

func (suite *EditorTestSuite) TestReplace_LoadsCompleteWorkingList() {
	offering := model.Offering{Model: gorm.Model{ID: 3}, Kind: model.KindTap, Prices: []model.PriceEntry{{Size: "20cl", Price: "3.00"}}}
	editor := suite.newEditor(offering)

	editor.Replace([]model.PriceEntry{{Size: "Pinta", Price: "6.50"}})

	suite.Equal([]model.PriceEntry{{Size: "Pinta", Price: "6.50"}}, editor.Entries())
}

func (suite *EditorTestSuite) TestSubmit_RepeatedSubmitSendsIdenticalList() {
	editor := suite.newEditor(model.Offering{Model: gorm.Model{ID: 13}, Kind: model.KindTap})
	editor.AddEntry(model.PriceEntry{Size: "20cl", Price: "3.50"})
	editor.AddEntry(model.PriceEntry{Size: "", Price: "9.99"})
	editor.AddEntry(model.PriceEntry{Size: "Pinta", Price: "6.00"})

	expected := []model.PriceEntry{
		{Size: "20cl", Price: "3.50"},
		{Size: "Pinta", Price: "6.00"},
	}
	suite.replacer.On("ReplacePrices", mock.Anything, uint(13), model.KindTap, expected).Return(nil).Twice()

	first, err := editor.Submit(context.Background())
	suite.Require().NoError(err)

	second, err := editor.Submit(context.Background())
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.Equal(expected, second)
}

func (suite *EditorTestSuite) TestSubmit_RetryAfterFailureSucceeds() {
	editor := suite.newEditor(model.Offering{Model: gorm.Model{ID: 11}, Kind: model.KindTap})
	editor.AddEntry(model.PriceEntry{Size: "40cl", Price: "5.00"})

	expected := []model.PriceEntry{{Size: "40cl", Price: "5.00"}}
	suite.replacer.On("ReplacePrices", mock.Anything, uint(11), model.KindTap, expected).Return(gorm.ErrInvalidTransaction).Once()
	suite.replacer.On("ReplacePrices", mock.Anything, uint(11), model.KindTap, expected).Return(nil).Once()

	_, err := editor.Submit(context.Background())
	suite.Require().Error(err)

	sent, err := editor.Submit(context.Background())
	suite.Require().NoError(err)
	suite.Equal(expected, sent)
}
