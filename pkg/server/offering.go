package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"luppolo.dev/Luppolo/pkg/auth"
	"luppolo.dev/Luppolo/pkg/model"
	"luppolo.dev/Luppolo/pkg/pricing"
	"luppolo.dev/Luppolo/pkg/repository"
)

type OfferingServer struct {
	offerings repository.OfferingRepository
	logger    *zap.Logger
}

func NewOfferingServer(offerings repository.OfferingRepository, logger *zap.Logger) *OfferingServer {
	return &OfferingServer{offerings: offerings, logger: logger}
}

// actorReplacer binds the acting user onto the repository so the pricing
// editor stays ignorant of authorization.
type actorReplacer struct {
	offerings repository.OfferingRepository
	actor     model.User
}

func (r actorReplacer) ReplacePrices(ctx context.Context, offeringID uint, kind model.OfferingKind, entries []model.PriceEntry) error {
	return r.offerings.ReplacePrices(ctx, r.actor, offeringID, kind, entries)
}

func kindParam(c *gin.Context) (model.OfferingKind, bool) {
	kind := model.OfferingKind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown offering kind"})

		return "", false
	}

	return kind, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})

		return 0, false
	}

	return uint(id), true
}

type createOfferingInput struct {
	BeerID      *uint              `json:"beerId"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Prices      []model.PriceEntry `json:"prices"`
	Notes       *string            `json:"notes"`
	TapNumber   *uint              `json:"tapNumber"`
}

// ListOfferings is the owner/admin view: hidden entries included.
func (o *OfferingServer) ListOfferings(c *gin.Context) {
	pubID, ok := idParam(c, "id")
	if !ok {
		return
	}

	kind, ok := kindParam(c)
	if !ok {
		return
	}

	offerings, err := o.offerings.GetOfferings(c.Request.Context(), pubID, kind)
	if err != nil {
		respondError(c, o.logger, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"offerings": OfferingsFromModel(offerings)})
}

// ListPublicOfferings serves anonymous pub pages: hidden entries excluded.
func (o *OfferingServer) ListPublicOfferings(c *gin.Context) {
	pubID, ok := idParam(c, "id")
	if !ok {
		return
	}

	kind, ok := kindParam(c)
	if !ok {
		return
	}

	offerings, err := o.offerings.GetVisibleOfferings(c.Request.Context(), pubID, kind)
	if err != nil {
		respondError(c, o.logger, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"offerings": OfferingsFromModel(offerings)})
}

// CreateOffering attaches a catalog beer (tap/bottle) or an inline food
// item (menu-item) to a pub. A price list at creation time is optional; an
// offering may live with zero prices until configured.
func (o *OfferingServer) CreateOffering(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	pubID, ok := idParam(c, "id")
	if !ok {
		return
	}

	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var input createOfferingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if kind == model.KindMenuItem && input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu items need a name"})

		return
	}

	if kind != model.KindMenuItem && input.BeerID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tap and bottle offerings need a beerId"})

		return
	}

	prices := pricing.FilterComplete(input.Prices)
	if err := pricing.ValidateEntries(prices); err != nil {
		respondError(c, o.logger, err)

		return
	}

	offering := model.Offering{
		PubID:       pubID,
		Kind:        kind,
		BeerID:      input.BeerID,
		Name:        input.Name,
		Description: input.Description,
		Prices:      prices,
		IsVisible:   true,
		IsAvailable: true,
		Notes:       input.Notes,
		TapNumber:   input.TapNumber,
	}

	created, err := o.offerings.AddOffering(c.Request.Context(), *user, offering)
	if err != nil {
		respondError(c, o.logger, err)

		return
	}

	c.JSON(http.StatusCreated, gin.H{"offering": OfferingFromModel(*created)})
}

type replacePricesInput struct {
	Prices []model.PriceEntry `json:"prices" binding:"required"`
}

// ReplacePrices takes a complete working list from a finished edit session
// and swaps it in wholesale. Half-filled rows are dropped, not rejected;
// rows that survive filtering must carry parseable non-negative prices.
func (o *OfferingServer) ReplacePrices(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	offeringID, ok := idParam(c, "id")
	if !ok {
		return
	}

	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var input replacePricesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := pricing.ValidateEntries(pricing.FilterComplete(input.Prices)); err != nil {
		respondError(c, o.logger, err)

		return
	}

	offering, err := o.offerings.GetOfferingByID(c.Request.Context(), offeringID, kind)
	if err != nil {
		respondError(c, o.logger, err)

		return
	}

	editor := pricing.NewEditor(*offering, actorReplacer{offerings: o.offerings, actor: *user})
	editor.Replace(input.Prices)

	sent, err := editor.Submit(c.Request.Context())
	if err != nil {
		respondError(c, o.logger, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"prices": sent})
}

type patchOfferingInput struct {
	IsVisible   *bool   `json:"isVisible"`
	IsAvailable *bool   `json:"isAvailable"`
	Notes       *string `json:"notes"`
	TapNumber   *uint   `json:"tapNumber"`
	Position    *int    `json:"position"`
}

// PatchOffering applies a partial update to the non-price fields. The two
// flags travel independently so toggling one never perturbs the other or
// the price list.
func (o *OfferingServer) PatchOffering(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	offeringID, ok := idParam(c, "id")
	if !ok {
		return
	}

	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var input patchOfferingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	fields := map[string]interface{}{}

	if input.IsVisible != nil {
		fields["is_visible"] = *input.IsVisible
	}

	if input.IsAvailable != nil {
		fields["is_available"] = *input.IsAvailable
	}

	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}

	if input.TapNumber != nil {
		fields["tap_number"] = *input.TapNumber
	}

	if input.Position != nil {
		fields["position"] = *input.Position
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})

		return
	}

	if err := o.offerings.UpdateOfferingFields(c.Request.Context(), *user, offeringID, kind, fields); err != nil {
		respondError(c, o.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (o *OfferingServer) DeleteOffering(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	offeringID, ok := idParam(c, "id")
	if !ok {
		return
	}

	kind, ok := kindParam(c)
	if !ok {
		return
	}

	if err := o.offerings.DeleteOffering(c.Request.Context(), *user, offeringID, kind); err != nil {
		respondError(c, o.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}

type reorderInput struct {
	OrderedIDs []uint `json:"orderedIds" binding:"required"`
}

// ReorderOfferings persists the relative order produced by a drag and drop
// session.
func (o *OfferingServer) ReorderOfferings(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	pubID, ok := idParam(c, "id")
	if !ok {
		return
	}

	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var input reorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := o.offerings.ReorderOfferings(c.Request.Context(), *user, pubID, kind, input.OrderedIDs); err != nil {
		respondError(c, o.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}
