package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"luppolo.dev/Luppolo/configs"
	"luppolo.dev/Luppolo/pkg/auth"
	"luppolo.dev/Luppolo/pkg/model"
	"luppolo.dev/Luppolo/pkg/repository"
)

const hoursPerDay = 24

type PubServer struct {
	pubs   repository.PubRepository
	config *configs.Config
	logger *zap.Logger
}

func NewPubServer(pubs repository.PubRepository, config *configs.Config, logger *zap.Logger) *PubServer {
	return &PubServer{pubs: pubs, config: config, logger: logger}
}

func (p *PubServer) editCooldown() time.Duration {
	return time.Duration(p.config.Moderation.PubEditCooldownDays) * hoursPerDay * time.Hour
}

func (p *PubServer) ListPubs(c *gin.Context) {
	pubs, err := p.pubs.FindPubs(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"pubs": PubsFromModel(pubs)})
}

func (p *PubServer) GetPub(c *gin.Context) {
	pubID, ok := idParam(c, "id")
	if !ok {
		return
	}

	pub, err := p.pubs.GetPubByID(c.Request.Context(), pubID)
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"pub": PubFromModel(*pub)})
}

func (p *PubServer) ListMyPubs(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	pubs, err := p.pubs.GetPubsForOwner(c.Request.Context(), *user)
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"pubs": PubsFromModel(pubs)})
}

type createPubInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	WebsiteURL  string  `json:"websiteUrl"`
	Country     string  `json:"country"`
	Locality    string  `json:"locality"`
	Region      *string `json:"region"`
	PostalCode  *string `json:"postalCode"`
	Street      *string `json:"street"`
}

func (p *PubServer) CreatePub(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	var input createPubInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	pub := model.Pub{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		WebsiteURL:  input.WebsiteURL,
		Address: model.Address{
			Country:       input.Country,
			Locality:      input.Locality,
			Region:        input.Region,
			PostalCode:    input.PostalCode,
			StreetAddress: input.Street,
		},
	}

	created, err := p.pubs.AddPub(c.Request.Context(), *user, pub)
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.JSON(http.StatusCreated, gin.H{"pub": PubFromModel(*created)})
}

type patchPubInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	WebsiteURL  *string `json:"websiteUrl"`
}

// PatchPub updates the pub profile. Owner edits are throttled by the
// moderation cooldown; admin edits are not.
func (p *PubServer) PatchPub(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	pubID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input patchPubInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	fields := map[string]interface{}{}

	if input.Name != nil {
		fields["name"] = *input.Name
	}

	if input.Description != nil {
		fields["description"] = *input.Description
	}

	if input.ImageURL != nil {
		fields["image_url"] = *input.ImageURL
	}

	if input.WebsiteURL != nil {
		fields["website_url"] = *input.WebsiteURL
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})

		return
	}

	if err := p.pubs.UpdatePubProfile(c.Request.Context(), *user, pubID, fields, p.editCooldown()); err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (p *PubServer) DeletePub(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	pubID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := p.pubs.DeletePub(c.Request.Context(), *user, pubID); err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}
