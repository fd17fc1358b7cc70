package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"luppolo.dev/Luppolo/pkg/auth"
	"luppolo.dev/Luppolo/pkg/model"
	"luppolo.dev/Luppolo/pkg/repository"
)

type ProfileServer struct {
	repository *repository.Repository
	logger     *zap.Logger
}

func NewProfileServer(repository *repository.Repository, logger *zap.Logger) *ProfileServer {
	return &ProfileServer{repository: repository, logger: logger}
}

func (p *ProfileServer) Me(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	c.JSON(http.StatusOK, gin.H{"user": UserFromModel(*user)})
}

func (p *ProfileServer) ListFavorites(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	favorites, err := p.repository.GetFavoritesForUser(c.Request.Context(), *user)
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	beers := make([]*BeerView, 0, len(favorites))
	for _, favorite := range favorites {
		beers = append(beers, BeerFromModel(favorite.Beer))
	}

	c.JSON(http.StatusOK, gin.H{"favorites": beers})
}

func (p *ProfileServer) AddFavorite(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	beerID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if _, err := p.repository.AddFavorite(c.Request.Context(), *user, beerID); err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (p *ProfileServer) RemoveFavorite(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	beerID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := p.repository.RemoveFavorite(c.Request.Context(), *user, beerID); err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}

type tastingNoteInput struct {
	BeerID uint     `json:"beerId" binding:"required"`
	Rating *float64 `json:"rating"`
	Notes  string   `json:"notes"`
}

func (p *ProfileServer) SaveTastingNote(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	var input tastingNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	note := model.TastingNote{
		UserID: user.ID,
		BeerID: input.BeerID,
		Rating: input.Rating,
		Notes:  input.Notes,
	}

	saved, err := p.repository.SaveTastingNote(c.Request.Context(), note)
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.JSON(http.StatusCreated, gin.H{"tastingNote": TastingNoteFromModel(*saved)})
}

func (p *ProfileServer) ListTastingNotes(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	notes, err := p.repository.GetTastingNotesForUser(c.Request.Context(), *user)
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	views := make([]*TastingNoteView, 0, len(notes))
	for _, note := range notes {
		views = append(views, TastingNoteFromModel(*note))
	}

	c.JSON(http.StatusOK, gin.H{"tastingNotes": views})
}

func (p *ProfileServer) DeleteTastingNote(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	noteID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := p.repository.DeleteTastingNote(c.Request.Context(), *user, noteID); err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}
