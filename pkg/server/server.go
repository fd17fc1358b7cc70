// Package server exposes the REST surface: public browsing, profile
// features, pub owner dashboards and the admin back office.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"luppolo.dev/Luppolo/pkg/pricing"
	"luppolo.dev/Luppolo/pkg/repository"
)

// respondError maps repository failures onto HTTP statuses. Authorization
// and not-found failures are deliberately generic; the client learns no
// more than "it didn't work".
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	case errors.Is(err, repository.ErrOfferingNotFound),
		errors.Is(err, repository.ErrPubNotFound),
		errors.Is(err, repository.ErrBeerNotFound),
		errors.Is(err, repository.ErrBreweryNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.ErrEditCooldown):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrInvalidField), errors.Is(err, pricing.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
