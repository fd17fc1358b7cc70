package server

import (
	"github.com/gin-gonic/gin"

	"luppolo.dev/Luppolo/pkg/auth"
	"luppolo.dev/Luppolo/pkg/model"
)

type Servers struct {
	Offerings *OfferingServer
	Pubs      *PubServer
	Beers     *BeerServer
	Profile   *ProfileServer
	Admin     *AdminServer
	Uploads   *UploadServer
}

// NewRouter wires the full route table. Reads are public; list management
// sits behind authentication, with ownership checked in the repository; the
// back office additionally requires the admin role.
func NewRouter(servers Servers, authManager *auth.Manager) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/v1")

	v1.GET("/pubs", servers.Pubs.ListPubs)
	v1.GET("/pubs/:id", servers.Pubs.GetPub)
	v1.GET("/pubs/:id/offerings/:kind", servers.Offerings.ListPublicOfferings)
	v1.GET("/beers", servers.Beers.SearchBeers)
	v1.GET("/beers/:id", servers.Beers.GetBeer)
	v1.GET("/breweries", servers.Beers.ListBreweries)
	v1.GET("/breweries/:id", servers.Beers.GetBrewery)

	authed := v1.Group("", authManager.Middleware())

	authed.GET("/me", servers.Profile.Me)
	authed.GET("/me/favorites", servers.Profile.ListFavorites)
	authed.PUT("/me/favorites/:id", servers.Profile.AddFavorite)
	authed.DELETE("/me/favorites/:id", servers.Profile.RemoveFavorite)
	authed.GET("/me/tasting-notes", servers.Profile.ListTastingNotes)
	authed.POST("/me/tasting-notes", servers.Profile.SaveTastingNote)
	authed.DELETE("/me/tasting-notes/:id", servers.Profile.DeleteTastingNote)

	owner := authed.Group("", authManager.RequireRole(model.RolePubOwner, model.RoleAdmin))

	owner.GET("/me/pubs", servers.Pubs.ListMyPubs)
	owner.POST("/pubs", servers.Pubs.CreatePub)
	owner.PATCH("/pubs/:id", servers.Pubs.PatchPub)
	owner.DELETE("/pubs/:id", servers.Pubs.DeletePub)

	owner.GET("/pubs/:id/manage/:kind", servers.Offerings.ListOfferings)
	owner.POST("/pubs/:id/offerings/:kind", servers.Offerings.CreateOffering)
	owner.POST("/pubs/:id/offerings/:kind/reorder", servers.Offerings.ReorderOfferings)
	owner.POST("/offerings/:kind/:id/prices", servers.Offerings.ReplacePrices)
	owner.PATCH("/offerings/:kind/:id", servers.Offerings.PatchOffering)
	owner.DELETE("/offerings/:kind/:id", servers.Offerings.DeleteOffering)

	owner.POST("/beers", servers.Beers.AddBeer)
	owner.POST("/uploads", servers.Uploads.UploadImage)

	admin := authed.Group("/admin", authManager.RequireRole(model.RoleAdmin))

	admin.GET("/users", servers.Admin.ListUsers)
	admin.POST("/users", servers.Admin.CreateUser)
	admin.PUT("/users/:uuid/role", servers.Admin.SetUserRole)
	admin.GET("/stats", servers.Admin.GetPlatformStats)

	return router
}
