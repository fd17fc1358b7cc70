package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"luppolo.dev/Luppolo/pkg/auth"
	"luppolo.dev/Luppolo/pkg/model"
	"luppolo.dev/Luppolo/pkg/repository"
)

type AdminServer struct {
	repository *repository.Repository
	logger     *zap.Logger
}

func NewAdminServer(repository *repository.Repository, logger *zap.Logger) *AdminServer {
	return &AdminServer{repository: repository, logger: logger}
}

func (a *AdminServer) ListUsers(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	users, err := a.repository.ListUsers(c.Request.Context(), *user)
	if err != nil {
		respondError(c, a.logger, err)

		return
	}

	views := make([]*UserView, 0, len(users))
	for _, listed := range users {
		views = append(views, UserFromModel(*listed))
	}

	c.JSON(http.StatusOK, gin.H{"users": views})
}

type createUserInput struct {
	Username string     `json:"username" binding:"required"`
	Email    string     `json:"email" binding:"required,email"`
	Role     model.Role `json:"role"`
}

// CreateUser provisions an account ahead of its first login. The role
// defaults to customer when the request leaves it out.
func (a *AdminServer) CreateUser(c *gin.Context) {
	var input createUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	role := input.Role
	if role == "" {
		role = model.RoleCustomer
	}

	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})

		return
	}

	created, err := a.repository.AddUser(c.Request.Context(), input.Username, input.Email, role)
	if err != nil {
		respondError(c, a.logger, err)

		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": UserFromModel(*created)})
}

type setRoleInput struct {
	Role model.Role `json:"role" binding:"required"`
}

// SetUserRole assigns a role to the user behind the given public uuid.
func (a *AdminServer) SetUserRole(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	userUUID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user uuid"})

		return
	}

	var input setRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if !input.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})

		return
	}

	subject, err := a.repository.GetUserByUUID(c.Request.Context(), userUUID)
	if err != nil {
		respondError(c, a.logger, err)

		return
	}

	if err := a.repository.SetUserRole(c.Request.Context(), *user, subject.ID, input.Role); err != nil {
		respondError(c, a.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (a *AdminServer) GetPlatformStats(c *gin.Context) {
	user, found := auth.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

		return
	}

	stats, err := a.repository.GetPlatformStats(c.Request.Context(), *user)
	if err != nil {
		respondError(c, a.logger, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
