package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"luppolo.dev/Luppolo/configs"
	"luppolo.dev/Luppolo/pkg/model"
)

// contextUserKey is where the middleware stashes the authenticated user in
// the gin context.
const contextUserKey = "luppolo/currentUser"

// UserSource is the slice of the repository the auth layer needs.
type UserSource interface {
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

type Manager struct {
	conf   *configs.Config
	users  UserSource
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, users UserSource, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, users: users, logger: logger}
}

// CurrentUser returns the authenticated user set by Middleware.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*model.User)

	return user, ok
}

// Middleware validates the HMAC bearer token, loads the user behind its
// email claim and makes it available to handlers. Requests without a valid
// token are rejected before any handler runs.
func (a *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		keyFunc := func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}

			return []byte(a.conf.Auth.SecretKey), nil
		}

		accessToken, found := a.extractTokenFromHeader(c.Request.Header)
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be Bearer {token}"})

			return
		}

		token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
		if err != nil {
			a.logger.Error("error parsing token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})

			return
		}

		claims, found := token.Claims.(jwt.MapClaims)
		if !found || !token.Valid {
			a.logger.Error("invalid token", zap.Any("claims", claims))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})

			return
		}

		email, found := claims["email"].(string)
		if !found {
			a.logger.Error("unable to get user email from token", zap.Any("claims", claims))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})

			return
		}

		user, err := a.users.GetUserFromEmail(c.Request.Context(), email)
		if err != nil || user == nil {
			a.logger.Error("error authenticating user", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})

			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireRole gates a route group on the user's role claim. Runs after
// Middleware; a missing user means the middleware chain is miswired and is
// treated as unauthorized.
func (a *Manager) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, found := CurrentUser(c)
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})

			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()

				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	}
}

func (a *Manager) extractTokenFromHeader(header http.Header) (string, bool) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return "", false
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	return strings.CutPrefix(authorization, prefix)
}
