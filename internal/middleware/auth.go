// Package middleware provides HTTP middleware for the attendance service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-service/internal/models"
	"github.com/smartattend/attendance-service/internal/repository"
	"github.com/smartattend/attendance-service/internal/service"
)

// principalKey is the gin context key under which the resolved user is stored.
const principalKey = "principal"

// Auth resolves the calling principal from a bearer token for protected
// route groups.
type Auth struct {
	jwtService service.JWTService
	authSvc    service.AuthService
	users      repository.UserRepository
}

// NewAuth creates a new Auth middleware instance.
func NewAuth(jwtService service.JWTService, authSvc service.AuthService, users repository.UserRepository) *Auth {
	return &Auth{
		jwtService: jwtService,
		authSvc:    authSvc,
		users:      users,
	}
}

// RequireRole validates the request's bearer token, confirms its role claim
// matches required, and re-fetches the user record so deactivation or profile
// changes since issuance take effect immediately. Any failure is a uniform 401.
func (a *Auth) RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractBearerToken(c)
		if token == "" {
			unauthorized(c)
			return
		}

		claims, err := a.jwtService.ValidateToken(token)
		if err != nil {
			unauthorized(c)
			return
		}

		if claims.Role != required {
			unauthorized(c)
			return
		}

		revoked, err := a.authSvc.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			unauthorized(c)
			return
		}

		user, err := a.users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || !user.IsActive || user.Role != required {
			unauthorized(c)
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// Principal returns the user resolved by RequireRole for this request.
func Principal(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// ExtractBearerToken pulls the token out of the Authorization header, or
// returns "" if the header is absent or not in bearer form.
func ExtractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
}
