package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookmate/backend/internal/middleware"
	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/service"
)

// identityResolver works out who is calling a user-scoped endpoint. A
// bearer session wins; otherwise the ?user= email (or the body's "user"
// field) must name an existing account.
type identityResolver struct {
	auth service.IAuthService
}

// resolve writes a 401 and returns false when the caller can't be
// identified. A bearer token that disagrees with ?user= is rejected.
func (r identityResolver) resolve(c *gin.Context, bodyUser string) (*models.User, bool) {
	claimed := strings.TrimSpace(c.Query("user"))
	if claimed == "" {
		claimed = strings.TrimSpace(bodyUser)
	}

	if token, ok := middleware.BearerToken(c); ok {
		user, err := r.auth.ValidateSession(c.Request.Context(), token)
		if err != nil {
			unauthorized(c)
			return nil, false
		}
		if claimed != "" && service.NormalizeEmail(claimed) != user.Email {
			unauthorized(c)
			return nil, false
		}
		return user, true
	}

	if claimed == "" {
		unauthorized(c)
		return nil, false
	}
	user, err := r.auth.GetUserByEmail(c.Request.Context(), claimed)
	if err != nil {
		if !errors.Is(err, service.ErrUnknownUser) {
			internalError(c, "identity", err)
			return nil, false
		}
		unauthorized(c)
		return nil, false
	}
	return user, true
}

// badBody answers an unreadable request body. A caller who names an
// identity in the query or a bearer header is checked first so unknown
// users still get a 401.
func (r identityResolver) badBody(c *gin.Context) {
	_, hasBearer := middleware.BearerToken(c)
	if strings.TrimSpace(c.Query("user")) != "" || hasBearer {
		if _, ok := r.resolve(c, ""); !ok {
			return
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// internalError logs the detail and hides it from the client
func internalError(c *gin.Context, component string, err error) {
	log.Printf("[%s] %s %s: %v", component, c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
