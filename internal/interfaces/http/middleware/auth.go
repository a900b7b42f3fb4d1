package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth resolves the principal from the bearer token. Every ticket
// route sits behind it; there is no anonymous access.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		SetPrincipal(c, claims.Principal())
		c.Next()
	}
}

// SetPrincipal stores p in the request context.
func SetPrincipal(c *gin.Context, p auth.Principal) {
	c.Set(constants.ContextKeyUserID, p.ID)
	c.Set(constants.ContextKeyUserEmail, p.Email)
	c.Set(constants.ContextKeyDisplayName, p.DisplayName)
}

// GetPrincipal returns the principal set by RequireAuth.
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	id := c.GetString(constants.ContextKeyUserID)
	if id == "" {
		return auth.Principal{}, false
	}
	return auth.Principal{
		ID:          id,
		Email:       c.GetString(constants.ContextKeyUserEmail),
		DisplayName: c.GetString(constants.ContextKeyDisplayName),
	}, true
}
