package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ppe-inventory/internal/auth"
	"ppe-inventory/internal/model"
	pkgErrors "ppe-inventory/pkg/errors"
	"ppe-inventory/pkg/log"
	"ppe-inventory/pkg/response"
)

const scopeKey = "scope"

// Auth requires a valid Firebase ID token in the Authorization header.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		session, err := m.auth.Verify(ctx, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if f, ok := auth.AsFailure(err); ok && f.Kind == auth.FailureDisabledAccount {
				response.Error(c, pkgErrors.NewHTTPError(http.StatusForbidden, f.Kind.Message()))
				c.Abort()
				return
			}
			if errors.Is(err, auth.ErrProviderUnavailable) {
				m.l.Errorf(ctx, "middleware.Auth: %v", err)
				response.Error(c, pkgErrors.ErrServiceUnavailable)
				c.Abort()
				return
			}
			response.Unauthorized(c)
			c.Abort()
			return
		}

		SetScope(c, model.Scope{UserID: session.UID, Email: session.Email, IDToken: session.IDToken})
		c.Request = c.Request.WithContext(log.WithUserID(ctx, session.UID))
		c.Next()
	}
}

// SetScope stores the authenticated caller on the request.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the caller stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
