package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/famjamjam/internal/infrastructure/supabase"
	"github.com/oksasatya/famjamjam/pkg/helpers"
)

// Context keys set by Auth and OptionalAuth.
const (
	CtxUserIDKey      = "userID"
	CtxUserEmailKey   = "userEmail"
	CtxAccessTokenKey = "accessToken"
)

// AccessToken returns the bearer token from the Authorization header, falling
// back to the session cookie the browser client keeps.
func AccessToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if token, err := c.Cookie(helpers.AccessTokenCookie); err == nil {
		return token
	}
	return ""
}

func UserID(c *gin.Context) string { return c.GetString(CtxUserIDKey) }

// setClaims also puts the token on the request context so end-user store
// handles query as this user.
func setClaims(c *gin.Context, token string, claims *helpers.Claims) {
	c.Set(CtxUserIDKey, claims.UserID())
	c.Set(CtxUserEmailKey, claims.Email)
	c.Set(CtxAccessTokenKey, token)
	c.Request = c.Request.WithContext(supabase.ContextWithSession(c.Request.Context(), token))
}
