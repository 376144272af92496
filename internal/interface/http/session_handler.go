package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/famjamjam/pkg/helpers"
	"github.com/oksasatya/famjamjam/pkg/response"
)

// SessionHandler mirrors the browser's auth session into an HttpOnly cookie so
// server-rendered requests carry it.
type SessionHandler struct {
	JWT     *helpers.JWTVerifier
	Cookies *helpers.SessionCookies
}

func NewSessionHandler(jwt *helpers.JWTVerifier, cookieDomain string, cookieSecure bool) *SessionHandler {
	return &SessionHandler{JWT: jwt, Cookies: helpers.NewSessionCookies(cookieDomain, cookieSecure)}
}

type sessionRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	claims, err := h.JWT.Parse(req.AccessToken)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
		return
	}
	exp := claims.ExpiresAt.Time
	h.Cookies.Set(c, req.AccessToken, exp)
	response.Success(c, http.StatusOK, gin.H{"user_id": claims.UserID()}, "session stored", map[string]any{"expires_at": exp})
}

func (h *SessionHandler) Delete(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, "session cleared", nil)
}
