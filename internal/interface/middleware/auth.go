package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/pkg/helpers"
	"github.com/oksasatya/famjamjam/pkg/response"
)

// Auth requires a valid access token issued by the hosted auth service and
// stores the caller's id, email and token in the Gin context. Why a token was
// rejected is logged, never returned.
func Auth(v *helpers.JWTVerifier, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := AccessToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := v.Parse(token)
		if err != nil {
			helpers.LogInfo(logger, "access token rejected", logrus.Fields{"error": err.Error(), "path": c.FullPath()})
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}
		setClaims(c, token, claims)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous requests through otherwise.
func OptionalAuth(v *helpers.JWTVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := AccessToken(c); token != "" {
			if claims, err := v.Parse(token); err == nil {
				setClaims(c, token, claims)
			}
		}
		c.Next()
	}
}
