package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	handlers "github.com/oksasatya/famjamjam/internal/interface/http"
	"github.com/oksasatya/famjamjam/internal/interface/middleware"
	"github.com/oksasatya/famjamjam/pkg/helpers"
)

// ProfileModule wires the caller's profile and preferences.
// Protected: GET/POST/PUT /api/profile, POST /api/profile/avatar,
// GET/PUT/DELETE /api/me/preferences
type ProfileModule struct {
	Profile     *handlers.ProfileHandler
	Preferences *handlers.PreferencesHandler
	JWT         *helpers.JWTVerifier
	Redis       redis.Cmdable
	Logger      *logrus.Logger
}

func NewProfileModule(p *handlers.ProfileHandler, prefs *handlers.PreferencesHandler, jwt *helpers.JWTVerifier, rdb redis.Cmdable, logger *logrus.Logger) *ProfileModule {
	return &ProfileModule{Profile: p, Preferences: prefs, JWT: jwt, Redis: rdb, Logger: logger}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(
		middleware.Auth(m.JWT, m.Logger),
		middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	uploadLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByUserID(), nil)
	{
		auth.GET("/profile", m.Profile.Get)
		auth.POST("/profile", m.Profile.Create)
		auth.PUT("/profile", m.Profile.Update)
		auth.POST("/profile/avatar", uploadLimiter, m.Profile.UploadAvatar)

		auth.GET("/me/preferences", m.Preferences.Get)
		auth.PUT("/me/preferences", m.Preferences.Put)
		auth.DELETE("/me/preferences", m.Preferences.Delete)
	}
}
