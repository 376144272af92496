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

// GroupModule wires group and event routes.
// Public: GET /api/groups, /api/groups/search, /api/groups/:id, /api/groups/:id/events
// Protected: POST /api/groups, POST /api/groups/:id/events
type GroupModule struct {
	Handler *handlers.GroupHandler
	JWT     *helpers.JWTVerifier
	Redis   redis.Cmdable
	Logger  *logrus.Logger
}

func NewGroupModule(h *handlers.GroupHandler, jwt *helpers.JWTVerifier, rdb redis.Cmdable, logger *logrus.Logger) *GroupModule {
	return &GroupModule{Handler: h, JWT: jwt, Redis: rdb, Logger: logger}
}

func (m *GroupModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	searchLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIPAndPath(), nil)
	writeLimiter := middleware.RateLimit(m.Redis, 30, time.Minute, middleware.KeyByUserID(), nil)

	// signed-in readers query the store as themselves
	groups := rg.Group("/groups", middleware.OptionalAuth(m.JWT))
	{
		groups.GET("", readLimiter, m.Handler.List)
		groups.GET("/search", searchLimiter, m.Handler.Search)
		groups.GET("/:id", readLimiter, m.Handler.Get)
		groups.GET("/:id/events", readLimiter, m.Handler.ListEvents)
	}

	auth := groups.Group("", middleware.Auth(m.JWT, m.Logger), writeLimiter)
	{
		auth.POST("", m.Handler.Create)
		auth.POST("/:id/events", m.Handler.CreateEvent)
	}
}
