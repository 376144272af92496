package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/famjamjam/internal/interface/http"
	"github.com/oksasatya/famjamjam/internal/interface/middleware"
)

// SessionModule stores or clears the session cookie.
// Public: POST /api/session, DELETE /api/session
type SessionModule struct {
	Handler *handlers.SessionHandler
	Redis   redis.Cmdable
}

func NewSessionModule(h *handlers.SessionHandler, rdb redis.Cmdable) *SessionModule {
	return &SessionModule{Handler: h, Redis: rdb}
}

func (m *SessionModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(m.Redis, 20, time.Minute, middleware.KeyByIP(), nil)
	rg.POST("/session", limiter, m.Handler.Create)
	rg.DELETE("/session", m.Handler.Delete)
}
