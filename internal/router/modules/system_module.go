package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/famjamjam/internal/interface/http"
)

// SystemModule serves health and catalog data.
// Public: GET /api/health, GET /api/catalog
type SystemModule struct {
	Handler *handlers.SystemHandler
}

func NewSystemModule(h *handlers.SystemHandler) *SystemModule {
	return &SystemModule{Handler: h}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Handler.Health)
	rg.GET("/catalog", m.Handler.Catalog)
}
