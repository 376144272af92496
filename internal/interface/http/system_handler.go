package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/pkg/helpers"
	"github.com/oksasatya/famjamjam/pkg/response"
)

const healthTimeout = 2 * time.Second

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type SystemHandler struct {
	Checks map[string]Check
	Logger *logrus.Logger
}

func NewSystemHandler(checks map[string]Check, logger *logrus.Logger) *SystemHandler {
	return &SystemHandler{Checks: checks, Logger: logger}
}

// Health runs every check. Any failure turns the response into a 503.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	names := make([]string, 0, len(h.Checks))
	for name := range h.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := make(map[string]string, len(names))
	healthy := true
	for _, name := range names {
		if err := h.Checks[name](ctx); err != nil {
			healthy = false
			status[name] = "down"
			helpers.LogWarn(h.Logger, "health check failed", err, logrus.Fields{"check": name})
			continue
		}
		status[name] = "up"
	}

	if !healthy {
		response.Error[any](c, http.StatusServiceUnavailable, "unhealthy", status)
		return
	}
	response.Success(c, http.StatusOK, status, "ok", nil)
}

type catalog struct {
	Interests     []string `json:"interests"`
	Neighborhoods []string `json:"neighborhoods"`
}

func (h *SystemHandler) Catalog(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	response.Success(c, http.StatusOK, catalog{
		Interests:     helpers.CommonInterests,
		Neighborhoods: helpers.Neighborhoods,
	}, "catalog", nil)
}
