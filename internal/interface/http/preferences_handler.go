package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/internal/application"
	"github.com/oksasatya/famjamjam/internal/interface/middleware"
	"github.com/oksasatya/famjamjam/pkg/response"
)

type PreferencesHandler struct {
	Svc    *application.PreferencesService
	Logger *logrus.Logger
}

func NewPreferencesHandler(svc *application.PreferencesService, logger *logrus.Logger) *PreferencesHandler {
	return &PreferencesHandler{Svc: svc, Logger: logger}
}

type preferencesRequest struct {
	Neighborhood       string   `json:"neighborhood" binding:"omitempty,max=80"`
	Interests          []string `json:"interests" binding:"max=20,dive,min=1,max=40"`
	EmailNotifications *bool    `json:"email_notifications" binding:"required"`
}

func (h *PreferencesHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Get(c.Request.Context(), middleware.UserID(c)), "preferences", nil)
}

func (h *PreferencesHandler) Put(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	p, err := h.Svc.Save(c.Request.Context(), middleware.UserID(c), application.Preferences{
		Neighborhood:       req.Neighborhood,
		Interests:          req.Interests,
		EmailNotifications: *req.EmailNotifications,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "preferences saved", nil)
}

func (h *PreferencesHandler) Delete(c *gin.Context) {
	if err := h.Svc.Reset(c.Request.Context(), middleware.UserID(c)); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, application.DefaultPreferences(), "preferences reset", nil)
}
