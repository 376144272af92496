package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/internal/application"
	"github.com/oksasatya/famjamjam/pkg/helpers"
	"github.com/oksasatya/famjamjam/pkg/response"
	"github.com/oksasatya/famjamjam/pkg/validation"
)

// fail writes err as an API error. Server-side failures are logged with the request id.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	appErr := application.AsAppError(err)
	if helpers.StatusOf(appErr) >= http.StatusInternalServerError {
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		})
	}
	response.FromError(c, appErr)
}

func invalidPayload(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}
