package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/famjamjam/pkg/helpers"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// SuccessBody is the envelope without request context, for callers outside gin.
func SuccessBody[T any](data T, message string) APIResponse[T] {
	return APIResponse[T]{Status: http.StatusOK, Timestamp: time.Now(), Success: true, Message: message, Data: data}
}

// ErrorBody builds a failed envelope carrying status.
func ErrorBody(message string, status int) APIResponse[any] {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return APIResponse[any]{Status: status, Timestamp: time.Now(), Success: false, Message: message}
}

// Success writes a successful envelope and returns it.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := SuccessBody(data, message)
	resp.Status = status
	resp.RequestID = ctx.GetString("request_id")
	resp.Meta = meta
	ctx.JSON(status, resp)
	return resp
}

// Error writes a failed envelope and aborts the handler chain.
func Error[T any](ctx *gin.Context, status int, message string, err interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	}
	ctx.AbortWithStatusJSON(status, resp)
	return resp
}

// FromError writes err using the status of an AppError in its chain. Anything
// else is an opaque 500 so internal details do not leak.
func FromError(ctx *gin.Context, err error) {
	var ae *helpers.AppError
	if errors.As(err, &ae) {
		Error[any](ctx, ae.StatusCode, ae.Message, nil)
		return
	}
	Error[any](ctx, http.StatusInternalServerError, "internal server error", nil)
}
