package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/internal/application"
	"github.com/oksasatya/famjamjam/internal/domain/entity"
	"github.com/oksasatya/famjamjam/internal/interface/middleware"
	"github.com/oksasatya/famjamjam/pkg/helpers"
	"github.com/oksasatya/famjamjam/pkg/response"
)

const (
	avatarField = "avatar"
	// multipart framing on top of the image limit
	maxAvatarBody = helpers.MaxFileSize + 1<<20
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type createProfileRequest struct {
	FamilyName   string   `json:"family_name" binding:"required,min=2,max=80"`
	Email        string   `json:"email" binding:"required,famemail"`
	Bio          *string  `json:"bio" binding:"omitempty,max=500"`
	Interests    []string `json:"interests" binding:"max=20,dive,min=1,max=40"`
	Neighborhood *string  `json:"neighborhood" binding:"omitempty,max=80"`
	City         *string  `json:"city" binding:"omitempty,max=80"`
}

type updateProfileRequest struct {
	FamilyName   *string  `json:"family_name" binding:"omitempty,min=2,max=80"`
	Bio          *string  `json:"bio" binding:"omitempty,max=500"`
	Interests    []string `json:"interests" binding:"omitempty,max=20,dive,min=1,max=40"`
	Neighborhood *string  `json:"neighborhood" binding:"omitempty,max=80"`
	AvatarURL    *string  `json:"avatar_url" binding:"omitempty,famurl"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), application.CreateProfileInput{
		FamilyName:   req.FamilyName,
		Email:        req.Email,
		Bio:          req.Bio,
		Interests:    req.Interests,
		Neighborhood: req.Neighborhood,
		City:         req.City,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "profile created", nil)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), middleware.UserID(c), entity.ProfileUpdate{
		FamilyName:   req.FamilyName,
		Bio:          req.Bio,
		Interests:    req.Interests,
		Neighborhood: req.Neighborhood,
		AvatarURL:    req.AvatarURL,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile updated", nil)
}

// UploadAvatar accepts a multipart "avatar" file.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarBody)
	fh, err := c.FormFile(avatarField)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "avatar file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "could not read upload", nil)
		return
	}
	defer func() { _ = f.Close() }()

	p, err := h.Svc.UploadAvatar(c.Request.Context(), middleware.UserID(c), application.AvatarUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "avatar updated", nil)
}
