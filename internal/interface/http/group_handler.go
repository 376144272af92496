package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/internal/application"
	"github.com/oksasatya/famjamjam/internal/domain/entity"
	"github.com/oksasatya/famjamjam/internal/interface/middleware"
	"github.com/oksasatya/famjamjam/pkg/response"
)

type GroupHandler struct {
	Groups *application.GroupService
	Events *application.EventService
	Logger *logrus.Logger
}

func NewGroupHandler(groups *application.GroupService, events *application.EventService, logger *logrus.Logger) *GroupHandler {
	return &GroupHandler{Groups: groups, Events: events, Logger: logger}
}

type listGroupsQuery struct {
	Locality string `form:"locality" binding:"omitempty,max=80"`
	Tag      string `form:"tag" binding:"omitempty,max=40"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type searchGroupsQuery struct {
	Q    string `form:"q" binding:"required,max=200"`
	Size int    `form:"size" binding:"omitempty,min=1,max=50"`
}

type listEventsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

type createGroupRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=120"`
	Description string   `json:"description" binding:"required,max=2000"`
	Locality    string   `json:"locality" binding:"required,max=80"`
	Tags        []string `json:"tags" binding:"max=10,dive,min=1,max=40"`
	Rules       *string  `json:"rules" binding:"omitempty,max=2000"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,famurl"`
}

type createEventRequest struct {
	Title        string    `json:"title" binding:"required,min=3,max=120"`
	Description  string    `json:"description" binding:"required,max=4000"`
	EventDate    time.Time `json:"event_date" binding:"required"`
	Location     string    `json:"location" binding:"required,max=200"`
	Address      *string   `json:"address" binding:"omitempty,max=300"`
	MaxAttendees *int      `json:"max_attendees"`
	ImageURL     *string   `json:"image_url" binding:"omitempty,famurl"`
}

func (h *GroupHandler) List(c *gin.Context) {
	var q listGroupsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidPayload(c, err)
		return
	}
	groups, err := h.Groups.List(c.Request.Context(), entity.GroupFilter{Locality: q.Locality, Tag: q.Tag, Limit: q.Limit})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, groups, "groups", map[string]any{"count": len(groups)})
}

func (h *GroupHandler) Search(c *gin.Context) {
	var q searchGroupsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidPayload(c, err)
		return
	}
	groups, err := h.Groups.Search(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, groups, "search results", map[string]any{"count": len(groups)})
}

func (h *GroupHandler) Get(c *gin.Context) {
	g, err := h.Groups.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, g, "group", nil)
}

func (h *GroupHandler) Create(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	g, err := h.Groups.Create(c.Request.Context(), middleware.UserID(c), application.CreateGroupInput{
		Title:       req.Title,
		Description: req.Description,
		Locality:    req.Locality,
		Tags:        req.Tags,
		Rules:       req.Rules,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, g, "group created", nil)
}

func (h *GroupHandler) ListEvents(c *gin.Context) {
	var q listEventsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidPayload(c, err)
		return
	}
	events, err := h.Events.ListForGroup(c.Request.Context(), c.Param("id"), q.Limit)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, events, "events", map[string]any{"count": len(events)})
}

func (h *GroupHandler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	ev, err := h.Events.Create(c.Request.Context(), middleware.UserID(c), c.Param("id"), application.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		EventDate:    req.EventDate,
		Location:     req.Location,
		Address:      req.Address,
		MaxAttendees: req.MaxAttendees,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, ev, "event created", nil)
}
