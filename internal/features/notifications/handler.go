package notifications

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnaicash-admin/internal/common/errors"
	"turnaicash-admin/internal/common/response"
	"turnaicash-admin/internal/session"
)

type Handler struct {
	service  Service
	sessions *session.Store
}

func NewHandler(service Service, sessions *session.Store) *Handler {
	return &Handler{service: service, sessions: sessions}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/notifications")
	{
		group.GET("", h.list)
		group.POST("", h.send)
	}
}

func (h *Handler) list(c *gin.Context) {
	token := h.sessions.Tokens(c.Request.Context(), c).Access

	page, err := h.service.List(c.Request.Context(), token)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.OK(c, page)
}

func (h *Handler) send(c *gin.Context) {
	var input SendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, h.sessions, errors.NewBindingError(err, "Invalid notification payload"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	if err := h.service.Send(c.Request.Context(), token, input); err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusCreated, "Notification sent successfully!", nil)
}
