package settings

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
	group := router.Group("/settings")
	{
		group.GET("", h.get)
		group.PATCH("", h.update)
	}
}

func (h *Handler) get(c *gin.Context) {
	token := h.sessions.Tokens(c.Request.Context(), c).Access

	settings, err := h.service.Get(c.Request.Context(), token)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.OK(c, settings)
}

func (h *Handler) update(c *gin.Context) {
	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, h.sessions, errors.NewBindingError(err, "Invalid settings payload"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	updated, err := h.service.Update(c.Request.Context(), token, patch)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusOK, "Settings updated successfully!", updated)
}
