package platforms

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
	group := router.Group("/platforms")
	{
		group.GET("", h.list)
		group.POST("", h.create)
		group.PATCH("/:id", h.update)
		group.DELETE("/:id", h.delete)
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

func (h *Handler) create(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, h.sessions, errors.NewBindingError(err, "Invalid platform payload"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	created, err := h.service.Create(c.Request.Context(), token, input)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusCreated, "Platform created successfully!", created)
}

func (h *Handler) update(c *gin.Context) {
	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, h.sessions, errors.NewBindingError(err, "Invalid platform payload"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	updated, err := h.service.Update(c.Request.Context(), token, c.Param("id"), patch)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusOK, "Platform updated successfully!", updated)
}

func (h *Handler) delete(c *gin.Context) {
	// The confirmation step of the dashboard's delete dialog, made explicit
	// at the API boundary: no confirm, no upstream call.
	if c.Query("confirm") != "true" {
		response.Error(c, h.sessions, errors.New(errors.ErrCodeBadRequest, "Deletion requires explicit confirmation"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	if err := h.service.Delete(c.Request.Context(), token, c.Param("id")); err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusOK, "Platform deleted successfully!", nil)
}
