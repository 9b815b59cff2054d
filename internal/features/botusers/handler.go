package botusers

import (
	"strconv"

	"github.com/gin-gonic/gin"

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
	router.GET("/bot-users", h.list)
}

func (h *Handler) list(c *gin.Context) {
	filters := Filters{Search: c.Query("search")}
	if raw, ok := c.GetQuery("is_block"); ok {
		if isBlock, err := strconv.ParseBool(raw); err == nil {
			filters.IsBlock = &isBlock
		}
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	page, err := h.service.List(c.Request.Context(), token, filters)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.OK(c, page)
}
