package bonuses

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
	router.GET("/bonuses", h.list)
}

func (h *Handler) list(c *gin.Context) {
	filters := Filters{
		Search: c.Query("search"),
		User:   c.Query("user"),
	}
	filters.Page, _ = strconv.Atoi(c.Query("page"))
	filters.PageSize, _ = strconv.Atoi(c.Query("page_size"))

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	page, err := h.service.List(c.Request.Context(), token, filters)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.OK(c, page)
}
