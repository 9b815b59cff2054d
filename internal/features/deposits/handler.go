package deposits

import (
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
	router.GET("/deposits", h.listDeposits)
	router.GET("/caisses", h.listCaisses)
}

func (h *Handler) listDeposits(c *gin.Context) {
	token := h.sessions.Tokens(c.Request.Context(), c).Access

	page, err := h.service.ListDeposits(c.Request.Context(), token, c.Query("bet_app"))
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.OK(c, page)
}

func (h *Handler) listCaisses(c *gin.Context) {
	token := h.sessions.Tokens(c.Request.Context(), c).Access

	page, err := h.service.ListCaisses(c.Request.Context(), token)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.OK(c, page)
}
