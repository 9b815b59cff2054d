package coupons

import (
	"net/http"
	"strconv"

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
	group := router.Group("/coupons")
	{
		group.GET("", h.list)
		group.POST("", h.create)
		group.PATCH("/:id", h.update)
		group.DELETE("/:id", h.delete)
	}
}

func (h *Handler) list(c *gin.Context) {
	filters := Filters{
		Page:     intQuery(c, "page"),
		PageSize: intQuery(c, "page_size"),
		Search:   c.Query("search"),
		BetApp:   c.Query("bet_app"),
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	page, err := h.service.List(c.Request.Context(), token, filters)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.OK(c, page)
}

func (h *Handler) create(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, h.sessions, errors.NewBindingError(err, "Invalid coupon payload"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	created, err := h.service.Create(c.Request.Context(), token, input)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusCreated, "Coupon created successfully!", created)
}

func (h *Handler) update(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, h.sessions, errors.NewBindingError(err, "Invalid coupon payload"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	updated, err := h.service.Update(c.Request.Context(), token, c.Param("id"), input)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusOK, "Coupon updated successfully!", updated)
}

func (h *Handler) delete(c *gin.Context) {
	if c.Query("confirm") != "true" {
		response.Error(c, h.sessions, errors.New(errors.ErrCodeBadRequest, "Deletion requires explicit confirmation"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	if err := h.service.Delete(c.Request.Context(), token, c.Param("id")); err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusOK, "Coupon deleted successfully!", nil)
}

func intQuery(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}
