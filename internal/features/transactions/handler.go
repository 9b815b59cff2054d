package transactions

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
	group := router.Group("/transactions")
	{
		group.GET("", h.list)
		group.POST("/deposit", h.createDeposit)
		group.POST("/withdrawal", h.createWithdrawal)
		group.POST("/change-status", h.changeStatus)
		group.POST("/change-bot-status", h.changeBotStatus)
	}
}

func (h *Handler) list(c *gin.Context) {
	filters := Filters{
		User:      c.Query("user"),
		TypeTrans: c.Query("type_trans"),
		Status:    c.Query("status"),
		Source:    c.Query("source"),
		Search:    c.Query("search"),
	}
	filters.Page, _ = strconv.Atoi(c.Query("page"))
	filters.PageSize, _ = strconv.Atoi(c.Query("page_size"))
	filters.Network, _ = strconv.Atoi(c.Query("network"))

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	page, err := h.service.List(c.Request.Context(), token, filters)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.OK(c, page)
}

func (h *Handler) createDeposit(c *gin.Context) {
	var input DepositInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, h.sessions, errors.NewBindingError(err, "Invalid deposit payload"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	created, err := h.service.CreateDeposit(c.Request.Context(), token, input)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusCreated, "Deposit transaction created successfully!", created)
}

func (h *Handler) createWithdrawal(c *gin.Context) {
	var input WithdrawalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, h.sessions, errors.NewBindingError(err, "Invalid withdrawal payload"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	created, err := h.service.CreateWithdrawal(c.Request.Context(), token, input)
	if err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusCreated, "Withdrawal transaction created successfully!", created)
}

func (h *Handler) changeStatus(c *gin.Context) {
	var input ChangeStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, h.sessions, errors.NewBindingError(err, "Invalid status payload"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	if err := h.service.ChangeStatus(c.Request.Context(), token, input); err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusOK, "Transaction status updated successfully!", nil)
}

func (h *Handler) changeBotStatus(c *gin.Context) {
	var input ChangeBotStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, h.sessions, errors.NewBindingError(err, "Invalid status payload"))
		return
	}

	token := h.sessions.Tokens(c.Request.Context(), c).Access
	if err := h.service.ChangeBotStatus(c.Request.Context(), token, input); err != nil {
		response.Error(c, h.sessions, err)
		return
	}
	response.Message(c, http.StatusOK, "Bot transaction status updated successfully!", nil)
}
