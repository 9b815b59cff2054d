package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnaicash-admin/internal/common/errors"
	"turnaicash-admin/internal/common/logger"
	"turnaicash-admin/internal/common/response"
	"turnaicash-admin/internal/platform/turnaicash"
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
	group := router.Group("/auth")
	{
		group.POST("/login", h.login)
		group.POST("/logout", h.logout)
		group.GET("/me", h.me)
	}
}

func (h *Handler) login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, h.sessions, errors.NewBindingError(err, "Invalid login payload"))
		return
	}

	tokens, profile, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		// An upstream 401 here means bad credentials, not an expired
		// session; there is no session to clear and nothing to redirect.
		if turnaicash.IsUnauthorized(err) {
			response.Error(c, h.sessions, errors.New(errors.ErrCodeUnauthorized, "Invalid email/phone or password"))
			return
		}
		response.Error(c, h.sessions, err)
		return
	}

	h.sessions.Save(c.Request.Context(), c, tokens, profile)
	response.Message(c, http.StatusOK, "Connexion réussie!", profile)
}

// logout destroys the session in both stores even when upstream revocation
// fails; the user asked to leave and leaves.
func (h *Handler) logout(c *gin.Context) {
	token := h.sessions.Tokens(c.Request.Context(), c).Access
	if token != "" {
		if err := h.service.Logout(c.Request.Context(), token); err != nil {
			logger.Warn().Err(err).Msg("Upstream logout failed")
		}
	}

	h.sessions.Clear(c.Request.Context(), c)
	response.Message(c, http.StatusOK, "Déconnexion réussie", nil)
}

func (h *Handler) me(c *gin.Context) {
	if !h.sessions.IsAuthenticated(c) {
		response.Error(c, h.sessions, errors.NewUnauthorizedError("Not authenticated"))
		return
	}
	response.OK(c, h.sessions.Profile(c.Request.Context(), c))
}
