package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"turnaicash-admin/internal/common/errors"
	"turnaicash-admin/internal/common/logger"
	"turnaicash-admin/internal/platform/turnaicash"
	"turnaicash-admin/internal/session"
)

// Envelope is the success shape for every gateway endpoint. Message carries
// the user-facing toast text for mutations.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errorEnvelope struct {
	Success   bool             `json:"success"`
	Error     *errors.AppError `json:"error"`
	Redirect  string           `json:"redirect,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	RequestID string           `json:"request_id"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Message(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Error maps a service error onto the gateway taxonomy:
//
//	upstream 401            -> session cleared, 401 + /login redirect hint
//	upstream 400 w/ fields  -> 400, field errors forwarded untouched
//	upstream 404/409        -> status forwarded, generic message
//	other upstream statuses -> 502
//	transport failure       -> 502, generic message
//	local AppError          -> status per code
//
// Nothing is retried; the caller's state is left for the user to resubmit.
func Error(c *gin.Context, sessions *session.Store, err error) {
	requestID := c.GetString("request_id")

	if apiErr, ok := err.(*turnaicash.APIError); ok {
		writeUpstreamError(c, sessions, apiErr, requestID)
		return
	}

	if appErr, ok := errors.AsAppError(err); ok {
		writeAppError(c, appErr.WithRequestID(requestID))
		return
	}

	logger.Error().Err(err).Str("request_id", requestID).Msg("Upstream transport failure")
	writeAppError(c, errors.New(errors.ErrCodeUpstreamAPI, "Upstream API unreachable").WithRequestID(requestID))
}

func writeUpstreamError(c *gin.Context, sessions *session.Store, apiErr *turnaicash.APIError, requestID string) {
	switch {
	case apiErr.Status == http.StatusUnauthorized:
		// Both halves of the session go away together.
		sessions.Clear(c.Request.Context(), c)
		appErr := errors.NewSessionExpiredError().WithRequestID(requestID)
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorEnvelope{
			Success:   false,
			Error:     appErr,
			Redirect:  "/login",
			Timestamp: time.Now(),
			RequestID: requestID,
		})

	case apiErr.Status == http.StatusBadRequest:
		appErr := errors.New(errors.ErrCodeUpstreamValidation, detailOr(apiErr, "Validation failed")).
			WithRequestID(requestID)
		appErr.FieldErrors = apiErr.Fields
		write(c, http.StatusBadRequest, appErr)

	case apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusConflict:
		appErr := errors.New(errors.ErrCodeUpstreamAPI, detailOr(apiErr, "Request failed")).
			WithRequestID(requestID).
			WithDetail("upstream_status", apiErr.Status)
		write(c, apiErr.Status, appErr)

	default:
		appErr := errors.New(errors.ErrCodeUpstreamAPI, "Upstream API error").
			WithRequestID(requestID).
			WithDetail("upstream_status", apiErr.Status)
		write(c, http.StatusBadGateway, appErr)
	}
}

func writeAppError(c *gin.Context, appErr *errors.AppError) {
	status := http.StatusInternalServerError
	switch {
	case appErr.IsValidation():
		status = http.StatusBadRequest
	case appErr.Code == errors.ErrCodePlayerNotFound || appErr.Code == errors.ErrCodeWrongCurrency:
		status = http.StatusBadRequest
	case appErr.Code == errors.ErrCodeBadRequest:
		status = http.StatusBadRequest
	case appErr.IsUnauthorized():
		status = http.StatusUnauthorized
	case appErr.Code == errors.ErrCodeForbidden:
		status = http.StatusForbidden
	case appErr.Code == errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case appErr.Code == errors.ErrCodeConflict:
		status = http.StatusConflict
	case appErr.Code == errors.ErrCodeUpstreamAPI || appErr.Code == errors.ErrCodePartnerAPI:
		status = http.StatusBadGateway
	}
	write(c, status, appErr)
}

func write(c *gin.Context, status int, appErr *errors.AppError) {
	c.AbortWithStatusJSON(status, errorEnvelope{
		Success:   false,
		Error:     appErr,
		Timestamp: time.Now(),
		RequestID: appErr.RequestID,
	})
}

func detailOr(apiErr *turnaicash.APIError, fallback string) string {
	if apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
