package auth

import "turnaicash-admin/internal/session"

// LoginInput matches the upstream credential payload. The identifier field
// accepts either an email address or a phone number.
type LoginInput struct {
	EmailOrPhone string `json:"email_or_phone" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// loginResponse is the upstream /auth/login body.
type loginResponse struct {
	Access  string           `json:"access"`
	Refresh string           `json:"refresh"`
	Exp     int64            `json:"exp"`
	Data    *session.Profile `json:"data"`
}
