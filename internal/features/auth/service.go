package auth

import (
	"context"
	"net/http"

	"turnaicash-admin/internal/common/logger"
	"turnaicash-admin/internal/platform/turnaicash"
	"turnaicash-admin/internal/session"
)

const (
	loginPath  = "/auth/login"
	logoutPath = "/auth/logout"
)

type Service interface {
	Login(ctx context.Context, input LoginInput) (session.Tokens, *session.Profile, error)
	Logout(ctx context.Context, token string) error
}

type service struct {
	client *turnaicash.Client
}

func NewService(client *turnaicash.Client) Service {
	return &service{client: client}
}

// Login exchanges credentials for a token pair. Credential errors come back
// from the upstream as a 401 and are forwarded as-is; the gateway never
// inspects passwords.
func (s *service) Login(ctx context.Context, input LoginInput) (session.Tokens, *session.Profile, error) {
	var resp loginResponse
	if err := s.client.Do(ctx, "", http.MethodPost, loginPath, nil, input, &resp); err != nil {
		return session.Tokens{}, nil, err
	}
	logger.Info().Str("user", input.EmailOrPhone).Msg("User logged in")
	return session.Tokens{Access: resp.Access, Refresh: resp.Refresh}, resp.Data, nil
}

// Logout revokes the token upstream. Failures are non-fatal: the session is
// destroyed locally regardless, the caller only loses upstream revocation.
func (s *service) Logout(ctx context.Context, token string) error {
	return s.client.Do(ctx, token, http.MethodPost, logoutPath, nil, nil, nil)
}
