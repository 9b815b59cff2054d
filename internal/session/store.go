package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"turnaicash-admin/internal/common/logger"
)

const (
	CookieAccessToken  = "access_token"
	CookieRefreshToken = "refresh_token"

	accessMaxAge  = 7 * 24 * 60 * 60  // 7 days
	refreshMaxAge = 30 * 24 * 60 * 60 // 30 days
)

// Profile mirrors the `data` object of the upstream login response.
type Profile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	IsSuperuser bool   `json:"is_superuser"`
	IsStaff     bool   `json:"is_staff"`
}

// Tokens is the upstream-issued token pair.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Mirror is the server-side half of the session storage. Satisfied by
// *redis.Client.
type Mirror interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type record struct {
	Refresh  string   `json:"refresh_token"`
	UserData *Profile `json:"user_data,omitempty"`
}

// Store persists the session in two places that must never drift: response
// cookies (read by the route guard, which sees nothing else) and a redis
// mirror (read by handlers for the profile and refresh token). Save and
// Clear fan out to both stores; neither is ever written alone. The two
// backends cannot be linked transactionally, so the fan-out is best-effort:
// a mirror failure is logged, not fatal.
type Store struct {
	mirror Mirror
	secure bool
}

func NewStore(mirror Mirror, secure bool) *Store {
	return &Store{mirror: mirror, secure: secure}
}

// Save persists a fresh session after login.
func (s *Store) Save(ctx context.Context, c *gin.Context, t Tokens, p *Profile) {
	s.setCookie(c, CookieAccessToken, t.Access, accessCookieMaxAge(t.Access))
	s.setCookie(c, CookieRefreshToken, t.Refresh, refreshMaxAge)

	rec := record{Refresh: t.Refresh, UserData: p}
	data, err := json.Marshal(rec)
	if err == nil {
		err = s.mirror.Set(ctx, mirrorKey(t.Access), data, time.Duration(refreshMaxAge)*time.Second).Err()
	}
	if err != nil {
		logger.Warn().Err(err).Msg("session mirror write failed")
	}
}

// Clear destroys the session in both stores.
func (s *Store) Clear(ctx context.Context, c *gin.Context) {
	access, _ := c.Cookie(CookieAccessToken)

	s.setCookie(c, CookieAccessToken, "", -1)
	s.setCookie(c, CookieRefreshToken, "", -1)

	if access != "" {
		if err := s.mirror.Del(ctx, mirrorKey(access)).Err(); err != nil {
			logger.Warn().Err(err).Msg("session mirror delete failed")
		}
	}
}

// Tokens reads the token pair of the acting session. The access token comes
// from the cookie; the refresh token prefers the mirror and falls back to
// its cookie.
func (s *Store) Tokens(ctx context.Context, c *gin.Context) Tokens {
	access, _ := c.Cookie(CookieAccessToken)
	if access == "" {
		return Tokens{}
	}

	if rec, err := s.load(ctx, access); err == nil && rec.Refresh != "" {
		return Tokens{Access: access, Refresh: rec.Refresh}
	}
	refresh, _ := c.Cookie(CookieRefreshToken)
	return Tokens{Access: access, Refresh: refresh}
}

// Profile returns the stored user profile, or nil when the mirror has no
// record for the session.
func (s *Store) Profile(ctx context.Context, c *gin.Context) *Profile {
	access, _ := c.Cookie(CookieAccessToken)
	if access == "" {
		return nil
	}
	rec, err := s.load(ctx, access)
	if err != nil {
		return nil
	}
	return rec.UserData
}

// IsAuthenticated is a pure presence check. Token validity is the
// upstream's concern; an expired token surfaces as a 401 on the next call.
func (s *Store) IsAuthenticated(c *gin.Context) bool {
	access, err := c.Cookie(CookieAccessToken)
	return err == nil && access != ""
}

func (s *Store) load(ctx context.Context, access string) (*record, error) {
	data, err := s.mirror.Get(ctx, mirrorKey(access)).Result()
	if err != nil {
		return nil, err
	}
	var rec record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func mirrorKey(access string) string {
	sum := sha256.Sum256([]byte(access))
	return "session:" + hex.EncodeToString(sum[:])
}

// accessCookieMaxAge caps the cookie lifetime at the token's own exp claim
// when the access token parses as a JWT. The claim is read unverified; the
// gateway never judges token validity, it only avoids keeping a cookie
// around longer than the token could possibly live.
func accessCookieMaxAge(access string) int {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return accessMaxAge
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return accessMaxAge
	}
	remaining := int(time.Until(exp.Time).Seconds())
	if remaining <= 0 || remaining > accessMaxAge {
		return accessMaxAge
	}
	return remaining
}
