package response

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnaicash-admin/internal/common/errors"
	"turnaicash-admin/internal/platform/turnaicash"
	"turnaicash-admin/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memMirror struct {
	data map[string]string
}

func newMemMirror() *memMirror {
	return &memMirror{data: make(map[string]string)}
}

func (m *memMirror) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if v, ok := m.data[key]; ok {
		cmd.SetVal(v)
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (m *memMirror) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	m.data[key] = fmt.Sprint(value)
	cmd.SetVal("OK")
	return cmd
}

func (m *memMirror) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	for _, k := range keys {
		delete(m.data, k)
	}
	return cmd
}

func run(t *testing.T, sessions *session.Store, err error, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/platforms", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	Error(c, sessions, err)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErrorUpstream401ClearsSessionAndRedirects(t *testing.T) {
	sessions := session.NewStore(newMemMirror(), false)
	rec := run(t, sessions,
		&turnaicash.APIError{Status: http.StatusUnauthorized, Detail: "Token expired"},
		&http.Cookie{Name: session.CookieAccessToken, Value: "dead-token"},
	)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decode(t, rec)
	var redirect string
	require.NoError(t, json.Unmarshal(body["redirect"], &redirect))
	assert.Equal(t, "/login", redirect)

	// Both session cookies must be expired by the response.
	cleared := 0
	res := http.Response{Header: rec.Header()}
	for _, ck := range res.Cookies() {
		if ck.Name == session.CookieAccessToken || ck.Name == session.CookieRefreshToken {
			assert.Empty(t, ck.Value)
			assert.Less(t, ck.MaxAge, 0)
			cleared++
		}
	}
	assert.Equal(t, 2, cleared)
}

func TestErrorUpstream400ForwardsFieldErrors(t *testing.T) {
	sessions := session.NewStore(newMemMirror(), false)
	rec := run(t, sessions, &turnaicash.APIError{
		Status: http.StatusBadRequest,
		Fields: map[string][]string{"phone_number": {"This field is required."}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error struct {
			Code        string              `json:"code"`
			FieldErrors map[string][]string `json:"field_errors"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, string(errors.ErrCodeUpstreamValidation), envelope.Error.Code)
	assert.Equal(t, []string{"This field is required."}, envelope.Error.FieldErrors["phone_number"])
}

func TestErrorUpstreamStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		upstream int
		want     int
	}{
		{name: "404 passes through", upstream: http.StatusNotFound, want: http.StatusNotFound},
		{name: "409 passes through", upstream: http.StatusConflict, want: http.StatusConflict},
		{name: "500 becomes bad gateway", upstream: http.StatusInternalServerError, want: http.StatusBadGateway},
		{name: "403 becomes bad gateway", upstream: http.StatusForbidden, want: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := session.NewStore(newMemMirror(), false)
			rec := run(t, sessions, &turnaicash.APIError{Status: tt.upstream})
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestErrorTransportFailureIsBadGateway(t *testing.T) {
	sessions := session.NewStore(newMemMirror(), false)
	rec := run(t, sessions, fmt.Errorf("upstream request: connection refused"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestErrorLocalAppErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errors.NewValidationError("image", "too big"), want: http.StatusBadRequest},
		{name: "player not found", err: errors.New(errors.ErrCodePlayerNotFound, "no player"), want: http.StatusBadRequest},
		{name: "wrong currency", err: errors.New(errors.ErrCodeWrongCurrency, "currency"), want: http.StatusBadRequest},
		{name: "missing confirmation", err: errors.New(errors.ErrCodeBadRequest, "confirm"), want: http.StatusBadRequest},
		{name: "unauthorized", err: errors.NewUnauthorizedError("no session"), want: http.StatusUnauthorized},
		{name: "partner outage", err: errors.NewPartnerError("lookup", fmt.Errorf("boom")), want: http.StatusBadGateway},
		{name: "internal", err: errors.New(errors.ErrCodeInternal, "boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := session.NewStore(newMemMirror(), false)
			rec := run(t, sessions, tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
