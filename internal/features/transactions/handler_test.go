package transactions

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"turnaicash-admin/internal/platform/turnaicash"
	"turnaicash-admin/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type emptyMirror struct{}

func (emptyMirror) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	cmd.SetErr(redis.Nil)
	return cmd
}

func (emptyMirror) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (emptyMirror) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntCmd(ctx)
}

type serviceMock struct {
	changeFn    func(ctx context.Context, token string, input ChangeStatusInput) error
	changeBotFn func(ctx context.Context, token string, input ChangeBotStatusInput) error
}

func (m *serviceMock) List(ctx context.Context, token string, filters Filters) (*turnaicash.Page[Transaction], error) {
	return &turnaicash.Page[Transaction]{Results: []Transaction{}}, nil
}

func (m *serviceMock) CreateDeposit(ctx context.Context, token string, input DepositInput) (*Transaction, error) {
	return &Transaction{}, nil
}

func (m *serviceMock) CreateWithdrawal(ctx context.Context, token string, input WithdrawalInput) (*Transaction, error) {
	return &Transaction{}, nil
}

func (m *serviceMock) ChangeStatus(ctx context.Context, token string, input ChangeStatusInput) error {
	return m.changeFn(ctx, token, input)
}

func (m *serviceMock) ChangeBotStatus(ctx context.Context, token string, input ChangeBotStatusInput) error {
	return m.changeBotFn(ctx, token, input)
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestChangeStatusAllowedValues(t *testing.T) {
	tests := []struct {
		status     string
		wantStatus int
	}{
		{status: "accept", wantStatus: http.StatusOK},
		{status: "reject", wantStatus: http.StatusOK},
		{status: "pending", wantStatus: http.StatusOK},
		{status: "timeout", wantStatus: http.StatusBadRequest},
		{status: "init_payment", wantStatus: http.StatusBadRequest},
		{status: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %q", tt.status), func(t *testing.T) {
			svc := &serviceMock{changeFn: func(ctx context.Context, token string, input ChangeStatusInput) error {
				return nil
			}}
			router := gin.New()
			NewHandler(svc, session.NewStore(emptyMirror{}, false)).RegisterRoutes(router.Group("/api/v1"))

			body := fmt.Sprintf(`{"status":%q,"reference":"TX-1"}`, tt.status)
			rec := post(router, "/api/v1/transactions/change-status", body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestChangeBotStatusAllowedValues(t *testing.T) {
	tests := []struct {
		status     string
		wantStatus int
	}{
		{status: "init_payment", wantStatus: http.StatusOK},
		{status: "accept", wantStatus: http.StatusOK},
		{status: "error", wantStatus: http.StatusOK},
		{status: "pending", wantStatus: http.StatusOK},
		{status: "reject", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %q", tt.status), func(t *testing.T) {
			svc := &serviceMock{changeBotFn: func(ctx context.Context, token string, input ChangeBotStatusInput) error {
				return nil
			}}
			router := gin.New()
			NewHandler(svc, session.NewStore(emptyMirror{}, false)).RegisterRoutes(router.Group("/api/v1"))

			body := fmt.Sprintf(`{"status":%q,"reference":"TX-1"}`, tt.status)
			rec := post(router, "/api/v1/transactions/change-bot-status", body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestChangeStatusRequiresReference(t *testing.T) {
	svc := &serviceMock{changeFn: func(ctx context.Context, token string, input ChangeStatusInput) error {
		t.Fatal("service must not be called")
		return nil
	}}
	router := gin.New()
	NewHandler(svc, session.NewStore(emptyMirror{}, false)).RegisterRoutes(router.Group("/api/v1"))

	rec := post(router, "/api/v1/transactions/change-status", `{"status":"accept"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
