package userappids

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/common/errors"
	"turnaicash-admin/internal/platform/partner"
	"turnaicash-admin/internal/platform/turnaicash"
)

type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if v, ok := m.data[key]; ok {
		cmd.SetVal(v)
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (m *memStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	m.data[key] = fmt.Sprint(value)
	cmd.SetVal("OK")
	return cmd
}

func (m *memStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	for _, k := range keys {
		delete(m.data, k)
	}
	return cmd
}

func (m *memStore) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	cmd := redis.NewStringSliceCmd(ctx)
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	cmd.SetVal(keys)
	return cmd
}

type validatorMock struct {
	validateFn func(ctx context.Context, userID string) (*partner.Player, error)
}

func (m *validatorMock) ValidateUser(ctx context.Context, userID string) (*partner.Player, error) {
	return m.validateFn(ctx, userID)
}

func newService(t *testing.T, posts *int, validator partner.UserValidator) Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			*posts++
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":9,"user_app_id":"123456789","app_name":"melbet","created_at":"2025-01-01T00:00:00Z"}`))
			return
		}
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)
	client := turnaicash.NewClient(srv.URL, time.Second)
	return NewService(client, cache.NewService(newMemStore(), time.Minute), validator)
}

func TestCreateValidatesPlayerBeforeUpstream(t *testing.T) {
	tests := []struct {
		name       string
		validate   func(ctx context.Context, userID string) (*partner.Player, error)
		wantCode   errors.ErrorCode
		wantPosted bool
	}{
		{
			name: "confirmed player reaches the upstream",
			validate: func(ctx context.Context, userID string) (*partner.Player, error) {
				return &partner.Player{UserID: userID, Name: "John", CurrencyID: 27}, nil
			},
			wantPosted: true,
		},
		{
			name: "unknown player is blocked",
			validate: func(ctx context.Context, userID string) (*partner.Player, error) {
				return nil, partner.ErrPlayerNotFound
			},
			wantCode: errors.ErrCodePlayerNotFound,
		},
		{
			name: "wrong currency is blocked",
			validate: func(ctx context.Context, userID string) (*partner.Player, error) {
				return nil, partner.ErrWrongCurrency
			},
			wantCode: errors.ErrCodeWrongCurrency,
		},
		{
			name: "partner outage surfaces as partner error",
			validate: func(ctx context.Context, userID string) (*partner.Player, error) {
				return nil, fmt.Errorf("partner http 503")
			},
			wantCode: errors.ErrCodePartnerAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := 0
			svc := newService(t, &posts, &validatorMock{validateFn: tt.validate})

			created, err := svc.Create(context.Background(), "tok", Input{UserAppID: "123456789", AppName: "melbet"})

			if tt.wantCode != "" {
				require.Error(t, err)
				appErr, ok := errors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Zero(t, posts, "rejected player must never reach the upstream")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "123456789", created.UserAppID)
			assert.Equal(t, 1, posts)
		})
	}
}

func TestCreateInvalidatesListCache(t *testing.T) {
	posts := 0
	validator := &validatorMock{validateFn: func(ctx context.Context, userID string) (*partner.Player, error) {
		return &partner.Player{UserID: userID, CurrencyID: 27}, nil
	}}
	svc := newService(t, &posts, validator)

	_, err := svc.List(context.Background(), "tok")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "tok", Input{UserAppID: "42", AppName: "melbet"})
	require.NoError(t, err)

	page, err := svc.List(context.Background(), "tok")
	require.NoError(t, err)
	assert.NotNil(t, page)
}
