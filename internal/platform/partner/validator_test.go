package partner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:   "player on the expected currency",
			status: http.StatusOK,
			body:   `{"UserId":"123456789","Name":"John Doe","CurrencyId":27}`,
		},
		{
			name:    "partner reports 404",
			status:  http.StatusNotFound,
			body:    `{"detail":"not found"}`,
			wantErr: ErrPlayerNotFound,
		},
		{
			name:    "empty user id in the payload",
			status:  http.StatusOK,
			body:    `{"UserId":"","Name":"","CurrencyId":27}`,
			wantErr: ErrPlayerNotFound,
		},
		{
			name:    "player on another currency",
			status:  http.StatusOK,
			body:    `{"UserId":"123456789","Name":"John Doe","CurrencyId":840}`,
			wantErr: ErrWrongCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/Users/123456789", r.URL.Path)
				assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "secret", 27)
			player, err := client.ValidateUser(context.Background(), "123456789")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, player)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, player)
			assert.Equal(t, "123456789", player.UserID)
			assert.Equal(t, 27, player.CurrencyID)
		})
	}
}

func TestValidateUserServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 27)
	_, err := client.ValidateUser(context.Background(), "1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPlayerNotFound)
	assert.NotErrorIs(t, err, ErrWrongCurrency)
}
