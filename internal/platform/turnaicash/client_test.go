package turnaicash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.Do(context.Background(), "tok-123", http.MethodGet, "/mobcash/setting", nil, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.Do(context.Background(), "", http.MethodPost, "/auth/login", nil, map[string]string{"password": "x"}, nil)

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientQueryParams(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	params := url.Values{"page": {"2"}, "search": {"wave"}}
	_, err := client.DoRaw(context.Background(), "tok", http.MethodGet, "/mobcash/coupon", params, nil)

	require.NoError(t, err)
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "wave", gotQuery.Get("search"))
}

func TestClientParsesUpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		wantFields map[string][]string
	}{
		{
			name:       "detail object",
			status:     http.StatusUnauthorized,
			body:       `{"detail":"Token expired"}`,
			wantDetail: "Token expired",
		},
		{
			name:       "field errors",
			status:     http.StatusBadRequest,
			body:       `{"phone_number":["This field is required."],"amount":["Must be positive.","Too small."]}`,
			wantFields: map[string][]string{"phone_number": {"This field is required."}, "amount": {"Must be positive.", "Too small."}},
		},
		{
			name:       "single string field error",
			status:     http.StatusBadRequest,
			body:       `{"code":"already used"}`,
			wantFields: map[string][]string{"code": {"already used"}},
		},
		{
			name:       "non-json body",
			status:     http.StatusBadGateway,
			body:       `upstream down`,
			wantDetail: "upstream down",
		},
		{
			name:   "empty body",
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, time.Second)
			err := client.Do(context.Background(), "tok", http.MethodGet, "/x", nil, nil, nil)

			require.Error(t, err)
			apiErr, ok := err.(*APIError)
			require.True(t, ok, "expected *APIError, got %T", err)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Equal(t, tt.wantFields, apiErr.Fields)
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{Status: http.StatusUnauthorized}))
	assert.False(t, IsUnauthorized(&APIError{Status: http.StatusBadRequest}))
	assert.False(t, IsUnauthorized(context.Canceled))
}

func TestParamsSkipsEmptyValues(t *testing.T) {
	assert.Nil(t, Params(nil))
	assert.Nil(t, Params(map[string]string{"search": ""}))

	values := Params(map[string]string{"page": "1", "search": ""})
	require.NotNil(t, values)
	assert.Equal(t, "1", values.Get("page"))
	_, hasSearch := values["search"]
	assert.False(t, hasSearch)
}
