package turnaicash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the HTTP wrapper around the TURNAICASH API. It joins the base
// URL with relative resource paths, attaches the bearer token of the acting
// session, and decodes JSON responses. All domain rules live upstream; the
// client forwards requests and errors unchanged.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx upstream response. Fields carries DRF-style
// per-field validation messages when the upstream returned them.
type APIError struct {
	Status int
	Detail string
	Fields map[string][]string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("upstream %d", e.Status)
}

// IsUnauthorized reports whether err is an upstream 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// Do issues a request against the upstream API. token may be empty for
// unauthenticated endpoints (login). out may be nil when the response body
// is irrelevant. Returns *APIError for non-2xx responses; other errors are
// transport failures.
func (c *Client) Do(ctx context.Context, token, method, path string, params url.Values, body, out interface{}) error {
	raw, err := c.DoRaw(ctx, token, method, path, params, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}

// DoRaw is Do without response decoding; list endpoints use it so the
// caller can normalize the two list shapes the upstream emits.
func (c *Client) DoRaw(ctx context.Context, token, method, path string, params url.Values, body interface{}) ([]byte, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}

// parseAPIError extracts the upstream error shape. The API answers either
// {"detail": "..."} or a {field: ["msg", ...]} map for validation failures.
func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status}
	if len(raw) == 0 {
		return apiErr
	}

	var generic map[string]json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		apiErr.Detail = strings.TrimSpace(string(raw))
		return apiErr
	}

	if d, ok := generic["detail"]; ok {
		var detail string
		if json.Unmarshal(d, &detail) == nil {
			apiErr.Detail = detail
		}
		delete(generic, "detail")
	}

	for field, v := range generic {
		var msgs []string
		if json.Unmarshal(v, &msgs) == nil {
			if apiErr.Fields == nil {
				apiErr.Fields = make(map[string][]string)
			}
			apiErr.Fields[field] = msgs
			continue
		}
		var msg string
		if json.Unmarshal(v, &msg) == nil {
			if apiErr.Fields == nil {
				apiErr.Fields = make(map[string][]string)
			}
			apiErr.Fields[field] = []string{msg}
		}
	}
	return apiErr
}
