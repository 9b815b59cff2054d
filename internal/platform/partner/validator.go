// Package partner talks to the payment partner's cashdesk API. The one
// piece of cross-service flow in the dashboard lives here: before a
// user-app-id is created, the player account is looked up on the partner
// side and must exist on the expected currency. The gateway forwards the
// partner's verdict; it owns none of the rules.
package partner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Player is the partner's view of a player account.
type Player struct {
	UserID     string `json:"UserId"`
	Name       string `json:"Name"`
	CurrencyID int    `json:"CurrencyId"`
}

// UserValidator is the pre-create validation hook. Implementations return
// ErrPlayerNotFound when the partner reports no such account and
// ErrWrongCurrency when the account exists on another currency.
type UserValidator interface {
	ValidateUser(ctx context.Context, userID string) (*Player, error)
}

var (
	ErrPlayerNotFound = fmt.Errorf("partner: player not found")
	ErrWrongCurrency  = fmt.Errorf("partner: player registered on another currency")
)

// Client implements UserValidator over the cashdesk HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	currencyID int
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, currencyID int) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		currencyID: currencyID,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

func (c *Client) ValidateUser(ctx context.Context, userID string) (*Player, error) {
	url := c.baseURL + "/Users/" + userID
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPlayerNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("partner http %d", resp.StatusCode)
	}

	var player Player
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, err
	}
	if player.UserID == "" {
		return nil, ErrPlayerNotFound
	}
	if player.CurrencyID != c.currencyID {
		return nil, ErrWrongCurrency
	}
	return &player, nil
}
