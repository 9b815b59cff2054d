package coupons

import (
	"strconv"

	"turnaicash-admin/internal/features/platforms"
)

// Coupon is a betting coupon bound to a platform. BetApp holds the platform
// id; BetAppDetails is the expanded platform when the upstream inlines it.
type Coupon struct {
	ID            int                 `json:"id"`
	CreatedAt     string              `json:"created_at"`
	Code          string              `json:"code"`
	BetApp        string              `json:"bet_app"`
	BetAppDetails *platforms.Platform `json:"bet_app_details,omitempty"`
}

type Input struct {
	Code   string `json:"code" binding:"required"`
	BetApp string `json:"bet_app" binding:"required"`
}

// Filters narrow the coupon list. Zero values are dropped from both the
// upstream query and the cache key.
type Filters struct {
	Page     int
	PageSize int
	Search   string
	BetApp   string
}

func (f Filters) Map() map[string]string {
	m := map[string]string{
		"search":  f.Search,
		"bet_app": f.BetApp,
	}
	if f.Page > 0 {
		m["page"] = strconv.Itoa(f.Page)
	}
	if f.PageSize > 0 {
		m["page_size"] = strconv.Itoa(f.PageSize)
	}
	return m
}
