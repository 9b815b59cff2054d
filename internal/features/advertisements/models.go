package advertisements

import "strconv"

// Advertisement is a promotional banner shown in the mobile app. The image
// is stored upstream; the gateway only sees the URL or the base64 payload
// being uploaded.
type Advertisement struct {
	ID        int    `json:"id"`
	CreatedAt string `json:"created_at"`
	Image     string `json:"image"`
	Enable    bool   `json:"enable"`
}

type Input struct {
	Image  string `json:"image" binding:"required"`
	Enable bool   `json:"enable"`
}

type Patch struct {
	Image  *string `json:"image,omitempty"`
	Enable *bool   `json:"enable,omitempty"`
}

// Filters narrow the advertisement list. Enable is tri-state: nil means the
// filter is absent upstream.
type Filters struct {
	Page     int
	PageSize int
	Enable   *bool
}

func (f Filters) Map() map[string]string {
	m := map[string]string{}
	if f.Page > 0 {
		m["page"] = strconv.Itoa(f.Page)
	}
	if f.PageSize > 0 {
		m["page_size"] = strconv.Itoa(f.PageSize)
	}
	if f.Enable != nil {
		m["enable"] = strconv.FormatBool(*f.Enable)
	}
	return m
}
