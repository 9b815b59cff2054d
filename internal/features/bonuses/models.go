package bonuses

import "strconv"

// BonusUser is the compact owner object inlined in bonus rows.
type BonusUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Bonus is a reward credited to a user. Amount is the upstream's decimal
// string, forwarded untouched.
type Bonus struct {
	ID          int       `json:"id"`
	CreatedAt   string    `json:"created_at"`
	Amount      string    `json:"amount"`
	ReasonBonus string    `json:"reason_bonus"`
	Transaction *int      `json:"transaction"`
	User        BonusUser `json:"user"`
}

type Filters struct {
	Page     int
	PageSize int
	Search   string
	User     string
}

func (f Filters) Map() map[string]string {
	m := map[string]string{
		"search": f.Search,
		"user":   f.User,
	}
	if f.Page > 0 {
		m["page"] = strconv.Itoa(f.Page)
	}
	if f.PageSize > 0 {
		m["page_size"] = strconv.Itoa(f.PageSize)
	}
	return m
}
