package botusers

// BotUser is a Telegram bot account known to the upstream.
type BotUser struct {
	ID             int    `json:"id"`
	CreatedAt      string `json:"created_at"`
	TelegramUserID string `json:"telegram_user_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
}

// Filters narrow the bot-user list. IsBlock is tri-state.
type Filters struct {
	IsBlock *bool
	Search  string
}

func (f Filters) Map() map[string]string {
	m := map[string]string{"search": f.Search}
	if f.IsBlock != nil {
		if *f.IsBlock {
			m["is_block"] = "true"
		} else {
			m["is_block"] = "false"
		}
	}
	return m
}
