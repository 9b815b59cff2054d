package userappids

// UserAppID links a player's betting-platform account number to the
// mobile-money side.
type UserAppID struct {
	ID           int     `json:"id"`
	UserAppID    string  `json:"user_app_id"`
	CreatedAt    string  `json:"created_at"`
	User         *string `json:"user"`
	TelegramUser *int    `json:"telegram_user"`
	AppName      string  `json:"app_name"`
}

type Input struct {
	UserAppID string `json:"user_app_id" binding:"required"`
	AppName   string `json:"app_name" binding:"required"`
}
