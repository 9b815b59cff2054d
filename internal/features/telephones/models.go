package telephones

// Telephone is a payment phone number registered against a mobile-money
// network.
type Telephone struct {
	ID           int     `json:"id"`
	CreatedAt    string  `json:"created_at"`
	Phone        string  `json:"phone"`
	User         *string `json:"user"`
	TelegramUser *int    `json:"telegram_user"`
	Network      int     `json:"network"`
}

type Input struct {
	Phone   string `json:"phone" binding:"required"`
	Network int    `json:"network" binding:"required"`
}
