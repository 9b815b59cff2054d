package notifications

// Notification is an in-app message delivered to one user.
type Notification struct {
	ID        int     `json:"id"`
	Reference *string `json:"reference"`
	CreatedAt string  `json:"created_at"`
	Content   string  `json:"content"`
	IsRead    bool    `json:"is_read"`
	Title     string  `json:"title"`
	User      string  `json:"user"`
}

// SendInput targets a single user. The upstream takes the recipient as a
// query parameter, not a body field.
type SendInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
}
