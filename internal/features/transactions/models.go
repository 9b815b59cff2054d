package transactions

import (
	"encoding/json"
	"strconv"
)

// TransactionUser is the compact owner object inlined in history rows.
type TransactionUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Transaction mirrors the upstream history row 1:1, upstream spellings
// included (withdriwal_code, net_payable_amout, wehook_receive_at). The
// gateway forwards the row unchanged; renaming here would break the clients
// that already consume the upstream shape.
type Transaction struct {
	ID                  int              `json:"id"`
	User                *TransactionUser `json:"user"`
	Amount              float64          `json:"amount"`
	DepositRewardAmount *float64         `json:"deposit_reward_amount"`
	Reference           string           `json:"reference"`
	TypeTrans           string           `json:"type_trans"`
	Status              string           `json:"status"`
	CreatedAt           string           `json:"created_at"`
	ValidatedAt         *string          `json:"validated_at"`
	WebhookData         json.RawMessage  `json:"webhook_data"`
	WehookReceiveAt     *string          `json:"wehook_receive_at"`
	PhoneNumber         string           `json:"phone_number"`
	UserAppID           string           `json:"user_app_id"`
	WithdriwalCode      *string          `json:"withdriwal_code"`
	ErrorMessage        *string          `json:"error_message"`
	TransactionLink     *string          `json:"transaction_link"`
	NetPayableAmout     *float64         `json:"net_payable_amout"`
	OtpCode             *string          `json:"otp_code"`
	PublicID            *string          `json:"public_id"`
	AlreadyProcess      bool             `json:"already_process"`
	Source              string           `json:"source"`
	OldStatus           string           `json:"old_status"`
	OldPublicID         string           `json:"old_public_id"`
	SuccessWebhookSend  bool             `json:"success_webhook_send"`
	FailWebhookSend     bool             `json:"fail_webhook_send"`
	PendingWebhookSend  bool             `json:"pending_webhook_send"`
	TimeoutWebhookSend  bool             `json:"timeout_webhook_send"`
	TelegramUser        *int             `json:"telegram_user"`
	App                 string           `json:"app"`
	Network             int              `json:"network"`
}

type Filters struct {
	Page      int
	PageSize  int
	User      string
	TypeTrans string
	Status    string
	Source    string
	Network   int
	Search    string
}

func (f Filters) Map() map[string]string {
	m := map[string]string{
		"user":       f.User,
		"type_trans": f.TypeTrans,
		"status":     f.Status,
		"source":     f.Source,
		"search":     f.Search,
	}
	if f.Page > 0 {
		m["page"] = strconv.Itoa(f.Page)
	}
	if f.PageSize > 0 {
		m["page_size"] = strconv.Itoa(f.PageSize)
	}
	if f.Network > 0 {
		m["network"] = strconv.Itoa(f.Network)
	}
	return m
}

type DepositInput struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	App         string  `json:"app" binding:"required"`
	UserAppID   string  `json:"user_app_id" binding:"required"`
	Network     int     `json:"network" binding:"required"`
	Source      string  `json:"source" binding:"required,oneof=web mobile"`
}

type WithdrawalInput struct {
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	PhoneNumber    string  `json:"phone_number" binding:"required"`
	App            string  `json:"app" binding:"required"`
	UserAppID      string  `json:"user_app_id" binding:"required"`
	Network        int     `json:"network" binding:"required"`
	WithdriwalCode string  `json:"withdriwal_code" binding:"required"`
	Source         string  `json:"source" binding:"required,oneof=web mobile"`
}

// ChangeStatusInput moves a transaction by reference through the manual
// review statuses.
type ChangeStatusInput struct {
	Status    string `json:"status" binding:"required,oneof=accept reject pending"`
	Reference string `json:"reference" binding:"required"`
}

// ChangeBotStatusInput is the bot-side variant with its own status set.
type ChangeBotStatusInput struct {
	Status    string `json:"status" binding:"required,oneof=init_payment accept error pending"`
	Reference string `json:"reference" binding:"required"`
}
