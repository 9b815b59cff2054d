package networks

// Network is a mobile-money operator configuration: display strings for the
// app plus the API routes the upstream uses to move money over it.
type Network struct {
	ID                int     `json:"id"`
	CreatedAt         string  `json:"created_at"`
	Name              string  `json:"name"`
	Placeholder       string  `json:"placeholder"`
	PublicName        string  `json:"public_name"`
	CountryCode       string  `json:"country_code"`
	Indication        string  `json:"indication"`
	Image             string  `json:"image"`
	WithdrawalMessage *string `json:"withdrawal_message"`
	DepositAPI        string  `json:"deposit_api"`
	WithdrawalAPI     string  `json:"withdrawal_api"`
	PaymentByLink     bool    `json:"payment_by_link"`
	OtpRequired       bool    `json:"otp_required"`
	Enable            bool    `json:"enable"`
	DepositMessage    string  `json:"deposit_message"`
	ActiveForDeposit  bool    `json:"active_for_deposit"`
	ActiveForWith     bool    `json:"active_for_with"`
}

type Input struct {
	Name              string  `json:"name" binding:"required"`
	Placeholder       string  `json:"placeholder"`
	PublicName        string  `json:"public_name" binding:"required"`
	CountryCode       string  `json:"country_code" binding:"required"`
	Indication        string  `json:"indication"`
	Image             string  `json:"image" binding:"required"`
	WithdrawalMessage *string `json:"withdrawal_message"`
	DepositAPI        string  `json:"deposit_api"`
	WithdrawalAPI     string  `json:"withdrawal_api"`
	PaymentByLink     bool    `json:"payment_by_link"`
	OtpRequired       bool    `json:"otp_required"`
	Enable            bool    `json:"enable"`
	DepositMessage    string  `json:"deposit_message"`
	ActiveForDeposit  bool    `json:"active_for_deposit"`
	ActiveForWith     bool    `json:"active_for_with"`
}

type Patch struct {
	Name              *string `json:"name,omitempty"`
	Placeholder       *string `json:"placeholder,omitempty"`
	PublicName        *string `json:"public_name,omitempty"`
	CountryCode       *string `json:"country_code,omitempty"`
	Indication        *string `json:"indication,omitempty"`
	Image             *string `json:"image,omitempty"`
	WithdrawalMessage *string `json:"withdrawal_message,omitempty"`
	DepositAPI        *string `json:"deposit_api,omitempty"`
	WithdrawalAPI     *string `json:"withdrawal_api,omitempty"`
	PaymentByLink     *bool   `json:"payment_by_link,omitempty"`
	OtpRequired       *bool   `json:"otp_required,omitempty"`
	Enable            *bool   `json:"enable,omitempty"`
	DepositMessage    *string `json:"deposit_message,omitempty"`
	ActiveForDeposit  *bool   `json:"active_for_deposit,omitempty"`
	ActiveForWith     *bool   `json:"active_for_with,omitempty"`
}
