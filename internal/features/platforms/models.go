package platforms

// Platform mirrors the upstream betting-platform entity 1:1, including the
// upstream's own field spellings. The gateway never renames or derives
// fields; it displays and forwards them unchanged.
type Platform struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Image              string  `json:"image"`
	Enable             bool    `json:"enable"`
	DepositTutoLink    *string `json:"deposit_tuto_link"`
	WithdrawalTutoLink *string `json:"withdrawal_tuto_link"`
	WhyWithdrawalFail  *string `json:"why_withdrawal_fail"`
	Order              *int    `json:"order"`
	City               *string `json:"city"`
	Street             *string `json:"street"`
	MinimunDeposit     float64 `json:"minimun_deposit"`
	MaxDeposit         float64 `json:"max_deposit"`
	MinimunWith        float64 `json:"minimun_with"`
	MaxWin             float64 `json:"max_win"`
}

// Input is the create payload. Defaults in the dashboard form:
// minimun_deposit=200, max_deposit=100000, minimun_with=300,
// max_win=1000000, enable=true.
type Input struct {
	Name               string  `json:"name" binding:"required"`
	Image              string  `json:"image" binding:"required"`
	Enable             bool    `json:"enable"`
	DepositTutoLink    *string `json:"deposit_tuto_link"`
	WithdrawalTutoLink *string `json:"withdrawal_tuto_link"`
	WhyWithdrawalFail  *string `json:"why_withdrawal_fail"`
	Order              *int    `json:"order"`
	City               *string `json:"city"`
	Street             *string `json:"street"`
	MinimunDeposit     float64 `json:"minimun_deposit" binding:"required,gt=0"`
	MaxDeposit         float64 `json:"max_deposit" binding:"required,gt=0"`
	MinimunWith        float64 `json:"minimun_with" binding:"required,gt=0"`
	MaxWin             float64 `json:"max_win" binding:"required,gt=0"`
}

// Patch is the partial update payload; nil fields are omitted upstream.
type Patch struct {
	Name               *string  `json:"name,omitempty"`
	Image              *string  `json:"image,omitempty"`
	Enable             *bool    `json:"enable,omitempty"`
	DepositTutoLink    *string  `json:"deposit_tuto_link,omitempty"`
	WithdrawalTutoLink *string  `json:"withdrawal_tuto_link,omitempty"`
	WhyWithdrawalFail  *string  `json:"why_withdrawal_fail,omitempty"`
	Order              *int     `json:"order,omitempty"`
	City               *string  `json:"city,omitempty"`
	Street             *string  `json:"street,omitempty"`
	MinimunDeposit     *float64 `json:"minimun_deposit,omitempty"`
	MaxDeposit         *float64 `json:"max_deposit,omitempty"`
	MinimunWith        *float64 `json:"minimun_with,omitempty"`
	MaxWin             *float64 `json:"max_win,omitempty"`
}
