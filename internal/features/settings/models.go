package settings

// Settings is the single global configuration object. Money amounts are the
// upstream's decimal strings.
type Settings struct {
	ID                   int     `json:"id"`
	MinimumDeposit       string  `json:"minimum_deposit"`
	MinimumWithdrawal    string  `json:"minimum_withdrawal"`
	BonusPercent         string  `json:"bonus_percent"`
	RewardMiniWithdrawal string  `json:"reward_mini_withdrawal"`
	WhatsappPhone        *string `json:"whatsapp_phone"`
	MinimumSolde         *string `json:"minimum_solde"`
	ReferralBonus        bool    `json:"referral_bonus"`
	DepositReward        bool    `json:"deposit_reward"`
	DepositRewardPercent string  `json:"deposit_reward_percent"`
	MinVersion           *string `json:"min_version"`
	LastVersion          *string `json:"last_version"`
	DowloadApkLink       *string `json:"dowload_apk_link"`
	WaveDefaultLink      *string `json:"wave_default_link"`
	OrangeDefaultLink    *string `json:"orange_default_link"`
	MtnDefaultLink       *string `json:"mtn_default_link"`
}

type Patch struct {
	MinimumDeposit       *string `json:"minimum_deposit,omitempty"`
	MinimumWithdrawal    *string `json:"minimum_withdrawal,omitempty"`
	BonusPercent         *string `json:"bonus_percent,omitempty"`
	RewardMiniWithdrawal *string `json:"reward_mini_withdrawal,omitempty"`
	WhatsappPhone        *string `json:"whatsapp_phone,omitempty"`
	MinimumSolde         *string `json:"minimum_solde,omitempty"`
	ReferralBonus        *bool   `json:"referral_bonus,omitempty"`
	DepositReward        *bool   `json:"deposit_reward,omitempty"`
	DepositRewardPercent *string `json:"deposit_reward_percent,omitempty"`
	MinVersion           *string `json:"min_version,omitempty"`
	LastVersion          *string `json:"last_version,omitempty"`
	DowloadApkLink       *string `json:"dowload_apk_link,omitempty"`
	WaveDefaultLink      *string `json:"wave_default_link,omitempty"`
	OrangeDefaultLink    *string `json:"orange_default_link,omitempty"`
	MtnDefaultLink       *string `json:"mtn_default_link,omitempty"`
}
