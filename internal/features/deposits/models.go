package deposits

import "turnaicash-admin/internal/features/platforms"

// DepositItem is one row of the per-platform deposit report. Amount is the
// upstream's decimal string.
type DepositItem struct {
	ID        int                `json:"id"`
	BetApp    platforms.Platform `json:"bet_app"`
	Amount    string             `json:"amount"`
	CreatedAt string             `json:"created_at"`
}

// Caisse is a platform cash-desk balance snapshot.
type Caisse struct {
	ID        int                `json:"id"`
	BetApp    platforms.Platform `json:"bet_app"`
	Solde     string             `json:"solde"`
	UpdatedAt *string            `json:"updated_at"`
}
