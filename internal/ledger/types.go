package ledger

import (
	"time"

	"snapstakes/internal/store"
)

type PlayResult struct {
	Balance int64            `json:"balance"`
	Record  store.PlayRecord `json:"play"`
}

type VoteResult struct {
	Balance int64 `json:"balance"`
	Votes   int64 `json:"votes"`
}

// SafeGameConfig is the public projection of a game config. Odds and fee
// percent stay private to the house.
type SafeGameConfig struct {
	GameID            string    `json:"game_id"`
	Cost              int64     `json:"cost"`
	PayoutMultipliers []float64 `json:"payout_multipliers"`
	Enabled           bool      `json:"enabled"`
}

// GamePatch carries partial-update semantics: nil fields keep their prior
// value.
type GamePatch struct {
	Enabled     *bool     `json:"enabled"`
	Cost        *int64    `json:"cost"`
	FeePercent  *int64    `json:"fee_percent"`
	Odds        []float64 `json:"odds"`
	Multipliers []float64 `json:"payout_multipliers"`
}

type Reconciliation struct {
	GameID         string `json:"game_id"`
	PlayFeeTotal   int64  `json:"play_fee_total"`
	FeeRecordTotal int64  `json:"fee_record_total"`
	Consistent     bool   `json:"consistent"`
}

type WithdrawView struct {
	ID          string     `json:"id"`
	AccountID   string     `json:"account_id"`
	Amount      int64      `json:"amount"`
	Destination string     `json:"destination"`
	TxRef       string     `json:"tx_ref,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

func withdrawView(wr *store.WithdrawRequest) *WithdrawView {
	return &WithdrawView{
		ID:          wr.ID,
		AccountID:   wr.AccountID,
		Amount:      wr.Amount,
		Destination: wr.Destination,
		TxRef:       wr.TxRef,
		Status:      wr.Status,
		CreatedAt:   wr.CreatedAt,
		ProcessedAt: wr.ProcessedAt,
	}
}
