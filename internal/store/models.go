package store

import "time"

const (
	RoleStandard = "standard"
	RoleAdmin    = "admin"
)

const (
	WithdrawPending  = "pending"
	WithdrawApproved = "approved"
	WithdrawRejected = "rejected"
)

type Account struct {
	ID        string
	Balance   int64
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type GameConfig struct {
	ID          string
	Enabled     bool
	Cost        int64
	FeePercent  int64
	Odds        []float64
	Multipliers []float64
	UpdatedAt   time.Time
}

type PlayRecord struct {
	ID           string
	AccountID    string
	GameID       string
	Cost         int64
	Fee          int64
	Stake        int64
	OutcomeIndex int
	Multiplier   float64
	Award        int64
	CreatedAt    time.Time
}

type FeeRecord struct {
	ID        string
	GameID    string
	Amount    int64
	CreatedAt time.Time
}

type WithdrawRequest struct {
	ID          string
	AccountID   string
	Amount      int64
	Destination string
	TxRef       string
	Status      string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

type Photo struct {
	ID        string
	Title     string
	Votes     int64
	CreatedAt time.Time
}

type VoteRecord struct {
	ID        string
	AccountID string
	PhotoID   string
	Count     int64
	UnitCost  int64
	TotalCost int64
	CreatedAt time.Time
}

type Adjustment struct {
	ID        string
	AccountID string
	Amount    int64
	Reason    string
	CreatedAt time.Time
}
