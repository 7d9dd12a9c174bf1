package ledger

import "errors"

var (
	ErrNotFound           = errors.New("not_found")
	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrInsufficientFunds  = errors.New("insufficient_funds")
	ErrGameNotFound       = errors.New("game_not_found")
	ErrGameDisabled       = errors.New("game_disabled")
	ErrInvalidTransition  = errors.New("invalid_transition")
	ErrConfigInconsistent = errors.New("config_inconsistent")
	ErrStoreUnavailable   = errors.New("store_unavailable")
)
