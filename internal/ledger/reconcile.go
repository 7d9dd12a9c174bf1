package ledger

import "context"

// Reconcile totals a game's withheld fees from both append-only trails. The
// two sums must agree; a mismatch means a partial write slipped through.
func (s *Service) Reconcile(ctx context.Context, gameID string) (*Reconciliation, error) {
	playTotal, err := s.store.SumPlayFees(ctx, gameID)
	if err != nil {
		return nil, err
	}
	feeTotal, err := s.store.SumFeeRecords(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return &Reconciliation{
		GameID:         gameID,
		PlayFeeTotal:   playTotal,
		FeeRecordTotal: feeTotal,
		Consistent:     playTotal == feeTotal,
	}, nil
}
