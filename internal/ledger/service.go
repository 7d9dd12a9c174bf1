// Package ledger is the core of the credit system: it owns every mutation of
// an account balance and drives wagers, votes and withdrawals through single
// atomic read-validate-compute-write cycles against the store.
package ledger

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"github.com/jackc/pgx/v5"

	"snapstakes/internal/store"
	"snapstakes/internal/wager"
)

type Service struct {
	store        *store.Store
	voteUnitCost int64
	randFloat    func() float64
}

func NewService(st *store.Store, voteUnitCost int64) *Service {
	return &Service{
		store:        st,
		voteUnitCost: voteUnitCost,
		randFloat:    rand.Float64,
	}
}

// tx wraps store.WithTx, keeping store unavailability distinct from
// business-rule failures.
func (s *Service) tx(ctx context.Context, fn func(pgx.Tx) error) error {
	err := s.store.WithTx(ctx, fn)
	if errors.Is(err, store.ErrUnavailable) {
		return ErrStoreUnavailable
	}
	return err
}

// Play stakes one wager. Each call draws a fresh outcome; retrying a
// successful play is the caller's bug, not ours.
func (s *Service) Play(ctx context.Context, accountID, gameID string) (*PlayResult, error) {
	r := s.randFloat()
	var result PlayResult
	err := s.tx(ctx, func(tx pgx.Tx) error {
		cfg, err := s.store.GetGameConfigTx(ctx, tx, gameID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrGameNotFound
		}
		if err != nil {
			return err
		}
		if !cfg.Enabled {
			return ErrGameDisabled
		}
		out, err := wager.Resolve(cfg.Cost, cfg.FeePercent, cfg.Odds, cfg.Multipliers, r)
		if errors.Is(err, wager.ErrConfigInconsistent) {
			return ErrConfigInconsistent
		}
		if err != nil {
			return err
		}

		bal, err := s.store.LockAccountBalance(ctx, tx, accountID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if bal < out.Cost {
			return ErrInsufficientFunds
		}
		newBal := bal - out.Cost + out.Award

		if err := s.store.UpdateAccountBalance(ctx, tx, accountID, newBal); err != nil {
			return err
		}
		rec := store.PlayRecord{
			ID:           store.NewID(),
			AccountID:    accountID,
			GameID:       gameID,
			Cost:         out.Cost,
			Fee:          out.Fee,
			Stake:        out.Stake,
			OutcomeIndex: out.OutcomeIndex,
			Multiplier:   out.Multiplier,
			Award:        out.Award,
		}
		if err := s.store.InsertPlayRecord(ctx, tx, rec); err != nil {
			return err
		}
		if err := s.store.InsertFeeRecord(ctx, tx, store.FeeRecord{
			ID:     store.NewID(),
			GameID: gameID,
			Amount: out.Fee,
		}); err != nil {
			return err
		}
		result = PlayResult{Balance: newBal, Record: rec}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Vote buys count votes for a photo at the fixed unit price. Non-positive
// counts mean one vote; counts whose total cost would not fit in an int64
// are rejected before any arithmetic can wrap.
func (s *Service) Vote(ctx context.Context, accountID, photoID string, count int64) (*VoteResult, error) {
	if count <= 0 {
		count = 1
	}
	if s.voteUnitCost > 0 && count > math.MaxInt64/s.voteUnitCost {
		return nil, ErrInvalidAmount
	}
	total := count * s.voteUnitCost
	var result VoteResult
	err := s.tx(ctx, func(tx pgx.Tx) error {
		if _, err := s.store.LockPhoto(ctx, tx, photoID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		bal, err := s.store.LockAccountBalance(ctx, tx, accountID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if bal < total {
			return ErrInsufficientFunds
		}
		newBal := bal - total
		if err := s.store.UpdateAccountBalance(ctx, tx, accountID, newBal); err != nil {
			return err
		}
		votes, err := s.store.AddPhotoVotes(ctx, tx, photoID, count)
		if err != nil {
			return err
		}
		if err := s.store.InsertVoteRecord(ctx, tx, store.VoteRecord{
			ID:        store.NewID(),
			AccountID: accountID,
			PhotoID:   photoID,
			Count:     count,
			UnitCost:  s.voteUnitCost,
			TotalCost: total,
		}); err != nil {
			return err
		}
		result = VoteResult{Balance: newBal, Votes: votes}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
