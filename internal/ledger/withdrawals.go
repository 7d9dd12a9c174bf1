package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"snapstakes/internal/store"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// RequestWithdrawal opens a pending request. The balance is untouched until
// an admin approves; pending requests do not reserve funds, so approval can
// still fail on a balance that has since been spent.
func (s *Service) RequestWithdrawal(ctx context.Context, accountID string, amount int64, destination string) (*WithdrawView, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if destination == "" {
		return nil, ErrInvalidRequest
	}
	if _, err := s.store.GetAccount(ctx, accountID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	wr := store.WithdrawRequest{
		ID:          store.NewID(),
		AccountID:   accountID,
		Amount:      amount,
		Destination: destination,
		Status:      store.WithdrawPending,
	}
	if err := s.store.InsertWithdrawRequest(ctx, wr); err != nil {
		return nil, err
	}
	created, err := s.store.GetWithdrawRequest(ctx, wr.ID)
	if err != nil {
		return nil, err
	}
	return withdrawView(created), nil
}

// DecideWithdrawal moves a pending request to its terminal state. A request
// transitions exactly once; deciding a non-pending request fails without
// touching anything. Approval debits inside the same transaction and is
// refused outright if the balance has dropped below the requested amount.
func (s *Service) DecideWithdrawal(ctx context.Context, requestID, decision, txRef string) (*WithdrawView, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return nil, ErrInvalidRequest
	}
	var view *WithdrawView
	err := s.tx(ctx, func(tx pgx.Tx) error {
		wr, err := s.store.GetWithdrawRequestForUpdate(ctx, tx, requestID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if wr.Status != store.WithdrawPending {
			return ErrInvalidTransition
		}

		status := store.WithdrawRejected
		if decision == DecisionApprove {
			status = store.WithdrawApproved
			bal, err := s.store.LockAccountBalance(ctx, tx, wr.AccountID)
			if err != nil {
				return err
			}
			if bal < wr.Amount {
				return ErrInsufficientFunds
			}
			if err := s.store.UpdateAccountBalance(ctx, tx, wr.AccountID, bal-wr.Amount); err != nil {
				return err
			}
		}
		if err := s.store.MarkWithdrawProcessed(ctx, tx, wr.ID, status, txRef); err != nil {
			return err
		}
		now := time.Now().UTC()
		wr.Status = status
		wr.TxRef = txRef
		wr.ProcessedAt = &now
		view = withdrawView(wr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *Service) GetWithdrawal(ctx context.Context, requestID string) (*WithdrawView, error) {
	wr, err := s.store.GetWithdrawRequest(ctx, requestID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return withdrawView(wr), nil
}
