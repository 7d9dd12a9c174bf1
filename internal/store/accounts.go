package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) EnsureAccount(ctx context.Context, id string, initial int64, role string) error {
	if role == "" {
		role = RoleStandard
	}
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO accounts (id, balance, role) VALUES ($1,$2,$3) ON CONFLICT (id) DO NOTHING`,
		id, initial, role)
	return err
}

func (s *Store) GetAccount(ctx context.Context, id string) (*Account, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT id, balance, role, created_at, updated_at FROM accounts WHERE id = $1`, id)
	var a Account
	if err := row.Scan(&a.ID, &a.Balance, &a.Role, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

func (s *Store) GetAccountBalance(ctx context.Context, id string) (int64, error) {
	row := s.Pool.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1`, id)
	var bal int64
	if err := row.Scan(&bal); err != nil {
		return 0, mapNotFound(err)
	}
	return bal, nil
}

// LockAccountBalance takes the row lock that serializes every mutation of
// this account for the rest of the transaction.
func (s *Store) LockAccountBalance(ctx context.Context, tx pgx.Tx, id string) (int64, error) {
	row := tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`, id)
	var bal int64
	if err := row.Scan(&bal); err != nil {
		return 0, mapNotFound(err)
	}
	return bal, nil
}

func (s *Store) UpdateAccountBalance(ctx context.Context, tx pgx.Tx, id string, balance int64) error {
	if balance < 0 {
		return errors.New("balance must be non-negative")
	}
	_, err := tx.Exec(ctx,
		`UPDATE accounts SET balance = $1, updated_at = now() WHERE id = $2`, balance, id)
	return err
}

// Credit adds amount to an account and records an adjustment row, in one
// transaction. Used for admin top-ups and signup bonuses.
func (s *Store) Credit(ctx context.Context, accountID string, amount int64, reason string) (int64, error) {
	if amount < 0 {
		return 0, errors.New("amount must be positive")
	}
	var newBal int64
	err := s.WithTx(ctx, func(tx pgx.Tx) error {
		bal, err := s.LockAccountBalance(ctx, tx, accountID)
		if err != nil {
			return err
		}
		newBal = bal + amount
		if err := s.UpdateAccountBalance(ctx, tx, accountID, newBal); err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO adjustments (id, account_id, amount, reason) VALUES ($1,$2,$3,$4)`,
			NewID(), accountID, amount, reason)
		return err
	})
	if err != nil {
		return 0, err
	}
	return newBal, nil
}

func (s *Store) ListAccounts(ctx context.Context, limit, offset int) ([]Account, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT id, balance, role, created_at, updated_at FROM accounts ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Account{}
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Balance, &a.Role, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
