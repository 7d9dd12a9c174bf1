package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const withdrawColumns = `id, account_id, amount, destination, COALESCE(tx_ref, ''), status, created_at, processed_at`

func scanWithdraw(row pgx.Row) (*WithdrawRequest, error) {
	var wr WithdrawRequest
	if err := row.Scan(&wr.ID, &wr.AccountID, &wr.Amount, &wr.Destination, &wr.TxRef, &wr.Status, &wr.CreatedAt, &wr.ProcessedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &wr, nil
}

func (s *Store) InsertWithdrawRequest(ctx context.Context, wr WithdrawRequest) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO withdraw_requests (id, account_id, amount, destination, status) VALUES ($1,$2,$3,$4,$5)`,
		wr.ID, wr.AccountID, wr.Amount, wr.Destination, wr.Status)
	return err
}

func (s *Store) GetWithdrawRequest(ctx context.Context, id string) (*WithdrawRequest, error) {
	return scanWithdraw(s.Pool.QueryRow(ctx,
		`SELECT `+withdrawColumns+` FROM withdraw_requests WHERE id = $1`, id))
}

// GetWithdrawRequestForUpdate locks the request row so concurrent decisions
// on the same request serialize and the second one sees the terminal status.
func (s *Store) GetWithdrawRequestForUpdate(ctx context.Context, tx pgx.Tx, id string) (*WithdrawRequest, error) {
	return scanWithdraw(tx.QueryRow(ctx,
		`SELECT `+withdrawColumns+` FROM withdraw_requests WHERE id = $1 FOR UPDATE`, id))
}

func (s *Store) MarkWithdrawProcessed(ctx context.Context, tx pgx.Tx, id, status, txRef string) error {
	_, err := tx.Exec(ctx,
		`UPDATE withdraw_requests SET status = $1, tx_ref = NULLIF($2, ''), processed_at = now() WHERE id = $3`,
		status, txRef, id)
	return err
}

func (s *Store) ListWithdrawRequests(ctx context.Context, accountID, status string, limit, offset int) ([]WithdrawRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT `+withdrawColumns+` FROM withdraw_requests
		 WHERE ($1 = '' OR account_id = $1) AND ($2 = '' OR status = $2)
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		accountID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []WithdrawRequest{}
	for rows.Next() {
		var wr WithdrawRequest
		if err := rows.Scan(&wr.ID, &wr.AccountID, &wr.Amount, &wr.Destination, &wr.TxRef, &wr.Status, &wr.CreatedAt, &wr.ProcessedAt); err != nil {
			return nil, err
		}
		out = append(out, wr)
	}
	return out, rows.Err()
}
