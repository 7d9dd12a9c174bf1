package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func (s *Store) InsertFeeRecord(ctx context.Context, tx pgx.Tx, rec FeeRecord) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO fee_records (id, game_id, amount) VALUES ($1,$2,$3)`,
		rec.ID, rec.GameID, rec.Amount)
	return err
}

func (s *Store) ListFeeRecords(ctx context.Context, gameID string, limit, offset int) ([]FeeRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT id, game_id, amount, created_at FROM fee_records
		 WHERE ($1 = '' OR game_id = $1) ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		gameID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []FeeRecord{}
	for rows.Next() {
		var r FeeRecord
		if err := rows.Scan(&r.ID, &r.GameID, &r.Amount, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) SumFeeRecords(ctx context.Context, gameID string) (int64, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM fee_records WHERE ($1 = '' OR game_id = $1)`, gameID)
	var total int64
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
