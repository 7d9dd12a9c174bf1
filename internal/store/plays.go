package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type PlayFilter struct {
	AccountID string
	GameID    string
}

func (s *Store) InsertPlayRecord(ctx context.Context, tx pgx.Tx, rec PlayRecord) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO play_records (id, account_id, game_id, cost, fee, stake, outcome_index, multiplier, award)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rec.ID, rec.AccountID, rec.GameID, rec.Cost, rec.Fee, rec.Stake, rec.OutcomeIndex, rec.Multiplier, rec.Award)
	return err
}

func (s *Store) GetPlayRecord(ctx context.Context, id string) (*PlayRecord, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT id, account_id, game_id, cost, fee, stake, outcome_index, multiplier, award, created_at
		 FROM play_records WHERE id = $1`, id)
	var r PlayRecord
	if err := row.Scan(&r.ID, &r.AccountID, &r.GameID, &r.Cost, &r.Fee, &r.Stake, &r.OutcomeIndex, &r.Multiplier, &r.Award, &r.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &r, nil
}

func (s *Store) ListPlayRecords(ctx context.Context, f PlayFilter, limit, offset int) ([]PlayRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	where := "WHERE 1=1"
	args := []any{}
	if f.AccountID != "" {
		args = append(args, f.AccountID)
		where += fmt.Sprintf(" AND account_id = $%d", len(args))
	}
	if f.GameID != "" {
		args = append(args, f.GameID)
		where += fmt.Sprintf(" AND game_id = $%d", len(args))
	}
	args = append(args, limit, offset)
	q := `SELECT id, account_id, game_id, cost, fee, stake, outcome_index, multiplier, award, created_at FROM play_records ` +
		where + fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := s.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []PlayRecord{}
	for rows.Next() {
		var r PlayRecord
		if err := rows.Scan(&r.ID, &r.AccountID, &r.GameID, &r.Cost, &r.Fee, &r.Stake, &r.OutcomeIndex, &r.Multiplier, &r.Award, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SumPlayFees totals the fee column of play records, the reconciliation
// counterpart of SumFeeRecords. Empty gameID sums across all games.
func (s *Store) SumPlayFees(ctx context.Context, gameID string) (int64, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(fee), 0) FROM play_records WHERE ($1 = '' OR game_id = $1)`, gameID)
	var total int64
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
