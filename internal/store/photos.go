package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func (s *Store) InsertPhoto(ctx context.Context, p Photo) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO photos (id, title, votes) VALUES ($1,$2,$3)`, p.ID, p.Title, p.Votes)
	return err
}

func (s *Store) GetPhoto(ctx context.Context, id string) (*Photo, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT id, title, votes, created_at FROM photos WHERE id = $1`, id)
	var p Photo
	if err := row.Scan(&p.ID, &p.Title, &p.Votes, &p.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

func (s *Store) LockPhoto(ctx context.Context, tx pgx.Tx, id string) (*Photo, error) {
	row := tx.QueryRow(ctx,
		`SELECT id, title, votes, created_at FROM photos WHERE id = $1 FOR UPDATE`, id)
	var p Photo
	if err := row.Scan(&p.ID, &p.Title, &p.Votes, &p.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

// AddPhotoVotes bumps the tally and returns the new value.
func (s *Store) AddPhotoVotes(ctx context.Context, tx pgx.Tx, id string, count int64) (int64, error) {
	row := tx.QueryRow(ctx,
		`UPDATE photos SET votes = votes + $1 WHERE id = $2 RETURNING votes`, count, id)
	var votes int64
	if err := row.Scan(&votes); err != nil {
		return 0, mapNotFound(err)
	}
	return votes, nil
}

func (s *Store) InsertVoteRecord(ctx context.Context, tx pgx.Tx, rec VoteRecord) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO vote_records (id, account_id, photo_id, count, unit_cost, total_cost)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		rec.ID, rec.AccountID, rec.PhotoID, rec.Count, rec.UnitCost, rec.TotalCost)
	return err
}

func (s *Store) ListVoteRecords(ctx context.Context, accountID string, limit, offset int) ([]VoteRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT id, account_id, photo_id, count, unit_cost, total_cost, created_at FROM vote_records
		 WHERE ($1 = '' OR account_id = $1) ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []VoteRecord{}
	for rows.Next() {
		var r VoteRecord
		if err := rows.Scan(&r.ID, &r.AccountID, &r.PhotoID, &r.Count, &r.UnitCost, &r.TotalCost, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
