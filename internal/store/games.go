package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const gameConfigColumns = `id, enabled, cost, fee_percent, odds, multipliers, updated_at`

func scanGameConfig(row pgx.Row) (*GameConfig, error) {
	var g GameConfig
	if err := row.Scan(&g.ID, &g.Enabled, &g.Cost, &g.FeePercent, &g.Odds, &g.Multipliers, &g.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &g, nil
}

func (s *Store) GetGameConfig(ctx context.Context, id string) (*GameConfig, error) {
	return scanGameConfig(s.Pool.QueryRow(ctx,
		`SELECT `+gameConfigColumns+` FROM game_configs WHERE id = $1`, id))
}

// GetGameConfigTx reads the config inside the play transaction so the
// outcome is computed against the same snapshot that gets charged.
func (s *Store) GetGameConfigTx(ctx context.Context, tx pgx.Tx, id string) (*GameConfig, error) {
	return scanGameConfig(tx.QueryRow(ctx,
		`SELECT `+gameConfigColumns+` FROM game_configs WHERE id = $1`, id))
}

func (s *Store) GetGameConfigForUpdate(ctx context.Context, tx pgx.Tx, id string) (*GameConfig, error) {
	return scanGameConfig(tx.QueryRow(ctx,
		`SELECT `+gameConfigColumns+` FROM game_configs WHERE id = $1 FOR UPDATE`, id))
}

func (s *Store) ListGameConfigs(ctx context.Context) ([]GameConfig, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT `+gameConfigColumns+` FROM game_configs ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []GameConfig{}
	for rows.Next() {
		var g GameConfig
		if err := rows.Scan(&g.ID, &g.Enabled, &g.Cost, &g.FeePercent, &g.Odds, &g.Multipliers, &g.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Store) InsertGameConfig(ctx context.Context, g GameConfig) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO game_configs (id, enabled, cost, fee_percent, odds, multipliers) VALUES ($1,$2,$3,$4,$5,$6)`,
		g.ID, g.Enabled, g.Cost, g.FeePercent, g.Odds, g.Multipliers)
	return err
}

func (s *Store) UpdateGameConfigTx(ctx context.Context, tx pgx.Tx, g GameConfig) error {
	_, err := tx.Exec(ctx,
		`UPDATE game_configs SET enabled = $1, cost = $2, fee_percent = $3, odds = $4, multipliers = $5, updated_at = now() WHERE id = $6`,
		g.Enabled, g.Cost, g.FeePercent, g.Odds, g.Multipliers, g.ID)
	return err
}

func (s *Store) CountGameConfigs(ctx context.Context) (int, error) {
	row := s.Pool.QueryRow(ctx, `SELECT COUNT(1) FROM game_configs`)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (s *Store) EnsureDefaultGames(ctx context.Context) error {
	c, err := s.CountGameConfigs(ctx)
	if err != nil {
		return err
	}
	if c > 0 {
		return nil
	}
	defaults := []GameConfig{
		{ID: "coinflip", Enabled: true, Cost: 50, FeePercent: 5, Odds: []float64{0.5}, Multipliers: []float64{2}},
		{ID: "wheel", Enabled: true, Cost: 100, FeePercent: 10, Odds: []float64{0.1, 0.2, 0.7}, Multipliers: []float64{5, 2, 0}},
		{ID: "jackpot", Enabled: true, Cost: 200, FeePercent: 10, Odds: []float64{0.01, 0.09}, Multipliers: []float64{50, 3}},
	}
	for _, g := range defaults {
		if err := s.InsertGameConfig(ctx, g); err != nil {
			return err
		}
	}
	return nil
}
