package ledger

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"snapstakes/internal/store"
	"snapstakes/internal/wager"
)

func safeView(g *store.GameConfig) *SafeGameConfig {
	return &SafeGameConfig{
		GameID:            g.ID,
		Cost:              g.Cost,
		PayoutMultipliers: g.Multipliers,
		Enabled:           g.Enabled,
	}
}

// GetGameConfig returns the public projection of a game. The odds and fee
// percent never leave the house.
func (s *Service) GetGameConfig(ctx context.Context, gameID string) (*SafeGameConfig, error) {
	g, err := s.store.GetGameConfig(ctx, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return safeView(g), nil
}

func (s *Service) ListGames(ctx context.Context) ([]SafeGameConfig, error) {
	items, err := s.store.ListGameConfigs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SafeGameConfig, 0, len(items))
	for i := range items {
		out = append(out, *safeView(&items[i]))
	}
	return out, nil
}

// UpdateGameConfig applies a partial patch; unspecified fields keep their
// prior value. A patch that would leave odds and multipliers misaligned is
// rejected here, at update time, so plays never see an inconsistent table.
func (s *Service) UpdateGameConfig(ctx context.Context, gameID string, patch GamePatch) (*store.GameConfig, error) {
	var updated *store.GameConfig
	err := s.tx(ctx, func(tx pgx.Tx) error {
		g, err := s.store.GetGameConfigForUpdate(ctx, tx, gameID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if patch.Enabled != nil {
			g.Enabled = *patch.Enabled
		}
		if patch.Cost != nil {
			g.Cost = *patch.Cost
		}
		if patch.FeePercent != nil {
			g.FeePercent = *patch.FeePercent
		}
		if patch.Odds != nil {
			g.Odds = patch.Odds
		}
		if patch.Multipliers != nil {
			g.Multipliers = patch.Multipliers
		}
		if err := validateGameNumbers(g.Cost, g.FeePercent); err != nil {
			return err
		}
		if err := wager.ValidateConfig(g.Odds, g.Multipliers); err != nil {
			return ErrConfigInconsistent
		}
		if err := s.store.UpdateGameConfigTx(ctx, tx, *g); err != nil {
			return err
		}
		updated = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) CreateGameConfig(ctx context.Context, g store.GameConfig) (*store.GameConfig, error) {
	if g.ID == "" {
		return nil, ErrInvalidRequest
	}
	if err := validateGameNumbers(g.Cost, g.FeePercent); err != nil {
		return nil, err
	}
	if err := wager.ValidateConfig(g.Odds, g.Multipliers); err != nil {
		return nil, ErrConfigInconsistent
	}
	if err := s.store.InsertGameConfig(ctx, g); err != nil {
		return nil, err
	}
	created, err := s.store.GetGameConfig(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func validateGameNumbers(cost, feePercent int64) error {
	if cost < 0 || feePercent < 0 || feePercent > 100 {
		return ErrInvalidAmount
	}
	return nil
}
