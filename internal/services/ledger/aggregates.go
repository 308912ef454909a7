package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/stats"
)

// ReconcileResult summarizes a reconciliation pass
type ReconcileResult struct {
	Checked int
	Updated int
	Failed  int
}

// ReconcileAggregates recomputes every player's cached wins and streaks from
// the game list and saves the ones that changed. A failure for one player is
// logged and the pass continues; the failures are returned joined.
func (s *Service) ReconcileAggregates(ctx context.Context) (ReconcileResult, error) {
	var result ReconcileResult

	players, games, err := s.snapshot(ctx)
	if err != nil {
		return result, fmt.Errorf("load snapshot: %w", err)
	}

	var errs []error
	for _, p := range players {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Checked++

		agg := stats.Aggregates(p.ID, games)
		if agg == p.Aggregates {
			continue
		}

		if err := s.storage.SavePlayerAggregates(ctx, p.ID, agg); err != nil {
			result.Failed++
			s.logger.Error("failed to save aggregates",
				slog.String("player_id", string(p.ID)),
				slog.Any("error", err))
			errs = append(errs, fmt.Errorf("player %s: %w", p.ID, err))
			continue
		}

		result.Updated++
		s.logger.Info("aggregates updated",
			slog.String("player_id", string(p.ID)),
			slog.Int("wins", agg.Wins),
			slog.Int("current_streak", agg.CurrentStreak),
			slog.Int("max_streak", agg.MaxStreak))
		s.publish(ctx, model.Event{
			Type:     model.EventAggregatesUpdated,
			PlayerID: p.ID,
			Payload:  model.AggregatesUpdatedPayload{Aggregates: agg},
		})
	}

	return result, errors.Join(errs...)
}

// refreshAggregates runs a reconciliation after a game change. The change is
// already persisted, so failures are only logged and the scheduler catches up.
func (s *Service) refreshAggregates(ctx context.Context) {
	if _, err := s.ReconcileAggregates(ctx); err != nil {
		s.logger.Error("aggregate refresh incomplete", slog.Any("error", err))
	}
}
