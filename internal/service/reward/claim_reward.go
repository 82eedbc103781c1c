package reward

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// ClaimResult describes a successful payout.
type ClaimResult struct {
	Reward    int64
	Steps     int64
	ClaimedAt time.Time
}

// ClaimReward pays the caller for a step count recorded against one of their
// records. The cooldown re-check, the pool debit, the caller credit, and the
// aggregate update all commit together; a claim either pays in full or leaves
// no trace. The reward account row lock serializes concurrent claims by the
// same owner, so the 24h cooldown cannot be raced.
func (s *Service) ClaimReward(ctx context.Context, caller domain.Address, id domain.RecordID, steps int64) (*ClaimResult, error) {
	if err := caller.Validate(); err != nil {
		return nil, domain.NewValidationError("caller", err.Error())
	}

	var result *ClaimResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rec, err := s.records.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rec.Owner != caller {
			return fmt.Errorf("claim on %s by %s: %w", id, caller, domain.ErrNotOwner)
		}

		acc, err := s.rewards.GetForUpdate(ctx, caller)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		if !acc.CanClaimAt(now) {
			return fmt.Errorf("claim by %s before %s: %w", caller, acc.NextClaimAt().Format(time.RFC3339), domain.ErrCooldownActive)
		}

		reward := domain.RewardForSteps(steps)
		if reward == 0 {
			return fmt.Errorf("claim of %d steps: %w", steps, domain.ErrBelowThreshold)
		}

		ok, err := s.tokens.Debit(ctx, s.pool, reward)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("payout of %d: %w", reward, domain.ErrPoolExhausted)
		}

		if err := s.tokens.Credit(ctx, caller, reward); err != nil {
			return err
		}

		if err := s.rewards.ApplyClaim(ctx, caller, steps, reward, now); err != nil {
			return err
		}

		result = &ClaimResult{Reward: reward, Steps: steps, ClaimedAt: now}
		return s.events.Append(ctx, domain.Event{
			Kind:     domain.EventRewardClaimed,
			Actor:    caller,
			RecordID: &id,
			Payload: map[string]any{
				"steps":  steps,
				"reward": reward,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reward claimed",
		slog.String("owner", caller.String()),
		slog.Int64("steps", result.Steps),
		slog.Int64("reward", result.Reward),
	)

	return result, nil
}
