package domain

import "time"

// ClaimCooldown is the minimum interval between successive reward payouts to
// the same account. Enforced per account, not per record, so many low-value
// records cannot be farmed in rapid succession.
const ClaimCooldown = 24 * time.Hour

// Reward formula constants: 10 token units per full 1000 steps, rewarded only
// from 3000 steps, capped at 20000 steps (200 units).
const (
	RewardStepThreshold = 3000
	RewardStepCap       = 20000
	RewardUnitsPerBand  = 10
	RewardBandSteps     = 1000
)

// RewardForSteps computes the payout for a step count. The result is a
// monotonic step function: 0 below the threshold, then
// floor(min(steps, cap)/1000) * 10.
func RewardForSteps(steps int64) int64 {
	if steps < RewardStepThreshold {
		return 0
	}
	if steps > RewardStepCap {
		steps = RewardStepCap
	}
	return steps / RewardBandSteps * RewardUnitsPerBand
}

// RewardAccount is the per-owner claim aggregate, updated only by successful
// claims.
type RewardAccount struct {
	Owner             Address
	TotalStepsClaimed int64
	TotalRewardsPaid  int64
	LastClaimTime     *time.Time
	ClaimCount        int64
}

// NextClaimAt returns the earliest instant the owner may claim again.
// Zero time if the owner has never claimed.
func (a RewardAccount) NextClaimAt() time.Time {
	if a.LastClaimTime == nil {
		return time.Time{}
	}
	return a.LastClaimTime.Add(ClaimCooldown)
}

// CanClaimAt reports whether a claim at the given instant would pass the
// cooldown gate.
func (a RewardAccount) CanClaimAt(now time.Time) bool {
	return a.LastClaimTime == nil || !now.Before(a.NextClaimAt())
}
