// Package urgency contains the pure scoring logic that ranks campaigns
// for allocation priority. Part of the Functional Core - no I/O.
package urgency

// StalenessWeight converts staleness days into urgency points.
const StalenessWeight = 0.5

// PriorityWeight derives a multiplier from a campaign's priority rank.
// Rank is 1-indexed; rank 1 (highest priority) yields the largest weight
// and the weight strictly decreases as the rank number grows. The exact
// curve is a tunable, not a contract - callers should treat it as opaque.
func PriorityWeight(rank int) float64 {
	if rank < 1 {
		rank = 1
	}
	return 1.0 / float64(rank)
}

// Score computes a campaign's urgency from its weekly deficit and
// staleness. The deficit term is signed: a campaign ahead of target
// contributes negatively but can still outrank others on staleness.
func Score(weeklyTarget, velocity, stalenessDays, priorityRank int) float64 {
	deficit := float64(weeklyTarget - velocity)
	return deficit*PriorityWeight(priorityRank) + float64(stalenessDays)*StalenessWeight
}
