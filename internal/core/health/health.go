// Package health contains the pure business logic for campaign health.
// This is part of the Functional Core - no I/O, only pure functions.
// All inputs are pre-fetched by the caller, including the current time.
package health

import (
	"time"

	"github.com/example/senryaku/internal/models"
)

// StalenessSentinel caps staleness for campaigns that have never been
// worked on, so urgency scores stay bounded.
const StalenessSentinel = 999

// VelocityWindowDays is the trailing window over which velocity is summed.
const VelocityWindowDays = 7

// Classification thresholds. Green requires BOTH high adherence and low
// staleness; red requires BOTH low adherence and high staleness. Everything
// else is yellow - a stale but high-adherence campaign stays yellow.
const (
	greenAdherence = 0.8
	greenStaleness = 3
	redAdherence   = 0.4
	redStaleness   = 7
)

// Sample is one after-action report's contribution to a campaign:
// the blocks actually invested and when the work was recorded.
type Sample struct {
	ActualBlocks int
	RecordedAt   time.Time
}

// Metrics is the health result for a single campaign.
type Metrics struct {
	Health         models.HealthStatus
	Velocity       int
	StalenessDays  int
	AdherenceRatio float64
}

// Velocity sums actual blocks from samples recorded within the trailing
// 7 days ending at now. Zero if none.
func Velocity(samples []Sample, now time.Time) int {
	cutoff := now.AddDate(0, 0, -VelocityWindowDays)
	total := 0
	for _, s := range samples {
		if s.RecordedAt.After(cutoff) && !s.RecordedAt.After(now) {
			total += s.ActualBlocks
		}
	}
	return total
}

// Staleness returns whole days since the most recent sample. A campaign
// with no samples at all uses its own age in days, capped at the sentinel.
func Staleness(samples []Sample, campaignCreated, now time.Time) int {
	var latest time.Time
	for _, s := range samples {
		if s.RecordedAt.After(latest) {
			latest = s.RecordedAt
		}
	}
	if latest.IsZero() {
		return capStaleness(daysBetween(campaignCreated, now))
	}
	return capStaleness(daysBetween(latest, now))
}

// Adherence returns velocity / weekly target. A zero-target campaign is
// defined as fully satisfied (1.0) - it cannot be behind.
func Adherence(velocity, weeklyTarget int) float64 {
	if weeklyTarget == 0 {
		return 1.0
	}
	return float64(velocity) / float64(weeklyTarget)
}

// Classify applies the traffic-light rule table, first match wins.
func Classify(adherence float64, stalenessDays int) models.HealthStatus {
	if adherence >= greenAdherence && stalenessDays <= greenStaleness {
		return models.HealthGreen
	}
	if adherence < redAdherence && stalenessDays > redStaleness {
		return models.HealthRed
	}
	return models.HealthYellow
}

// Compute derives the full health metrics for one campaign from its
// after-action samples.
func Compute(weeklyTarget int, samples []Sample, campaignCreated, now time.Time) Metrics {
	velocity := Velocity(samples, now)
	staleness := Staleness(samples, campaignCreated, now)
	adherence := Adherence(velocity, weeklyTarget)
	return Metrics{
		Health:         Classify(adherence, staleness),
		Velocity:       velocity,
		StalenessDays:  staleness,
		AdherenceRatio: adherence,
	}
}

func daysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

func capStaleness(days int) int {
	if days > StalenessSentinel {
		return StalenessSentinel
	}
	return days
}
