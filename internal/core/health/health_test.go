package health

import (
	"testing"
	"time"

	"github.com/example/senryaku/internal/models"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return now.AddDate(0, 0, -d)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		adherence float64
		staleness int
		want      models.HealthStatus
	}{
		// Four quadrants around 0.8/0.4 adherence and 3/7 staleness.
		{"high adherence, fresh", 0.9, 1, models.HealthGreen},
		{"high adherence, stale", 0.9, 10, models.HealthYellow},
		{"low adherence, fresh", 0.1, 1, models.HealthYellow},
		{"low adherence, stale", 0.1, 10, models.HealthRed},

		// Exact boundaries.
		{"adherence exactly 0.8, staleness exactly 3", 0.8, 3, models.HealthGreen},
		{"adherence exactly 0.8, staleness 4", 0.8, 4, models.HealthYellow},
		{"adherence just below 0.8, staleness 3", 0.79, 3, models.HealthYellow},
		{"adherence exactly 0.4, staleness 8", 0.4, 8, models.HealthYellow},
		{"adherence just below 0.4, staleness exactly 7", 0.39, 7, models.HealthYellow},
		{"adherence just below 0.4, staleness 8", 0.39, 8, models.HealthRed},

		// Middle band.
		{"mid adherence, mid staleness", 0.6, 5, models.HealthYellow},
		{"over target, stale", 1.5, 999, models.HealthYellow},
		{"zero adherence, never touched", 0.0, 999, models.HealthRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.adherence, tt.staleness)
			if got != tt.want {
				t.Errorf("Classify(%v, %d) = %q, want %q", tt.adherence, tt.staleness, got, tt.want)
			}
		})
	}
}

func TestVelocity(t *testing.T) {
	samples := []Sample{
		{ActualBlocks: 3, RecordedAt: daysAgo(1)},
		{ActualBlocks: 2, RecordedAt: daysAgo(6)},
		{ActualBlocks: 5, RecordedAt: daysAgo(8)}, // outside window
		{ActualBlocks: 4, RecordedAt: now.AddDate(0, 0, 1)}, // future, excluded
	}

	if got := Velocity(samples, now); got != 5 {
		t.Errorf("Velocity() = %d, want 5", got)
	}

	if got := Velocity(nil, now); got != 0 {
		t.Errorf("Velocity(nil) = %d, want 0", got)
	}
}

func TestStaleness(t *testing.T) {
	created := daysAgo(30)

	samples := []Sample{
		{ActualBlocks: 1, RecordedAt: daysAgo(12)},
		{ActualBlocks: 1, RecordedAt: daysAgo(4)},
	}
	if got := Staleness(samples, created, now); got != 4 {
		t.Errorf("Staleness() = %d, want 4", got)
	}

	// No samples ever: campaign age in days.
	if got := Staleness(nil, created, now); got != 30 {
		t.Errorf("Staleness(no samples) = %d, want 30", got)
	}

	// Never touched and very old: capped at the sentinel.
	ancient := now.AddDate(-5, 0, 0)
	if got := Staleness(nil, ancient, now); got != StalenessSentinel {
		t.Errorf("Staleness(ancient) = %d, want %d", got, StalenessSentinel)
	}
}

func TestAdherence(t *testing.T) {
	tests := []struct {
		name     string
		velocity int
		target   int
		want     float64
	}{
		{"half of target", 5, 10, 0.5},
		{"over target not capped", 15, 10, 1.5},
		{"zero target fully satisfied", 0, 0, 1.0},
		{"zero target with work", 4, 0, 1.0},
		{"zero velocity", 0, 8, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Adherence(tt.velocity, tt.target); got != tt.want {
				t.Errorf("Adherence(%d, %d) = %v, want %v", tt.velocity, tt.target, got, tt.want)
			}
		})
	}
}

func TestCompute(t *testing.T) {
	created := daysAgo(60)
	samples := []Sample{
		{ActualBlocks: 4, RecordedAt: daysAgo(2)},
		{ActualBlocks: 4, RecordedAt: daysAgo(3)},
	}

	m := Compute(10, samples, created, now)
	if m.Velocity != 8 {
		t.Errorf("Velocity = %d, want 8", m.Velocity)
	}
	if m.StalenessDays != 2 {
		t.Errorf("StalenessDays = %d, want 2", m.StalenessDays)
	}
	if m.AdherenceRatio != 0.8 {
		t.Errorf("AdherenceRatio = %v, want 0.8", m.AdherenceRatio)
	}
	if m.Health != models.HealthGreen {
		t.Errorf("Health = %q, want green", m.Health)
	}
}

func TestComputeZeroTargetNeverRed(t *testing.T) {
	// A zero-target campaign has adherence 1.0 by definition, so the red
	// rule (which also needs adherence < 0.4) can never fire regardless
	// of staleness.
	created := now.AddDate(-3, 0, 0)

	m := Compute(0, nil, created, now)
	if m.AdherenceRatio != 1.0 {
		t.Errorf("AdherenceRatio = %v, want 1.0", m.AdherenceRatio)
	}
	if m.Health == models.HealthRed {
		t.Error("zero-target campaign classified red")
	}
	if m.Health != models.HealthYellow {
		t.Errorf("Health = %q, want yellow (stale but satisfied)", m.Health)
	}
}
