package sortie

import (
	"testing"
	"time"

	"github.com/example/senryaku/internal/models"
)

func TestCanStart(t *testing.T) {
	tests := []struct {
		status      models.SortieStatus
		wantAllowed bool
	}{
		{models.SortieStatusQueued, true},
		{models.SortieStatusActive, false},
		{models.SortieStatusCompleted, false},
		{models.SortieStatusAbandoned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			result := CanStart("SRT-001", tt.status)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanStart(%s) Allowed = %v, want %v", tt.status, result.Allowed, tt.wantAllowed)
			}
			err := result.Error()
			if tt.wantAllowed && err != nil {
				t.Errorf("Error() = %v, want nil", err)
			}
			if !tt.wantAllowed && err == nil {
				t.Error("Error() = nil, want error")
			}
		})
	}
}

func TestCanComplete(t *testing.T) {
	tests := []struct {
		status      models.SortieStatus
		wantAllowed bool
	}{
		{models.SortieStatusActive, true},
		{models.SortieStatusQueued, false},
		{models.SortieStatusCompleted, false},
		{models.SortieStatusAbandoned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			result := CanComplete("SRT-001", tt.status)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanComplete(%s) Allowed = %v, want %v", tt.status, result.Allowed, tt.wantAllowed)
			}
		})
	}
}

func TestCanAbandon(t *testing.T) {
	tests := []struct {
		status      models.SortieStatus
		wantAllowed bool
	}{
		{models.SortieStatusQueued, true},
		{models.SortieStatusActive, true},
		{models.SortieStatusCompleted, false},
		{models.SortieStatusAbandoned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			result := CanAbandon("SRT-001", tt.status)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanAbandon(%s) Allowed = %v, want %v", tt.status, result.Allowed, tt.wantAllowed)
			}
		})
	}
}

func TestCanEdit(t *testing.T) {
	tests := []struct {
		status      models.SortieStatus
		wantAllowed bool
	}{
		{models.SortieStatusQueued, true},
		{models.SortieStatusActive, true},
		{models.SortieStatusCompleted, false},
		{models.SortieStatusAbandoned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			result := CanEdit("SRT-001", tt.status)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanEdit(%s) Allowed = %v, want %v", tt.status, result.Allowed, tt.wantAllowed)
			}
		})
	}
}

func TestApplyCompletion(t *testing.T) {
	now := time.Date(2026, 3, 15, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		outcome    models.AAROutcome
		wantStatus models.SortieStatus
	}{
		{models.OutcomeCompleted, models.SortieStatusCompleted},
		{models.OutcomePartial, models.SortieStatusAbandoned},
		{models.OutcomeBlocked, models.SortieStatusAbandoned},
		{models.OutcomePivoted, models.SortieStatusAbandoned},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			result := ApplyCompletion(tt.outcome, now)
			if result.NewStatus != tt.wantStatus {
				t.Errorf("ApplyCompletion(%s) status = %s, want %s", tt.outcome, result.NewStatus, tt.wantStatus)
			}
			if !result.CompletedAt.Equal(now) {
				t.Errorf("CompletedAt = %v, want %v", result.CompletedAt, now)
			}
		})
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != models.SortieStatusQueued {
		t.Errorf("InitialStatus() = %s, want queued", got)
	}
}
