// Package sortie contains the pure business logic for sortie lifecycle
// transitions. This is part of the Functional Core - no I/O, only pure
// functions. Legal transitions: queued -> active -> {completed, abandoned}.
package sortie

import (
	"fmt"
	"time"

	"github.com/example/senryaku/internal/models"
)

// GuardResult represents the outcome of a transition guard.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanStart evaluates whether a sortie can move to active.
// Rule: only queued sorties can be started.
func CanStart(id string, status models.SortieStatus) GuardResult {
	if status != models.SortieStatusQueued {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot start sortie %s with status %q - only queued sorties can be started", id, status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanComplete evaluates whether a sortie can be closed out with an AAR.
// Rule: only active sorties complete; completing twice would double-write
// the AAR.
func CanComplete(id string, status models.SortieStatus) GuardResult {
	if status != models.SortieStatusActive {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot complete sortie %s with status %q - only active sorties can be completed", id, status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAbandon evaluates whether a sortie can be abandoned.
// Rule: terminal sorties stay terminal.
func CanAbandon(id string, status models.SortieStatus) GuardResult {
	if status == models.SortieStatusCompleted || status == models.SortieStatusAbandoned {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot abandon sortie %s with status %q - it is already terminal", id, status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanEdit evaluates whether a sortie's fields can still change.
// Rule: terminal sorties are immutable history.
func CanEdit(id string, status models.SortieStatus) GuardResult {
	if status == models.SortieStatusCompleted || status == models.SortieStatusAbandoned {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot edit sortie %s with status %q - it is already terminal", id, status),
		}
	}
	return GuardResult{Allowed: true}
}

// CompletionResult captures the status and timestamp side effects of
// closing out a sortie with a given outcome.
type CompletionResult struct {
	NewStatus   models.SortieStatus
	CompletedAt time.Time
}

// ApplyCompletion resolves the terminal status for an outcome. A completed
// outcome closes the sortie as completed; partial, blocked, and pivoted
// work still happened, but the sortie did not land, so it is abandoned
// back to the planning table. The caller passes now for testability.
func ApplyCompletion(outcome models.AAROutcome, now time.Time) CompletionResult {
	status := models.SortieStatusAbandoned
	if outcome == models.OutcomeCompleted {
		status = models.SortieStatusCompleted
	}
	return CompletionResult{NewStatus: status, CompletedAt: now}
}

// InitialStatus returns the status for a newly created sortie.
func InitialStatus() models.SortieStatus {
	return models.SortieStatusQueued
}
