// Package models contains the domain types for senryaku entities.
// Enum fields are closed string types: stored values are parsed through
// the Parse* functions at the record-store boundary, and an unknown tag
// is a data-integrity error, never silently coerced.
package models

import "fmt"

// CampaignStatus represents the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusArchived  CampaignStatus = "archived"
)

// ParseCampaignStatus validates a stored campaign status value.
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	switch CampaignStatus(s) {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusArchived:
		return CampaignStatus(s), nil
	}
	return "", fmt.Errorf("unknown campaign status %q", s)
}

// MissionStatus represents the lifecycle state of a mission.
type MissionStatus string

const (
	MissionStatusNotStarted MissionStatus = "not_started"
	MissionStatusInProgress MissionStatus = "in_progress"
	MissionStatusBlocked    MissionStatus = "blocked"
	MissionStatusCompleted  MissionStatus = "completed"
)

// ParseMissionStatus validates a stored mission status value.
func ParseMissionStatus(s string) (MissionStatus, error) {
	switch MissionStatus(s) {
	case MissionStatusNotStarted, MissionStatusInProgress, MissionStatusBlocked, MissionStatusCompleted:
		return MissionStatus(s), nil
	}
	return "", fmt.Errorf("unknown mission status %q", s)
}

// SortieStatus represents the lifecycle state of a sortie.
// Transitions: queued -> active -> {completed, abandoned}.
type SortieStatus string

const (
	SortieStatusQueued    SortieStatus = "queued"
	SortieStatusActive    SortieStatus = "active"
	SortieStatusCompleted SortieStatus = "completed"
	SortieStatusAbandoned SortieStatus = "abandoned"
)

// ParseSortieStatus validates a stored sortie status value.
func ParseSortieStatus(s string) (SortieStatus, error) {
	switch SortieStatus(s) {
	case SortieStatusQueued, SortieStatusActive, SortieStatusCompleted, SortieStatusAbandoned:
		return SortieStatus(s), nil
	}
	return "", fmt.Errorf("unknown sortie status %q", s)
}

// CognitiveLoad is the energy a sortie demands, ordered deep > medium > light.
type CognitiveLoad string

const (
	LoadDeep   CognitiveLoad = "deep"
	LoadMedium CognitiveLoad = "medium"
	LoadLight  CognitiveLoad = "light"
)

// ParseCognitiveLoad validates a stored cognitive load value.
func ParseCognitiveLoad(s string) (CognitiveLoad, error) {
	switch CognitiveLoad(s) {
	case LoadDeep, LoadMedium, LoadLight:
		return CognitiveLoad(s), nil
	}
	return "", fmt.Errorf("unknown cognitive load %q", s)
}

// EnergyLevel is the day's available cognitive capacity.
type EnergyLevel string

const (
	EnergyGreen  EnergyLevel = "green"
	EnergyYellow EnergyLevel = "yellow"
	EnergyRed    EnergyLevel = "red"
)

// ParseEnergyLevel validates a stored energy level value.
func ParseEnergyLevel(s string) (EnergyLevel, error) {
	switch EnergyLevel(s) {
	case EnergyGreen, EnergyYellow, EnergyRed:
		return EnergyLevel(s), nil
	}
	return "", fmt.Errorf("unknown energy level %q", s)
}

// AAROutcome records how a sortie actually ended.
type AAROutcome string

const (
	OutcomeCompleted AAROutcome = "completed"
	OutcomePartial   AAROutcome = "partial"
	OutcomeBlocked   AAROutcome = "blocked"
	OutcomePivoted   AAROutcome = "pivoted"
)

// ParseAAROutcome validates a stored AAR outcome value.
func ParseAAROutcome(s string) (AAROutcome, error) {
	switch AAROutcome(s) {
	case OutcomeCompleted, OutcomePartial, OutcomeBlocked, OutcomePivoted:
		return AAROutcome(s), nil
	}
	return "", fmt.Errorf("unknown AAR outcome %q", s)
}

// HealthStatus is the traffic-light classification of a campaign.
type HealthStatus string

const (
	HealthGreen  HealthStatus = "green"
	HealthYellow HealthStatus = "yellow"
	HealthRed    HealthStatus = "red"
)
