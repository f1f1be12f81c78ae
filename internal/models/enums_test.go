package models

import "testing"

func TestParseCampaignStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    CampaignStatus
		wantErr bool
	}{
		{"active", CampaignStatusActive, false},
		{"paused", CampaignStatusPaused, false},
		{"completed", CampaignStatusCompleted, false},
		{"archived", CampaignStatusArchived, false},
		{"done", "", true},
		{"", "", true},
		{"Active", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCampaignStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCampaignStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCampaignStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSortieStatus(t *testing.T) {
	for _, valid := range []string{"queued", "active", "completed", "abandoned"} {
		if _, err := ParseSortieStatus(valid); err != nil {
			t.Errorf("ParseSortieStatus(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseSortieStatus("in_flight"); err == nil {
		t.Error("ParseSortieStatus(\"in_flight\") = nil error, want data-integrity error")
	}
}

func TestParseCognitiveLoad(t *testing.T) {
	for _, valid := range []string{"deep", "medium", "light"} {
		if _, err := ParseCognitiveLoad(valid); err != nil {
			t.Errorf("ParseCognitiveLoad(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseCognitiveLoad("heavy"); err == nil {
		t.Error("ParseCognitiveLoad(\"heavy\") = nil error, want data-integrity error")
	}
}

func TestParseEnergyLevel(t *testing.T) {
	for _, valid := range []string{"green", "yellow", "red"} {
		if _, err := ParseEnergyLevel(valid); err != nil {
			t.Errorf("ParseEnergyLevel(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseEnergyLevel("amber"); err == nil {
		t.Error("ParseEnergyLevel(\"amber\") = nil error, want data-integrity error")
	}
}

func TestParseAAROutcome(t *testing.T) {
	for _, valid := range []string{"completed", "partial", "blocked", "pivoted"} {
		if _, err := ParseAAROutcome(valid); err != nil {
			t.Errorf("ParseAAROutcome(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseAAROutcome("skipped"); err == nil {
		t.Error("ParseAAROutcome(\"skipped\") = nil error, want data-integrity error")
	}
}

func TestParseMissionStatus(t *testing.T) {
	for _, valid := range []string{"not_started", "in_progress", "blocked", "completed"} {
		if _, err := ParseMissionStatus(valid); err != nil {
			t.Errorf("ParseMissionStatus(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseMissionStatus("paused"); err == nil {
		t.Error("ParseMissionStatus(\"paused\") = nil error, want data-integrity error")
	}
}
