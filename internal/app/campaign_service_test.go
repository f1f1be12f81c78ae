package app

import (
	"context"
	"testing"
	"time"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/ports/secondary"
)

func campaignFixture() (*CampaignServiceImpl, *mockCampaignRepository) {
	repo := newMockCampaignRepository()
	repo.campaigns["CAMP-001"] = &secondary.CampaignRecord{
		ID: "CAMP-001", Name: "Deep Work",
		Status: models.CampaignStatusActive, PriorityRank: 1, WeeklyBlockTarget: 10,
	}
	repo.campaigns["CAMP-002"] = &secondary.CampaignRecord{
		ID: "CAMP-002", Name: "Admin",
		Status: models.CampaignStatusActive, PriorityRank: 2, WeeklyBlockTarget: 5,
	}
	repo.campaigns["CAMP-003"] = &secondary.CampaignRecord{
		ID: "CAMP-003", Name: "Old Project",
		Status: models.CampaignStatusArchived, PriorityRank: 3,
	}
	service := NewCampaignService(repo)
	service.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	return service, repo
}

func TestCreateCampaignRanksBelowActive(t *testing.T) {
	service, _ := campaignFixture()

	campaign, err := service.CreateCampaign(context.Background(), primary.CreateCampaignRequest{
		Name:              "Side Quest",
		WeeklyBlockTarget: 3,
		Colour:            "green",
	})
	if err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}

	if campaign.PriorityRank != 3 {
		t.Errorf("Expected rank 3 (below 2 active campaigns), got %d", campaign.PriorityRank)
	}
	if campaign.Status != models.CampaignStatusActive {
		t.Errorf("Expected active status, got %s", campaign.Status)
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	service, _ := campaignFixture()

	if _, err := service.CreateCampaign(context.Background(), primary.CreateCampaignRequest{}); err == nil {
		t.Error("Expected error for empty name, got nil")
	}
	if _, err := service.CreateCampaign(context.Background(), primary.CreateCampaignRequest{
		Name: "x", WeeklyBlockTarget: -1,
	}); err == nil {
		t.Error("Expected error for negative target, got nil")
	}
}

func TestListCampaignsFiltersByStatus(t *testing.T) {
	service, _ := campaignFixture()

	active, err := service.ListCampaigns(context.Background(), primary.CampaignFilters{
		Status: models.CampaignStatusActive,
	})
	if err != nil {
		t.Fatalf("ListCampaigns failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("Expected 2 active campaigns, got %d", len(active))
	}
	if active[0].ID != "CAMP-001" || active[1].ID != "CAMP-002" {
		t.Errorf("Expected priority-rank order CAMP-001, CAMP-002, got %s, %s", active[0].ID, active[1].ID)
	}
}

func TestRerankCampaigns(t *testing.T) {
	service, repo := campaignFixture()

	if err := service.RerankCampaigns(context.Background(), []string{"CAMP-002", "CAMP-001"}); err != nil {
		t.Fatalf("RerankCampaigns failed: %v", err)
	}
	if repo.campaigns["CAMP-002"].PriorityRank != 1 {
		t.Errorf("Expected CAMP-002 at rank 1, got %d", repo.campaigns["CAMP-002"].PriorityRank)
	}
	if repo.campaigns["CAMP-001"].PriorityRank != 2 {
		t.Errorf("Expected CAMP-001 at rank 2, got %d", repo.campaigns["CAMP-001"].PriorityRank)
	}
}

func TestRerankCampaignsValidation(t *testing.T) {
	service, _ := campaignFixture()

	tests := []struct {
		name string
		ids  []string
	}{
		{"missing campaign", []string{"CAMP-001"}},
		{"inactive campaign", []string{"CAMP-001", "CAMP-003"}},
		{"duplicate campaign", []string{"CAMP-001", "CAMP-001"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := service.RerankCampaigns(context.Background(), tt.ids); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestUpdateCampaignPartialEdit(t *testing.T) {
	service, repo := campaignFixture()

	campaign, err := service.UpdateCampaign(context.Background(), primary.UpdateCampaignRequest{
		CampaignID:        "CAMP-001",
		Name:              "Deep Work Novel",
		WeeklyBlockTarget: -1,
	})
	if err != nil {
		t.Fatalf("UpdateCampaign failed: %v", err)
	}

	if campaign.Name != "Deep Work Novel" {
		t.Errorf("Expected updated name, got %q", campaign.Name)
	}
	if repo.campaigns["CAMP-001"].WeeklyBlockTarget != 10 {
		t.Errorf("Expected target untouched at 10, got %d", repo.campaigns["CAMP-001"].WeeklyBlockTarget)
	}

	if _, err := service.UpdateCampaign(context.Background(), primary.UpdateCampaignRequest{
		CampaignID: "CAMP-999",
	}); err == nil {
		t.Error("Expected error for unknown campaign, got nil")
	}
}

func TestUpdateCampaignStatus(t *testing.T) {
	service, repo := campaignFixture()

	if err := service.UpdateCampaignStatus(context.Background(), "CAMP-002", models.CampaignStatusPaused); err != nil {
		t.Fatalf("UpdateCampaignStatus failed: %v", err)
	}
	if repo.campaigns["CAMP-002"].Status != models.CampaignStatusPaused {
		t.Errorf("Expected paused status, got %s", repo.campaigns["CAMP-002"].Status)
	}

	if err := service.UpdateCampaignStatus(context.Background(), "CAMP-999", models.CampaignStatusPaused); err == nil {
		t.Error("Expected error for unknown campaign, got nil")
	}
}
