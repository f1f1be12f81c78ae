package app

import (
	"context"
	"testing"
	"time"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/ports/secondary"
)

// briefingFixture wires two active campaigns with queued work. CAMP-001
// (rank 1, target 10) has a 2-block deep sortie, CAMP-002 (rank 2,
// target 5) has a 1-block light sortie. Neither has any recorded blocks,
// so CAMP-001 carries the larger urgency.
func briefingFixture(now time.Time) (*BriefingServiceImpl, *mockSortieRepository) {
	created := now.AddDate(0, 0, -10)

	campaignRepo := newMockCampaignRepository()
	campaignRepo.campaigns["CAMP-001"] = &secondary.CampaignRecord{
		ID: "CAMP-001", Name: "Deep Work", Colour: "blue",
		Status: models.CampaignStatusActive, PriorityRank: 1,
		WeeklyBlockTarget: 10, CreatedAt: created,
	}
	campaignRepo.campaigns["CAMP-002"] = &secondary.CampaignRecord{
		ID: "CAMP-002", Name: "Admin", Colour: "grey",
		Status: models.CampaignStatusActive, PriorityRank: 2,
		WeeklyBlockTarget: 5, CreatedAt: created,
	}

	missionRepo := newMockMissionRepository()
	missionRepo.missions["MSN-001"] = &secondary.MissionRecord{
		ID: "MSN-001", CampaignID: "CAMP-001", Name: "Ship feature",
		Status: models.MissionStatusInProgress, SortOrder: 1, CreatedAt: created,
	}
	missionRepo.missions["MSN-002"] = &secondary.MissionRecord{
		ID: "MSN-002", CampaignID: "CAMP-002", Name: "Inbox zero",
		Status: models.MissionStatusInProgress, SortOrder: 1, CreatedAt: created,
	}

	sortieRepo := newMockSortieRepository()
	sortieRepo.campaignOf["MSN-001"] = "CAMP-001"
	sortieRepo.campaignOf["MSN-002"] = "CAMP-002"
	sortieRepo.sorties["SRT-001"] = &secondary.SortieRecord{
		ID: "SRT-001", MissionID: "MSN-001", Title: "Write design doc",
		Load: models.LoadDeep, EstimatedBlocks: 2,
		Status: models.SortieStatusQueued, SortOrder: 1, CreatedAt: created,
	}
	sortieRepo.sorties["SRT-002"] = &secondary.SortieRecord{
		ID: "SRT-002", MissionID: "MSN-002", Title: "Clear inbox",
		Load: models.LoadLight, EstimatedBlocks: 1,
		Status: models.SortieStatusQueued, SortOrder: 1, CreatedAt: created,
	}

	aarRepo := newMockAARRepository()
	aarRepo.campaignOf["SRT-001"] = "CAMP-001"
	aarRepo.campaignOf["SRT-002"] = "CAMP-002"

	return NewBriefingService(campaignRepo, missionRepo, sortieRepo, aarRepo), sortieRepo
}

func TestGenerateBriefingOrdersByUrgency(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, _ := briefingFixture(now)

	result, err := service.GenerateBriefing(context.Background(), primary.GenerateBriefingRequest{
		Energy:          models.EnergyGreen,
		AvailableBlocks: 4,
		Now:             now,
	})
	if err != nil {
		t.Fatalf("GenerateBriefing failed: %v", err)
	}

	if len(result.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].SortieID != "SRT-001" {
		t.Errorf("Expected SRT-001 first (higher urgency), got %s", result.Items[0].SortieID)
	}
	if result.Items[1].SortieID != "SRT-002" {
		t.Errorf("Expected SRT-002 second, got %s", result.Items[1].SortieID)
	}
	if result.BlocksPlanned != 3 {
		t.Errorf("Expected 3 blocks planned, got %d", result.BlocksPlanned)
	}
	if result.Items[0].Urgency <= result.Items[1].Urgency {
		t.Errorf("Expected strictly decreasing urgency, got %.2f then %.2f",
			result.Items[0].Urgency, result.Items[1].Urgency)
	}
}

func TestGenerateBriefingCarriesContext(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, _ := briefingFixture(now)

	result, err := service.GenerateBriefing(context.Background(), primary.GenerateBriefingRequest{
		Energy:          models.EnergyGreen,
		AvailableBlocks: 4,
		Now:             now,
	})
	if err != nil {
		t.Fatalf("GenerateBriefing failed: %v", err)
	}

	item := result.Items[0]
	if item.CampaignName != "Deep Work" {
		t.Errorf("Expected campaign name 'Deep Work', got %q", item.CampaignName)
	}
	if item.CampaignColour != "blue" {
		t.Errorf("Expected campaign colour 'blue', got %q", item.CampaignColour)
	}
	if item.MissionName != "Ship feature" {
		t.Errorf("Expected mission name 'Ship feature', got %q", item.MissionName)
	}
}

func TestGenerateBriefingRedEnergyFiltersDeepWork(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, _ := briefingFixture(now)

	result, err := service.GenerateBriefing(context.Background(), primary.GenerateBriefingRequest{
		Energy:          models.EnergyRed,
		AvailableBlocks: 4,
		Now:             now,
	})
	if err != nil {
		t.Fatalf("GenerateBriefing failed: %v", err)
	}

	if len(result.Items) != 1 {
		t.Fatalf("Expected 1 item on red energy, got %d", len(result.Items))
	}
	if result.Items[0].SortieID != "SRT-002" {
		t.Errorf("Expected the light sortie SRT-002, got %s", result.Items[0].SortieID)
	}
}

func TestGenerateBriefingEmptyWhenNoCapacity(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, _ := briefingFixture(now)

	result, err := service.GenerateBriefing(context.Background(), primary.GenerateBriefingRequest{
		Energy:          models.EnergyGreen,
		AvailableBlocks: 0,
		Now:             now,
	})
	if err != nil {
		t.Fatalf("GenerateBriefing failed: %v", err)
	}
	if len(result.Items) != 0 {
		t.Errorf("Expected empty briefing at zero capacity, got %d items", len(result.Items))
	}
	if result.BlocksPlanned != 0 {
		t.Errorf("Expected 0 blocks planned, got %d", result.BlocksPlanned)
	}
}

func TestRouteSingleReturnsTopCandidate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, _ := briefingFixture(now)

	item, err := service.RouteSingle(context.Background(), models.EnergyGreen, now)
	if err != nil {
		t.Fatalf("RouteSingle failed: %v", err)
	}
	if item == nil {
		t.Fatal("Expected an item, got nil")
	}
	if item.SortieID != "SRT-001" {
		t.Errorf("Expected SRT-001, got %s", item.SortieID)
	}
}

func TestRouteSingleNilWhenNothingEligible(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, sortieRepo := briefingFixture(now)

	// Drain the queues.
	for _, r := range sortieRepo.sorties {
		r.Status = models.SortieStatusCompleted
	}

	item, err := service.RouteSingle(context.Background(), models.EnergyGreen, now)
	if err != nil {
		t.Fatalf("RouteSingle failed: %v", err)
	}
	if item != nil {
		t.Errorf("Expected nil item when no sortie is queued, got %+v", item)
	}
}
