package app

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockCampaignRepository implements secondary.CampaignRepository for testing.
type mockCampaignRepository struct {
	campaigns map[string]*secondary.CampaignRecord
	listErr   error
}

func newMockCampaignRepository() *mockCampaignRepository {
	return &mockCampaignRepository{campaigns: make(map[string]*secondary.CampaignRecord)}
}

func (m *mockCampaignRepository) Create(ctx context.Context, c *secondary.CampaignRecord) error {
	m.campaigns[c.ID] = c
	return nil
}

func (m *mockCampaignRepository) GetByID(ctx context.Context, id string) (*secondary.CampaignRecord, error) {
	if c, ok := m.campaigns[id]; ok {
		return c, nil
	}
	return nil, errors.New("campaign not found")
}

func (m *mockCampaignRepository) List(ctx context.Context, filters secondary.CampaignFilters) ([]*secondary.CampaignRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.CampaignRecord
	for _, c := range m.campaigns {
		if filters.Status != "" && c.Status != filters.Status {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PriorityRank < result[j].PriorityRank })
	return result, nil
}

func (m *mockCampaignRepository) Update(ctx context.Context, c *secondary.CampaignRecord) error {
	m.campaigns[c.ID] = c
	return nil
}

func (m *mockCampaignRepository) UpdateStatus(ctx context.Context, id string, status models.CampaignStatus) error {
	c, ok := m.campaigns[id]
	if !ok {
		return errors.New("campaign not found")
	}
	c.Status = status
	return nil
}

func (m *mockCampaignRepository) Rerank(ctx context.Context, orderedIDs []string) error {
	for i, id := range orderedIDs {
		c, ok := m.campaigns[id]
		if !ok {
			return errors.New("campaign not found")
		}
		c.PriorityRank = i + 1
	}
	return nil
}

func (m *mockCampaignRepository) GetNextID(ctx context.Context) (string, error) {
	return nextID("CAMP", len(m.campaigns)), nil
}

// mockMissionRepository implements secondary.MissionRepository for testing.
type mockMissionRepository struct {
	missions map[string]*secondary.MissionRecord
}

func newMockMissionRepository() *mockMissionRepository {
	return &mockMissionRepository{missions: make(map[string]*secondary.MissionRecord)}
}

func (m *mockMissionRepository) Create(ctx context.Context, r *secondary.MissionRecord) error {
	m.missions[r.ID] = r
	return nil
}

func (m *mockMissionRepository) GetByID(ctx context.Context, id string) (*secondary.MissionRecord, error) {
	if r, ok := m.missions[id]; ok {
		return r, nil
	}
	return nil, errors.New("mission not found")
}

func (m *mockMissionRepository) List(ctx context.Context, filters secondary.MissionFilters) ([]*secondary.MissionRecord, error) {
	var result []*secondary.MissionRecord
	for _, r := range m.missions {
		if filters.CampaignID != "" && r.CampaignID != filters.CampaignID {
			continue
		}
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (m *mockMissionRepository) Update(ctx context.Context, r *secondary.MissionRecord) error {
	if _, ok := m.missions[r.ID]; !ok {
		return errors.New("mission not found")
	}
	m.missions[r.ID] = r
	return nil
}

func (m *mockMissionRepository) UpdateStatus(ctx context.Context, id string, status models.MissionStatus, now time.Time) error {
	r, ok := m.missions[id]
	if !ok {
		return errors.New("mission not found")
	}
	r.Status = status
	if status == models.MissionStatusCompleted {
		r.CompletedAt = &now
	}
	return nil
}

func (m *mockMissionRepository) ListCompletedSince(ctx context.Context, cutoff time.Time) ([]*secondary.MissionRecord, error) {
	var result []*secondary.MissionRecord
	for _, r := range m.missions {
		if r.CompletedAt != nil && !r.CompletedAt.Before(cutoff) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockMissionRepository) GetNextID(ctx context.Context) (string, error) {
	return nextID("MSN", len(m.missions)), nil
}

// mockSortieRepository implements secondary.SortieRepository for testing.
type mockSortieRepository struct {
	sorties map[string]*secondary.SortieRecord
	// campaignOf maps mission IDs to campaign IDs for the join queries.
	campaignOf      map[string]string
	blockedMissions map[string]bool
	startErr        error
	finishErr       error
}

func newMockSortieRepository() *mockSortieRepository {
	return &mockSortieRepository{
		sorties:         make(map[string]*secondary.SortieRecord),
		campaignOf:      make(map[string]string),
		blockedMissions: make(map[string]bool),
	}
}

func (m *mockSortieRepository) Create(ctx context.Context, r *secondary.SortieRecord) error {
	m.sorties[r.ID] = r
	return nil
}

func (m *mockSortieRepository) GetByID(ctx context.Context, id string) (*secondary.SortieRecord, error) {
	if r, ok := m.sorties[id]; ok {
		return r, nil
	}
	return nil, errors.New("sortie not found")
}

func (m *mockSortieRepository) ListByMission(ctx context.Context, missionID string) ([]*secondary.SortieRecord, error) {
	var result []*secondary.SortieRecord
	for _, r := range m.sorties {
		if r.MissionID == missionID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (m *mockSortieRepository) ListQueuedByCampaign(ctx context.Context, campaignID string) ([]*secondary.SortieRecord, error) {
	var result []*secondary.SortieRecord
	for _, r := range m.sorties {
		if r.Status == models.SortieStatusQueued && m.campaignOf[r.MissionID] == campaignID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (m *mockSortieRepository) ListBlockedByCampaign(ctx context.Context, campaignID string) ([]*secondary.SortieRecord, error) {
	var result []*secondary.SortieRecord
	for _, r := range m.sorties {
		if m.campaignOf[r.MissionID] == campaignID && m.blockedMissions[r.MissionID] {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockSortieRepository) Update(ctx context.Context, r *secondary.SortieRecord) error {
	if _, ok := m.sorties[r.ID]; !ok {
		return errors.New("sortie not found")
	}
	m.sorties[r.ID] = r
	return nil
}

func (m *mockSortieRepository) Start(ctx context.Context, id string, now time.Time) error {
	if m.startErr != nil {
		return m.startErr
	}
	r, ok := m.sorties[id]
	if !ok || r.Status != models.SortieStatusQueued {
		return errors.New("sortie is not queued")
	}
	r.Status = models.SortieStatusActive
	r.StartedAt = &now
	return nil
}

func (m *mockSortieRepository) Finish(ctx context.Context, id string, status models.SortieStatus, now time.Time) error {
	if m.finishErr != nil {
		return m.finishErr
	}
	r, ok := m.sorties[id]
	if !ok || r.Status != models.SortieStatusActive {
		return errors.New("sortie is not active")
	}
	r.Status = status
	r.CompletedAt = &now
	return nil
}

func (m *mockSortieRepository) Abandon(ctx context.Context, id string, now time.Time) error {
	r, ok := m.sorties[id]
	if !ok {
		return errors.New("sortie not found")
	}
	r.Status = models.SortieStatusAbandoned
	r.CompletedAt = &now
	return nil
}

func (m *mockSortieRepository) Move(ctx context.Context, id, missionID string) error {
	r, ok := m.sorties[id]
	if !ok {
		return errors.New("sortie not found")
	}
	r.MissionID = missionID
	return nil
}

func (m *mockSortieRepository) GetNextID(ctx context.Context) (string, error) {
	return nextID("SRT", len(m.sorties)), nil
}

// mockAARRepository implements secondary.AARRepository for testing.
type mockAARRepository struct {
	aars map[string]*secondary.AARRecord
	// campaignOf maps sortie IDs to campaign IDs for the join queries.
	campaignOf map[string]string
	createErr  error
}

func newMockAARRepository() *mockAARRepository {
	return &mockAARRepository{
		aars:       make(map[string]*secondary.AARRecord),
		campaignOf: make(map[string]string),
	}
}

func (m *mockAARRepository) Create(ctx context.Context, r *secondary.AARRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.aars[r.ID] = r
	return nil
}

func (m *mockAARRepository) GetBySortie(ctx context.Context, sortieID string) (*secondary.AARRecord, error) {
	for _, r := range m.aars {
		if r.SortieID == sortieID {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockAARRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*secondary.AARRecord, error) {
	var result []*secondary.AARRecord
	for _, r := range m.aars {
		if m.campaignOf[r.SortieID] == campaignID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockAARRepository) SumBlocksInWindow(ctx context.Context, campaignID string, start, end time.Time) (int, error) {
	total := 0
	for _, r := range m.aars {
		if m.campaignOf[r.SortieID] != campaignID {
			continue
		}
		if !r.CreatedAt.Before(start) && r.CreatedAt.Before(end) {
			total += r.ActualBlocks
		}
	}
	return total, nil
}

func (m *mockAARRepository) GetNextID(ctx context.Context) (string, error) {
	return nextID("AAR", len(m.aars)), nil
}

// mockCheckInRepository implements secondary.CheckInRepository for testing.
type mockCheckInRepository struct {
	byDate map[string]*secondary.CheckInRecord
}

func newMockCheckInRepository() *mockCheckInRepository {
	return &mockCheckInRepository{byDate: make(map[string]*secondary.CheckInRecord)}
}

func (m *mockCheckInRepository) Upsert(ctx context.Context, r *secondary.CheckInRecord) error {
	key := r.Date.Format("2006-01-02")
	if existing, ok := m.byDate[key]; ok {
		r.ID = existing.ID
	} else {
		r.ID = nextID("CHK", len(m.byDate))
	}
	m.byDate[key] = r
	return nil
}

func (m *mockCheckInRepository) GetByDate(ctx context.Context, date time.Time) (*secondary.CheckInRecord, error) {
	return m.byDate[date.Format("2006-01-02")], nil
}

func (m *mockCheckInRepository) ListRange(ctx context.Context, from, to time.Time) ([]*secondary.CheckInRecord, error) {
	var result []*secondary.CheckInRecord
	for _, r := range m.byDate {
		if !r.Date.Before(from) && !r.Date.After(to) {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func nextID(prefix string, count int) string {
	return prefix + "-" + padCount(count+1)
}

func padCount(n int) string {
	s := ""
	for _, d := range []int{100, 10, 1} {
		s += string(rune('0' + (n/d)%10))
	}
	return s
}
