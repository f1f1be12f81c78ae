// Package briefing contains the pure allocation logic that turns the
// day's capacity and energy into an ordered selection of queued sorties.
// Part of the Functional Core - all inputs are pre-fetched by the caller.
package briefing

import (
	"sort"
	"time"

	"github.com/example/senryaku/internal/models"
)

// FairnessCapNumerator / FairnessCapDenominator encode the 60% per-campaign
// cap as integer math: floor(0.6 * blocks) == 3 * blocks / 5 exactly, which
// the float form gets wrong for some inputs (0.6 * 5 truncates to 2).
const (
	FairnessCapNumerator   = 3
	FairnessCapDenominator = 5
)

// allowedLoads is the energy gate: a sortie is eligible only when its
// cognitive load requires no more energy than the day permits.
var allowedLoads = map[models.EnergyLevel]map[models.CognitiveLoad]bool{
	models.EnergyGreen:  {models.LoadDeep: true, models.LoadMedium: true, models.LoadLight: true},
	models.EnergyYellow: {models.LoadMedium: true, models.LoadLight: true},
	models.EnergyRed:    {models.LoadLight: true},
}

// Eligible reports whether a sortie of the given load may run at the given
// energy level.
func Eligible(load models.CognitiveLoad, energy models.EnergyLevel) bool {
	return allowedLoads[energy][load]
}

// Candidate is a queued sortie with the context the briefing needs.
type Candidate struct {
	SortieID        string
	Title           string
	Load            models.CognitiveLoad
	EstimatedBlocks int
	SortOrder       int
	CreatedAt       time.Time
	MissionID       string
	MissionName     string
}

// CampaignQueue is one campaign's queued work plus its current urgency.
// Sorties may arrive in any order; the allocator sorts them.
type CampaignQueue struct {
	CampaignID   string
	Name         string
	Colour       string
	PriorityRank int
	Urgency      float64
	Sorties      []Candidate
}

// Selection is one chosen sortie in briefing presentation order.
type Selection struct {
	Sortie       Candidate
	CampaignID   string
	CampaignName string
	Colour       string
	Urgency      float64
}

// Allocate runs the single-pass greedy fill: energy gate, urgency-major
// ordering, then per-campaign and global capacity caps. A sortie that does
// not fit is skipped, not a hard stop - smaller sorties later in the queue
// can still fill remaining room. Empty output is a valid state, not an
// error.
func Allocate(queues []CampaignQueue, energy models.EnergyLevel, availableBlocks int) []Selection {
	eligible := gateAndOrder(queues, energy)
	if len(eligible) == 0 || availableBlocks <= 0 {
		return nil
	}

	campaignCap := availableBlocks * FairnessCapNumerator / FairnessCapDenominator
	capWaived := len(eligible) == 1

	var selections []Selection
	totalTaken := 0

	for _, q := range eligible {
		campaignTaken := 0
		for _, c := range q.Sorties {
			if totalTaken >= availableBlocks {
				return selections
			}
			if totalTaken+c.EstimatedBlocks > availableBlocks {
				continue
			}
			if !capWaived && campaignTaken+c.EstimatedBlocks > campaignCap {
				continue
			}
			selections = append(selections, Selection{
				Sortie:       c,
				CampaignID:   q.CampaignID,
				CampaignName: q.Name,
				Colour:       q.Colour,
				Urgency:      q.Urgency,
			})
			totalTaken += c.EstimatedBlocks
			campaignTaken += c.EstimatedBlocks
		}
	}

	return selections
}

// First answers "what should I do now?": the identical gate and ordering,
// returning the first candidate before any capping. The second return is
// false when no eligible sortie exists.
func First(queues []CampaignQueue, energy models.EnergyLevel) (Selection, bool) {
	eligible := gateAndOrder(queues, energy)
	if len(eligible) == 0 {
		return Selection{}, false
	}
	q := eligible[0]
	return Selection{
		Sortie:       q.Sorties[0],
		CampaignID:   q.CampaignID,
		CampaignName: q.Name,
		Colour:       q.Colour,
		Urgency:      q.Urgency,
	}, true
}

// gateAndOrder applies the energy gate, drops campaigns left with no
// eligible work, and fixes the deterministic walk order: campaigns by
// urgency descending (ties by ascending rank, then campaign ID), sorties
// within a campaign by manual queue order (ties by creation time).
func gateAndOrder(queues []CampaignQueue, energy models.EnergyLevel) []CampaignQueue {
	eligible := make([]CampaignQueue, 0, len(queues))
	for _, q := range queues {
		kept := make([]Candidate, 0, len(q.Sorties))
		for _, c := range q.Sorties {
			if Eligible(c.Load, energy) {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			continue
		}
		sort.SliceStable(kept, func(i, j int) bool {
			if kept[i].SortOrder != kept[j].SortOrder {
				return kept[i].SortOrder < kept[j].SortOrder
			}
			return kept[i].CreatedAt.Before(kept[j].CreatedAt)
		})
		q.Sorties = kept
		eligible = append(eligible, q)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Urgency != eligible[j].Urgency {
			return eligible[i].Urgency > eligible[j].Urgency
		}
		if eligible[i].PriorityRank != eligible[j].PriorityRank {
			return eligible[i].PriorityRank < eligible[j].PriorityRank
		}
		return eligible[i].CampaignID < eligible[j].CampaignID
	})

	return eligible
}
