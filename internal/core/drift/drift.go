// Package drift contains the pure logic that compares each campaign's
// stated share of attention with its observed share over a trailing
// window. Part of the Functional Core - no I/O.
package drift

import (
	"fmt"
	"math"
	"sort"
)

// MisalignmentThreshold flags campaigns whose |drift| exceeds it.
const MisalignmentThreshold = 0.15

// DefaultWindowWeeks is the trailing window when the caller does not
// specify one.
const DefaultWindowWeeks = 4

// SubWindowDays is the length of one trend sub-window.
const SubWindowDays = 7

// Trend classifies how a campaign's misalignment is moving.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendWorsening Trend = "worsening"
	TrendMixed     Trend = "mixed"
)

// Entry is one active campaign's pre-aggregated inputs. SubWindowBlocks
// holds the blocks invested per 7-day sub-window, most recent first, one
// element per window week.
type Entry struct {
	CampaignID      string
	Name            string
	PriorityRank    int
	WeeklyTarget    int
	SubWindowBlocks []int
}

// Result is the drift verdict for one campaign.
type Result struct {
	CampaignID    string
	Name          string
	PriorityRank  int
	ExpectedShare float64
	ActualShare   float64
	Drift         float64
	Misaligned    bool
	Trend         Trend
	Statement     string
}

// Report is the drift verdict across all active campaigns, ordered by
// |drift| descending so the worst misalignment reads first.
type Report struct {
	WindowWeeks      int
	TotalBlocks      int
	InsufficientData bool
	Campaigns        []Result
}

// Compute builds the drift report. With no work logged anywhere in the
// window every drift is 0 and the report carries the InsufficientData
// flag - degenerate input, not an error.
func Compute(entries []Entry, windowWeeks int) Report {
	if windowWeeks <= 0 {
		windowWeeks = DefaultWindowWeeks
	}

	report := Report{WindowWeeks: windowWeeks}
	if len(entries) == 0 {
		return report
	}

	totalTarget := 0
	for _, e := range entries {
		totalTarget += e.WeeklyTarget
		report.TotalBlocks += sumBlocks(e.SubWindowBlocks, windowWeeks)
	}
	report.InsufficientData = report.TotalBlocks == 0

	// Sub-window totals across campaigns, for the trend series.
	subTotals := make([]int, windowWeeks)
	for _, e := range entries {
		for i := 0; i < windowWeeks && i < len(e.SubWindowBlocks); i++ {
			subTotals[i] += e.SubWindowBlocks[i]
		}
	}

	for _, e := range entries {
		var expected float64
		if totalTarget > 0 {
			expected = float64(e.WeeklyTarget) / float64(totalTarget)
		}

		var actual, d float64
		if !report.InsufficientData {
			actual = float64(sumBlocks(e.SubWindowBlocks, windowWeeks)) / float64(report.TotalBlocks)
			d = actual - expected
		}

		trend := TrendMixed
		if !report.InsufficientData {
			trend = classifyTrend(e.SubWindowBlocks, subTotals, expected, windowWeeks)
		}

		misaligned := math.Abs(d) > MisalignmentThreshold
		report.Campaigns = append(report.Campaigns, Result{
			CampaignID:    e.CampaignID,
			Name:          e.Name,
			PriorityRank:  e.PriorityRank,
			ExpectedShare: expected,
			ActualShare:   actual,
			Drift:         d,
			Misaligned:    misaligned,
			Trend:         trend,
			Statement:     statement(e.Name, d),
		})
	}

	sort.SliceStable(report.Campaigns, func(i, j int) bool {
		di, dj := math.Abs(report.Campaigns[i].Drift), math.Abs(report.Campaigns[j].Drift)
		if di != dj {
			return di > dj
		}
		return report.Campaigns[i].PriorityRank < report.Campaigns[j].PriorityRank
	})

	return report
}

// classifyTrend walks the |drift| series oldest to newest. Monotonically
// non-increasing toward the present is improving, non-decreasing is
// worsening, anything else is mixed. Evaluated in that order, so a flat
// series counts as improving.
func classifyTrend(blocks, subTotals []int, expected float64, windowWeeks int) Trend {
	series := make([]float64, 0, windowWeeks)
	for i := windowWeeks - 1; i >= 0; i-- { // oldest first
		var actual float64
		if i < len(subTotals) && subTotals[i] > 0 {
			b := 0
			if i < len(blocks) {
				b = blocks[i]
			}
			actual = float64(b) / float64(subTotals[i])
		}
		series = append(series, math.Abs(actual-expected))
	}

	nonIncreasing, nonDecreasing := true, true
	for i := 1; i < len(series); i++ {
		if series[i] > series[i-1] {
			nonIncreasing = false
		}
		if series[i] < series[i-1] {
			nonDecreasing = false
		}
	}

	switch {
	case nonIncreasing:
		return TrendImproving
	case nonDecreasing:
		return TrendWorsening
	default:
		return TrendMixed
	}
}

// statement renders the plain-language drift sentence. The sign of the
// drift decides the direction of the wording.
func statement(name string, d float64) string {
	points := int(math.Round(math.Abs(d) * 100))
	switch {
	case points == 0:
		return fmt.Sprintf("%s is receiving attention in line with its stated priority", name)
	case d > 0:
		return fmt.Sprintf("%s is getting %d percentage points more attention than its stated priority warrants", name, points)
	default:
		return fmt.Sprintf("%s is getting %d percentage points less attention than its stated priority warrants", name, points)
	}
}

func sumBlocks(blocks []int, windowWeeks int) int {
	total := 0
	for i := 0; i < windowWeeks && i < len(blocks); i++ {
		total += blocks[i]
	}
	return total
}
