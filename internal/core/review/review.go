// Package review contains the pure weekly-review builder. The review is
// a rollup of the trailing week: scoreboard, drift summary, staleness
// alerts, energy patterns, current rankings, and a next-week preview.
// All inputs are pre-fetched by the caller - no I/O here.
package review

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/example/senryaku/internal/models"
)

// StalenessAlertDays is the threshold above which a campaign earns a
// staleness alert in the review.
const StalenessAlertDays = 5

// energyValues maps energy levels onto a numeric scale for averaging.
var energyValues = map[models.EnergyLevel]int{
	models.EnergyGreen:  3,
	models.EnergyYellow: 2,
	models.EnergyRed:    1,
}

// CampaignWeek is one active campaign's trailing-week rollup.
type CampaignWeek struct {
	CampaignID    string
	Name          string
	Colour        string
	PriorityRank  int
	WeeklyTarget  int
	Blocks        int
	StalenessDays int
}

// MissionMove records a mission status change during the week.
type MissionMove struct {
	Name         string
	CampaignName string
	OldStatus    models.MissionStatus
	NewStatus    models.MissionStatus
}

// CheckIn is one day's energy reading.
type CheckIn struct {
	Date   time.Time
	Energy models.EnergyLevel
}

// TargetItem is an upcoming campaign or mission deadline.
type TargetItem struct {
	Kind       string // "campaign" or "mission"
	Name       string
	TargetDate time.Time
}

// BlockedItem is a sortie stuck behind a blocked mission.
type BlockedItem struct {
	Title        string
	MissionName  string
	CampaignName string
}

// Input is everything the builder needs, pre-fetched by the caller.
type Input struct {
	WeekEnding      time.Time
	Campaigns       []CampaignWeek
	MissionsMoved   []MissionMove
	CheckIns        []CheckIn
	UpcomingTargets []TargetItem
	Blocked         []BlockedItem
}

// ScoreRow is one campaign's scoreboard line.
type ScoreRow struct {
	Name          string
	Colour        string
	PriorityRank  int
	Blocks        int
	WeeklyTarget  int
	CompletionPct int
}

// DriftRow is one campaign's inline drift summary line.
type DriftRow struct {
	Name          string
	ExpectedShare float64
	ActualShare   float64
	Drift         float64
	Misaligned    bool
}

// StalenessAlert flags a campaign untouched for too long.
type StalenessAlert struct {
	Name string
	Days int
}

// EnergyPattern summarises the week's check-ins.
type EnergyPattern struct {
	CheckIns     int
	Average      float64
	AverageLabel string
	Daily        []CheckIn
}

// Ranking is one line of the re-rank prompt.
type Ranking struct {
	Rank int
	Name string
}

// Review is the complete weekly review.
type Review struct {
	WeekEnding      time.Time
	Scoreboard      []ScoreRow
	MissionsMoved   []MissionMove
	DriftSummary    []DriftRow
	StalenessAlerts []StalenessAlert
	Energy          EnergyPattern
	Rankings        []Ranking
	UpcomingTargets []TargetItem
	Blocked         []BlockedItem
}

// Build assembles the review from the week's rollup.
func Build(in Input) Review {
	r := Review{
		WeekEnding:      in.WeekEnding,
		MissionsMoved:   in.MissionsMoved,
		UpcomingTargets: in.UpcomingTargets,
		Blocked:         in.Blocked,
	}

	totalTarget, totalBlocks := 0, 0
	for _, c := range in.Campaigns {
		totalTarget += c.WeeklyTarget
		totalBlocks += c.Blocks
	}

	for _, c := range in.Campaigns {
		pct := 0
		if c.WeeklyTarget > 0 {
			pct = int(math.Round(float64(c.Blocks) / float64(c.WeeklyTarget) * 100))
		}
		r.Scoreboard = append(r.Scoreboard, ScoreRow{
			Name:          c.Name,
			Colour:        c.Colour,
			PriorityRank:  c.PriorityRank,
			Blocks:        c.Blocks,
			WeeklyTarget:  c.WeeklyTarget,
			CompletionPct: pct,
		})

		var expected, actual float64
		if totalTarget > 0 {
			expected = float64(c.WeeklyTarget) / float64(totalTarget)
		}
		if totalBlocks > 0 {
			actual = float64(c.Blocks) / float64(totalBlocks)
		}
		d := actual - expected
		r.DriftSummary = append(r.DriftSummary, DriftRow{
			Name:          c.Name,
			ExpectedShare: expected,
			ActualShare:   actual,
			Drift:         d,
			Misaligned:    math.Abs(d) > 0.15,
		})

		if c.StalenessDays > StalenessAlertDays {
			r.StalenessAlerts = append(r.StalenessAlerts, StalenessAlert{Name: c.Name, Days: c.StalenessDays})
		}

		r.Rankings = append(r.Rankings, Ranking{Rank: c.PriorityRank, Name: c.Name})
	}

	r.Energy = buildEnergy(in.CheckIns)
	return r
}

func buildEnergy(checkins []CheckIn) EnergyPattern {
	p := EnergyPattern{CheckIns: len(checkins), Daily: checkins, AverageLabel: "none"}
	if len(checkins) == 0 {
		return p
	}
	total := 0
	for _, ci := range checkins {
		total += energyValues[ci.Energy]
	}
	p.Average = float64(total) / float64(len(checkins))
	switch int(math.Round(p.Average)) {
	case 3:
		p.AverageLabel = string(models.EnergyGreen)
	case 2:
		p.AverageLabel = string(models.EnergyYellow)
	default:
		p.AverageLabel = string(models.EnergyRed)
	}
	return p
}

// Markdown renders the review as a markdown document.
func (r Review) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Weekly Review — %s\n\n", r.WeekEnding.Format("2006-01-02"))

	b.WriteString("## Scoreboard\n")
	if len(r.Scoreboard) == 0 {
		b.WriteString("- No active campaigns\n")
	}
	for _, s := range r.Scoreboard {
		bar := strings.Repeat("█", s.Blocks)
		if s.WeeklyTarget > s.Blocks {
			bar += strings.Repeat("░", s.WeeklyTarget-s.Blocks)
		}
		fmt.Fprintf(&b, "- **%s**: %d/%d blocks [%s] (%d%%)\n", s.Name, s.Blocks, s.WeeklyTarget, bar, s.CompletionPct)
	}
	b.WriteString("\n## Missions Moved\n")
	if len(r.MissionsMoved) == 0 {
		b.WriteString("- No mission status changes this week\n")
	}
	for _, m := range r.MissionsMoved {
		fmt.Fprintf(&b, "- %s → **%s**: %s → %s\n", m.CampaignName, m.Name, m.OldStatus, m.NewStatus)
	}

	b.WriteString("\n## Drift Summary\n")
	misaligned := 0
	for _, d := range r.DriftSummary {
		if !d.Misaligned {
			continue
		}
		misaligned++
		direction := "under"
		if d.Drift > 0 {
			direction = "over"
		}
		fmt.Fprintf(&b, "- **%s**: %s-allocated by %.0f%%\n", d.Name, direction, math.Abs(d.Drift)*100)
	}
	if misaligned == 0 {
		b.WriteString("- All campaigns within alignment thresholds\n")
	}

	b.WriteString("\n## Staleness Alerts\n")
	if len(r.StalenessAlerts) == 0 {
		b.WriteString("- All campaigns active this week\n")
	}
	for _, a := range r.StalenessAlerts {
		fmt.Fprintf(&b, "- **%s** untouched for %d days\n", a.Name, a.Days)
	}

	b.WriteString("\n## Energy Patterns\n")
	if r.Energy.CheckIns == 0 {
		b.WriteString("- No check-ins recorded this week\n")
	} else {
		for _, ci := range r.Energy.Daily {
			fmt.Fprintf(&b, "- %s: %s\n", ci.Date.Format("Mon 2006-01-02"), ci.Energy)
		}
		fmt.Fprintf(&b, "- Average energy: **%s** (%.1f)\n", r.Energy.AverageLabel, r.Energy.Average)
	}

	b.WriteString("\n## Re-rank Your Campaigns\n")
	b.WriteString("Current priority order:\n")
	for _, rk := range r.Rankings {
		fmt.Fprintf(&b, "  %d. %s\n", rk.Rank, rk.Name)
	}

	b.WriteString("\n## Next Week Preview\n")
	if len(r.UpcomingTargets) == 0 && len(r.Blocked) == 0 {
		b.WriteString("- No upcoming deadlines or blocked work\n")
	}
	if len(r.UpcomingTargets) > 0 {
		b.WriteString("**Upcoming deadlines:**\n")
		for _, tgt := range r.UpcomingTargets {
			fmt.Fprintf(&b, "- %s — %s\n", tgt.Name, tgt.TargetDate.Format("2006-01-02"))
		}
	}
	if len(r.Blocked) > 0 {
		b.WriteString("**Blocked sorties:**\n")
		for _, bl := range r.Blocked {
			fmt.Fprintf(&b, "- %s > %s > %s\n", bl.CampaignName, bl.MissionName, bl.Title)
		}
	}

	return b.String()
}
