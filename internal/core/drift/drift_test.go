package drift

import (
	"math"
	"strings"
	"testing"
)

const tolerance = 1e-9

func findCampaign(t *testing.T, r Report, id string) Result {
	t.Helper()
	for _, c := range r.Campaigns {
		if c.CampaignID == id {
			return c
		}
	}
	t.Fatalf("campaign %s not in report", id)
	return Result{}
}

func TestComputeShares(t *testing.T) {
	entries := []Entry{
		{CampaignID: "CAMP-001", Name: "Ship v2", PriorityRank: 1, WeeklyTarget: 10,
			SubWindowBlocks: []int{2, 2, 2, 2}},
		{CampaignID: "CAMP-002", Name: "Writing", PriorityRank: 2, WeeklyTarget: 5,
			SubWindowBlocks: []int{5, 5, 5, 5}},
		{CampaignID: "CAMP-003", Name: "Health", PriorityRank: 3, WeeklyTarget: 5,
			SubWindowBlocks: []int{3, 3, 3, 3}},
	}

	r := Compute(entries, 4)

	if r.InsufficientData {
		t.Fatal("InsufficientData set with 40 blocks logged")
	}
	if r.TotalBlocks != 40 {
		t.Fatalf("TotalBlocks = %d, want 40", r.TotalBlocks)
	}

	a := findCampaign(t, r, "CAMP-001")
	if math.Abs(a.ExpectedShare-0.5) > tolerance {
		t.Errorf("expected share = %v, want 0.5", a.ExpectedShare)
	}
	if math.Abs(a.ActualShare-0.2) > tolerance {
		t.Errorf("actual share = %v, want 0.2", a.ActualShare)
	}
	if math.Abs(a.Drift-(-0.3)) > tolerance {
		t.Errorf("drift = %v, want -0.3", a.Drift)
	}
	if !a.Misaligned {
		t.Error("campaign 30 points under target not flagged misaligned")
	}
	if !strings.Contains(a.Statement, "30 percentage points less attention") {
		t.Errorf("statement = %q, want under-allocation wording", a.Statement)
	}

	b := findCampaign(t, r, "CAMP-002")
	if b.Drift <= 0 {
		t.Errorf("over-served campaign drift = %v, want positive", b.Drift)
	}
	if !strings.Contains(b.Statement, "more attention") {
		t.Errorf("statement = %q, want over-allocation wording", b.Statement)
	}

	// Shares each sum to 1 when denominators are non-zero.
	var sumExpected, sumActual float64
	for _, c := range r.Campaigns {
		sumExpected += c.ExpectedShare
		sumActual += c.ActualShare
	}
	if math.Abs(sumExpected-1.0) > tolerance {
		t.Errorf("sum of expected shares = %v, want 1.0", sumExpected)
	}
	if math.Abs(sumActual-1.0) > tolerance {
		t.Errorf("sum of actual shares = %v, want 1.0", sumActual)
	}

	// Ordered by |drift| descending.
	for i := 1; i < len(r.Campaigns); i++ {
		if math.Abs(r.Campaigns[i].Drift) > math.Abs(r.Campaigns[i-1].Drift) {
			t.Errorf("report not ordered by |drift| descending at index %d", i)
		}
	}
}

func TestComputeInsufficientData(t *testing.T) {
	entries := []Entry{
		{CampaignID: "CAMP-001", Name: "A", PriorityRank: 1, WeeklyTarget: 10,
			SubWindowBlocks: []int{0, 0, 0, 0}},
		{CampaignID: "CAMP-002", Name: "B", PriorityRank: 2, WeeklyTarget: 5,
			SubWindowBlocks: []int{0, 0, 0, 0}},
	}

	r := Compute(entries, 4)
	if !r.InsufficientData {
		t.Fatal("InsufficientData not set with zero logged blocks")
	}
	for _, c := range r.Campaigns {
		if c.Drift != 0 {
			t.Errorf("%s drift = %v, want 0 under insufficient data", c.CampaignID, c.Drift)
		}
		if c.Misaligned {
			t.Errorf("%s flagged misaligned under insufficient data", c.CampaignID)
		}
		if c.Trend != TrendMixed {
			t.Errorf("%s trend = %q, want mixed under insufficient data", c.CampaignID, c.Trend)
		}
	}
}

func TestComputeZeroTargets(t *testing.T) {
	entries := []Entry{
		{CampaignID: "CAMP-001", Name: "A", PriorityRank: 1, WeeklyTarget: 0,
			SubWindowBlocks: []int{4, 0, 0, 0}},
	}

	r := Compute(entries, 4)
	c := findCampaign(t, r, "CAMP-001")
	if c.ExpectedShare != 0 {
		t.Errorf("expected share = %v, want 0 when total target is 0", c.ExpectedShare)
	}
	if math.Abs(c.ActualShare-1.0) > tolerance {
		t.Errorf("actual share = %v, want 1.0", c.ActualShare)
	}
}

func TestComputeDefaultWindow(t *testing.T) {
	r := Compute([]Entry{{CampaignID: "CAMP-001", WeeklyTarget: 1, SubWindowBlocks: []int{1, 1, 1, 1}}}, 0)
	if r.WindowWeeks != DefaultWindowWeeks {
		t.Errorf("WindowWeeks = %d, want default %d", r.WindowWeeks, DefaultWindowWeeks)
	}
}

func TestClassifyTrend(t *testing.T) {
	// Two campaigns with equal targets: expected share 0.5 each. The sub
	// windows are chosen so campaign A's |drift| series moves as named.
	tests := []struct {
		name   string
		a      []int // most recent first
		b      []int
		want   Trend
		wantFn func(t *testing.T, got Result)
	}{
		{
			// Oldest->newest shares for A: 1.0, 0.75, 0.6, 0.5 => |drift| 0.5, 0.25, 0.1, 0 shrinking.
			name: "improving",
			a:    []int{5, 6, 3, 4},
			b:    []int{5, 4, 1, 0},
			want: TrendImproving,
		},
		{
			// Oldest->newest shares for A: 0.5, 0.6, 0.75, 1.0 => |drift| growing.
			name: "worsening",
			a:    []int{4, 3, 6, 5},
			b:    []int{0, 1, 4, 5},
			want: TrendWorsening,
		},
		{
			// |drift| dips then grows.
			name: "mixed",
			a:    []int{9, 1, 5, 9},
			b:    []int{1, 9, 5, 1},
			want: TrendMixed,
		},
		{
			// Flat series counts as improving (non-increasing checked first).
			name: "flat",
			a:    []int{5, 5, 5, 5},
			b:    []int{5, 5, 5, 5},
			want: TrendImproving,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []Entry{
				{CampaignID: "CAMP-A", Name: "A", PriorityRank: 1, WeeklyTarget: 5, SubWindowBlocks: tt.a},
				{CampaignID: "CAMP-B", Name: "B", PriorityRank: 2, WeeklyTarget: 5, SubWindowBlocks: tt.b},
			}
			r := Compute(entries, 4)
			got := findCampaign(t, r, "CAMP-A")
			if got.Trend != tt.want {
				t.Errorf("trend = %q, want %q", got.Trend, tt.want)
			}
		})
	}
}

func TestStatementZeroDrift(t *testing.T) {
	entries := []Entry{
		{CampaignID: "CAMP-001", Name: "A", PriorityRank: 1, WeeklyTarget: 5, SubWindowBlocks: []int{5}},
		{CampaignID: "CAMP-002", Name: "B", PriorityRank: 2, WeeklyTarget: 5, SubWindowBlocks: []int{5}},
	}
	r := Compute(entries, 1)
	c := findCampaign(t, r, "CAMP-001")
	if !strings.Contains(c.Statement, "in line with its stated priority") {
		t.Errorf("statement = %q, want in-line wording for zero drift", c.Statement)
	}
}
