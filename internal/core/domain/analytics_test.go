package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedCollab(id string, engagement, reach int64, payment float64, acceptedAt time.Time) Collaboration {
	completedAt := acceptedAt.Add(72 * time.Hour)
	return Collaboration{
		ID:            id,
		Status:        CollaborationCompleted,
		AgreedPayment: payment,
		Performance:   PerformanceStats{Engagement: engagement, Reach: reach},
		AcceptedAt:    &acceptedAt,
		CompletedAt:   &completedAt,
	}
}

func TestComputeBudgetMetrics(t *testing.T) {
	m := ComputeBudgetMetrics(&Campaign{TotalBudget: 1000, SpentBudget: 250})
	assert.Equal(t, 750.0, m.Remaining)
	assert.Equal(t, 25.0, m.UtilizationRate)
}

func TestComputeBudgetMetricsZeroTotal(t *testing.T) {
	m := ComputeBudgetMetrics(&Campaign{TotalBudget: 0, SpentBudget: 0})
	assert.Equal(t, 0.0, m.UtilizationRate)
}

func TestComputeCollaborationMetrics(t *testing.T) {
	now := time.Now()
	cols := []Collaboration{
		{Status: CollaborationInvited},
		{Status: CollaborationAccepted},
		completedCollab("a", 100, 1000, 50, now),
		completedCollab("b", 200, 2000, 50, now),
	}
	m := ComputeCollaborationMetrics(cols)
	assert.Equal(t, 4, m.Total)
	assert.Equal(t, 2, m.Completed)
	assert.Equal(t, 75.0, m.AcceptanceRate)
	assert.InDelta(t, 66.67, m.CompletionRate, 0.01)
}

func TestComputeCollaborationMetricsZeroDenominators(t *testing.T) {
	m := ComputeCollaborationMetrics(nil)
	assert.Equal(t, 0.0, m.AcceptanceRate)
	assert.Equal(t, 0.0, m.CompletionRate)

	m = ComputeCollaborationMetrics([]Collaboration{
		{Status: CollaborationInvited},
		{Status: CollaborationDeclined},
	})
	assert.Equal(t, 0.0, m.AcceptanceRate)
	assert.Equal(t, 0.0, m.CompletionRate)
}

func TestComputePerformanceSummaryCompletedOnly(t *testing.T) {
	now := time.Now()
	cols := []Collaboration{
		{Status: CollaborationActive, Performance: PerformanceStats{Engagement: 9999, Reach: 9999}},
		completedCollab("a", 100, 1000, 50, now),
		completedCollab("b", 300, 3000, 50, now),
	}
	s := ComputePerformanceSummary(cols)
	assert.Equal(t, int64(400), s.Engagement)
	assert.Equal(t, int64(4000), s.Reach)
	assert.Equal(t, 200.0, s.AverageEngagementRate)
}

func TestComputePerformanceSummaryEmpty(t *testing.T) {
	s := ComputePerformanceSummary(nil)
	assert.Equal(t, 0.0, s.AverageEngagementRate)
	assert.Zero(t, s.Engagement)
}

func TestComputeROIMetrics(t *testing.T) {
	c := &Campaign{TotalBudget: 1000, SpentBudget: 500}
	perf := PerformanceSummary{Engagement: 250, Reach: 20_000}
	m := ComputeROIMetrics(c, perf)
	assert.Equal(t, 2.0, m.CostPerEngagement)
	assert.Equal(t, 1000.0, m.EstimatedReachValue) // 20000 * 0.05
	assert.Equal(t, 100.0, m.ROI)                  // (1000-500)/500*100
	assert.Equal(t, 2000.0, m.BudgetEfficiency)    // 20000/1000*100
}

func TestComputeROIMetricsGuards(t *testing.T) {
	m := ComputeROIMetrics(&Campaign{}, PerformanceSummary{})
	assert.Zero(t, m.CostPerEngagement)
	assert.Zero(t, m.ROI)
	assert.Zero(t, m.BudgetEfficiency)
}

func TestComputeHealthScoreRangeAndSteps(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		c    Campaign
		cols []Collaboration
	}{
		{"empty", Campaign{}, nil},
		{"active spent", Campaign{Status: CampaignActive, TotalBudget: 100, SpentBudget: 50}, nil},
		{"full", Campaign{Status: CampaignActive, TotalBudget: 100, SpentBudget: 50}, []Collaboration{
			completedCollab("a", 500, 5000, 10, now),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			budget := ComputeBudgetMetrics(&tc.c)
			collabs := ComputeCollaborationMetrics(tc.cols)
			perf := ComputePerformanceSummary(tc.cols)
			score := ComputeHealthScore(&tc.c, budget, collabs, perf)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
			assert.Zero(t, score%20)
		})
	}
}

func TestComputeHealthScoreAllConditions(t *testing.T) {
	now := time.Now()
	c := Campaign{Status: CampaignActive, TotalBudget: 1000, SpentBudget: 400}
	cols := []Collaboration{
		completedCollab("a", 500, 5000, 100, now),
		completedCollab("b", 300, 3000, 100, now),
	}
	budget := ComputeBudgetMetrics(&c)
	collabs := ComputeCollaborationMetrics(cols)
	perf := ComputePerformanceSummary(cols)
	// utilization 40%, acceptance 100%, completion 100%, engagement > 0, active
	assert.Equal(t, 100, ComputeHealthScore(&c, budget, collabs, perf))
}

func TestTopPerformersOrderAndTruncation(t *testing.T) {
	now := time.Now()
	cols := []Collaboration{
		{ID: "skip", Status: CollaborationActive, Performance: PerformanceStats{Engagement: 9000}},
		completedCollab("low", 10, 0, 0, now),
		completedCollab("high", 500, 0, 0, now),
		completedCollab("tie1", 100, 0, 0, now),
		completedCollab("tie2", 100, 0, 0, now),
		completedCollab("mid", 200, 0, 0, now),
		completedCollab("mid2", 150, 0, 0, now),
	}
	top := TopPerformers(cols, 5)
	require.Len(t, top, 5)
	ids := []string{top[0].ID, top[1].ID, top[2].ID, top[3].ID, top[4].ID}
	// ties keep input order: tie1 before tie2
	assert.Equal(t, []string{"high", "mid", "mid2", "tie1", "tie2"}, ids)
}

func TestComputeTrendsEmpty(t *testing.T) {
	points := ComputeTrends(nil, 30, time.Now())
	assert.Empty(t, points)
}

func TestComputeTrendsWindowAndBuckets(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	inWindow1 := now.AddDate(0, 0, -3)
	inWindow2 := now.AddDate(0, 0, -1)
	outOfWindow := now.AddDate(0, 0, -45)

	cols := []Collaboration{
		completedCollab("a", 100, 1000, 50, inWindow1),
		completedCollab("b", 200, 2000, 70, inWindow1),
		{ID: "c", Status: CollaborationAccepted, AcceptedAt: &inWindow2, AgreedPayment: 30},
		completedCollab("old", 999, 9999, 999, outOfWindow),
		{ID: "never", Status: CollaborationInvited},
	}
	points := ComputeTrends(cols, 30, now)
	require.Len(t, points, 2)
	assert.Equal(t, "2026-03-17", points[0].Date)
	assert.Equal(t, 2, points[0].Accepted)
	assert.Equal(t, 2, points[0].Completed)
	assert.Equal(t, int64(300), points[0].Engagement)
	assert.Equal(t, int64(3000), points[0].Reach)
	assert.Equal(t, 120.0, points[0].Spend)

	assert.Equal(t, "2026-03-19", points[1].Date)
	assert.Equal(t, 1, points[1].Accepted)
	assert.Equal(t, 0, points[1].Completed)
}

func TestBuildCampaignAnalytics(t *testing.T) {
	now := time.Now().UTC()
	c := &Campaign{ID: "c1", Name: "Spring", Status: CampaignActive, TotalBudget: 1000, SpentBudget: 250}
	cols := []Collaboration{
		{Status: CollaborationInvited},
		completedCollab("a", 100, 2000, 50, now.AddDate(0, 0, -2)),
	}
	report := BuildCampaignAnalytics(c, cols, now)
	assert.Equal(t, "c1", report.CampaignID)
	assert.Equal(t, 25.0, report.Budget.UtilizationRate)
	assert.Equal(t, 750.0, report.Budget.Remaining)
	assert.Len(t, report.TopPerformers, 1)
	assert.Equal(t, now, report.GeneratedAt)
}

func TestCompareCampaignsSelection(t *testing.T) {
	now := time.Now().UTC()
	reports := []CampaignAnalytics{
		{
			CampaignID: "zero", CampaignName: "Zero",
			ROI:         ROIMetrics{ROI: 0, CostPerEngagement: 0},
			Performance: PerformanceSummary{Engagement: 0},
		},
		{
			CampaignID: "strong", CampaignName: "Strong",
			ROI:         ROIMetrics{ROI: 150, CostPerEngagement: 2},
			Performance: PerformanceSummary{Engagement: 5000},
		},
		{
			CampaignID: "cheap", CampaignName: "Cheap",
			ROI:         ROIMetrics{ROI: 20, CostPerEngagement: 0.5},
			Performance: PerformanceSummary{Engagement: 100},
		},
	}
	cmp := CompareCampaigns(reports, now)
	require.NotNil(t, cmp.BestROI)
	assert.Equal(t, "strong", cmp.BestROI.CampaignID)
	require.NotNil(t, cmp.BestEngagement)
	assert.Equal(t, "strong", cmp.BestEngagement.CampaignID)
	// a campaign without engagement never wins cheapest engagement
	require.NotNil(t, cmp.CheapestEngagement)
	assert.Equal(t, "cheap", cmp.CheapestEngagement.CampaignID)
}

func TestCompareCampaignsEmpty(t *testing.T) {
	cmp := CompareCampaigns(nil, time.Now())
	assert.Empty(t, cmp.Campaigns)
	assert.Nil(t, cmp.BestROI)
	assert.Nil(t, cmp.BestEngagement)
	assert.Nil(t, cmp.CheapestEngagement)
}

func TestComputeReliabilityScoreHighestThresholdPerBucket(t *testing.T) {
	// each bucket must award only its top matching threshold, never the sum
	assert.Equal(t, 100, ComputeReliabilityScore(85, true, 90, 12))
	assert.Equal(t, 0, ComputeReliabilityScore(0, false, 0, 0))
	assert.Equal(t, 15, ComputeReliabilityScore(65, false, 10, 0))
	assert.Equal(t, 15+25+15, ComputeReliabilityScore(70, true, 65, 2))
	assert.Equal(t, 25+15, ComputeReliabilityScore(0, false, 85, 7))
}

func TestBuildInfluencerAnalytics(t *testing.T) {
	now := time.Now().UTC()
	inf := &Influencer{ID: "i1", FullName: "Jane Creator", Verified: true, QualityScore: 90}
	history := []Collaboration{
		{CampaignID: "c1", Status: CollaborationDeclined},
		{CampaignID: "c1", Status: CollaborationAccepted},
		func() Collaboration {
			c := completedCollab("a", 400, 1000, 250, now.AddDate(0, 0, -5))
			c.CampaignID = "c2"
			return c
		}(),
		func() Collaboration {
			c := completedCollab("b", 200, 1000, 150, now.AddDate(0, 0, -3))
			c.CampaignID = "c3"
			return c
		}(),
	}
	report := BuildInfluencerAnalytics(inf, history, now)
	assert.Equal(t, 3, report.TotalCampaigns)
	assert.Equal(t, 4, report.TotalCollaborations)
	assert.Equal(t, 2, report.Completed)
	assert.InDelta(t, 66.67, report.SuccessRate, 0.01)
	assert.Equal(t, 400.0, report.TotalEarnings)
	assert.Equal(t, 300.0, report.AverageEngagement)
	// success 66.67 -> 15, verified -> 25, quality 90 -> 25, campaigns 3 -> 0
	assert.Equal(t, 65, report.ReliabilityScore)
}
