package domain

import (
	"sort"
	"time"
)

// reachValuePerUnit is the assumed currency value of a single reached user,
// used by the ROI proxy. It is a heuristic, not a financial figure.
const reachValuePerUnit = 0.05

// BudgetMetrics summarises how a campaign's budget has been consumed.
type BudgetMetrics struct {
	Total           float64 `json:"total"`
	Allocated       float64 `json:"allocated"`
	Spent           float64 `json:"spent"`
	Remaining       float64 `json:"remaining"`
	UtilizationRate float64 `json:"utilizationRate"`
}

// CollaborationMetrics counts collaborations per status and derives the
// acceptance and completion rates.
type CollaborationMetrics struct {
	Total          int     `json:"total"`
	Invited        int     `json:"invited"`
	Accepted       int     `json:"accepted"`
	Active         int     `json:"active"`
	Completed      int     `json:"completed"`
	Declined       int     `json:"declined"`
	Cancelled      int     `json:"cancelled"`
	AcceptanceRate float64 `json:"acceptanceRate"`
	CompletionRate float64 `json:"completionRate"`
}

// PerformanceSummary sums engagement numbers across completed
// collaborations.
type PerformanceSummary struct {
	Reach                 int64   `json:"reach"`
	Engagement            int64   `json:"engagement"`
	Impressions           int64   `json:"impressions"`
	Likes                 int64   `json:"likes"`
	Comments              int64   `json:"comments"`
	Shares                int64   `json:"shares"`
	AverageEngagementRate float64 `json:"averageEngagementRate"`
}

// ROIMetrics is the heuristic return-on-investment estimate for a campaign.
type ROIMetrics struct {
	CostPerEngagement   float64 `json:"costPerEngagement"`
	EstimatedReachValue float64 `json:"estimatedReachValue"`
	ROI                 float64 `json:"roi"`
	BudgetEfficiency    float64 `json:"budgetEfficiency"`
}

// TrendPoint is one calendar-day bucket of collaboration activity.
type TrendPoint struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	Accepted   int     `json:"accepted"`
	Completed  int     `json:"completed"`
	Engagement int64   `json:"engagement"`
	Reach      int64   `json:"reach"`
	Spend      float64 `json:"spend"`
}

// TrendReport is the trailing-window activity series for a campaign.
type TrendReport struct {
	CampaignID  string       `json:"campaignId"`
	PeriodDays  int          `json:"periodDays"`
	Points      []TrendPoint `json:"points"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

// CampaignAnalytics is the full analytics report for one campaign.
type CampaignAnalytics struct {
	CampaignID     string               `json:"campaignId"`
	CampaignName   string               `json:"campaignName"`
	Status         CampaignStatus       `json:"status"`
	Budget         BudgetMetrics        `json:"budget"`
	Collaborations CollaborationMetrics `json:"collaborations"`
	Performance    PerformanceSummary   `json:"performance"`
	ROI            ROIMetrics           `json:"roi"`
	HealthScore    int                  `json:"healthScore"`
	TopPerformers  []Collaboration      `json:"topPerformers"`
	GeneratedAt    time.Time            `json:"generatedAt"`
}

// ComparisonEntry names the winning campaign for one comparison dimension.
type ComparisonEntry struct {
	CampaignID   string  `json:"campaignId"`
	CampaignName string  `json:"campaignName"`
	Value        float64 `json:"value"`
}

// ComparisonReport holds per-campaign reports plus the best entry per
// dimension. Best pointers are nil when no campaign qualifies.
type ComparisonReport struct {
	Campaigns          []CampaignAnalytics `json:"campaigns"`
	BestROI            *ComparisonEntry    `json:"bestRoi"`
	BestEngagement     *ComparisonEntry    `json:"bestEngagement"`
	CheapestEngagement *ComparisonEntry    `json:"cheapestEngagement"`
	GeneratedAt        time.Time           `json:"generatedAt"`
}

// InfluencerAnalytics summarises an influencer's campaign history.
type InfluencerAnalytics struct {
	InfluencerID        string    `json:"influencerId"`
	FullName            string    `json:"fullName"`
	TotalCampaigns      int       `json:"totalCampaigns"`
	TotalCollaborations int       `json:"totalCollaborations"`
	Completed           int       `json:"completed"`
	SuccessRate         float64   `json:"successRate"`
	TotalEarnings       float64   `json:"totalEarnings"`
	AverageEngagement   float64   `json:"averageEngagement"`
	ReliabilityScore    int       `json:"reliabilityScore"`
	GeneratedAt         time.Time `json:"generatedAt"`
}

// ComputeBudgetMetrics derives spend figures for a campaign. A zero total
// budget yields a zero utilization rate rather than a division by zero.
func ComputeBudgetMetrics(c *Campaign) BudgetMetrics {
	m := BudgetMetrics{
		Total:     c.TotalBudget,
		Allocated: c.AllocatedBudget,
		Spent:     c.SpentBudget,
		Remaining: c.TotalBudget - c.SpentBudget,
	}
	if c.TotalBudget > 0 {
		m.UtilizationRate = c.SpentBudget / c.TotalBudget * 100
	}
	return m
}

// ComputeCollaborationMetrics counts collaborations per status. Every
// collaboration starts invited, so the acceptance rate denominator is the
// total number of invites; the completion rate denominator is the number
// that reached accepted or later. Both rates are 0 when their denominator
// is 0.
func ComputeCollaborationMetrics(cols []Collaboration) CollaborationMetrics {
	m := CollaborationMetrics{Total: len(cols)}
	for _, c := range cols {
		switch c.Status {
		case CollaborationInvited:
			m.Invited++
		case CollaborationAccepted:
			m.Accepted++
		case CollaborationActive:
			m.Active++
		case CollaborationCompleted:
			m.Completed++
		case CollaborationDeclined:
			m.Declined++
		case CollaborationCancelled:
			m.Cancelled++
		}
	}
	acceptedOrLater := m.Accepted + m.Active + m.Completed
	if m.Total > 0 {
		m.AcceptanceRate = float64(acceptedOrLater) / float64(m.Total) * 100
	}
	if acceptedOrLater > 0 {
		m.CompletionRate = float64(m.Completed) / float64(acceptedOrLater) * 100
	}
	return m
}

// ComputePerformanceSummary sums reported metrics over completed
// collaborations only. The average engagement rate is total engagement per
// completed collaboration, 0 when none have completed.
func ComputePerformanceSummary(cols []Collaboration) PerformanceSummary {
	var s PerformanceSummary
	completed := 0
	for _, c := range cols {
		if c.Status != CollaborationCompleted {
			continue
		}
		completed++
		s.Reach += c.Performance.Reach
		s.Engagement += c.Performance.Engagement
		s.Impressions += c.Performance.Impressions
		s.Likes += c.Performance.Likes
		s.Comments += c.Performance.Comments
		s.Shares += c.Performance.Shares
	}
	if completed > 0 {
		s.AverageEngagementRate = float64(s.Engagement) / float64(completed)
	}
	return s
}

// ComputeROIMetrics derives the heuristic ROI figures from spend and the
// performance summary. Every ratio guards its denominator.
func ComputeROIMetrics(c *Campaign, perf PerformanceSummary) ROIMetrics {
	var m ROIMetrics
	if perf.Engagement > 0 {
		m.CostPerEngagement = c.SpentBudget / float64(perf.Engagement)
	}
	m.EstimatedReachValue = float64(perf.Reach) * reachValuePerUnit
	if c.SpentBudget > 0 {
		m.ROI = (m.EstimatedReachValue - c.SpentBudget) / c.SpentBudget * 100
	}
	if c.TotalBudget > 0 {
		m.BudgetEfficiency = float64(perf.Reach) / c.TotalBudget * 100
	}
	return m
}

// ComputeHealthScore awards a flat 20 points for each of five independent
// signals, yielding a 0-100 score that is always a multiple of 20.
func ComputeHealthScore(c *Campaign, budget BudgetMetrics, collabs CollaborationMetrics, perf PerformanceSummary) int {
	score := 0
	if budget.UtilizationRate > 0 && budget.UtilizationRate <= 100 {
		score += 20
	}
	if collabs.AcceptanceRate >= 50 {
		score += 20
	}
	if collabs.CompletionRate >= 70 {
		score += 20
	}
	if perf.Engagement > 0 {
		score += 20
	}
	if c.Status == CampaignActive {
		score += 20
	}
	return score
}

// TopPerformers returns up to n completed collaborations ordered by
// engagement, highest first. The sort is stable so ties keep input order.
func TopPerformers(cols []Collaboration, n int) []Collaboration {
	top := make([]Collaboration, 0, len(cols))
	for _, c := range cols {
		if c.Status == CollaborationCompleted {
			top = append(top, c)
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Performance.Engagement > top[j].Performance.Engagement
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}

// ComputeTrends buckets collaborations by the calendar date they were
// accepted, keeping only dates inside the trailing window ending at now.
// Dates with no accepted collaborations produce no bucket. Points are
// ordered by date ascending.
func ComputeTrends(cols []Collaboration, periodDays int, now time.Time) []TrendPoint {
	since := now.AddDate(0, 0, -periodDays)
	byDate := make(map[string]*TrendPoint)
	for _, c := range cols {
		if c.AcceptedAt == nil {
			continue
		}
		at := c.AcceptedAt.UTC()
		if at.Before(since) || at.After(now) {
			continue
		}
		date := at.Format("2006-01-02")
		p, ok := byDate[date]
		if !ok {
			p = &TrendPoint{Date: date}
			byDate[date] = p
		}
		p.Accepted++
		if c.Status == CollaborationCompleted {
			p.Completed++
		}
		p.Engagement += c.Performance.Engagement
		p.Reach += c.Performance.Reach
		p.Spend += c.AgreedPayment
	}
	points := make([]TrendPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// BuildCampaignAnalytics folds a campaign and its collaborations into a
// full report. It is a pure computation; the caller fetches the data and
// maps a missing campaign to its own not-found handling.
func BuildCampaignAnalytics(c *Campaign, cols []Collaboration, now time.Time) *CampaignAnalytics {
	budget := ComputeBudgetMetrics(c)
	collabs := ComputeCollaborationMetrics(cols)
	perf := ComputePerformanceSummary(cols)
	return &CampaignAnalytics{
		CampaignID:     c.ID,
		CampaignName:   c.Name,
		Status:         c.Status,
		Budget:         budget,
		Collaborations: collabs,
		Performance:    perf,
		ROI:            ComputeROIMetrics(c, perf),
		HealthScore:    ComputeHealthScore(c, budget, collabs, perf),
		TopPerformers:  TopPerformers(cols, 5),
		GeneratedAt:    now,
	}
}

// CompareCampaigns selects the best report per dimension. The cheapest
// engagement winner is chosen among campaigns that produced engagement at
// all; a zero cost from zero engagement never wins.
func CompareCampaigns(reports []CampaignAnalytics, now time.Time) *ComparisonReport {
	cmp := &ComparisonReport{Campaigns: reports, GeneratedAt: now}
	for i := range reports {
		r := &reports[i]
		if cmp.BestROI == nil || r.ROI.ROI > cmp.BestROI.Value {
			cmp.BestROI = &ComparisonEntry{CampaignID: r.CampaignID, CampaignName: r.CampaignName, Value: r.ROI.ROI}
		}
		if cmp.BestEngagement == nil || float64(r.Performance.Engagement) > cmp.BestEngagement.Value {
			cmp.BestEngagement = &ComparisonEntry{CampaignID: r.CampaignID, CampaignName: r.CampaignName, Value: float64(r.Performance.Engagement)}
		}
		if r.Performance.Engagement > 0 {
			if cmp.CheapestEngagement == nil || r.ROI.CostPerEngagement < cmp.CheapestEngagement.Value {
				cmp.CheapestEngagement = &ComparisonEntry{CampaignID: r.CampaignID, CampaignName: r.CampaignName, Value: r.ROI.CostPerEngagement}
			}
		}
	}
	return cmp
}

// ComputeReliabilityScore derives the additive 0-100 reliability score.
// Each bucket awards only its highest matching threshold.
func ComputeReliabilityScore(successRate float64, verified bool, qualityScore, totalCampaigns int) int {
	score := 0
	if successRate >= 80 {
		score += 25
	} else if successRate >= 60 {
		score += 15
	}
	if verified {
		score += 25
	}
	if qualityScore >= 80 {
		score += 25
	} else if qualityScore >= 60 {
		score += 15
	}
	if totalCampaigns >= 10 {
		score += 25
	} else if totalCampaigns >= 5 {
		score += 15
	}
	return score
}

// BuildInfluencerAnalytics folds an influencer's collaboration history into
// a report. Success rate is completions over collaborations that reached
// accepted or later; earnings count completed work only.
func BuildInfluencerAnalytics(inf *Influencer, history []Collaboration, now time.Time) *InfluencerAnalytics {
	campaigns := make(map[string]struct{})
	acceptedOrLater := 0
	completed := 0
	var earnings float64
	var engagement int64
	for _, c := range history {
		campaigns[c.CampaignID] = struct{}{}
		switch c.Status {
		case CollaborationAccepted, CollaborationActive:
			acceptedOrLater++
		case CollaborationCompleted:
			acceptedOrLater++
			completed++
			earnings += c.AgreedPayment
			engagement += c.Performance.Engagement
		}
	}
	var successRate float64
	if acceptedOrLater > 0 {
		successRate = float64(completed) / float64(acceptedOrLater) * 100
	}
	var avgEngagement float64
	if completed > 0 {
		avgEngagement = float64(engagement) / float64(completed)
	}
	return &InfluencerAnalytics{
		InfluencerID:        inf.ID,
		FullName:            inf.FullName,
		TotalCampaigns:      len(campaigns),
		TotalCollaborations: len(history),
		Completed:           completed,
		SuccessRate:         successRate,
		TotalEarnings:       earnings,
		AverageEngagement:   avgEngagement,
		ReliabilityScore:    ComputeReliabilityScore(successRate, inf.Verified, inf.QualityScore, len(campaigns)),
		GeneratedAt:         now,
	}
}
