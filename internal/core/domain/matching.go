package domain

import (
	"sort"
	"strings"
)

// RecommendationTier classifies a match score for at-a-glance triage.
type RecommendationTier string

const (
	TierHighlyRecommended RecommendationTier = "highly_recommended"
	TierRecommended       RecommendationTier = "recommended"
	TierConsider          RecommendationTier = "consider"
	TierNotRecommended    RecommendationTier = "not_recommended"
)

// MatchBreakdown holds the six component scores of a match. The maxima are
// 25, 20, 20, 15, 10 and 10, so the total never exceeds 100.
type MatchBreakdown struct {
	PlatformAlignment   float64 `json:"platformAlignment"`
	AudienceFit         float64 `json:"audienceFit"`
	EngagementQuality   float64 `json:"engagementQuality"`
	ContentRelevance    float64 `json:"contentRelevance"`
	BudgetCompatibility float64 `json:"budgetCompatibility"`
	QualityReliability  float64 `json:"qualityReliability"`
}

// MatchResult scores one influencer against one campaign.
type MatchResult struct {
	InfluencerID string             `json:"influencerId"`
	FullName     string             `json:"fullName"`
	Score        float64            `json:"score"`
	Breakdown    MatchBreakdown     `json:"breakdown"`
	Tier         RecommendationTier `json:"tier"`
}

// estimatedPostCost approximates the price of a single sponsored post from
// audience size.
func estimatedPostCost(followers int64) float64 {
	return float64(followers) * 0.01
}

// optimalFollowerRange maps the campaign budget to the audience size tier
// it can realistically book: small budgets suit micro influencers, large
// budgets suit macro ones.
func optimalFollowerRange(totalBudget float64) (min, max int64) {
	switch {
	case totalBudget < 5_000:
		return 10_000, 100_000
	case totalBudget < 25_000:
		return 50_000, 500_000
	default:
		return 250_000, 5_000_000
	}
}

func scorePlatformAlignment(inf *Influencer, c *Campaign) float64 {
	if len(c.Platforms) == 0 {
		// no platform requirement, nothing to misalign with
		return 25
	}
	matched := 0
	for _, p := range c.Platforms {
		if inf.HasPlatform(p) {
			matched++
		}
	}
	return 25 * float64(matched) / float64(len(c.Platforms))
}

func scoreAudienceFit(inf *Influencer, c *Campaign) float64 {
	followers := inf.TotalFollowers()
	if followers == 0 {
		return 0
	}
	min, max := optimalFollowerRange(c.TotalBudget)
	switch {
	case followers >= min && followers <= max:
		return 20
	case followers >= min/2 && followers <= max*2:
		return 12
	default:
		return 5
	}
}

func scoreEngagementQuality(inf *Influencer) float64 {
	rate := inf.AverageEngagementRate()
	switch {
	case rate >= 5:
		return 20
	case rate >= 3:
		return 14
	case rate >= 1.5:
		return 8
	case rate > 0:
		return 4
	default:
		return 0
	}
}

func scoreContentRelevance(inf *Influencer, c *Campaign) float64 {
	if len(c.Keywords) == 0 {
		return 15
	}
	categories := make(map[string]struct{}, len(inf.Categories))
	for _, cat := range inf.Categories {
		categories[strings.ToLower(cat)] = struct{}{}
	}
	matched := 0
	for _, kw := range c.Keywords {
		if _, ok := categories[strings.ToLower(kw)]; ok {
			matched++
		}
	}
	return 15 * float64(matched) / float64(len(c.Keywords))
}

func scoreBudgetCompatibility(inf *Influencer, c *Campaign) float64 {
	remaining := c.RemainingBudget()
	if remaining <= 0 {
		return 0
	}
	postCost := estimatedPostCost(inf.TotalFollowers())
	if postCost == 0 {
		return 0
	}
	switch {
	case remaining >= 3*postCost:
		return 10
	case remaining >= postCost:
		return 6
	default:
		return 2
	}
}

func scoreQualityReliability(inf *Influencer) float64 {
	var score float64
	if inf.Verified {
		score += 4
	}
	if inf.QualityScore >= 80 {
		score += 6
	} else if inf.QualityScore >= 60 {
		score += 4
	} else if inf.QualityScore >= 40 {
		score += 2
	}
	return score
}

// TierForScore maps a 0-100 match score to its recommendation tier. The
// 80/60/40 boundaries are inclusive.
func TierForScore(score float64) RecommendationTier {
	switch {
	case score >= 80:
		return TierHighlyRecommended
	case score >= 60:
		return TierRecommended
	case score >= 40:
		return TierConsider
	default:
		return TierNotRecommended
	}
}

// CalculateMatchScore scores one influencer against one campaign as the
// weighted sum of six independent factors.
func CalculateMatchScore(inf *Influencer, c *Campaign) MatchResult {
	b := MatchBreakdown{
		PlatformAlignment:   scorePlatformAlignment(inf, c),
		AudienceFit:         scoreAudienceFit(inf, c),
		EngagementQuality:   scoreEngagementQuality(inf),
		ContentRelevance:    scoreContentRelevance(inf, c),
		BudgetCompatibility: scoreBudgetCompatibility(inf, c),
		QualityReliability:  scoreQualityReliability(inf),
	}
	score := b.PlatformAlignment + b.AudienceFit + b.EngagementQuality +
		b.ContentRelevance + b.BudgetCompatibility + b.QualityReliability
	return MatchResult{
		InfluencerID: inf.ID,
		FullName:     inf.FullName,
		Score:        score,
		Breakdown:    b,
		Tier:         TierForScore(score),
	}
}

// FindBestMatches scores every candidate and returns the top results,
// highest score first. The sort is stable so equal scores keep candidate
// order. A non-positive limit falls back to 10.
func FindBestMatches(candidates []Influencer, c *Campaign, limit int) []MatchResult {
	if limit <= 0 {
		limit = 10
	}
	results := make([]MatchResult, 0, len(candidates))
	for i := range candidates {
		results = append(results, CalculateMatchScore(&candidates[i], c))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
