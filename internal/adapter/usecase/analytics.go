package usecase

import (
	"context"
	"time"

	"trendlink/internal/core/domain"
	"trendlink/internal/core/port"
)

// AnalyticsService implements port.AnalyticsUseCase. It fetches entities
// and hands them to the pure aggregation functions in the domain package;
// a missing root entity yields (nil, nil) so the HTTP layer owns the 404.
type AnalyticsService struct {
	campaigns      port.CampaignRepository
	influencers    port.InfluencerRepository
	collaborations port.CollaborationRepository
	now            func() time.Time
}

// NewAnalyticsService creates the analytics service.
func NewAnalyticsService(
	campaigns port.CampaignRepository,
	influencers port.InfluencerRepository,
	collaborations port.CollaborationRepository,
) *AnalyticsService {
	return &AnalyticsService{
		campaigns:      campaigns,
		influencers:    influencers,
		collaborations: collaborations,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// CampaignAnalytics builds the full report for one campaign.
func (s *AnalyticsService) CampaignAnalytics(ctx context.Context, campaignID string) (*domain.CampaignAnalytics, error) {
	c, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	cols, err := s.collaborations.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return domain.BuildCampaignAnalytics(c, cols, s.now()), nil
}

// CampaignTrends buckets a campaign's collaborations per acceptance date
// over the trailing window. A non-positive period falls back to 30 days.
func (s *AnalyticsService) CampaignTrends(ctx context.Context, campaignID string, periodDays int) (*domain.TrendReport, error) {
	if periodDays <= 0 {
		periodDays = 30
	}
	c, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	cols, err := s.collaborations.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return &domain.TrendReport{
		CampaignID:  campaignID,
		PeriodDays:  periodDays,
		Points:      domain.ComputeTrends(cols, periodDays, now),
		GeneratedAt: now,
	}, nil
}

// CompareCampaigns builds a report per id, silently dropping ids that do
// not resolve to a campaign, and names the best entry per dimension.
func (s *AnalyticsService) CompareCampaigns(ctx context.Context, campaignIDs []string) (*domain.ComparisonReport, error) {
	reports := make([]domain.CampaignAnalytics, 0, len(campaignIDs))
	for _, id := range campaignIDs {
		report, err := s.CampaignAnalytics(ctx, id)
		if err != nil {
			return nil, err
		}
		if report == nil {
			continue
		}
		reports = append(reports, *report)
	}
	return domain.CompareCampaigns(reports, s.now()), nil
}

// InfluencerAnalytics builds the history report for one influencer.
func (s *AnalyticsService) InfluencerAnalytics(ctx context.Context, influencerID string) (*domain.InfluencerAnalytics, error) {
	inf, err := s.influencers.Get(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	if inf == nil {
		return nil, nil
	}
	history, err := s.collaborations.ListByInfluencer(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	return domain.BuildInfluencerAnalytics(inf, history, s.now()), nil
}
