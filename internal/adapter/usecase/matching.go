package usecase

import (
	"context"

	"trendlink/internal/apperr"
	"trendlink/internal/core/domain"
	"trendlink/internal/core/port"
)

// MatchingService implements port.MatchingUseCase on top of the pure
// scoring functions in the domain package.
type MatchingService struct {
	campaigns   port.CampaignRepository
	influencers port.InfluencerRepository
}

// NewMatchingService creates the matching service.
func NewMatchingService(campaigns port.CampaignRepository, influencers port.InfluencerRepository) *MatchingService {
	return &MatchingService{campaigns: campaigns, influencers: influencers}
}

// BestMatches scores every available influencer against the campaign and
// returns the top results, default limit 10.
func (s *MatchingService) BestMatches(ctx context.Context, campaignID string, limit int) ([]domain.MatchResult, error) {
	c, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("campaign", campaignID)
	}
	available := domain.AvailabilityAvailable
	candidates, err := s.influencers.List(ctx, port.InfluencerFilter{Availability: &available})
	if err != nil {
		return nil, err
	}
	return domain.FindBestMatches(candidates, c, limit), nil
}

// Score rates one influencer against one campaign.
func (s *MatchingService) Score(ctx context.Context, campaignID, influencerID string) (*domain.MatchResult, error) {
	c, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("campaign", campaignID)
	}
	inf, err := s.influencers.Get(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	if inf == nil {
		return nil, apperr.NotFound("influencer", influencerID)
	}
	result := domain.CalculateMatchScore(inf, c)
	return &result, nil
}
