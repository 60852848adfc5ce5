package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"trendlink/internal/apperr"
	"trendlink/internal/core/domain"
	"trendlink/internal/core/port"
)

// InfluencerService implements port.InfluencerUseCase.
type InfluencerService struct {
	influencers port.InfluencerRepository
}

// NewInfluencerService creates the influencer service.
func NewInfluencerService(influencers port.InfluencerRepository) *InfluencerService {
	return &InfluencerService{influencers: influencers}
}

// Create registers a new influencer.
func (s *InfluencerService) Create(ctx context.Context, in port.CreateInfluencerInput) (*domain.Influencer, error) {
	if in.FullName == "" {
		return nil, apperr.Validation("full name is required")
	}
	if in.Handle == "" {
		return nil, apperr.Validation("handle is required")
	}
	if in.QualityScore < 0 || in.QualityScore > 100 {
		return nil, apperr.Validation("quality score must be between 0 and 100")
	}
	now := time.Now().UTC()
	inf := &domain.Influencer{
		ID:           uuid.NewString(),
		FullName:     in.FullName,
		Handle:       in.Handle,
		Verified:     in.Verified,
		QualityScore: in.QualityScore,
		Audiences:    in.Audiences,
		Categories:   in.Categories,
		Availability: domain.AvailabilityAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.influencers.Create(ctx, inf); err != nil {
		if errors.Is(err, port.ErrDuplicate) {
			return nil, apperr.Conflict("handle %q is already taken", in.Handle)
		}
		return nil, err
	}
	return inf, nil
}

// Get returns an influencer or a not-found error.
func (s *InfluencerService) Get(ctx context.Context, id string) (*domain.Influencer, error) {
	inf, err := s.influencers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inf == nil {
		return nil, apperr.NotFound("influencer", id)
	}
	return inf, nil
}

// List returns influencers matching the filter.
func (s *InfluencerService) List(ctx context.Context, f port.InfluencerFilter) ([]domain.Influencer, error) {
	return s.influencers.List(ctx, f)
}

// Update applies the supplied fields to an existing influencer.
func (s *InfluencerService) Update(ctx context.Context, id string, in port.UpdateInfluencerInput) (*domain.Influencer, error) {
	inf, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.FullName != nil {
		if *in.FullName == "" {
			return nil, apperr.Validation("full name is required")
		}
		inf.FullName = *in.FullName
	}
	if in.Verified != nil {
		inf.Verified = *in.Verified
	}
	if in.QualityScore != nil {
		if *in.QualityScore < 0 || *in.QualityScore > 100 {
			return nil, apperr.Validation("quality score must be between 0 and 100")
		}
		inf.QualityScore = *in.QualityScore
	}
	if in.Audiences != nil {
		inf.Audiences = in.Audiences
	}
	if in.Categories != nil {
		inf.Categories = in.Categories
	}
	if in.Availability != nil {
		switch *in.Availability {
		case domain.AvailabilityAvailable, domain.AvailabilityBusy, domain.AvailabilityUnavailable:
			inf.Availability = *in.Availability
		default:
			return nil, apperr.Validation("unknown availability %q", *in.Availability)
		}
	}
	inf.UpdatedAt = time.Now().UTC()
	if err := s.influencers.Update(ctx, inf); err != nil {
		return nil, err
	}
	return inf, nil
}
