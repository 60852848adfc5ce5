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

// CampaignService implements port.CampaignUseCase: CRUD plus the
// table-driven lifecycle actions.
type CampaignService struct {
	campaigns port.CampaignRepository
}

// NewCampaignService creates the campaign service.
func NewCampaignService(campaigns port.CampaignRepository) *CampaignService {
	return &CampaignService{campaigns: campaigns}
}

// Create stores a new campaign in the draft status.
func (s *CampaignService) Create(ctx context.Context, in port.CreateCampaignInput) (*domain.Campaign, error) {
	if in.Name == "" {
		return nil, apperr.Validation("campaign name is required")
	}
	if in.TotalBudget < 0 {
		return nil, apperr.Validation("total budget must not be negative")
	}
	if !in.EndDate.IsZero() && !in.StartDate.IsZero() && in.EndDate.Before(in.StartDate) {
		return nil, apperr.Validation("end date must not precede start date")
	}
	now := time.Now().UTC()
	c := &domain.Campaign{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Status:      domain.CampaignDraft,
		TotalBudget: in.TotalBudget,
		Platforms:   in.Platforms,
		Keywords:    in.Keywords,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.campaigns.Create(ctx, c); err != nil {
		if errors.Is(err, port.ErrDuplicate) {
			return nil, apperr.Conflict("campaign name %q already exists", in.Name)
		}
		return nil, err
	}
	return c, nil
}

// Get returns a campaign or a not-found error.
func (s *CampaignService) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := s.campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("campaign", id)
	}
	return c, nil
}

// List returns campaigns matching the filter.
func (s *CampaignService) List(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	return s.campaigns.List(ctx, f)
}

// Update applies the supplied fields to an existing campaign.
func (s *CampaignService) Update(ctx context.Context, id string, in port.UpdateCampaignInput) (*domain.Campaign, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, apperr.Validation("campaign name is required")
		}
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.TotalBudget != nil {
		if *in.TotalBudget < 0 {
			return nil, apperr.Validation("total budget must not be negative")
		}
		c.TotalBudget = *in.TotalBudget
	}
	if in.Platforms != nil {
		c.Platforms = in.Platforms
	}
	if in.Keywords != nil {
		c.Keywords = in.Keywords
	}
	if in.StartDate != nil {
		c.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		c.EndDate = *in.EndDate
	}
	c.UpdatedAt = time.Now().UTC()
	if err := s.campaigns.Update(ctx, c); err != nil {
		if errors.Is(err, port.ErrDuplicate) {
			return nil, apperr.Conflict("campaign name %q already exists", c.Name)
		}
		return nil, err
	}
	return c, nil
}

// PerformAction loads the campaign, validates the requested transition
// against the campaign table and persists the new status together with the
// action's side fields. Resume is a hard-coded paused-to-active edge with
// its own rejection message. A request for the status the campaign is
// already in is a no-op.
func (s *CampaignService) PerformAction(ctx context.Context, id string, action domain.CampaignAction) (*domain.Campaign, error) {
	target, ok := action.Target()
	if !ok {
		return nil, apperr.Validation("unknown campaign action %q", action)
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == target {
		return c, nil
	}
	if action == domain.CampaignActionResume {
		if c.Status != domain.CampaignPaused {
			return nil, apperr.BusinessRule("campaign_resume",
				"only a paused campaign can be resumed, current status is %s", c.Status).
				WithStatus(400)
		}
	} else if !domain.CanTransition(domain.CampaignTransitions, c.Status, target) {
		return nil, apperr.InvalidTransition("campaign", string(c.Status), string(target),
			statusStrings(domain.AllowedTransitions(domain.CampaignTransitions, c.Status)))
	}

	now := time.Now().UTC()
	c.Status = target
	c.UpdatedAt = now
	switch action {
	case domain.CampaignActionActivate:
		if c.LaunchDate == nil {
			launched := now
			c.LaunchDate = &launched
		}
	case domain.CampaignActionComplete:
		c.EndDate = now
	}
	if err := s.campaigns.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func statusStrings[S ~string](in []S) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
